package response

import (
	"time"

	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	UserAvatar    *string   `json:"userAvatar,omitempty"`
}

type RatingSummaryResponse struct {
	Histogram    map[int]int `json:"histogram"`
	AvgRating    *float64    `json:"avgRating"`
	TotalReviews int         `json:"totalReviews"`
}

type PropertyReviewsResponse struct {
	Reviews       []*PropertyReviewResponse `json:"reviews"`
	RatingSummary RatingSummaryResponse     `json:"ratingSummary"`
	AvgRating     *float64                  `json:"avgRating"`
	TotalReviews  int                       `json:"totalReviews"`
	Pagination    PaginationResponse        `json:"pagination"`
}

func FromPropertyReviews(v *queries.PropertyReviewsView) (*PropertyReviewsResponse, error) {
	reviews, err := mapAll[PropertyReviewResponse](v.Reviews)
	if err != nil {
		return nil, err
	}
	summary := RatingSummaryResponse{
		Histogram:    v.Summary.Histogram,
		AvgRating:    v.Summary.AvgRating,
		TotalReviews: v.Summary.TotalReviews,
	}
	return &PropertyReviewsResponse{
		Reviews:       reviews,
		RatingSummary: summary,
		AvgRating:     summary.AvgRating,
		TotalReviews:  summary.TotalReviews,
		Pagination:    FromPagination(v.Pagination),
	}, nil
}

type UserReviewResponse struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"propertyId"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	PropertyTitle  string    `json:"propertyTitle"`
	PropertyCity   string    `json:"propertyCity"`
	PropertyImages []string  `json:"propertyImages"`
}

type UserReviewsResponse struct {
	Reviews    []*UserReviewResponse `json:"reviews"`
	Pagination PaginationResponse    `json:"pagination"`
}

func FromUserReviewPage(p *queries.PageResult[*queries.UserReview]) (*UserReviewsResponse, error) {
	items, err := mapAll[UserReviewResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &UserReviewsResponse{Reviews: items, Pagination: FromPagination(p.Pagination)}, nil
}
