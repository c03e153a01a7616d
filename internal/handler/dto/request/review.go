package request

import (
	"rental-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment" binding:"required,min=10,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,min=10,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{Rating: r.Rating, Comment: r.Comment}
}
