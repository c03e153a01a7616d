package response

import (
	"time"

	"rental-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Role       string    `json:"role"`
	Avatar     *string   `json:"avatar,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return mapOne[UserResponse](v)
}

type UserListResponse struct {
	Users      []*UserResponse    `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

func FromUserPage(p *queries.PageResult[*queries.UserView]) (*UserListResponse, error) {
	users, err := mapAll[UserResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &UserListResponse{Users: users, Pagination: FromPagination(p.Pagination)}, nil
}

// AuthResponse is returned by register and login; the token is also set as a cookie.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
