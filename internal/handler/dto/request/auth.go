package request

import (
	"rental-marketplace/internal/usecase/commands"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=50"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Role      string `json:"role" binding:"omitempty,oneof=guest host"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
