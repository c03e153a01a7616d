package request

import (
	"rental-marketplace/internal/domain/user"
)

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,min=2,max=50"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Avatar    *string `json:"avatar" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToPatch() user.ProfilePatch {
	return user.ProfilePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Avatar:    r.Avatar,
	}
}

type ListUsersQuery struct {
	PageQuery
	Role *string `form:"role" binding:"omitempty,oneof=guest host admin"`
}
