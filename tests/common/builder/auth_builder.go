//go:build unit || e2e

package builder

import (
	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	reqdto "rental-marketplace/internal/handler/dto/request"

	"github.com/google/uuid"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func GuestPrincipal() auth.Principal {
	return auth.NewPrincipal(uuid.New(), user.RoleGuest)
}

func HostPrincipal() auth.Principal {
	return auth.NewPrincipal(uuid.New(), user.RoleHost)
}

func AdminPrincipal() auth.Principal {
	return auth.NewPrincipal(uuid.New(), user.RoleAdmin)
}
