package usecase

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/usecase/$GOFILE -package=usecasemock

import (
	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller's principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return auth.Principal{}, err
	}

	return auth.NewPrincipal(claims.UserID, role), nil
}
