package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/pkg/password"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errs.Domain(errs.ErrDuplicate, "User already exists with this email")
	ErrTokenGeneration = errs.New("token generation failed")
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
}

type AuthResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	hashCost   int
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		hashCost:   password.DefaultCost,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name, err := user.NewName(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewSignupRole(in.Role)
	if err != nil {
		return nil, err
	}

	if _, err := a.uow.CommandReads().UserCredentials(ctx, email.Value()); err == nil {
		return nil, ErrEmailTaken
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	hash, err := password.HashPasswordWithCost(pw.Value(), a.hashCost)
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(name, email, hash, phone, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		// lost a race with a concurrent registration
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, err
	}

	found, err := a.uow.CommandReads().UserCredentials(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if !found.IsActive {
		return nil, auth.ErrAccountDisabled
	}
	if err := password.ComparePassword(found.PasswordHash, credentials.Password()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	role, err := user.NewRole(found.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role")
	}
	return a.issue(found.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{UserID: userID, Role: role, AccessToken: token}, nil
}
