//go:build unit || e2e

package builder

import (
	"time"

	"rental-marketplace/internal/domain/user"
	reqdto "rental-marketplace/internal/handler/dto/request"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PasswordHash string
	Phone        string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		FirstName:    "Sita",
		LastName:     "Sharma",
		Email:        "test@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Phone:        "+977 9800000000",
		Role:         "guest",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return user.ReconstructUser(u.ID, name, email, u.PasswordHash, phone, role, nil, false, u.IsActive, now, now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        pgconv.StringToPgtype(u.Phone),
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    pgconv.TimeToPgtype(now),
		UpdatedAt:    pgconv.TimeToPgtype(now),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     &u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) BuildCredentials() *shared.UserCredentials {
	return &shared.UserCredentials{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsHost() *UserBuilder {
	u.Role = string(user.RoleHost)
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
