package user

import (
	"time"

	"rental-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	phone        Phone
	role         Role
	avatar       *string
	isVerified   bool
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, phone Phone, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	phone Phone,
	role Role,
	avatar *string,
	isVerified, isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		avatar:       avatar,
		isVerified:   isVerified,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// UpdateProfile validates the merged result before mutating anything.
func (u *User) UpdateProfile(p ProfilePatch, now time.Time) error {
	name, err := NewName(
		patch.Coalesce(p.FirstName, u.name.First()),
		patch.Coalesce(p.LastName, u.name.Last()),
	)
	if err != nil {
		return err
	}
	phone, err := NewPhone(patch.Coalesce(p.Phone, u.phone.Value()))
	if err != nil {
		return err
	}

	u.name = name
	u.phone = phone
	if p.Avatar != nil {
		u.avatar = p.Avatar
	}
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) Avatar() *string      { return u.avatar }
func (u *User) IsVerified() bool     { return u.isVerified }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
