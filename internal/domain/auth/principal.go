package auth

import (
	"slices"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated  = errs.Domain(errs.ErrAuthentication, "access token is required")
	ErrInsufficientRole = errs.Domain(errs.ErrAuthorization, "insufficient permissions")
	ErrNotResourceOwner = errs.Domain(errs.ErrAuthorization, "you can only manage your own listings")
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewPrincipal(userID uuid.UUID, role user.Role) Principal {
	return Principal{UserID: userID, Role: role}
}

func (p Principal) IsZero() bool {
	return p.UserID == uuid.Nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// Authorize succeeds when the principal holds one of roles. An empty role set only requires authentication.
func Authorize(p Principal, roles ...user.Role) error {
	if p.IsZero() {
		return ErrUnauthenticated
	}
	if len(roles) == 0 || slices.Contains(roles, p.Role) {
		return nil
	}
	return ErrInsufficientRole
}

// AuthorizeOwner lets admins through and otherwise requires p to own the resource.
func AuthorizeOwner(p Principal, ownerID uuid.UUID) error {
	if p.IsZero() {
		return ErrUnauthenticated
	}
	if p.IsAdmin() || p.UserID == ownerID {
		return nil
	}
	return ErrNotResourceOwner
}
