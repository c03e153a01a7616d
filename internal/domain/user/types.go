package user

type Role string

const (
	RoleGuest Role = "guest"
	RoleHost  Role = "host"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// NewSignupRole accepts only the roles a user may pick at registration; empty means guest.
func NewSignupRole(s string) (Role, error) {
	if s == "" {
		return RoleGuest, nil
	}
	role := Role(s)
	if role != RoleGuest && role != RoleHost {
		return "", ErrInvalidRole
	}
	return role, nil
}
