package converter

import (
	"rental-marketplace/internal/domain/user"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		FirstName:    u.Name().First(),
		LastName:     u.Name().Last(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone().Ptr()),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserToProfileParams(u *user.User) sqlc.UpdateUserProfileParams {
	return sqlc.UpdateUserProfileParams{
		ID:        u.ID(),
		FirstName: u.Name().First(),
		LastName:  u.Name().Last(),
		Phone:     pgconv.StringPtrToPgtype(u.Phone().Ptr()),
		Avatar:    pgconv.StringPtrToPgtype(u.Avatar()),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

// UserFromRow rebuilds the aggregate from a stored row. Stored values were validated on
// write, so a failure here means the row was edited outside the application.
func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.FirstName, row.LastName)
	if err != nil {
		return nil, errs.Wrap(err, "stored user name")
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user email")
	}
	phone, err := user.NewPhone(row.Phone.String)
	if err != nil {
		return nil, errs.Wrap(err, "stored user phone")
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user role")
	}

	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		phone,
		role,
		pgconv.StringPtrFromPgtype(row.Avatar),
		row.IsVerified,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
