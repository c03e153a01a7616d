//go:build unit

package user_test

import (
	"testing"
	"time"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Sita", "Sharma")
		role, _ := user.NewRole("guest")
		expected := user.NewUser(name, email, "hashed_password", user.Phone{}, role, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsVerified())
		assert.Equal(t, "Sita Sharma", actual.Name().Full())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "upper case is normalized OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "empty email NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @ NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "guest role OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("guest") },
			},
			{
				name:   "host role OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("host") },
			},
			{
				name:   "admin role OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "invalid role NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one letter first name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("A", "Sharma") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "51 letter last name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("Sita", string(make([]rune, 51))) },
				errIs:  user.ErrInvalidName,
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "international format OK",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("+977 9800000000") },
			},
			{
				name:   "letters in number NG",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("call-me") },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})
}

func TestSignupRole(t *testing.T) {
	role, err := user.NewSignupRole("")
	require.NoError(t, err)
	assert.Equal(t, user.RoleGuest, role)

	role, err = user.NewSignupRole("host")
	require.NoError(t, err)
	assert.Equal(t, user.RoleHost, role)

	_, err = user.NewSignupRole("admin")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUpdateProfile(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	later := u.CreatedAt().Add(time.Minute)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		require.NoError(t, u.UpdateProfile(user.ProfilePatch{FirstName: ptr.Of("Gita")}, later))
		assert.Equal(t, "Gita", u.Name().First())
		assert.Equal(t, "Sharma", u.Name().Last())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("invalid value leaves user unchanged", func(t *testing.T) {
		err := u.UpdateProfile(user.ProfilePatch{LastName: ptr.Of("X"), Phone: ptr.Of("+977 9811111111")}, later)
		require.ErrorIs(t, err, user.ErrInvalidName)
		assert.Equal(t, "Sharma", u.Name().Last())
		assert.Nil(t, u.Phone().Ptr())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
