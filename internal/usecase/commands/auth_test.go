//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/pkg/password"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/shared"
	"rental-marketplace/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newJWT() *jwt.Service {
	return jwt.NewService("unit-test-secret", time.Hour)
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*commands.RegisterInput)
		setup    func(h *txHarness)
		wantErr  error
		wantRole user.Role
	}{
		{
			name: "success: defaults to guest",
			mutate: func(in *commands.RegisterInput) {
				in.Role = ""
			},
			setup: func(h *txHarness) {
				h.reads.EXPECT().UserCredentials(ctx, "test@example.com").Return(nil, notFound("user"))
				h.users.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
					assert.NotEqual(t, "password123", u.PasswordHash())
					assert.NoError(t, password.ComparePassword(u.PasswordHash(), "password123"))
					return nil
				})
			},
			wantRole: user.RoleGuest,
		},
		{
			name:   "success: host signup",
			mutate: func(in *commands.RegisterInput) { in.Role = "host" },
			setup: func(h *txHarness) {
				h.reads.EXPECT().UserCredentials(ctx, "test@example.com").Return(nil, notFound("user"))
				h.users.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil)
			},
			wantRole: user.RoleHost,
		},
		{
			name:    "error: admin cannot be self-assigned",
			mutate:  func(in *commands.RegisterInput) { in.Role = "admin" },
			wantErr: user.ErrInvalidRole,
		},
		{
			name:    "error: short password",
			mutate:  func(in *commands.RegisterInput) { in.Password = "12345" },
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "error: malformed email",
			mutate:  func(in *commands.RegisterInput) { in.Email = "not-an-email" },
			wantErr: user.ErrInvalidEmail,
		},
		{
			name: "error: email already registered",
			setup: func(h *txHarness) {
				h.reads.EXPECT().UserCredentials(ctx, "test@example.com").
					Return(builder.NewUserBuilder().BuildCredentials(), nil)
			},
			wantErr: commands.ErrEmailTaken,
		},
		{
			name: "error: concurrent signup wins the unique index",
			setup: func(h *txHarness) {
				h.reads.EXPECT().UserCredentials(ctx, "test@example.com").Return(nil, notFound("user"))
				h.users.EXPECT().Create(ctx, nil, gomock.Any()).Return(repoErr(infra.KindDuplicateKey, "users_email_key"))
			},
			wantErr: commands.ErrEmailTaken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			if tc.setup != nil {
				tc.setup(h)
			}

			in := commands.RegisterInput{
				FirstName: "Sita",
				LastName:  "Sharma",
				Email:     "Test@Example.com",
				Password:  "password123",
				Role:      "guest",
			}
			if tc.mutate != nil {
				tc.mutate(&in)
			}

			res, err := commands.NewAuthCommands(h.uow, newJWT(), h.clock).Register(ctx, in)

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, res.Role)
			assert.NotEmpty(t, res.AccessToken)

			claims, err := newJWT().ValidateToken(res.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, res.UserID, claims.UserID)
		})
	}
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)

	active := builder.NewUserBuilder().WithPasswordHash(hash).AsHost()
	inactive := builder.NewUserBuilder().WithPasswordHash(hash).AsInactive()

	tests := []struct {
		name     string
		email    string
		password string
		found    *shared.UserCredentials
		findErr  error
		wantErr  error
	}{
		{
			name:     "success: valid credentials",
			email:    "test@example.com",
			password: "password123",
			found:    active.BuildCredentials(),
		},
		{
			name:     "error: wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			found:    active.BuildCredentials(),
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "error: unknown email reads like a wrong password",
			email:    "test@example.com",
			password: "password123",
			findErr:  notFound("user"),
			wantErr:  auth.ErrInvalidCredentials,
		},
		{
			name:     "error: deactivated account",
			email:    "test@example.com",
			password: "password123",
			found:    inactive.BuildCredentials(),
			wantErr:  auth.ErrAccountDisabled,
		},
		{
			name:     "error: missing password",
			email:    "test@example.com",
			password: "",
			wantErr:  auth.ErrMissingPassword,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			if tc.found != nil || tc.findErr != nil {
				h.reads.EXPECT().UserCredentials(ctx, tc.email).Return(tc.found, tc.findErr)
			}

			res, err := commands.NewAuthCommands(h.uow, newJWT(), h.clock).Login(ctx, tc.email, tc.password)

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, active.ID, res.UserID)
			assert.Equal(t, user.RoleHost, res.Role)
			assert.NotEmpty(t, res.AccessToken)
		})
	}
}
