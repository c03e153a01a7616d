//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		patch     user.ProfilePatch
		findErr   error
		wantSaved bool
		wantErr   error
	}{
		{
			name:      "success: name and avatar",
			patch:     user.ProfilePatch{FirstName: ptr.Of("Gita"), Avatar: ptr.Of("https://example.com/a.png")},
			wantSaved: true,
		},
		{
			name:    "error: name too short",
			patch:   user.ProfilePatch{LastName: ptr.Of("S")},
			wantErr: user.ErrInvalidName,
		},
		{
			name:    "error: malformed phone",
			patch:   user.ProfilePatch{Phone: ptr.Of("call me maybe")},
			wantErr: user.ErrInvalidPhone,
		},
		{
			name:    "error: account vanished",
			findErr: notFound("user"),
			wantErr: commands.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			b := builder.NewUserBuilder()
			u, err := b.BuildDomain()
			require.NoError(t, err)
			principal := auth.NewPrincipal(u.ID(), u.Role())

			if tc.findErr != nil {
				h.users.EXPECT().FindByID(ctx, nil, u.ID()).Return(nil, tc.findErr)
			} else {
				h.users.EXPECT().FindByID(ctx, nil, u.ID()).Return(u, nil)
			}
			if tc.wantSaved {
				h.users.EXPECT().UpdateProfile(ctx, nil, u).Return(nil)
			}

			err = commands.NewUserCommands(h.uow, h.clock).UpdateProfile(ctx, principal, tc.patch)

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Equal(t, "Sita", u.Name().First())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Gita", u.Name().First())
			assert.Equal(t, "Sharma", u.Name().Last())
			require.NotNil(t, u.Avatar())
			assert.Equal(t, fixedNow, u.UpdatedAt())
		})
	}
}
