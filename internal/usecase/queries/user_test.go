//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		view := builder.NewUserBuilder().BuildView()
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := queries.NewUserQueries(store).GetProfile(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.Email, got.Email)
	})

	t.Run("error: unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("user", nil, infra.KindNotFound))

		_, err := queries.NewUserQueries(store).GetProfile(ctx, id)

		assert.True(t, errors.Is(err, queries.ErrUserNotFound))
	})
}

func TestUserQueries_List(t *testing.T) {
	ctx := context.Background()
	page := queries.NewPage(1, 10)

	tests := []struct {
		name      string
		principal auth.Principal
		role      *string
		wantCall  bool
		wantErr   error
	}{
		{name: "success: admin lists everyone", principal: builder.AdminPrincipal(), wantCall: true},
		{name: "success: admin filters hosts", principal: builder.AdminPrincipal(), role: ptr.Of("host"), wantCall: true},
		{name: "error: hosts are not admins", principal: builder.HostPrincipal(), wantErr: auth.ErrInsufficientRole},
		{name: "error: invalid role filter", principal: builder.AdminPrincipal(), role: ptr.Of("owner"), wantErr: user.ErrInvalidRole},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			if tc.wantCall {
				store.EXPECT().List(ctx, tc.role, page).Return([]*queries.UserView{builder.NewUserBuilder().BuildView()}, int64(1), nil)
			}

			res, err := queries.NewUserQueries(store).List(ctx, tc.principal, tc.role, page)

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, res.Pagination.TotalItems)
		})
	}
}
