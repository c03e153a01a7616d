//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) CountUsers(ctx context.Context, db sqlc.DBTX, role pgtype.Text) (int64, error) {
	args := m.Called(ctx, db, role)
	return args.Get(0).(int64), args.Error(1)
}

func TestFindCredentials(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantActive bool
		wantError  bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantActive: true,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantActive: false,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			creds, err := readStore.FindCredentials(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, creds)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, creds.Email)
				assert.Equal(t, tt.mockReturn.PasswordHash, creds.PasswordHash)
				assert.Equal(t, tt.wantActive, creds.IsActive)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	testUser.Avatar = pgconv.StringToPgtype("https://cdn.example.com/a.png")

	t.Run("success - phone and avatar mapped", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, testUser.ID).Return(testUser, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), testUser.ID)

		require.NoError(t, err)
		assert.Equal(t, testUser.ID, view.ID)
		assert.Equal(t, testUser.FirstName, view.FirstName)
		require.NotNil(t, view.Avatar)
		assert.Equal(t, "https://cdn.example.com/a.png", *view.Avatar)
		mockQueries.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.Users{}, sql.ErrNoRows)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})
}

func TestListUsers(t *testing.T) {
	page := queries.NewPage(2, 5)
	host := builder.NewUserBuilder().AsHost().BuildInfra()

	tests := []struct {
		name      string
		role      *string
		listErr   error
		countErr  error
		wantTotal int64
		wantError bool
	}{
		{name: "success - all roles", wantTotal: 6},
		{name: "success - filtered by role", role: ptr.Of("host"), wantTotal: 6},
		{name: "list error", listErr: assert.AnError, wantError: true},
		{name: "count error", countErr: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			roleFilter := pgconv.StringPtrToPgtype(tt.role)
			mockQueries.On("ListUsers", mock.Anything, mock.Anything, sqlc.ListUsersParams{
				Limit:  5,
				Offset: 5,
				Role:   roleFilter,
			}).Return([]sqlc.Users{host}, tt.listErr)
			if tt.listErr == nil {
				mockQueries.On("CountUsers", mock.Anything, mock.Anything, roleFilter).Return(tt.wantTotal, tt.countErr)
			}

			views, total, err := NewUserReadStore(mockQueries, nil).List(context.Background(), tt.role, page)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.Nil(t, views)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTotal, total)
				require.Len(t, views, 1)
				assert.Equal(t, "host", views[0].Role)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
