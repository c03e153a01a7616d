//go:build unit

package repository_test

import (
	"context"
	"testing"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/infra/repository"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/tests/common/builder"
	repositorymock "rental-marketplace/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	tests := []struct {
		name           string
		mockErr        error
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{name: "success"},
		{
			name:           "overlapping confirmed stay rejected by the exclusion constraint",
			mockErr:        &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_confirmed_overlap"},
			wantKind:       infra.KindExclusionViolated,
			wantConstraint: "bookings_no_confirmed_overlap",
		},
		{
			name:     "unknown property",
			mockErr:  &pgconn.PgError{Code: "23503", ConstraintName: "bookings_property_id_fkey"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockBookingWriteQueries(ctrl)
			b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

			q.EXPECT().CreateBooking(gomock.Any(), nil, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					return sqlc.Bookings{}, tt.mockErr
				})

			err := repository.NewBookingRepository(q).Create(context.Background(), nil, b)

			if tt.mockErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
			if tt.wantConstraint != "" {
				assert.Equal(t, tt.wantConstraint, infra.Constraint(err))
			}
		})
	}
}

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success - currency taken from the property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockBookingWriteQueries(ctrl)
		pb := builder.NewPropertyBuilder()
		prop := pb.BuildInfra()
		row := builder.NewBookingBuilder().WithProperty(prop.ID).BuildInfra()

		q.EXPECT().GetBookingForUpdate(ctx, nil, row.ID).Return(row, nil)
		q.EXPECT().GetPropertyByID(ctx, nil, prop.ID).Return(prop, nil)

		b, err := repository.NewBookingRepository(q).FindForUpdate(ctx, nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, b.ID())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, prop.Currency, b.TotalPrice().Currency())
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockBookingWriteQueries(ctrl)
		id := uuid.New()
		q.EXPECT().GetBookingForUpdate(ctx, nil, id).Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := repository.NewBookingRepository(q).FindForUpdate(ctx, nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_HasConflict(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockBookingWriteQueries(ctrl)
	bb := builder.NewBookingBuilder()
	propertyID := uuid.New()

	q.EXPECT().HasConfirmedOverlap(ctx, nil, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.HasConfirmedOverlapParams) (bool, error) {
			assert.Equal(t, propertyID, arg.PropertyID)
			assert.True(t, arg.CheckIn.Valid)
			assert.True(t, arg.CheckOut.Time.After(arg.CheckIn.Time))
			return true, nil
		})

	conflict, err := repository.NewBookingRepository(q).HasConflict(ctx, nil, propertyID, bb.Stay())

	require.NoError(t, err)
	assert.True(t, conflict)
}
