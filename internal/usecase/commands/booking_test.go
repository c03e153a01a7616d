//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/property"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/commands"
	"rental-marketplace/internal/usecase/shared"
	"rental-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()
	guest := builder.GuestPrincipal()

	validInput := func(propertyID uuid.UUID) commands.CreateBookingInput {
		return commands.CreateBookingInput{
			PropertyID: propertyID,
			CheckIn:    "2025-04-01",
			CheckOut:   "2025-04-03",
			Guests:     2,
			Notes:      "late arrival",
		}
	}

	tests := []struct {
		name      string
		principal auth.Principal
		prop      *builder.PropertyBuilder
		mutate    func(*commands.CreateBookingInput)
		setup     func(h *txHarness, p *property.Property)
		wantErr   error
	}{
		{
			name:      "success: pending booking priced server-side",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
				h.bookings.EXPECT().HasConflict(ctx, nil, p.ID(), gomock.Any()).Return(false, nil)
				h.bookings.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, b *booking.Booking) error {
						assert.Equal(t, booking.StatusPending, b.Status())
						assert.Equal(t, int64(1000000), b.TotalPrice().Minor())
						assert.Equal(t, "NPR", b.TotalPrice().Currency())
						assert.Equal(t, guest.UserID, b.UserID())
						assert.Equal(t, 2, b.Stay().Nights())
						assert.Nil(t, b.Payment())
						return nil
					})
			},
		},
		{
			name:      "success: matching client total is accepted",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			mutate:    func(in *commands.CreateBookingInput) { in.TotalPrice = ptr.Of(10000.0) },
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
				h.bookings.EXPECT().HasConflict(ctx, nil, p.ID(), gomock.Any()).Return(false, nil)
				h.bookings.EXPECT().Create(ctx, nil, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "error: unauthenticated caller",
			principal: auth.Principal{},
			prop:      builder.NewPropertyBuilder(),
			wantErr:   auth.ErrUnauthenticated,
		},
		{
			name:      "error: check-out not after check-in",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			mutate:    func(in *commands.CreateBookingInput) { in.CheckOut = in.CheckIn },
			wantErr:   booking.ErrInvalidStay,
		},
		{
			name:      "error: malformed date",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			mutate:    func(in *commands.CreateBookingInput) { in.CheckIn = "01/04/2025" },
			wantErr:   booking.ErrInvalidDate,
		},
		{
			name:      "error: property does not exist",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(nil, notFound("property"))
			},
			wantErr: property.ErrNotBookable,
		},
		{
			name:      "error: property unlisted",
			principal: guest,
			prop:      builder.NewPropertyBuilder().AsInactive(),
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
			},
			wantErr: property.ErrNotBookable,
		},
		{
			name:      "error: more guests than the property sleeps",
			principal: guest,
			prop:      builder.NewPropertyBuilder().WithMaxGuests(1),
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
			},
			wantErr: errs.ErrCapacity,
		},
		{
			name:      "error: dates overlap a confirmed booking",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
				h.bookings.EXPECT().HasConflict(ctx, nil, p.ID(), gomock.Any()).Return(true, nil)
			},
			wantErr: booking.ErrDatesUnavailable,
		},
		{
			name:      "error: client total disagrees with the quote",
			principal: guest,
			prop:      builder.NewPropertyBuilder(),
			mutate:    func(in *commands.CreateBookingInput) { in.TotalPrice = ptr.Of(1.0) },
			setup: func(h *txHarness, p *property.Property) {
				h.properties.EXPECT().FindByID(ctx, nil, p.ID()).Return(p, nil)
				h.bookings.EXPECT().HasConflict(ctx, nil, p.ID(), gomock.Any()).Return(false, nil)
			},
			wantErr: booking.ErrPriceMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			p := tc.prop.BuildDomain()
			if tc.setup != nil {
				tc.setup(h, p)
			}

			in := validInput(p.ID())
			if tc.mutate != nil {
				tc.mutate(&in)
			}

			id, err := commands.NewBookingCommands(h.uow, h.clock).Create(ctx, tc.principal, in)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestBookingCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	guest := builder.GuestPrincipal()

	tests := []struct {
		name      string
		principal auth.Principal
		booking   *builder.BookingBuilder
		lookupErr error
		wantErr   error
		wantSaved bool
	}{
		{
			name:      "success: guest cancels own pending booking",
			principal: guest,
			booking:   builder.NewBookingBuilder().WithUser(guest.UserID).WithStatus(booking.StatusPending),
			wantSaved: true,
		},
		{
			name:      "success: confirmed booking before check-in",
			principal: guest,
			booking: builder.NewBookingBuilder().WithUser(guest.UserID).With(func(b *builder.BookingBuilder) {
				b.CheckIn = fixedNow.AddDate(0, 0, 3)
				b.CheckOut = fixedNow.AddDate(0, 0, 5)
			}),
			wantSaved: true,
		},
		{
			name:      "error: another guest's booking looks missing",
			principal: guest,
			booking:   builder.NewBookingBuilder(),
			wantErr:   commands.ErrBookingNotFound,
		},
		{
			name:      "error: booking does not exist",
			principal: guest,
			booking:   builder.NewBookingBuilder(),
			lookupErr: notFound("booking"),
			wantErr:   commands.ErrBookingNotFound,
		},
		{
			name:      "error: already cancelled",
			principal: guest,
			booking:   builder.NewBookingBuilder().WithUser(guest.UserID).WithStatus(booking.StatusCancelled),
			wantErr:   booking.ErrAlreadyCancelled,
		},
		{
			name:      "error: completed stays cannot be cancelled",
			principal: guest,
			booking:   builder.NewBookingBuilder().WithUser(guest.UserID).WithStatus(booking.StatusCompleted),
			wantErr:   booking.ErrCancelCompleted,
		},
		{
			name:      "error: confirmed stay already started",
			principal: guest,
			booking: builder.NewBookingBuilder().WithUser(guest.UserID).With(func(b *builder.BookingBuilder) {
				b.CheckIn = fixedNow.AddDate(0, 0, -1)
				b.CheckOut = fixedNow.AddDate(0, 0, 2)
			}),
			wantErr: booking.ErrStayStarted,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			b := tc.booking.BuildDomain()

			if tc.lookupErr != nil {
				h.bookings.EXPECT().FindForUpdate(ctx, nil, b.ID()).Return(nil, tc.lookupErr)
			} else {
				h.bookings.EXPECT().FindForUpdate(ctx, nil, b.ID()).Return(b, nil)
			}
			if tc.wantSaved {
				h.bookings.EXPECT().UpdateStatus(ctx, nil, b).Return(nil)
			}

			err := commands.NewBookingCommands(h.uow, h.clock).Cancel(ctx, tc.principal, b.ID())

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, b.Status())
		})
	}
}

func TestBookingCommands_Complete(t *testing.T) {
	ctx := context.Background()
	host := builder.HostPrincipal()

	pastStay := func(b *builder.BookingBuilder) {
		b.CheckIn = fixedNow.AddDate(0, 0, -4)
		b.CheckOut = fixedNow.AddDate(0, 0, -1)
	}

	tests := []struct {
		name      string
		principal auth.Principal
		booking   *builder.BookingBuilder
		ownerID   uuid.UUID
		wantErr   error
		wantSaved bool
	}{
		{
			name:      "success: host completes a finished stay",
			principal: host,
			booking:   builder.NewBookingBuilder().With(pastStay),
			ownerID:   host.UserID,
			wantSaved: true,
		},
		{
			name:      "success: admin completes any stay",
			principal: builder.AdminPrincipal(),
			booking:   builder.NewBookingBuilder().With(pastStay),
			ownerID:   uuid.New(),
			wantSaved: true,
		},
		{
			name:      "error: guests cannot complete",
			principal: auth.NewPrincipal(uuid.New(), user.RoleGuest),
			booking:   builder.NewBookingBuilder().With(pastStay),
			wantErr:   auth.ErrInsufficientRole,
		},
		{
			name:      "error: host of a different property",
			principal: host,
			booking:   builder.NewBookingBuilder().With(pastStay),
			ownerID:   uuid.New(),
			wantErr:   auth.ErrNotResourceOwner,
		},
		{
			name:      "error: stay not over yet",
			principal: host,
			booking: builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.CheckIn = fixedNow.AddDate(0, 0, -1)
				b.CheckOut = fixedNow.AddDate(0, 0, 1)
			}),
			ownerID: host.UserID,
			wantErr: booking.ErrStayNotOver,
		},
		{
			name:      "error: pending booking",
			principal: host,
			booking:   builder.NewBookingBuilder().With(pastStay).WithStatus(booking.StatusPending),
			ownerID:   host.UserID,
			wantErr:   booking.ErrNotConfirmed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			b := tc.booking.BuildDomain()

			h.bookings.EXPECT().FindForUpdate(ctx, nil, b.ID()).Return(b, nil).AnyTimes()
			h.reads.EXPECT().PropertyOwnership(ctx, b.PropertyID()).
				Return(&shared.PropertyOwnership{ID: b.PropertyID(), HostID: tc.ownerID, IsActive: true}, nil).AnyTimes()
			if tc.wantSaved {
				h.bookings.EXPECT().UpdateStatus(ctx, nil, b).Return(nil)
			}

			err := commands.NewBookingCommands(h.uow, h.clock).Complete(ctx, tc.principal, b.ID())

			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCompleted, b.Status())
		})
	}
}
