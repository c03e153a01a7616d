package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

const bookingPaymentIntentConstraint = "bookings_payment_intent_id_key"

type CreateIntentInput struct {
	PropertyID    uuid.UUID
	CheckIn       string
	CheckOut      string
	Guests        int
	TotalAmount   float64
	Currency      string
	PaymentMethod string
	Notes         string
}

type ConfirmPaymentInput struct {
	PaymentIntentID string
	PaymentMethodID string
	Provider        string
}

type PaymentConfirmation struct {
	Booking *booking.Booking
	Receipt payment.Receipt
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, principal auth.Principal, in CreateIntentInput) (*payment.Intent, error)
	Confirm(ctx context.Context, principal auth.Principal, in ConfirmPaymentInput) (*PaymentConfirmation, error)
}

type paymentCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway payment.Gateway
	clock   clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway payment.Gateway, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, gateway: gateway, clock: clk}
}

// CreateIntent revalidates the stay and captures it in the intent's metadata. No booking exists until Confirm.
func (uc *paymentCommandsImpl) CreateIntent(ctx context.Context, principal auth.Principal, in CreateIntentInput) (*payment.Intent, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}

	method, err := payment.NewMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	stay, err := booking.ParseStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	guests, err := booking.NewGuests(in.Guests)
	if err != nil {
		return nil, err
	}
	notes, err := booking.NewNotes(in.Notes)
	if err != nil {
		return nil, err
	}

	var intent *payment.Intent
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := loadBookable(ctx, tx, in.PropertyID, guests)
		if err != nil {
			return err
		}
		if err := ensureAvailable(ctx, tx, p.ID(), stay); err != nil {
			return err
		}

		amount, err := quoteIntent(p.Price(), stay, in.TotalAmount, in.Currency)
		if err != nil {
			return err
		}

		metadata := payment.NewMetadata(p.ID(), principal.UserID, stay, guests, notes)
		intent, err = payment.NewIntent(principal.UserID, amount, method, metadata, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.PaymentIntents().Create(ctx, tx.DB(), intent)
	})
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// Confirm settles the intent and turns it into a confirmed booking. The intent row stays locked for the
// whole transaction, so a second confirmation of the same intent waits and then sees it succeeded.
func (uc *paymentCommandsImpl) Confirm(ctx context.Context, principal auth.Principal, in ConfirmPaymentInput) (*PaymentConfirmation, error) {
	if err := auth.Authorize(principal); err != nil {
		return nil, err
	}

	provider, err := payment.NewProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.PaymentIntentID) == "" {
		return nil, booking.ErrMissingPaymentLink
	}

	var (
		confirmation *PaymentConfirmation
		declined     bool
	)
	err = uc.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		declined = false

		intent, err := tx.PaymentIntents().FindForUpdate(ctx, tx.DB(), in.PaymentIntentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return payment.ErrIntentNotFound
			}
			return err
		}
		if intent.UserID() != principal.UserID {
			return payment.ErrIntentNotFound
		}
		if err := intent.CheckConfirmable(); err != nil {
			return err
		}

		// nothing is charged unless the stay can still be booked
		plan, err := uc.planBooking(ctx, tx, intent)
		if err != nil {
			return err
		}

		// IntentID doubles as the gateway's idempotency key, so a retried transaction settles the same charge.
		result, err := uc.gateway.Settle(ctx, payment.Charge{
			IntentID:        intent.ID(),
			PaymentMethodID: in.PaymentMethodID,
			Provider:        provider,
			Amount:          intent.Amount().Minor(),
			Currency:        intent.Amount().Currency(),
		})
		if err != nil {
			return err
		}
		if !result.Succeeded {
			// the failed status has to survive, so commit instead of returning an error
			declined = true
			intent.MarkFailed(uc.clock.Now())
			return tx.PaymentIntents().UpdateStatus(ctx, tx.DB(), intent)
		}

		b, err := uc.insertBooking(ctx, tx, intent, plan, provider, result)
		if err != nil {
			return err
		}
		if err := intent.MarkSucceeded(b.ID(), uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.PaymentIntents().UpdateStatus(ctx, tx.DB(), intent); err != nil {
			return err
		}

		confirmation = &PaymentConfirmation{
			Booking: b,
			Receipt: payment.NewReceipt(intent, b.ID(), provider, result.ProcessedAt),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if declined {
		slog.Info("payment declined", "payment_intent_id", in.PaymentIntentID, "provider", provider.String())
		return nil, payment.ErrIntentFailed
	}
	return confirmation, nil
}

// bookingPlan is a stay re-validated against the current catalog and calendar.
type bookingPlan struct {
	propertyID uuid.UUID
	stay       booking.Stay
	guests     booking.Guests
	notes      booking.Notes
}

func (uc *paymentCommandsImpl) planBooking(ctx context.Context, tx shared.Tx, intent *payment.Intent) (bookingPlan, error) {
	meta := intent.Metadata()
	stay, err := meta.Stay()
	if err != nil {
		return bookingPlan{}, err
	}
	guests, err := booking.NewGuests(meta.Guests)
	if err != nil {
		return bookingPlan{}, err
	}
	notes, err := booking.NewNotes(meta.Notes)
	if err != nil {
		return bookingPlan{}, err
	}

	p, err := loadBookable(ctx, tx, meta.PropertyID, guests)
	if err != nil {
		return bookingPlan{}, err
	}
	if err := ensureAvailable(ctx, tx, p.ID(), stay); err != nil {
		return bookingPlan{}, err
	}
	return bookingPlan{propertyID: p.ID(), stay: stay, guests: guests, notes: notes}, nil
}

func (uc *paymentCommandsImpl) insertBooking(ctx context.Context, tx shared.Tx, intent *payment.Intent, plan bookingPlan, provider payment.Provider, result payment.Result) (*booking.Booking, error) {
	b, err := booking.NewConfirmed(intent.UserID(), plan.propertyID, plan.stay, plan.guests, intent.Amount(), plan.notes, booking.PaymentLink{
		IntentID:    intent.ID(),
		Method:      provider.String(),
		CompletedAt: result.ProcessedAt,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		switch {
		case infra.IsKind(err, infra.KindExclusionViolated):
			return nil, booking.ErrDatesUnavailable
		case infra.IsKind(err, infra.KindDuplicateKey) && infra.Constraint(err) == bookingPaymentIntentConstraint:
			return nil, payment.ErrAlreadyConfirmed
		}
		return nil, err
	}
	return b, nil
}

// quoteIntent checks the client's amount and currency against the server-side quote.
func quoteIntent(nightly money.Money, stay booking.Stay, total float64, currency string) (money.Money, error) {
	quote, err := booking.Quote(nightly, stay)
	if err != nil {
		return money.Money{}, err
	}
	if currency != "" && !strings.EqualFold(currency, quote.Currency()) {
		return money.Money{}, payment.ErrCurrencyMismatch
	}
	supplied, err := money.FromMajor(total, quote.Currency())
	if err != nil {
		return money.Money{}, err
	}
	if !supplied.Equal(quote) {
		return money.Money{}, payment.ErrAmountMismatch
	}
	return quote, nil
}
