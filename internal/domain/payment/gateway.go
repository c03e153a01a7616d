package payment

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/payment/$GOFILE -package=paymentmock

import (
	"context"
	"time"
)

// Charge is what the gateway is asked to settle.
type Charge struct {
	IntentID        string
	PaymentMethodID string
	Provider        Provider
	Amount          int64
	Currency        string
}

type Result struct {
	Succeeded   bool
	Reference   string
	ProcessedAt time.Time
}

type Gateway interface {
	Settle(ctx context.Context, charge Charge) (Result, error)
}

// SimulatedGateway never talks to a provider; it answers with a fixed outcome.
type SimulatedGateway struct {
	succeed bool
	now     func() time.Time
}

func NewSimulatedGateway(succeed bool, now func() time.Time) *SimulatedGateway {
	if now == nil {
		now = time.Now
	}
	return &SimulatedGateway{succeed: succeed, now: now}
}

func (g *SimulatedGateway) Settle(ctx context.Context, charge Charge) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		Succeeded:   g.succeed,
		Reference:   charge.IntentID,
		ProcessedAt: g.now(),
	}, nil
}
