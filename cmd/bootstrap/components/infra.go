package components

import (
	"context"

	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/infra/cache"
	"rental-marketplace/internal/infra/export"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewRatingCache,
		fx.Annotate(
			export.NewXLSXBookingExporter,
			fx.As(new(queries.BookingExporter)),
		),
		NewPaymentGateway,
	),
)

func NewRatingCache(lc fx.Lifecycle, cfg config.Config) shared.RatingCache {
	ratings, cleanup := cache.NewRatingCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return ratings
}

// NewPaymentGateway returns the simulated processor; PAYMENT_SIMULATED_OUTCOME=fail declines every charge.
func NewPaymentGateway(cfg config.Config) payment.Gateway {
	return payment.NewSimulatedGateway(cfg.Payment.SimulatedOutcome != "fail", nil)
}
