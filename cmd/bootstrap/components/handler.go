package components

import (
	"rental-marketplace/internal/handler"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewPropertyHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)

type handlerParams struct {
	fx.In

	Auth     *api.AuthHandler
	User     *api.UserHandler
	Property *api.PropertyHandler
	Booking  *api.BookingHandler
	Payment  *api.PaymentHandler
	Review   *api.ReviewHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:     p.Auth,
		User:     p.User,
		Property: p.Property,
		Booking:  p.Booking,
		Payment:  p.Payment,
		Review:   p.Review,
	}
}
