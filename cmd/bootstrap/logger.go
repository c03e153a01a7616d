package bootstrap

import (
	"log/slog"

	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

// NewLogger also installs the handler as slog's default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
