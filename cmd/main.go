package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"rental-marketplace/cmd/bootstrap"
	"rental-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

func init() {
	// Never expose debug output because of a misconfigured environment.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           rental-marketplace
// @version         1.0
// @description     Vacation rental marketplace: listings, bookings, payments and reviews.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("🚀 starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 stopping server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
}
