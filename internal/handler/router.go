package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router takes a single dependency.
type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Property *api.PropertyHandler
	Booking  *api.BookingHandler
	Payment  *api.PaymentHandler
	Review   *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NotFound())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	hostOnly := authMiddleware.RequireRoles(user.RoleHost, user.RoleAdmin)
	adminOnly := authMiddleware.RequireRoles(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/profile", Handler: h.User.GetProfile},
			{Method: http.MethodPut, Path: "/profile", Handler: h.User.UpdateProfile},
			{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{adminOnly}},
		})

		properties := apiGroup.Group("/properties")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Property.Search},
			})

			hosted := properties.Group("")
			hosted.Use(authMiddleware.RequireAuth(), hostOnly)
			// /mine is registered before /:id so gin never treats it as an id.
			addRoutes(hosted, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Property.ListMine},
				{Method: http.MethodPost, Path: "", Handler: h.Property.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Property.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.Delete},
				{Method: http.MethodGet, Path: "/:id/bookings/export", Handler: h.Booking.ExportForProperty},
			})

			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Property.Get},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPut, Path: "/:id/complete", Handler: h.Booking.Complete, Mw: []gin.HandlerFunc{hostOnly}},
		})

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/create-intent", Handler: h.Payment.CreateIntent},
			{Method: http.MethodPost, Path: "/confirm", Handler: h.Payment.Confirm},
			{Method: http.MethodGet, Path: "/history", Handler: h.Payment.History},
		})

		reviews := apiGroup.Group("/reviews")
		{
			addRoutes(reviews, []route{
				{Method: http.MethodGet, Path: "/property/:propertyId", Handler: h.Review.ListByProperty},
			})

			authored := reviews.Group("")
			authored.Use(authMiddleware.RequireAuth())
			addRoutes(authored, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodGet, Path: "/user", Handler: h.Review.ListMine},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
