package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studio-booking/internal/handler/api"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pricingHandler *api.PricingHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, availabilityHandler, pricingHandler, adminHandler, adminAuth)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pricingHandler *api.PricingHandler,
	adminHandler *api.AdminHandler,
	adminAuth *middleware.AdminAuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/catalog", Handler: availabilityHandler.GetCatalog},
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailableTimes},
			{Method: http.MethodGet, Path: "/availability/day", Handler: availabilityHandler.GetDayOccupancy},
			{Method: http.MethodPost, Path: "/quote", Handler: pricingHandler.Quote},
			{Method: http.MethodPost, Path: "/reservations", Handler: bookingHandler.CreateReservation},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			gated := admin.Group("")
			gated.Use(adminAuth.RequireAdmin())
			addRoutes(gated, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: adminHandler.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/export", Handler: adminHandler.ExportReservations},
				{Method: http.MethodGet, Path: "/blocked-times", Handler: adminHandler.ListBlockedTimes},
				{Method: http.MethodPost, Path: "/blocked-times", Handler: adminHandler.BlockSlots},
				{Method: http.MethodGet, Path: "/stats", Handler: adminHandler.Statistics},
				{Method: http.MethodGet, Path: "/pricing", Handler: pricingHandler.GetSettings},
				{Method: http.MethodPut, Path: "/pricing", Handler: pricingHandler.UpdateSettings},
				{Method: http.MethodPost, Path: "/pricing/simulate", Handler: pricingHandler.Simulate},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
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
