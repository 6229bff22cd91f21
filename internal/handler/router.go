package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"household-services/internal/domain/user"
	"household-services/internal/handler/api"
	"household-services/internal/handler/middleware"
	"household-services/internal/infra/realtime"
	"household-services/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking      *api.BookingHandler
	Service      *api.ServiceHandler
	Announcement *api.AnnouncementHandler
	Realtime     *api.RealtimeHandler
}

func NewHandlers(
	booking *api.BookingHandler,
	service *api.ServiceHandler,
	announcement *api.AnnouncementHandler,
	rt *api.RealtimeHandler,
) Handlers {
	return Handlers{
		Booking:      booking,
		Service:      service,
		Announcement: announcement,
		Realtime:     rt,
	}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	registry *realtime.Registry,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *realtime.Registry) {
	engine.GET("/health", healthCheck(registry))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET(cfg.Realtime.Path, authMiddleware.RequireAuth(), h.Realtime.Connect)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{
				Method:  http.MethodPost,
				Path:    "",
				Handler: h.Booking.CreateBooking,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoles(user.RoleCustomer)},
			},
			{
				Method:  http.MethodGet,
				Path:    "",
				Handler: h.Booking.ListBookings,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoles(user.RoleCustomer, user.RoleVendor)},
			},
			{
				Method:  http.MethodPut,
				Path:    "/:id/status",
				Handler: h.Booking.UpdateBookingStatus,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoles(user.RoleCustomer, user.RoleVendor, user.RoleAdmin)},
			},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRoles(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPut, Path: "/services/:id/approve", Handler: h.Service.ApproveService},
		})

		vendor := apiGroup.Group("/vendor")
		vendor.Use(authMiddleware.RequireRoles(user.RoleVendor))
		addRoutes(vendor, []route{
			{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Service.DeleteService},
		})

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodPost,
				Path:    "/announcements",
				Handler: h.Announcement.Announce,
				Mw:      []gin.HandlerFunc{authMiddleware.RequireRoles(user.RoleAdmin)},
			},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy and report live realtime connections
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func healthCheck(registry *realtime.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Service is healthy",
			"realtime": registry.Stats(),
		})
	}
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
