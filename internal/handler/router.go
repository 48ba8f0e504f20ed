package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foody/internal/handler/api"
	"foody/internal/handler/middleware"
	"foody/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offers       *api.OfferHandler
	Reservations *api.ReservationHandler
	Restaurants  *api.RestaurantHandler
	Bot          *api.BotHandler
}

func NewHandlers(
	offers *api.OfferHandler,
	reservations *api.ReservationHandler,
	restaurants *api.RestaurantHandler,
	bot *api.BotHandler,
) Handlers {
	return Handlers{Offers: offers, Reservations: reservations, Restaurants: restaurants, Bot: bot}
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Bot.Enabled() {
		engine.POST("/tg/webhook", h.Bot.Webhook)
	}

	v1 := engine.Group("/api/v1")
	{
		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/offers", Handler: h.Offers.ListActive},
			{Method: http.MethodGet, Path: "/offers/:id", Handler: h.Offers.Get},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservations.Reserve, Mw: []gin.HandlerFunc{limiter.Middleware("reserve")}},
			{Method: http.MethodGet, Path: "/buyers/:buyer_id/reservations", Handler: h.Reservations.ListByBuyer},
		})

		merchant := v1.Group("/merchant")
		merchant.Use(authMiddleware.RequireMerchant())
		addRoutes(merchant, []route{
			{Method: http.MethodGet, Path: "/offers", Handler: h.Offers.ListMine},
			{Method: http.MethodPost, Path: "/offers", Handler: h.Offers.Create},
			{Method: http.MethodPost, Path: "/offers/:id/archive", Handler: h.Offers.Archive},
			{Method: http.MethodPut, Path: "/offers/:id/quantity", Handler: h.Offers.AdjustQuantity},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservations.ListForRestaurant},
			{Method: http.MethodGet, Path: "/reservations/export", Handler: h.Reservations.Export},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservations.GetForRestaurant},
			{Method: http.MethodPost, Path: "/reservations/redeem", Handler: h.Reservations.Redeem},
			{Method: http.MethodPost, Path: "/reservations/:id/redeem", Handler: h.Reservations.RedeemByID},
		})

		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/restaurants", Handler: h.Restaurants.Register},
			{Method: http.MethodPost, Path: "/restaurants/:id/rotate-key", Handler: h.Restaurants.RotateKey},
			{Method: http.MethodPost, Path: "/restaurants/:id/archive", Handler: h.Restaurants.Archive},
		})
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
