package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"
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
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.RequestHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, itemHandler, bookingHandler, requestHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	itemHandler *api.ItemHandler,
	bookingHandler *api.BookingHandler,
	requestHandler *api.RequestHandler,
) {
	engine.GET("/health", healthCheck)

	metrics.Register()
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: userHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: userHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: userHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: userHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: userHandler.Delete},
		})
	}

	items := engine.Group("/items")
	items.Use(middleware.RequireSharer())
	{
		addRoutes(items, []route{
			{Method: http.MethodPost, Path: "", Handler: itemHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: itemHandler.ListOwn},
			{Method: http.MethodGet, Path: "/search", Handler: itemHandler.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: itemHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: itemHandler.Delete},
			{Method: http.MethodPost, Path: "/:id/comment", Handler: itemHandler.AddComment},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.RequireSharer())
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListByBooker},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListByOwner},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Decide},
		})
	}

	requests := engine.Group("/requests")
	requests.Use(middleware.RequireSharer())
	{
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: requestHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: requestHandler.ListOwn},
			{Method: http.MethodGet, Path: "/all", Handler: requestHandler.ListOthers},
			{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.Get},
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
