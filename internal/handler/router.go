package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"brrow-engine/internal/handler/api"
	"brrow-engine/internal/handler/middleware"
	"brrow-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Offer     *api.OfferHandler
	Upload    *api.UploadHandler
	Countdown *api.CountdownHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		offers := apiGroup.Group("/offers")
		addRoutes(offers, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Offer.Open},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Offer.Get},
			{Method: http.MethodPut, Path: "/:id/amount", Handler: h.Offer.SetAmount},
			{Method: http.MethodPost, Path: "/:id/adjust", Handler: h.Offer.Adjust},
			{Method: http.MethodPut, Path: "/:id/message", Handler: h.Offer.SetMessage},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Offer.Submit},
			{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Offer.ResolvePayment},
			{Method: http.MethodPost, Path: "/:id/status", Handler: h.Offer.ApplyStatus},
			{Method: http.MethodGet, Path: "/:id/events", Handler: h.Offer.Events},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Offer.Close},
		})

		uploads := apiGroup.Group("/uploads")
		addRoutes(uploads, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Upload.StartBatch},
			{Method: http.MethodDelete, Path: "", Handler: h.Upload.Discard},
			{Method: http.MethodGet, Path: "/:batchId", Handler: h.Upload.Get},
			{Method: http.MethodPost, Path: "/:batchId/cancel", Handler: h.Upload.CancelAll},
			{Method: http.MethodPost, Path: "/:batchId/files", Handler: h.Upload.UploadFiles},
			{Method: http.MethodDelete, Path: "/:batchId/assets/index/:index", Handler: h.Upload.Remove},
			{Method: http.MethodPost, Path: "/:batchId/assets/:assetId/begin", Handler: h.Upload.Begin},
			{Method: http.MethodPost, Path: "/:batchId/assets/:assetId/progress", Handler: h.Upload.Progress},
			{Method: http.MethodPost, Path: "/:batchId/assets/:assetId/complete", Handler: h.Upload.Complete},
			{Method: http.MethodPost, Path: "/:batchId/assets/:assetId/fail", Handler: h.Upload.Fail},
			{Method: http.MethodPost, Path: "/:batchId/assets/:assetId/cancel", Handler: h.Upload.Cancel},
			{Method: http.MethodPut, Path: "/:batchId/assets/:assetId/content", Handler: h.Upload.UploadContent},
		})

		countdowns := apiGroup.Group("/countdowns")
		addRoutes(countdowns, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Countdown.Start},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Countdown.Get},
			{Method: http.MethodGet, Path: "/:id/stream", Handler: h.Countdown.Stream},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Countdown.Stop},
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
