package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hako/durafmt"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gag-stock-bot/docs"
	apperrors "gag-stock-bot/internal/common/errors"
	"gag-stock-bot/internal/common/metrics"
	"gag-stock-bot/internal/common/middleware"
	"gag-stock-bot/internal/web"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Store     string    `json:"store"`
	Uptime    string    `json:"uptime,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (b *bot) router() *gin.Engine {
	if !b.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{b.cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	b.webhook.RegisterRoutes(router)
	web.RegisterRoutes(router)

	router.GET("/health", b.health)
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", middleware.HandleErrorWrapper()(b.ready))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// @Summary Health check
// @Description Reports process uptime and the storage driver
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (b *bot) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Store:     b.cfg.Store.Driver,
		Uptime:    durafmt.Parse(b.app.Uptime().Round(time.Second)).String(),
		Timestamp: time.Now().UTC(),
	})
}

// @Summary Readiness probe
// @Description Pings the configured store
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} middleware.ErrorResponse "Store unavailable"
// @Router /ready [get]
func (b *bot) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := b.store.Ping(ctx); err != nil {
		_ = c.Error(apperrors.NewStorageError("ping", err))
		return
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ready",
		Service:   serviceName,
		Store:     b.cfg.Store.Driver,
		Timestamp: time.Now().UTC(),
	})
}
