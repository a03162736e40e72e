// Package router assembles the Gin engine: global middleware, the health
// endpoint, and every domain module's routes.
package router

import (
	"net/http"
	"time"

	apphttp "calldex_backend/internal/http"
	"calldex_backend/platform/config"
	"calldex_backend/platform/httpkit"
	"calldex_backend/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// AuthChain is the ordered middleware that protects authenticated routes:
// token verification first, then the identity load.
type AuthChain []gin.HandlerFunc

// New builds the HTTP engine and mounts all modules.
func New(cfg *config.Config, log *logger.Logger, authChain AuthChain, modules ...apphttp.Module) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	// Global per-IP limit mirrors the 100-requests-per-15-minutes window
	// the public API has always enforced.
	globalLimiter := httpkit.NewIPRateLimiter(rate.Limit(100.0/900.0), 100, log)
	engine.Use(globalLimiter.RateLimit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	api := engine.Group("/api")
	protected := api.Group("")
	protected.Use(authChain...)

	ctx := &apphttp.RouterContext{
		Engine:          engine,
		API:             api,
		Protected:       protected,
		AuthRateLimiter: httpkit.NewAuthRateLimiter(log),
	}

	for _, module := range modules {
		module.RegisterRoutes(ctx)
		log.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg config.HTTPConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = cfg.GetCORSAllowCreds()
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}

	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}

	return corsCfg
}
