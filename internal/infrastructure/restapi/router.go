package restapi

import (
	"slices"

	"evm_chains/internal/app/port"
	"evm_chains/internal/infrastructure/configloader"
	"evm_chains/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SetupRouter wires middleware and routes of the chain API. metrics may be nil.
func SetupRouter(h *ChainHandler, cfg *configloader.Config, metrics *Metrics, log port.Logger) *gin.Engine {
	log = logger.OrNop(log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(metrics.Middleware())
	router.Use(cors.New(corsConfig(cfg.API.AllowedOrigins)))

	router.GET("/healthz", h.HealthHandler)
	if metrics != nil && cfg.Metrics.IsEnabled() {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.API.RateLimitPerSecond), cfg.API.RateLimitBurst)
	v1 := router.Group("/api/v1", RateLimitMiddleware(limiter))
	{
		v1.GET("/chains", h.ListChainsHandler)
		v1.GET("/chains/:chainId", h.GetChainHandler)
		v1.GET("/names/:name", h.FindByNameHandler)
		v1.GET("/search", h.SearchHandler)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
