// router/router.go

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/staffledger/api/config"
	"github.com/staffledger/api/controller"
	"github.com/staffledger/api/middleware"
)

// SetupRouter builds the engine. limiter may be nil when rate limiting is off.
func SetupRouter(
	controllers *controller.Controllers,
	gatherer prometheus.Gatherer,
	limiter middleware.Limiter,
	rateLimit config.RateLimitConfiguration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	if rateLimit.Enabled && limiter != nil {
		api.Use(middleware.RateLimiter(limiter, rateLimit.Requests, rateLimit.Window))
	}

	controllers.Employee.RegisterRoutes(api)

	return router
}
