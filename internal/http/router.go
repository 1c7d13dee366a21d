package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "networth-tracker/docs"
	"networth-tracker/internal/common/config"
	"networth-tracker/internal/common/middleware"
	currencyHTTP "networth-tracker/internal/features/currency/delivery/http"
	dashboardHTTP "networth-tracker/internal/features/dashboard/delivery/http"
	dashboardService "networth-tracker/internal/features/dashboard/service"
	onboardingHTTP "networth-tracker/internal/features/onboarding/delivery/http"
	onboardingService "networth-tracker/internal/features/onboarding/service"
	sessionHTTP "networth-tracker/internal/features/session/delivery/http"
	sessionService "networth-tracker/internal/features/session/service"
	"networth-tracker/internal/platform/kv"
)

const serviceName = "networth-tracker"

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Config     *config.Config
	Log        zerolog.Logger
	Store      kv.Store
	Session    *sessionService.Session
	Onboarding onboardingService.OnboardingService
	Dashboard  dashboardService.DashboardService
}

// NewRouter builds the gin engine with middleware, API routes, probes and swagger.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(d.Log))
	router.Use(middleware.Logger())
	router.Use(middleware.HandleErrors(d.Log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{d.Config.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/" + d.Config.Server.APIVersion)

	sessionHTTP.NewSessionHandler(d.Session, d.Onboarding).RegisterRoutes(v1)
	onboardingHTTP.NewOnboardingHandler(d.Onboarding, d.Log).RegisterRoutes(v1)
	currencyHTTP.NewCurrencyHandler().RegisterRoutes(v1)
	dashboardHTTP.NewDashboardHandler(d.Dashboard, d.Session, d.Log).RegisterRoutes(v1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := d.Store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "storage unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	return router
}
