package routes

import (
	"net/http"
	"time"

	_ "instant_offer/docs" // generated by swag init
	"instant_offer/internal/adapter/http/handlers"
	"instant_offer/internal/adapter/http/middleware"
	"instant_offer/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer needs from the composition root.
type Dependencies struct {
	Quotes    usecase.IQuoteUseCase
	Actions   usecase.IQuoteActionUseCase
	Condition usecase.IConditionUseCase
	Vehicles  usecase.IVehicleUseCase

	Logger *zap.Logger
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer

	AllowedOrigins     []string
	AdminAPIKey        string
	RateLimitPerMinute int
	RateLimitBurst     int
}

// NewRouter wires middlewares and every route group.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, logger, deps.AllowedOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	quoteHandler := handlers.NewQuoteHandler(deps.Quotes, deps.Actions, logger)
	adminHandler := handlers.NewAdminHandler(deps.Quotes, deps.Actions, logger)
	conditionHandler := handlers.NewConditionHandler(deps.Condition)
	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)

	limiter := middleware.NewRateLimiter(deps.RateLimitPerMinute, deps.RateLimitBurst, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, conditionHandler, vehicleHandler)
	addQuoteRoutes(v1, quoteHandler, limiter.Middleware())
	addAdminRoutes(v1, adminHandler, middleware.AdminKeyAuth(deps.AdminAPIKey))

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger, origins []string) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.AdminKeyHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	router.Use(cors.New(corsCfg))
}
