package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderbridge-backend/internal/handlers"
	"github.com/yungbote/orderbridge-backend/internal/middleware"
)

type RouterConfig struct {
	RequestLog      *middleware.RequestLogMiddleware
	OrdersV1Handler *handlers.OrdersHandler
	OrdersV2Handler *handlers.OrdersHandler
}

// NewRouter wires the two API versions: v1 reads from the in-memory
// store, v2 from Postgres. Uploads are accepted on either.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLog != nil {
		router.Use(cfg.RequestLog.Handler())
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		v1 := api.Group("/v1/orders")
		v1.POST("", cfg.OrdersV1Handler.ImportLegacyOrders)
		v1.GET("", cfg.OrdersV1Handler.ListOrders)
		v1.GET("/:id", cfg.OrdersV1Handler.FindOrder)

		v2 := api.Group("/v2/orders")
		v2.POST("", cfg.OrdersV2Handler.ImportLegacyOrders)
		v2.GET("", cfg.OrdersV2Handler.ListOrders)
		v2.GET("/:id", cfg.OrdersV2Handler.FindOrder)
	}

	return router
}
