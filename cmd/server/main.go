package main

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/yungbote/orderbridge-backend/internal/db"
	"github.com/yungbote/orderbridge-backend/internal/handlers"
	"github.com/yungbote/orderbridge-backend/internal/memdb"
	"github.com/yungbote/orderbridge-backend/internal/middleware"
	"github.com/yungbote/orderbridge-backend/internal/pkg/envutil"
	"github.com/yungbote/orderbridge-backend/internal/pkg/logger"
	"github.com/yungbote/orderbridge-backend/internal/repos"
	"github.com/yungbote/orderbridge-backend/internal/server"
	"github.com/yungbote/orderbridge-backend/internal/services"
)

func main() {
	// Logger
	log, err := logger.New(envutil.Str("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres. The v1 API runs entirely in memory, so a missing database
	// degrades the service to v1 instead of refusing to start.
	var gdb *gorm.DB
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Warn("Postgres init failed, v2 reads will be unavailable", "error", err)
	} else {
		if err := postgresService.AutoMigrateAll(); err != nil {
			log.Warn("Postgres auto migration failed", "error", err)
		}
		gdb = postgresService.DB()
	}

	// Repos
	log.Info("Setting up repos...")
	var userRepo repos.UserRepo
	var orderRepo repos.OrderRepo
	if gdb != nil {
		userRepo = repos.NewUserRepo(gdb, log)
		orderRepo = repos.NewOrderRepo(gdb, log)
	}

	// Stores and services
	log.Info("Setting up services...")
	mem := memdb.New()
	importService := services.NewImportService(gdb, log, userRepo, orderRepo, mem)
	memOrderService := services.NewMemOrderService(log, mem)
	var orderService services.OrderReader = memOrderService
	if gdb != nil {
		orderService = services.NewOrderService(gdb, log, orderRepo)
	}

	// Handlers
	log.Info("Setting up handlers...")
	ordersV1Handler := handlers.NewOrdersHandler(log, importService, memOrderService)
	ordersV2Handler := handlers.NewOrdersHandler(log, importService, orderService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		RequestLog:      middleware.NewRequestLogMiddleware(log),
		OrdersV1Handler: ordersV1Handler,
		OrdersV2Handler: ordersV2Handler,
	})

	port := envutil.Str("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
