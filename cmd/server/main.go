package main

import (
	"log"
	"time"

	"erp_backoffice/internal/config"
	"erp_backoffice/internal/database"
	"erp_backoffice/internal/handlers"
	"erp_backoffice/internal/migrations"
	"erp_backoffice/internal/redis"
	"erp_backoffice/internal/repository"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	itemRepo := repository.NewItemRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	clientRepo := repository.NewClientRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	priceListRepo := repository.NewPriceListRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	orderDetailRepo := repository.NewOrderDetailRepository(db)
	authorizationRepo := repository.NewAuthorizationRepository(db)
	deliveredRepo := repository.NewDeliveredQuantityRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	addressRepo := repository.NewDeliverAddressRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	// Initialize services
	tokenTTL := time.Duration(cfg.TokenTTL) * time.Second
	authService := services.NewAuthService(userRepo, redisClient, tokenTTL)
	userService := services.NewUserService(userRepo, roleRepo)
	orderService := services.NewOrderService(orderRepo, salesOrderRepo, orderDetailRepo, itemRepo)
	authorizationService := services.NewAuthorizationService(authorizationRepo)
	catalogService := services.NewCatalogService(itemRepo, warehouseRepo, inventoryRepo, companyRepo)
	companyService := services.NewCompanyService(companyRepo)
	clientService := services.NewClientService(clientRepo, agentRepo, priceListRepo, companyRepo, itemRepo, warehouseRepo)
	fulfillmentService := services.NewFulfillmentService(deliveredRepo, invoiceRepo, addressRepo, companyRepo, itemRepo, clientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	orderHandler := handlers.NewOrderHandler(orderService, authorizationService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	clientHandler := handlers.NewClientHandler(clientService)
	fulfillmentHandler := handlers.NewFulfillmentHandler(fulfillmentService)

	// Setup routes
	router := gin.Default()
	handlers.RegisterRoutes(
		router,
		authService,
		authHandler,
		orderHandler,
		catalogHandler,
		companyHandler,
		clientHandler,
		fulfillmentHandler,
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
