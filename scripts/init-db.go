package main

import (
	"fmt"
	"log"

	"erp_backoffice/internal/config"
	"erp_backoffice/internal/database"
	"erp_backoffice/internal/migrations"
	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"
	"erp_backoffice/internal/services"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Company{},
		&models.Warehouse{},
		&models.Item{},
		&models.Inventory{},
		&models.Agent{},
		&models.PriceList{},
		&models.Client{},
		&models.Order{},
		&models.SalesOrder{},
		&models.OrderDetail{},
		&models.Authorization{},
		&models.DeliveredQuantity{},
		&models.Invoice{},
		&models.DeliverAddress{},
		&models.Role{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	// Recreate schema plus default roles and the admin account
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed a sample company and catalog item so the API is usable right away
	fmt.Println("Seeding sample catalog data...")
	companyRepo := repository.NewCompanyRepository(db)
	itemRepo := repository.NewItemRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	catalogService := services.NewCatalogService(itemRepo, warehouseRepo, inventoryRepo, companyRepo)

	company := &models.Company{CompanyID: "222", Name: "Papeles de Toluca", IsActive: true}
	if err := companyRepo.Create(company); err != nil {
		log.Printf("Warning: Failed to seed company: %v", err)
	}

	cost := 2.4632
	_, err = catalogService.CreateItem(&services.CreateItemRequest{
		ItemID:      "20012020",
		Description: "CAJA CARTON DMOX-3 1/2",
		UdVta:       "MIL",
		AccessKey:   "44",
		StandarCost: &cost,
		Company:     company.CompanyID,
	})
	if err != nil {
		log.Printf("Warning: Failed to seed item: %v", err)
	}

	fmt.Println("Database initialization complete.")
}
