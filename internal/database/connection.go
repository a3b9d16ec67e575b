package database

import (
	"fmt"
	"log"

	"erp_backoffice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate all models
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}
