package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(inventory *models.Inventory) error
	GetByID(id uint) (*models.Inventory, error)
	GetByWarehouse(warehouseID uint) ([]models.Inventory, error)
	GetAll() ([]models.Inventory, error)
	Update(inventory *models.Inventory) error
	Deactivate(inventory *models.Inventory) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(inventory *models.Inventory) error {
	return r.db.Create(inventory).Error
}

func (r *inventoryRepository) GetByID(id uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := r.db.Where("is_active = ?", true).First(&inventory, id).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) GetByWarehouse(warehouseID uint) ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := r.db.Where("warehouse_id = ? AND is_active = ?", warehouseID, true).Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepository) GetAll() ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := r.db.Where("is_active = ?", true).Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepository) Update(inventory *models.Inventory) error {
	return r.db.Save(inventory).Error
}

func (r *inventoryRepository) Deactivate(inventory *models.Inventory) error {
	inventory.IsActive = false
	return r.db.Save(inventory).Error
}
