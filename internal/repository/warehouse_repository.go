package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *models.Warehouse) error
	GetByID(id uint) (*models.Warehouse, error)
	GetByWarehouseID(warehouseID string) (*models.Warehouse, error)
	GetAll() ([]models.Warehouse, error)
	Update(warehouse *models.Warehouse) error
	Deactivate(warehouse *models.Warehouse) error
}

type warehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(warehouse *models.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepository) GetByID(id uint) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.Where("is_active = ?", true).First(&warehouse, id).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) GetByWarehouseID(warehouseID string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := r.db.Where("warehouse_id = ? AND is_active = ?", warehouseID, true).First(&warehouse).Error
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepository) GetAll() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.db.Where("is_active = ?", true).Find(&warehouses).Error
	return warehouses, err
}

func (r *warehouseRepository) Update(warehouse *models.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepository) Deactivate(warehouse *models.Warehouse) error {
	warehouse.IsActive = false
	return r.db.Save(warehouse).Error
}
