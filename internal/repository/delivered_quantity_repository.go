package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type DeliveredQuantityRepository interface {
	Create(quantity *models.DeliveredQuantity) error
	GetByOrderNumber(orderNumber int64) (*models.DeliveredQuantity, error)
	GetAll() ([]models.DeliveredQuantity, error)
	Update(quantity *models.DeliveredQuantity) error
	Deactivate(quantity *models.DeliveredQuantity) error
}

type deliveredQuantityRepository struct {
	db *gorm.DB
}

func NewDeliveredQuantityRepository(db *gorm.DB) DeliveredQuantityRepository {
	return &deliveredQuantityRepository{db: db}
}

func (r *deliveredQuantityRepository) Create(quantity *models.DeliveredQuantity) error {
	return r.db.Create(quantity).Error
}

func (r *deliveredQuantityRepository) GetByOrderNumber(orderNumber int64) (*models.DeliveredQuantity, error) {
	var quantity models.DeliveredQuantity
	err := r.db.Where("order_number = ? AND is_active = ?", orderNumber, true).First(&quantity).Error
	if err != nil {
		return nil, err
	}
	return &quantity, nil
}

func (r *deliveredQuantityRepository) GetAll() ([]models.DeliveredQuantity, error) {
	var quantities []models.DeliveredQuantity
	err := r.db.Where("is_active = ?", true).Find(&quantities).Error
	return quantities, err
}

func (r *deliveredQuantityRepository) Update(quantity *models.DeliveredQuantity) error {
	return r.db.Save(quantity).Error
}

func (r *deliveredQuantityRepository) Deactivate(quantity *models.DeliveredQuantity) error {
	quantity.IsActive = false
	return r.db.Save(quantity).Error
}
