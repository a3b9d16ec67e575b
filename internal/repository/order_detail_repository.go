package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type OrderDetailRepository interface {
	GetByOrderID(orderID uint) (*models.OrderDetail, error)
	Update(detail *models.OrderDetail) error
}

type orderDetailRepository struct {
	db *gorm.DB
}

func NewOrderDetailRepository(db *gorm.DB) OrderDetailRepository {
	return &orderDetailRepository{db: db}
}

// GetByOrderID looks the detail up by its owning order, not by its own ID.
// That is the identifier callers have after placing an order.
func (r *orderDetailRepository) GetByOrderID(orderID uint) (*models.OrderDetail, error) {
	var detail models.OrderDetail
	err := r.db.Where("order_id = ? AND is_active = ?", orderID, true).First(&detail).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *orderDetailRepository) Update(detail *models.OrderDetail) error {
	return r.db.Save(detail).Error
}
