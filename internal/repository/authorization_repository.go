package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type AuthorizationRepository interface {
	GetByOrderID(orderID uint) (*models.Authorization, error)
	GetAll() ([]models.Authorization, error)
	Update(authorization *models.Authorization) error
}

type authorizationRepository struct {
	db *gorm.DB
}

func NewAuthorizationRepository(db *gorm.DB) AuthorizationRepository {
	return &authorizationRepository{db: db}
}

func (r *authorizationRepository) GetByOrderID(orderID uint) (*models.Authorization, error) {
	var authorization models.Authorization
	err := r.db.Where("order_id = ? AND is_active = ?", orderID, true).First(&authorization).Error
	if err != nil {
		return nil, err
	}
	return &authorization, nil
}

// TODO: filter to orders whose sales order is still inProgress once the
// fulfillment pipeline starts moving orders past that status.
func (r *authorizationRepository) GetAll() ([]models.Authorization, error) {
	var authorizations []models.Authorization
	err := r.db.Where("is_active = ?", true).Find(&authorizations).Error
	return authorizations, err
}

func (r *authorizationRepository) Update(authorization *models.Authorization) error {
	return r.db.Save(authorization).Error
}
