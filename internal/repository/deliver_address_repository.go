package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type DeliverAddressRepository interface {
	Create(address *models.DeliverAddress) error
	GetByID(id uint) (*models.DeliverAddress, error)
	GetByClient(clientID uint) ([]models.DeliverAddress, error)
	GetAll() ([]models.DeliverAddress, error)
	Update(address *models.DeliverAddress) error
	Deactivate(address *models.DeliverAddress) error
}

type deliverAddressRepository struct {
	db *gorm.DB
}

func NewDeliverAddressRepository(db *gorm.DB) DeliverAddressRepository {
	return &deliverAddressRepository{db: db}
}

func (r *deliverAddressRepository) Create(address *models.DeliverAddress) error {
	return r.db.Create(address).Error
}

func (r *deliverAddressRepository) GetByID(id uint) (*models.DeliverAddress, error) {
	var address models.DeliverAddress
	err := r.db.Where("is_active = ?", true).First(&address, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *deliverAddressRepository) GetByClient(clientID uint) ([]models.DeliverAddress, error) {
	var addresses []models.DeliverAddress
	err := r.db.Where("client_id = ? AND is_active = ?", clientID, true).Find(&addresses).Error
	return addresses, err
}

func (r *deliverAddressRepository) GetAll() ([]models.DeliverAddress, error) {
	var addresses []models.DeliverAddress
	err := r.db.Where("is_active = ?", true).Find(&addresses).Error
	return addresses, err
}

func (r *deliverAddressRepository) Update(address *models.DeliverAddress) error {
	return r.db.Save(address).Error
}

func (r *deliverAddressRepository) Deactivate(address *models.DeliverAddress) error {
	address.IsActive = false
	return r.db.Save(address).Error
}
