package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	GetByClientID(clientID string) (*models.Client, error)
	GetAll() ([]models.Client, error)
	Update(client *models.Client) error
	Deactivate(client *models.Client) error
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("is_active = ?", true).First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByClientID(clientID string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("client_id = ? AND is_active = ?", clientID, true).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("is_active = ?", true).Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Deactivate(client *models.Client) error {
	client.IsActive = false
	return r.db.Save(client).Error
}
