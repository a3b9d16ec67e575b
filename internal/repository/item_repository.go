package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	GetByItemID(itemID string) (*models.Item, error)
	GetByCompany(companyID uint) ([]models.Item, error)
	GetAll() ([]models.Item, error)
	Update(item *models.Item) error
	Deactivate(item *models.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("is_active = ?", true).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByItemID resolves the catalog business key clients send on the wire.
func (r *itemRepository) GetByItemID(itemID string) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("item_id = ? AND is_active = ?", itemID, true).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByCompany(companyID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("company_id = ? AND is_active = ?", companyID, true).Find(&items).Error
	return items, err
}

func (r *itemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("is_active = ?", true).Find(&items).Error
	return items, err
}

func (r *itemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepository) Deactivate(item *models.Item) error {
	item.IsActive = false
	return r.db.Save(item).Error
}
