package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type PriceListRepository interface {
	Create(priceList *models.PriceList) error
	GetByID(id uint) (*models.PriceList, error)
	GetByPriceListID(priceListID string) (*models.PriceList, error)
	GetAll() ([]models.PriceList, error)
	Update(priceList *models.PriceList) error
	Deactivate(priceList *models.PriceList) error
}

type priceListRepository struct {
	db *gorm.DB
}

func NewPriceListRepository(db *gorm.DB) PriceListRepository {
	return &priceListRepository{db: db}
}

func (r *priceListRepository) Create(priceList *models.PriceList) error {
	return r.db.Create(priceList).Error
}

func (r *priceListRepository) GetByID(id uint) (*models.PriceList, error) {
	var priceList models.PriceList
	err := r.db.Where("is_active = ?", true).First(&priceList, id).Error
	if err != nil {
		return nil, err
	}
	return &priceList, nil
}

func (r *priceListRepository) GetByPriceListID(priceListID string) (*models.PriceList, error) {
	var priceList models.PriceList
	err := r.db.Where("price_list_id = ? AND is_active = ?", priceListID, true).First(&priceList).Error
	if err != nil {
		return nil, err
	}
	return &priceList, nil
}

func (r *priceListRepository) GetAll() ([]models.PriceList, error) {
	var priceLists []models.PriceList
	err := r.db.Where("is_active = ?", true).Find(&priceLists).Error
	return priceLists, err
}

func (r *priceListRepository) Update(priceList *models.PriceList) error {
	return r.db.Save(priceList).Error
}

func (r *priceListRepository) Deactivate(priceList *models.PriceList) error {
	priceList.IsActive = false
	return r.db.Save(priceList).Error
}
