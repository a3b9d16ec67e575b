package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetByCompanyID(companyID string) (*models.Company, error)
	GetAll() ([]models.Company, error)
	Update(company *models.Company) error
	Deactivate(company *models.Company) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("is_active = ?", true).First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetByCompanyID(companyID string) (*models.Company, error) {
	var company models.Company
	err := r.db.Where("company_id = ? AND is_active = ?", companyID, true).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) GetAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("is_active = ?", true).Find(&companies).Error
	return companies, err
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *companyRepository) Deactivate(company *models.Company) error {
	company.IsActive = false
	return r.db.Save(company).Error
}
