package services

import (
	"errors"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

type CreateCompanyRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
}

type CompanyService interface {
	CreateCompany(req *CreateCompanyRequest) (*models.Company, error)
	GetCompany(companyID string) (*models.Company, error)
	GetAllCompanies() ([]models.Company, error)
	UpdateCompany(companyID string, name string) (*models.Company, error)
	DeactivateCompany(companyID string) (*models.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(req *CreateCompanyRequest) (*models.Company, error) {
	fieldErrs := FieldErrors{}
	if req.CompanyID == "" {
		fieldErrs["company_id"] = msgRequired
	}
	if req.Name == "" {
		fieldErrs["name"] = msgRequired
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	company := &models.Company{
		CompanyID: req.CompanyID,
		Name:      req.Name,
		IsActive:  true,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetCompany(companyID string) (*models.Company, error) {
	company, err := s.companyRepo.GetByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetAllCompanies() ([]models.Company, error) {
	return s.companyRepo.GetAll()
}

func (s *companyService) UpdateCompany(companyID string, name string) (*models.Company, error) {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		company.Name = name
	}
	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) DeactivateCompany(companyID string) (*models.Company, error) {
	company, err := s.GetCompany(companyID)
	if err != nil {
		return nil, err
	}
	if err := s.companyRepo.Deactivate(company); err != nil {
		return nil, err
	}
	return company, nil
}
