package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByInvoiceNumber(invoiceNumber int64) (*models.Invoice, error)
	GetAll() ([]models.Invoice, error)
	Update(invoice *models.Invoice) error
	Deactivate(invoice *models.Invoice) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepository) GetByInvoiceNumber(invoiceNumber int64) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Where("invoice_number = ? AND is_active = ?", invoiceNumber, true).First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("is_active = ?", true).Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Update(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}

func (r *invoiceRepository) Deactivate(invoice *models.Invoice) error {
	invoice.IsActive = false
	return r.db.Save(invoice).Error
}
