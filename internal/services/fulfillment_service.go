package services

import (
	"errors"
	"time"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

type CreateDeliveredQuantityRequest struct {
	Company  string   `json:"company"`
	Order    int64    `json:"order"`
	Position int      `json:"position"`
	MovDate  string   `json:"mov_date"`
	Time     int64    `json:"time"`
	Sequence int      `json:"sequence"`
	RegType  int      `json:"reg_type"`
	Quantity *float64 `json:"quantity"`
	Item     string   `json:"item"`
}

type CreateInvoiceRequest struct {
	Company       string `json:"company"`
	InvoiceNumber int64  `json:"invoice_number"`
	Position      int    `json:"position"`
	Delivery      int    `json:"delivery"`
	TransType     string `json:"trans_type"`
	Item          string `json:"item"`
	InvoiceDate   string `json:"invoice_date"`
	Client        string `json:"client"`
}

type CreateDeliverAddressRequest struct {
	Company    string `json:"company"`
	Client     string `json:"client"`
	DelAddress string `json:"del_address"`
	NameA      string `json:"nameA"`
	NameB      string `json:"nameB"`
	NameC      string `json:"nameC"`
	NameD      string `json:"nameD"`
	NameE      string `json:"nameE"`
	PostalCode string `json:"postal_code"`
	RouteCode  string `json:"route_code"`
	Country    string `json:"country"`
	RFC        string `json:"rfc"`
}

// FulfillmentService covers the post-placement order records: delivery
// movements, invoices and delivery addresses.
type FulfillmentService interface {
	CreateDeliveredQuantity(req *CreateDeliveredQuantityRequest) (*models.DeliveredQuantity, error)
	GetDeliveredQuantity(orderNumber int64) (*models.DeliveredQuantity, error)
	GetAllDeliveredQuantities() ([]models.DeliveredQuantity, error)
	DeactivateDeliveredQuantity(orderNumber int64) (*models.DeliveredQuantity, error)

	CreateInvoice(req *CreateInvoiceRequest) (*models.Invoice, error)
	GetInvoice(invoiceNumber int64) (*models.Invoice, error)
	GetAllInvoices() ([]models.Invoice, error)
	DeactivateInvoice(invoiceNumber int64) (*models.Invoice, error)

	CreateDeliverAddress(req *CreateDeliverAddressRequest) (*models.DeliverAddress, error)
	GetAllDeliverAddresses() ([]models.DeliverAddress, error)
	GetDeliverAddressesByClient(clientID string) ([]models.DeliverAddress, error)
	DeactivateDeliverAddress(id uint) (*models.DeliverAddress, error)
}

type fulfillmentService struct {
	deliveredRepo repository.DeliveredQuantityRepository
	invoiceRepo   repository.InvoiceRepository
	addressRepo   repository.DeliverAddressRepository
	companyRepo   repository.CompanyRepository
	itemRepo      repository.ItemRepository
	clientRepo    repository.ClientRepository
}

func NewFulfillmentService(
	deliveredRepo repository.DeliveredQuantityRepository,
	invoiceRepo repository.InvoiceRepository,
	addressRepo repository.DeliverAddressRepository,
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	clientRepo repository.ClientRepository,
) FulfillmentService {
	return &fulfillmentService{
		deliveredRepo: deliveredRepo,
		invoiceRepo:   invoiceRepo,
		addressRepo:   addressRepo,
		companyRepo:   companyRepo,
		itemRepo:      itemRepo,
		clientRepo:    clientRepo,
	}
}

func (s *fulfillmentService) resolveCompany(companyID string) (*models.Company, error) {
	company, err := s.companyRepo.GetByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"company": "Object with company_id=" + companyID + " does not exist."}
		}
		return nil, err
	}
	return company, nil
}

func (s *fulfillmentService) resolveItem(itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetByItemID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"item": "Object with item_id=" + itemID + " does not exist."}
		}
		return nil, err
	}
	return item, nil
}

func (s *fulfillmentService) CreateDeliveredQuantity(req *CreateDeliveredQuantityRequest) (*models.DeliveredQuantity, error) {
	fieldErrs := FieldErrors{}
	if req.Order == 0 {
		fieldErrs["order"] = msgRequired
	}
	if req.Quantity == nil {
		fieldErrs["quantity"] = msgRequired
	}
	if req.RegType < int(models.RegCaptured) || req.RegType > int(models.RegInvoiced) {
		fieldErrs["reg_type"] = "Not a valid choice."
	}
	movDate, err := time.Parse(wireDateFormat, req.MovDate)
	if err != nil {
		fieldErrs["mov_date"] = msgInvalidDate
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	company, err := s.resolveCompany(req.Company)
	if err != nil {
		return nil, err
	}
	item, err := s.resolveItem(req.Item)
	if err != nil {
		return nil, err
	}

	quantity := &models.DeliveredQuantity{
		CompanyID:   company.ID,
		OrderNumber: req.Order,
		Position:    req.Position,
		MovDate:     movDate,
		Time:        req.Time,
		Sequence:    req.Sequence,
		RegType:     req.RegType,
		Quantity:    *req.Quantity,
		ItemID:      item.ID,
		IsActive:    true,
	}
	if err := s.deliveredRepo.Create(quantity); err != nil {
		return nil, err
	}
	return quantity, nil
}

func (s *fulfillmentService) GetDeliveredQuantity(orderNumber int64) (*models.DeliveredQuantity, error) {
	quantity, err := s.deliveredRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return quantity, nil
}

func (s *fulfillmentService) GetAllDeliveredQuantities() ([]models.DeliveredQuantity, error) {
	return s.deliveredRepo.GetAll()
}

func (s *fulfillmentService) DeactivateDeliveredQuantity(orderNumber int64) (*models.DeliveredQuantity, error) {
	quantity, err := s.GetDeliveredQuantity(orderNumber)
	if err != nil {
		return nil, err
	}
	if err := s.deliveredRepo.Deactivate(quantity); err != nil {
		return nil, err
	}
	return quantity, nil
}

func (s *fulfillmentService) CreateInvoice(req *CreateInvoiceRequest) (*models.Invoice, error) {
	fieldErrs := FieldErrors{}
	if req.InvoiceNumber == 0 {
		fieldErrs["invoice_number"] = msgRequired
	}
	invoiceDate, err := time.Parse(wireDateFormat, req.InvoiceDate)
	if err != nil {
		fieldErrs["invoice_date"] = msgInvalidDate
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	company, err := s.resolveCompany(req.Company)
	if err != nil {
		return nil, err
	}
	item, err := s.resolveItem(req.Item)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByClientID(req.Client)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"client": "Object with client_id=" + req.Client + " does not exist."}
		}
		return nil, err
	}

	invoice := &models.Invoice{
		CompanyID:     company.ID,
		InvoiceNumber: req.InvoiceNumber,
		Position:      req.Position,
		Delivery:      req.Delivery,
		TransType:     req.TransType,
		ItemID:        item.ID,
		InvoiceDate:   invoiceDate,
		ClientID:      client.ID,
		IsActive:      true,
	}
	if err := s.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *fulfillmentService) GetInvoice(invoiceNumber int64) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(invoiceNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return invoice, nil
}

func (s *fulfillmentService) GetAllInvoices() ([]models.Invoice, error) {
	return s.invoiceRepo.GetAll()
}

func (s *fulfillmentService) DeactivateInvoice(invoiceNumber int64) (*models.Invoice, error) {
	invoice, err := s.GetInvoice(invoiceNumber)
	if err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Deactivate(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *fulfillmentService) CreateDeliverAddress(req *CreateDeliverAddressRequest) (*models.DeliverAddress, error) {
	if req.DelAddress == "" {
		return nil, FieldErrors{"del_address": msgRequired}
	}

	company, err := s.resolveCompany(req.Company)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByClientID(req.Client)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"client": "Object with client_id=" + req.Client + " does not exist."}
		}
		return nil, err
	}

	address := &models.DeliverAddress{
		CompanyID:  company.ID,
		ClientID:   client.ID,
		DelAddress: req.DelAddress,
		NameA:      req.NameA,
		NameB:      req.NameB,
		NameC:      req.NameC,
		NameD:      req.NameD,
		NameE:      req.NameE,
		PostalCode: req.PostalCode,
		RouteCode:  req.RouteCode,
		Country:    req.Country,
		RFC:        req.RFC,
		IsActive:   true,
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *fulfillmentService) GetAllDeliverAddresses() ([]models.DeliverAddress, error) {
	return s.addressRepo.GetAll()
}

func (s *fulfillmentService) GetDeliverAddressesByClient(clientID string) ([]models.DeliverAddress, error) {
	client, err := s.clientRepo.GetByClientID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"client": "Object with client_id=" + clientID + " does not exist."}
		}
		return nil, err
	}
	return s.addressRepo.GetByClient(client.ID)
}

func (s *fulfillmentService) DeactivateDeliverAddress(id uint) (*models.DeliverAddress, error) {
	address, err := s.addressRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if err := s.addressRepo.Deactivate(address); err != nil {
		return nil, err
	}
	return address, nil
}
