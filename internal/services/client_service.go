package services

import (
	"errors"
	"time"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

type CreateAgentRequest struct {
	Representant string `json:"representant"`
	Company      string `json:"company"`
}

type CreatePriceListRequest struct {
	PriceListID   string   `json:"price_list_id"`
	Company       string   `json:"company"`
	Item          string   `json:"item"`
	DiscountLevel int      `json:"discount_level"`
	CantOImp      int64    `json:"cantOImp"`
	Price         *float64 `json:"price"`
	Discount      *float64 `json:"discount"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
}

type CreateClientRequest struct {
	ClientID   string   `json:"client_id"`
	Company    string   `json:"company"`
	NameA      string   `json:"nameA"`
	NameB      string   `json:"nameB"`
	Status     int      `json:"status"`
	Agent      uint     `json:"agent"`
	Analist    string   `json:"analist"`
	Currency   string   `json:"currency"`
	CreditLim  int64    `json:"credit_lim"`
	Warehouse  string   `json:"warehouse"`
	PriceLists []string `json:"price_lists"`
}

type ClientService interface {
	CreateClient(req *CreateClientRequest) (*models.Client, error)
	GetClient(clientID string) (*models.Client, error)
	GetAllClients() ([]models.Client, error)
	DeactivateClient(clientID string) (*models.Client, error)

	CreateAgent(req *CreateAgentRequest) (*models.Agent, error)
	GetAllAgents() ([]models.Agent, error)

	CreatePriceList(req *CreatePriceListRequest) (*models.PriceList, error)
	GetPriceList(priceListID string) (*models.PriceList, error)
	GetAllPriceLists() ([]models.PriceList, error)
	DeactivatePriceList(priceListID string) (*models.PriceList, error)
}

type clientService struct {
	clientRepo    repository.ClientRepository
	agentRepo     repository.AgentRepository
	priceListRepo repository.PriceListRepository
	companyRepo   repository.CompanyRepository
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
}

func NewClientService(
	clientRepo repository.ClientRepository,
	agentRepo repository.AgentRepository,
	priceListRepo repository.PriceListRepository,
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
) ClientService {
	return &clientService{
		clientRepo:    clientRepo,
		agentRepo:     agentRepo,
		priceListRepo: priceListRepo,
		companyRepo:   companyRepo,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *clientService) CreateClient(req *CreateClientRequest) (*models.Client, error) {
	fieldErrs := FieldErrors{}
	if req.ClientID == "" {
		fieldErrs["client_id"] = msgRequired
	}
	if req.Company == "" {
		fieldErrs["company"] = msgRequired
	}
	if req.Warehouse == "" {
		fieldErrs["warehouse"] = msgRequired
	}
	if req.Status < int(models.ClientNormal) || req.Status > int(models.ClientPotential) {
		fieldErrs["status"] = "Not a valid choice."
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	company, err := s.companyRepo.GetByCompanyID(req.Company)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"company": "Object with company_id=" + req.Company + " does not exist."}
		}
		return nil, err
	}

	agent, err := s.agentRepo.GetByID(req.Agent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"agent": "Agent does not exist."}
		}
		return nil, err
	}

	warehouse, err := s.warehouseRepo.GetByWarehouseID(req.Warehouse)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"warehouse": "Object with warehouse_id=" + req.Warehouse + " does not exist."}
		}
		return nil, err
	}

	priceLists := make([]models.PriceList, 0, len(req.PriceLists))
	for _, priceListID := range req.PriceLists {
		priceList, err := s.priceListRepo.GetByPriceListID(priceListID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, FieldErrors{"price_lists": "Object with price_list_id=" + priceListID + " does not exist."}
			}
			return nil, err
		}
		priceLists = append(priceLists, *priceList)
	}

	client := &models.Client{
		ClientID:    req.ClientID,
		CompanyID:   company.ID,
		NameA:       req.NameA,
		NameB:       req.NameB,
		Status:      req.Status,
		AgentID:     agent.ID,
		Analist:     req.Analist,
		Currency:    req.Currency,
		CreditLim:   req.CreditLim,
		WarehouseID: warehouse.ID,
		PriceLists:  priceLists,
		IsActive:    true,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetClient(clientID string) (*models.Client, error) {
	client, err := s.clientRepo.GetByClientID(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetAllClients() ([]models.Client, error) {
	return s.clientRepo.GetAll()
}

func (s *clientService) DeactivateClient(clientID string) (*models.Client, error) {
	client, err := s.GetClient(clientID)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Deactivate(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) CreateAgent(req *CreateAgentRequest) (*models.Agent, error) {
	if req.Representant == "" {
		return nil, FieldErrors{"representant": msgRequired}
	}
	company, err := s.companyRepo.GetByCompanyID(req.Company)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"company": "Object with company_id=" + req.Company + " does not exist."}
		}
		return nil, err
	}

	agent := &models.Agent{
		Representant: req.Representant,
		CompanyID:    company.ID,
		IsActive:     true,
	}
	if err := s.agentRepo.Create(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *clientService) GetAllAgents() ([]models.Agent, error) {
	return s.agentRepo.GetAll()
}

func (s *clientService) CreatePriceList(req *CreatePriceListRequest) (*models.PriceList, error) {
	fieldErrs := FieldErrors{}
	if req.PriceListID == "" {
		fieldErrs["price_list_id"] = msgRequired
	}
	if req.Price == nil {
		fieldErrs["price"] = msgRequired
	}
	if req.DiscountLevel != 1 && req.DiscountLevel != 2 {
		fieldErrs["discount_level"] = "Not a valid choice."
	}

	var startDate, endDate time.Time
	var err error
	if startDate, err = time.Parse(wireDateFormat, req.StartDate); err != nil {
		fieldErrs["start_date"] = msgInvalidDate
	}
	if endDate, err = time.Parse(wireDateFormat, req.EndDate); err != nil {
		fieldErrs["end_date"] = msgInvalidDate
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	company, err := s.companyRepo.GetByCompanyID(req.Company)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"company": "Object with company_id=" + req.Company + " does not exist."}
		}
		return nil, err
	}

	item, err := s.itemRepo.GetByItemID(req.Item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"item": "Object with item_id=" + req.Item + " does not exist."}
		}
		return nil, err
	}

	discount := 0.0
	if req.Discount != nil {
		discount = *req.Discount
	}

	priceList := &models.PriceList{
		PriceListID:   req.PriceListID,
		CompanyID:     company.ID,
		ItemID:        item.ID,
		DiscountLevel: req.DiscountLevel,
		CantOImp:      req.CantOImp,
		Price:         *req.Price,
		Discount:      discount,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      true,
	}
	if err := s.priceListRepo.Create(priceList); err != nil {
		return nil, err
	}
	return priceList, nil
}

func (s *clientService) GetPriceList(priceListID string) (*models.PriceList, error) {
	priceList, err := s.priceListRepo.GetByPriceListID(priceListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return priceList, nil
}

func (s *clientService) GetAllPriceLists() ([]models.PriceList, error) {
	return s.priceListRepo.GetAll()
}

func (s *clientService) DeactivatePriceList(priceListID string) (*models.PriceList, error) {
	priceList, err := s.GetPriceList(priceListID)
	if err != nil {
		return nil, err
	}
	if err := s.priceListRepo.Deactivate(priceList); err != nil {
		return nil, err
	}
	return priceList, nil
}
