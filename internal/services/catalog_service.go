package services

import (
	"errors"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

// CreateItemRequest references the owning company by its business key, the
// way every slug reference works on this API.
type CreateItemRequest struct {
	ItemID      string   `json:"item_id"`
	Description string   `json:"description"`
	UdVta       string   `json:"udVta"`
	AccessKey   string   `json:"access_key"`
	StandarCost *float64 `json:"standar_cost"`
	Company     string   `json:"company"`
}

type CreateWarehouseRequest struct {
	WarehouseID string `json:"warehouse_id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
}

type CreateInventoryRequest struct {
	Item      string   `json:"item"`
	Warehouse string   `json:"warehouse"`
	Quantity  *float64 `json:"quantity"`
}

// UpdateItemRequest carries the writable item fields. The business key and
// owning company are fixed at creation.
type UpdateItemRequest struct {
	Description *string  `json:"description"`
	UdVta       *string  `json:"udVta"`
	AccessKey   *string  `json:"access_key"`
	StandarCost *float64 `json:"standar_cost"`
}

type CatalogService interface {
	FindItem(itemID string) (*models.Item, error)
	CreateItem(req *CreateItemRequest) (*models.Item, error)
	GetAllItems() ([]models.Item, error)
	GetItemsByCompany(companyID string) ([]models.Item, error)
	UpdateItem(itemID string, req *UpdateItemRequest) (*models.Item, error)
	DeactivateItem(itemID string) (*models.Item, error)

	CreateWarehouse(req *CreateWarehouseRequest) (*models.Warehouse, error)
	GetWarehouse(warehouseID string) (*models.Warehouse, error)
	GetAllWarehouses() ([]models.Warehouse, error)
	DeactivateWarehouse(warehouseID string) (*models.Warehouse, error)

	CreateInventory(req *CreateInventoryRequest) (*models.Inventory, error)
	GetInventory(id uint) (*models.Inventory, error)
	GetAllInventories() ([]models.Inventory, error)
	GetInventoriesByWarehouse(warehouseID string) ([]models.Inventory, error)
	DeactivateInventory(id uint) (*models.Inventory, error)
}

type catalogService struct {
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	companyRepo   repository.CompanyRepository
}

func NewCatalogService(
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	companyRepo repository.CompanyRepository,
) CatalogService {
	return &catalogService{
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		companyRepo:   companyRepo,
	}
}

// FindItem resolves a catalog business key to its active item. Order
// placement depends on this lookup failing fast when the key is unknown.
func (s *catalogService) FindItem(itemID string) (*models.Item, error) {
	item, err := s.itemRepo.GetByItemID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) CreateItem(req *CreateItemRequest) (*models.Item, error) {
	fieldErrs := FieldErrors{}
	if req.ItemID == "" {
		fieldErrs["item_id"] = msgRequired
	}
	if req.StandarCost == nil {
		fieldErrs["standar_cost"] = msgRequired
	}
	if req.Company == "" {
		fieldErrs["company"] = msgRequired
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

	item := &models.Item{
		ItemID:      req.ItemID,
		Description: req.Description,
		UdVta:       req.UdVta,
		AccessKey:   req.AccessKey,
		StandarCost: *req.StandarCost,
		CompanyID:   company.ID,
		IsActive:    true,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) GetAllItems() ([]models.Item, error) {
	return s.itemRepo.GetAll()
}

func (s *catalogService) GetItemsByCompany(companyID string) ([]models.Item, error) {
	company, err := s.companyRepo.GetByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, FieldErrors{"company": "Object with company_id=" + companyID + " does not exist."}
		}
		return nil, err
	}
	return s.itemRepo.GetByCompany(company.ID)
}

func (s *catalogService) UpdateItem(itemID string, req *UpdateItemRequest) (*models.Item, error) {
	item, err := s.FindItem(itemID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UdVta != nil {
		item.UdVta = *req.UdVta
	}
	if req.AccessKey != nil {
		item.AccessKey = *req.AccessKey
	}
	if req.StandarCost != nil {
		item.StandarCost = *req.StandarCost
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) DeactivateItem(itemID string) (*models.Item, error) {
	item, err := s.FindItem(itemID)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Deactivate(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) CreateWarehouse(req *CreateWarehouseRequest) (*models.Warehouse, error) {
	fieldErrs := FieldErrors{}
	if req.WarehouseID == "" {
		fieldErrs["warehouse_id"] = msgRequired
	}
	if req.Company == "" {
		fieldErrs["company"] = msgRequired
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

	warehouse := &models.Warehouse{
		WarehouseID: req.WarehouseID,
		Name:        req.Name,
		CompanyID:   company.ID,
		IsActive:    true,
	}
	if err := s.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (s *catalogService) GetWarehouse(warehouseID string) (*models.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByWarehouseID(warehouseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return warehouse, nil
}

func (s *catalogService) GetAllWarehouses() ([]models.Warehouse, error) {
	return s.warehouseRepo.GetAll()
}

func (s *catalogService) DeactivateWarehouse(warehouseID string) (*models.Warehouse, error) {
	warehouse, err := s.GetWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Deactivate(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

func (s *catalogService) CreateInventory(req *CreateInventoryRequest) (*models.Inventory, error) {
	fieldErrs := FieldErrors{}
	if req.Item == "" {
		fieldErrs["item"] = msgRequired
	}
	if req.Warehouse == "" {
		fieldErrs["warehouse"] = msgRequired
	}
	if req.Quantity == nil {
		fieldErrs["quantity"] = msgRequired
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	item, err := s.FindItem(req.Item)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, FieldErrors{"item": "Object with item_id=" + req.Item + " does not exist."}
		}
		return nil, err
	}

	warehouse, err := s.GetWarehouse(req.Warehouse)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, FieldErrors{"warehouse": "Object with warehouse_id=" + req.Warehouse + " does not exist."}
		}
		return nil, err
	}

	inventory := &models.Inventory{
		ItemID:      item.ID,
		WarehouseID: warehouse.ID,
		Quantity:    *req.Quantity,
		IsActive:    true,
	}
	if err := s.inventoryRepo.Create(inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

func (s *catalogService) GetInventory(id uint) (*models.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return inventory, nil
}

func (s *catalogService) GetAllInventories() ([]models.Inventory, error) {
	return s.inventoryRepo.GetAll()
}

func (s *catalogService) GetInventoriesByWarehouse(warehouseID string) ([]models.Inventory, error) {
	warehouse, err := s.GetWarehouse(warehouseID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, FieldErrors{"warehouse": "Object with warehouse_id=" + warehouseID + " does not exist."}
		}
		return nil, err
	}
	return s.inventoryRepo.GetByWarehouse(warehouse.ID)
}

func (s *catalogService) DeactivateInventory(id uint) (*models.Inventory, error) {
	inventory, err := s.GetInventory(id)
	if err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Deactivate(inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}
