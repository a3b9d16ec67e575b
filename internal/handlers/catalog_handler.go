package handlers

import (
	"net/http"
	"strconv"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	item, err := h.catalogService.CreateItem(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.catalogService.FindItem(c.Param("item_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListItems accepts an optional ?company=<company_id> filter.
func (h *CatalogHandler) ListItems(c *gin.Context) {
	var items []models.Item
	var err error
	if company := c.Query("company"); company != "" {
		items, err = h.catalogService.GetItemsByCompany(company)
	} else {
		items, err = h.catalogService.GetAllItems()
	}
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	item, err := h.catalogService.UpdateItem(c.Param("item_id"), &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem deactivates; the row stays for orders that captured its cost.
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	item, err := h.catalogService.DeactivateItem(c.Param("item_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) CreateWarehouse(c *gin.Context) {
	var req services.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	warehouse, err := h.catalogService.CreateWarehouse(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, warehouse)
}

func (h *CatalogHandler) GetWarehouse(c *gin.Context) {
	warehouse, err := h.catalogService.GetWarehouse(c.Param("warehouse_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

func (h *CatalogHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.catalogService.GetAllWarehouses()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehouses)
}

func (h *CatalogHandler) DeleteWarehouse(c *gin.Context) {
	warehouse, err := h.catalogService.DeactivateWarehouse(c.Param("warehouse_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

func (h *CatalogHandler) CreateInventory(c *gin.Context) {
	var req services.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	inventory, err := h.catalogService.CreateInventory(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inventory)
}

func (h *CatalogHandler) GetInventory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	inventory, err := h.catalogService.GetInventory(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

// ListInventories accepts an optional ?warehouse=<warehouse_id> filter.
func (h *CatalogHandler) ListInventories(c *gin.Context) {
	var inventories []models.Inventory
	var err error
	if warehouse := c.Query("warehouse"); warehouse != "" {
		inventories, err = h.catalogService.GetInventoriesByWarehouse(warehouse)
	} else {
		inventories, err = h.catalogService.GetAllInventories()
	}
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventories)
}

func (h *CatalogHandler) DeleteInventory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	inventory, err := h.catalogService.DeactivateInventory(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inventory)
}

func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return uint(id), true
}
