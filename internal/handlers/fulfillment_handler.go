package handlers

import (
	"net/http"
	"strconv"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type FulfillmentHandler struct {
	fulfillmentService services.FulfillmentService
}

func NewFulfillmentHandler(fulfillmentService services.FulfillmentService) *FulfillmentHandler {
	return &FulfillmentHandler{fulfillmentService: fulfillmentService}
}

func (h *FulfillmentHandler) CreateDeliveredQuantity(c *gin.Context) {
	var req services.CreateDeliveredQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	quantity, err := h.fulfillmentService.CreateDeliveredQuantity(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quantity)
}

// GetDeliveredQuantity resolves by the order number it was recorded
// against, which is the key callers hold.
func (h *FulfillmentHandler) GetDeliveredQuantity(c *gin.Context) {
	orderNumber, ok := int64Param(c, "order")
	if !ok {
		return
	}
	quantity, err := h.fulfillmentService.GetDeliveredQuantity(orderNumber)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quantity)
}

func (h *FulfillmentHandler) ListDeliveredQuantities(c *gin.Context) {
	quantities, err := h.fulfillmentService.GetAllDeliveredQuantities()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quantities)
}

func (h *FulfillmentHandler) DeleteDeliveredQuantity(c *gin.Context) {
	orderNumber, ok := int64Param(c, "order")
	if !ok {
		return
	}
	quantity, err := h.fulfillmentService.DeactivateDeliveredQuantity(orderNumber)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quantity)
}

func (h *FulfillmentHandler) CreateInvoice(c *gin.Context) {
	var req services.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	invoice, err := h.fulfillmentService.CreateInvoice(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *FulfillmentHandler) GetInvoice(c *gin.Context) {
	invoiceNumber, ok := int64Param(c, "invoice_number")
	if !ok {
		return
	}
	invoice, err := h.fulfillmentService.GetInvoice(invoiceNumber)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *FulfillmentHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.fulfillmentService.GetAllInvoices()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *FulfillmentHandler) DeleteInvoice(c *gin.Context) {
	invoiceNumber, ok := int64Param(c, "invoice_number")
	if !ok {
		return
	}
	invoice, err := h.fulfillmentService.DeactivateInvoice(invoiceNumber)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *FulfillmentHandler) CreateDeliverAddress(c *gin.Context) {
	var req services.CreateDeliverAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	address, err := h.fulfillmentService.CreateDeliverAddress(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

// ListDeliverAddresses accepts an optional ?client=<client_id> filter.
func (h *FulfillmentHandler) ListDeliverAddresses(c *gin.Context) {
	var addresses []models.DeliverAddress
	var err error
	if client := c.Query("client"); client != "" {
		addresses, err = h.fulfillmentService.GetDeliverAddressesByClient(client)
	} else {
		addresses, err = h.fulfillmentService.GetAllDeliverAddresses()
	}
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *FulfillmentHandler) DeleteDeliverAddress(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	address, err := h.fulfillmentService.DeactivateDeliverAddress(id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return value, true
}
