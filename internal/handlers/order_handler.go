package handlers

import (
	"net/http"
	"strconv"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

const wireDateFormat = "02/01/2006"

type OrderHandler struct {
	orderService         services.OrderService
	authorizationService services.AuthorizationService
}

func NewOrderHandler(
	orderService services.OrderService,
	authorizationService services.AuthorizationService,
) *OrderHandler {
	return &OrderHandler{
		orderService:         orderService,
		authorizationService: authorizationService,
	}
}

// orderView is the response contract for a placed order: header fields only,
// dates back in the same dd/mm/yyyy shape they arrived in.
type orderView struct {
	ObsOrder        string `json:"obsOrder"`
	OrdenCompra     uint   `json:"ordenCompra"`
	FechaOrden      string `json:"fechaOrden"`
	FechaSolicitada string `json:"fechaSolicitada"`
}

func newOrderView(order *models.Order) orderView {
	return orderView{
		ObsOrder:        order.ObsOrder,
		OrdenCompra:     order.OrdenCompra,
		FechaOrden:      order.FechaOrden.Format(wireDateFormat),
		FechaSolicitada: order.FechaSolicitada.Format(wireDateFormat),
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	order, err := h.orderService.PlaceOrder(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		renderServiceError(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for i := range orders {
		views = append(views, newOrderView(&orders[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	detail, err := h.orderService.GetOrderDetail(orderID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) UpdateOrderDetail(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateOrderDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	detail, err := h.orderService.UpdateOrderDetail(orderID, &req)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(orderID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(order))
}

func (h *OrderHandler) DeactivateOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.DeactivateOrder(orderID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderView(order))
}

func (h *OrderHandler) ListSalesOrders(c *gin.Context) {
	salesOrders, err := h.orderService.ListSalesOrders(c.Query("status"))
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salesOrders)
}

func (h *OrderHandler) GetSalesOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	salesOrder, err := h.orderService.GetSalesOrder(orderID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salesOrder)
}

func (h *OrderHandler) UpdateSalesOrder(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	salesOrder, err := h.orderService.UpdateSalesOrderStatus(orderID, req.Status)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, salesOrder)
}

func (h *OrderHandler) ListAuthorizations(c *gin.Context) {
	authorizations, err := h.authorizationService.ListAuthorizations()
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, authorizations)
}

func (h *OrderHandler) GetAuthorization(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	authorization, err := h.authorizationService.GetByOrderID(orderID)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, authorization)
}

func (h *OrderHandler) UpdateAuthorization(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var flags services.AuthorizationFlags
	if err := c.ShouldBindJSON(&flags); err != nil {
		bindError(c)
		return
	}

	authorization, err := h.authorizationService.UpdateFlags(orderID, &flags)
	if err != nil {
		renderServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, authorization)
}

// orderIDParam parses the owning order identifier from the URL. Detail and
// authorization records are always addressed through their order, never
// through their own primary key.
func orderIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("order_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return 0, false
	}
	return uint(id), true
}
