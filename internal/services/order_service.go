package services

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

const wireDateFormat = "02/01/2006"

// Quantity is a numeric field that accepts a JSON number or a numeric
// string. A present but malformed value survives the bind and is rejected
// during validation with a field-keyed message, the same way the dates are.
type Quantity struct {
	value float64
	valid bool
}

func NewQuantity(v float64) *Quantity {
	return &Quantity{value: v, valid: true}
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*q = Quantity{}
		return nil
	}
	*q = Quantity{value: v, valid: true}
	return nil
}

// PlaceOrderRequest is the order placement body as it arrives on the wire.
// Dates stay strings until validation so a malformed value produces a field
// error instead of a bind failure.
type PlaceOrderRequest struct {
	ItemID          string    `json:"item_id"`
	Cantidad        *Quantity `json:"cantidad"`
	ObsOrder        string    `json:"obsOrder"`
	FechaOrden      string    `json:"fechaOrden"`
	FechaSolicitada string    `json:"fechaSolicitada"`
}

type UpdateOrderDetailRequest struct {
	Cantidad *float64 `json:"cantidad"`
	Precio   *float64 `json:"precio"`
	Position *int     `json:"position"`
}

type OrderService interface {
	PlaceOrder(req *PlaceOrderRequest) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	DeactivateOrder(id uint) (*models.Order, error)
	GetOrderDetail(orderID uint) (*models.OrderDetail, error)
	UpdateOrderDetail(orderID uint, req *UpdateOrderDetailRequest) (*models.OrderDetail, error)
	GetSalesOrder(orderID uint) (*models.SalesOrder, error)
	ListSalesOrders(status string) ([]models.SalesOrder, error)
	UpdateSalesOrderStatus(orderID uint, status string) (*models.SalesOrder, error)
}

type orderService struct {
	orderRepo       repository.OrderRepository
	salesOrderRepo  repository.SalesOrderRepository
	orderDetailRepo repository.OrderDetailRepository
	itemRepo        repository.ItemRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	salesOrderRepo repository.SalesOrderRepository,
	orderDetailRepo repository.OrderDetailRepository,
	itemRepo repository.ItemRepository,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		salesOrderRepo:  salesOrderRepo,
		orderDetailRepo: orderDetailRepo,
		itemRepo:        itemRepo,
	}
}

// PlaceOrder builds the full order aggregate: the Order header, its
// SalesOrder pipeline record, the priced OrderDetail and the blank
// Authorization. The item is resolved and both field groups are validated
// before anything is written; persistence is all-or-nothing.
func (s *orderService) PlaceOrder(req *PlaceOrderRequest) (*models.Order, error) {
	item, err := s.itemRepo.GetByItemID(req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if err := validateOrderDetail(req); err != nil {
		return nil, err
	}

	fechaOrden, fechaSolicitada, err := validateOrderHeader(req)
	if err != nil {
		return nil, err
	}

	cantidad := req.Cantidad.value

	aggregate := &repository.OrderAggregate{
		Order: &models.Order{
			ObsOrder:        req.ObsOrder,
			FechaOrden:      fechaOrden,
			FechaSolicitada: fechaSolicitada,
			IsActive:        true,
		},
		SalesOrder: &models.SalesOrder{
			Status:   string(models.SalesOrderInProgress),
			IsActive: true,
		},
		Detail: &models.OrderDetail{
			ItemID:   item.ID,
			Cantidad: cantidad,
			UdVta:    item.UdVta,
			Precio:   roundMoney(cantidad * item.StandarCost),
			Position: 1,
			IsActive: true,
		},
		Authorization: &models.Authorization{
			IsActive: true,
		},
	}

	if err := s.orderRepo.CreateAggregate(aggregate); err != nil {
		log.Printf("order aggregate creation failed, rolled back: %v", err)
		return nil, ErrOrderCreateFailed
	}

	return aggregate.Order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) DeactivateOrder(id uint) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Deactivate(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderDetail(orderID uint) (*models.OrderDetail, error) {
	detail, err := s.orderDetailRepo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return detail, nil
}

// UpdateOrderDetail applies a partial update to the detail owned by the
// given order. Only cantidad, precio and position are writable; the captured
// udvta and item reference never change after placement.
func (s *orderService) UpdateOrderDetail(orderID uint, req *UpdateOrderDetailRequest) (*models.OrderDetail, error) {
	detail, err := s.GetOrderDetail(orderID)
	if err != nil {
		return nil, err
	}

	if req.Cantidad != nil {
		if *req.Cantidad <= 0 {
			return nil, FieldErrors{"cantidad": msgInvalidNumber}
		}
		detail.Cantidad = *req.Cantidad
	}
	if req.Precio != nil {
		detail.Precio = *req.Precio
	}
	if req.Position != nil {
		detail.Position = *req.Position
	}

	if err := s.orderDetailRepo.Update(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *orderService) GetSalesOrder(orderID uint) (*models.SalesOrder, error) {
	salesOrder, err := s.salesOrderRepo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return salesOrder, nil
}

// ListSalesOrders returns the pipeline slice for one status, or the whole
// pipeline when no status is given.
func (s *orderService) ListSalesOrders(status string) ([]models.SalesOrder, error) {
	if status == "" {
		return s.salesOrderRepo.GetAll()
	}
	switch models.SalesOrderStatus(status) {
	case models.SalesOrderInProgress, models.SalesOrderFinished, models.SalesOrderCancelled:
	default:
		return nil, FieldErrors{"status": "Not a valid choice."}
	}
	return s.salesOrderRepo.GetByStatus(status)
}

// UpdateSalesOrderStatus moves an order through the pipeline. Only the three
// known states are accepted; an order that was never placed is a 404, not a
// validation error.
func (s *orderService) UpdateSalesOrderStatus(orderID uint, status string) (*models.SalesOrder, error) {
	switch models.SalesOrderStatus(status) {
	case models.SalesOrderInProgress, models.SalesOrderFinished, models.SalesOrderCancelled:
	default:
		return nil, FieldErrors{"status": "Not a valid choice."}
	}

	salesOrder, err := s.GetSalesOrder(orderID)
	if err != nil {
		return nil, err
	}

	salesOrder.Status = status
	if err := s.salesOrderRepo.Update(salesOrder); err != nil {
		return nil, err
	}
	return salesOrder, nil
}

// validateOrderDetail checks the line-item fields. It runs before the header
// validation and before any persistence, mirroring the split between detail
// and header schemas on the wire.
func validateOrderDetail(req *PlaceOrderRequest) error {
	fieldErrs := FieldErrors{}
	if req.Cantidad == nil {
		fieldErrs["cantidad"] = msgRequired
	} else if !req.Cantidad.valid || req.Cantidad.value <= 0 {
		fieldErrs["cantidad"] = msgInvalidNumber
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

func validateOrderHeader(req *PlaceOrderRequest) (time.Time, time.Time, error) {
	fieldErrs := FieldErrors{}

	if req.ObsOrder == "" {
		fieldErrs["obsOrder"] = msgRequired
	}

	var fechaOrden, fechaSolicitada time.Time
	var err error

	if req.FechaOrden == "" {
		fieldErrs["fechaOrden"] = msgRequired
	} else if fechaOrden, err = time.Parse(wireDateFormat, req.FechaOrden); err != nil {
		fieldErrs["fechaOrden"] = msgInvalidDate
	}

	if req.FechaSolicitada == "" {
		fieldErrs["fechaSolicitada"] = msgRequired
	} else if fechaSolicitada, err = time.Parse(wireDateFormat, req.FechaSolicitada); err != nil {
		fieldErrs["fechaSolicitada"] = msgInvalidDate
	}

	if len(fieldErrs) > 0 {
		return time.Time{}, time.Time{}, fieldErrs
	}
	return fechaOrden, fechaSolicitada, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
