package services

import (
	"encoding/json"
	"errors"
	"testing"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemRepo struct {
	repository.ItemRepository
	items map[string]*models.Item
}

func (f *fakeItemRepo) GetByItemID(itemID string) (*models.Item, error) {
	if item, ok := f.items[itemID]; ok && item.IsActive {
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeOrderRepo struct {
	repository.OrderRepository
	aggregates []*repository.OrderAggregate
	failCreate bool
}

func (f *fakeOrderRepo) CreateAggregate(aggregate *repository.OrderAggregate) error {
	if f.failCreate {
		return errors.New("constraint violation")
	}
	// Mirror what the transactional repository does with generated IDs.
	aggregate.Order.ID = uint(len(f.aggregates) + 1)
	aggregate.Order.OrdenCompra = aggregate.Order.ID
	aggregate.SalesOrder.OrderID = aggregate.Order.ID
	aggregate.Detail.OrderID = aggregate.Order.ID
	aggregate.Authorization.OrderID = aggregate.Order.ID
	f.aggregates = append(f.aggregates, aggregate)
	return nil
}

type fakeSalesOrderRepo struct {
	repository.SalesOrderRepository
	salesOrders map[uint]*models.SalesOrder
}

func (f *fakeSalesOrderRepo) GetByOrderID(orderID uint) (*models.SalesOrder, error) {
	if salesOrder, ok := f.salesOrders[orderID]; ok {
		return salesOrder, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalesOrderRepo) GetAll() ([]models.SalesOrder, error) {
	all := make([]models.SalesOrder, 0, len(f.salesOrders))
	for _, salesOrder := range f.salesOrders {
		all = append(all, *salesOrder)
	}
	return all, nil
}

func (f *fakeSalesOrderRepo) GetByStatus(status string) ([]models.SalesOrder, error) {
	matched := []models.SalesOrder{}
	for _, salesOrder := range f.salesOrders {
		if salesOrder.Status == status {
			matched = append(matched, *salesOrder)
		}
	}
	return matched, nil
}

func (f *fakeSalesOrderRepo) Update(salesOrder *models.SalesOrder) error {
	f.salesOrders[salesOrder.OrderID] = salesOrder
	return nil
}

type fakeOrderDetailRepo struct {
	repository.OrderDetailRepository
	details map[uint]*models.OrderDetail
}

func (f *fakeOrderDetailRepo) GetByOrderID(orderID uint) (*models.OrderDetail, error) {
	if detail, ok := f.details[orderID]; ok {
		return detail, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderDetailRepo) Update(detail *models.OrderDetail) error {
	f.details[detail.OrderID] = detail
	return nil
}

func testItem() *models.Item {
	return &models.Item{
		ID:          7,
		ItemID:      "20012020",
		Description: "CAJA CARTON DMOX-3 1/2",
		UdVta:       "MIL",
		StandarCost: 2.4632,
		IsActive:    true,
	}
}

func validPlaceRequest() *PlaceOrderRequest {
	return &PlaceOrderRequest{
		ItemID:          "20012020",
		Cantidad:        NewQuantity(100),
		ObsOrder:        "Ninguna",
		FechaOrden:      "24/04/2021",
		FechaSolicitada: "05/05/2021",
	}
}

func newOrderServiceFixture() (*fakeOrderRepo, *fakeOrderDetailRepo, OrderService) {
	orderRepo := &fakeOrderRepo{}
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{}}
	detailRepo := &fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{"20012020": testItem()}}
	return orderRepo, detailRepo, NewOrderService(orderRepo, salesOrderRepo, detailRepo, itemRepo)
}

func TestPlaceOrder_CreatesFullAggregate(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	order, err := svc.PlaceOrder(validPlaceRequest())
	require.NoError(t, err)
	require.Len(t, orderRepo.aggregates, 1)

	aggregate := orderRepo.aggregates[0]
	require.Equal(t, order.ID, order.OrdenCompra)
	require.Equal(t, "Ninguna", order.ObsOrder)

	require.Equal(t, string(models.SalesOrderInProgress), aggregate.SalesOrder.Status)
	require.Equal(t, order.ID, aggregate.SalesOrder.OrderID)

	require.Equal(t, 100.0, aggregate.Detail.Cantidad)
	require.Equal(t, "MIL", aggregate.Detail.UdVta)
	require.Equal(t, 246.32, aggregate.Detail.Precio)
	require.Equal(t, uint(7), aggregate.Detail.ItemID)

	auth := aggregate.Authorization
	require.Equal(t, order.ID, auth.OrderID)
	require.False(t, auth.Vta)
	require.False(t, auth.Cst)
	require.False(t, auth.Suaje)
	require.False(t, auth.Grabado)
	require.False(t, auth.Pln)
	require.False(t, auth.Ing)
	require.False(t, auth.Cxc)
}

func TestPlaceOrder_UnknownItem(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	req := validPlaceRequest()
	req.ItemID = "nope"

	_, err := svc.PlaceOrder(req)
	require.ErrorIs(t, err, ErrItemNotFound)
	require.Empty(t, orderRepo.aggregates)
}

func TestPlaceOrder_InactiveItemIsNotFound(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	detailRepo := &fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}
	item := testItem()
	item.IsActive = false
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{item.ItemID: item}}
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{}}
	svc := NewOrderService(orderRepo, salesOrderRepo, detailRepo, itemRepo)

	_, err := svc.PlaceOrder(validPlaceRequest())
	require.ErrorIs(t, err, ErrItemNotFound)
	require.Empty(t, orderRepo.aggregates)
}

func TestPlaceOrder_MissingCantidad(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	req := validPlaceRequest()
	req.Cantidad = nil

	_, err := svc.PlaceOrder(req)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "cantidad")
	require.Empty(t, orderRepo.aggregates)
}

func TestPlaceOrder_NonNumericCantidad(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	req := validPlaceRequest()
	var cantidad Quantity
	require.NoError(t, json.Unmarshal([]byte(`"cien"`), &cantidad))
	req.Cantidad = &cantidad

	_, err := svc.PlaceOrder(req)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, "A valid number is required.", fieldErrs["cantidad"])
	require.Empty(t, orderRepo.aggregates)
}

func TestQuantity_AcceptsNumericString(t *testing.T) {
	var cantidad Quantity
	require.NoError(t, json.Unmarshal([]byte(`"100"`), &cantidad))
	require.True(t, cantidad.valid)
	require.Equal(t, 100.0, cantidad.value)
}

func TestPlaceOrder_InvalidHeaderFields(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	req := validPlaceRequest()
	req.ObsOrder = ""
	req.FechaOrden = "2021-04-24"

	_, err := svc.PlaceOrder(req)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "obsOrder")
	require.Contains(t, fieldErrs, "fechaOrden")
	require.Empty(t, orderRepo.aggregates)
}

func TestPlaceOrder_PersistenceFailure(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()
	orderRepo.failCreate = true

	_, err := svc.PlaceOrder(validPlaceRequest())
	require.ErrorIs(t, err, ErrOrderCreateFailed)
	require.Empty(t, orderRepo.aggregates)
}

func TestPlaceOrder_RepeatedFailureLeavesNothing(t *testing.T) {
	orderRepo, _, svc := newOrderServiceFixture()

	req := validPlaceRequest()
	req.ItemID = "nope"

	for i := 0; i < 3; i++ {
		_, err := svc.PlaceOrder(req)
		require.ErrorIs(t, err, ErrItemNotFound)
	}
	require.Empty(t, orderRepo.aggregates)
}

func TestUpdateOrderDetail_PartialUpdate(t *testing.T) {
	_, detailRepo, svc := newOrderServiceFixture()
	detailRepo.details[3] = &models.OrderDetail{
		OrderID:  3,
		Cantidad: 100,
		UdVta:    "MIL",
		Precio:   246.32,
		Position: 1,
		IsActive: true,
	}

	newPosition := 2
	detail, err := svc.UpdateOrderDetail(3, &UpdateOrderDetailRequest{Position: &newPosition})
	require.NoError(t, err)
	require.Equal(t, 2, detail.Position)
	require.Equal(t, 100.0, detail.Cantidad)
	require.Equal(t, "MIL", detail.UdVta)
	require.Equal(t, 246.32, detail.Precio)
}

func TestListSalesOrders_UnfilteredReturnsWholePipeline(t *testing.T) {
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{
		1: {ID: 1, OrderID: 1, Status: string(models.SalesOrderInProgress), IsActive: true},
		2: {ID: 2, OrderID: 2, Status: string(models.SalesOrderFinished), IsActive: true},
	}}
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{}}
	svc := NewOrderService(&fakeOrderRepo{}, salesOrderRepo,
		&fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}, itemRepo)

	all, err := svc.ListSalesOrders("")
	require.NoError(t, err)
	require.Len(t, all, 2)

	finished, err := svc.ListSalesOrders(string(models.SalesOrderFinished))
	require.NoError(t, err)
	require.Len(t, finished, 1)
	require.Equal(t, uint(2), finished[0].OrderID)

	_, err = svc.ListSalesOrders("shipped")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "status")
}

func TestUpdateSalesOrderStatus_MovesThroughPipeline(t *testing.T) {
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{
		4: {ID: 1, OrderID: 4, Status: string(models.SalesOrderInProgress), IsActive: true},
	}}
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{}}
	svc := NewOrderService(&fakeOrderRepo{}, salesOrderRepo,
		&fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}, itemRepo)

	salesOrder, err := svc.UpdateSalesOrderStatus(4, string(models.SalesOrderFinished))
	require.NoError(t, err)
	require.Equal(t, "finished", salesOrder.Status)
	require.Equal(t, "finished", salesOrderRepo.salesOrders[4].Status)
}

func TestUpdateSalesOrderStatus_RejectsUnknownStatus(t *testing.T) {
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{
		4: {ID: 1, OrderID: 4, Status: string(models.SalesOrderInProgress), IsActive: true},
	}}
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{}}
	svc := NewOrderService(&fakeOrderRepo{}, salesOrderRepo,
		&fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}, itemRepo)

	_, err := svc.UpdateSalesOrderStatus(4, "shipped")

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "status")
	require.Equal(t, string(models.SalesOrderInProgress), salesOrderRepo.salesOrders[4].Status)
}

func TestUpdateSalesOrderStatus_UnknownOrder(t *testing.T) {
	salesOrderRepo := &fakeSalesOrderRepo{salesOrders: map[uint]*models.SalesOrder{}}
	itemRepo := &fakeItemRepo{items: map[string]*models.Item{}}
	svc := NewOrderService(&fakeOrderRepo{}, salesOrderRepo,
		&fakeOrderDetailRepo{details: map[uint]*models.OrderDetail{}}, itemRepo)

	_, err := svc.UpdateSalesOrderStatus(9, string(models.SalesOrderCancelled))
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderDetail_UnknownOrder(t *testing.T) {
	_, _, svc := newOrderServiceFixture()

	cantidad := 5.0
	_, err := svc.UpdateOrderDetail(99, &UpdateOrderDetailRequest{Cantidad: &cantidad})
	require.ErrorIs(t, err, ErrOrderNotFound)
}
