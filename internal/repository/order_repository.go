package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

// OrderAggregate groups the four records that make up one placed order.
// They are persisted together and either all commit or none do.
type OrderAggregate struct {
	Order         *models.Order
	SalesOrder    *models.SalesOrder
	Detail        *models.OrderDetail
	Authorization *models.Authorization
}

type OrderRepository interface {
	CreateAggregate(aggregate *OrderAggregate) error
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	Update(order *models.Order) error
	Deactivate(order *models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateAggregate persists the order and its dependents in a single
// transaction. The ordenCompra mirror needs the generated ID, so the order
// is written twice; the second write happens inside the same transaction and
// the invariant ordenCompra == id holds for every committed order.
func (r *orderRepository) CreateAggregate(aggregate *OrderAggregate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(aggregate.Order).Error; err != nil {
			return err
		}

		aggregate.Order.OrdenCompra = aggregate.Order.ID
		if err := tx.Save(aggregate.Order).Error; err != nil {
			return err
		}

		aggregate.SalesOrder.OrderID = aggregate.Order.ID
		if err := tx.Create(aggregate.SalesOrder).Error; err != nil {
			return err
		}

		aggregate.Detail.OrderID = aggregate.Order.ID
		if err := tx.Create(aggregate.Detail).Error; err != nil {
			return err
		}

		aggregate.Authorization.OrderID = aggregate.Order.ID
		return tx.Create(aggregate.Authorization).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("is_active = ?", true).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("is_active = ?", true).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Deactivate(order *models.Order) error {
	order.IsActive = false
	return r.db.Save(order).Error
}

type SalesOrderRepository interface {
	GetByOrderID(orderID uint) (*models.SalesOrder, error)
	GetAll() ([]models.SalesOrder, error)
	GetByStatus(status string) ([]models.SalesOrder, error)
	Update(salesOrder *models.SalesOrder) error
}

type salesOrderRepository struct {
	db *gorm.DB
}

func NewSalesOrderRepository(db *gorm.DB) SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

func (r *salesOrderRepository) GetByOrderID(orderID uint) (*models.SalesOrder, error) {
	var salesOrder models.SalesOrder
	err := r.db.Where("order_id = ? AND is_active = ?", orderID, true).First(&salesOrder).Error
	if err != nil {
		return nil, err
	}
	return &salesOrder, nil
}

func (r *salesOrderRepository) GetAll() ([]models.SalesOrder, error) {
	var salesOrders []models.SalesOrder
	err := r.db.Where("is_active = ?", true).Find(&salesOrders).Error
	return salesOrders, err
}

func (r *salesOrderRepository) GetByStatus(status string) ([]models.SalesOrder, error) {
	var salesOrders []models.SalesOrder
	err := r.db.Where("status = ? AND is_active = ?", status, true).Find(&salesOrders).Error
	return salesOrders, err
}

func (r *salesOrderRepository) Update(salesOrder *models.SalesOrder) error {
	return r.db.Save(salesOrder).Error
}
