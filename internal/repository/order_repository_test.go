package repository

import (
	"testing"
	"time"

	"erp_backoffice/internal/database"
	"erp_backoffice/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database keeps every test isolated while still
	// surviving gorm's connection pooling.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedItem(t *testing.T, db *gorm.DB) *models.Item {
	t.Helper()
	company := &models.Company{CompanyID: "222", Name: "Papeles de Toluca", IsActive: true}
	require.NoError(t, db.Create(company).Error)

	item := &models.Item{
		ItemID:      "20012020",
		Description: "CAJA CARTON DMOX-3 1/2",
		UdVta:       "MIL",
		AccessKey:   "44",
		StandarCost: 2.4632,
		CompanyID:   company.ID,
		IsActive:    true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func buildAggregate(item *models.Item) *OrderAggregate {
	fechaOrden := time.Date(2021, 4, 24, 0, 0, 0, 0, time.UTC)
	fechaSolicitada := time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC)
	return &OrderAggregate{
		Order: &models.Order{
			ObsOrder:        "Ninguna",
			FechaOrden:      fechaOrden,
			FechaSolicitada: fechaSolicitada,
			IsActive:        true,
		},
		SalesOrder: &models.SalesOrder{Status: string(models.SalesOrderInProgress), IsActive: true},
		Detail: &models.OrderDetail{
			ItemID:   item.ID,
			Cantidad: 100,
			UdVta:    item.UdVta,
			Precio:   246.32,
			Position: 1,
			IsActive: true,
		},
		Authorization: &models.Authorization{IsActive: true},
	}
}

func TestCreateAggregate_CommitsAllFourRecords(t *testing.T) {
	db := setupTestDB(t)
	item := seedItem(t, db)
	repo := NewOrderRepository(db)

	aggregate := buildAggregate(item)
	require.NoError(t, repo.CreateAggregate(aggregate))

	order := aggregate.Order
	require.NotZero(t, order.ID)
	require.Equal(t, order.ID, order.OrdenCompra)

	var persisted models.Order
	require.NoError(t, db.First(&persisted, order.ID).Error)
	require.Equal(t, order.ID, persisted.OrdenCompra)

	var salesOrder models.SalesOrder
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&salesOrder).Error)
	require.Equal(t, string(models.SalesOrderInProgress), salesOrder.Status)

	var detail models.OrderDetail
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&detail).Error)
	require.Equal(t, 246.32, detail.Precio)
	require.Equal(t, "MIL", detail.UdVta)

	var authorization models.Authorization
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&authorization).Error)
	require.False(t, authorization.Vta)
	require.False(t, authorization.Cxc)
}

func TestCreateAggregate_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	item := seedItem(t, db)
	repo := NewOrderRepository(db)

	// The next order will take ID 1; a conflicting authorization row makes
	// the final insert of the sequence fail.
	require.NoError(t, db.Create(&models.Authorization{OrderID: 1, IsActive: true}).Error)

	err := repo.CreateAggregate(buildAggregate(item))
	require.Error(t, err)

	var orderCount, salesOrderCount, detailCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.SalesOrder{}).Count(&salesOrderCount).Error)
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&detailCount).Error)

	require.Zero(t, orderCount)
	require.Zero(t, salesOrderCount)
	require.Zero(t, detailCount)
}

func TestOrderDetailRepository_GetByOrderID(t *testing.T) {
	db := setupTestDB(t)
	item := seedItem(t, db)
	orderRepo := NewOrderRepository(db)
	detailRepo := NewOrderDetailRepository(db)

	aggregate := buildAggregate(item)
	require.NoError(t, orderRepo.CreateAggregate(aggregate))

	detail, err := detailRepo.GetByOrderID(aggregate.Order.ID)
	require.NoError(t, err)
	require.Equal(t, aggregate.Detail.ID, detail.ID)

	_, err = detailRepo.GetByOrderID(aggregate.Order.ID + 100)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAuthorizationRepository_LookupByOwningOrder(t *testing.T) {
	db := setupTestDB(t)
	item := seedItem(t, db)
	orderRepo := NewOrderRepository(db)
	authorizationRepo := NewAuthorizationRepository(db)

	aggregate := buildAggregate(item)
	require.NoError(t, orderRepo.CreateAggregate(aggregate))

	authorization, err := authorizationRepo.GetByOrderID(aggregate.Order.ID)
	require.NoError(t, err)

	authorization.Vta = true
	require.NoError(t, authorizationRepo.Update(authorization))

	reloaded, err := authorizationRepo.GetByOrderID(aggregate.Order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.Vta)
	require.False(t, reloaded.Cst)
}
