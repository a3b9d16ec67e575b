package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"erp_backoffice/internal/database"
	"erp_backoffice/internal/models"
	"erp_backoffice/internal/redis"
	"erp_backoffice/internal/repository"
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testToken = "test-token"

// stubAuthService accepts one fixed token; the login path is not under test
// here.
type stubAuthService struct{}

func (stubAuthService) Login(string, string) (string, *models.User, error) {
	return "", nil, services.ErrInvalidCredentials
}

func (stubAuthService) Authenticate(token string) (*redis.SessionData, error) {
	if token == testToken {
		return &redis.SessionData{UserID: 1, Email: "user@test.com"}, nil
	}
	return nil, services.ErrInvalidToken
}

func (stubAuthService) Logout(string) error { return nil }

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	companyRepo := repository.NewCompanyRepository(db)
	itemRepo := repository.NewItemRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	clientRepo := repository.NewClientRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	priceListRepo := repository.NewPriceListRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	orderDetailRepo := repository.NewOrderDetailRepository(db)
	authorizationRepo := repository.NewAuthorizationRepository(db)
	deliveredRepo := repository.NewDeliveredQuantityRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	addressRepo := repository.NewDeliverAddressRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	authService := stubAuthService{}
	userService := services.NewUserService(userRepo, roleRepo)
	orderService := services.NewOrderService(orderRepo, salesOrderRepo, orderDetailRepo, itemRepo)
	authorizationService := services.NewAuthorizationService(authorizationRepo)
	catalogService := services.NewCatalogService(itemRepo, warehouseRepo, inventoryRepo, companyRepo)
	companyService := services.NewCompanyService(companyRepo)
	clientService := services.NewClientService(clientRepo, agentRepo, priceListRepo, companyRepo, itemRepo, warehouseRepo)
	fulfillmentService := services.NewFulfillmentService(deliveredRepo, invoiceRepo, addressRepo, companyRepo, itemRepo, clientRepo)

	router := gin.New()
	RegisterRoutes(
		router,
		authService,
		NewAuthHandler(authService, userService),
		NewOrderHandler(orderService, authorizationService),
		NewCatalogHandler(catalogService),
		NewCompanyHandler(companyService),
		NewClientHandler(clientService),
		NewFulfillmentHandler(fulfillmentService),
	)
	return router, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
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
}

func doRequest(router *gin.Engine, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderBody() map[string]any {
	return map[string]any{
		"item_id":         "20012020",
		"cantidad":        100,
		"obsOrder":        "Ninguna",
		"fechaOrden":      "24/04/2021",
		"fechaSolicitada": "05/05/2021",
	}
}

func countOrderFamily(t *testing.T, db *gorm.DB) (orders, salesOrders, details, authorizations int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.SalesOrder{}).Count(&salesOrders).Error)
	require.NoError(t, db.Model(&models.OrderDetail{}).Count(&details).Error)
	require.NoError(t, db.Model(&models.Authorization{}).Count(&authorizations).Error)
	return
}

func TestCreateOrder_Success(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	w := doRequest(router, http.MethodPost, "/api/orders", orderBody(), true)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ObsOrder        string `json:"obsOrder"`
		OrdenCompra     uint   `json:"ordenCompra"`
		FechaOrden      string `json:"fechaOrden"`
		FechaSolicitada string `json:"fechaSolicitada"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Ninguna", resp.ObsOrder)
	require.Equal(t, "24/04/2021", resp.FechaOrden)
	require.Equal(t, "05/05/2021", resp.FechaSolicitada)
	require.NotZero(t, resp.OrdenCompra)

	orders, salesOrders, details, authorizations := countOrderFamily(t, db)
	require.EqualValues(t, 1, orders)
	require.EqualValues(t, 1, salesOrders)
	require.EqualValues(t, 1, details)
	require.EqualValues(t, 1, authorizations)

	var order models.Order
	require.NoError(t, db.First(&order, resp.OrdenCompra).Error)
	require.Equal(t, order.ID, order.OrdenCompra)

	var detail models.OrderDetail
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&detail).Error)
	require.Equal(t, 246.32, detail.Precio)
	require.Equal(t, "MIL", detail.UdVta)
}

func TestCreateOrder_UnknownItem(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	body := orderBody()
	body["item_id"] = "does-not-exist"

	w := doRequest(router, http.MethodPost, "/api/orders", body, true)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"item_id": "Item Id Not Found"}`, w.Body.String())

	orders, salesOrders, details, authorizations := countOrderFamily(t, db)
	require.Zero(t, orders)
	require.Zero(t, salesOrders)
	require.Zero(t, details)
	require.Zero(t, authorizations)
}

func TestCreateOrder_MissingCantidad(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	body := orderBody()
	delete(body, "cantidad")

	w := doRequest(router, http.MethodPost, "/api/orders", body, true)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "cantidad")

	orders, _, _, _ := countOrderFamily(t, db)
	require.Zero(t, orders)
}

func TestCreateOrder_NonNumericCantidad(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	body := orderBody()
	body["cantidad"] = "cien"

	w := doRequest(router, http.MethodPost, "/api/orders", body, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"cantidad": "A valid number is required."}`, w.Body.String())

	orders, _, _, _ := countOrderFamily(t, db)
	require.Zero(t, orders)
}

func TestCreateOrder_StringCantidadIsCoerced(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	body := orderBody()
	body["cantidad"] = "100"

	w := doRequest(router, http.MethodPost, "/api/orders", body, true)
	require.Equal(t, http.StatusCreated, w.Code)

	var detail models.OrderDetail
	require.NoError(t, db.First(&detail).Error)
	require.Equal(t, 100.0, detail.Cantidad)
	require.Equal(t, 246.32, detail.Precio)
}

func TestCreateOrder_RequiresToken(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	w := doRequest(router, http.MethodPost, "/api/orders", orderBody(), false)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	orders, _, _, _ := countOrderFamily(t, db)
	require.Zero(t, orders)
}

func TestGetOrderDetail_ByOwningOrder(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	created := doRequest(router, http.MethodPost, "/api/orders", orderBody(), true)
	require.Equal(t, http.StatusCreated, created.Code)

	var placed struct {
		OrdenCompra uint `json:"ordenCompra"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &placed))

	w := doRequest(router, http.MethodGet, fmt.Sprintf("/api/orders-detail/%d", placed.OrdenCompra), nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Cantidad float64 `json:"cantidad"`
		UdVta    string  `json:"udvta"`
		Precio   float64 `json:"precio"`
		Position int     `json:"position"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Equal(t, 100.0, detail.Cantidad)
	require.Equal(t, "MIL", detail.UdVta)
	require.Equal(t, 246.32, detail.Precio)
	require.Equal(t, 1, detail.Position)
}

func TestUpdateAuthorization_FlagByOrderID(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	created := doRequest(router, http.MethodPost, "/api/orders", orderBody(), true)
	require.Equal(t, http.StatusCreated, created.Code)

	var placed struct {
		OrdenCompra uint `json:"ordenCompra"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &placed))

	w := doRequest(router, http.MethodPatch,
		fmt.Sprintf("/api/order-status/%d", placed.OrdenCompra),
		map[string]any{"vta": true}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var authorization models.Authorization
	require.NoError(t, db.Where("order_id = ?", placed.OrdenCompra).First(&authorization).Error)
	require.True(t, authorization.Vta)
	require.False(t, authorization.Cst)
	require.False(t, authorization.Suaje)
	require.False(t, authorization.Grabado)
	require.False(t, authorization.Pln)
	require.False(t, authorization.Ing)
	require.False(t, authorization.Cxc)
}

func TestUpdateAuthorization_UnknownOrder(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	w := doRequest(router, http.MethodPatch, "/api/order-status/999",
		map[string]any{"vta": true}, true)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSalesOrder_Status(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	created := doRequest(router, http.MethodPost, "/api/orders", orderBody(), true)
	require.Equal(t, http.StatusCreated, created.Code)

	var placed struct {
		OrdenCompra uint `json:"ordenCompra"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &placed))

	w := doRequest(router, http.MethodPatch,
		fmt.Sprintf("/api/sales-orders/%d", placed.OrdenCompra),
		map[string]any{"status": "finished"}, true)
	require.Equal(t, http.StatusOK, w.Code)

	var salesOrder models.SalesOrder
	require.NoError(t, db.Where("order_id = ?", placed.OrdenCompra).First(&salesOrder).Error)
	require.Equal(t, "finished", salesOrder.Status)

	rejected := doRequest(router, http.MethodPatch,
		fmt.Sprintf("/api/sales-orders/%d", placed.OrdenCompra),
		map[string]any{"status": "shipped"}, true)
	require.Equal(t, http.StatusBadRequest, rejected.Code)
}

func TestListAuthorizations(t *testing.T) {
	router, db := setupRouter(t)
	seedCatalog(t, db)

	for i := 0; i < 2; i++ {
		created := doRequest(router, http.MethodPost, "/api/orders", orderBody(), true)
		require.Equal(t, http.StatusCreated, created.Code)
	}

	w := doRequest(router, http.MethodGet, "/api/order/status", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Authorization
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}
