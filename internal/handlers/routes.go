package handlers

import (
	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes builds the whole route table explicitly. Everything hangs
// off /api; only login and user registration skip the token check.
func RegisterRoutes(
	router *gin.Engine,
	authService services.AuthService,
	authHandler *AuthHandler,
	orderHandler *OrderHandler,
	catalogHandler *CatalogHandler,
	companyHandler *CompanyHandler,
	clientHandler *ClientHandler,
	fulfillmentHandler *FulfillmentHandler,
) {
	api := router.Group("/api")

	api.POST("/auth", authHandler.Login)
	api.POST("/users/create", authHandler.CreateUser)

	protected := api.Group("")
	protected.Use(AuthMiddleware(authService))
	{
		protected.GET("/me", authHandler.Me)
		protected.DELETE("/auth", authHandler.Logout)

		protected.GET("/users", authHandler.ListUsers)
		protected.PATCH("/users/:id/enable", authHandler.EnableUser)
		protected.DELETE("/users/:id", authHandler.DeactivateUser)
		protected.PATCH("/users/:id/roles", authHandler.AssignRole)
		protected.GET("/roles", authHandler.ListRoles)

		protected.POST("/orders", orderHandler.CreateOrder)
		protected.GET("/orders", orderHandler.ListOrders)
		protected.GET("/orders/:order_id", orderHandler.GetOrder)
		protected.DELETE("/orders/:order_id", orderHandler.DeactivateOrder)
		protected.GET("/orders-detail/:order_id", orderHandler.GetOrderDetail)
		protected.PATCH("/orders-detail/:order_id", orderHandler.UpdateOrderDetail)

		protected.GET("/sales-orders", orderHandler.ListSalesOrders)
		protected.GET("/sales-orders/:order_id", orderHandler.GetSalesOrder)
		protected.PATCH("/sales-orders/:order_id", orderHandler.UpdateSalesOrder)

		protected.GET("/order/status", orderHandler.ListAuthorizations)
		protected.GET("/order-status/:order_id", orderHandler.GetAuthorization)
		protected.PATCH("/order-status/:order_id", orderHandler.UpdateAuthorization)

		protected.POST("/companies", companyHandler.CreateCompany)
		protected.GET("/companies", companyHandler.ListCompanies)
		protected.GET("/companies/:company_id", companyHandler.GetCompany)
		protected.PATCH("/companies/:company_id", companyHandler.UpdateCompany)
		protected.DELETE("/companies/:company_id", companyHandler.DeleteCompany)

		protected.POST("/items", catalogHandler.CreateItem)
		protected.GET("/items", catalogHandler.ListItems)
		protected.GET("/items/:item_id", catalogHandler.GetItem)
		protected.PATCH("/items/:item_id", catalogHandler.UpdateItem)
		protected.DELETE("/items/:item_id", catalogHandler.DeleteItem)

		protected.POST("/warehouses", catalogHandler.CreateWarehouse)
		protected.GET("/warehouses", catalogHandler.ListWarehouses)
		protected.GET("/warehouses/:warehouse_id", catalogHandler.GetWarehouse)
		protected.DELETE("/warehouses/:warehouse_id", catalogHandler.DeleteWarehouse)

		protected.POST("/inventories", catalogHandler.CreateInventory)
		protected.GET("/inventories", catalogHandler.ListInventories)
		protected.GET("/inventories/:id", catalogHandler.GetInventory)
		protected.DELETE("/inventories/:id", catalogHandler.DeleteInventory)

		protected.POST("/clients", clientHandler.CreateClient)
		protected.GET("/clients", clientHandler.ListClients)
		protected.GET("/clients/:client_id", clientHandler.GetClient)
		protected.DELETE("/clients/:client_id", clientHandler.DeleteClient)

		protected.POST("/agents", clientHandler.CreateAgent)
		protected.GET("/agents", clientHandler.ListAgents)

		protected.POST("/price-lists", clientHandler.CreatePriceList)
		protected.GET("/price-lists", clientHandler.ListPriceLists)
		protected.GET("/price-lists/:price_list_id", clientHandler.GetPriceList)
		protected.DELETE("/price-lists/:price_list_id", clientHandler.DeletePriceList)

		protected.POST("/delivered-quantities", fulfillmentHandler.CreateDeliveredQuantity)
		protected.GET("/delivered-quantities", fulfillmentHandler.ListDeliveredQuantities)
		protected.GET("/delivered-quantities/:order", fulfillmentHandler.GetDeliveredQuantity)
		protected.DELETE("/delivered-quantities/:order", fulfillmentHandler.DeleteDeliveredQuantity)

		protected.POST("/invoices", fulfillmentHandler.CreateInvoice)
		protected.GET("/invoices", fulfillmentHandler.ListInvoices)
		protected.GET("/invoices/:invoice_number", fulfillmentHandler.GetInvoice)
		protected.DELETE("/invoices/:invoice_number", fulfillmentHandler.DeleteInvoice)

		protected.POST("/deliver-addresses", fulfillmentHandler.CreateDeliverAddress)
		protected.GET("/deliver-addresses", fulfillmentHandler.ListDeliverAddresses)
		protected.DELETE("/deliver-addresses/:id", fulfillmentHandler.DeleteDeliverAddress)
	}
}
