package routes

import (
	"salesdesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathProducts  = "/products"
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
)

func addSalesRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, productHandler *handlers.ProductHandler, orderHandler *handlers.OrderHandler, dashboardHandler *handlers.DashboardHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
		customers.PATCH("/:customer_id", customerHandler.UpdateCustomer)
		customers.DELETE("/:customer_id", customerHandler.DeleteCustomer)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:product_id", productHandler.GetProduct)
		products.PATCH("/:product_id", productHandler.UpdateProduct)
		products.DELETE("/:product_id", productHandler.DeleteProduct)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.PATCH("/:order_id", orderHandler.UpdateOrder)
		orders.DELETE("/:order_id", orderHandler.DeleteOrder)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
