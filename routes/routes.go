package routes

import (
	"github.com/gin-gonic/gin"

	"gearstore-backend/controllers"
)

// RegisterRoutes registers all service routes.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	customers *controllers.CustomerController,
	orders *controllers.OrderController,
	sales *controllers.SalesController,
) {
	p := r.Group("/products")
	{
		p.GET("", products.ListProducts)
		p.POST("", products.CreateProduct)
		p.GET("/:id", products.GetProduct)
		p.PUT("/:id", products.UpdateProduct)
		p.DELETE("/:id", products.DeleteProduct)
	}

	c := r.Group("/customers")
	{
		c.GET("", customers.ListCustomers)
		c.POST("", customers.CreateCustomer)
		c.GET("/:id", customers.GetCustomer)
		c.PUT("/:id", customers.UpdateCustomer)
		c.DELETE("/:id", customers.DeleteCustomer)
	}

	o := r.Group("/orders")
	{
		o.GET("", orders.ListOrders)
		o.POST("", orders.CreateOrder)
		o.GET("/:id", orders.GetOrder)
		o.PUT("/:id", orders.UpdateOrder)
		o.DELETE("/:id", orders.DeleteOrder)
	}

	s := r.Group("/sales")
	{
		s.GET("/transactions", sales.ListTransactions)
		s.POST("/transactions", sales.AddTransaction)
		s.DELETE("/transactions/:id", sales.DeleteTransaction)
		s.GET("/products", sales.ListCustomProducts)
		s.POST("/products", sales.AddCustomProduct)
		s.GET("/summary", sales.GetSummary)
	}
}
