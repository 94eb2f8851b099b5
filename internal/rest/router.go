package rest

import (
	"net/http"
	"time"

	"minimart-be/internal/auth"
	"minimart-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Products *ProductHandler
	Orders   *OrderHandler
	Users    *UserHandler
	Admin    *AdminHandler
}

// NewRouter assembles the public catalog/checkout surface, the customer
// account surface, and the admin back office.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogging(),
		middleware.RateLimit(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/categories/all", h.Products.Categories)
		products.GET("/:id", h.Products.Get)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", h.Orders.Create)
		orders.GET("/:id", h.Orders.Get)
		orders.PATCH("/:orderId/payment-status", h.Orders.UpdatePaymentStatus)
	}

	users := api.Group("/users")
	{
		users.POST("/register", h.Users.Register)
		users.POST("/login", h.Users.Login)

		profile := users.Group("", middleware.RequireRole(auth.RoleUser))
		{
			profile.GET("/profile", h.Users.GetProfile)
			profile.PUT("/profile", h.Users.UpdateProfile)
		}
	}

	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/login", h.Admin.Login)

		protected := adminGroup.Group("", middleware.RequireRole(auth.RoleAdmin))
		{
			protected.GET("/products", h.Products.ListAll)
			protected.POST("/products", h.Products.Create)
			protected.PUT("/products/:id", h.Products.Update)
			protected.DELETE("/products/:id", h.Products.Delete)

			protected.GET("/orders", h.Orders.ListAll)
			protected.PATCH("/orders/:id", h.Orders.Update)
		}
	}

	return r
}
