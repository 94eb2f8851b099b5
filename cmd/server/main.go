package main

import (
	"log"

	"minimart-be/internal/admin"
	"minimart-be/internal/config"
	"minimart-be/internal/db"
	"minimart-be/internal/logger"
	"minimart-be/internal/order"
	"minimart-be/internal/product"
	"minimart-be/internal/rest"
	"minimart-be/internal/user"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cfg.DeliveryCharge)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	adminRepo := admin.NewRepository(database)
	adminSvc := admin.NewService(adminRepo)

	router := rest.NewRouter(rest.Handlers{
		Products: rest.NewProductHandler(productSvc),
		Orders:   rest.NewOrderHandler(orderSvc),
		Users:    rest.NewUserHandler(userSvc),
		Admin:    rest.NewAdminHandler(adminSvc),
	})

	log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
