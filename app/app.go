package app

import (
	"context"
	"log"
	"time"

	"pdv/config"
	"pdv/controllers"
	"pdv/middleware"
	"pdv/repositories"
	"pdv/routes"
	"pdv/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires repositories, services and controllers on top of the
// connections opened in config and returns the ready gin engine.
func NewRouter(router *gin.Engine) *gin.Engine {
	cfg := config.AppConfig

	expiry, err := time.ParseDuration(cfg.JWTExpiry)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRY %q, using 12h", cfg.JWTExpiry)
		expiry = 12 * time.Hour
	}

	userRepo := repositories.NewUserRepository(config.DB)
	productRepo := repositories.NewProductRepository(config.DB)
	saleRepo := repositories.NewSaleRepository(config.DB)

	if err := services.SeedDefaults(context.Background(), userRepo, productRepo); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	productService := services.NewProductService(productRepo, config.RedisClient)
	saleService := services.NewSaleService(saleRepo, productService)
	stockService := services.NewStockService(productRepo, productService)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, expiry)

	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, routes.Controllers{
		Auth:      &controllers.AuthController{Auth: authService},
		Products:  &controllers.ProductController{Products: productService},
		Sales:     &controllers.SaleController{Sales: saleService},
		Stock:     &controllers.StockController{Stock: stockService},
		Users:     &controllers.UserController{Users: userService},
		JWTSecret: cfg.JWTSecret,
	})
	return router
}
