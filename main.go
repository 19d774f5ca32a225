package main

import (
	"log"

	"pdv/app"
	"pdv/config"
	_ "pdv/docs"

	"github.com/gin-gonic/gin"
)

// @title Turma do Forno PDV API
// @version 1.0
// @description Sale processing API for the Turma do Forno point of sale.
// @host localhost:5001
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	router := app.NewRouter(gin.Default())

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
