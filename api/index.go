package api

import (
	"net/http"
	"sync"

	"pdv/app"
	"pdv/config"
	_ "pdv/docs"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		engine := gin.New()
		engine.Use(gin.Recovery())
		router = app.NewRouter(engine)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
