package routes

import (
	"net/http"

	"pdv/controllers"
	"pdv/handler"
	"pdv/middleware"
	"pdv/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Sales     *controllers.SaleController
	Stock     *controllers.StockController
	Users     *controllers.UserController
	JWTSecret string
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/login", ctrl.Auth.Login)
	router.GET("/products", ctrl.Products.GetAllProducts)
	router.GET("/products/:id", ctrl.Products.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(ctrl.JWTSecret))
	{
		auth.POST("/processar_venda", middleware.PermissionMiddleware(models.PermissionSell), ctrl.Sales.ProcessSale)
		auth.GET("/pontos/:cpf", middleware.PermissionMiddleware(models.PermissionSell), ctrl.Sales.GetPoints)
		auth.GET("/vendas", middleware.PermissionMiddleware(models.PermissionViewReports), ctrl.Sales.ListSales)

		auth.POST("/verificar_estoque", ctrl.Stock.CheckStock)
		auth.POST("/aumentar_estoque", middleware.PermissionMiddleware(models.PermissionChangeStock), ctrl.Stock.Restock)
		auth.DELETE("/excluir_produto/:id", middleware.PermissionMiddleware(models.PermissionChangeStock), ctrl.Stock.DeleteProduct)
		auth.POST("/cadastro_produto", middleware.PermissionMiddleware(models.PermissionAddProducts), ctrl.Stock.CreateProduct)

		auth.POST("/adicionar_usuario", middleware.PermissionMiddleware(models.PermissionManageUsers), ctrl.Users.AddUser)
		auth.DELETE("/excluir_usuario/:id", middleware.PermissionMiddleware(models.PermissionManageUsers), ctrl.Users.DeleteUser)
	}
}
