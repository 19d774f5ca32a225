package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"pdv/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type ProductCatalog interface {
	GetAllProducts(ctx context.Context, page, limit int) (*models.PaginationResponse, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
}

type ProductController struct {
	Products ProductCatalog
}

// @Summary Get all products
// @Description Get paginated list of PDV products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := ctrl.Products.GetAllProducts(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("list products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.Products.GetProductByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		log.Printf("get product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}
