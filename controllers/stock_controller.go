package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"pdv/models"
	"pdv/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type StockManager interface {
	Restock(ctx context.Context, req models.RestockRequest, user string) (*models.Product, error)
	RegisterProduct(ctx context.Context, req models.CreateProductRequest, user string) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int, user string) (*models.Product, error)
	CheckStock(ctx context.Context, req models.StockCheckRequest) (*models.StockCheck, error)
}

type StockController struct {
	Stock StockManager
}

// Restock godoc
// @Summary Restock product
// @Description Adds units to a product and records an entrada movement
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.RestockRequest true "Restock"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /aumentar_estoque [post]
func (ctrl *StockController) Restock(c *gin.Context) {
	var req models.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: services.ErrInvalidRestock.Error(),
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.Stock.Restock(c.Request.Context(), req, c.GetString("user_name"))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Produto não encontrado."})
		case errors.Is(err, services.ErrInvalidRestock):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		default:
			log.Printf("restock product %d: %v", req.ProductID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to restock product"})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("Estoque de '%s' aumentado em %d unidades.", product.Name, req.Quantity),
		Data:    product,
	})
}

// CreateProduct godoc
// @Summary Register product
// @Description Creates a product and records its opening stock
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cadastro_produto [post]
func (ctrl *StockController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.Stock.RegisterProduct(c.Request.Context(), req, c.GetString("user_name"))
	if err != nil {
		var exists *services.ProductExistsError
		switch {
		case errors.As(err, &exists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: exists.Error()})
		case errors.Is(err, services.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		default:
			log.Printf("register product: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: fmt.Sprintf("Produto '%s' cadastrado com sucesso!", product.Name),
		Data:    product,
	})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Removes a product and records the units it held as an exclusao movement
// @Tags Stock
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /excluir_produto/{id} [delete]
func (ctrl *StockController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return
	}

	product, err := ctrl.Stock.DeleteProduct(c.Request.Context(), id, c.GetString("user_name"))
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Produto não encontrado."})
		return
	}
	if err != nil {
		log.Printf("delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: fmt.Sprintf("Produto '%s' excluído com sucesso!", product.Name),
		Data:    product,
	})
}

// CheckStock godoc
// @Summary Check stock
// @Description Whether the requested units of a product are on hand
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.StockCheckRequest true "Stock check"
// @Success 200 {object} models.StockCheck
// @Failure 404 {object} models.StockCheck
// @Router /verificar_estoque [post]
func (ctrl *StockController) CheckStock(c *gin.Context) {
	var req models.StockCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"disponivel": false, "erro": err.Error()})
		return
	}

	check, err := ctrl.Stock.CheckStock(c.Request.Context(), req)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"disponivel": false, "erro": "Produto não encontrado"})
		return
	}
	if err != nil {
		log.Printf("check stock %d: %v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"disponivel": false, "erro": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}
