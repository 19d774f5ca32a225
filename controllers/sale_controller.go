package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"pdv/models"
	"pdv/repositories"
	"pdv/services"

	"github.com/gin-gonic/gin"
)

type SaleProcessingService interface {
	ProcessSale(ctx context.Context, req models.SaleRequest, seller string) (*models.Sale, error)
	ListSales(ctx context.Context, page, limit int) (*models.PaginationResponse, error)
	GetPoints(ctx context.Context, cpf string) (*models.LoyaltyPoints, error)
}

type SaleController struct {
	Sales SaleProcessingService
}

// ProcessSale godoc
// @Summary Process PDV sale
// @Description Records a sale from a PDV cart, decrements stock and credits loyalty points
// @Tags Sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SaleRequest true "Sale"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /processar_venda [post]
func (ctrl *SaleController) ProcessSale(c *gin.Context) {
	var req models.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Dados da venda inválidos",
			Error:   err.Error(),
		})
		return
	}

	sale, err := ctrl.Sales.ProcessSale(c.Request.Context(), req, c.GetString("user_name"))
	if err != nil {
		var stockErr *repositories.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: stockErr.Error()})
		case errors.Is(err, services.ErrEmptySale), errors.Is(err, services.ErrInvalidTotal):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		default:
			log.Printf("Erro ao processar venda: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Success: false,
				Message: "Erro interno: " + err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: services.MsgSaleDone,
		Data:    sale,
	})
}

// ListSales godoc
// @Summary List sales
// @Description Sales report, newest first
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.PaginationResponse
// @Router /vendas [get]
func (ctrl *SaleController) ListSales(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := ctrl.Sales.ListSales(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("list sales: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve sales"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPoints godoc
// @Summary Loyalty points
// @Description Points balance for a customer CPF, masked or digits only
// @Tags Sales
// @Security BearerAuth
// @Produce json
// @Param cpf path string true "CPF"
// @Success 200 {object} models.Response
// @Router /pontos/{cpf} [get]
func (ctrl *SaleController) GetPoints(c *gin.Context) {
	points, err := ctrl.Sales.GetPoints(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		log.Printf("get points: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve points"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Points retrieved", Data: points})
}
