package services

import (
	"context"
	"errors"
	"math"
	"time"

	"pdv/models"
	"pdv/utils"
)

var (
	ErrEmptySale    = errors.New("Nenhum produto informado")
	ErrInvalidTotal = errors.New("Total inválido")
)

type SaleStore interface {
	Create(ctx context.Context, sale *models.Sale, points *models.LoyaltyPoints) error
	List(ctx context.Context, page, limit int) ([]models.Sale, int, error)
	GetPoints(ctx context.Context, cpf string) (*models.LoyaltyPoints, error)
}

type CacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

type SaleService struct {
	sales   SaleStore
	catalog CacheInvalidator
	now     func() time.Time
}

func NewSaleService(sales SaleStore, catalog CacheInvalidator) *SaleService {
	return &SaleService{sales: sales, catalog: catalog, now: time.Now}
}

// ProcessSale records a PDV sale for seller. A customer CPF earns one point per
// R$ 10 of the total.
func (s *SaleService) ProcessSale(ctx context.Context, req models.SaleRequest, seller string) (*models.Sale, error) {
	if len(req.Products) == 0 {
		return nil, ErrEmptySale
	}
	if req.Total.IsNegative() {
		return nil, ErrInvalidTotal
	}

	sale := &models.Sale{
		Date:       utils.FormatRecordDateTime(s.now()),
		Products:   req.Products,
		Total:      req.Total,
		Seller:     seller,
		CustomerID: req.CustomerID,
	}

	var points *models.LoyaltyPoints
	if cpf := utils.NormalizeCPF(req.CustomerID); cpf != "" {
		points = &models.LoyaltyPoints{CPF: cpf, Points: EarnedPoints(req)}
	}

	if err := s.sales.Create(ctx, sale, points); err != nil {
		return nil, err
	}

	if s.catalog != nil {
		s.catalog.InvalidateCache(ctx)
	}
	return sale, nil
}

func EarnedPoints(req models.SaleRequest) int {
	return int(req.Total.IntPart()) / 10
}

func (s *SaleService) ListSales(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	sales, total, err := s.sales.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Sales retrieved successfully",
		Data:    sales,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *SaleService) GetPoints(ctx context.Context, cpf string) (*models.LoyaltyPoints, error) {
	return s.sales.GetPoints(ctx, utils.NormalizeCPF(cpf))
}
