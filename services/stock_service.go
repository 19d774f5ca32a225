package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pdv/models"
	"pdv/utils"
)

const defaultMinimumStock = 10

var (
	ErrInvalidRestock = errors.New("Dados inválidos para aumentar estoque.")
	ErrInvalidPrice   = errors.New("Preço inválido")
)

// ProductExistsError rejects a product whose name is already registered.
type ProductExistsError struct {
	Name string
}

func (e *ProductExistsError) Error() string {
	return fmt.Sprintf("Produto '%s' já cadastrado.", e.Name)
}

type StockStore interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Register(ctx context.Context, p *models.Product, user, date string) error
	Restock(ctx context.Context, id, quantity int, user, date string) (*models.Product, error)
	Delete(ctx context.Context, id int, user, date string) (*models.Product, error)
}

// StockService changes the catalog and its stock. Every change is recorded
// as a stock movement by the store and drops the cached catalog pages.
type StockService struct {
	products StockStore
	catalog  CacheInvalidator
	now      func() time.Time
}

func NewStockService(products StockStore, catalog CacheInvalidator) *StockService {
	return &StockService{products: products, catalog: catalog, now: time.Now}
}

func (s *StockService) Restock(ctx context.Context, req models.RestockRequest, user string) (*models.Product, error) {
	if req.ProductID < 1 || req.Quantity < 1 {
		return nil, ErrInvalidRestock
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = utils.FormatRecordDate(s.now())
	}

	product, err := s.products.Restock(ctx, req.ProductID, req.Quantity, user, date)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *StockService) RegisterProduct(ctx context.Context, req models.CreateProductRequest, user string) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	exists, err := s.products.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ProductExistsError{Name: name}
	}

	minimum := defaultMinimumStock
	if req.MinimumStock != nil {
		minimum = *req.MinimumStock
	}
	product := &models.Product{
		Name:         name,
		Price:        req.Price,
		Stock:        req.Stock,
		Category:     strings.TrimSpace(req.Category),
		MinimumStock: minimum,
	}
	if err := s.products.Register(ctx, product, user, utils.FormatRecordDateTime(s.now())); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *StockService) DeleteProduct(ctx context.Context, id int, user string) (*models.Product, error) {
	product, err := s.products.Delete(ctx, id, user, utils.FormatRecordDateTime(s.now()))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// CheckStock reports whether the requested units are on hand. A zero
// quantity asks for one unit.
func (s *StockService) CheckStock(ctx context.Context, req models.StockCheckRequest) (*models.StockCheck, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	return &models.StockCheck{
		Available: product.Stock >= quantity,
		Stock:     product.Stock,
		Requested: quantity,
	}, nil
}

func (s *StockService) invalidate(ctx context.Context) {
	if s.catalog != nil {
		s.catalog.InvalidateCache(ctx)
	}
}
