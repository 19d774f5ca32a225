package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pdv/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type movement struct {
	productID int
	quantity  int
	kind      string
	user      string
	date      string
}

// memoryStock keeps products in memory and records movements the way the
// database repository does.
type memoryStock struct {
	products  map[int]*models.Product
	movements []movement
}

func newMemoryStock(products ...models.Product) *memoryStock {
	s := &memoryStock{products: map[int]*models.Product{}}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *memoryStock) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (s *memoryStock) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, p := range s.products {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStock) Register(ctx context.Context, p *models.Product, user, date string) error {
	p.ID = len(s.products) + 1
	copied := *p
	s.products[p.ID] = &copied
	s.movements = append(s.movements, movement{p.ID, p.Stock, models.MovementInitial, user, date})
	return nil
}

func (s *memoryStock) Restock(ctx context.Context, id, quantity int, user, date string) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	p.Stock += quantity
	s.movements = append(s.movements, movement{id, quantity, models.MovementIn, user, date})
	copied := *p
	return &copied, nil
}

func (s *memoryStock) Delete(ctx context.Context, id int, user, date string) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(s.products, id)
	s.movements = append(s.movements, movement{id, p.Stock, models.MovementDeleted, user, date})
	return p, nil
}

func newStockService(store *memoryStock, cache CacheInvalidator) *StockService {
	svc := NewStockService(store, cache)
	svc.now = func() time.Time { return time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

var croissant = models.Product{ID: 1, Name: "Croissant", Price: decimal.RequireFromString("4.50"), Stock: 2, Category: "Salgados", MinimumStock: 8}

func TestStockServiceRestock(t *testing.T) {
	store := newMemoryStock(croissant)
	cache := &countingInvalidator{}
	svc := newStockService(store, cache)
	ctx := context.Background()

	product, err := svc.Restock(ctx, models.RestockRequest{ProductID: 1, Quantity: 10}, "Francesco")
	if err != nil {
		t.Fatal(err)
	}
	if product.Stock != 12 {
		t.Fatalf("stock = %d, want 12", product.Stock)
	}
	want := movement{1, 10, models.MovementIn, "Francesco", "01/06/2025"}
	if len(store.movements) != 1 || store.movements[0] != want {
		t.Fatalf("movements = %+v", store.movements)
	}
	if cache.calls != 1 {
		t.Fatalf("cache invalidations = %d", cache.calls)
	}

	if _, err := svc.Restock(ctx, models.RestockRequest{ProductID: 1, Quantity: 1, Date: "15/05/2025"}, "Francesco"); err != nil {
		t.Fatal(err)
	}
	if got := store.movements[1].date; got != "15/05/2025" {
		t.Fatalf("date = %q, want the given one", got)
	}
}

func TestStockServiceRestockRejects(t *testing.T) {
	svc := newStockService(newMemoryStock(croissant), nil)
	ctx := context.Background()

	for _, req := range []models.RestockRequest{{ProductID: 0, Quantity: 1}, {ProductID: 1, Quantity: 0}} {
		if _, err := svc.Restock(ctx, req, "x"); !errors.Is(err, ErrInvalidRestock) {
			t.Errorf("Restock(%+v) err = %v, want ErrInvalidRestock", req, err)
		}
	}
	if _, err := svc.Restock(ctx, models.RestockRequest{ProductID: 9, Quantity: 1}, "x"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("unknown product err = %v", err)
	}
}

func TestStockServiceRegisterProduct(t *testing.T) {
	store := newMemoryStock(croissant)
	svc := newStockService(store, nil)
	ctx := context.Background()

	product, err := svc.RegisterProduct(ctx, models.CreateProductRequest{
		Name: " Pão de Queijo ", Price: decimal.RequireFromString("3.00"), Stock: 40, Category: "Salgados",
	}, "Pietro")
	if err != nil {
		t.Fatal(err)
	}
	if product.ID == 0 || product.Name != "Pão de Queijo" || product.MinimumStock != defaultMinimumStock {
		t.Fatalf("product = %+v", product)
	}
	want := movement{product.ID, 40, models.MovementInitial, "Pietro", "01/06/2025 10:00:00"}
	if len(store.movements) != 1 || store.movements[0] != want {
		t.Fatalf("movements = %+v", store.movements)
	}

	_, err = svc.RegisterProduct(ctx, models.CreateProductRequest{Name: "croissant", Category: "Salgados"}, "Pietro")
	var exists *ProductExistsError
	if !errors.As(err, &exists) || exists.Name != "croissant" {
		t.Fatalf("err = %v, want ProductExistsError", err)
	}

	_, err = svc.RegisterProduct(ctx, models.CreateProductRequest{Name: "Torta", Price: decimal.NewFromInt(-1), Category: "Doces"}, "Pietro")
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("err = %v, want ErrInvalidPrice", err)
	}

	zero := 0
	product, err = svc.RegisterProduct(ctx, models.CreateProductRequest{Name: "Água", Category: "Bebidas", MinimumStock: &zero}, "Pietro")
	if err != nil {
		t.Fatal(err)
	}
	if product.MinimumStock != 0 {
		t.Fatalf("minimum stock = %d, want the explicit 0", product.MinimumStock)
	}
}

func TestStockServiceDeleteProduct(t *testing.T) {
	store := newMemoryStock(croissant)
	svc := newStockService(store, nil)
	ctx := context.Background()

	product, err := svc.DeleteProduct(ctx, 1, "Pietro")
	if err != nil {
		t.Fatal(err)
	}
	if product.Name != "Croissant" {
		t.Fatalf("product = %+v", product)
	}
	want := movement{1, 2, models.MovementDeleted, "Pietro", "01/06/2025 10:00:00"}
	if len(store.movements) != 1 || store.movements[0] != want {
		t.Fatalf("movements = %+v", store.movements)
	}

	if _, err := svc.DeleteProduct(ctx, 1, "Pietro"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestStockServiceCheckStock(t *testing.T) {
	svc := newStockService(newMemoryStock(croissant), nil)
	ctx := context.Background()

	tests := []struct {
		quantity int
		want     models.StockCheck
	}{
		{0, models.StockCheck{Available: true, Stock: 2, Requested: 1}},
		{2, models.StockCheck{Available: true, Stock: 2, Requested: 2}},
		{3, models.StockCheck{Available: false, Stock: 2, Requested: 3}},
	}
	for _, tt := range tests {
		got, err := svc.CheckStock(ctx, models.StockCheckRequest{ProductID: 1, Quantity: tt.quantity})
		if err != nil {
			t.Fatal(err)
		}
		if *got != tt.want {
			t.Errorf("CheckStock(%d) = %+v, want %+v", tt.quantity, *got, tt.want)
		}
	}

	if _, err := svc.CheckStock(ctx, models.StockCheckRequest{ProductID: 7}); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("unknown product err = %v", err)
	}
}
