package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdv/controllers"
	"pdv/models"
	"pdv/repositories"
	"pdv/services"
	"pdv/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const secret = "routes-secret"

// stockStore keeps stock in memory and refuses sales it cannot cover.
type stockStore struct {
	stock map[int]int
	sales []models.Sale
}

func (s *stockStore) Create(ctx context.Context, sale *models.Sale, points *models.LoyaltyPoints) error {
	for _, line := range sale.Products {
		if s.stock[line.ProductID] < line.Quantity {
			return &repositories.InsufficientStockError{ProductName: line.ProductName}
		}
	}
	for _, line := range sale.Products {
		s.stock[line.ProductID] -= line.Quantity
	}
	sale.ID = len(s.sales) + 1
	s.sales = append(s.sales, *sale)
	return nil
}

func (s *stockStore) List(ctx context.Context, page, limit int) ([]models.Sale, int, error) {
	return s.sales, len(s.sales), nil
}

func (s *stockStore) GetPoints(ctx context.Context, cpf string) (*models.LoyaltyPoints, error) {
	return &models.LoyaltyPoints{CPF: cpf}, nil
}

func (s *stockStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	stock, ok := s.stock[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &models.Product{ID: id, Stock: stock}, nil
}

func (s *stockStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (s *stockStore) Register(ctx context.Context, p *models.Product, user, date string) error {
	p.ID = len(s.stock) + 1
	s.stock[p.ID] = p.Stock
	return nil
}

func (s *stockStore) Restock(ctx context.Context, id, quantity int, user, date string) (*models.Product, error) {
	if _, ok := s.stock[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	s.stock[id] += quantity
	return &models.Product{ID: id, Stock: s.stock[id]}, nil
}

func (s *stockStore) Delete(ctx context.Context, id int, user, date string) (*models.Product, error) {
	stock, ok := s.stock[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(s.stock, id)
	return &models.Product{ID: id, Stock: stock}, nil
}

type noProducts struct{}

func (noProducts) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	return nil, 0, nil
}

func (noProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	return nil, errors.New("not found")
}

func newServer(t *testing.T, store *stockStore) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, Controllers{
		Auth:      &controllers.AuthController{Auth: services.NewAuthService(nil, secret, time.Hour)},
		Products:  &controllers.ProductController{Products: services.NewProductService(noProducts{}, nil)},
		Sales:     &controllers.SaleController{Sales: services.NewSaleService(store, nil)},
		Stock:     &controllers.StockController{Stock: services.NewStockService(store, nil)},
		Users:     &controllers.UserController{Users: services.NewUserService(nil)},
		JWTSecret: secret,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func operatorToken(t *testing.T, permissions ...string) string {
	t.Helper()
	tok, err := utils.GenerateToken(secret, time.Hour, utils.Claims{UserID: 1, Name: "Pietro", Permissions: permissions})
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

type field struct{ value string }

func (f *field) Value() string { return f.value }
func (f *field) Clear()        { f.value = "" }

func TestCheckoutAgainstServer(t *testing.T) {
	store := &stockStore{stock: map[int]int{1: 5, 2: 1}}
	srv := newServer(t, store)
	ctx := context.Background()

	repo := repositories.NewMemoryCartRepository()
	customer := &field{value: "123.456.789-01"}
	client := services.NewHTTPSaleClient(srv.URL, operatorToken(t, models.PermissionSell), time.Second)
	manager := services.NewCartManager(repo, client, customer, nil)

	manager.Add(ctx, 1, "Soda", decimal.RequireFromString("5.00"))
	manager.Add(ctx, 1, "Soda", decimal.RequireFromString("5.00"))
	manager.Add(ctx, 2, "Chips", decimal.RequireFromString("3.50"))

	if err := manager.Checkout(ctx); err != nil {
		t.Fatal(err)
	}
	if repo.Stored() || customer.value != "" {
		t.Fatal("successful sale should clear the cart and the customer field")
	}
	if store.stock[1] != 3 || store.stock[2] != 0 {
		t.Fatalf("stock = %v", store.stock)
	}
	if len(store.sales) != 1 || store.sales[0].Seller != "Pietro" || !store.sales[0].Total.Equal(decimal.RequireFromString("13.50")) {
		t.Fatalf("sales = %+v", store.sales)
	}

	// Chips is now out of stock: the server answers success=false and the cart stays.
	manager.Add(ctx, 2, "Chips", decimal.RequireFromString("3.50"))
	err := manager.Checkout(ctx)
	if !errors.Is(err, services.ErrSaleRejected) {
		t.Fatalf("err = %v, want ErrSaleRejected", err)
	}
	if cart := repo.Load(ctx); len(cart) != 1 || cart[0].ProductID != 2 {
		t.Fatalf("cart = %+v", cart)
	}
}

func TestCheckoutRequiresLogin(t *testing.T) {
	srv := newServer(t, &stockStore{stock: map[int]int{1: 5}})
	ctx := context.Background()

	for _, tok := range []string{"", operatorToken(t, models.PermissionViewStock)} {
		repo := repositories.NewMemoryCartRepository()
		manager := services.NewCartManager(repo, services.NewHTTPSaleClient(srv.URL, tok, time.Second), nil, nil)
		manager.Add(ctx, 1, "Soda", decimal.RequireFromString("5"))

		if err := manager.Checkout(ctx); !errors.Is(err, services.ErrSaleRejected) {
			t.Fatalf("err = %v, want ErrSaleRejected", err)
		}
		if len(repo.Load(ctx)) != 1 {
			t.Fatal("cart should be kept")
		}
	}
}

func TestPublicRoutes(t *testing.T) {
	srv := newServer(t, &stockStore{})

	for _, path := range []string{"/", "/health", "/products"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d", path, resp.StatusCode)
		}
	}
}

func TestRestockUnblocksSale(t *testing.T) {
	store := &stockStore{stock: map[int]int{2: 0}}
	srv := newServer(t, store)
	ctx := context.Background()

	repo := repositories.NewMemoryCartRepository()
	seller := operatorToken(t, models.PermissionSell)
	manager := services.NewCartManager(repo, services.NewHTTPSaleClient(srv.URL, seller, time.Second), nil, nil)
	manager.Add(ctx, 2, "Chips", decimal.RequireFromString("3.50"))

	if err := manager.Checkout(ctx); !errors.Is(err, services.ErrSaleRejected) {
		t.Fatalf("err = %v, want ErrSaleRejected", err)
	}

	restock := func(token string) int {
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/aumentar_estoque", strings.NewReader(`{"produto_id":2,"quantidade":4}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if code := restock(seller); code != http.StatusForbidden {
		t.Fatalf("restock by a seller = %d, want 403", code)
	}
	if code := restock(operatorToken(t, models.PermissionChangeStock)); code != http.StatusOK {
		t.Fatalf("restock = %d, want 200", code)
	}
	if store.stock[2] != 4 {
		t.Fatalf("stock = %d, want 4", store.stock[2])
	}

	if err := manager.Checkout(ctx); err != nil {
		t.Fatalf("checkout after restock: %v", err)
	}
	if store.stock[2] != 3 {
		t.Fatalf("stock = %d, want 3", store.stock[2])
	}
}
