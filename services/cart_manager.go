package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pdv/models"
	"pdv/repositories"
	"pdv/utils"

	"github.com/shopspring/decimal"
)

// User-facing messages shown by the PDV.
const (
	MsgEmptyCart      = "Adicione produtos ao carrinho antes de finalizar a venda."
	MsgSaleDone       = "Venda realizada com sucesso!"
	MsgSaleFailed     = "Erro ao processar venda."
	MsgSaleInProgress = "Venda em andamento, aguarde a resposta."
	MsgCartNotCleared = "Venda registrada, mas o carrinho não pôde ser limpo. Limpe o carrinho antes da próxima venda."
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSaleRejected       = errors.New("sale rejected by the sale service")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// Renderer draws the cart. It receives a full view on every change and must
// redraw from scratch.
type Renderer interface {
	Render(view models.CartView)
}

// Notifier shows a blocking message to the operator.
type Notifier interface {
	Notify(message string)
}

// CustomerInput is the customer identifier (CPF) field of the PDV.
type CustomerInput interface {
	Value() string
	Clear()
}

// SaleProcessor submits a sale. A non-nil error means the request did not
// complete; a completed request reports its outcome in SaleResult.Success.
type SaleProcessor interface {
	ProcessSale(ctx context.Context, req models.SaleRequest) (*models.SaleResult, error)
}

type CartManager struct {
	repo      repositories.CartRepository
	sales     SaleProcessor
	customer  CustomerInput
	notifier  Notifier
	renderers []Renderer
	now       func() time.Time
}

func NewCartManager(repo repositories.CartRepository, sales SaleProcessor, customer CustomerInput, notifier Notifier) *CartManager {
	return &CartManager{
		repo:     repo,
		sales:    sales,
		customer: customer,
		notifier: notifier,
		now:      time.Now,
	}
}

// Subscribe registers a renderer for every subsequent render.
func (m *CartManager) Subscribe(r Renderer) {
	m.renderers = append(m.renderers, r)
}

func (m *CartManager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *CartManager) Add(ctx context.Context, productID int, productName string, unitPrice decimal.Decimal) error {
	cart := m.repo.Load(ctx).Add(productID, productName, unitPrice)
	if err := m.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	m.Render(ctx)
	return nil
}

func (m *CartManager) Remove(ctx context.Context, productID int) error {
	cart := m.repo.Load(ctx).Remove(productID)
	if err := m.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	m.Render(ctx)
	return nil
}

// ChangeQuantity is a no-op for a product not in the cart. A result of zero or
// less removes the line.
func (m *CartManager) ChangeQuantity(ctx context.Context, productID, delta int) error {
	cart := m.repo.Load(ctx)
	line, ok := cart.Find(productID)
	if !ok {
		return nil
	}
	if line.Quantity+delta <= 0 {
		return m.Remove(ctx, productID)
	}

	cart, _ = cart.ChangeQuantity(productID, delta)
	if err := m.repo.Save(ctx, cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	m.Render(ctx)
	return nil
}

// Render loads the cart, builds its view and hands it to every renderer.
func (m *CartManager) Render(ctx context.Context) models.CartView {
	view := BuildCartView(m.repo.Load(ctx))
	for _, r := range m.renderers {
		r.Render(view)
	}
	return view
}

// Checkout submits the cart. The repository lock allows one checkout at a
// time per cart, across every manager and process sharing the store. The cart
// is cleared only when the sale service answers success; every other outcome
// leaves it as it was.
func (m *CartManager) Checkout(ctx context.Context) error {
	locked, err := m.repo.TryLock(ctx)
	if err != nil {
		log.Printf("checkout: lock: %v", err)
		m.notify(MsgSaleFailed)
		return fmt.Errorf("lock checkout: %w", err)
	}
	if !locked {
		m.notify(MsgSaleInProgress)
		return ErrCheckoutInProgress
	}
	defer func() {
		if err := m.repo.Unlock(context.WithoutCancel(ctx)); err != nil {
			log.Printf("checkout: unlock: %v", err)
		}
	}()

	cart := m.repo.Load(ctx)
	if cart.IsEmpty() {
		m.notify(MsgEmptyCart)
		return ErrEmptyCart
	}

	req := models.SaleRequest{
		Products:   cart,
		CustomerID: m.customerID(),
		Total:      cart.Total(),
		Date:       utils.FormatLocaleDateTime(m.now()),
	}

	result, err := m.sales.ProcessSale(ctx, req)
	if err != nil {
		log.Printf("checkout: %v", err)
		m.notify(MsgSaleFailed)
		return fmt.Errorf("process sale: %w", err)
	}
	if !result.Success {
		m.notify(MsgSaleFailed)
		if result.Message != "" {
			return fmt.Errorf("%w: %s", ErrSaleRejected, result.Message)
		}
		return ErrSaleRejected
	}

	// The store is not re-read here: a cart changed elsewhere while the
	// request was in flight is dropped as well.
	if err := m.repo.Clear(ctx); err != nil {
		log.Printf("checkout: sale recorded but cart not cleared: %v", err)
		m.notify(MsgCartNotCleared)
		return fmt.Errorf("clear cart: %w", err)
	}
	m.Render(ctx)
	if m.customer != nil {
		m.customer.Clear()
	}
	m.notify(MsgSaleDone)
	return nil
}

func (m *CartManager) customerID() string {
	if m.customer == nil {
		return ""
	}
	value := m.customer.Value()
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return value
}

func (m *CartManager) notify(message string) {
	if m.notifier != nil {
		m.notifier.Notify(message)
	}
}

// BuildCartView computes line totals and the grand total from scratch.
func BuildCartView(cart models.Cart) models.CartView {
	view := models.CartView{
		Lines: make([]models.CartLineView, 0, len(cart)),
		Total: decimal.Zero,
	}

	for _, line := range cart {
		lineTotal := line.Total()
		view.Total = view.Total.Add(lineTotal)
		view.Lines = append(view.Lines, models.CartLineView{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			UnitPrice:    utils.FormatCurrency(line.UnitPrice),
			Quantity:     line.Quantity,
			LineTotal:    utils.FormatCurrency(lineTotal),
			Decrement:    models.CartControl{Label: "-", ProductID: line.ProductID, Delta: -1},
			Increment:    models.CartControl{Label: "+", ProductID: line.ProductID, Delta: 1},
			RemoveAction: models.CartControl{Label: "Remover", ProductID: line.ProductID, Remove: true},
		})
	}

	view.TotalDisplay = utils.FormatCurrency(view.Total)
	return view
}
