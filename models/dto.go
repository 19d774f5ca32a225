package models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// SaleRequest is the body the PDV terminal posts to /processar_venda.
type SaleRequest struct {
	Products   []CartLine      `json:"produtos" binding:"required,min=1,dive"`
	CustomerID string          `json:"cpfCliente"`
	Total      decimal.Decimal `json:"total"`
	Date       string          `json:"data"`
}

// SaleResult is the reply of /processar_venda. Only Success drives the cart.
type SaleResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RestockRequest adds units to a product. Date defaults to today.
type RestockRequest struct {
	ProductID int    `json:"produto_id" binding:"required,gte=1"`
	Quantity  int    `json:"quantidade" binding:"required,gte=1"`
	Date      string `json:"data"`
}

// CreateProductRequest registers a product. MinimumStock defaults to 10.
type CreateProductRequest struct {
	Name         string          `json:"nome" binding:"required"`
	Price        decimal.Decimal `json:"preco"`
	Stock        int             `json:"quantidade" binding:"gte=0"`
	Category     string          `json:"categoria" binding:"required"`
	MinimumStock *int            `json:"estoque_minimo" binding:"omitempty,gte=0"`
}

// StockCheckRequest asks whether Quantity units are available. Quantity
// defaults to 1.
type StockCheckRequest struct {
	ProductID int `json:"produto_id" binding:"required,gte=1"`
	Quantity  int `json:"quantidade" binding:"gte=0"`
}

type StockCheck struct {
	Available bool `json:"disponivel"`
	Stock     int  `json:"estoque_atual"`
	Requested int  `json:"quantidade_solicitada"`
}

type CreateUserRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
	Role     string `json:"tipo" binding:"required"`
}
