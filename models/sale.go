package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a finished PDV sale as recorded by the server.
type Sale struct {
	ID         int             `json:"id"`
	Date       string          `json:"data"`
	Products   []CartLine      `json:"produtos"`
	Total      decimal.Decimal `json:"total"`
	Seller     string          `json:"vendedor"`
	CustomerID string          `json:"cpf_cliente"`
	CreatedAt  time.Time       `json:"created_at"`
}

type StockMovement struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"produto_id"`
	ProductName string    `json:"produto_nome"`
	Quantity    int       `json:"quantidade"`
	Kind        string    `json:"tipo"`
	User        string    `json:"usuario"`
	Date        string    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stock movement kinds.
const (
	MovementOut     = "saída"
	MovementIn      = "entrada"
	MovementInitial = "entrada_inicial"
	MovementDeleted = "exclusao"
)

type LoyaltyPoints struct {
	CPF    string `json:"cpf"`
	Points int    `json:"pontos"`
}
