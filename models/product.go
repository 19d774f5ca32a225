package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"nome"`
	Price        decimal.Decimal `json:"preco"`
	Stock        int             `json:"quantidade"`
	Category     string          `json:"categoria"`
	MinimumStock int             `json:"estoque_minimo"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (p Product) LowStock() bool {
	return p.Stock <= p.MinimumStock
}
