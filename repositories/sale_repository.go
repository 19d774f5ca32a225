package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pdv/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsufficientStockError aborts a sale when a product has fewer units in
// stock than the cart asks for.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Estoque insuficiente para %s", e.ProductName)
}

type SaleRepository struct {
	db *pgxpool.Pool
}

func NewSaleRepository(db *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create records the sale in one transaction: stock is decremented under row
// locks, a stock movement is written per line, and loyalty points are added
// when points is not nil. Lines for unknown products are skipped.
func (r *SaleRepository) Create(ctx context.Context, sale *models.Sale, points *models.LoyaltyPoints) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sale: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, line := range sale.Products {
		var name string
		var stock int
		err := tx.QueryRow(ctx,
			`SELECT nome, quantidade FROM produtos WHERE id = $1 FOR UPDATE`,
			line.ProductID,
		).Scan(&name, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return fmt.Errorf("lock product %d: %w", line.ProductID, err)
		}

		if stock < line.Quantity {
			return &InsufficientStockError{ProductName: name}
		}

		if _, err := tx.Exec(ctx,
			`UPDATE produtos SET quantidade = quantidade - $1, updated_at = now() WHERE id = $2`,
			line.Quantity, line.ProductID,
		); err != nil {
			return fmt.Errorf("update stock %d: %w", line.ProductID, err)
		}

		if err := insertMovement(ctx, tx, line.ProductID, name, line.Quantity, models.MovementOut, sale.Seller, sale.Date); err != nil {
			return err
		}
	}

	products, err := json.Marshal(sale.Products)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO vendas (data, produtos, total, vendedor, cpf_cliente)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		sale.Date, products, sale.Total, sale.Seller, sale.CustomerID,
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}

	if points != nil {
		if _, err := tx.Exec(ctx,
			`INSERT INTO pontos (cpf, pontos) VALUES ($1, $2)
			 ON CONFLICT (cpf) DO UPDATE SET pontos = pontos.pontos + EXCLUDED.pontos, updated_at = now()`,
			points.CPF, points.Points,
		); err != nil {
			return fmt.Errorf("add points: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *SaleRepository) List(ctx context.Context, page, limit int) ([]models.Sale, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vendas`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, data, produtos, total, vendedor, cpf_cliente, created_at
		 FROM vendas ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		var products []byte
		if err := rows.Scan(&s.ID, &s.Date, &products, &s.Total, &s.Seller, &s.CustomerID, &s.CreatedAt); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(products, &s.Products); err != nil {
			return nil, 0, fmt.Errorf("decode sale %d products: %w", s.ID, err)
		}
		sales = append(sales, s)
	}
	return sales, total, rows.Err()
}

func (r *SaleRepository) GetPoints(ctx context.Context, cpf string) (*models.LoyaltyPoints, error) {
	p := models.LoyaltyPoints{CPF: cpf}
	err := r.db.QueryRow(ctx, `SELECT pontos FROM pontos WHERE cpf = $1`, cpf).Scan(&p.Points)
	if errors.Is(err, pgx.ErrNoRows) {
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
