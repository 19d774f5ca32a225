package repositories

import (
	"context"
	"fmt"

	"pdv/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, nome, preco, quantidade, categoria, estoque_minimo, created_at, updated_at`

func (r *ProductRepository) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM produtos ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM produtos WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM produtos`).Scan(&n)
	return n, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO produtos (nome, preco, quantidade, categoria, estoque_minimo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, p.Name, p.Price, p.Stock, p.Category, p.MinimumStock).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// ExistsByName reports whether a product with this name exists, ignoring case.
func (r *ProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM produtos WHERE lower(nome) = lower($1))`, name,
	).Scan(&exists)
	return exists, err
}

// Register creates a product and records its opening stock as an
// entrada_inicial movement.
func (r *ProductRepository) Register(ctx context.Context, p *models.Product, user, date string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin register: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO produtos (nome, preco, quantidade, categoria, estoque_minimo)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Price, p.Stock, p.Category, p.MinimumStock,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}

	if err := insertMovement(ctx, tx, p.ID, p.Name, p.Stock, models.MovementInitial, user, date); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Restock adds quantity units and records an entrada movement. It returns
// pgx.ErrNoRows for an unknown product.
func (r *ProductRepository) Restock(ctx context.Context, id, quantity int, user, date string) (*models.Product, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin restock: %w", err)
	}
	defer tx.Rollback(ctx)

	var p models.Product
	err = tx.QueryRow(ctx,
		`UPDATE produtos SET quantidade = quantidade + $1, updated_at = now()
		 WHERE id = $2
		 RETURNING `+productColumns,
		quantity, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := insertMovement(ctx, tx, p.ID, p.Name, quantity, models.MovementIn, user, date); err != nil {
		return nil, err
	}
	return &p, tx.Commit(ctx)
}

// Delete removes a product. The units it held are recorded as an exclusao
// movement so the stock history survives the product. It returns
// pgx.ErrNoRows for an unknown product.
func (r *ProductRepository) Delete(ctx context.Context, id int, user, date string) (*models.Product, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback(ctx)

	var p models.Product
	err = tx.QueryRow(ctx,
		`DELETE FROM produtos WHERE id = $1 RETURNING `+productColumns, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := insertMovement(ctx, tx, p.ID, p.Name, p.Stock, models.MovementDeleted, user, date); err != nil {
		return nil, err
	}
	return &p, tx.Commit(ctx)
}

func insertMovement(ctx context.Context, tx pgx.Tx, productID int, productName string, quantity int, kind, user, date string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO movimentacoes (produto_id, produto_nome, quantidade, tipo, usuario, data)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		productID, productName, quantity, kind, user, date,
	)
	if err != nil {
		return fmt.Errorf("insert %s movement for product %d: %w", kind, productID, err)
	}
	return nil
}
