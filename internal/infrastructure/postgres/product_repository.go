package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, total_added_qty, total_added_amount, total_sold_qty, total_sold_amount, available_stock`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetOrCreateForUpdate resuelve el producto por nombre, creándolo con todo en
// cero si no existe. El ON CONFLICT DO UPDATE toma el lock de fila aunque el
// producto ya exista, así que el caller sale con la fila bloqueada hasta el
// commit en ambos caminos.
func (r *ProductRepo) GetOrCreateForUpdate(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		INSERT INTO products (name, total_added_qty, total_added_amount, total_sold_qty, total_sold_amount, available_stock)
		VALUES ($1, 0, 0, 0, 0, 0)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING ` + productColumns
	return r.scanOne(r.q.QueryRow(ctx, query, name), "upsert product")
}

// GetByNameForUpdate obtiene un producto por nombre con lock de fila. nil si no existe.
func (r *ProductRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 FOR UPDATE`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, name), "get product for update")
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// GetByIDForUpdate obtiene un producto por ID con lock de fila. nil si no existe.
func (r *ProductRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, id), "get product by id for update")
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// GetByName obtiene un producto por nombre sin lock. nil si no existe.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	p, err := r.scanOne(r.q.QueryRow(ctx, query, name), "get product")
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// UpdateTotals persiste los cinco acumulados.
func (r *ProductRepo) UpdateTotals(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET total_added_qty = $2, total_added_amount = $3, total_sold_qty = $4, total_sold_amount = $5, available_stock = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.TotalAddedQty, p.TotalAddedAmount, p.TotalSoldQty, p.TotalSoldAmount, p.AvailableStock,
	)
	if err != nil {
		return fmt.Errorf("update product totals: %w", err)
	}
	return nil
}

// List devuelve todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalAddedQty, &p.TotalAddedAmount,
			&p.TotalSoldQty, &p.TotalSoldAmount, &p.AvailableStock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListNames devuelve los nombres de producto ordenados.
func (r *ProductRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT name FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list product names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan product name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.TotalAddedQty, &p.TotalAddedAmount,
		&p.TotalSoldQty, &p.TotalSoldAmount, &p.AvailableStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
