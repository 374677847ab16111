package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una orden de venta.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, product_id, product_name, quantity_sold, total_amount,
			customer_name, customer_address, customer_phone, sale_date, created_by)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ProductID, o.ProductName, o.QuantitySold, o.TotalAmount,
		o.CustomerName, o.CustomerAddress, o.CustomerPhone, o.SaleDate, o.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// List devuelve órdenes (más recientes primero) aplicando los filtros presentes.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	query := `
		SELECT id, product_id, product_name, quantity_sold, total_amount,
			COALESCE(customer_name, ''), COALESCE(customer_address, ''), COALESCE(customer_phone, ''),
			sale_date, created_by
		FROM orders`
	var (
		args  []any
		where []string
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.StartDate != nil {
		where = append(where, `sale_date::date >= `+arg(*f.StartDate))
	}
	if f.EndDate != nil {
		where = append(where, `sale_date::date <= `+arg(*f.EndDate))
	}
	if f.ProductID != nil {
		where = append(where, `product_id = `+arg(*f.ProductID))
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY sale_date DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.ProductName, &o.QuantitySold, &o.TotalAmount,
			&o.CustomerName, &o.CustomerAddress, &o.CustomerPhone, &o.SaleDate, &o.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
