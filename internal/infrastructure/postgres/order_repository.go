package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene un pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, company_id, account_id, number, status, COALESCE(invoice_id, ''), created_at, updated_at
		FROM orders WHERE id = $1`
	var order entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&order.ID, &order.CompanyID, &order.AccountID, &order.Number,
		&order.Status, &order.InvoiceID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

// GetItemsByOrderID obtiene las líneas de un pedido.
func (r *OrderRepo) GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, description, quantity, unit_price
		FROM order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// MarkInvoiced enlaza el pedido con la factura generada y lo marca Invoiced.
// El WHERE sobre invoice_id evita facturar dos veces en carrera: si otra
// transacción ya lo marcó, no se afecta ninguna fila.
func (r *OrderRepo) MarkInvoiced(order *entity.Order) error {
	query := `
		UPDATE orders
		SET status     = $2,
		    invoice_id = $3,
		    updated_at = $4
		WHERE id = $1 AND invoice_id IS NULL`
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.InvoiceID, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("mark order invoiced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order already invoiced: %s", order.ID)
	}
	return nil
}
