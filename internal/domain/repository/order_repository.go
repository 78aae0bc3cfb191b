package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	GetByID(id string) (*entity.Order, error)
	GetItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	// MarkInvoiced enlaza el pedido con la factura generada y lo marca Invoiced.
	MarkInvoiced(order *entity.Order) error
}
