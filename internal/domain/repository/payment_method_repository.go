package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// PaymentMethodRepository define el puerto de persistencia para métodos de
// pago guardados (tokenizados).
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	ListByAccount(accountID string) ([]*entity.PaymentMethod, error)
	Delete(id string) error
}
