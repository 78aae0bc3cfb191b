package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para transacciones de pago.
type PaymentRepository interface {
	Create(tx *entity.PaymentTransaction) error
	CreateAllocation(alloc *entity.PaymentAllocation) error
	GetByID(id string) (*entity.PaymentTransaction, error)
	GetAllocationsByPaymentID(paymentID string) ([]*entity.PaymentAllocation, error)
	ListByAccount(accountID string, limit, offset int) ([]*entity.PaymentTransaction, error)
}
