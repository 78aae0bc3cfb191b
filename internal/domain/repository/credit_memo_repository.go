package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// CreditMemoRepository define el puerto de persistencia para notas crédito.
type CreditMemoRepository interface {
	Create(memo *entity.CreditMemo) error
	GetByID(id string) (*entity.CreditMemo, error)
	// ListOpenByAccount devuelve las notas con saldo restante positivo,
	// ordenadas de la más antigua a la más reciente (se consumen FIFO).
	ListOpenByAccount(accountID string) ([]*entity.CreditMemo, error)
	// UpdateRemaining actualiza el saldo restante tras debitar crédito.
	UpdateRemaining(memo *entity.CreditMemo) error
}
