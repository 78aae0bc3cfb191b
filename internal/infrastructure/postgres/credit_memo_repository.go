package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

var _ repository.CreditMemoRepository = (*CreditMemoRepo)(nil)

// CreditMemoRepo implementación de CreditMemoRepository (usable con pool o tx).
type CreditMemoRepo struct {
	q Querier
}

// NewCreditMemoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditMemoRepository(q Querier) *CreditMemoRepo {
	return &CreditMemoRepo{q: q}
}

// Create persiste una nota crédito.
func (r *CreditMemoRepo) Create(memo *entity.CreditMemo) error {
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}
	query := `
		INSERT INTO credit_memos (id, company_id, account_id, number, amount, remaining_balance, issued_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		memo.ID, memo.CompanyID, memo.AccountID, memo.Number,
		memo.Amount, memo.RemainingBalance, memo.IssuedAt,
		memo.CreatedAt, memo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("credit memo number already exists: %w", err)
		}
		return fmt.Errorf("insert credit memo: %w", err)
	}
	return nil
}

// GetByID obtiene una nota crédito por ID.
func (r *CreditMemoRepo) GetByID(id string) (*entity.CreditMemo, error) {
	query := `
		SELECT id, company_id, account_id, number, amount, remaining_balance, issued_at, created_at, updated_at
		FROM credit_memos WHERE id = $1`
	var memo entity.CreditMemo
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&memo.ID, &memo.CompanyID, &memo.AccountID, &memo.Number,
		&memo.Amount, &memo.RemainingBalance, &memo.IssuedAt,
		&memo.CreatedAt, &memo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit memo: %w", err)
	}
	return &memo, nil
}

// ListOpenByAccount devuelve las notas con saldo restante, de la más antigua
// a la más reciente. Ese orden es el orden de consumo (FIFO).
func (r *CreditMemoRepo) ListOpenByAccount(accountID string) ([]*entity.CreditMemo, error) {
	query := `
		SELECT id, company_id, account_id, number, amount, remaining_balance, issued_at, created_at, updated_at
		FROM credit_memos
		WHERE account_id = $1 AND remaining_balance > 0
		ORDER BY issued_at, number`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list credit memos: %w", err)
	}
	defer rows.Close()
	var list []*entity.CreditMemo
	for rows.Next() {
		var memo entity.CreditMemo
		if err := rows.Scan(
			&memo.ID, &memo.CompanyID, &memo.AccountID, &memo.Number,
			&memo.Amount, &memo.RemainingBalance, &memo.IssuedAt,
			&memo.CreatedAt, &memo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan credit memo: %w", err)
		}
		list = append(list, &memo)
	}
	return list, rows.Err()
}

// UpdateRemaining actualiza el saldo restante tras debitar crédito.
func (r *CreditMemoRepo) UpdateRemaining(memo *entity.CreditMemo) error {
	query := `
		UPDATE credit_memos
		SET remaining_balance = $2,
		    updated_at        = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, memo.ID, memo.RemainingBalance, memo.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update credit memo: %w", err)
	}
	return nil
}
