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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste una transacción de pago (exitosa o rechazada).
func (r *PaymentRepo) Create(tx *entity.PaymentTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payment_transactions (id, company_id, account_id, gateway_id, collected_by_user_id, channel, amount, credit_applied, status, gateway_transaction_id, error_message, method_summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CompanyID, tx.AccountID, tx.GatewayID,
		nullIfEmpty(tx.CollectedByUserID), tx.Channel,
		tx.Amount, tx.CreditApplied, tx.Status,
		nullIfEmpty(tx.GatewayTransactionID), nullIfEmpty(tx.ErrorMessage), nullIfEmpty(tx.MethodSummary),
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// CreateAllocation persiste la aplicación del pago a una factura.
func (r *PaymentRepo) CreateAllocation(alloc *entity.PaymentAllocation) error {
	if alloc.ID == "" {
		alloc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payment_allocations (id, payment_id, invoice_id, amount, is_full_payment)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		alloc.ID, alloc.PaymentID, alloc.InvoiceID, alloc.Amount, alloc.IsFullPayment,
	)
	if err != nil {
		return fmt.Errorf("insert payment allocation: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción de pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.PaymentTransaction, error) {
	query := `
		SELECT id, company_id, account_id, gateway_id,
		       COALESCE(collected_by_user_id, ''), channel, amount, credit_applied, status,
		       COALESCE(gateway_transaction_id, ''), COALESCE(error_message, ''), COALESCE(method_summary, ''),
		       created_at
		FROM payment_transactions WHERE id = $1`
	var tx entity.PaymentTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.CompanyID, &tx.AccountID, &tx.GatewayID,
		&tx.CollectedByUserID, &tx.Channel, &tx.Amount, &tx.CreditApplied, &tx.Status,
		&tx.GatewayTransactionID, &tx.ErrorMessage, &tx.MethodSummary,
		&tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment transaction: %w", err)
	}
	return &tx, nil
}

// GetAllocationsByPaymentID obtiene las asignaciones de un pago en orden de inserción.
func (r *PaymentRepo) GetAllocationsByPaymentID(paymentID string) ([]*entity.PaymentAllocation, error) {
	query := `
		SELECT id, payment_id, invoice_id, amount, is_full_payment
		FROM payment_allocations WHERE payment_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list payment allocations: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentAllocation
	for rows.Next() {
		var alloc entity.PaymentAllocation
		if err := rows.Scan(&alloc.ID, &alloc.PaymentID, &alloc.InvoiceID, &alloc.Amount, &alloc.IsFullPayment); err != nil {
			return nil, fmt.Errorf("scan payment allocation: %w", err)
		}
		list = append(list, &alloc)
	}
	return list, rows.Err()
}

// ListByAccount devuelve el historial de pagos de una cuenta, del más reciente al más antiguo.
func (r *PaymentRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.PaymentTransaction, error) {
	query := `
		SELECT id, company_id, account_id, gateway_id,
		       COALESCE(collected_by_user_id, ''), channel, amount, credit_applied, status,
		       COALESCE(gateway_transaction_id, ''), COALESCE(error_message, ''), COALESCE(method_summary, ''),
		       created_at
		FROM payment_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payment transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentTransaction
	for rows.Next() {
		var tx entity.PaymentTransaction
		if err := rows.Scan(
			&tx.ID, &tx.CompanyID, &tx.AccountID, &tx.GatewayID,
			&tx.CollectedByUserID, &tx.Channel, &tx.Amount, &tx.CreditApplied, &tx.Status,
			&tx.GatewayTransactionID, &tx.ErrorMessage, &tx.MethodSummary,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
