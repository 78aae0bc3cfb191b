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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un método de pago tokenizado.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payment_methods (id, company_id, account_id, type, gateway_token, brand, last4, exp_month, exp_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		method.ID, method.CompanyID, method.AccountID, method.Type, method.GatewayToken,
		nullIfEmpty(method.Brand), nullIfEmpty(method.Last4),
		method.ExpMonth, method.ExpYear, method.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene un método guardado por ID.
func (r *PaymentMethodRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	query := `
		SELECT id, company_id, account_id, type, gateway_token,
		       COALESCE(brand, ''), COALESCE(last4, ''), exp_month, exp_year, created_at
		FROM payment_methods WHERE id = $1`
	var method entity.PaymentMethod
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&method.ID, &method.CompanyID, &method.AccountID, &method.Type, &method.GatewayToken,
		&method.Brand, &method.Last4, &method.ExpMonth, &method.ExpYear, &method.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &method, nil
}

// ListByAccount devuelve los métodos guardados de una cuenta.
func (r *PaymentMethodRepo) ListByAccount(accountID string) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, company_id, account_id, type, gateway_token,
		       COALESCE(brand, ''), COALESCE(last4, ''), exp_month, exp_year, created_at
		FROM payment_methods WHERE account_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var method entity.PaymentMethod
		if err := rows.Scan(
			&method.ID, &method.CompanyID, &method.AccountID, &method.Type, &method.GatewayToken,
			&method.Brand, &method.Last4, &method.ExpMonth, &method.ExpYear, &method.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &method)
	}
	return list, rows.Err()
}

// Delete elimina un método guardado.
func (r *PaymentMethodRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_methods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
