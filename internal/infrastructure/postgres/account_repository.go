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

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta.
func (r *AccountRepo) Create(account *entity.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	query := `
		INSERT INTO accounts (id, company_id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.CompanyID, account.Name,
		nullIfEmpty(account.Email), nullIfEmpty(account.Phone),
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, company_id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM accounts WHERE id = $1`
	var account entity.Account
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&account.ID, &account.CompanyID, &account.Name,
		&account.Email, &account.Phone,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &account, nil
}

// SearchByCompanyAndName busca cuentas por nombre (ILIKE parcial) para el
// lookup de caja.
func (r *AccountRepo) SearchByCompanyAndName(companyID, name string, limit int) ([]*entity.Account, error) {
	query := `
		SELECT id, company_id, name, COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM accounts
		WHERE company_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
		LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, companyID, name, limit)
	if err != nil {
		return nil, fmt.Errorf("search accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var account entity.Account
		if err := rows.Scan(
			&account.ID, &account.CompanyID, &account.Name,
			&account.Email, &account.Phone,
			&account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &account)
	}
	return list, rows.Err()
}
