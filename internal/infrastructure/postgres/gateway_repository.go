package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pagos-api/internal/domain/entity"
	"github.com/jhoicas/Pagos-api/internal/domain/repository"
)

var _ repository.GatewayRepository = (*GatewayRepo)(nil)

// GatewayRepo implementación de GatewayRepository (usable con pool o tx).
type GatewayRepo struct {
	q Querier
}

// NewGatewayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGatewayRepository(q Querier) *GatewayRepo {
	return &GatewayRepo{q: q}
}

const gatewayColumns = `id, company_id, name, provider, is_default, active, created_at, updated_at`

// GetByID obtiene una pasarela por ID.
func (r *GatewayRepo) GetByID(id string) (*entity.PaymentGateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM payment_gateways WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetDefaultByCompany devuelve la pasarela activa marcada como predeterminada,
// o nil si la empresa no tiene ninguna.
func (r *GatewayRepo) GetDefaultByCompany(companyID string) (*entity.PaymentGateway, error) {
	query := `
		SELECT ` + gatewayColumns + `
		FROM payment_gateways
		WHERE company_id = $1 AND is_default AND active
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID))
}

// ListByCompany devuelve las pasarelas configuradas por la empresa.
func (r *GatewayRepo) ListByCompany(companyID string) ([]*entity.PaymentGateway, error) {
	query := `SELECT ` + gatewayColumns + ` FROM payment_gateways WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list gateways: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentGateway
	for rows.Next() {
		var gw entity.PaymentGateway
		if err := rows.Scan(
			&gw.ID, &gw.CompanyID, &gw.Name, &gw.Provider,
			&gw.IsDefault, &gw.Active, &gw.CreatedAt, &gw.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan gateway: %w", err)
		}
		list = append(list, &gw)
	}
	return list, rows.Err()
}

func (r *GatewayRepo) scanOne(row pgx.Row) (*entity.PaymentGateway, error) {
	var gw entity.PaymentGateway
	err := row.Scan(
		&gw.ID, &gw.CompanyID, &gw.Name, &gw.Provider,
		&gw.IsDefault, &gw.Active, &gw.CreatedAt, &gw.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gateway: %w", err)
	}
	return &gw, nil
}
