package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// GatewayRepository define el puerto de persistencia para pasarelas de pago.
type GatewayRepository interface {
	GetByID(id string) (*entity.PaymentGateway, error)
	// GetDefaultByCompany devuelve la pasarela activa marcada como
	// predeterminada para la empresa, o nil si no hay ninguna.
	GetDefaultByCompany(companyID string) (*entity.PaymentGateway, error)
	ListByCompany(companyID string) ([]*entity.PaymentGateway, error)
}
