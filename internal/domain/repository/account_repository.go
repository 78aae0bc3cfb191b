package repository

import "github.com/jhoicas/Pagos-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para cuentas del CRM.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	// SearchByCompanyAndName busca cuentas por nombre (coincidencia parcial,
	// sin distinguir mayúsculas) para el lookup de caja.
	SearchByCompanyAndName(companyID, name string, limit int) ([]*entity.Account, error)
}
