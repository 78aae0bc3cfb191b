package payments

import (
	"fmt"

	"github.com/jhoicas/Pagos-api/internal/application/dto"
	"github.com/jhoicas/Pagos-api/internal/domain"
	"github.com/jhoicas/Pagos-api/pkg/bank"
)

// Tipos de cuenta bancaria aceptados en el formulario ACH.
var achAccountTypes = map[string]bool{
	"checking": true,
	"savings":  true,
}

// validateACH valida los datos bancarios capturados antes de usar el token:
// número de ruta con checksum ABA, número de cuenta y su confirmación
// idénticos, tipo de cuenta conocido. Cualquier violación es un error de
// validación que bloquea el envío completo (nunca un envío parcial).
func validateACH(in *dto.ACHDetails) error {
	if in == nil {
		return fmt.Errorf("%w: datos ACH requeridos", domain.ErrInvalidInput)
	}
	if in.AccountHolder == "" {
		return fmt.Errorf("%w: titular de la cuenta requerido", domain.ErrInvalidInput)
	}
	if err := bank.ValidateRoutingNumber(in.RoutingNumber); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := bank.ValidateAccountNumber(in.AccountNumber); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.AccountNumber != in.AccountNumberConfirm {
		return fmt.Errorf("%w: el número de cuenta y su confirmación no coinciden", domain.ErrInvalidInput)
	}
	if !achAccountTypes[in.AccountType] {
		return fmt.Errorf("%w: tipo de cuenta debe ser checking o savings", domain.ErrInvalidInput)
	}
	return nil
}
