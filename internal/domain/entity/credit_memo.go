package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditMemo representa una nota crédito a favor de una cuenta.
// RemainingBalance es lo que queda por consumir; el pool de crédito de la
// cuenta es la suma de los RemainingBalance de sus notas.
type CreditMemo struct {
	ID               string
	CompanyID        string
	AccountID        string
	Number           string
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
	IssuedAt         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
