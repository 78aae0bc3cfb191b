package entity

import "time"

// Account representa una cuenta del CRM (el pagador de las facturas).
type Account struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
