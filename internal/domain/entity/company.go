package entity

import "time"

// Company representa la empresa dueña de la organización (multi-tenant por company_id).
type Company struct {
	ID        string
	Name      string
	Email     string
	Currency  string // código ISO 4217, ej. "USD"
	Locale    string // etiqueta BCP 47 para formateo, ej. "en-US"
	CreatedAt time.Time
	UpdatedAt time.Time
}
