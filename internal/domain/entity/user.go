package entity

import "time"

// Roles de usuario dentro de la empresa.
const (
	RoleAdmin  = "admin"
	RoleAgente = "agente" // agente de call center (POS telefónico)
	RoleCajero = "cajero" // caja presencial
)

// User representa un usuario de la aplicación.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | agente | cajero
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
