package entity

import "time"

// Roles válidos para User. Los clientes del portal no son usuarios: ver Customer.
const (
	RoleAdmin = "admin"
	RoleUser  = "user" // técnico/operario
)

// User representa un usuario interno del sistema (admin o técnico).
// Nunca se elimina físicamente: se desactiva vía IsActive.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	FullName     string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
