package entity

import "time"

// Tipos de actor que pueden poseer una sesión.
const (
	ActorUser     = "user"     // usuario interno (admin o técnico)
	ActorCustomer = "customer" // cliente con acceso al portal
)

// Session respalda un bearer token emitido. Solo se persiste el hash del
// token; el texto plano se devuelve una única vez al emitirlo.
// Puede haber varias sesiones por actor (multi-dispositivo).
type Session struct {
	ID        string
	ActorID   string
	ActorType string // user, customer
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
