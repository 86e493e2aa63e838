package entity

import "time"

// Interaction registra un contacto con un cliente (llamada, visita, email).
// Historial de auditoría: nunca se elimina.
type Interaction struct {
	ID              string
	CustomerID      string
	UserID          string
	InteractionType string
	Description     string
	InteractionDate time.Time
	FollowUpDate    *time.Time
	Status          string // completed, pending
	CreatedAt       time.Time
}
