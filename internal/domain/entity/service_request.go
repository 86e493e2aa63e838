package entity

import "time"

// Prioridades válidas para ServiceRequest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ServiceRequest representa una solicitud de servicio técnico (reparación o
// mantenimiento de máquinas). Comparte el ciclo aprobación/asignación con
// PaintOrder.
type ServiceRequest struct {
	ID          string
	CustomerID  string
	UserID      string // usuario que registró la solicitud
	ServiceType string
	Description string
	Priority    string // low, medium, high
	Lifecycle
	RequestDate     time.Time
	ScheduledDate   *time.Time
	CompletionDate  *time.Time
	TechnicianNotes string
	AdminNotes      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
