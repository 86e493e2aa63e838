package entity

import "time"

// Estados de negocio compartidos por PaintOrder y ServiceRequest.
const (
	StatusPendingApproval = "pending_approval"
	StatusAssigned        = "assigned"
	StatusInProgress      = "in_progress"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

// Eje de aprobación, independiente del estado de ejecución.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Lifecycle agrupa los campos del ciclo aprobación/asignación compartidos por
// las dos tablas tipo orden. Invariantes: ApprovedBy no nulo sii
// ApprovalStatus != pending; AssignedAt no nulo sii AssignedTo no nulo.
type Lifecycle struct {
	Status         string
	ApprovalStatus string
	ApprovedBy     *string
	ApprovedAt     *time.Time
	AssignedTo     *string
	AssignedAt     *time.Time
}
