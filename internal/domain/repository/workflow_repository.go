package repository

import (
	"time"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
)

// LifecycleSnapshot es la lectura mínima para autorizar una transición y para
// explicar por qué un UPDATE condicional no afectó filas.
type LifecycleSnapshot struct {
	entity.Lifecycle
	CreatedBy  string
	CustomerID string
}

// WorkflowRepository es el puerto compartido de transiciones del ciclo
// aprobación/asignación. Cada transición es un UPDATE condicional: devuelve
// false cuando la precondición no se cumplió (0 filas afectadas), lo que da
// semántica at-most-once bajo aprobaciones concurrentes. El caso de uso
// relee el registro para mapear el false al error de dominio preciso.
type WorkflowRepository interface {
	// Snapshot devuelve el estado de ciclo y propiedad, o (nil, nil) si no existe.
	Snapshot(id string) (*LifecycleSnapshot, error)
	// Approve: WHERE approval_status='pending'.
	Approve(id, adminID string, at time.Time) (bool, error)
	// Reject: WHERE approval_status='pending'; reason queda en admin_notes.
	Reject(id, adminID, reason string, at time.Time) (bool, error)
	// Assign: WHERE approval_status='approved' AND status no terminal.
	Assign(id, workerID string, at time.Time) (bool, error)
	// Start: WHERE status='assigned' AND assigned_to=workerID.
	Start(id, workerID string) (bool, error)
	// Complete: WHERE status IN ('assigned','in_progress') AND assigned_to=workerID.
	Complete(id, workerID string, at time.Time) (bool, error)
	// Cancel: WHERE status NOT IN ('completed','cancelled').
	Cancel(id string) (bool, error)
}
