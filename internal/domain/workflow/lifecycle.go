// Package workflow contiene las guardas puras del ciclo aprobación/asignación
// compartido por PaintOrder y ServiceRequest. Los dos ejes son independientes:
// una orden puede quedar aprobada sin asignar indefinidamente.
package workflow

import (
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
)

// CheckApprove valida que la orden siga pendiente de decisión.
// Aprobar o rechazar es terminal en el eje de aprobación: no hay re-decisión.
func CheckApprove(l entity.Lifecycle) error {
	if l.ApprovalStatus != entity.ApprovalPending {
		return domain.ErrAlreadyDecided
	}
	return nil
}

// CheckReject es simétrico a CheckApprove. Rechazar después de asignar es
// imposible por construcción: asignar exige aprobación previa.
func CheckReject(l entity.Lifecycle) error {
	return CheckApprove(l)
}

// CheckAssign valida que la orden esté aprobada y aún viva.
func CheckAssign(l entity.Lifecycle) error {
	if l.ApprovalStatus != entity.ApprovalApproved {
		return domain.ErrNotApproved
	}
	if IsTerminal(l.Status) {
		return domain.ErrConflict
	}
	return nil
}

// CheckStart valida que el trabajador asignado pueda iniciar el trabajo.
func CheckStart(l entity.Lifecycle, workerID string) error {
	if err := requireAssignee(l, workerID); err != nil {
		return err
	}
	if l.Status != entity.StatusAssigned {
		return domain.ErrConflict
	}
	return nil
}

// CheckComplete valida que el trabajador asignado pueda completar la orden.
func CheckComplete(l entity.Lifecycle, workerID string) error {
	if err := requireAssignee(l, workerID); err != nil {
		return err
	}
	if l.Status != entity.StatusAssigned && l.Status != entity.StatusInProgress {
		return domain.ErrConflict
	}
	return nil
}

// CheckCancel permite cancelar desde cualquier estado no terminal.
// Quién puede cancelar lo decide authz, no este paquete.
func CheckCancel(l entity.Lifecycle) error {
	if IsTerminal(l.Status) {
		return domain.ErrConflict
	}
	return nil
}

// IsTerminal indica si el estado de ejecución ya no admite transiciones.
func IsTerminal(status string) bool {
	return status == entity.StatusCompleted || status == entity.StatusCancelled
}

func requireAssignee(l entity.Lifecycle, workerID string) error {
	if l.AssignedTo == nil {
		return domain.ErrNotAssigned
	}
	if *l.AssignedTo != workerID {
		return domain.ErrForbidden
	}
	return nil
}
