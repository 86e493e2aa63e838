package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/workflow"
)

func pendiente() entity.Lifecycle {
	return entity.Lifecycle{
		Status:         entity.StatusPendingApproval,
		ApprovalStatus: entity.ApprovalPending,
	}
}

func aprobada(por string) entity.Lifecycle {
	now := time.Now()
	return entity.Lifecycle{
		Status:         entity.StatusPendingApproval,
		ApprovalStatus: entity.ApprovalApproved,
		ApprovedBy:     &por,
		ApprovedAt:     &now,
	}
}

func asignada(por, a string) entity.Lifecycle {
	l := aprobada(por)
	now := time.Now()
	l.Status = entity.StatusAssigned
	l.AssignedTo = &a
	l.AssignedAt = &now
	return l
}

func TestCheckApprove_SoloPendiente(t *testing.T) {
	assert.NoError(t, workflow.CheckApprove(pendiente()))

	assert.ErrorIs(t, workflow.CheckApprove(aprobada("admin1")), domain.ErrAlreadyDecided,
		"re-aprobar una orden ya aprobada debe fallar")

	rechazada := pendiente()
	rechazada.ApprovalStatus = entity.ApprovalRejected
	assert.ErrorIs(t, workflow.CheckApprove(rechazada), domain.ErrAlreadyDecided)
}

func TestCheckReject_DespuesDeDecidir(t *testing.T) {
	assert.NoError(t, workflow.CheckReject(pendiente()))
	assert.ErrorIs(t, workflow.CheckReject(asignada("admin1", "tech7")), domain.ErrAlreadyDecided,
		"rechazar después de asignar debe fallar: la aprobación ya fue decidida")
}

func TestCheckAssign_RequiereAprobacion(t *testing.T) {
	assert.ErrorIs(t, workflow.CheckAssign(pendiente()), domain.ErrNotApproved)

	rechazada := pendiente()
	rechazada.ApprovalStatus = entity.ApprovalRejected
	assert.ErrorIs(t, workflow.CheckAssign(rechazada), domain.ErrNotApproved,
		"una orden rechazada nunca se puede asignar")

	assert.NoError(t, workflow.CheckAssign(aprobada("admin1")))

	cancelada := aprobada("admin1")
	cancelada.Status = entity.StatusCancelled
	assert.ErrorIs(t, workflow.CheckAssign(cancelada), domain.ErrConflict)
}

func TestCheckComplete_RequiereAsignacion(t *testing.T) {
	assert.ErrorIs(t, workflow.CheckComplete(pendiente(), "tech7"), domain.ErrNotAssigned)
	assert.ErrorIs(t, workflow.CheckComplete(aprobada("admin1"), "tech7"), domain.ErrNotAssigned,
		"completar una orden aprobada pero sin asignar debe fallar")

	l := asignada("admin1", "tech7")
	assert.NoError(t, workflow.CheckComplete(l, "tech7"))
	assert.ErrorIs(t, workflow.CheckComplete(l, "tech9"), domain.ErrForbidden,
		"solo el asignado puede completar")

	l.Status = entity.StatusInProgress
	assert.NoError(t, workflow.CheckComplete(l, "tech7"))

	l.Status = entity.StatusCompleted
	assert.ErrorIs(t, workflow.CheckComplete(l, "tech7"), domain.ErrConflict)
}

func TestCheckStart_SoloDesdeAsignada(t *testing.T) {
	l := asignada("admin1", "tech7")
	assert.NoError(t, workflow.CheckStart(l, "tech7"))
	assert.ErrorIs(t, workflow.CheckStart(l, "tech9"), domain.ErrForbidden)

	l.Status = entity.StatusInProgress
	assert.ErrorIs(t, workflow.CheckStart(l, "tech7"), domain.ErrConflict)
}

func TestCheckCancel_DesdeCualquierEstadoNoTerminal(t *testing.T) {
	assert.NoError(t, workflow.CheckCancel(pendiente()))
	assert.NoError(t, workflow.CheckCancel(aprobada("admin1")))
	assert.NoError(t, workflow.CheckCancel(asignada("admin1", "tech7")),
		"cancelar después de asignar y antes de completar está permitido")

	enCurso := asignada("admin1", "tech7")
	enCurso.Status = entity.StatusInProgress
	assert.NoError(t, workflow.CheckCancel(enCurso))

	completada := asignada("admin1", "tech7")
	completada.Status = entity.StatusCompleted
	assert.ErrorIs(t, workflow.CheckCancel(completada), domain.ErrConflict)

	cancelada := pendiente()
	cancelada.Status = entity.StatusCancelled
	assert.ErrorIs(t, workflow.CheckCancel(cancelada), domain.ErrConflict)
}
