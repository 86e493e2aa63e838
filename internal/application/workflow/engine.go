// Package workflow ejecuta las transiciones del ciclo aprobación/asignación
// contra el puerto compartido de persistencia. Cada transición es un UPDATE
// condicional: si no afecta filas, el motor relee el registro y devuelve el
// error de dominio preciso. Un aprobador concurrente que pierde la carrera
// observa cero filas y recibe ErrAlreadyDecided, nunca sobrescribe.
package workflow

import (
	"time"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
	domainwf "github.com/jhoicas/Pinturas-api/internal/domain/workflow"
)

// Engine aplica transiciones sobre un WorkflowRepository (pedidos de pintura
// o solicitudes de servicio, mismo ciclo).
type Engine struct {
	store repository.WorkflowRepository
	now   func() time.Time
}

// NewEngine construye el motor sobre un store concreto.
func NewEngine(store repository.WorkflowRepository) *Engine {
	return &Engine{store: store, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Approve marca la orden como aprobada por el admin. Falla con
// ErrAlreadyDecided si la aprobación ya fue decidida (incluida una carrera
// perdida contra otro admin).
func (e *Engine) Approve(actor authz.Actor, id string) error {
	if !authz.Allow(actor, authz.OpApprove, authz.Ownership{}) {
		return domain.ErrForbidden
	}
	ok, err := e.store.Approve(id, actor.ID, e.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, domainwf.CheckApprove)
}

// Reject marca la orden como rechazada; terminal, sin asignación posterior.
func (e *Engine) Reject(actor authz.Actor, id, reason string) error {
	if !authz.Allow(actor, authz.OpReject, authz.Ownership{}) {
		return domain.ErrForbidden
	}
	if reason == "" {
		return domain.ErrValidation
	}
	ok, err := e.store.Reject(id, actor.ID, reason, e.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, domainwf.CheckReject)
}

// Assign delega el trabajo a un usuario; exige aprobación previa.
func (e *Engine) Assign(actor authz.Actor, id, workerID string) error {
	if !authz.Allow(actor, authz.OpAssign, authz.Ownership{}) {
		return domain.ErrForbidden
	}
	if workerID == "" {
		return domain.ErrValidation
	}
	ok, err := e.store.Assign(id, workerID, e.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, domainwf.CheckAssign)
}

// Start pasa la orden asignada a in_progress; solo el asignado.
func (e *Engine) Start(actor authz.Actor, id string) error {
	if actor.Role == authz.RoleCustomer {
		return domain.ErrForbidden
	}
	ok, err := e.store.Start(id, actor.ID)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, func(l entity.Lifecycle) error {
		return domainwf.CheckStart(l, actor.ID)
	})
}

// Complete cierra la orden; solo el asignado, desde assigned o in_progress.
func (e *Engine) Complete(actor authz.Actor, id string) error {
	if actor.Role == authz.RoleCustomer {
		return domain.ErrForbidden
	}
	ok, err := e.store.Complete(id, actor.ID, e.now())
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, func(l entity.Lifecycle) error {
		return domainwf.CheckComplete(l, actor.ID)
	})
}

// Cancel aborta la orden desde cualquier estado no terminal. Admin siempre;
// el creador o el cliente dueño solo mientras siga en pending_approval.
func (e *Engine) Cancel(actor authz.Actor, id string) error {
	snap, err := e.store.Snapshot(id)
	if err != nil {
		return err
	}
	if snap == nil {
		return domain.ErrNotFound
	}
	own := authz.Ownership{CreatedBy: snap.CreatedBy, CustomerID: snap.CustomerID}
	if snap.AssignedTo != nil {
		own.AssignedTo = *snap.AssignedTo
	}
	if !authz.CanCancel(actor, own, snap.Status) {
		return domain.ErrForbidden
	}
	ok, err := e.store.Cancel(id)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.explain(id, domainwf.CheckCancel)
}

// explain relee el registro tras un UPDATE sin filas afectadas y mapea el
// estado observado al error de dominio correspondiente.
func (e *Engine) explain(id string, check func(entity.Lifecycle) error) error {
	snap, err := e.store.Snapshot(id)
	if err != nil {
		return err
	}
	if snap == nil {
		return domain.ErrNotFound
	}
	if err := check(snap.Lifecycle); err != nil {
		return err
	}
	// El estado relatado permite la transición pero el UPDATE no la aplicó:
	// carrera con otro escritor entre el UPDATE y esta lectura.
	return domain.ErrConflict
}
