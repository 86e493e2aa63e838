package workflow_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/workflow"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

var (
	admin   = authz.Actor{ID: "admin1", Type: entity.ActorUser, Role: entity.RoleAdmin}
	admin2  = authz.Actor{ID: "admin2", Type: entity.ActorUser, Role: entity.RoleAdmin}
	tech    = authz.Actor{ID: "tech7", Type: entity.ActorUser, Role: entity.RoleUser}
	cliente = authz.Actor{ID: "cust3", Type: entity.ActorCustomer, Role: authz.RoleCustomer}
)

// fakeStore replica en memoria la semántica de los UPDATE condicionales:
// cada transición verifica su precondición bajo lock y reporta false si no se
// cumple, igual que cero filas afectadas en PostgreSQL.
type fakeStore struct {
	mu   sync.Mutex
	rows map[string]*repository.LifecycleSnapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[string]*repository.LifecycleSnapshot)}
}

func (f *fakeStore) put(id, createdBy, customerID string) {
	f.rows[id] = &repository.LifecycleSnapshot{
		Lifecycle: entity.Lifecycle{
			Status:         entity.StatusPendingApproval,
			ApprovalStatus: entity.ApprovalPending,
		},
		CreatedBy:  createdBy,
		CustomerID: customerID,
	}
}

func (f *fakeStore) Snapshot(id string) (*repository.LifecycleSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copia := *row
	return &copia, nil
}

func (f *fakeStore) Approve(id, adminID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ApprovalStatus != entity.ApprovalPending {
		return false, nil
	}
	row.ApprovalStatus = entity.ApprovalApproved
	row.ApprovedBy = &adminID
	row.ApprovedAt = &at
	return true, nil
}

func (f *fakeStore) Reject(id, adminID, reason string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ApprovalStatus != entity.ApprovalPending {
		return false, nil
	}
	row.ApprovalStatus = entity.ApprovalRejected
	row.ApprovedBy = &adminID
	row.ApprovedAt = &at
	return true, nil
}

func (f *fakeStore) Assign(id, workerID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ApprovalStatus != entity.ApprovalApproved ||
		row.Status == entity.StatusCompleted || row.Status == entity.StatusCancelled {
		return false, nil
	}
	row.Status = entity.StatusAssigned
	row.AssignedTo = &workerID
	row.AssignedAt = &at
	return true, nil
}

func (f *fakeStore) Start(id, workerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status != entity.StatusAssigned ||
		row.AssignedTo == nil || *row.AssignedTo != workerID {
		return false, nil
	}
	row.Status = entity.StatusInProgress
	return true, nil
}

func (f *fakeStore) Complete(id, workerID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.AssignedTo == nil || *row.AssignedTo != workerID ||
		(row.Status != entity.StatusAssigned && row.Status != entity.StatusInProgress) {
		return false, nil
	}
	row.Status = entity.StatusCompleted
	return true, nil
}

func (f *fakeStore) Cancel(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status == entity.StatusCompleted || row.Status == entity.StatusCancelled {
		return false, nil
	}
	row.Status = entity.StatusCancelled
	return true, nil
}

func TestEngine_CicloCompleto(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	require.NoError(t, eng.Approve(admin, "o1"))
	snap, _ := store.Snapshot("o1")
	assert.Equal(t, entity.ApprovalApproved, snap.ApprovalStatus)
	require.NotNil(t, snap.ApprovedBy)
	assert.Equal(t, "admin1", *snap.ApprovedBy)

	require.NoError(t, eng.Assign(admin, "o1", "tech7"))
	snap, _ = store.Snapshot("o1")
	assert.Equal(t, entity.StatusAssigned, snap.Status)
	require.NotNil(t, snap.AssignedTo)
	assert.Equal(t, "tech7", *snap.AssignedTo)

	require.NoError(t, eng.Start(tech, "o1"))
	require.NoError(t, eng.Complete(tech, "o1"))
	snap, _ = store.Snapshot("o1")
	assert.Equal(t, entity.StatusCompleted, snap.Status)
}

func TestEngine_AprobacionConcurrente_UnSoloGanador(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	actors := []authz.Actor{admin, admin2, admin, admin2, admin}
	errs := make([]error, len(actors))
	var wg sync.WaitGroup
	for i, a := range actors {
		wg.Add(1)
		go func(i int, a authz.Actor) {
			defer wg.Done()
			errs[i] = eng.Approve(a, "o1")
		}(i, a)
	}
	wg.Wait()

	ganadores := 0
	for _, err := range errs {
		if err == nil {
			ganadores++
		} else {
			assert.ErrorIs(t, err, domain.ErrAlreadyDecided,
				"todo perdedor de la carrera debe recibir ErrAlreadyDecided")
		}
	}
	assert.Equal(t, 1, ganadores, "exactamente un approve debe ganar")

	snap, _ := store.Snapshot("o1")
	require.NotNil(t, snap.ApprovedBy)
	assert.Contains(t, []string{"admin1", "admin2"}, *snap.ApprovedBy)
}

func TestEngine_AsignarAntesDeAprobar(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	assert.ErrorIs(t, eng.Assign(admin, "o1", "tech7"), domain.ErrNotApproved)
}

func TestEngine_CompletarSinAsignar(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	require.NoError(t, eng.Approve(admin, "o1"))
	assert.ErrorIs(t, eng.Complete(tech, "o1"), domain.ErrNotAssigned)
}

func TestEngine_RechazoEsTerminal(t *testing.T) {
	store := newFakeStore()
	store.put("o2", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	require.NoError(t, eng.Reject(admin, "o2", "sin stock"))
	snap, _ := store.Snapshot("o2")
	assert.Equal(t, entity.ApprovalRejected, snap.ApprovalStatus)

	assert.ErrorIs(t, eng.Assign(admin, "o2", "tech7"), domain.ErrNotApproved,
		"asignar una orden rechazada debe fallar")
	assert.ErrorIs(t, eng.Approve(admin, "o2"), domain.ErrAlreadyDecided)
}

func TestEngine_RechazoSinMotivo(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	assert.ErrorIs(t, eng.Reject(admin, "o1", ""), domain.ErrValidation)
}

func TestEngine_RolesNoAdminNoDeciden(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	assert.ErrorIs(t, eng.Approve(tech, "o1"), domain.ErrForbidden)
	assert.ErrorIs(t, eng.Approve(cliente, "o1"), domain.ErrForbidden,
		"un customer nunca aprueba, sin importar la propiedad")
	assert.ErrorIs(t, eng.Assign(tech, "o1", "tech7"), domain.ErrForbidden)
	assert.ErrorIs(t, eng.Reject(cliente, "o1", "x"), domain.ErrForbidden)
}

func TestEngine_SoloAsignadoCompleta(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	require.NoError(t, eng.Approve(admin, "o1"))
	require.NoError(t, eng.Assign(admin, "o1", "tech7"))

	otro := authz.Actor{ID: "tech9", Type: entity.ActorUser, Role: entity.RoleUser}
	assert.ErrorIs(t, eng.Complete(otro, "o1"), domain.ErrForbidden)
	assert.ErrorIs(t, eng.Complete(cliente, "o1"), domain.ErrForbidden)
	require.NoError(t, eng.Complete(tech, "o1"))
}

func TestEngine_Cancelar(t *testing.T) {
	store := newFakeStore()
	store.put("o1", "tech7", "cust3")
	eng := workflow.NewEngine(store)

	// el cliente dueño cancela mientras sigue pendiente
	require.NoError(t, eng.Cancel(cliente, "o1"))
	snap, _ := store.Snapshot("o1")
	assert.Equal(t, entity.StatusCancelled, snap.Status)

	// ya cancelada: ni el admin puede volver a cancelarla
	assert.ErrorIs(t, eng.Cancel(admin, "o1"), domain.ErrConflict)

	// tras asignar, el cliente ya no puede cancelar; el admin sí
	store.put("o2", "tech7", "cust3")
	require.NoError(t, eng.Approve(admin, "o2"))
	require.NoError(t, eng.Assign(admin, "o2", "tech7"))
	assert.ErrorIs(t, eng.Cancel(cliente, "o2"), domain.ErrForbidden)
	require.NoError(t, eng.Cancel(admin, "o2"))

	// cancelar una orden inexistente
	assert.ErrorIs(t, eng.Cancel(admin, "nope"), domain.ErrNotFound)
}

func TestEngine_OrdenInexistente(t *testing.T) {
	eng := workflow.NewEngine(newFakeStore())
	assert.ErrorIs(t, eng.Approve(admin, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, eng.Complete(tech, "nope"), domain.ErrNotFound)
}
