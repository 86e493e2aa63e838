package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrders struct {
	mu   sync.Mutex
	byID map[string]*entity.PaintOrder
}

func newFakeOrders() *fakeOrders { return &fakeOrders{byID: map[string]*entity.PaintOrder{}} }

func (f *fakeOrders) Create(o *entity.PaintOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrders) GetByID(id string) (*entity.PaintOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) Update(o *entity.PaintOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cur, ok := f.byID[o.ID]; ok {
		cp := *o
		cp.Lifecycle = cur.Lifecycle
		f.byID[o.ID] = &cp
	}
	return nil
}

func (f *fakeOrders) List(scope repository.Scope, limit, offset int) ([]*entity.PaintOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.PaintOrder
	for _, o := range f.byID {
		switch {
		case scope.CustomerID != "" && o.CustomerID != scope.CustomerID:
			continue
		case scope.UserID != "" && o.UserID != scope.UserID &&
			(o.AssignedTo == nil || *o.AssignedTo != scope.UserID):
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// Transiciones con la misma semántica condicional que el UPDATE en SQL.

func (f *fakeOrders) Snapshot(id string) (*repository.LifecycleSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &repository.LifecycleSnapshot{Lifecycle: o.Lifecycle, CreatedBy: o.UserID, CustomerID: o.CustomerID}, nil
}

func (f *fakeOrders) Approve(id, adminID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.ApprovalStatus != entity.ApprovalPending {
		return false, nil
	}
	o.ApprovalStatus = entity.ApprovalApproved
	o.ApprovedBy, o.ApprovedAt = &adminID, &at
	return true, nil
}

func (f *fakeOrders) Reject(id, adminID, reason string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.ApprovalStatus != entity.ApprovalPending {
		return false, nil
	}
	o.ApprovalStatus = entity.ApprovalRejected
	o.ApprovedBy, o.ApprovedAt = &adminID, &at
	o.Status = entity.StatusCancelled
	o.AdminNotes = reason
	return true, nil
}

func (f *fakeOrders) Assign(id, workerID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.ApprovalStatus != entity.ApprovalApproved ||
		o.Status == entity.StatusCompleted || o.Status == entity.StatusCancelled {
		return false, nil
	}
	o.AssignedTo, o.AssignedAt = &workerID, &at
	o.Status = entity.StatusAssigned
	return true, nil
}

func (f *fakeOrders) Start(id, workerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.Status != entity.StatusAssigned || o.AssignedTo == nil || *o.AssignedTo != workerID {
		return false, nil
	}
	o.Status = entity.StatusInProgress
	return true, nil
}

func (f *fakeOrders) Complete(id, workerID string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || (o.Status != entity.StatusAssigned && o.Status != entity.StatusInProgress) ||
		o.AssignedTo == nil || *o.AssignedTo != workerID {
		return false, nil
	}
	o.Status = entity.StatusCompleted
	return true, nil
}

func (f *fakeOrders) Cancel(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok || o.Status == entity.StatusCompleted || o.Status == entity.StatusCancelled {
		return false, nil
	}
	o.Status = entity.StatusCancelled
	return true, nil
}

type fakeCustomerStore struct{ byID map[string]*entity.Customer }

func (f *fakeCustomerStore) Create(c *entity.Customer) error { f.byID[c.ID] = c; return nil }
func (f *fakeCustomerStore) GetByID(id string) (*entity.Customer, error) {
	return f.byID[id], nil
}
func (f *fakeCustomerStore) GetByUsername(string) (*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerStore) Update(*entity.Customer) error                  { return nil }
func (f *fakeCustomerStore) List(repository.Scope, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeUserStore struct{ byID map[string]*entity.User }

func (f *fakeUserStore) Create(u *entity.User) error { f.byID[u.ID] = u; return nil }
func (f *fakeUserStore) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserStore) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserStore) Update(*entity.User) error                  { return nil }
func (f *fakeUserStore) List(_, _ int) ([]*entity.User, error)      { return nil, nil }
func (f *fakeUserStore) Deactivate(string) error                    { return nil }
func (f *fakeUserStore) CountAdmins() (int, error)                  { return 1, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var (
	actorAdmin    = authz.Actor{ID: "u-admin", Type: entity.ActorUser, Role: entity.RoleAdmin}
	actorTec      = authz.Actor{ID: "u-tec", Type: entity.ActorUser, Role: entity.RoleUser}
	actorOtroTec  = authz.Actor{ID: "u-otro", Type: entity.ActorUser, Role: entity.RoleUser}
	actorCliente  = authz.Actor{ID: "c1", Type: entity.ActorCustomer, Role: authz.RoleCustomer}
	actorCliente2 = authz.Actor{ID: "c2", Type: entity.ActorCustomer, Role: authz.RoleCustomer}
)

func buildOrderUC(t *testing.T) (*usecase.PaintOrderUseCase, *fakeOrders) {
	t.Helper()
	tecID := "u-tec"
	customers := &fakeCustomerStore{byID: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Cliente Uno", Status: "active", CreatedBy: "u-tec", AssignedUserID: &tecID},
		"c2": {ID: "c2", Name: "Cliente Dos", Status: "active", CreatedBy: "u-otro"},
	}}
	users := &fakeUserStore{byID: map[string]*entity.User{
		"u-admin": {ID: "u-admin", Role: entity.RoleAdmin, IsActive: true},
		"u-tec":   {ID: "u-tec", Role: entity.RoleUser, IsActive: true},
		"u-baja":  {ID: "u-baja", Role: entity.RoleUser, IsActive: false},
	}}
	orders := newFakeOrders()
	return usecase.NewPaintOrderUseCase(orders, customers, users), orders
}

func createOrder(t *testing.T, uc *usecase.PaintOrderUseCase, actor authz.Actor, customerID string) *dto.PaintOrderResponse {
	t.Helper()
	out, err := uc.Create(actor, dto.CreatePaintOrderRequest{
		CustomerID: customerID,
		PaintType:  "esmalte",
		Quantity:   decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EstadoInicial(t *testing.T) {
	uc, _ := buildOrderUC(t)
	out := createOrder(t, uc, actorTec, "c1")

	assert.Equal(t, entity.StatusPendingApproval, out.Status)
	assert.Equal(t, entity.ApprovalPending, out.ApprovalStatus)
	assert.Nil(t, out.AssignedTo)
	assert.Equal(t, "u-tec", out.UserID)
	assert.Equal(t, "kg", out.Unit, "unidad por defecto")
}

func TestCreate_ClienteSoloParaSiMismo(t *testing.T) {
	uc, _ := buildOrderUC(t)

	// el customer_id del cuerpo se ignora: siempre queda el propio
	out, err := uc.Create(actorCliente, dto.CreatePaintOrderRequest{
		CustomerID: "c2",
		PaintType:  "esmalte",
		Quantity:   decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CustomerID)
	assert.Equal(t, "u-tec", out.UserID, "el pedido del portal referencia al responsable del cliente")
}

func TestCreate_TecnicoSoloSuCartera(t *testing.T) {
	uc, _ := buildOrderUC(t)
	_, err := uc.Create(actorTec, dto.CreatePaintOrderRequest{
		CustomerID: "c2", // cliente de otro técnico
		PaintType:  "esmalte",
		Quantity:   decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := buildOrderUC(t)

	_, err := uc.Create(actorAdmin, dto.CreatePaintOrderRequest{CustomerID: "c1", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrValidation, "paint_type requerido")

	_, err = uc.Create(actorAdmin, dto.CreatePaintOrderRequest{CustomerID: "c1", PaintType: "esmalte"})
	assert.ErrorIs(t, err, domain.ErrValidation, "cantidad debe ser positiva")

	_, err = uc.Create(actorAdmin, dto.CreatePaintOrderRequest{CustomerID: "nadie", PaintType: "esmalte", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cliente inexistente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura con propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_PropiedadPorRol(t *testing.T) {
	uc, _ := buildOrderUC(t)
	out := createOrder(t, uc, actorTec, "c1")

	_, err := uc.GetByID(actorAdmin, out.ID)
	assert.NoError(t, err, "admin ve todo")

	_, err = uc.GetByID(actorCliente, out.ID)
	assert.NoError(t, err, "el cliente dueño ve su pedido")

	_, err = uc.GetByID(actorCliente2, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro cliente no")

	_, err = uc.GetByID(actorOtroTec, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro técnico no")
}

func TestList_FiltraPorScope(t *testing.T) {
	uc, _ := buildOrderUC(t)
	createOrder(t, uc, actorTec, "c1")
	createOrder(t, uc, actorAdmin, "c2")

	all, err := uc.List(actorAdmin, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := uc.List(actorCliente, 50, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "c1", mine[0].CustomerID)

	tec, err := uc.List(actorTec, 50, 0)
	require.NoError(t, err)
	assert.Len(t, tec, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones vía use case
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_ValidaAsignado(t *testing.T) {
	uc, _ := buildOrderUC(t)
	out := createOrder(t, uc, actorTec, "c1")
	require.NoError(t, uc.Approve(actorAdmin, out.ID))

	err := uc.Assign(actorAdmin, out.ID, "u-fantasma")
	assert.ErrorIs(t, err, domain.ErrValidation, "el asignado debe existir")

	err = uc.Assign(actorAdmin, out.ID, "u-baja")
	assert.ErrorIs(t, err, domain.ErrValidation, "el asignado debe estar activo")

	assert.NoError(t, uc.Assign(actorAdmin, out.ID, "u-tec"))
}

func TestCicloCompleto(t *testing.T) {
	uc, orders := buildOrderUC(t)
	out := createOrder(t, uc, actorCliente, "c1")

	require.NoError(t, uc.Approve(actorAdmin, out.ID))
	require.NoError(t, uc.Assign(actorAdmin, out.ID, "u-tec"))
	require.NoError(t, uc.Start(actorTec, out.ID))
	require.NoError(t, uc.Complete(actorTec, out.ID))

	final, err := orders.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, final.Status)

	// terminal: ni cancelar ni reasignar
	assert.ErrorIs(t, uc.Cancel(actorAdmin, out.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.Assign(actorAdmin, out.ID, "u-tec"), domain.ErrConflict)
}

func TestUpdate_AdminNotesSoloAdmin(t *testing.T) {
	uc, _ := buildOrderUC(t)
	out := createOrder(t, uc, actorTec, "c1")

	_, err := uc.Update(actorTec, out.ID, dto.UpdatePaintOrderRequest{AdminNotes: "nota interna"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := uc.Update(actorAdmin, out.ID, dto.UpdatePaintOrderRequest{AdminNotes: "nota interna"})
	require.NoError(t, err)
	assert.Equal(t, "nota interna", updated.AdminNotes)
}
