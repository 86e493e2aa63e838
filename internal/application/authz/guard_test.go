package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
)

var (
	admin    = authz.Actor{ID: "admin1", Type: entity.ActorUser, Role: entity.RoleAdmin}
	tecnico  = authz.Actor{ID: "tech7", Type: entity.ActorUser, Role: entity.RoleUser}
	cliente  = authz.Actor{ID: "cust3", Type: entity.ActorCustomer, Role: authz.RoleCustomer}
	ajeno    = authz.Ownership{CreatedBy: "otro", AssignedTo: "otro", CustomerID: "otro"}
	deTech   = authz.Ownership{CreatedBy: "tech7", CustomerID: "cust3"}
	paraTech = authz.Ownership{CreatedBy: "otro", AssignedTo: "tech7", CustomerID: "cust3"}
)

func TestAllow_AdminTodo(t *testing.T) {
	for _, op := range []authz.Operation{
		authz.OpApprove, authz.OpReject, authz.OpAssign, authz.OpComplete,
		authz.OpCancel, authz.OpView, authz.OpUpdate, authz.OpCreate,
	} {
		assert.True(t, authz.Allow(admin, op, ajeno), "admin debe poder %s sobre cualquier recurso", op)
	}
}

func TestAllow_UserNuncaApruebaNiAsigna(t *testing.T) {
	for _, op := range []authz.Operation{authz.OpApprove, authz.OpReject, authz.OpAssign} {
		assert.False(t, authz.Allow(tecnico, op, deTech),
			"user no puede %s ni siquiera sobre sus propios registros", op)
	}
}

func TestAllow_UserSoloPropiosOAsignados(t *testing.T) {
	assert.True(t, authz.Allow(tecnico, authz.OpView, deTech), "creador ve su registro")
	assert.True(t, authz.Allow(tecnico, authz.OpView, paraTech), "asignado ve su registro")
	assert.True(t, authz.Allow(tecnico, authz.OpComplete, paraTech))
	assert.False(t, authz.Allow(tecnico, authz.OpView, ajeno))
	assert.False(t, authz.Allow(tecnico, authz.OpUpdate, ajeno))
}

func TestAllow_CustomerSoloLoSuyo(t *testing.T) {
	propio := authz.Ownership{CustomerID: "cust3"}
	assert.True(t, authz.Allow(cliente, authz.OpView, propio))
	assert.True(t, authz.Allow(cliente, authz.OpCreate, propio))
	assert.False(t, authz.Allow(cliente, authz.OpView, ajeno))

	// independiente de la propiedad, un customer jamás aprueba
	assert.False(t, authz.Allow(cliente, authz.OpApprove, propio))
	assert.False(t, authz.Allow(cliente, authz.OpComplete, propio))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, authz.CanCancel(admin, ajeno, entity.StatusInProgress),
		"admin cancela en cualquier estado no terminal")

	propio := authz.Ownership{CustomerID: "cust3"}
	assert.True(t, authz.CanCancel(cliente, propio, entity.StatusPendingApproval))
	assert.False(t, authz.CanCancel(cliente, propio, entity.StatusAssigned),
		"el cliente solo cancela mientras la orden no fue aprobada/asignada")
	assert.False(t, authz.CanCancel(cliente, ajeno, entity.StatusPendingApproval))

	assert.True(t, authz.CanCancel(tecnico, deTech, entity.StatusPendingApproval))
	assert.False(t, authz.CanCancel(tecnico, deTech, entity.StatusInProgress))
}

func TestScopeFor(t *testing.T) {
	assert.True(t, authz.ScopeFor(admin).IsAll())

	s := authz.ScopeFor(tecnico)
	assert.Equal(t, "tech7", s.UserID)
	assert.Empty(t, s.CustomerID)

	s = authz.ScopeFor(cliente)
	assert.Equal(t, "cust3", s.CustomerID)
	assert.Empty(t, s.UserID)
}
