// Package authz implementa el guard de autorización: una función de decisión
// sin estado sobre (rol, operación, propiedad del recurso). La tabla de reglas:
//
//	admin    → aprueba, asigna y ve todo.
//	user     → solo registros donde assigned_to o created_by es él.
//	customer → solo sus propios registros (customer_id).
//
// Todo lo que no esté en la tabla se niega.
package authz

import (
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// RoleCustomer es el rol virtual de los clientes del portal; no existe en la
// tabla users, lo lleva el token de sesión.
const RoleCustomer = "customer"

// Actor es la identidad resuelta de una sesión válida.
type Actor struct {
	ID   string
	Type string // entity.ActorUser | entity.ActorCustomer
	Role string // admin | user | customer
}

// Operation identifica una operación guardada.
type Operation string

const (
	OpApprove  Operation = "approve"
	OpReject   Operation = "reject"
	OpAssign   Operation = "assign"
	OpStart    Operation = "start"
	OpComplete Operation = "complete"
	OpCancel   Operation = "cancel"
	OpView     Operation = "view"
	OpUpdate   Operation = "update"
	OpCreate   Operation = "create"
)

// Ownership describe la propiedad del recurso evaluado.
type Ownership struct {
	CreatedBy  string
	AssignedTo string
	CustomerID string
}

// Allow decide si el actor puede ejecutar la operación sobre un recurso con
// esa propiedad. Sin efectos secundarios; el caso de uso traduce false a
// domain.ErrForbidden.
func Allow(actor Actor, op Operation, own Ownership) bool {
	switch actor.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleUser:
		switch op {
		case OpApprove, OpReject, OpAssign:
			return false
		default:
			return own.AssignedTo == actor.ID || own.CreatedBy == actor.ID
		}
	case RoleCustomer:
		switch op {
		case OpApprove, OpReject, OpAssign, OpStart, OpComplete:
			return false
		default:
			return own.CustomerID == actor.ID
		}
	}
	return false
}

// CanCancel aplica la regla especial de cancelación: admin siempre; el creador
// o el cliente dueño solo mientras la orden siga en pending_approval.
func CanCancel(actor Actor, own Ownership, status string) bool {
	if actor.Role == entity.RoleAdmin {
		return true
	}
	if !Allow(actor, OpCancel, own) {
		return false
	}
	return status == entity.StatusPendingApproval
}

// ScopeFor construye el filtro de propiedad que los listados aplican en SQL.
func ScopeFor(actor Actor) repository.Scope {
	switch actor.Role {
	case entity.RoleAdmin:
		return repository.Scope{}
	case RoleCustomer:
		return repository.Scope{CustomerID: actor.ID}
	default:
		return repository.Scope{UserID: actor.ID}
	}
}
