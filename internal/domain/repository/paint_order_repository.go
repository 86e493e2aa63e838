package repository

import "github.com/jhoicas/Pinturas-api/internal/domain/entity"

// PaintOrderRepository define el puerto de persistencia para pedidos de
// pintura. Las transiciones del ciclo vienen del puerto compartido.
type PaintOrderRepository interface {
	WorkflowRepository
	Create(order *entity.PaintOrder) error
	GetByID(id string) (*entity.PaintOrder, error)
	// Update solo toca campos de negocio (notas, fechas), nunca el ciclo.
	Update(order *entity.PaintOrder) error
	List(scope Scope, limit, offset int) ([]*entity.PaintOrder, error)
}
