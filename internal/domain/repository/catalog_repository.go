package repository

import "github.com/jhoicas/Pinturas-api/internal/domain/entity"

// PaintTypeRepository define el puerto de persistencia para el catálogo de pinturas.
type PaintTypeRepository interface {
	Create(pt *entity.PaintType) error
	GetByID(id string) (*entity.PaintType, error)
	Update(pt *entity.PaintType) error
	List(limit, offset int) ([]*entity.PaintType, error)
	// Deactivate marca status=inactive (borrado lógico).
	Deactivate(id string) error
}

// MachineRepository define el puerto de persistencia para el catálogo de máquinas.
type MachineRepository interface {
	Create(m *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	Update(m *entity.Machine) error
	List(limit, offset int) ([]*entity.Machine, error)
	Delete(id string) error
}
