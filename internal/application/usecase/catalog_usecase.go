package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// CatalogUseCase catálogos de pinturas y máquinas. Lectura para cualquier
// actor autenticado; escritura solo admin.
type CatalogUseCase struct {
	paintTypes repository.PaintTypeRepository
	machines   repository.MachineRepository
}

// NewCatalogUseCase construye el caso de uso de catálogos.
func NewCatalogUseCase(paintTypes repository.PaintTypeRepository, machines repository.MachineRepository) *CatalogUseCase {
	return &CatalogUseCase{paintTypes: paintTypes, machines: machines}
}

// ─── Pinturas ────────────────────────────────────────────────────────────────

// CreatePaintType registra una referencia del catálogo (solo admin).
func (uc *CatalogUseCase) CreatePaintType(actor authz.Actor, in dto.CreatePaintTypeRequest) (*dto.PaintTypeResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Brand == "" || in.Type == "" || in.Price.IsNegative() || in.StockQuantity < 0 {
		return nil, domain.ErrValidation
	}
	unit := in.Unit
	if unit == "" {
		unit = "litre"
	}
	now := time.Now()
	pt := &entity.PaintType{
		ID:            uuid.New().String(),
		Brand:         in.Brand,
		Type:          in.Type,
		Color:         in.Color,
		Unit:          unit,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Description:   in.Description,
		Status:        entity.CatalogActive,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.paintTypes.Create(pt); err != nil {
		return nil, err
	}
	return toPaintTypeResponse(pt), nil
}

// GetPaintType obtiene una referencia por id.
func (uc *CatalogUseCase) GetPaintType(id string) (*dto.PaintTypeResponse, error) {
	pt, err := uc.paintTypes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.ErrNotFound
	}
	return toPaintTypeResponse(pt), nil
}

// ListPaintTypes lista el catálogo con paginación.
func (uc *CatalogUseCase) ListPaintTypes(limit, offset int) ([]*dto.PaintTypeResponse, error) {
	list, err := uc.paintTypes.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaintTypeResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, toPaintTypeResponse(pt))
	}
	return out, nil
}

// UpdatePaintType actualización parcial, incluido el stock (solo admin).
func (uc *CatalogUseCase) UpdatePaintType(actor authz.Actor, id string, in dto.UpdatePaintTypeRequest) (*dto.PaintTypeResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	pt, err := uc.paintTypes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Color != "" {
		pt.Color = in.Color
	}
	if in.Unit != "" {
		pt.Unit = in.Unit
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrValidation
		}
		pt.Price = *in.Price
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrValidation
		}
		pt.StockQuantity = *in.StockQuantity
	}
	if in.Description != "" {
		pt.Description = in.Description
	}
	if in.Status != "" {
		if in.Status != entity.CatalogActive && in.Status != entity.CatalogInactive {
			return nil, domain.ErrValidation
		}
		pt.Status = in.Status
	}
	pt.UpdatedAt = time.Now()
	if err := uc.paintTypes.Update(pt); err != nil {
		return nil, err
	}
	return toPaintTypeResponse(pt), nil
}

// DeactivatePaintType baja lógica de la referencia (solo admin).
func (uc *CatalogUseCase) DeactivatePaintType(actor authz.Actor, id string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	pt, err := uc.paintTypes.GetByID(id)
	if err != nil {
		return err
	}
	if pt == nil {
		return domain.ErrNotFound
	}
	return uc.paintTypes.Deactivate(id)
}

// ─── Máquinas ────────────────────────────────────────────────────────────────

// CreateMachine registra una máquina del catálogo de venta (solo admin).
func (uc *CatalogUseCase) CreateMachine(actor authz.Actor, in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.MachineName == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	m := &entity.Machine{
		ID:             uuid.New().String(),
		MachineType:    in.MachineType,
		MachineName:    in.MachineName,
		Brand:          in.Brand,
		Model:          in.Model,
		Category:       in.Category,
		Price:          in.Price,
		Status:         entity.MachineAvailable,
		ProductionYear: in.ProductionYear,
		Condition:      in.Condition,
		Description:    in.Description,
		Images:         in.Images,
		CreatedBy:      actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.machines.Create(m); err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// GetMachine obtiene una máquina por id.
func (uc *CatalogUseCase) GetMachine(id string) (*dto.MachineResponse, error) {
	m, err := uc.machines.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMachineResponse(m), nil
}

// ListMachines lista el catálogo con paginación.
func (uc *CatalogUseCase) ListMachines(limit, offset int) ([]*dto.MachineResponse, error) {
	list, err := uc.machines.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMachineResponse(m))
	}
	return out, nil
}

// UpdateMachine actualización parcial; Status permite marcarla vendida (solo admin).
func (uc *CatalogUseCase) UpdateMachine(actor authz.Actor, id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	m, err := uc.machines.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.MachineName != "" {
		m.MachineName = in.MachineName
	}
	if in.Model != "" {
		m.Model = in.Model
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrValidation
		}
		m.Price = *in.Price
	}
	if in.Status != "" {
		if in.Status != entity.MachineAvailable && in.Status != entity.MachineSold {
			return nil, domain.ErrValidation
		}
		m.Status = in.Status
	}
	if in.Condition != "" {
		m.Condition = in.Condition
	}
	if in.Description != "" {
		m.Description = in.Description
	}
	if len(in.Images) > 0 {
		m.Images = in.Images
	}
	m.UpdatedAt = time.Now()
	if err := uc.machines.Update(m); err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// DeleteMachine elimina la máquina del catálogo (solo admin).
func (uc *CatalogUseCase) DeleteMachine(actor authz.Actor, id string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	m, err := uc.machines.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.machines.Delete(id)
}

func toPaintTypeResponse(pt *entity.PaintType) *dto.PaintTypeResponse {
	return &dto.PaintTypeResponse{
		ID:            pt.ID,
		Brand:         pt.Brand,
		Type:          pt.Type,
		Color:         pt.Color,
		Unit:          pt.Unit,
		Price:         pt.Price,
		StockQuantity: pt.StockQuantity,
		Description:   pt.Description,
		Status:        pt.Status,
		CreatedAt:     pt.CreatedAt,
		UpdatedAt:     pt.UpdatedAt,
	}
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	return &dto.MachineResponse{
		ID:             m.ID,
		MachineType:    m.MachineType,
		MachineName:    m.MachineName,
		Brand:          m.Brand,
		Model:          m.Model,
		Category:       m.Category,
		Price:          m.Price,
		Status:         m.Status,
		ProductionYear: m.ProductionYear,
		Condition:      m.Condition,
		Description:    m.Description,
		Images:         m.Images,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
