package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/application/workflow"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// PaintOrderUseCase pedidos de pintura: alta, consulta y transiciones del
// ciclo aprobación/asignación (delegadas al motor de workflow).
type PaintOrderUseCase struct {
	orders    repository.PaintOrderRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
	engine    *workflow.Engine
}

// NewPaintOrderUseCase construye el caso de uso; el motor opera sobre el
// mismo repositorio de pedidos.
func NewPaintOrderUseCase(orders repository.PaintOrderRepository, customers repository.CustomerRepository, users repository.UserRepository) *PaintOrderUseCase {
	return &PaintOrderUseCase{
		orders:    orders,
		customers: customers,
		users:     users,
		engine:    workflow.NewEngine(orders),
	}
}

// Create registra un pedido en el estado inicial (pending/pending_approval).
// Un cliente del portal solo crea pedidos propios; un usuario, para clientes
// de su cartera.
func (uc *PaintOrderUseCase) Create(actor authz.Actor, in dto.CreatePaintOrderRequest) (*dto.PaintOrderResponse, error) {
	if in.PaintType == "" || !in.Quantity.IsPositive() {
		return nil, domain.ErrValidation
	}
	customerID := in.CustomerID
	if actor.Type == entity.ActorCustomer {
		customerID = actor.ID // se fuerza el propio, se ignora lo que venga
	}
	if customerID == "" {
		return nil, domain.ErrValidation
	}
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpCreate, customerOwnership(customer)) {
		return nil, domain.ErrForbidden
	}
	// user_id referencia siempre a un usuario interno; para pedidos del
	// portal se usa el responsable del cliente.
	userID := actor.ID
	if actor.Type == entity.ActorCustomer {
		userID = customer.CreatedBy
		if customer.AssignedUserID != nil {
			userID = *customer.AssignedUserID
		}
	}
	unit := in.Unit
	if unit == "" {
		unit = "kg"
	}
	now := time.Now()
	order := &entity.PaintOrder{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		UserID:     userID,
		PaintBrand: in.PaintBrand,
		PaintType:  in.PaintType,
		PaintColor: in.PaintColor,
		Quantity:   in.Quantity,
		Unit:       unit,
		Lifecycle: entity.Lifecycle{
			Status:         entity.StatusPendingApproval,
			ApprovalStatus: entity.ApprovalPending,
		},
		OrderDate:    now,
		DeliveryDate: in.DeliveryDate,
		PaymentType:  in.PaymentType,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toPaintOrderResponse(order), nil
}

// GetByID obtiene un pedido aplicando la regla de propiedad.
func (uc *PaintOrderUseCase) GetByID(actor authz.Actor, id string) (*dto.PaintOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpView, orderOwnership(order.UserID, order.CustomerID, order.AssignedTo)) {
		return nil, domain.ErrForbidden
	}
	return toPaintOrderResponse(order), nil
}

// List lista pedidos filtrados por el scope del rol.
func (uc *PaintOrderUseCase) List(actor authz.Actor, limit, offset int) ([]*dto.PaintOrderResponse, error) {
	orders, err := uc.orders.List(authz.ScopeFor(actor), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaintOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toPaintOrderResponse(o))
	}
	return out, nil
}

// Update modifica campos de negocio; el ciclo solo se mueve por transiciones.
// AdminNotes es exclusivo del admin.
func (uc *PaintOrderUseCase) Update(actor authz.Actor, id string, in dto.UpdatePaintOrderRequest) (*dto.PaintOrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpUpdate, orderOwnership(order.UserID, order.CustomerID, order.AssignedTo)) {
		return nil, domain.ErrForbidden
	}
	if in.AdminNotes != "" && actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.PaintBrand != "" {
		order.PaintBrand = in.PaintBrand
	}
	if in.PaintColor != "" {
		order.PaintColor = in.PaintColor
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = in.DeliveryDate
	}
	if in.PaymentType != "" {
		order.PaymentType = in.PaymentType
	}
	if in.Notes != "" {
		order.Notes = in.Notes
	}
	if in.AdminNotes != "" {
		order.AdminNotes = in.AdminNotes
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(order); err != nil {
		return nil, err
	}
	return toPaintOrderResponse(order), nil
}

// Approve/Reject/Assign/Start/Complete/Cancel delegan en el motor de workflow.

func (uc *PaintOrderUseCase) Approve(actor authz.Actor, id string) error {
	return uc.engine.Approve(actor, id)
}

func (uc *PaintOrderUseCase) Reject(actor authz.Actor, id, reason string) error {
	return uc.engine.Reject(actor, id, reason)
}

// Assign verifica además que el asignado sea un usuario interno activo.
func (uc *PaintOrderUseCase) Assign(actor authz.Actor, id, workerID string) error {
	if err := uc.checkAssignee(workerID); err != nil {
		return err
	}
	return uc.engine.Assign(actor, id, workerID)
}

func (uc *PaintOrderUseCase) Start(actor authz.Actor, id string) error {
	return uc.engine.Start(actor, id)
}

func (uc *PaintOrderUseCase) Complete(actor authz.Actor, id string) error {
	return uc.engine.Complete(actor, id)
}

func (uc *PaintOrderUseCase) Cancel(actor authz.Actor, id string) error {
	return uc.engine.Cancel(actor, id)
}

func (uc *PaintOrderUseCase) checkAssignee(workerID string) error {
	if workerID == "" {
		return domain.ErrValidation
	}
	worker, err := uc.users.GetByID(workerID)
	if err != nil {
		return err
	}
	if worker == nil || !worker.IsActive {
		return domain.ErrValidation
	}
	return nil
}

// orderOwnership traduce un registro tipo orden a la propiedad del guard.
func orderOwnership(createdBy, customerID string, assignedTo *string) authz.Ownership {
	own := authz.Ownership{CreatedBy: createdBy, CustomerID: customerID}
	if assignedTo != nil {
		own.AssignedTo = *assignedTo
	}
	return own
}

func toPaintOrderResponse(o *entity.PaintOrder) *dto.PaintOrderResponse {
	return &dto.PaintOrderResponse{
		ID:             o.ID,
		CustomerID:     o.CustomerID,
		UserID:         o.UserID,
		PaintBrand:     o.PaintBrand,
		PaintType:      o.PaintType,
		PaintColor:     o.PaintColor,
		Quantity:       o.Quantity,
		Unit:           o.Unit,
		Status:         o.Status,
		ApprovalStatus: o.ApprovalStatus,
		ApprovedBy:     o.ApprovedBy,
		ApprovedAt:     o.ApprovedAt,
		AssignedTo:     o.AssignedTo,
		AssignedAt:     o.AssignedAt,
		OrderDate:      o.OrderDate,
		DeliveryDate:   o.DeliveryDate,
		PaymentType:    o.PaymentType,
		Notes:          o.Notes,
		AdminNotes:     o.AdminNotes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}
