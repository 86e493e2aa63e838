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

// ServiceRequestUseCase solicitudes de servicio técnico; mismo ciclo de
// aprobación/asignación que los pedidos de pintura.
type ServiceRequestUseCase struct {
	requests  repository.ServiceRequestRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
	engine    *workflow.Engine
}

// NewServiceRequestUseCase construye el caso de uso de solicitudes.
func NewServiceRequestUseCase(requests repository.ServiceRequestRepository, customers repository.CustomerRepository, users repository.UserRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requests:  requests,
		customers: customers,
		users:     users,
		engine:    workflow.NewEngine(requests),
	}
}

// Create registra una solicitud en estado inicial (pending/pending_approval).
func (uc *ServiceRequestUseCase) Create(actor authz.Actor, in dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	if in.ServiceType == "" || in.Description == "" {
		return nil, domain.ErrValidation
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if priority != entity.PriorityLow && priority != entity.PriorityMedium && priority != entity.PriorityHigh {
		return nil, domain.ErrValidation
	}
	customerID := in.CustomerID
	if actor.Type == entity.ActorCustomer {
		customerID = actor.ID
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
	userID := actor.ID
	if actor.Type == entity.ActorCustomer {
		userID = customer.CreatedBy
		if customer.AssignedUserID != nil {
			userID = *customer.AssignedUserID
		}
	}
	now := time.Now()
	req := &entity.ServiceRequest{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		UserID:      userID,
		ServiceType: in.ServiceType,
		Description: in.Description,
		Priority:    priority,
		Lifecycle: entity.Lifecycle{
			Status:         entity.StatusPendingApproval,
			ApprovalStatus: entity.ApprovalPending,
		},
		RequestDate:   now,
		ScheduledDate: in.ScheduledDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.requests.Create(req); err != nil {
		return nil, err
	}
	return toServiceRequestResponse(req), nil
}

// GetByID obtiene una solicitud aplicando la regla de propiedad.
func (uc *ServiceRequestUseCase) GetByID(actor authz.Actor, id string) (*dto.ServiceRequestResponse, error) {
	req, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpView, orderOwnership(req.UserID, req.CustomerID, req.AssignedTo)) {
		return nil, domain.ErrForbidden
	}
	return toServiceRequestResponse(req), nil
}

// List lista solicitudes filtradas por el scope del rol.
func (uc *ServiceRequestUseCase) List(actor authz.Actor, limit, offset int) ([]*dto.ServiceRequestResponse, error) {
	reqs, err := uc.requests.List(authz.ScopeFor(actor), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toServiceRequestResponse(r))
	}
	return out, nil
}

// Update modifica campos de negocio. TechnicianNotes lo escribe quien tenga
// acceso de actualización; AdminNotes solo el admin.
func (uc *ServiceRequestUseCase) Update(actor authz.Actor, id string, in dto.UpdateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	req, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpUpdate, orderOwnership(req.UserID, req.CustomerID, req.AssignedTo)) {
		return nil, domain.ErrForbidden
	}
	if in.AdminNotes != "" && actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Priority != "" {
		if in.Priority != entity.PriorityLow && in.Priority != entity.PriorityMedium && in.Priority != entity.PriorityHigh {
			return nil, domain.ErrValidation
		}
		req.Priority = in.Priority
	}
	if in.ScheduledDate != nil {
		req.ScheduledDate = in.ScheduledDate
	}
	if in.TechnicianNotes != "" {
		req.TechnicianNotes = in.TechnicianNotes
	}
	if in.AdminNotes != "" {
		req.AdminNotes = in.AdminNotes
	}
	req.UpdatedAt = time.Now()
	if err := uc.requests.Update(req); err != nil {
		return nil, err
	}
	return toServiceRequestResponse(req), nil
}

func (uc *ServiceRequestUseCase) Approve(actor authz.Actor, id string) error {
	return uc.engine.Approve(actor, id)
}

func (uc *ServiceRequestUseCase) Reject(actor authz.Actor, id, reason string) error {
	return uc.engine.Reject(actor, id, reason)
}

// Assign verifica además que el asignado sea un usuario interno activo.
func (uc *ServiceRequestUseCase) Assign(actor authz.Actor, id, workerID string) error {
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
	return uc.engine.Assign(actor, id, workerID)
}

func (uc *ServiceRequestUseCase) Start(actor authz.Actor, id string) error {
	return uc.engine.Start(actor, id)
}

func (uc *ServiceRequestUseCase) Complete(actor authz.Actor, id string) error {
	return uc.engine.Complete(actor, id)
}

func (uc *ServiceRequestUseCase) Cancel(actor authz.Actor, id string) error {
	return uc.engine.Cancel(actor, id)
}

func toServiceRequestResponse(r *entity.ServiceRequest) *dto.ServiceRequestResponse {
	return &dto.ServiceRequestResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		UserID:          r.UserID,
		ServiceType:     r.ServiceType,
		Description:     r.Description,
		Priority:        r.Priority,
		Status:          r.Status,
		ApprovalStatus:  r.ApprovalStatus,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		AssignedTo:      r.AssignedTo,
		AssignedAt:      r.AssignedAt,
		RequestDate:     r.RequestDate,
		ScheduledDate:   r.ScheduledDate,
		CompletionDate:  r.CompletionDate,
		TechnicianNotes: r.TechnicianNotes,
		AdminNotes:      r.AdminNotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
