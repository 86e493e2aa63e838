package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Pinturas-api/internal/application/authz"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/domain"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// CustomerUseCase gestión de clientes y su historial de interacciones.
type CustomerUseCase struct {
	customers    repository.CustomerRepository
	interactions repository.InteractionRepository
}

// NewCustomerUseCase construye el caso de uso de clientes.
func NewCustomerUseCase(customers repository.CustomerRepository, interactions repository.InteractionRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, interactions: interactions}
}

// Create registra un cliente. Solo usuarios internos crean clientes; el
// creador queda como created_by. Username+password opcionales dan acceso al
// portal (ErrDuplicateIdentity si el username ya existe).
func (uc *CustomerUseCase) Create(actor authz.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if actor.Type != entity.ActorUser {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrValidation
	}
	// acceso al portal: ambos o ninguno
	if (in.Username == "") != (in.Password == "") {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Company:   in.Company,
		Notes:     in.Notes,
		Status:    "active",
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.AssignedUserID != "" {
		customer.AssignedUserID = &in.AssignedUserID
	}
	if in.Username != "" {
		if len(in.Password) < 8 {
			return nil, domain.ErrValidation
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		username := in.Username
		hashStr := string(hash)
		customer.Username = &username
		customer.PasswordHash = &hashStr
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente aplicando la regla de propiedad del guard.
func (uc *CustomerUseCase) GetByID(actor authz.Actor, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpView, customerOwnership(customer)) {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes ya filtrados por el scope del rol (admin ve todo).
func (uc *CustomerUseCase) List(actor authz.Actor, limit, offset int) ([]*dto.CustomerResponse, error) {
	customers, err := uc.customers.List(authz.ScopeFor(actor), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update modifica datos de contacto; campos vacíos se conservan.
func (uc *CustomerUseCase) Update(actor authz.Actor, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpUpdate, customerOwnership(customer)) {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Email != "" {
		customer.Email = in.Email
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Address != "" {
		customer.Address = in.Address
	}
	if in.Company != "" {
		customer.Company = in.Company
	}
	if in.Notes != "" {
		customer.Notes = in.Notes
	}
	if in.Status != "" {
		if in.Status != "active" && in.Status != "inactive" {
			return nil, domain.ErrValidation
		}
		customer.Status = in.Status
	}
	// reasignación de cartera: solo admin
	if in.AssignedUserID != "" {
		if actor.Role != entity.RoleAdmin {
			return nil, domain.ErrForbidden
		}
		assigned := in.AssignedUserID
		customer.AssignedUserID = &assigned
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// AddInteraction registra un contacto con el cliente (llamada, visita, email).
func (uc *CustomerUseCase) AddInteraction(actor authz.Actor, customerID string, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	if actor.Type != entity.ActorUser {
		return nil, domain.ErrForbidden
	}
	if in.InteractionType == "" {
		return nil, domain.ErrValidation
	}
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpUpdate, customerOwnership(customer)) {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	interaction := &entity.Interaction{
		ID:              uuid.New().String(),
		CustomerID:      customerID,
		UserID:          actor.ID,
		InteractionType: in.InteractionType,
		Description:     in.Description,
		InteractionDate: now,
		FollowUpDate:    in.FollowUpDate,
		Status:          "completed",
		CreatedAt:       now,
	}
	if err := uc.interactions.Create(interaction); err != nil {
		return nil, err
	}
	return toInteractionResponse(interaction), nil
}

// ListInteractions devuelve el historial de contactos del cliente.
func (uc *CustomerUseCase) ListInteractions(actor authz.Actor, customerID string, limit, offset int) ([]*dto.InteractionResponse, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !authz.Allow(actor, authz.OpView, customerOwnership(customer)) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.interactions.ListByCustomer(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InteractionResponse, 0, len(list))
	for _, i := range list {
		out = append(out, toInteractionResponse(i))
	}
	return out, nil
}

// customerOwnership traduce el cliente a la propiedad que evalúa el guard.
// El propio cliente es dueño de su registro (CustomerID = su id).
func customerOwnership(c *entity.Customer) authz.Ownership {
	own := authz.Ownership{CreatedBy: c.CreatedBy, CustomerID: c.ID}
	if c.AssignedUserID != nil {
		own.AssignedTo = *c.AssignedUserID
	}
	return own
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		Company:        c.Company,
		Notes:          c.Notes,
		HasPortal:      c.HasPortalAccess(),
		Status:         c.Status,
		AssignedUserID: c.AssignedUserID,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toInteractionResponse(i *entity.Interaction) *dto.InteractionResponse {
	return &dto.InteractionResponse{
		ID:              i.ID,
		CustomerID:      i.CustomerID,
		UserID:          i.UserID,
		InteractionType: i.InteractionType,
		Description:     i.Description,
		InteractionDate: i.InteractionDate,
		FollowUpDate:    i.FollowUpDate,
		Status:          i.Status,
	}
}
