package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. Username/Password
// opcionales: si vienen ambos, el cliente obtiene acceso al portal.
type CreateCustomerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	Notes          string `json:"notes"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	AssignedUserID string `json:"assigned_user_id"`
}

// UpdateCustomerRequest entrada de actualización; campos vacíos no se tocan.
type UpdateCustomerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Company        string `json:"company"`
	Notes          string `json:"notes"`
	Status         string `json:"status"`
	AssignedUserID string `json:"assigned_user_id"`
}

// CustomerResponse salida de un cliente (sin password).
type CustomerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Company        string    `json:"company"`
	Notes          string    `json:"notes"`
	HasPortal      bool      `json:"has_portal_access"`
	Status         string    `json:"status"`
	AssignedUserID *string   `json:"assigned_user_id"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateInteractionRequest registra un contacto con el cliente.
type CreateInteractionRequest struct {
	InteractionType string     `json:"interaction_type"`
	Description     string     `json:"description"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
}

// InteractionResponse salida de una interacción.
type InteractionResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	UserID          string     `json:"user_id"`
	InteractionType string     `json:"interaction_type"`
	Description     string     `json:"description"`
	InteractionDate time.Time  `json:"interaction_date"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Status          string     `json:"status"`
}
