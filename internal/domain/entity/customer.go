package entity

import "time"

// Customer representa un cliente del negocio. Puede opcionalmente tener acceso
// al portal (Username/PasswordHash no nulos); si no, es solo un contacto.
type Customer struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	Address        string
	Company        string
	Notes          string
	Username       *string // nulo = sin acceso al portal
	PasswordHash   *string
	Status         string // active, inactive
	AssignedUserID *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPortalAccess indica si el cliente puede iniciar sesión en el portal.
func (c *Customer) HasPortalAccess() bool {
	return c.Username != nil && c.PasswordHash != nil
}
