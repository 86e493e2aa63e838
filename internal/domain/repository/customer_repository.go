package repository

import "github.com/jhoicas/Pinturas-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// GetByUsername busca un cliente con acceso al portal.
	GetByUsername(username string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(scope Scope, limit, offset int) ([]*entity.Customer, error)
}

// InteractionRepository persiste el historial de contactos con clientes.
type InteractionRepository interface {
	Create(interaction *entity.Interaction) error
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Interaction, error)
}
