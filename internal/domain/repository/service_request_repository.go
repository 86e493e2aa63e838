package repository

import "github.com/jhoicas/Pinturas-api/internal/domain/entity"

// ServiceRequestRepository define el puerto de persistencia para solicitudes
// de servicio. Mismo ciclo de transiciones que los pedidos de pintura.
type ServiceRequestRepository interface {
	WorkflowRepository
	Create(request *entity.ServiceRequest) error
	GetByID(id string) (*entity.ServiceRequest, error)
	Update(request *entity.ServiceRequest) error
	List(scope Scope, limit, offset int) ([]*entity.ServiceRequest, error)
}
