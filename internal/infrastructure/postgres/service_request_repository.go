package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

var _ repository.ServiceRequestRepository = (*ServiceRequestRepo)(nil)

// ServiceRequestRepo implementación del puerto ServiceRequestRepository sobre
// PostgreSQL. Mismo workflowStore que los pedidos, con completion_date.
type ServiceRequestRepo struct {
	workflowStore
}

// NewServiceRequestRepository construye el adaptador de persistencia de solicitudes.
func NewServiceRequestRepository(pool *pgxpool.Pool) *ServiceRequestRepo {
	return &ServiceRequestRepo{workflowStore: workflowStore{
		pool: pool, table: "service_requests",
		completionStamp: `completion_date = $3`,
	}}
}

const serviceRequestColumns = `id, customer_id, user_id, service_type, description, priority,
	status, approval_status, approved_by, approved_at, assigned_to, assigned_at,
	request_date, scheduled_date, completion_date, technician_notes, admin_notes, created_at, updated_at`

// Create persiste una nueva solicitud.
func (r *ServiceRequestRepo) Create(request *entity.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (` + serviceRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.pool.Exec(context.Background(), query,
		request.ID, request.CustomerID, request.UserID, request.ServiceType, request.Description,
		request.Priority, request.Status, request.ApprovalStatus, request.ApprovedBy, request.ApprovedAt,
		request.AssignedTo, request.AssignedAt, request.RequestDate, request.ScheduledDate,
		request.CompletionDate, request.TechnicianNotes, request.AdminNotes,
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID, o (nil, nil) si no existe.
func (r *ServiceRequestRepo) GetByID(id string) (*entity.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests WHERE id = $1`
	var s entity.ServiceRequest
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.UserID, &s.ServiceType, &s.Description, &s.Priority,
		&s.Status, &s.ApprovalStatus, &s.ApprovedBy, &s.ApprovedAt, &s.AssignedTo, &s.AssignedAt,
		&s.RequestDate, &s.ScheduledDate, &s.CompletionDate, &s.TechnicianNotes, &s.AdminNotes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service request: %w", err)
	}
	return &s, nil
}

// Update solo toca campos de negocio; el ciclo se mueve por las transiciones.
func (r *ServiceRequestRepo) Update(request *entity.ServiceRequest) error {
	query := `
		UPDATE service_requests SET priority = $2, scheduled_date = $3,
			technician_notes = $4, admin_notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		request.ID, request.Priority, request.ScheduledDate,
		request.TechnicianNotes, request.AdminNotes, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service request: %w", err)
	}
	return nil
}

// List lista solicitudes aplicando el scope de propiedad en SQL.
func (r *ServiceRequestRepo) List(scope repository.Scope, limit, offset int) ([]*entity.ServiceRequest, error) {
	query := `SELECT ` + serviceRequestColumns + ` FROM service_requests`
	args := []any{}
	switch {
	case scope.CustomerID != "":
		query += ` WHERE customer_id = $1`
		args = append(args, scope.CustomerID)
	case scope.UserID != "":
		query += ` WHERE user_id = $1 OR assigned_to = $1`
		args = append(args, scope.UserID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceRequest
	for rows.Next() {
		var s entity.ServiceRequest
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.UserID, &s.ServiceType, &s.Description, &s.Priority,
			&s.Status, &s.ApprovalStatus, &s.ApprovedBy, &s.ApprovedAt, &s.AssignedTo, &s.AssignedAt,
			&s.RequestDate, &s.ScheduledDate, &s.CompletionDate, &s.TechnicianNotes, &s.AdminNotes,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
