package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

// workflowStore implementa las transiciones del ciclo aprobación/asignación
// para una tabla tipo orden (paint_orders o service_requests). Cada transición
// es un único UPDATE condicional: con cero filas afectadas devuelve false y el
// registro queda intacto, lo que garantiza a lo sumo un ganador bajo
// concurrencia sin bloqueos explícitos.
type workflowStore struct {
	pool *pgxpool.Pool
	// tabla sobre la que operan las transiciones
	table string
	// fragmento SET adicional al completar ($3 es el instante de cierre):
	// completion_date en solicitudes, delivery_date en pedidos
	completionStamp string
}

// Snapshot devuelve el estado de ciclo y propiedad, o (nil, nil) si no existe.
func (w *workflowStore) Snapshot(id string) (*repository.LifecycleSnapshot, error) {
	query := fmt.Sprintf(`
		SELECT status, approval_status, approved_by, approved_at, assigned_to, assigned_at,
			user_id, customer_id
		FROM %s WHERE id = $1`, w.table)
	var s repository.LifecycleSnapshot
	err := w.pool.QueryRow(context.Background(), query, id).Scan(
		&s.Status, &s.ApprovalStatus, &s.ApprovedBy, &s.ApprovedAt,
		&s.AssignedTo, &s.AssignedAt, &s.CreatedBy, &s.CustomerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot %s: %w", w.table, err)
	}
	return &s, nil
}

// Approve marca la aprobación solo si sigue pendiente.
func (w *workflowStore) Approve(id, adminID string, at time.Time) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET approval_status = 'approved', approved_by = $2, approved_at = $3, updated_at = $3
		WHERE id = $1 AND approval_status = 'pending'`, w.table)
	tag, err := w.pool.Exec(context.Background(), query, id, adminID, at)
	if err != nil {
		return false, fmt.Errorf("approve %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Reject rechaza solo si sigue pendiente; el motivo queda en admin_notes y el
// registro pasa a cancelled.
func (w *workflowStore) Reject(id, adminID, reason string, at time.Time) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET approval_status = 'rejected', approved_by = $2, approved_at = $3,
			status = 'cancelled', admin_notes = $4, updated_at = $3
		WHERE id = $1 AND approval_status = 'pending'`, w.table)
	tag, err := w.pool.Exec(context.Background(), query, id, adminID, at, reason)
	if err != nil {
		return false, fmt.Errorf("reject %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Assign asigna un trabajador solo sobre registros aprobados y no terminales.
// Reasignar mientras sigue activo es válido (reemplaza al asignado).
func (w *workflowStore) Assign(id, workerID string, at time.Time) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET assigned_to = $2, assigned_at = $3, status = 'assigned', updated_at = $3
		WHERE id = $1 AND approval_status = 'approved'
			AND status NOT IN ('completed', 'cancelled')`, w.table)
	tag, err := w.pool.Exec(context.Background(), query, id, workerID, at)
	if err != nil {
		return false, fmt.Errorf("assign %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Start pasa a in_progress; solo el asignado.
func (w *workflowStore) Start(id, workerID string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = 'in_progress', updated_at = now()
		WHERE id = $1 AND status = 'assigned' AND assigned_to = $2`, w.table)
	tag, err := w.pool.Exec(context.Background(), query, id, workerID)
	if err != nil {
		return false, fmt.Errorf("start %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Complete cierra el trabajo; solo el asignado, desde assigned o in_progress.
func (w *workflowStore) Complete(id, workerID string, at time.Time) (bool, error) {
	set := `status = 'completed', updated_at = $3`
	if w.completionStamp != "" {
		set += `, ` + w.completionStamp
	}
	query := fmt.Sprintf(`
		UPDATE %s SET %s
		WHERE id = $1 AND status IN ('assigned', 'in_progress') AND assigned_to = $2`, w.table, set)
	tag, err := w.pool.Exec(context.Background(), query, id, workerID, at)
	if err != nil {
		return false, fmt.Errorf("complete %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Cancel cancela cualquier registro no terminal.
func (w *workflowStore) Cancel(id string) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status NOT IN ('completed', 'cancelled')`, w.table)
	tag, err := w.pool.Exec(context.Background(), query, id)
	if err != nil {
		return false, fmt.Errorf("cancel %s: %w", w.table, err)
	}
	return tag.RowsAffected() > 0, nil
}
