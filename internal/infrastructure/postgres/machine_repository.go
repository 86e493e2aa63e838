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

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo implementación del puerto MachineRepository sobre PostgreSQL.
type MachineRepo struct {
	pool *pgxpool.Pool
}

// NewMachineRepository construye el adaptador del catálogo de máquinas.
func NewMachineRepository(pool *pgxpool.Pool) *MachineRepo {
	return &MachineRepo{pool: pool}
}

const machineColumns = `id, machine_type, machine_name, brand, model, category, price, status,
	production_year, condition, description, images, created_by, created_at, updated_at`

// Create persiste una máquina del catálogo.
func (r *MachineRepo) Create(m *entity.Machine) error {
	query := `
		INSERT INTO machines (` + machineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	images := m.Images
	if len(images) == 0 {
		images = []byte(`[]`)
	}
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.MachineType, m.MachineName, m.Brand, m.Model, m.Category, m.Price, m.Status,
		m.ProductionYear, m.Condition, m.Description, images, m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID obtiene una máquina por ID, o (nil, nil) si no existe.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.MachineType, &m.MachineName, &m.Brand, &m.Model, &m.Category, &m.Price, &m.Status,
		&m.ProductionYear, &m.Condition, &m.Description, &m.Images, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

// Update actualiza una máquina del catálogo.
func (r *MachineRepo) Update(m *entity.Machine) error {
	query := `
		UPDATE machines SET machine_name = $2, model = $3, price = $4, status = $5,
			condition = $6, description = $7, images = $8, updated_at = $9
		WHERE id = $1`
	images := m.Images
	if len(images) == 0 {
		images = []byte(`[]`)
	}
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.MachineName, m.Model, m.Price, m.Status,
		m.Condition, m.Description, images, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

// List lista el catálogo con paginación.
func (r *MachineRepo) List(limit, offset int) ([]*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.MachineType, &m.MachineName, &m.Brand, &m.Model, &m.Category,
			&m.Price, &m.Status, &m.ProductionYear, &m.Condition, &m.Description, &m.Images,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una máquina por ID.
func (r *MachineRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}
