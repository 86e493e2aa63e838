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

var _ repository.PaintTypeRepository = (*PaintTypeRepo)(nil)

// PaintTypeRepo implementación del puerto PaintTypeRepository sobre PostgreSQL.
type PaintTypeRepo struct {
	pool *pgxpool.Pool
}

// NewPaintTypeRepository construye el adaptador del catálogo de pinturas.
func NewPaintTypeRepository(pool *pgxpool.Pool) *PaintTypeRepo {
	return &PaintTypeRepo{pool: pool}
}

const paintTypeColumns = `id, brand, type, color, unit, price, stock_quantity, description,
	status, created_by, created_at, updated_at`

// Create persiste una referencia del catálogo.
func (r *PaintTypeRepo) Create(pt *entity.PaintType) error {
	query := `
		INSERT INTO paint_types (` + paintTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		pt.ID, pt.Brand, pt.Type, pt.Color, pt.Unit, pt.Price, pt.StockQuantity,
		pt.Description, pt.Status, pt.CreatedBy, pt.CreatedAt, pt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paint type: %w", err)
	}
	return nil
}

// GetByID obtiene una referencia por ID, o (nil, nil) si no existe.
func (r *PaintTypeRepo) GetByID(id string) (*entity.PaintType, error) {
	query := `SELECT ` + paintTypeColumns + ` FROM paint_types WHERE id = $1`
	var pt entity.PaintType
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&pt.ID, &pt.Brand, &pt.Type, &pt.Color, &pt.Unit, &pt.Price, &pt.StockQuantity,
		&pt.Description, &pt.Status, &pt.CreatedBy, &pt.CreatedAt, &pt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paint type: %w", err)
	}
	return &pt, nil
}

// Update actualiza una referencia del catálogo.
func (r *PaintTypeRepo) Update(pt *entity.PaintType) error {
	query := `
		UPDATE paint_types SET color = $2, unit = $3, price = $4, stock_quantity = $5,
			description = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		pt.ID, pt.Color, pt.Unit, pt.Price, pt.StockQuantity,
		pt.Description, pt.Status, pt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paint type: %w", err)
	}
	return nil
}

// List lista el catálogo con paginación.
func (r *PaintTypeRepo) List(limit, offset int) ([]*entity.PaintType, error) {
	query := `SELECT ` + paintTypeColumns + ` FROM paint_types ORDER BY brand, type LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list paint types: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaintType
	for rows.Next() {
		var pt entity.PaintType
		if err := rows.Scan(&pt.ID, &pt.Brand, &pt.Type, &pt.Color, &pt.Unit, &pt.Price,
			&pt.StockQuantity, &pt.Description, &pt.Status, &pt.CreatedBy,
			&pt.CreatedAt, &pt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan paint type: %w", err)
		}
		list = append(list, &pt)
	}
	return list, rows.Err()
}

// Deactivate marca status=inactive (borrado lógico).
func (r *PaintTypeRepo) Deactivate(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE paint_types SET status = 'inactive', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate paint type: %w", err)
	}
	return nil
}
