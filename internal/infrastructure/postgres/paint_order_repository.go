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

var _ repository.PaintOrderRepository = (*PaintOrderRepo)(nil)

// PaintOrderRepo implementación del puerto PaintOrderRepository sobre
// PostgreSQL. Las transiciones del ciclo vienen del workflowStore embebido.
type PaintOrderRepo struct {
	workflowStore
}

// NewPaintOrderRepository construye el adaptador de persistencia de pedidos.
func NewPaintOrderRepository(pool *pgxpool.Pool) *PaintOrderRepo {
	return &PaintOrderRepo{workflowStore: workflowStore{
		pool: pool, table: "paint_orders",
		// al completar se sella la fecha de entrega si aún no había una pactada
		completionStamp: `delivery_date = COALESCE(delivery_date, $3)`,
	}}
}

const paintOrderColumns = `id, customer_id, user_id, paint_brand, paint_type, paint_color,
	quantity, unit, status, approval_status, approved_by, approved_at, assigned_to, assigned_at,
	order_date, delivery_date, payment_type, notes, admin_notes, created_at, updated_at`

// Create persiste un nuevo pedido.
func (r *PaintOrderRepo) Create(order *entity.PaintOrder) error {
	query := `
		INSERT INTO paint_orders (` + paintOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.UserID, order.PaintBrand, order.PaintType, order.PaintColor,
		order.Quantity, order.Unit, order.Status, order.ApprovalStatus, order.ApprovedBy, order.ApprovedAt,
		order.AssignedTo, order.AssignedAt, order.OrderDate, order.DeliveryDate, order.PaymentType,
		order.Notes, order.AdminNotes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paint order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID, o (nil, nil) si no existe.
func (r *PaintOrderRepo) GetByID(id string) (*entity.PaintOrder, error) {
	query := `SELECT ` + paintOrderColumns + ` FROM paint_orders WHERE id = $1`
	var o entity.PaintOrder
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.UserID, &o.PaintBrand, &o.PaintType, &o.PaintColor,
		&o.Quantity, &o.Unit, &o.Status, &o.ApprovalStatus, &o.ApprovedBy, &o.ApprovedAt,
		&o.AssignedTo, &o.AssignedAt, &o.OrderDate, &o.DeliveryDate, &o.PaymentType,
		&o.Notes, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paint order: %w", err)
	}
	return &o, nil
}

// Update solo toca campos de negocio; el ciclo se mueve por las transiciones.
func (r *PaintOrderRepo) Update(order *entity.PaintOrder) error {
	query := `
		UPDATE paint_orders SET paint_brand = $2, paint_color = $3, delivery_date = $4,
			payment_type = $5, notes = $6, admin_notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		order.ID, order.PaintBrand, order.PaintColor, order.DeliveryDate,
		order.PaymentType, order.Notes, order.AdminNotes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paint order: %w", err)
	}
	return nil
}

// List lista pedidos aplicando el scope de propiedad en SQL.
func (r *PaintOrderRepo) List(scope repository.Scope, limit, offset int) ([]*entity.PaintOrder, error) {
	query := `SELECT ` + paintOrderColumns + ` FROM paint_orders`
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
		return nil, fmt.Errorf("list paint orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaintOrder
	for rows.Next() {
		var o entity.PaintOrder
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.UserID, &o.PaintBrand, &o.PaintType, &o.PaintColor,
			&o.Quantity, &o.Unit, &o.Status, &o.ApprovalStatus, &o.ApprovedBy, &o.ApprovedAt,
			&o.AssignedTo, &o.AssignedAt, &o.OrderDate, &o.DeliveryDate, &o.PaymentType,
			&o.Notes, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan paint order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
