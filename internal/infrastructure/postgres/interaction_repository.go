package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

// InteractionRepo implementación del puerto InteractionRepository sobre PostgreSQL.
type InteractionRepo struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository construye el adaptador del historial de contactos.
func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepo {
	return &InteractionRepo{pool: pool}
}

// Create persiste una interacción. El historial es append-only.
func (r *InteractionRepo) Create(interaction *entity.Interaction) error {
	query := `
		INSERT INTO customer_interactions (id, customer_id, user_id, interaction_type,
			description, interaction_date, follow_up_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		interaction.ID, interaction.CustomerID, interaction.UserID, interaction.InteractionType,
		interaction.Description, interaction.InteractionDate, interaction.FollowUpDate,
		interaction.Status, interaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// ListByCustomer devuelve el historial del cliente, más reciente primero.
func (r *InteractionRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.Interaction, error) {
	query := `
		SELECT id, customer_id, user_id, interaction_type, description,
			interaction_date, follow_up_date, status, created_at
		FROM customer_interactions WHERE customer_id = $1
		ORDER BY interaction_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Interaction
	for rows.Next() {
		var i entity.Interaction
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.UserID, &i.InteractionType, &i.Description,
			&i.InteractionDate, &i.FollowUpDate, &i.Status, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
