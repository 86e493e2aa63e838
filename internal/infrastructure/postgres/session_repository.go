package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
// La tabla solo guarda el hash del token, nunca el texto plano.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create persiste una nueva sesión.
func (r *SessionRepo) Create(session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, actor_id, actor_type, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		session.ID, session.ActorID, session.ActorType, session.TokenHash,
		session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// FindByTokenHash devuelve la sesión viva con ese hash, o (nil, nil).
// La expiración se evalúa contra el instante recibido, no contra el reloj de la DB.
func (r *SessionRepo) FindByTokenHash(tokenHash string, now time.Time) (*entity.Session, error) {
	query := `
		SELECT id, actor_id, actor_type, token_hash, expires_at, created_at
		FROM sessions WHERE token_hash = $1 AND expires_at > $2`
	var s entity.Session
	err := r.pool.QueryRow(context.Background(), query, tokenHash, now).Scan(
		&s.ID, &s.ActorID, &s.ActorType, &s.TokenHash, &s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// DeleteByTokenHash revoca una sesión. Idempotente: 0 filas no es error.
func (r *SessionRepo) DeleteByTokenHash(tokenHash string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByActor revoca todas las sesiones de un actor (logout global).
func (r *SessionRepo) DeleteByActor(actorID, actorType string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM sessions WHERE actor_id = $1 AND actor_type = $2`, actorID, actorType)
	if err != nil {
		return fmt.Errorf("delete sessions by actor: %w", err)
	}
	return nil
}

// DeleteExpired limpia sesiones vencidas y devuelve cuántas borró.
func (r *SessionRepo) DeleteExpired(now time.Time) (int64, error) {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
