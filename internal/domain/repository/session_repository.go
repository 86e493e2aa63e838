package repository

import (
	"time"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia para sesiones.
// Solo se almacena el hash del token, nunca el texto plano.
type SessionRepository interface {
	Create(session *entity.Session) error
	// FindByTokenHash devuelve la sesión no expirada con ese hash, o (nil, nil).
	FindByTokenHash(tokenHash string, now time.Time) (*entity.Session, error)
	// DeleteByTokenHash revoca una sesión; idempotente (0 filas no es error).
	DeleteByTokenHash(tokenHash string) error
	// DeleteByActor revoca todas las sesiones de un actor (logout global).
	DeleteByActor(actorID, actorType string) error
	// DeleteExpired limpia sesiones vencidas; higiene, no corrección.
	DeleteExpired(now time.Time) (int64, error)
}
