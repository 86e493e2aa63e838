package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
	"github.com/jhoicas/Pinturas-api/pkg/config"
	"github.com/jhoicas/Pinturas-api/pkg/logger"
)

// EnsureAdmin crea el admin inicial si no existe ningún admin activo.
// Las credenciales default (admin/admin123) son un well-known de primer
// arranque: deben rotarse en producción.
func EnsureAdmin(users repository.UserRepository, cfg config.AuthConfig, log *logger.Logger) error {
	n, err := users.CountAdmins()
	if err != nil {
		return fmt.Errorf("contar admins: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password admin: %w", err)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		FullName:     "Administrador",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		return fmt.Errorf("crear admin inicial: %w", err)
	}
	log.Warn().Str("username", cfg.AdminUsername).
		Msg("Admin inicial creado con credenciales default; cambiar el password")
	return nil
}
