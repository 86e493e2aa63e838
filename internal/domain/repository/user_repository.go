package repository

import "github.com/jhoicas/Pinturas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// Deactivate marca is_active=false; los usuarios nunca se borran físicamente.
	Deactivate(id string) error
	CountAdmins() (int, error)
}
