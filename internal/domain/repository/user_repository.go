package repository

import "github.com/dcastano/inventario-taller/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsuario(usuario string) (*entity.User, error)
	// Count devuelve el total de usuarios; el seeding es no-op si ya hay alguno.
	Count() (int, error)
}
