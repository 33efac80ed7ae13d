package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create asigna el ID en el entity al insertar; devuelve domain.ErrDuplicate
// si el username ya existe.
type UserRepository interface {
	Create(user *entity.User) error
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(username string) (*entity.User, error)
	ListAll() ([]*entity.User, error)
}
