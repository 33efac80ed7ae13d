package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	// GetByOffice busca por la clave natural del seed. (nil, nil) si no existe.
	GetByOffice(office string) (*entity.Location, error)
	ListAll() ([]*entity.Location, error)
}
