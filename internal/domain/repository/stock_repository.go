package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para Stock (DIP).
// Create devuelve domain.ErrDuplicate si el serial ya existe y
// domain.ErrForeignKey si location_id no referencia una Location real.
type StockRepository interface {
	Create(item *entity.Stock) error
	// GetBySerial busca por la clave natural. (nil, nil) si no existe.
	GetBySerial(serial string) (*entity.Stock, error)
	ListAll() ([]*entity.Stock, error)
}
