package inventory

import (
	"context"

	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa tx. Es la unidad de trabajo por petición: la
// conexión se adquiere al entrar y se libera en todo camino de salida
// (commit en éxito, rollback en cualquier error).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		locations repository.LocationRepository,
		stock repository.StockRepository,
		notes repository.NoteRepository,
	) error) error
}
