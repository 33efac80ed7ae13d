package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El rollback diferido garantiza que la conexión vuelve al
// pool en todo camino de salida.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	locations repository.LocationRepository,
	stock repository.StockRepository,
	notes repository.NoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	locationRepo := NewLocationRepository(tx)
	stockRepo := NewStockRepository(tx)
	noteRepo := NewNoteRepository(tx)

	if err := fn(userRepo, locationRepo, stockRepo, noteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		// Constraints diferidos pueden fallar recién en el commit.
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
