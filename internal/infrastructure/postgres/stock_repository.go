package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	q querier
}

// NewStockRepository construye el adaptador de persistencia para stock.
func NewStockRepository(q querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un artículo de stock y asigna el ID generado por la BD.
// Serial duplicado -> domain.ErrDuplicate; location_id colgante -> domain.ErrForeignKey.
func (r *StockRepo) Create(item *entity.Stock) error {
	query := `
		INSERT INTO stock (serial, mfg, dimen, type, modifier, location_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Serial, item.Mfg, item.Dimen, item.Type, item.Modifier, item.LocationID,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetBySerial obtiene un artículo por serial. (nil, nil) si no existe.
func (r *StockRepo) GetBySerial(serial string) (*entity.Stock, error) {
	query := `
		SELECT id, serial, mfg, dimen, type, modifier, location_id
		FROM stock WHERE serial = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, serial).Scan(
		&s.ID, &s.Serial, &s.Mfg, &s.Dimen, &s.Type, &s.Modifier, &s.LocationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by serial: %w", err)
	}
	return &s, nil
}

// ListAll lista todo el stock por id ascendente. La resolución de la Location
// asociada no se hace aquí: el caso de uso resuelve en lote contra
// LocationRepository para evitar una consulta por fila.
func (r *StockRepo) ListAll() ([]*entity.Stock, error) {
	query := `
		SELECT id, serial, mfg, dimen, type, modifier, location_id
		FROM stock ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Serial, &s.Mfg, &s.Dimen, &s.Type, &s.Modifier, &s.LocationID); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
