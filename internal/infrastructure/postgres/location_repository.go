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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación y asigna el ID generado por la BD.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (office, zone, bay)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.Office, location.Zone, location.Bay,
	).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByOffice obtiene una ubicación por su código de oficina. (nil, nil) si no existe.
func (r *LocationRepo) GetByOffice(office string) (*entity.Location, error) {
	query := `
		SELECT id, office, zone, bay
		FROM locations WHERE office = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, office).Scan(
		&l.ID, &l.Office, &l.Zone, &l.Bay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location by office: %w", err)
	}
	return &l, nil
}

// ListAll lista todas las ubicaciones por id ascendente.
func (r *LocationRepo) ListAll() ([]*entity.Location, error) {
	query := `
		SELECT id, office, zone, bay
		FROM locations ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Office, &l.Zone, &l.Bay); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
