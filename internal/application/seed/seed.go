// Package seed deja el almacén con una línea base conocida en cada arranque:
// dos ubicaciones de referencia, el usuario inicial y dos artículos de stock.
// Cada registro se siembra por su clave natural dentro de su propia
// transacción (lookup + insert), así la inicialización es idempotente para
// cualquier número de invocaciones.
package seed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// Datos de referencia. El password del usuario inicial es de desarrollo.
const (
	initialUsername = "max"
	initialPassword = "a"
)

// Seeder siembra la línea base usando el TxRunner del almacén.
type Seeder struct {
	tx  inventory.TxRunner
	log *logger.Logger
}

// New construye el seeder.
func New(tx inventory.TxRunner, log *logger.Logger) *Seeder {
	return &Seeder{tx: tx, log: log}
}

// Run siembra la línea base. Una violación de unicidad en el commit (carrera
// entre dos inicializaciones) se registra y se continúa con el siguiente
// registro; nunca aborta el proceso. Cualquier otro fallo del almacén sí se
// propaga.
func (s *Seeder) Run(ctx context.Context) error {
	tpaID, err := s.ensureLocation(ctx, "TPA", "GAR", "A")
	if err != nil {
		return err
	}
	clwID, err := s.ensureLocation(ctx, "CLW", "CON", "B")
	if err != nil {
		return err
	}

	if err := s.ensureUser(ctx, initialUsername, initialPassword); err != nil {
		return err
	}

	if err := s.ensureStock(ctx, entity.Stock{
		Serial: "1137", Mfg: "sbp", Dimen: "25x50", Type: "win", Modifier: "1",
		LocationID: &tpaID,
	}); err != nil {
		return err
	}
	if err := s.ensureStock(ctx, entity.Stock{
		Serial: "1138", Mfg: "pgt", Dimen: "10x10", Type: "win", Modifier: "1",
		LocationID: &clwID,
	}); err != nil {
		return err
	}
	return nil
}

// ensureLocation busca por office e inserta si falta, en una sola tx.
// Devuelve el id existente o el recién asignado. Si otra inicialización ganó
// la carrera, la segunda pasada encuentra la fila y devuelve su id.
func (s *Seeder) ensureLocation(ctx context.Context, office, zone, bay string) (int64, error) {
	var id int64
	run := func() error {
		return s.tx.Run(ctx, func(
			_ repository.UserRepository,
			locations repository.LocationRepository,
			_ repository.StockRepository,
			_ repository.NoteRepository,
		) error {
			existing, err := locations.GetByOffice(office)
			if err != nil {
				return err
			}
			if existing != nil {
				id = existing.ID
				return nil
			}
			loc := &entity.Location{Office: office, Zone: zone, Bay: bay}
			if err := locations.Create(loc); err != nil {
				return err
			}
			id = loc.ID
			s.log.Info().Str("location", loc.Code()).Int64("id", id).Msg("ubicación de referencia creada")
			return nil
		})
	}

	err := run()
	if errors.Is(err, domain.ErrDuplicate) {
		s.log.Warn().Str("office", office).Msg("ubicación ya sembrada por otra inicialización")
		err = run()
	}
	if err != nil {
		return 0, fmt.Errorf("seed location %s: %w", office, err)
	}
	return id, nil
}

// ensureUser siembra el usuario inicial con hash bcrypt generado al momento.
func (s *Seeder) ensureUser(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password inicial: %w", err)
	}
	err = s.tx.Run(ctx, func(
		users repository.UserRepository,
		_ repository.LocationRepository,
		_ repository.StockRepository,
		_ repository.NoteRepository,
	) error {
		existing, err := users.GetByUsername(username)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		if err := users.Create(&entity.User{Username: username, PasswordHash: string(hash)}); err != nil {
			return err
		}
		s.log.Info().Str("username", username).Msg("usuario inicial creado")
		return nil
	})
	if errors.Is(err, domain.ErrDuplicate) {
		s.log.Warn().Str("username", username).Msg("usuario ya sembrado por otra inicialización")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed user %s: %w", username, err)
	}
	return nil
}

// ensureStock siembra un artículo de referencia por su serial.
func (s *Seeder) ensureStock(ctx context.Context, item entity.Stock) error {
	err := s.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LocationRepository,
		stock repository.StockRepository,
		_ repository.NoteRepository,
	) error {
		existing, err := stock.GetBySerial(item.Serial)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}
		if err := stock.Create(&item); err != nil {
			return err
		}
		s.log.Info().Str("serial", item.Serial).Msg("stock de referencia creado")
		return nil
	})
	if errors.Is(err, domain.ErrDuplicate) {
		s.log.Warn().Str("serial", item.Serial).Msg("stock ya sembrado por otra inicialización")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed stock %s: %w", item.Serial, err)
	}
	return nil
}
