package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// InventoryUseCase casos de uso de inventario: alta de stock y listado con
// ubicaciones resueltas.
type InventoryUseCase struct {
	tx           TxRunner
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	stockRepo    repository.StockRepository
	log          *logger.Logger
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(
	tx TxRunner,
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
	stockRepo repository.StockRepository,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		tx:           tx,
		userRepo:     userRepo,
		locationRepo: locationRepo,
		stockRepo:    stockRepo,
		log:          log,
	}
}

// AddStock da de alta un artículo dentro de una transacción. Un serial en
// blanco es domain.ErrInvalidInput y no toca el almacén. Un serial duplicado o
// un location_id colgante hacen rollback completo, se registran en el log y
// devuelven nil: el visitante observa el flujo normal (comportamiento heredado
// del sistema, ver DESIGN.md).
func (uc *InventoryUseCase) AddStock(ctx context.Context, in dto.AddStockRequest) error {
	serial := strings.TrimSpace(in.Serial)
	if serial == "" {
		return domain.ErrInvalidInput
	}

	item := &entity.Stock{
		Serial:     serial,
		Mfg:        in.Mfg,
		Dimen:      in.Dimen,
		Type:       in.Type,
		Modifier:   in.Modifier,
		LocationID: in.LocationID,
	}
	err := uc.tx.Run(ctx, func(
		_ repository.UserRepository,
		_ repository.LocationRepository,
		stock repository.StockRepository,
		_ repository.NoteRepository,
	) error {
		return stock.Create(item)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		uc.log.Warn().Str("serial", serial).Msg("stock no insertado: serial ya existente")
		return nil
	}
	if errors.Is(err, domain.ErrForeignKey) {
		uc.log.Warn().Str("serial", serial).Msg("stock no insertado: location_id no existe")
		return nil
	}
	return err
}

// ListInventory devuelve usuarios, stock y ubicaciones para la vista
// autenticada. La Location de cada artículo se resuelve con un join en lote:
// una sola lectura de ubicaciones y lookup por mapa, sin consulta por fila.
func (uc *InventoryUseCase) ListInventory(ctx context.Context) (*dto.InventoryResponse, error) {
	users, err := uc.userRepo.ListAll()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items, err := uc.stockRepo.ListAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*dto.LocationResponse, len(locations))
	locOut := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		lr := dto.LocationResponse{ID: l.ID, Office: l.Office, Zone: l.Zone, Bay: l.Bay}
		locOut = append(locOut, lr)
		cp := lr
		byID[l.ID] = &cp
	}

	userOut := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		userOut = append(userOut, dto.UserResponse{ID: u.ID, Username: u.Username})
	}

	stockOut := make([]dto.StockResponse, 0, len(items))
	for _, s := range items {
		sr := dto.StockResponse{
			ID:       s.ID,
			Serial:   s.Serial,
			Mfg:      s.Mfg,
			Dimen:    s.Dimen,
			Type:     s.Type,
			Modifier: s.Modifier,
		}
		if s.LocationID != nil {
			sr.Location = byID[*s.LocationID]
		}
		stockOut = append(stockOut, sr)
	}

	return &dto.InventoryResponse{
		Users:     userOut,
		Stock:     stockOut,
		Locations: locOut,
	}, nil
}
