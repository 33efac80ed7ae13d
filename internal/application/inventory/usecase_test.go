package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
	"github.com/invorya/stockroom-api/pkg/logger"
)

func newInventoryUseCase(t *testing.T) (*inventory.InventoryUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := inventory.NewInventoryUseCase(store, store.Users(), store.Locations(), store.Stock(), logger.Nop())
	return uc, store
}

func TestAddStock_SerialVacio_NoTocaAlmacen(t *testing.T) {
	uc, store := newInventoryUseCase(t)

	err := uc.AddStock(context.Background(), dto.AddStockRequest{Serial: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	items, err := store.Stock().ListAll()
	require.NoError(t, err)
	assert.Empty(t, items, "la validación debe cortar antes del almacén")
}

func TestAddStock_SerialDuplicado_SinDuplicarNiFallar(t *testing.T) {
	uc, store := newInventoryUseCase(t)
	require.NoError(t, store.Stock().Create(&entity.Stock{Serial: "1137", Mfg: "sbp"}))

	// El duplicado se descarta y se loguea; el flujo termina normal.
	err := uc.AddStock(context.Background(), dto.AddStockRequest{Serial: "1137", Mfg: "otro"})
	require.NoError(t, err)

	items, err := store.Stock().ListAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "sbp", items[0].Mfg, "la fila original debe quedar intacta")
}

func TestAddStock_UbicacionInexistente_SinEfecto(t *testing.T) {
	uc, store := newInventoryUseCase(t)

	missing := int64(99)
	err := uc.AddStock(context.Background(), dto.AddStockRequest{Serial: "2000", LocationID: &missing})
	require.NoError(t, err)

	items, err := store.Stock().ListAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddStock_SinUbicacion(t *testing.T) {
	uc, store := newInventoryUseCase(t)

	require.NoError(t, uc.AddStock(context.Background(), dto.AddStockRequest{Serial: "3000"}))

	item, err := store.Stock().GetBySerial("3000")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Nil(t, item.LocationID)
}

// Un artículo creado con location_id existente debe listar con los campos
// office/zone/bay de esa ubicación resueltos.
func TestListInventory_ResuelveUbicacion(t *testing.T) {
	uc, store := newInventoryUseCase(t)

	loc := &entity.Location{Office: "TPA", Zone: "GAR", Bay: "A"}
	require.NoError(t, store.Locations().Create(loc))
	require.NoError(t, uc.AddStock(context.Background(), dto.AddStockRequest{
		Serial: "9999", LocationID: &loc.ID,
	}))

	out, err := uc.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Stock, 1)
	require.NotNil(t, out.Stock[0].Location)
	assert.Equal(t, "TPA", out.Stock[0].Location.Office)
	assert.Equal(t, "GAR", out.Stock[0].Location.Zone)
	assert.Equal(t, "A", out.Stock[0].Location.Bay)
	require.Len(t, out.Locations, 1)
}

func TestListInventory_StockSinUbicacion(t *testing.T) {
	uc, _ := newInventoryUseCase(t)
	require.NoError(t, uc.AddStock(context.Background(), dto.AddStockRequest{Serial: "4000"}))

	out, err := uc.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Stock, 1)
	assert.Nil(t, out.Stock[0].Location)
}
