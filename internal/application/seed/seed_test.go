package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockroom-api/internal/application/seed"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
	"github.com/invorya/stockroom-api/pkg/logger"
)

// Sembrar N veces debe dejar el mismo estado final que sembrar una vez:
// una ubicación por oficina, un usuario max y un artículo por serial.
func TestSeed_Idempotente(t *testing.T) {
	store := memory.NewStore()
	s := seed.New(store, logger.Nop())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Run(context.Background()))
	}

	locations, err := store.Locations().ListAll()
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "TPA", locations[0].Office)
	assert.Equal(t, "GAR", locations[0].Zone)
	assert.Equal(t, "A", locations[0].Bay)
	assert.Equal(t, "CLW", locations[1].Office)
	assert.Equal(t, "CON", locations[1].Zone)
	assert.Equal(t, "B", locations[1].Bay)

	users, err := store.Users().ListAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "max", users[0].Username)

	items, err := store.Stock().ListAll()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1137", items[0].Serial)
	assert.Equal(t, "1138", items[1].Serial)
}

// El hash sembrado debe verificar contra el password de desarrollo "a".
func TestSeed_PasswordInicialVerifica(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, seed.New(store, logger.Nop()).Run(context.Background()))

	user, err := store.Users().GetByUsername("max")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("a")))
}

// Los artículos de referencia quedan colocados en su ubicación: 1137 en TPA
// y 1138 en CLW.
func TestSeed_StockReferenciaUbicado(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, seed.New(store, logger.Nop()).Run(context.Background()))

	tpa, err := store.Locations().GetByOffice("TPA")
	require.NoError(t, err)
	require.NotNil(t, tpa)
	clw, err := store.Locations().GetByOffice("CLW")
	require.NoError(t, err)
	require.NotNil(t, clw)

	item1137, err := store.Stock().GetBySerial("1137")
	require.NoError(t, err)
	require.NotNil(t, item1137)
	require.NotNil(t, item1137.LocationID)
	assert.Equal(t, tpa.ID, *item1137.LocationID)
	assert.Equal(t, "sbp", item1137.Mfg)
	assert.Equal(t, "25x50", item1137.Dimen)

	item1138, err := store.Stock().GetBySerial("1138")
	require.NoError(t, err)
	require.NotNil(t, item1138)
	require.NotNil(t, item1138.LocationID)
	assert.Equal(t, clw.ID, *item1138.LocationID)
	assert.Equal(t, "pgt", item1138.Mfg)
	assert.Equal(t, "10x10", item1138.Dimen)
}
