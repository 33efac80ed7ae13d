package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/infrastructure/memory"
)

// El adaptador en memoria replica las reglas del esquema PostgreSQL:
// username y serial únicos, location_id con integridad referencial.

func TestStore_UsernameDuplicado(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Users().Create(&entity.User{Username: "max", PasswordHash: "h"}))

	err := store.Users().Create(&entity.User{Username: "max", PasswordHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	users, err := store.Users().ListAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestStore_SerialDuplicado(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Stock().Create(&entity.Stock{Serial: "1137"}))

	err := store.Stock().Create(&entity.Stock{Serial: "1137"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestStore_LocationIDColgante(t *testing.T) {
	store := memory.NewStore()
	missing := int64(42)

	err := store.Stock().Create(&entity.Stock{Serial: "1", LocationID: &missing})
	assert.ErrorIs(t, err, domain.ErrForeignKey)

	items, err := store.Stock().ListAll()
	require.NoError(t, err)
	assert.Empty(t, items, "una violación no debe dejar estado parcial")
}

func TestStore_IDsSecuencialesNoReutilizados(t *testing.T) {
	store := memory.NewStore()

	a := &entity.Note{Content: "a", Timestamp: "2026-01-01 00:00:00"}
	b := &entity.Note{Content: "b", Timestamp: "2026-01-01 00:00:01"}
	require.NoError(t, store.Notes().Create(a))
	require.NoError(t, store.Notes().Create(b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
}
