package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	"github.com/sangkips/kasirpos/internal/domain/enum"
)

func TestMemoryMenuRepository_SeedOrderPreserved(t *testing.T) {
	repo := NewMemoryMenuRepository(SeedMenu())

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, "1", items[0].ID)

	for _, item := range items {
		assert.True(t, item.Available)
		assert.Positive(t, item.Price)
	}
}

func TestMemoryMenuRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryMenuRepository(SeedMenu())
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

func TestMemoryMenuRepository_GetByID(t *testing.T) {
	repo := NewMemoryMenuRepository(SeedMenu())
	ctx := context.Background()

	item, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "1", item.ID)

	missing, err := repo.GetByID(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryMenuRepository_AddAppends(t *testing.T) {
	repo := NewMemoryMenuRepository(SeedMenu())
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	item := entity.NewMenuItem("Sate Ayam", 27000, "Makanan Utama", "")
	require.NoError(t, repo.Add(ctx, item))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, item.ID, after[len(after)-1].ID)
}

func TestMemoryMenuRepository_SetAvailable(t *testing.T) {
	repo := NewMemoryMenuRepository(SeedMenu())
	ctx := context.Background()

	require.NoError(t, repo.SetAvailable(ctx, "1", false))

	item, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.False(t, item.Available)

	// Unknown ids are a no-op.
	require.NoError(t, repo.SetAvailable(ctx, "unknown", false))
}

func TestMemoryLedgerRepository_MostRecentFirst(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	ctx := context.Background()

	for _, id := range []string{"TRX-1", "TRX-2", "TRX-3"} {
		require.NoError(t, repo.Record(ctx, &entity.Transaction{
			ID:            id,
			Date:          "01/03/2025",
			PaymentMethod: enum.PaymentCash,
		}))
	}

	txs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "TRX-3", txs[0].ID)
	assert.Equal(t, "TRX-1", txs[2].ID)
}

func TestMemoryLedgerRepository_GetByID(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, &entity.Transaction{ID: "TRX-1"}))

	tx, err := repo.GetByID(ctx, "TRX-1")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "TRX-1", tx.ID)

	missing, err := repo.GetByID(ctx, "TRX-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryLedgerRepository_RecordedSalesImmutable(t *testing.T) {
	repo := NewMemoryLedgerRepository()
	ctx := context.Background()

	tx := &entity.Transaction{ID: "TRX-1", Total: 10000}
	require.NoError(t, repo.Record(ctx, tx))

	// Mutating the caller's copy must not reach the ledger.
	tx.Total = 99999

	stored, err := repo.GetByID(ctx, "TRX-1")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), stored.Total)
}

func TestMemoryDirectory_AuthenticateByUsernameOrEmail(t *testing.T) {
	dir, err := NewMemoryDirectory(DefaultUsers())
	require.NoError(t, err)
	ctx := context.Background()

	user, token, err := dir.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "admin@foodkasir.com", user.Email)

	user, _, err = dir.Authenticate(ctx, "admin@foodkasir.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestMemoryDirectory_RejectsBadCredentials(t *testing.T) {
	dir, err := NewMemoryDirectory(DefaultUsers())
	require.NoError(t, err)
	ctx := context.Background()

	_, _, err = dir.Authenticate(ctx, "admin", "wrong")
	require.Error(t, err)

	_, _, err = dir.Authenticate(ctx, "ghost", "admin123")
	require.Error(t, err)
}
