package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlot(t *testing.T) (*SlotStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	store, err := NewSlotStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSlotStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSlot(t)

	identity := &domain.Identity{
		Email:        "demo@vendor.com",
		Role:         domain.RoleVendor,
		DisplayName:  "Sarah Johnson",
		Organization: "Premium Supplies Co.",
		LoggedInAt:   time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Save(ctx, identity))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, identity, loaded)
}

func TestSlotStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSlot(t)

	first := &domain.Identity{Email: "demo@vendor.com", Role: domain.RoleVendor}
	second := &domain.Identity{Email: "demo@client.com", Role: domain.RoleClient}

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo@client.com", loaded.Email)
}

func TestSlotStore_LoadEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSlot(t)

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSlotStore_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSlot(t)

	require.NoError(t, store.Save(ctx, &domain.Identity{Email: "demo@vendor.com", Role: domain.RoleVendor}))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSlotStore_CorruptPayloadDiscarded(t *testing.T) {
	ctx := context.Background()
	store, path := newTestSlot(t)

	// Corrupt the slot out-of-band
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.ExecContext(ctx,
		`INSERT INTO session_slot (id, payload) VALUES (1, 'not json at all')
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload`)
	require.NoError(t, err)

	// Corrupt slot fails open: no identity, slot cleared
	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	// Repeated loads stay empty
	loaded, err = store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_slot`).Scan(&count))
	assert.Zero(t, count)
}
