package repository

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"catalog_service/internal/domain"
	"catalog_service/pkg/db"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func slots(t *testing.T) map[string]domain.Slot {
	t.Helper()
	ctx := context.Background()
	logger := quietLogger()

	fileSlot, err := NewFileSlot(afero.NewMemMapFs(), "/data", logger)
	require.NoError(t, err)

	sqlDB, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	sqliteSlot, err := NewSQLiteSlot(ctx, sqlDB, logger)
	require.NoError(t, err)

	return map[string]domain.Slot{
		"memory": NewMemorySlot(),
		"file":   fileSlot,
		"sqlite": sqliteSlot,
	}
}

func TestSlots(t *testing.T) {
	ctx := context.Background()
	for name, slot := range slots(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := slot.Get(ctx, "goyol_products")
			require.NoError(t, err)
			assert.False(t, ok, "missing key reports ok=false")

			require.NoError(t, slot.Set(ctx, "goyol_products", `[{"id":1}]`))
			v, ok, err := slot.Get(ctx, "goyol_products")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, v)

			require.NoError(t, slot.Set(ctx, "goyol_products", `[]`))
			v, _, err = slot.Get(ctx, "goyol_products")
			require.NoError(t, err)
			assert.Equal(t, `[]`, v, "set overwrites")

			require.NoError(t, slot.Set(ctx, "isAdminAuthenticated", "true"))
			require.NoError(t, slot.Delete(ctx, "isAdminAuthenticated"))
			_, ok, err = slot.Get(ctx, "isAdminAuthenticated")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, slot.Delete(ctx, "never-written"), "deleting a missing key is not an error")
		})
	}
}

func TestFileSlot_RejectsPathKeys(t *testing.T) {
	slot, err := NewFileSlot(afero.NewMemMapFs(), "/data", quietLogger())
	require.NoError(t, err)

	err = slot.Set(context.Background(), "../escape", "x")
	assert.Error(t, err)
}

func TestFileSlot_LeavesNoTempFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	slot, err := NewFileSlot(fs, "/data", quietLogger())
	require.NoError(t, err)

	require.NoError(t, slot.Set(context.Background(), "goyol_products", "[]"))
	exists, err := afero.Exists(fs, "/data/goyol_products.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemorySlot_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewMemorySlot().Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedisSlot_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	slot := NewRedisSlot(client, "catalog:", quietLogger())
	ctx := context.Background()

	_, ok, err := slot.Get(ctx, "goyol_products")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, slot.Set(ctx, "goyol_products", "[]"))
	assert.Error(t, slot.Delete(ctx, "goyol_products"))
}
