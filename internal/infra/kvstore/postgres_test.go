//go:build integration

package kvstore_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"folio-api/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://test:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	store, err := kvstore.NewPostgresStore(ctx, dsn, slog.Default())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	t.Run("missing key reports absent", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get round-trips jsonb", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kvstore.KeyBusyData, []byte(`{"2025-06-01":["09:00"]}`)))
		raw, ok, err := store.Get(ctx, kvstore.KeyBusyData)
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `{"2025-06-01":["09:00"]}`, string(raw))
	})

	t.Run("overwrite keeps a single row", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte(`1`)))
		require.NoError(t, store.Set(ctx, "k", []byte(`2`)))
		raw, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "2", string(raw))
	})

	t.Run("subscriber sees notify from another store instance", func(t *testing.T) {
		other, err := kvstore.NewPostgresStore(ctx, dsn, slog.Default())
		require.NoError(t, err)
		t.Cleanup(other.Close)

		fired := make(chan struct{}, 1)
		store.Subscribe("watched", func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
		// Give the LISTEN connection a moment to attach.
		time.Sleep(500 * time.Millisecond)

		require.NoError(t, other.Set(ctx, "watched", []byte(`true`)))

		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatal("subscriber was not notified")
		}
	})
}
