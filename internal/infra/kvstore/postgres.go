package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"folio-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	kvSchema = `CREATE TABLE IF NOT EXISTS kv_entries (
		key        text PRIMARY KEY,
		value      jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`
	kvChannel = "kv_changes"
)

// PostgresStore keeps every record as one jsonb row and relays change
// notifications over LISTEN/NOTIFY so all instances see each other's
// writes.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string][]func()

	cancel context.CancelFunc
	done   chan struct{}
}

func NewPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create pgx pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ping postgres")
	}
	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "failed to ensure kv_entries table")
	}

	listenCtx, cancel := context.WithCancel(context.Background())
	s := &PostgresStore{
		pool:   pool,
		logger: logger,
		subs:   make(map[string][]func()),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.listen(listenCtx)
	return s, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, "SELECT value FROM kv_entries WHERE key = $1", key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read kv entry")
	}
	return raw, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return errs.Wrap(err, "failed to write kv entry")
	}
	if _, err := s.pool.Exec(ctx, "SELECT pg_notify($1, $2)", kvChannel, key); err != nil {
		// The write itself succeeded; watchers fall back to polling.
		s.logger.Warn("kv notify failed", "key", key, "error", err)
	}
	return nil
}

func (s *PostgresStore) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

func (s *PostgresStore) Close() {
	s.cancel()
	<-s.done
	s.pool.Close()
}

// listen holds a dedicated connection on the notification channel and
// dispatches callbacks. The connection is re-acquired after failures.
func (s *PostgresStore) listen(ctx context.Context) {
	defer close(s.done)
	for {
		if err := s.listenOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.Warn("kv listener disconnected, retrying", "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *PostgresStore) listenOnce(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+kvChannel); err != nil {
		return err
	}
	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		s.dispatch(n.Payload)
	}
}

func (s *PostgresStore) dispatch(key string) {
	s.mu.RLock()
	subs := append([]func(){}, s.subs[key]...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
