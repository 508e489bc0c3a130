package kvstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"folio-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const redisChannel = "kv_changes"

// RedisStore keeps records as plain string values and fans out change
// notifications over a single pub/sub channel carrying the key.
type RedisStore struct {
	rdb    *redis.Client
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string][]func()

	pubsub *redis.PubSub
	done   chan struct{}
}

func NewRedisStore(ctx context.Context, addr, password string, db int, logger *slog.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	s := &RedisStore{
		rdb:    rdb,
		logger: logger,
		subs:   make(map[string][]func()),
		pubsub: rdb.Subscribe(context.Background(), redisChannel),
		done:   make(chan struct{}),
	}
	go s.listen()
	return s, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "failed to read kv entry")
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errs.Wrap(err, "failed to write kv entry")
	}
	if err := s.rdb.Publish(ctx, redisChannel, key).Err(); err != nil {
		s.logger.Warn("kv notify failed", "key", key, "error", err)
	}
	return nil
}

func (s *RedisStore) Subscribe(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[key] = append(s.subs[key], fn)
}

func (s *RedisStore) Close() {
	_ = s.pubsub.Close()
	<-s.done
	_ = s.rdb.Close()
}

func (s *RedisStore) listen() {
	defer close(s.done)
	for msg := range s.pubsub.Channel() {
		s.mu.RLock()
		subs := append([]func(){}, s.subs[msg.Payload]...)
		s.mu.RUnlock()
		for _, fn := range subs {
			fn()
		}
	}
}
