package kvstore

import (
	"context"
	"encoding/json"
)

// Store is a small namespaced key-value service with change
// notification. Values are opaque JSON documents; read-modify-write
// cycles are synchronous from the caller's point of view.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set writes the value and notifies subscribers of the key.
	Set(ctx context.Context, key string, value []byte) error
	// Subscribe registers fn to run after every Set of key, local or
	// remote. Callbacks must be fast; slow work belongs on the
	// subscriber's own goroutine.
	Subscribe(key string, fn func())
	// Close releases connections and stops notification listeners.
	Close()
}

// Get reads and decodes a typed value. Missing keys and garbage
// payloads both yield the default, matching the read semantics every
// repository in this service relies on.
func Get[T any](ctx context.Context, s Store, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// Set encodes and writes a typed value.
func Set[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
