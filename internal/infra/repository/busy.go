package repository

import (
	"context"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
)

// BusyRepository persists the shared busy-slot map as a single record.
// Writes are whole-map replacements, so concurrent toggles resolve
// last-write-wins.
type BusyRepository struct {
	store kvstore.Store
}

func NewBusyRepository(store kvstore.Store) *BusyRepository {
	return &BusyRepository{store: store}
}

func (r *BusyRepository) Load(ctx context.Context) (schedule.BusyMap, error) {
	raw, ok, err := r.store.Get(ctx, kvstore.KeyBusyData)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to load busy map", err)
	}
	if !ok {
		return schedule.BusyMap{}, nil
	}
	m, err := decodeJSON[schedule.BusyMap](raw)
	if err != nil {
		// A corrupt record reads as empty rather than wedging the site.
		return schedule.BusyMap{}, nil
	}
	return m, nil
}

func (r *BusyRepository) Save(ctx context.Context, m schedule.BusyMap) error {
	if err := kvstore.Set(ctx, r.store, kvstore.KeyBusyData, m); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to save busy map", err)
	}
	return nil
}

// Subscribe registers fn to run whenever any instance rewrites the map.
func (r *BusyRepository) Subscribe(fn func()) {
	r.store.Subscribe(kvstore.KeyBusyData, fn)
}
