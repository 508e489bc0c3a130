package repository

import (
	"context"

	"folio-api/internal/domain/place"
	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository/converter"
)

type PlaceRepository struct {
	store kvstore.Store
}

func NewPlaceRepository(store kvstore.Store) *PlaceRepository {
	return &PlaceRepository{store: store}
}

// List returns places in insertion order, filtered by the optional
// name search.
func (r *PlaceRepository) List(ctx context.Context, search string) ([]*place.Place, error) {
	records := kvstore.Get(ctx, r.store, kvstore.KeyFavs, []converter.PlaceRecord{})
	out := make([]*place.Place, 0, len(records))
	for _, rec := range records {
		p := converter.PlaceFromRecord(rec)
		if p.MatchesSearch(search) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlaceRepository) Append(ctx context.Context, p *place.Place) error {
	records := kvstore.Get(ctx, r.store, kvstore.KeyFavs, []converter.PlaceRecord{})
	records = append(records, converter.PlaceToRecord(p))
	if err := kvstore.Set(ctx, r.store, kvstore.KeyFavs, records); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to append place", err)
	}
	return nil
}

func (r *PlaceRepository) AddLike(ctx context.Context, id string) error {
	records := kvstore.Get(ctx, r.store, kvstore.KeyFavs, []converter.PlaceRecord{})
	found := false
	for i := range records {
		if records[i].ID == id {
			records[i].Likes++
			found = true
			break
		}
	}
	if !found {
		return infra.WrapRepoErr(infra.KindNotFound, "place not found", nil)
	}
	if err := kvstore.Set(ctx, r.store, kvstore.KeyFavs, records); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to save places", err)
	}
	return nil
}
