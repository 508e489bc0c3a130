package repository

import (
	"context"

	"folio-api/internal/domain/diary"
	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository/converter"
)

type DiaryRepository struct {
	store kvstore.Store
}

func NewDiaryRepository(store kvstore.Store) *DiaryRepository {
	return &DiaryRepository{store: store}
}

// List returns entries newest first.
func (r *DiaryRepository) List(ctx context.Context) ([]*diary.Entry, error) {
	records := kvstore.Get(ctx, r.store, kvstore.KeyDiary, []converter.DiaryRecord{})
	out := make([]*diary.Entry, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, converter.DiaryFromRecord(records[i]))
	}
	return out, nil
}

func (r *DiaryRepository) Append(ctx context.Context, e *diary.Entry) error {
	records := kvstore.Get(ctx, r.store, kvstore.KeyDiary, []converter.DiaryRecord{})
	records = append(records, converter.DiaryToRecord(e))
	if err := kvstore.Set(ctx, r.store, kvstore.KeyDiary, records); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to append diary entry", err)
	}
	return nil
}

// AddLike bumps the like counter of one entry in place.
func (r *DiaryRepository) AddLike(ctx context.Context, id string) error {
	records := kvstore.Get(ctx, r.store, kvstore.KeyDiary, []converter.DiaryRecord{})
	found := false
	for i := range records {
		if records[i].ID == id {
			records[i].Likes++
			found = true
			break
		}
	}
	if !found {
		return infra.WrapRepoErr(infra.KindNotFound, "diary entry not found", nil)
	}
	if err := kvstore.Set(ctx, r.store, kvstore.KeyDiary, records); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to save diary entries", err)
	}
	return nil
}
