package repository

import (
	"context"
	"slices"
	"time"

	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
)

// ActionRecord is the per-client state: which items the client liked
// and when their last booking request went through.
type ActionRecord struct {
	LikedItems      []string `json:"likedItems"`
	LastRequestTime int64    `json:"lastRequestTime"` // unix ms, 0 = never
}

type UserActionRepository struct {
	store kvstore.Store
}

func NewUserActionRepository(store kvstore.Store) *UserActionRepository {
	return &UserActionRepository{store: store}
}

func (r *UserActionRepository) Load(ctx context.Context, clientID string) ActionRecord {
	return kvstore.Get(ctx, r.store, kvstore.UserActionKey(clientID), ActionRecord{})
}

// Like records the item once per client. It reports whether the like
// was new; a repeat like is a no-op.
func (r *UserActionRepository) Like(ctx context.Context, clientID, itemID string) (bool, error) {
	rec := r.Load(ctx, clientID)
	if slices.Contains(rec.LikedItems, itemID) {
		return false, nil
	}
	rec.LikedItems = append(rec.LikedItems, itemID)
	if err := kvstore.Set(ctx, r.store, kvstore.UserActionKey(clientID), rec); err != nil {
		return false, infra.WrapRepoErr(infra.KindStoreFailure, "failed to save liked items", err)
	}
	return true, nil
}

func (r *UserActionRepository) SetLastRequestTime(ctx context.Context, clientID string, at time.Time) error {
	rec := r.Load(ctx, clientID)
	rec.LastRequestTime = at.UnixMilli()
	if err := kvstore.Set(ctx, r.store, kvstore.UserActionKey(clientID), rec); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to save last request time", err)
	}
	return nil
}

func (r *UserActionRepository) LastRequestTime(ctx context.Context, clientID string) time.Time {
	rec := r.Load(ctx, clientID)
	if rec.LastRequestTime == 0 {
		return time.Time{}
	}
	return time.UnixMilli(rec.LastRequestTime)
}
