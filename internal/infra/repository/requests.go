package repository

import (
	"context"

	"folio-api/internal/domain/booking"
	"folio-api/internal/infra"
	"folio-api/internal/infra/kvstore"
	"folio-api/internal/infra/repository/converter"
)

// RequestsRepository is an append-only log of booking requests stored
// as one list record.
type RequestsRepository struct {
	store kvstore.Store
}

func NewRequestsRepository(store kvstore.Store) *RequestsRepository {
	return &RequestsRepository{store: store}
}

func (r *RequestsRepository) Append(ctx context.Context, req *booking.Request) error {
	records := kvstore.Get(ctx, r.store, kvstore.KeyRequests, []converter.RequestRecord{})
	records = append(records, converter.RequestToRecord(req))
	if err := kvstore.Set(ctx, r.store, kvstore.KeyRequests, records); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to append request", err)
	}
	return nil
}

// List returns requests newest first.
func (r *RequestsRepository) List(ctx context.Context) ([]*booking.Request, error) {
	records := kvstore.Get(ctx, r.store, kvstore.KeyRequests, []converter.RequestRecord{})
	out := make([]*booking.Request, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, converter.RequestFromRecord(records[i]))
	}
	return out, nil
}
