package usecase

import (
	"context"
	"log/slog"

	"folio-api/internal/infra/geocode"
)

type GeocodeClient interface {
	Search(ctx context.Context, query string) ([]geocode.Result, error)
	Reverse(ctx context.Context, lat, lon string) (geocode.Result, error)
}

// GeocodeUseCase fronts the upstream geocoder. Upstream failures are
// logged and degrade to empty results; the location picker simply shows
// nothing rather than an error.
type GeocodeUseCase interface {
	Search(ctx context.Context, query string) []geocode.Result
	Reverse(ctx context.Context, lat, lon string) (geocode.Result, bool)
}

type geocodeUseCaseImpl struct {
	client GeocodeClient
	logger *slog.Logger
}

func NewGeocodeUseCase(client GeocodeClient, logger *slog.Logger) GeocodeUseCase {
	return &geocodeUseCaseImpl{client: client, logger: logger}
}

func (u *geocodeUseCaseImpl) Search(ctx context.Context, query string) []geocode.Result {
	if query == "" {
		return nil
	}
	results, err := u.client.Search(ctx, query)
	if err != nil {
		u.logger.Warn("geocode search failed", "error", err)
		return nil
	}
	return results
}

func (u *geocodeUseCaseImpl) Reverse(ctx context.Context, lat, lon string) (geocode.Result, bool) {
	result, err := u.client.Reverse(ctx, lat, lon)
	if err != nil {
		u.logger.Warn("geocode reverse failed", "error", err)
		return geocode.Result{}, false
	}
	return result, true
}
