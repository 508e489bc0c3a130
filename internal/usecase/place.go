package usecase

import (
	"context"

	"folio-api/internal/domain/place"
	"folio-api/internal/infra"
	"folio-api/internal/pkg/errs"
)

type PlaceRepository interface {
	List(ctx context.Context, search string) ([]*place.Place, error)
	Append(ctx context.Context, p *place.Place) error
	AddLike(ctx context.Context, id string) error
}

type PlaceUseCase interface {
	List(ctx context.Context, search string) ([]*place.Place, error)
	Add(ctx context.Context, name, review string, rate int, image string, tags []string) (*place.Place, error)
	Like(ctx context.Context, clientID, placeID string) error
}

type placeUseCaseImpl struct {
	places  PlaceRepository
	actions UserActionRepository
}

func NewPlaceUseCase(places PlaceRepository, actions UserActionRepository) PlaceUseCase {
	return &placeUseCaseImpl{places: places, actions: actions}
}

func (u *placeUseCaseImpl) List(ctx context.Context, search string) ([]*place.Place, error) {
	return u.places.List(ctx, search)
}

func (u *placeUseCaseImpl) Add(ctx context.Context, name, review string, rate int, image string, tags []string) (*place.Place, error) {
	p, err := place.NewPlace(name, review, rate, image, tags)
	if err != nil {
		return nil, err
	}
	if err := u.places.Append(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *placeUseCaseImpl) Like(ctx context.Context, clientID, placeID string) error {
	added, err := u.actions.Like(ctx, clientID, "place:"+placeID)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}
	if err := u.places.AddLike(ctx, placeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEntryNotFound
		}
		return err
	}
	return nil
}
