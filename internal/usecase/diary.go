package usecase

import (
	"context"

	"folio-api/internal/domain/diary"
	"folio-api/internal/infra"
	"folio-api/internal/pkg/clock"
	"folio-api/internal/pkg/errs"
)

type DiaryRepository interface {
	List(ctx context.Context) ([]*diary.Entry, error)
	Append(ctx context.Context, e *diary.Entry) error
	AddLike(ctx context.Context, id string) error
}

type DiaryUseCase interface {
	List(ctx context.Context) ([]*diary.Entry, error)
	Post(ctx context.Context, content string, mediaType diary.MediaType, mediaURL string) (*diary.Entry, error)
	Like(ctx context.Context, clientID, entryID string) error
}

type diaryUseCaseImpl struct {
	entries DiaryRepository
	actions UserActionRepository
	clock   clock.Clock
}

func NewDiaryUseCase(entries DiaryRepository, actions UserActionRepository, clk clock.Clock) DiaryUseCase {
	return &diaryUseCaseImpl{entries: entries, actions: actions, clock: clk}
}

func (u *diaryUseCaseImpl) List(ctx context.Context) ([]*diary.Entry, error) {
	return u.entries.List(ctx)
}

func (u *diaryUseCaseImpl) Post(ctx context.Context, content string, mediaType diary.MediaType, mediaURL string) (*diary.Entry, error) {
	e, err := diary.NewEntry(content, mediaType, mediaURL, u.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := u.entries.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Like counts once per client; a repeat like is silently dropped.
func (u *diaryUseCaseImpl) Like(ctx context.Context, clientID, entryID string) error {
	added, err := u.actions.Like(ctx, clientID, "diary:"+entryID)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}
	if err := u.entries.AddLike(ctx, entryID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEntryNotFound
		}
		return err
	}
	return nil
}
