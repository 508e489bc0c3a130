package diary

import (
	"strings"
	"time"

	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrMissingContent   = errs.New("content is required")
	ErrUnknownMediaType = errs.New("unknown media type")
)

type MediaType string

const (
	MediaNone  MediaType = "none"
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaNone, MediaImage, MediaVideo:
		return true
	}
	return false
}

// Entry is a single diary post. Only the like counter changes after
// creation.
type Entry struct {
	id        uuid.UUID
	content   string
	mediaType MediaType
	mediaURL  string
	likes     int
	date      timeutil.LocalDate
}

func NewEntry(content string, mediaType MediaType, mediaURL string, now time.Time) (*Entry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrMissingContent
	}
	if mediaType == "" {
		mediaType = MediaNone
	}
	if !mediaType.Valid() {
		return nil, ErrUnknownMediaType
	}
	if mediaType == MediaNone {
		mediaURL = ""
	}
	return &Entry{
		id:        uuid.New(),
		content:   content,
		mediaType: mediaType,
		mediaURL:  mediaURL,
		date:      timeutil.DateOf(now),
	}, nil
}

func Reconstruct(id uuid.UUID, content string, mediaType MediaType, mediaURL string, likes int, date timeutil.LocalDate) *Entry {
	return &Entry{
		id:        id,
		content:   content,
		mediaType: mediaType,
		mediaURL:  mediaURL,
		likes:     likes,
		date:      date,
	}
}

func (e *Entry) ID() uuid.UUID            { return e.id }
func (e *Entry) Content() string          { return e.content }
func (e *Entry) MediaType() MediaType     { return e.mediaType }
func (e *Entry) MediaURL() string         { return e.mediaURL }
func (e *Entry) Likes() int               { return e.likes }
func (e *Entry) Date() timeutil.LocalDate { return e.date }

// AddLike bumps the like counter. Idempotency per client is enforced a
// layer up, against the client's liked-item record.
func (e *Entry) AddLike() {
	e.likes++
}
