package place

import (
	"strings"

	"folio-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingName = errs.New("name is required")
	ErrInvalidRate = errs.New("rate must be between 1 and 5")
)

// Place is a favorite-places card: a rated, taggable recommendation.
type Place struct {
	id     uuid.UUID
	name   string
	review string
	rate   int
	image  string
	tags   []string
	likes  int
}

func NewPlace(name, review string, rate int, image string, tags []string) (*Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if rate < 1 || rate > 5 {
		return nil, ErrInvalidRate
	}
	return &Place{
		id:     uuid.New(),
		name:   name,
		review: review,
		rate:   rate,
		image:  image,
		tags:   tags,
	}, nil
}

func Reconstruct(id uuid.UUID, name, review string, rate int, image string, tags []string, likes int) *Place {
	return &Place{
		id:     id,
		name:   name,
		review: review,
		rate:   rate,
		image:  image,
		tags:   tags,
		likes:  likes,
	}
}

func (p *Place) ID() uuid.UUID   { return p.id }
func (p *Place) Name() string    { return p.name }
func (p *Place) Review() string  { return p.review }
func (p *Place) Rate() int       { return p.rate }
func (p *Place) Image() string   { return p.image }
func (p *Place) Tags() []string  { return p.tags }
func (p *Place) Likes() int      { return p.likes }

// MatchesSearch does a case-insensitive substring match on the name.
func (p *Place) MatchesSearch(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.name), strings.ToLower(q))
}

func (p *Place) AddLike() {
	p.likes++
}
