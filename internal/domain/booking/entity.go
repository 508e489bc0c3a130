package booking

import (
	"strings"
	"time"

	"folio-api/internal/domain/schedule"
	"folio-api/internal/pkg/errs"
	"folio-api/internal/pkg/timeutil"

	"github.com/google/uuid"
)

var (
	ErrMissingName      = errs.New("name is required")
	ErrMissingContact   = errs.New("contact is required")
	ErrMissingPlatform  = errs.New("contact platform is required")
	ErrMissingLocation  = errs.New("location is required")
	ErrUnknownReason    = errs.New("unknown reason")
	ErrMissingSubReason = errs.New("sub-reason is required for sports")
	ErrUnknownSubReason = errs.New("unknown sport type")
	ErrMissingDetail    = errs.New("detail is required when reason is other")
	ErrIncompleteWindow = errs.New("window is incomplete")
	ErrInvalidWindow    = errs.New("window end must follow its start")
)

// Request is a guest booking request. It is terminal: created once,
// never mutated, only appended to the stored list.
type Request struct {
	id          uuid.UUID
	name        string
	contact     string
	platform    string
	reason      string
	subReason   string
	otherDetail string
	location    string
	window      schedule.Window
	createdAt   time.Time
}

func NewRequest(
	name, contact, platform string,
	reason, subReason, otherDetail string,
	location string,
	window schedule.Window,
	now time.Time,
) (*Request, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	platform = strings.TrimSpace(platform)
	location = strings.TrimSpace(location)

	switch {
	case name == "":
		return nil, ErrMissingName
	case contact == "":
		return nil, ErrMissingContact
	case platform == "":
		return nil, ErrMissingPlatform
	case location == "":
		return nil, ErrMissingLocation
	}

	if !IsValidReason(reason) {
		return nil, ErrUnknownReason
	}
	if reason == ReasonSports {
		if subReason == "" {
			return nil, ErrMissingSubReason
		}
		if !IsValidSportType(subReason) {
			return nil, ErrUnknownSubReason
		}
	} else {
		// The sub-reason only exists for Sports requests.
		subReason = ""
	}
	if NeedsOtherDetail(reason, subReason) && strings.TrimSpace(otherDetail) == "" {
		return nil, ErrMissingDetail
	}
	if !NeedsOtherDetail(reason, subReason) {
		otherDetail = ""
	}

	if !window.Complete() {
		return nil, ErrIncompleteWindow
	}
	if !window.Valid() {
		return nil, ErrInvalidWindow
	}
	if window.MultiDay {
		// Times are meaningless on a multi-day request.
		window.StartTime = timeutil.ClockTime{}
		window.EndTime = timeutil.ClockTime{}
	}

	return &Request{
		id:          uuid.New(),
		name:        name,
		contact:     contact,
		platform:    platform,
		reason:      reason,
		subReason:   subReason,
		otherDetail: otherDetail,
		location:    location,
		window:      window,
		createdAt:   now,
	}, nil
}

// Reconstruct rebuilds a request loaded from the store without
// re-running creation validation.
func Reconstruct(
	id uuid.UUID,
	name, contact, platform string,
	reason, subReason, otherDetail string,
	location string,
	window schedule.Window,
	createdAt time.Time,
) *Request {
	return &Request{
		id:          id,
		name:        name,
		contact:     contact,
		platform:    platform,
		reason:      reason,
		subReason:   subReason,
		otherDetail: otherDetail,
		location:    location,
		window:      window,
		createdAt:   createdAt,
	}
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) Name() string            { return r.name }
func (r *Request) Contact() string         { return r.contact }
func (r *Request) Platform() string        { return r.platform }
func (r *Request) Reason() string          { return r.reason }
func (r *Request) SubReason() string       { return r.subReason }
func (r *Request) OtherDetail() string     { return r.otherDetail }
func (r *Request) Location() string        { return r.location }
func (r *Request) Window() schedule.Window { return r.window }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }

// TimeLabel is the admin dashboard summary line for the request window.
func (r *Request) TimeLabel() string {
	return r.window.Label()
}
