package booking

import "slices"

// Reasons is the fixed purpose list on the request form.
var Reasons = []string{"Work Interview", "Hangout", "Travel", "Sports", "Other"}

// SportTypes is the sub-purpose list shown when the reason is Sports.
var SportTypes = []string{"Football", "Basketball", "Gym", "Swimming", "Badminton", "Pickleball", "Running", "Other"}

const (
	ReasonSports = "Sports"
	ReasonOther  = "Other"
)

func IsValidReason(r string) bool {
	return slices.Contains(Reasons, r)
}

func IsValidSportType(s string) bool {
	return slices.Contains(SportTypes, s)
}

// NeedsOtherDetail reports whether the free-text detail becomes required:
// either the reason itself is Other, or the Sports sub-reason is Other.
func NeedsOtherDetail(reason, subReason string) bool {
	return reason == ReasonOther || (reason == ReasonSports && subReason == ReasonOther)
}
