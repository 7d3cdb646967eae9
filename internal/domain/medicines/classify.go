package medicines

import "time"

type ExpiryStatus string

const (
	StatusExpired      ExpiryStatus = "Expired"
	StatusExpiringSoon ExpiryStatus = "Expiring Soon"
	StatusSafe         ExpiryStatus = "Safe"
)

// ExpiringSoonWindowDays is the classification window: a medicine expiring
// within this many days of today (inclusive) counts as Expiring Soon.
const ExpiringSoonWindowDays = 7

// Classify derives the expiry status of a medicine from its expiry date and
// a reference day. Both arguments are compared at day granularity; status is
// never persisted.
func Classify(expiryDate, today time.Time) ExpiryStatus {
	expiry := DateOnly(expiryDate)
	day := DateOnly(today)

	switch {
	case expiry.Before(day):
		return StatusExpired
	case !expiry.After(day.AddDate(0, 0, ExpiringSoonWindowDays)):
		return StatusExpiringSoon
	default:
		return StatusSafe
	}
}

// DateOnly drops the time-of-day component, keeping calendar-date
// comparisons stable regardless of how a timestamp was produced.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
