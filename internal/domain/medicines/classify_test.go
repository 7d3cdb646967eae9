package medicines

import (
	"testing"
	"time"
)

func TestClassifyBoundaries(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		expiry time.Time
		want   ExpiryStatus
	}{
		{"day before today", today.AddDate(0, 0, -1), StatusExpired},
		{"long expired", today.AddDate(-1, 0, 0), StatusExpired},
		{"today", today, StatusExpiringSoon},
		{"inside window", today.AddDate(0, 0, 3), StatusExpiringSoon},
		{"window edge", today.AddDate(0, 0, 7), StatusExpiringSoon},
		{"past window edge", today.AddDate(0, 0, 8), StatusSafe},
		{"far future", today.AddDate(1, 0, 0), StatusSafe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.expiry, today); got != tc.want {
				t.Fatalf("Classify(%s) = %q, want %q", tc.expiry.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	expiry := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)

	if got := Classify(expiry, today); got != StatusExpiringSoon {
		t.Fatalf("expected Expiring Soon for same calendar day, got %q", got)
	}
}
