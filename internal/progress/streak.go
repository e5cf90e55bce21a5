package progress

import "time"

// daysBetween returns the number of civil calendar days from a to b,
// evaluated in b's location.
func daysBetween(a, b time.Time) int {
	a = a.In(b.Location())
	da := time.Date(a.Year(), a.Month(), a.Day(), 12, 0, 0, 0, b.Location())
	db := time.Date(b.Year(), b.Month(), b.Day(), 12, 0, 0, 0, b.Location())
	// Noon anchors keep DST shifts from skewing the hour count.
	return int(db.Sub(da).Round(24*time.Hour) / (24 * time.Hour))
}

// nextStreak applies the day-gap rule. changed is false when activity was
// already recorded today.
func nextStreak(streak int, lastActivity, now time.Time) (next int, changed bool) {
	if lastActivity.IsZero() || streak == 0 {
		return 1, true
	}
	switch gap := daysBetween(lastActivity, now); {
	case gap <= 0:
		return streak, false
	case gap == 1:
		return streak + 1, true
	default:
		return 1, true
	}
}
