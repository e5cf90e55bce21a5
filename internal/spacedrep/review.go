package spacedrep

import (
	"sort"
	"time"

	"github.com/abhisek/fika/internal/progress"
)

// ReviewState is the review schedule of a single word.
type ReviewState struct {
	Word           string    `json:"word"`
	Stage          int       `json:"stage"`
	NextReviewDate time.Time `json:"nextReviewDate"`
	Graduated      bool      `json:"graduated"`
	LastReviewDate time.Time `json:"lastReviewDate"`
}

// FromWord derives the schedule of word from its review counts. Each wrong
// answer cancels one correct answer, and the net count picks the stage.
func FromWord(word string, rec progress.WordRecord) ReviewState {
	stage := min(max(rec.Correct-rec.Wrong, 0), GraduationStage)
	rs := ReviewState{
		Word:           word,
		Stage:          stage,
		Graduated:      stage >= GraduationStage,
		LastReviewDate: rec.LastSeen,
	}
	if !rec.LastSeen.IsZero() {
		rs.NextReviewDate = rec.LastSeen.AddDate(0, 0, rs.CurrentIntervalDays())
	}
	return rs
}

// IsDue reports whether the word should be reviewed at now.
func (rs ReviewState) IsDue(now time.Time) bool {
	return !now.Before(rs.NextReviewDate)
}

// OverdueDays is the fractional number of days since the word became due.
func (rs ReviewState) OverdueDays(now time.Time) float64 {
	if !rs.IsDue(now) {
		return 0
	}
	return now.Sub(rs.NextReviewDate).Hours() / 24
}

// CurrentIntervalDays returns the gap between reviews at the current stage.
func (rs ReviewState) CurrentIntervalDays() int {
	if rs.Graduated {
		return GraduatedIntervalDays
	}
	return BaseIntervals[min(rs.Stage, MaxStage)]
}

// graceEnd is when a due word turns overdue: half an interval after it
// became due.
func (rs ReviewState) graceEnd() time.Time {
	grace := time.Duration(rs.CurrentIntervalDays()) * 12 * time.Hour
	return rs.NextReviewDate.Add(grace)
}

// ReviewStatus describes a word's review status for display.
type ReviewStatus string

const (
	ReviewNotDue    ReviewStatus = "not_due"
	ReviewDue       ReviewStatus = "due"
	ReviewOverdue   ReviewStatus = "overdue"
	ReviewGraduated ReviewStatus = "graduated"
)

// Status returns the review status for display.
func (rs ReviewState) Status(now time.Time) ReviewStatus {
	switch {
	case !rs.IsDue(now) && rs.Graduated:
		return ReviewGraduated
	case !rs.IsDue(now):
		return ReviewNotDue
	case now.After(rs.graceEnd()):
		return ReviewOverdue
	default:
		return ReviewDue
	}
}

// Due returns the words in s that are due for review, most overdue first.
// Ties are broken by word. A limit of zero or less returns every due word.
func Due(s progress.State, now time.Time, limit int) []ReviewState {
	var due []ReviewState
	for word, rec := range s.WordHistory {
		rs := FromWord(word, rec)
		if rs.IsDue(now) {
			due = append(due, rs)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		return due[i].Word < due[j].Word
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
