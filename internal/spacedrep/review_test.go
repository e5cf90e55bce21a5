package spacedrep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/progress"
)

func TestFromWordStage(t *testing.T) {
	seen := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		rec       progress.WordRecord
		stage     int
		graduated bool
		interval  int
	}{
		{"new word", progress.WordRecord{Correct: 0, Wrong: 1, LastSeen: seen}, 0, false, 1},
		{"one net correct", progress.WordRecord{Correct: 3, Wrong: 2, LastSeen: seen}, 1, false, 3},
		{"max stage", progress.WordRecord{Correct: 5, LastSeen: seen}, 5, false, 60},
		{"graduated", progress.WordRecord{Correct: 9, Wrong: 1, LastSeen: seen}, 6, true, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := FromWord("hej", tt.rec)
			assert.Equal(t, tt.stage, rs.Stage)
			assert.Equal(t, tt.graduated, rs.Graduated)
			assert.Equal(t, tt.interval, rs.CurrentIntervalDays())
			assert.True(t, rs.NextReviewDate.Equal(seen.AddDate(0, 0, tt.interval)))
		})
	}
}

func TestFromWordNeverSeenIsDue(t *testing.T) {
	rs := FromWord("tack", progress.WordRecord{Correct: 1})
	assert.True(t, rs.IsDue(time.Now()))
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		next time.Time
		want bool
	}{
		{"before date", now.Add(24 * time.Hour), false},
		{"on date", now, true},
		{"after date", now.Add(-48 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := ReviewState{NextReviewDate: tt.next}
			assert.Equal(t, tt.want, rs.IsDue(now))
		})
	}
}

func TestOverdueDays(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rs := ReviewState{NextReviewDate: reviewDate}
	assert.Zero(t, rs.OverdueDays(reviewDate.Add(-time.Hour)))
	assert.InDelta(t, 3.0, rs.OverdueDays(reviewDate.Add(3*24*time.Hour)), 0.01)
}

func TestStatus(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		rs   ReviewState
		now  time.Time
		want ReviewStatus
	}{
		// Stage 2 has a 7-day interval and a 3.5-day grace period.
		{"not due", ReviewState{Stage: 2, NextReviewDate: reviewDate}, reviewDate.Add(-24 * time.Hour), ReviewNotDue},
		{"due", ReviewState{Stage: 2, NextReviewDate: reviewDate}, reviewDate.Add(24 * time.Hour), ReviewDue},
		{"overdue", ReviewState{Stage: 2, NextReviewDate: reviewDate}, reviewDate.Add(4 * 24 * time.Hour), ReviewOverdue},
		{"graduated", ReviewState{Stage: 6, Graduated: true, NextReviewDate: reviewDate}, reviewDate.Add(-time.Hour), ReviewGraduated},
		{"graduated within grace", ReviewState{Stage: 6, Graduated: true, NextReviewDate: reviewDate}, reviewDate.Add(30 * 24 * time.Hour), ReviewDue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rs.Status(tt.now))
		})
	}
}

func TestDueOrdersMostOverdueFirst(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	s := progress.NewState()
	s.WordHistory["hej"] = progress.WordRecord{Correct: 1, LastSeen: now.AddDate(0, 0, -5)}   // due 2 days ago
	s.WordHistory["tack"] = progress.WordRecord{Wrong: 2, LastSeen: now.AddDate(0, 0, -4)}    // due 3 days ago
	s.WordHistory["kaffe"] = progress.WordRecord{Correct: 3, LastSeen: now.AddDate(0, 0, -1)} // due in 13 days
	s.WordHistory["bulle"] = progress.WordRecord{Correct: 1, LastSeen: now.AddDate(0, 0, -5)} // ties with hej

	due := Due(s, now, 0)
	require.Len(t, due, 3)
	assert.Equal(t, "tack", due[0].Word)
	assert.Equal(t, "bulle", due[1].Word)
	assert.Equal(t, "hej", due[2].Word)

	assert.Len(t, Due(s, now, 2), 2)
	assert.Empty(t, Due(progress.NewState(), now, 0))
}
