package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/progress"
)

func TestBadgeBoard(t *testing.T) {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	first := badges.WithStatus{
		Metadata: badges.Metadata{ID: "first-lesson", Icon: "🌱", Name: "Första lektionen", Category: badges.CategoryBeginner},
		Unlocked: true, UnlockedAt: &at, ProgressPct: 100,
	}
	xp := badges.WithStatus{
		Metadata:    badges.Metadata{ID: "xp-500", Icon: "⭐", Name: "Femhundra", Category: badges.CategoryProgress},
		ProgressPct: 40,
	}
	st := badges.BuildStatus([]badges.WithStatus{first, xp}, nil, 3)

	out := BadgeBoard(st, 60)
	assert.Contains(t, out, "Badges  1/2")
	assert.Contains(t, out, "Första lektionen")
	assert.Contains(t, out, "Femhundra")
	assert.Contains(t, out, "Next up")
	assert.Less(t, strings.Index(out, "Nybörjare"), strings.Index(out, "Framsteg"))
}

func TestBadgeBoardLoading(t *testing.T) {
	assert.Contains(t, BadgeBoard(badges.Status{Loading: true}, 60), "Loading")
}

func TestProgressSummary(t *testing.T) {
	s := progress.NewState()
	s.XP = 170
	s.Streak = 4
	s.CompletedTopics["a1-greetings"] = progress.TopicRecord{Score: 90, BestScore: 90, Attempts: 2}

	out := ProgressSummary(s, 50)
	assert.Contains(t, out, "170")
	assert.Contains(t, out, "anonymous")
	assert.Contains(t, out, "a1-greetings")
}

func TestProgressBarWidth(t *testing.T) {
	bar := NewProgressBar("", 0.5, false, 20).View()
	assert.Equal(t, 20, Width(bar))

	over := NewProgressBar("", 3, false, 10).View()
	assert.Equal(t, 10, Width(over))
}

func TestToast(t *testing.T) {
	out := Toast("🔥", "Tre dagar", "Study three days in a row")
	assert.Contains(t, out, "Tre dagar unlocked!")
	assert.Contains(t, out, "Study three days in a row")
}
