package badges

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/abhisek/fika/internal/progress"
)

// Evaluate scores catalog against snap using the built-in rule table.
func Evaluate(catalog []Metadata, snap progress.State, topicsByLevel map[string][]string) []WithStatus {
	return EvaluateWith(DefaultRules(), catalog, snap, topicsByLevel)
}

// EvaluateWith scores every catalog entry against snap. Entries without a
// rule are locked at 0%. It has no side effects and is safe to call on every
// render.
func EvaluateWith(rules Rules, catalog []Metadata, snap progress.State, topicsByLevel map[string][]string) []WithStatus {
	out := make([]WithStatus, 0, len(catalog))
	for _, m := range catalog {
		ws := WithStatus{Metadata: m}
		if rule, ok := rules[m.ID]; ok {
			unlocked, frac := Check(rule, snap, topicsByLevel)
			ws.Unlocked = unlocked
			// 100% is reserved for unlocked badges.
			ws.ProgressPct = min(pct(frac), 99)
			if unlocked {
				ws.ProgressPct = 100
			}
		}
		out = append(out, ws)
	}
	return out
}

func pct(frac float64) int {
	if math.IsNaN(frac) || frac <= 0 {
		return 0
	}
	if frac >= 1 {
		return 100
	}
	return int(math.Round(frac * 100))
}

// Status is the badge board for one user at one point in time.
type Status struct {
	All      []WithStatus `json:"all"`
	Unlocked []WithStatus `json:"unlocked"`
	Locked   []WithStatus `json:"locked"`
	// Next holds the locked badges closest to unlocking.
	Next []WithStatus `json:"next"`
	// NewlyUnlocked holds badges awarded by the pass that produced this
	// Status and not already surfaced by the pass before it.
	NewlyUnlocked []WithStatus `json:"newlyUnlocked"`
	Loading       bool         `json:"loading"`
}

// DefaultNextCap is the default length of Status.Next.
const DefaultNextCap = 3

// BuildStatus splits evaluated badges into the board lists. Badges present
// in awarded stay unlocked at 100% with their award time, whatever the live
// rule says.
func BuildStatus(evaluated []WithStatus, awarded map[string]time.Time, nextCap int) Status {
	if nextCap <= 0 {
		nextCap = DefaultNextCap
	}
	st := Status{
		All:           make([]WithStatus, 0, len(evaluated)),
		Unlocked:      []WithStatus{},
		Locked:        []WithStatus{},
		Next:          []WithStatus{},
		NewlyUnlocked: []WithStatus{},
	}
	for _, ws := range evaluated {
		if at, ok := awarded[ws.ID]; ok {
			at := at
			ws.Unlocked = true
			ws.UnlockedAt = &at
			ws.ProgressPct = 100
		}
		st.All = append(st.All, ws)
		if ws.Unlocked {
			st.Unlocked = append(st.Unlocked, ws)
		} else {
			st.Locked = append(st.Locked, ws)
		}
	}

	next := slices.Clone(st.Locked)
	slices.SortStableFunc(next, func(a, b WithStatus) int {
		if c := cmp.Compare(b.ProgressPct, a.ProgressPct); c != 0 {
			return c
		}
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})
	if len(next) > nextCap {
		next = next[:nextCap]
	}
	st.Next = next
	return st
}
