package badges

import (
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/fika/internal/progress"
)

// Metric selects the counter a Threshold rule compares.
type Metric int

const (
	MetricXP Metric = iota
	MetricStreak
	MetricWords
	MetricTopics
)

func (m Metric) String() string {
	switch m {
	case MetricXP:
		return "xp"
	case MetricStreak:
		return "streak"
	case MetricWords:
		return "words"
	case MetricTopics:
		return "topics"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Rule is an unlock condition. The set of variants is closed: Threshold,
// PerfectCount, AllPerfect, LevelComplete and TimeOfDay.
type Rule interface {
	isRule()
}

// Threshold unlocks once a counter reaches Min.
type Threshold struct {
	Metric Metric
	Min    int
}

// PerfectCount unlocks once Min topics have a best score of 100.
type PerfectCount struct {
	Min int
}

// AllPerfect unlocks once at least MinTopics topics are completed and every
// completed topic has a best score of 100.
type AllPerfect struct {
	MinTopics int
}

// LevelComplete unlocks once every topic of Level has been completed.
type LevelComplete struct {
	Level string
}

// TimeOfDay unlocks when the last study hour falls in [StartHour, EndHour).
// A band with StartHour > EndHour wraps past midnight.
type TimeOfDay struct {
	StartHour int
	EndHour   int
}

func (Threshold) isRule()     {}
func (PerfectCount) isRule()  {}
func (AllPerfect) isRule()    {}
func (LevelComplete) isRule() {}
func (TimeOfDay) isRule()     {}

// Rules maps badge IDs to their unlock rule.
type Rules map[string]Rule

// DefaultRules returns the built-in rule table.
func DefaultRules() Rules {
	return Rules{
		"first-lesson":   Threshold{Metric: MetricTopics, Min: 1},
		"topics-5":       Threshold{Metric: MetricTopics, Min: 5},
		"topics-10":      Threshold{Metric: MetricTopics, Min: 10},
		"topics-25":      Threshold{Metric: MetricTopics, Min: 25},
		"xp-100":         Threshold{Metric: MetricXP, Min: 100},
		"xp-500":         Threshold{Metric: MetricXP, Min: 500},
		"xp-1000":        Threshold{Metric: MetricXP, Min: 1000},
		"xp-5000":        Threshold{Metric: MetricXP, Min: 5000},
		"streak-3":       Threshold{Metric: MetricStreak, Min: 3},
		"streak-7":       Threshold{Metric: MetricStreak, Min: 7},
		"streak-30":      Threshold{Metric: MetricStreak, Min: 30},
		"word-learner":   Threshold{Metric: MetricWords, Min: 10},
		"word-collector": Threshold{Metric: MetricWords, Min: 50},
		"word-master":    Threshold{Metric: MetricWords, Min: 200},
		"perfect-score":  PerfectCount{Min: 1},
		"perfect-5":      PerfectCount{Min: 5},
		"perfectionist":  AllPerfect{MinTopics: 5},
		"level-a1":       LevelComplete{Level: "A1"},
		"level-a2":       LevelComplete{Level: "A2"},
		"level-b1":       LevelComplete{Level: "B1"},
		"early-bird":     TimeOfDay{StartHour: 5, EndHour: 9},
		"night-owl":      TimeOfDay{StartHour: 22, EndHour: 24},
	}
}

// Levels returns the sorted course levels referenced by LevelComplete rules.
func Levels(rules Rules) []string {
	set := make(map[string]struct{})
	for _, r := range rules {
		if lc, ok := r.(LevelComplete); ok && lc.Level != "" {
			set[lc.Level] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Missing returns the catalog IDs with no rule in rules, in catalog order.
func (rules Rules) Missing(catalog []Metadata) []string {
	var out []string
	for _, m := range catalog {
		if rules[m.ID] == nil {
			out = append(out, m.ID)
		}
	}
	return out
}

// Check evaluates rule against snap. The fraction is the progress toward
// unlocking and is not clamped here. A nil or unrecognised rule is locked.
func Check(rule Rule, snap progress.State, topicsByLevel map[string][]string) (bool, float64) {
	switch r := rule.(type) {
	case Threshold:
		v := metricValue(r.Metric, snap)
		if r.Min <= 0 {
			return v >= 0, 1
		}
		return v >= r.Min, float64(v) / float64(r.Min)

	case PerfectCount:
		n := countPerfect(snap)
		if r.Min <= 0 {
			return true, 1
		}
		return n >= r.Min, float64(n) / float64(r.Min)

	case AllPerfect:
		completed := len(snap.CompletedTopics)
		perfect := countPerfect(snap)
		need := max(completed, r.MinTopics, 1)
		return completed >= r.MinTopics && completed > 0 && perfect == completed,
			float64(perfect) / float64(need)

	case LevelComplete:
		ids := topicsByLevel[r.Level]
		if len(ids) == 0 {
			return false, 0
		}
		done := 0
		for _, id := range ids {
			if _, ok := snap.CompletedTopics[id]; ok {
				done++
			}
		}
		return done == len(ids), float64(done) / float64(len(ids))

	case TimeOfDay:
		if snap.LastStudyHour == nil {
			return false, 0
		}
		if inBand(*snap.LastStudyHour, r.StartHour, r.EndHour) {
			return true, 1
		}
		return false, 0

	default:
		return false, 0
	}
}

func metricValue(m Metric, snap progress.State) int {
	switch m {
	case MetricXP:
		return snap.XP
	case MetricStreak:
		return snap.Streak
	case MetricWords:
		return len(snap.WordHistory)
	case MetricTopics:
		return len(snap.CompletedTopics)
	default:
		return 0
	}
}

func countPerfect(snap progress.State) int {
	n := 0
	for _, rec := range snap.CompletedTopics {
		if rec.BestScore >= 100 {
			n++
		}
	}
	return n
}

func inBand(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
