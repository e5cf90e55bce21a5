package progress

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// DefaultStateKey is the fixed device storage key for the progress record.
const DefaultStateKey = "fika-progress"

// recordVersion tags the serialized layout so it can evolve.
const recordVersion = 1

// State is the learner's progress. Only the Cache mutates it; everything
// handed out by the Cache is a copy.
type State struct {
	XP              int                    `json:"xp"`
	Streak          int                    `json:"streak"`
	CompletedTopics map[string]TopicRecord `json:"completedTopics"`
	WordHistory     map[string]WordRecord  `json:"wordHistory"`
	LastActivity    time.Time              `json:"lastActivity"`
	LastStudyHour   *int                   `json:"lastStudyHour,omitempty"`
	UserID          string                 `json:"userId,omitempty"` // empty for anonymous users
}

// TopicRecord is the result history of one topic.
type TopicRecord struct {
	Score       int       `json:"score"`     // percentage of the most recent attempt
	BestScore   int       `json:"bestScore"` // never decreases
	Attempts    int       `json:"attempts"`
	CompletedAt time.Time `json:"completedAt"` // first completion; never rewritten
}

// WordRecord counts review outcomes for one word.
type WordRecord struct {
	Correct  int       `json:"correct"`
	Wrong    int       `json:"wrong"`
	LastSeen time.Time `json:"lastSeen"`
}

// Partial carries the fields SaveProgress overwrites. Nil fields are kept.
type Partial struct {
	XP              *int
	Streak          *int
	CompletedTopics map[string]TopicRecord
	WordHistory     map[string]WordRecord
	LastActivity    *time.Time
	LastStudyHour   *int
}

// NewState returns zeroed progress for an anonymous user.
func NewState() State {
	return State{
		CompletedTopics: make(map[string]TopicRecord),
		WordHistory:     make(map[string]WordRecord),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.CompletedTopics = maps.Clone(s.CompletedTopics)
	if out.CompletedTopics == nil {
		out.CompletedTopics = make(map[string]TopicRecord)
	}
	out.WordHistory = maps.Clone(s.WordHistory)
	if out.WordHistory == nil {
		out.WordHistory = make(map[string]WordRecord)
	}
	if s.LastStudyHour != nil {
		h := *s.LastStudyHour
		out.LastStudyHour = &h
	}
	return out
}

// Anonymous reports whether no user is attached.
func (s State) Anonymous() bool {
	return s.UserID == ""
}

type record struct {
	Version int   `json:"version"`
	State   State `json:"state"`
}

func encodeState(s State) ([]byte, error) {
	return json.Marshal(record{Version: recordVersion, State: s})
}

func decodeState(b []byte) (State, error) {
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return NewState(), fmt.Errorf("unmarshal progress record: %w", err)
	}
	if rec.Version != recordVersion {
		return NewState(), fmt.Errorf("unsupported progress record version %d", rec.Version)
	}
	s := rec.State
	if s.XP < 0 || s.Streak < 0 {
		return NewState(), fmt.Errorf("progress record has negative counters")
	}
	if s.LastStudyHour != nil && (*s.LastStudyHour < 0 || *s.LastStudyHour > 23) {
		s.LastStudyHour = nil
	}
	return s.Clone(), nil
}
