package badges

import (
	"time"

	"github.com/abhisek/fika/internal/store"
)

// Category groups badges on the badge board.
type Category string

const (
	CategoryBeginner Category = "beginner"
	CategoryProgress Category = "progress"
	CategoryMastery  Category = "mastery"
	CategoryStreak   Category = "streak"
	CategorySpecial  Category = "special"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryBeginner, CategoryProgress, CategoryMastery, CategoryStreak, CategorySpecial}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBeginner:
		return "Nybörjare"
	case CategoryProgress:
		return "Framsteg"
	case CategoryMastery:
		return "Mästerskap"
	case CategoryStreak:
		return "Svit"
	case CategorySpecial:
		return "Special"
	default:
		return string(c)
	}
}

// Icon returns the display icon for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryBeginner:
		return "🌱"
	case CategoryProgress:
		return "📈"
	case CategoryMastery:
		return "🏆"
	case CategoryStreak:
		return "🔥"
	case CategorySpecial:
		return "✨"
	default:
		return "✦"
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range AllCategories() {
		if c == k {
			return true
		}
	}
	return false
}

// Metadata is one catalog entry.
type Metadata struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	SortOrder   int      `json:"sortOrder"`
}

// WithStatus is a catalog entry evaluated against one progress snapshot.
type WithStatus struct {
	Metadata
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
	ProgressPct int        `json:"progressPct"`
}

// FromRecord converts a stored catalog row.
func FromRecord(r store.BadgeRecord) Metadata {
	return Metadata{
		ID:          r.ID,
		Icon:        r.Icon,
		Name:        r.Name,
		Description: r.Description,
		Category:    Category(r.Category),
		SortOrder:   r.SortOrder,
	}
}

// Record converts m to its stored form.
func (m Metadata) Record() store.BadgeRecord {
	return store.BadgeRecord{
		ID:          m.ID,
		Icon:        m.Icon,
		Name:        m.Name,
		Description: m.Description,
		Category:    string(m.Category),
		SortOrder:   m.SortOrder,
	}
}
