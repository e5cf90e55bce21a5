package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/fika/internal/badges"
)

//go:embed catalog.schema.json
var catalogSchemaJSON []byte

const catalogSchemaURL = "schema://fika/catalog.json"

var (
	catalogSchemaOnce sync.Once
	catalogSchema     *jsonschema.Schema
	catalogSchemaErr  error
)

// ErrInvalidCatalog is returned when a badge catalog fails validation.
type ErrInvalidCatalog struct {
	Err error
}

func (e *ErrInvalidCatalog) Error() string {
	return fmt.Sprintf("invalid badge catalog: %v", e.Err)
}

func (e *ErrInvalidCatalog) Unwrap() error {
	return e.Err
}

type catalogFile struct {
	Badges []badges.Metadata `json:"badges"`
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	catalogSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(catalogSchemaJSON))
		if err != nil {
			catalogSchemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, doc); err != nil {
			catalogSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		catalogSchema, catalogSchemaErr = c.Compile(catalogSchemaURL)
	})
	return catalogSchema, catalogSchemaErr
}

// LoadCatalog reads a JSON badge catalog of the form {"badges": [...]} and
// validates it before returning the entries.
func LoadCatalog(r io.Reader) ([]badges.Metadata, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ErrInvalidCatalog{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &ErrInvalidCatalog{Err: err}
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &ErrInvalidCatalog{Err: err}
	}
	seen := make(map[string]bool, len(file.Badges))
	for _, b := range file.Badges {
		if seen[b.ID] {
			return nil, &ErrInvalidCatalog{Err: fmt.Errorf("duplicate badge id %q", b.ID)}
		}
		seen[b.ID] = true
	}
	return file.Badges, nil
}

// DefaultCatalog returns the built-in catalog. Every entry has a rule in
// badges.DefaultRules.
func DefaultCatalog() []badges.Metadata {
	return []badges.Metadata{
		{ID: "first-lesson", Icon: "🌱", Name: "Första lektionen", Description: "Complete your first topic", Category: badges.CategoryBeginner, SortOrder: 1},
		{ID: "word-learner", Icon: "💬", Name: "Ordförrådet växer", Description: "Review 10 different words", Category: badges.CategoryBeginner, SortOrder: 2},
		{ID: "xp-100", Icon: "⭐", Name: "Hundra poäng", Description: "Earn 100 XP", Category: badges.CategoryBeginner, SortOrder: 3},
		{ID: "topics-5", Icon: "📘", Name: "Fem ämnen", Description: "Complete 5 topics", Category: badges.CategoryProgress, SortOrder: 10},
		{ID: "topics-10", Icon: "📗", Name: "Tio ämnen", Description: "Complete 10 topics", Category: badges.CategoryProgress, SortOrder: 11},
		{ID: "topics-25", Icon: "📚", Name: "Bokmal", Description: "Complete 25 topics", Category: badges.CategoryProgress, SortOrder: 12},
		{ID: "xp-500", Icon: "🌟", Name: "Femhundra poäng", Description: "Earn 500 XP", Category: badges.CategoryProgress, SortOrder: 13},
		{ID: "xp-1000", Icon: "💫", Name: "Tusen poäng", Description: "Earn 1000 XP", Category: badges.CategoryProgress, SortOrder: 14},
		{ID: "xp-5000", Icon: "🚀", Name: "Femtusen poäng", Description: "Earn 5000 XP", Category: badges.CategoryProgress, SortOrder: 15},
		{ID: "word-collector", Icon: "🗂️", Name: "Ordsamlare", Description: "Review 50 different words", Category: badges.CategoryProgress, SortOrder: 16},
		{ID: "perfect-score", Icon: "🎯", Name: "Full pott", Description: "Score 100% on a topic", Category: badges.CategoryMastery, SortOrder: 20},
		{ID: "perfect-5", Icon: "🏹", Name: "Prickskytt", Description: "Score 100% on 5 topics", Category: badges.CategoryMastery, SortOrder: 21},
		{ID: "perfectionist", Icon: "💎", Name: "Perfektionist", Description: "Score 100% on every completed topic, at least 5", Category: badges.CategoryMastery, SortOrder: 22},
		{ID: "word-master", Icon: "🧠", Name: "Ordmästare", Description: "Review 200 different words", Category: badges.CategoryMastery, SortOrder: 23},
		{ID: "level-a1", Icon: "🇸🇪", Name: "A1 avklarad", Description: "Complete every A1 topic", Category: badges.CategoryMastery, SortOrder: 24},
		{ID: "level-a2", Icon: "🏅", Name: "A2 avklarad", Description: "Complete every A2 topic", Category: badges.CategoryMastery, SortOrder: 25},
		{ID: "level-b1", Icon: "🏆", Name: "B1 avklarad", Description: "Complete every B1 topic", Category: badges.CategoryMastery, SortOrder: 26},
		{ID: "streak-3", Icon: "🔥", Name: "Tre dagar", Description: "Study 3 days in a row", Category: badges.CategoryStreak, SortOrder: 30},
		{ID: "streak-7", Icon: "⚡", Name: "En vecka", Description: "Study 7 days in a row", Category: badges.CategoryStreak, SortOrder: 31},
		{ID: "streak-30", Icon: "🌋", Name: "En månad", Description: "Study 30 days in a row", Category: badges.CategoryStreak, SortOrder: 32},
		{ID: "early-bird", Icon: "🐦", Name: "Morgonpigg", Description: "Finish a topic between 05:00 and 09:00", Category: badges.CategorySpecial, SortOrder: 40},
		{ID: "night-owl", Icon: "🦉", Name: "Nattuggla", Description: "Finish a topic after 22:00", Category: badges.CategorySpecial, SortOrder: 41},
	}
}
