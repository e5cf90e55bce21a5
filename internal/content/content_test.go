package content

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/store"
)

func writeSheet(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &row))
	}
	return f
}

func TestImportTopics(t *testing.T) {
	f := writeSheet(t, [][]any{
		{"topic_id", "level", "title"},
		{"a1-greetings", "a1", "Hälsningar"},
		{"a1-food", "A1", "Mat"},
		{},
		{"a2-travel", "A2", "Resor"},
		{"a1-food", "A1", "Mat igen"},
		{"a1-colors", "", "Färger"},
	})
	path := filepath.Join(t.TempDir(), "topics.xlsx")
	require.NoError(t, f.SaveAs(path))

	res, err := ImportTopics(path, DefaultImportConfig())
	require.NoError(t, err)

	require.Len(t, res.Topics, 3)
	assert.Equal(t, "a1-greetings", res.Topics[0].ID)
	assert.Equal(t, "A1", res.Topics[0].Level, "levels are upper-cased")
	assert.Equal(t, 2, res.Topics[1].Position)
	assert.Equal(t, 1, res.Topics[2].Position, "positions count per level")
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "already defined on row 3")
	assert.Contains(t, res.Errors[1], "no level")
}

func TestImportTopicsFromReader(t *testing.T) {
	f := writeSheet(t, [][]any{
		{"b1-work", "B1", "Arbetsliv"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	cfg := DefaultImportConfig()
	cfg.StartRow = 1
	res, err := ImportTopicsFrom(bytes.NewReader(buf.Bytes()), cfg)
	require.NoError(t, err)
	require.Len(t, res.Topics, 1)
	assert.Equal(t, "Arbetsliv", res.Topics[0].Title)
}

func TestImportTopicsMissingFile(t *testing.T) {
	_, err := ImportTopics(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultImportConfig())
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 2, columnToIndex("c"))
	assert.Equal(t, 26, columnToIndex("AA"))
}

func TestLoadCatalog(t *testing.T) {
	in := `{"badges": [
		{"id": "xp-100", "icon": "⭐", "name": "Hundra", "category": "progress", "sortOrder": 2},
		{"id": "first-lesson", "icon": "🌱", "name": "Första", "description": "Finish a topic", "category": "beginner"}
	]}`
	got, err := LoadCatalog(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, badges.CategoryProgress, got[0].Category)
	assert.Equal(t, 2, got[0].SortOrder)
	assert.Equal(t, "Finish a topic", got[1].Description)
}

func TestLoadCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", `{"badges": [`},
		{"empty", `{"badges": []}`},
		{"unknown category", `{"badges": [{"id": "x", "icon": "x", "name": "x", "category": "legendary"}]}`},
		{"missing name", `{"badges": [{"id": "x", "icon": "x", "category": "special"}]}`},
		{"bad id", `{"badges": [{"id": "Has Space", "icon": "x", "name": "x", "category": "special"}]}`},
		{"duplicate", `{"badges": [
			{"id": "x", "icon": "x", "name": "x", "category": "special"},
			{"id": "x", "icon": "y", "name": "y", "category": "special"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.in))
			var invalid *ErrInvalidCatalog
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestDefaultCatalogMatchesRules(t *testing.T) {
	rules := badges.DefaultRules()
	catalog := DefaultCatalog()
	assert.Len(t, catalog, len(rules))

	seen := map[string]bool{}
	for _, m := range catalog {
		assert.Contains(t, rules, m.ID)
		assert.True(t, m.Category.Valid(), m.ID)
		assert.False(t, seen[m.ID], "duplicate %s", m.ID)
		seen[m.ID] = true
	}
}

func TestDefaultTopicsCoverRuleLevels(t *testing.T) {
	levels := map[string]bool{}
	for _, tp := range DefaultTopics() {
		levels[tp.Level] = true
	}
	for _, l := range badges.Levels(badges.DefaultRules()) {
		assert.True(t, levels[l], l)
	}
}

func TestSeedIsRepeatable(t *testing.T) {
	s, err := store.Open("file:TestSeedIsRepeatable?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	for range 2 {
		nb, nt, err := Seed(ctx, s.ContentRepo())
		require.NoError(t, err)
		assert.Equal(t, len(DefaultCatalog()), nb)
		assert.Equal(t, len(DefaultTopics()), nt)
	}

	all, err := s.ProfileRepo().FetchAllBadges(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(DefaultCatalog()))

	levels, err := s.ContentRepo().TopicLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "B1"}, levels)
}
