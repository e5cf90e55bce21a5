package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/fika/internal/store"
)

// ImportConfig describes the layout of a topic spreadsheet.
type ImportConfig struct {
	SheetName   string // Sheet to read; empty means the first sheet
	IDColumn    string
	LevelColumn string
	TitleColumn string
	StartRow    int // 1-based; rows above it are headers
}

// DefaultImportConfig reads topic_id | level | title from the first sheet,
// skipping one header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:    "A",
		LevelColumn: "B",
		TitleColumn: "C",
		StartRow:    2,
	}
}

// ImportResult holds the topics read from a spreadsheet. Rows that could
// not be used are reported in Errors and left out of Topics.
type ImportResult struct {
	Topics  []store.TopicRecord
	Skipped int
	Errors  []string
}

// ImportTopics reads topics from the .xlsx file at path.
func ImportTopics(path string, cfg ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	return importTopics(f, cfg)
}

// ImportTopicsFrom reads topics from an .xlsx stream.
func ImportTopicsFrom(r io.Reader, cfg ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	return importTopics(f, cfg)
}

func importTopics(f *excelize.File, cfg ImportConfig) (*ImportResult, error) {
	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	idCol, levelCol, titleCol := columnToIndex(cfg.IDColumn), columnToIndex(cfg.LevelColumn), columnToIndex(cfg.TitleColumn)
	result := &ImportResult{}
	seen := make(map[string]int)
	positions := make(map[string]int)

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < cfg.StartRow {
			continue
		}
		id, level, title := cell(row, idCol), strings.ToUpper(cell(row, levelCol)), cell(row, titleCol)
		if id == "" && level == "" && title == "" {
			result.Skipped++
			continue
		}
		switch {
		case id == "":
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing topic id", rowNum))
			continue
		case level == "":
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: topic %q has no level", rowNum, id))
			continue
		}
		if first, dup := seen[id]; dup {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: topic %q already defined on row %d", rowNum, id, first))
			continue
		}
		seen[id] = rowNum

		positions[level]++
		result.Topics = append(result.Topics, store.TopicRecord{
			ID:       id,
			Level:    level,
			Title:    title,
			Position: positions[level],
		})
	}
	return result, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}

// DefaultTopics returns a small starter course used by `fika content seed`.
func DefaultTopics() []store.TopicRecord {
	return []store.TopicRecord{
		{ID: "a1-greetings", Level: "A1", Title: "Hälsningar", Position: 1},
		{ID: "a1-numbers", Level: "A1", Title: "Siffror", Position: 2},
		{ID: "a1-food", Level: "A1", Title: "Mat och fika", Position: 3},
		{ID: "a1-family", Level: "A1", Title: "Familjen", Position: 4},
		{ID: "a2-travel", Level: "A2", Title: "Resor", Position: 1},
		{ID: "a2-weather", Level: "A2", Title: "Vädret", Position: 2},
		{ID: "a2-shopping", Level: "A2", Title: "Att handla", Position: 3},
		{ID: "b1-work", Level: "B1", Title: "Arbetsliv", Position: 1},
		{ID: "b1-society", Level: "B1", Title: "Samhället", Position: 2},
	}
}
