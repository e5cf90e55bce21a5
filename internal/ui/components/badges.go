package components

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/ui/theme"
)

// BadgeLine renders one badge as a single row.
func BadgeLine(b badges.WithStatus, width int) string {
	name := fmt.Sprintf("%s %s", b.Icon, b.Name)
	if b.Unlocked {
		line := theme.Unlocked.Render("✓ " + name)
		if b.UnlockedAt != nil {
			line += "  " + theme.Hint.Render(b.UnlockedAt.Local().Format("2006-01-02"))
		}
		return line
	}
	return NewProgressBar(theme.Locked.Render("· "+name), float64(b.ProgressPct)/100, true, width).View()
}

// BadgeBoard renders every badge grouped by category, followed by the
// closest locked badges.
func BadgeBoard(st badges.Status, width int) string {
	if st.Loading {
		return theme.Hint.Render("Loading badges…")
	}

	byCat := make(map[badges.Category][]badges.WithStatus)
	for _, b := range st.All {
		byCat[b.Category] = append(byCat[b.Category], b)
	}

	var sections []string
	sections = append(sections, theme.Title.Render(
		fmt.Sprintf("Badges  %d/%d", len(st.Unlocked), len(st.All))))

	cats := badges.AllCategories()
	for c := range byCat {
		if !c.Valid() {
			cats = append(cats, c)
		}
	}
	for _, c := range cats {
		list := byCat[c]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool { return list[i].SortOrder < list[j].SortOrder })
		lines := []string{theme.Heading.Render(c.Icon() + " " + c.DisplayName())}
		for _, b := range list {
			lines = append(lines, "  "+BadgeLine(b, width-2))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(st.Next) > 0 {
		lines := []string{theme.Heading.Render("Next up")}
		for _, b := range st.Next {
			lines = append(lines, fmt.Sprintf("  %s %s  %s", b.Icon, b.Name,
				theme.Hint.Render(fmt.Sprintf("%d%%", b.ProgressPct))))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n")
}

// ProgressSummary renders the headline counters for s.
func ProgressSummary(s progress.State, width int) string {
	user := "anonymous"
	if !s.Anonymous() {
		user = s.UserID
	}
	rows := []string{
		theme.Title.Render("Fika progress") + "  " + theme.Hint.Render(user),
		fmt.Sprintf("⭐ XP       %d", s.XP),
		fmt.Sprintf("🔥 Streak   %d", s.Streak),
		fmt.Sprintf("📚 Topics   %d", len(s.CompletedTopics)),
		fmt.Sprintf("💬 Words    %d", len(s.WordHistory)),
	}
	if !s.LastActivity.IsZero() {
		rows = append(rows, theme.Hint.Render("last active "+s.LastActivity.Local().Format("2006-01-02 15:04")))
	}

	if len(s.CompletedTopics) > 0 {
		ids := make([]string, 0, len(s.CompletedTopics))
		for id := range s.CompletedTopics {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		rows = append(rows, "")
		for _, id := range ids {
			rec := s.CompletedTopics[id]
			rows = append(rows, NewProgressBar(id, float64(rec.BestScore)/100, true, width-6).View())
		}
	}
	return theme.Card.Width(width).Render(strings.Join(rows, "\n"))
}

// Toast renders a boxed unlock announcement.
func Toast(icon, name, description string) string {
	body := theme.Unlocked.Render(fmt.Sprintf("%s %s unlocked!", icon, name))
	if description != "" {
		body += "\n" + theme.Body.Render(description)
	}
	return theme.Toast.Render(body)
}

// Width reports the rendered width of s, ignoring escape sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}
