package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"medigrip/internal/domain"
)

// ResultRows is how many terminal rows the rendered panel occupies,
// frame included. The dismisser's row hit-testing depends on each
// result taking exactly one row.
func ResultRows(count int, loading bool) int {
	if loading && count == 0 {
		return 3 // frame + the loading row
	}
	return count + 2
}

// RenderResults renders the search results panel at the given outer
// width. One row per result, server order, active row highlighted.
func RenderResults(st *Styles, results []domain.SearchResult, selected int, loading bool, width int) string {
	inner := width - 2
	if inner < 4 {
		inner = 4
	}

	var rows []string
	if loading && len(results) == 0 {
		rows = append(rows, st.Dim.Render(pad("searching…", inner)))
	}
	for i, r := range results {
		badge := st.Badge[r.Type].Render(fmt.Sprintf("%-12s", entityLabel(r.Type)))
		line := badge + " " + r.Title
		if r.Subtitle != "" {
			line += st.Subtitle.Render("  " + r.Subtitle)
		}
		line = ansi.Truncate(line, inner, "…")
		line = pad(line, inner)
		if i == selected {
			line = st.RowActive.Render(line)
		}
		rows = append(rows, line)
	}

	body := strings.Join(rows, "\n")
	return st.Panel.Width(inner).Render(body)
}

// entityLabel is the badge text for an entity type
func entityLabel(t domain.EntityType) string {
	switch t {
	case domain.EntityServiceType:
		return "service"
	case domain.EntityBenefitType:
		return "benefit"
	default:
		return string(t)
	}
}

// pad right-pads a line to the given display width
func pad(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
