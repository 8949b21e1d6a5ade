package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"medigrip/internal/domain"
)

// RenderHome renders the landing screen
func RenderHome(st *Styles, role domain.Role) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("medigrip") + "\n\n")
	b.WriteString("Terminal dashboard for medical-aid administration.\n\n")
	b.WriteString(fmt.Sprintf("Signed in as %s.\n\n", st.FilterTag.Render(string(role))))
	b.WriteString(st.Help.Render("/ search   m members   c claims   s schemes   p providers   ? help   q quit"))
	return b.String()
}

// RenderMembers renders the member listing, optionally noting the
// active member-id filter.
func RenderMembers(st *Styles, members []domain.Member, filterID domain.ID, cursor, width int) string {
	title := "Members"
	if filterID != "" {
		title += st.FilterTag.Render(fmt.Sprintf("  (member %s — x to clear)", filterID))
	}
	rows := make([][]string, len(members))
	for i, m := range members {
		rows[i] = []string{m.MemberNumber, m.FullName(), m.SchemeName, m.Status}
	}
	return renderTable(st, title, []string{"NUMBER", "NAME", "SCHEME", "STATUS"}, rows, cursor, width)
}

// RenderClaims renders the claim listing
func RenderClaims(st *Styles, claims []domain.Claim, cursor, width int) string {
	rows := make([][]string, len(claims))
	for i, c := range claims {
		rows[i] = []string{c.ClaimNumber, c.MemberName, c.ProviderName, fmt.Sprintf("%.2f", c.Amount), c.Status}
	}
	return renderTable(st, "Claims", []string{"NUMBER", "MEMBER", "PROVIDER", "AMOUNT", "STATUS"}, rows, cursor, width)
}

// RenderSchemes renders the scheme listing
func RenderSchemes(st *Styles, schemes []domain.Scheme, cursor, width int) string {
	rows := make([][]string, len(schemes))
	for i, s := range schemes {
		rows[i] = []string{s.Code, s.Name, fmt.Sprintf("%d", s.MemberCount), s.Status}
	}
	return renderTable(st, "Schemes", []string{"CODE", "NAME", "MEMBERS", "STATUS"}, rows, cursor, width)
}

// RenderSchemeDetail renders a single scheme's page
func RenderSchemeDetail(st *Styles, scheme domain.Scheme) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Scheme "+scheme.Name) + "\n\n")
	field := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", st.Dim.Render(label+":"), value))
		}
	}
	field("code", scheme.Code)
	field("description", scheme.Description)
	field("members", fmt.Sprintf("%d", scheme.MemberCount))
	field("status", scheme.Status)
	b.WriteString("\n" + st.Help.Render("s back to schemes"))
	return b.String()
}

// RenderProviders renders the provider listing
func RenderProviders(st *Styles, providers []domain.Provider, cursor, width int) string {
	rows := make([][]string, len(providers))
	for i, p := range providers {
		rows[i] = []string{p.PracticeCode, p.Name, p.Specialty, p.Status}
	}
	return renderTable(st, "Providers", []string{"CODE", "NAME", "SPECIALTY", "STATUS"}, rows, cursor, width)
}

// RenderLoadError renders the silent-degradation line for a failed list
// fetch: the error itself went to the log.
func RenderLoadError(st *Styles, what string) string {
	return st.StatusError.Render(fmt.Sprintf("could not load %s", what))
}

// renderTable renders a simple fixed-column table with a cursor row
func renderTable(st *Styles, title string, headers []string, rows [][]string, cursor, width int) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(title) + "\n\n")

	widths := columnWidths(headers, rows)

	var head strings.Builder
	for i, h := range headers {
		head.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	b.WriteString(st.Header.Render(strings.TrimRight(head.String(), " ")) + "\n")

	if len(rows) == 0 {
		b.WriteString(st.Dim.Render("no records"))
		return b.String()
	}

	for r, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
		}
		text := ansi.Truncate(strings.TrimRight(line.String(), " "), width, "…")
		if r == cursor {
			text = st.RowActive.Render(pad(text, min(width, tableWidth(widths))))
		}
		b.WriteString(text + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total - 2
}
