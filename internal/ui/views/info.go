package views

import (
	"fmt"
	"sort"
	"strings"

	"medigrip/internal/domain"
)

// RenderInfoPanel renders the generic read-only info panel for a search
// result: title, subtitle, and whatever metadata the server attached.
// This is the fallback destination for every result the current role
// may see but not browse.
func RenderInfoPanel(st *Styles, result domain.SearchResult) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(result.Title))
	b.WriteString("\n")
	b.WriteString(st.Badge[result.Type].Render(entityLabel(result.Type)))
	if result.Subtitle != "" {
		b.WriteString("  " + st.Subtitle.Render(result.Subtitle))
	}

	if len(result.Metadata) > 0 {
		b.WriteString("\n")
		keys := make([]string, 0, len(result.Metadata))
		for k := range result.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n%s %v", st.Dim.Render(k+":"), result.Metadata[k]))
		}
	}

	b.WriteString("\n\n" + st.Help.Render("esc to close"))
	return st.InfoBox.Render(b.String())
}

// RenderClaimDetail renders the claim detail modal from the full record
func RenderClaimDetail(st *Styles, claim domain.Claim) string {
	var b strings.Builder

	b.WriteString(st.Title.Render("Claim " + claim.ClaimNumber))
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", st.Dim.Render(label+":"), value))
		}
	}
	field("member", claim.MemberName)
	field("provider", claim.ProviderName)
	field("service date", claim.ServiceDate)
	field("amount", fmt.Sprintf("%.2f", claim.Amount))
	field("status", claim.Status)
	field("notes", claim.Notes)

	b.WriteString("\n" + st.Help.Render("esc to close"))
	return st.ClaimBox.Render(b.String())
}
