package views

import (
	"github.com/charmbracelet/lipgloss"

	"medigrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	SearchBar   lipgloss.Style
	FilterTag   lipgloss.Style
	Panel       lipgloss.Style
	RowActive   lipgloss.Style
	Subtitle    lipgloss.Style
	InfoBox     lipgloss.Style
	ClaimBox    lipgloss.Style
	Header      lipgloss.Style
	Badge       map[domain.EntityType]lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		SearchBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		FilterTag: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		RowActive: lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		ClaimBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Badge: map[domain.EntityType]lipgloss.Style{
			domain.EntityScheme:      badge("39"),
			domain.EntityClaim:       badge("203"),
			domain.EntityMember:      badge("42"),
			domain.EntityProvider:    badge("214"),
			domain.EntityServiceType: badge("135"),
			domain.EntityBenefitType: badge("81"),
		},
		Help: lipgloss.NewStyle().Faint(true),
	}
}
