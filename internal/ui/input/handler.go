package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the active key-handling mode
type Mode int

// Modes
const (
	ModeBrowse Mode = iota // keys drive screens and navigation
	ModeSearch             // keys go to the search input
)

// Handler owns the search text input and the browse/search mode switch
type Handler struct {
	mode      Mode
	textInput textinput.Model
}

// New creates an input handler in browse mode
func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "search members, claims, schemes…"
	ti.CharLimit = 80
	ti.Prompt = "/ "

	return &Handler{
		mode:      ModeBrowse,
		textInput: ti,
	}
}

// Mode returns the current input mode
func (h *Handler) Mode() Mode {
	return h.mode
}

// FocusSearch switches to search mode and focuses the input
func (h *Handler) FocusSearch() tea.Cmd {
	h.mode = ModeSearch
	h.textInput.Focus()
	return textinput.Blink
}

// BlurSearch leaves search mode, keeping the typed text
func (h *Handler) BlurSearch() {
	h.mode = ModeBrowse
	h.textInput.Blur()
}

// ResetSearch clears the input and leaves search mode
func (h *Handler) ResetSearch() {
	h.textInput.Reset()
	h.BlurSearch()
}

// Update forwards a message to the text input while in search mode and
// reports whether the text changed.
func (h *Handler) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	if h.mode != ModeSearch {
		return false, nil
	}
	before := h.textInput.Value()
	h.textInput, cmd = h.textInput.Update(msg)
	return h.textInput.Value() != before, cmd
}

// Value returns the current input text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetWidth sizes the input control
func (h *Handler) SetWidth(w int) {
	h.textInput.Width = w
}

// View renders the text input
func (h *Handler) View() string {
	return h.textInput.View()
}
