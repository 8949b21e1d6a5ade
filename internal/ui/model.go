package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"medigrip/internal/api"
	"medigrip/internal/config"
	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
	"medigrip/internal/ui/coordinator"
	"medigrip/internal/ui/input"
	"medigrip/internal/ui/panel"
	"medigrip/internal/ui/services/routing"
	"medigrip/internal/ui/services/search"
	"medigrip/internal/ui/views"
)

// Screen identifies the visible dashboard screen
type Screen int

// Screens
const (
	ScreenHome Screen = iota
	ScreenMembers
	ScreenClaims
	ScreenSchemes
	ScreenSchemeDetail
	ScreenProviders
)

// Modal identifies the open modal overlay, if any
type Modal int

// Modals
const (
	ModalNone Modal = iota
	ModalInfo
	ModalClaim
	ModalHelp
)

// Messages produced by commands

type debounceMsg struct {
	ticket uint64
}

type searchResultMsg struct {
	sequence uint64
	results  []domain.SearchResult
	err      error
}

type claimLoadedMsg struct {
	claim *domain.Claim
	err   error
}

type membersLoadedMsg struct {
	members []domain.Member
	err     error
}

type claimsLoadedMsg struct {
	claims []domain.Claim
	err    error
}

type schemesLoadedMsg struct {
	schemes []domain.Scheme
	err     error
}

type schemeLoadedMsg struct {
	scheme *domain.Scheme
	err    error
}

type providersLoadedMsg struct {
	providers []domain.Provider
	err       error
}

// Model is the root bubbletea model for the dashboard
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	client *api.Client
	log    *zap.Logger
	role   domain.Role

	coord  *coordinator.Coordinator
	input  *input.Handler
	styles *views.Styles
	keys   keyMap
	help   help.Model
	spin   spinner.Model

	width  int
	height int

	screen Screen
	modal  Modal

	infoResult  domain.SearchResult
	claimDetail domain.Claim

	members      []domain.Member
	memberFilter domain.ID
	claims       []domain.Claim
	schemes      []domain.Scheme
	schemeDetail domain.Scheme
	providers    []domain.Provider
	cursor       int
	loading      bool
	loadFailed   string // entity name of the last failed list fetch

	inputRect panel.Rect
	panelRect panel.Rect
	dismisser *panel.Dismisser
}

// NewModel creates the root model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client *api.Client, role domain.Role, log *zap.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:       bus,
		cfg:       cfg,
		client:    client,
		log:       log,
		role:      role,
		coord:     coordinator.New(bus, cfg.Search.MinLength),
		input:     input.New(),
		styles:    views.NewStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spin:      sp,
		dismisser: panel.NewDismisser(panel.Rect{}, panel.Rect{}),
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case debounceMsg:
		return m.handleDebounce(msg)
	case searchResultMsg:
		return m.handleSearchResult(msg)
	case claimLoadedMsg:
		return m.handleClaimLoaded(msg)
	case membersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.listFailed("members", msg.err)
		} else {
			m.members, m.loadFailed, m.cursor = msg.members, "", 0
		}
		return m, nil
	case claimsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.listFailed("claims", msg.err)
		} else {
			m.claims, m.loadFailed, m.cursor = msg.claims, "", 0
		}
		return m, nil
	case schemesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.listFailed("schemes", msg.err)
		} else {
			m.schemes, m.loadFailed, m.cursor = msg.schemes, "", 0
		}
		return m, nil
	case schemeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.listFailed("scheme", msg.err)
		} else {
			m.schemeDetail, m.loadFailed = *msg.scheme, ""
		}
		return m, nil
	case providersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.listFailed("providers", msg.err)
		} else {
			m.providers, m.loadFailed, m.cursor = msg.providers, "", 0
		}
		return m, nil
	case spinner.TickMsg:
		if m.loading || m.coord.Search.IsLoading() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// Key handling

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != ModalNone {
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal = ModalNone
		}
		return m, nil
	}

	if m.input.Mode() == input.ModeSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Escape empties the session and removes focus, open or not
		m.coord.Clear()
		m.input.ResetSearch()
		m.bus.Publish(domain.PanelDismissedEvent{Trigger: string(panel.TriggerCancel)})
		return m, nil

	// Arrow keys only: j/k must stay typeable in the input
	case msg.Type == tea.KeyDown:
		m.coord.Selection.MoveDown()
		return m, nil

	case msg.Type == tea.KeyUp:
		m.coord.Selection.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		action, ok := m.coord.Choose(m.role)
		if !ok {
			return m, nil
		}
		m.input.ResetSearch()
		return m, m.followRoute(action)

	case key.Matches(msg, m.keys.Filter):
		if m.coord.Search.CycleFilter() {
			q := m.coord.Search.Dispatch()
			return m, tea.Batch(m.searchCmd(q), m.spin.Tick)
		}
		return m, nil
	}

	changed, cmd := m.input.Update(msg)
	if !changed {
		return m, cmd
	}

	ticket, queued := m.coord.Search.Keystroke(m.input.Value())
	if !queued {
		// Below minimum length: panel already closed, nothing pending
		m.coord.Selection.Reset()
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debounceCmd(ticket))
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		// Global accelerator: focus the search input from any screen
		return m, m.input.FocusSearch()

	case key.Matches(msg, m.keys.Help):
		m.modal = ModalHelp
		return m, nil

	case key.Matches(msg, m.keys.Home):
		return m.switchScreen(ScreenHome)

	case key.Matches(msg, m.keys.Members):
		return m.switchScreen(ScreenMembers)

	case key.Matches(msg, m.keys.Claims):
		return m.switchScreen(ScreenClaims)

	case key.Matches(msg, m.keys.Schemes):
		return m.switchScreen(ScreenSchemes)

	case key.Matches(msg, m.keys.Providers):
		return m.switchScreen(ScreenProviders)

	case key.Matches(msg, m.keys.Reload):
		return m.switchScreen(m.screen)

	case key.Matches(msg, m.keys.ClearFlt):
		if m.screen == ScreenMembers && m.memberFilter != "" {
			m.memberFilter = ""
			return m.switchScreen(ScreenMembers)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}
	return m, nil
}

// Mouse handling: outside-press and outside-scroll dismissal, row clicks

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != ModalNone {
		return m, nil
	}

	panelOpen := m.coord.Search.IsOpen()

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if panelOpen {
			if row := m.dismisser.RowAt(msg.X, msg.Y); row >= 0 && row < m.coord.Search.ResultCount() {
				action, ok := m.coord.ChooseAt(row, m.role)
				if !ok {
					return m, nil
				}
				m.input.ResetSearch()
				return m, m.followRoute(action)
			}
			if m.dismisser.PressDismisses(msg.X, msg.Y) {
				m.dismissPanel(panel.TriggerOutside)
				m.input.BlurSearch()
			}
		}
		return m, nil

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if panelOpen {
			if m.dismisser.ScrollDismisses(msg.X, msg.Y) {
				m.dismissPanel(panel.TriggerViewport)
				return m, nil
			}
			// Inside the panel the wheel walks the result list
			if msg.Button == tea.MouseButtonWheelUp {
				m.coord.Selection.MoveUp()
			} else {
				m.coord.Selection.MoveDown()
			}
			return m, nil
		}
		if msg.Button == tea.MouseButtonWheelUp && m.cursor > 0 {
			m.cursor--
		} else if msg.Button == tea.MouseButtonWheelDown && m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.input.SetWidth(m.searchBarWidth() - 6)

	// Viewport change closes the panel; the typed text survives
	if m.coord.Search.IsOpen() || m.coord.Search.IsLoading() {
		m.dismissPanel(panel.TriggerViewport)
	}
	m.reposition()
	return m, nil
}

// Search plumbing

func (m *Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if !m.coord.Search.ShouldDispatch(msg.ticket) {
		return m, nil
	}
	q := m.coord.Search.Dispatch()
	m.reposition()
	return m, tea.Batch(m.searchCmd(q), m.spin.Tick)
}

func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.coord.Search.ApplyError(msg.sequence) {
			m.log.Warn("search query failed", zap.Uint64("sequence", msg.sequence), zap.Error(msg.err))
			m.bus.Publish(domain.ErrorEvent{Message: "search query failed", Err: msg.err})
		}
		return m, nil
	}

	if m.coord.ApplyResults(msg.sequence, msg.results) {
		m.reposition()
	}
	return m, nil
}

func (m *Model) handleClaimLoaded(msg claimLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Fail silently: the panel is already closed, nothing opens
		m.log.Warn("claim detail fetch failed", zap.Error(msg.err))
		m.bus.Publish(domain.ErrorEvent{Message: "claim detail fetch failed", Err: msg.err})
		return m, nil
	}
	m.claimDetail = *msg.claim
	m.modal = ModalClaim
	return m, nil
}

// followRoute acts on a routing decision
func (m *Model) followRoute(action routing.Action) tea.Cmd {
	switch action.Destination {
	case routing.DestClaimDetail:
		return m.claimCmd(action.EntityID)
	case routing.DestSchemePage:
		m.screen = ScreenSchemeDetail
		m.loading = true
		return tea.Batch(m.schemeCmd(action.EntityID), m.spin.Tick)
	case routing.DestMembersPage:
		m.screen = ScreenMembers
		m.memberFilter = action.EntityID
		m.loading = true
		return tea.Batch(m.membersCmd(action.EntityID), m.spin.Tick)
	default:
		m.infoResult = action.Result
		m.modal = ModalInfo
		return nil
	}
}

func (m *Model) switchScreen(s Screen) (tea.Model, tea.Cmd) {
	m.screen = s
	m.cursor = 0
	m.loadFailed = ""
	m.bus.Publish(domain.ScreenChangedEvent{Screen: m.screenName()})

	var cmd tea.Cmd
	switch s {
	case ScreenMembers:
		cmd = m.membersCmd(m.memberFilter)
	case ScreenClaims:
		cmd = m.claimsCmd()
	case ScreenSchemes:
		cmd = m.schemesCmd()
	case ScreenProviders:
		cmd = m.providersCmd()
	default:
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(cmd, m.spin.Tick)
}

func (m *Model) dismissPanel(trigger panel.Trigger) {
	m.coord.Dismiss()
	m.bus.Publish(domain.PanelDismissedEvent{Trigger: string(trigger)})
}

func (m *Model) listFailed(what string, err error) {
	m.loadFailed = what
	m.log.Warn("list fetch failed", zap.String("entity", what), zap.Error(err))
	m.bus.Publish(domain.ErrorEvent{Message: what + " fetch failed", Err: err})
}

// Commands

func (m *Model) debounceCmd(ticket uint64) tea.Cmd {
	return tea.Tick(m.cfg.Search.Debounce(), func(time.Time) tea.Msg {
		return debounceMsg{ticket: ticket}
	})
}

func (m *Model) searchCmd(q search.Query) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		resp, err := m.client.Search(ctx, q.Text, q.Filter, m.cfg.Search.Limit)
		if err != nil {
			return searchResultMsg{sequence: q.Sequence, err: err}
		}
		return searchResultMsg{sequence: q.Sequence, results: resp.Results}
	}
}

func (m *Model) claimCmd(id domain.ID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		claim, err := m.client.Claim(ctx, id)
		return claimLoadedMsg{claim: claim, err: err}
	}
}

func (m *Model) membersCmd(filter domain.ID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		members, err := m.client.Members(ctx, filter)
		return membersLoadedMsg{members: members, err: err}
	}
}

func (m *Model) claimsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		claims, err := m.client.Claims(ctx)
		return claimsLoadedMsg{claims: claims, err: err}
	}
}

func (m *Model) schemesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		schemes, err := m.client.Schemes(ctx)
		return schemesLoadedMsg{schemes: schemes, err: err}
	}
}

func (m *Model) schemeCmd(id domain.ID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		scheme, err := m.client.Scheme(ctx, id)
		return schemeLoadedMsg{scheme: scheme, err: err}
	}
}

func (m *Model) providersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		providers, err := m.client.Providers(ctx)
		return providersLoadedMsg{providers: providers, err: err}
	}
}

func (m *Model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cfg.API.Timeout())
}

// Geometry

func (m *Model) searchBarWidth() int {
	w := 64
	if m.width > 0 && w > m.width-2 {
		w = m.width - 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

// reposition recomputes the input and panel rectangles. Runs whenever
// the panel opens or the terminal resizes.
func (m *Model) reposition() {
	m.inputRect = panel.Rect{X: 0, Y: 0, Width: m.searchBarWidth(), Height: 3}

	rows := views.ResultRows(m.coord.Search.ResultCount(), m.coord.Search.IsLoading())
	m.panelRect = panel.Position(m.inputRect, rows, m.width, m.height)
	m.dismisser.SetRects(m.inputRect, m.panelRect)
}

// View

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	base := m.renderBase()

	if m.coord.Search.IsOpen() || m.coord.Search.IsLoading() {
		overlay := views.RenderResults(
			m.styles,
			m.coord.Search.Results(),
			m.coord.Selection.Index(),
			m.coord.Search.IsLoading(),
			m.panelRect.Width,
		)
		base = panel.Compose(base, overlay, m.panelRect)
	}

	if m.modal != ModalNone {
		base = m.composeModal(base)
	}
	return base
}

func (m *Model) renderBase() string {
	searchBar := m.styles.SearchBar.Width(m.searchBarWidth() - 2).Render(m.searchLine())

	content := m.renderScreen()
	statusBar := ""
	if m.cfg.UI.ShowStatusBar {
		statusBar = m.renderStatusBar()
	}

	bodyHeight := m.height - lipgloss.Height(searchBar) - lipgloss.Height(statusBar)
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Padding(0, 1).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, searchBar, body, statusBar)
}

func (m *Model) searchLine() string {
	line := m.input.View()
	if m.input.Mode() == input.ModeSearch {
		line += "  " + m.styles.FilterTag.Render("["+string(m.coord.Search.Filter())+"]")
		if m.coord.Search.IsLoading() {
			line += " " + m.spin.View()
		}
	}
	return line
}

func (m *Model) renderScreen() string {
	if m.loading {
		return m.spin.View() + " loading…"
	}
	if m.loadFailed != "" {
		return views.RenderLoadError(m.styles, m.loadFailed)
	}

	switch m.screen {
	case ScreenMembers:
		return views.RenderMembers(m.styles, m.members, m.memberFilter, m.cursor, m.width-2)
	case ScreenClaims:
		return views.RenderClaims(m.styles, m.claims, m.cursor, m.width-2)
	case ScreenSchemes:
		return views.RenderSchemes(m.styles, m.schemes, m.cursor, m.width-2)
	case ScreenSchemeDetail:
		return views.RenderSchemeDetail(m.styles, m.schemeDetail)
	case ScreenProviders:
		return views.RenderProviders(m.styles, m.providers, m.cursor, m.width-2)
	default:
		return views.RenderHome(m.styles, m.role)
	}
}

func (m *Model) renderStatusBar() string {
	left := m.screenName() + "  ·  " + string(m.role)
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Status.Render(" " + left + strings.Repeat(" ", gap) + right)
}

func (m *Model) composeModal(base string) string {
	var box string
	switch m.modal {
	case ModalInfo:
		box = views.RenderInfoPanel(m.styles, m.infoResult)
	case ModalClaim:
		box = views.RenderClaimDetail(m.styles, m.claimDetail)
	case ModalHelp:
		box = m.styles.InfoBox.Render(m.help.FullHelpView(m.keys.FullHelp()))
	default:
		return base
	}

	rect := panel.Rect{
		X:      (m.width - lipgloss.Width(box)) / 2,
		Y:      (m.height - lipgloss.Height(box)) / 2,
		Width:  lipgloss.Width(box),
		Height: lipgloss.Height(box),
	}
	return panel.Compose(base, box, rect)
}

func (m *Model) screenName() string {
	switch m.screen {
	case ScreenMembers:
		return "members"
	case ScreenClaims:
		return "claims"
	case ScreenSchemes:
		return "schemes"
	case ScreenSchemeDetail:
		return "scheme"
	case ScreenProviders:
		return "providers"
	default:
		return "home"
	}
}

func (m *Model) listLen() int {
	switch m.screen {
	case ScreenMembers:
		return len(m.members)
	case ScreenClaims:
		return len(m.claims)
	case ScreenSchemes:
		return len(m.schemes)
	case ScreenProviders:
		return len(m.providers)
	default:
		return 0
	}
}
