// ABOUTME: Bubbletea model for the wellness dashboard: ten routed views over a Store.
// ABOUTME: Views read the store on render and call its mutators on input.
package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/harperreed/wellness/internal/breathing"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/sequence"
	"github.com/harperreed/wellness/internal/store"
)

// ErrNoStore is returned by New when no store is supplied.
var ErrNoStore = errors.New("tui: no store")

// Route identifies one of the dashboard views.
type Route int

const (
	RouteDashboard Route = iota
	RouteMood
	RouteWater
	RouteBreathing
	RouteMeals
	RouteSleep
	RouteFitness
	RouteStretch
	RouteJournal
	RouteWeight

	routeCount
)

var routeNames = [routeCount]string{
	"Dashboard", "Mood", "Water", "Breathing", "Meals",
	"Sleep", "Fitness", "Stretch", "Journal", "Weight",
}

func (r Route) String() string {
	if r < 0 || r >= routeCount {
		return "Unknown"
	}
	return routeNames[r]
}

// Routes lists every view in tab order.
func Routes() []Route {
	out := make([]Route, routeCount)
	for i := range out {
		out[i] = Route(i)
	}
	return out
}

type formKind int

const (
	formNone formKind = iota
	formAdd
	formSearch
	formTags
)

// tickMsg is one timer second. Ticks from an older generation are dropped.
type tickMsg struct{ gen int }

func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// Options configures a dashboard Model.
type Options struct {
	Pattern breathing.Pattern // preselected breathing pattern
	Now     func() time.Time
	Logger  *log.Logger
	Start   Route
}

// Model is the dashboard. All state changes happen inside Update on the
// bubbletea event loop.
type Model struct {
	store  store.Store
	now    func() time.Time
	logger *log.Logger

	keys  keyMap
	help  help.Model
	water progress.Model
	input textinput.Model

	route  Route
	width  int
	form   formKind
	flash  string
	ticks  int // current tick generation
	chosen int // breathing pattern index

	breath breathing.State

	fitSel int
	fitSeq sequence.State

	stretchSel int
	stretchSeq sequence.State

	search string
	tags   []string
}

// New builds the dashboard over s.
func New(s store.Store, opts Options) (Model, error) {
	if s == nil {
		return Model{}, ErrNoStore
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	m := Model{
		store:      s,
		now:        opts.Now,
		logger:     opts.Logger,
		keys:       defaultKeyMap(),
		help:       help.New(),
		water:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		input:      ti,
		route:      opts.Start,
		fitSeq:     sequence.Idle(),
		stretchSeq: sequence.Idle(),
	}
	for i, p := range breathing.Patterns {
		if p.Name == opts.Pattern.Name {
			m.chosen = i
		}
	}
	return m, nil
}

// Run starts the program on the alternate screen until quit or ctx ends.
func Run(ctx context.Context, m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Route returns the active view.
func (m Model) Route() Route { return m.route }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) today() string {
	return models.DateOf(m.now())
}

func (m Model) pattern() breathing.Pattern {
	return breathing.Patterns[m.chosen]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.onTick(msg)

	case tea.KeyMsg:
		if m.form != formNone {
			return m.updateForm(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m.unmount(), tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if next, cmd, ok := m.updateView(msg); ok {
			return next, cmd
		}
		return m.updateNav(msg)
	}
	return m, nil
}

// updateView gives the active view first pick of the key.
func (m Model) updateView(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch m.route {
	case RouteMood:
		return m.updateMood(msg)
	case RouteWater:
		return m.updateWater(msg)
	case RouteBreathing:
		return m.updateBreathing(msg)
	case RouteMeals, RouteSleep, RouteWeight:
		if key.Matches(msg, m.keys.Add) {
			next, cmd := m.openForm(formAdd, "")
			return next, cmd, true
		}
	case RouteFitness:
		return m.updateFitness(msg)
	case RouteStretch:
		return m.updateStretch(msg)
	case RouteJournal:
		return m.updateJournal(msg)
	}
	return m, nil, false
}

func (m Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.navigate((m.route + 1) % routeCount), nil
	case key.Matches(msg, m.keys.Prev):
		return m.navigate((m.route + routeCount - 1) % routeCount), nil
	case key.Matches(msg, m.keys.Home):
		return m.navigate(RouteDashboard), nil
	case key.Matches(msg, m.keys.Jump):
		return m.navigate(Route(msg.String()[0] - '0')), nil
	}
	return m, nil
}

// navigate leaves the current view and opens to.
func (m Model) navigate(to Route) Model {
	if to == m.route {
		return m
	}
	m.logger.Debug("navigate", "from", m.route, "to", to)
	m = m.unmount()
	m.route = to
	return m
}

// unmount drops the active view's local state. Bumping the tick generation
// discards any tick already in flight.
func (m Model) unmount() Model {
	m.ticks++
	m.breath = breathing.State{}
	m.fitSel, m.fitSeq = 0, sequence.Idle()
	m.stretchSel, m.stretchSeq = 0, sequence.Idle()
	m.search, m.tags = "", nil
	m.form, m.flash = formNone, ""
	m.input.Reset()
	m.input.Blur()
	return m
}

// startTicking begins a fresh tick chain, orphaning any older one.
func (m Model) startTicking() (Model, tea.Cmd) {
	m.ticks++
	return m, tick(m.ticks)
}

func (m Model) stopTicking() Model {
	m.ticks++
	return m
}

func (m Model) onTick(msg tickMsg) (Model, tea.Cmd) {
	if msg.gen != m.ticks {
		return m, nil
	}

	running := false
	switch m.route {
	case RouteBreathing:
		m.breath = breathing.Next(m.breath, m.pattern())
		running = m.breath.Phase != breathing.Idle
	case RouteFitness:
		m.fitSeq = sequence.Tick(m.fitSeq, sequence.FromExercises(m.store.Exercises()))
		running = m.fitSeq.Running
	case RouteStretch:
		m.stretchSeq = sequence.Tick(m.stretchSeq, sequence.FromStretches(m.store.Stretches()))
		running = m.stretchSeq.Running
	}
	if !running {
		return m, nil
	}
	return m, tick(m.ticks)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderRoute())
	b.WriteString("\n")

	if m.form != formNone {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(flashStyle.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(routeHelp{keys: m.keys, route: m.route, editing: m.form != formNone}))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, routeCount)
	for _, r := range Routes() {
		label := string(rune('0'+r)) + " " + r.String()
		if r == m.route {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderRoute() string {
	switch m.route {
	case RouteMood:
		return m.viewMood()
	case RouteWater:
		return m.viewWater()
	case RouteBreathing:
		return m.viewBreathing()
	case RouteMeals:
		return m.viewMeals()
	case RouteSleep:
		return m.viewSleep()
	case RouteFitness:
		return m.viewFitness()
	case RouteStretch:
		return m.viewStretch()
	case RouteJournal:
		return m.viewJournal()
	case RouteWeight:
		return m.viewWeight()
	}
	return m.viewDashboard()
}
