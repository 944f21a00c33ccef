// ABOUTME: Key bindings for navigation, timers, lists, and forms.
// ABOUTME: Help output is filtered to the bindings the current view uses.
package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Home key.Binding
	Jump key.Binding
	Quit key.Binding
	Help key.Binding

	Add    key.Binding
	Submit key.Binding
	Cancel key.Binding

	Pick   key.Binding
	Toggle key.Binding
	Skip   key.Binding
	Reset  key.Binding
	Left   key.Binding
	Right  key.Binding

	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Select   key.Binding
	Complete key.Binding

	Search key.Binding
	Tags   key.Binding
	Clear  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Home: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dashboard")),
		Jump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to view"),
		),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add entry")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "log")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Skip:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "skip")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev pattern")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next pattern")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		MoveUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load timer")),
		Complete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "done")),

		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Tags:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "filter tags")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filter")),
	}
}

// routeHelp adapts keyMap to help.KeyMap for one view.
type routeHelp struct {
	keys    keyMap
	route   Route
	editing bool
}

func (h routeHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.editing {
		return []key.Binding{k.Submit, k.Cancel}
	}
	return append(h.viewBindings(), k.Next, k.Quit, k.Help)
}

func (h routeHelp) FullHelp() [][]key.Binding {
	k := h.keys
	if h.editing {
		return [][]key.Binding{{k.Submit, k.Cancel}}
	}
	return [][]key.Binding{
		h.viewBindings(),
		{k.Next, k.Prev, k.Jump, k.Home},
		{k.Help, k.Quit},
	}
}

func (h routeHelp) viewBindings() []key.Binding {
	k := h.keys
	switch h.route {
	case RouteMood:
		return []key.Binding{k.Pick, k.Add}
	case RouteWater:
		return []key.Binding{waterCupHelp, k.Add}
	case RouteBreathing:
		return []key.Binding{k.Toggle, k.Left, k.Right, k.Reset}
	case RouteMeals, RouteSleep, RouteWeight:
		return []key.Binding{k.Add}
	case RouteFitness:
		return []key.Binding{k.Down, k.Up, k.Select, k.Toggle, k.Complete, k.Skip, k.Reset, k.MoveDown, k.MoveUp, k.Add}
	case RouteStretch:
		return []key.Binding{k.Toggle, k.Skip, k.Reset, k.Down, k.Up, k.MoveDown, k.MoveUp}
	case RouteJournal:
		return []key.Binding{k.Add, k.Search, k.Tags, k.Clear}
	}
	return []key.Binding{k.Jump}
}

// waterCupHelp only documents the cup keys; the water view matches them itself.
var waterCupHelp = key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "add cup"))
