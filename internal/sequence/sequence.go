// ABOUTME: Playlist cursor with per-item countdown for stretch and exercise timers.
// ABOUTME: Pure functions over an item list; a scheduler calls Tick each second.
package sequence

import "github.com/harperreed/wellness/internal/models"

// None is the cursor value when no item is loaded.
const None = -1

// Item is one timed entry of a playlist.
type Item struct {
	ID      string
	Name    string
	Seconds int
}

// FromStretches builds a playlist from a stretch sequence.
func FromStretches(stretches []models.StretchEntry) []Item {
	items := make([]Item, 0, len(stretches))
	for _, s := range stretches {
		items = append(items, Item{ID: s.ID, Name: s.Name, Seconds: s.Duration})
	}
	return items
}

// FromExercises builds a playlist from a routine; minutes become seconds.
func FromExercises(exercises []models.ExerciseEntry) []Item {
	items := make([]Item, 0, len(exercises))
	for _, e := range exercises {
		items = append(items, Item{ID: e.ID, Name: e.Name, Seconds: e.Duration * 60})
	}
	return items
}

// Total sums item durations in seconds.
func Total(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Seconds
	}
	return total
}

// State is the cursor position and the loaded item's remaining seconds.
type State struct {
	Cursor    int
	Remaining int
	Running   bool
}

// Idle is the state with nothing loaded.
func Idle() State {
	return State{Cursor: None}
}

// Active reports whether an item is loaded.
func (s State) Active() bool {
	return s.Cursor != None
}

// Current returns the loaded item.
func (s State) Current(items []Item) (Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(items) {
		return Item{}, false
	}
	return items[s.Cursor], true
}

// Start loads the first item and runs. An empty playlist stays idle.
func Start(items []Item) State {
	if len(items) == 0 {
		return Idle()
	}
	return State{Cursor: 0, Remaining: items[0].Seconds, Running: true}
}

// Select loads item i without running it.
func Select(items []Item, i int) State {
	if i < 0 || i >= len(items) {
		return Idle()
	}
	return State{Cursor: i, Remaining: items[i].Seconds}
}

// Tick counts down one second. At zero the next item loads with its full
// duration; after the last item the playlist halts with the cursor cleared.
func Tick(s State, items []Item) State {
	if !s.Running || !s.Active() {
		return s
	}
	if s.Remaining > 1 {
		s.Remaining--
		return s
	}
	if s.Cursor+1 < len(items) {
		s.Cursor++
		s.Remaining = items[s.Cursor].Seconds
		return s
	}
	return Idle()
}

// Skip jumps to the next item with its full duration, keeping the running
// flag. Skipping past the last item resets; with nothing loaded it does nothing.
func Skip(s State, items []Item) State {
	if !s.Active() {
		return s
	}
	if s.Cursor+1 >= len(items) {
		return Reset(s)
	}
	return State{Cursor: s.Cursor + 1, Remaining: items[s.Cursor+1].Seconds, Running: s.Running}
}

// Reset halts and clears the cursor.
func Reset(State) State {
	return Idle()
}

// Pause stops ticking without moving the cursor.
func Pause(s State) State {
	s.Running = false
	return s
}

// Resume continues ticking the loaded item, or starts from the top when
// nothing is loaded.
func Resume(s State, items []Item) State {
	if !s.Active() {
		return Start(items)
	}
	s.Running = true
	return s
}
