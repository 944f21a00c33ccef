// ABOUTME: In-memory Store implementation with copy-on-write collections.
// ABOUTME: Mutators build new slices and notify subscribers synchronously.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/harperreed/wellness/internal/models"
)

// Memory is the process-wide tracker store. Create one with New and pass it
// to whatever needs it.
type Memory struct {
	mu   sync.RWMutex
	data Snapshot

	waterGoal int
	now       func() time.Time

	subMu  sync.Mutex
	subs   map[int]func(Change)
	nextID int
}

// Compile-time check that Memory implements Store.
var _ Store = (*Memory)(nil)

// Option configures a Memory store.
type Option func(*Memory)

// WithClock sets the clock used to decide "today".
func WithClock(now func() time.Time) Option {
	return func(m *Memory) { m.now = now }
}

// WithWaterGoal sets the daily water goal in millilitres.
func WithWaterGoal(ml int) Option {
	return func(m *Memory) {
		if ml > 0 {
			m.waterGoal = ml
		}
	}
}

// New creates a store seeded with the given collections.
func New(seed Snapshot, opts ...Option) *Memory {
	m := &Memory{
		data:      seed,
		waterGoal: models.DefaultWaterGoal,
		now:       time.Now,
		subs:      make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Moods returns mood entries, newest first.
func (m *Memory) Moods() []models.MoodEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Moods
}

// Water returns one entry per day, newest first.
func (m *Memory) Water() []models.WaterEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Water
}

// Sleep returns sleep entries, newest first.
func (m *Memory) Sleep() []models.SleepEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Sleep
}

// Meals returns meal entries, newest first.
func (m *Memory) Meals() []models.MealEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Meals
}

// Weights returns weigh-ins, newest first.
func (m *Memory) Weights() []models.WeightEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Weights
}

// Exercises returns the routine in order.
func (m *Memory) Exercises() []models.ExerciseEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Exercises
}

// Journal returns journal entries, newest first.
func (m *Memory) Journal() []models.JournalEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Journal
}

// Stretches returns the stretch sequence in order.
func (m *Memory) Stretches() []models.StretchEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data.Stretches
}

// WaterGoal returns the daily water goal in millilitres.
func (m *Memory) WaterGoal() int {
	return m.waterGoal
}

// Today returns the store's current calendar day.
func (m *Memory) Today() string {
	return models.DateOf(m.now())
}

// Snapshot returns the current collection values.
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data
}

// AddMood prepends a mood entry.
func (m *Memory) AddMood(e models.MoodEntry) {
	m.mu.Lock()
	m.data.Moods = prepend(m.data.Moods, e)
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionMoods, Op: OpAdd})
}

// AddWater adds amount to today's water entry, creating it if needed.
func (m *Memory) AddWater(amount int) {
	m.AddWaterOn(m.Today(), amount)
}

// AddWaterOn adds amount to the entry for date. Entries stay unique per
// date: an existing entry is replaced by one with the summed amount, and a
// missing one is prepended.
func (m *Memory) AddWaterOn(date string, amount int) {
	m.mu.Lock()
	op := OpAdd
	idx := -1
	for i, e := range m.data.Water {
		if e.Date == date {
			idx = i
			break
		}
	}
	if idx >= 0 {
		next := make([]models.WaterEntry, len(m.data.Water))
		copy(next, m.data.Water)
		next[idx].Amount += amount
		m.data.Water = next
		op = OpMerge
	} else {
		m.data.Water = prepend(m.data.Water, models.WaterEntry{Date: date, Amount: amount})
	}
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionWater, Op: op})
}

// AddSleep prepends a sleep entry.
func (m *Memory) AddSleep(e models.SleepEntry) {
	m.mu.Lock()
	m.data.Sleep = prepend(m.data.Sleep, e)
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionSleep, Op: OpAdd})
}

// AddMeal prepends a meal.
func (m *Memory) AddMeal(e models.MealEntry) {
	m.mu.Lock()
	m.data.Meals = prepend(m.data.Meals, e)
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionMeals, Op: OpAdd})
}

// AddWeight prepends a weigh-in.
func (m *Memory) AddWeight(e models.WeightEntry) {
	m.mu.Lock()
	m.data.Weights = prepend(m.data.Weights, e)
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionWeights, Op: OpAdd})
}

// SetExercises replaces the whole routine.
func (m *Memory) SetExercises(exercises []models.ExerciseEntry) {
	next := make([]models.ExerciseEntry, len(exercises))
	copy(next, exercises)

	m.mu.Lock()
	m.data.Exercises = next
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionExercises, Op: OpReplace})
}

// ToggleExercise flips the completed flag of the exercise with id.
// An unknown id leaves the routine untouched and emits nothing.
func (m *Memory) ToggleExercise(id string) {
	m.mu.Lock()
	idx := -1
	for i, e := range m.data.Exercises {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return
	}
	next := make([]models.ExerciseEntry, len(m.data.Exercises))
	copy(next, m.data.Exercises)
	next[idx].Completed = !next[idx].Completed
	m.data.Exercises = next
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionExercises, Op: OpToggle})
}

// AddJournal prepends a journal entry.
func (m *Memory) AddJournal(e models.JournalEntry) {
	m.mu.Lock()
	m.data.Journal = prepend(m.data.Journal, e)
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionJournal, Op: OpAdd})
}

// SetStretches replaces the whole stretch sequence.
func (m *Memory) SetStretches(stretches []models.StretchEntry) {
	next := make([]models.StretchEntry, len(stretches))
	copy(next, stretches)

	m.mu.Lock()
	m.data.Stretches = next
	m.mu.Unlock()
	m.notify(Change{Collection: CollectionStretches, Op: OpReplace})
}

// Reorder applies a Move to the exercise routine or the stretch sequence.
func (m *Memory) Reorder(mv Move) error {
	m.mu.Lock()
	var err error
	switch mv.List {
	case CollectionExercises:
		var next []models.ExerciseEntry
		if next, err = move(m.data.Exercises, mv.From, mv.To); err == nil {
			m.data.Exercises = next
		}
	case CollectionStretches:
		var next []models.StretchEntry
		if next, err = move(m.data.Stretches, mv.From, mv.To); err == nil {
			m.data.Stretches = next
		}
	default:
		err = ErrUnknownList
	}
	m.mu.Unlock()

	if err != nil {
		return err
	}
	m.notify(Change{Collection: mv.List, Op: OpReorder})
	return nil
}

// Subscribe registers fn to receive every change. Subscribers run on the
// mutating goroutine after the mutation is applied.
func (m *Memory) Subscribe(fn func(Change)) func() {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subMu.Lock()
			delete(m.subs, id)
			m.subMu.Unlock()
		})
	}
}

func (m *Memory) notify(c Change) {
	m.subMu.Lock()
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Change), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, m.subs[id])
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// prepend returns a new slice with e first and items after it.
func prepend[T any](items []T, e T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, e)
	return append(next, items...)
}

// move returns a new slice with the item at from relocated to to.
func move[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	next := make([]T, 0, len(items))
	next = append(next, items[:from]...)
	next = append(next, items[from+1:]...)

	item := items[from]
	next = append(next, item)
	copy(next[to+1:], next[to:len(next)-1])
	next[to] = item
	return next, nil
}
