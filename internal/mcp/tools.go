// ABOUTME: MCP tool implementations for the wellness trackers.
// ABOUTME: Tools validate input, then call the same Store mutators as the dashboard.
package mcp

import (
	"context"
	"fmt"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
	"github.com/harperreed/wellness/internal/store"
)

// defaultListLimit caps list_entries when no limit is given.
const defaultListLimit = 20

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_mood",
		Description: "Log a mood (happy, sad, neutral, energetic, tired, stressed, calm) for a day",
	}, s.handleAddMood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Add millilitres of water to a day's total",
	}, s.handleAddWater)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_sleep",
		Description: "Log a night of sleep from start and end clock times",
	}, s.handleAddSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_meal",
		Description: "Log a meal with its type and calories",
	}, s.handleAddMeal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_weight",
		Description: "Record a weigh-in in kilograms",
	}, s.handleAddWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_journal",
		Description: "Write a journal entry with at least one tag",
	}, s.handleAddJournal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Append an exercise to the fitness routine",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_exercise",
		Description: "Flip an exercise between done and not done",
	}, s.handleToggleExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "move_item",
		Description: "Move an item of the exercises or stretches list to a new position",
	}, s.handleMoveItem)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_entries",
		Description: "List entries of one collection, newest first",
	}, s.handleListEntries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_journal",
		Description: "Search journal entries by text and tags",
	}, s.handleSearchJournal)
}

// Tool input/output types

type addMoodInput struct {
	Mood string `json:"mood" jsonschema:"one of happy, sad, neutral, energetic, tired, stressed, calm"`
	Note string `json:"note,omitempty" jsonschema:"optional note"`
	Date string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type addWaterInput struct {
	Amount int    `json:"amount" jsonschema:"millilitres to add"`
	Date   string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type waterOutput struct {
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Goal    int    `json:"goal"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

type addSleepInput struct {
	StartTime string `json:"start_time" jsonschema:"bedtime as HH:MM"`
	EndTime   string `json:"end_time" jsonschema:"wake time as HH:MM, may be after midnight"`
	Quality   int    `json:"quality,omitempty" jsonschema:"quality from 1 to 5"`
	Date      string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type addMealInput struct {
	Type     string `json:"type" jsonschema:"breakfast, lunch, dinner or snack"`
	Name     string `json:"name" jsonschema:"what was eaten"`
	Calories int    `json:"calories" jsonschema:"energy in kcal"`
	Time     string `json:"time,omitempty" jsonschema:"time as HH:MM, defaults to now"`
	Date     string `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type addWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"body weight in kilograms"`
	Date   string  `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type addJournalInput struct {
	Text string   `json:"text" jsonschema:"entry text"`
	Tags []string `json:"tags" jsonschema:"one or more tags"`
	Date string   `json:"date,omitempty" jsonschema:"day as YYYY-MM-DD, defaults to today"`
}

type addExerciseInput struct {
	Name    string `json:"name" jsonschema:"exercise name"`
	Minutes int    `json:"minutes" jsonschema:"duration in minutes"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"exercise ID"`
}

type moveItemInput struct {
	List string `json:"list" jsonschema:"exercises or stretches"`
	From int    `json:"from" jsonschema:"current zero-based position"`
	To   int    `json:"to" jsonschema:"new zero-based position"`
}

type listEntriesInput struct {
	Collection string `json:"collection" jsonschema:"moods, water, sleep, meals, weights, exercises, journal or stretches"`
	Limit      int    `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

type searchJournalInput struct {
	Query string   `json:"query,omitempty" jsonschema:"text to look for in entries and tags"`
	Tags  []string `json:"tags,omitempty" jsonschema:"tags every result must carry"`
}

type simpleOutput struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// entriesOutput carries the one collection that was asked for.
type entriesOutput struct {
	Collection string                 `json:"collection"`
	Total      int                    `json:"total"`
	Moods      []models.MoodEntry     `json:"moods,omitempty"`
	Water      []models.WaterEntry    `json:"water,omitempty"`
	Sleep      []models.SleepEntry    `json:"sleep,omitempty"`
	Meals      []models.MealEntry     `json:"meals,omitempty"`
	Weights    []models.WeightEntry   `json:"weights,omitempty"`
	Exercises  []models.ExerciseEntry `json:"exercises,omitempty"`
	Journal    []models.JournalEntry  `json:"journal,omitempty"`
	Stretches  []models.StretchEntry  `json:"stretches,omitempty"`
}

// Tool handlers

func (s *Server) handleAddMood(ctx context.Context, req *mcp.CallToolRequest, input addMoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	e := models.MoodEntry{Date: s.dateOr(input.Date), Mood: models.Mood(input.Mood), Note: input.Note}
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.AddMood(e)
	s.logger.Debug("tool add_mood", "date", e.Date, "mood", e.Mood)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s %s for %s", models.MoodEmoji[e.Mood], e.Mood, e.Date),
	}, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input addWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	e := models.WaterEntry{Date: s.dateOr(input.Date), Amount: input.Amount}
	if err := e.Validate(); err != nil {
		return nil, waterOutput{}, err
	}
	s.store.AddWaterOn(e.Date, e.Amount)

	total := stats.WaterOn(s.store.Water(), e.Date)
	goal := s.store.WaterGoal()
	return nil, waterOutput{
		Date:    e.Date,
		Total:   total,
		Goal:    goal,
		Percent: stats.Percent(total, goal),
		Message: fmt.Sprintf("Added %d ml (%d/%d ml on %s)", e.Amount, total, goal, e.Date),
	}, nil
}

func (s *Server) handleAddSleep(ctx context.Context, req *mcp.CallToolRequest, input addSleepInput) (*mcp.CallToolResult, simpleOutput, error) {
	duration, err := models.SleepDuration(input.StartTime, input.EndTime)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	e := models.SleepEntry{
		Date:      s.dateOr(input.Date),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Duration:  duration,
		Quality:   input.Quality,
	}
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.AddSleep(e)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s of sleep for %s", models.FormatMinutes(duration), e.Date),
	}, nil
}

func (s *Server) handleAddMeal(ctx context.Context, req *mcp.CallToolRequest, input addMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	at := input.Time
	if at == "" {
		at = s.now().Format(models.TimeLayout)
	}
	e := models.NewMeal(s.dateOr(input.Date), input.Name, input.Calories, models.MealType(input.Type), at)
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.AddMeal(e)

	return nil, simpleOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Logged %s: %s (%d kcal)", e.Type, e.Name, e.Calories),
	}, nil
}

func (s *Server) handleAddWeight(ctx context.Context, req *mcp.CallToolRequest, input addWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	e := models.WeightEntry{Date: s.dateOr(input.Date), Weight: input.Weight}
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.AddWeight(e)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f kg for %s", e.Weight, e.Date),
	}, nil
}

func (s *Server) handleAddJournal(ctx context.Context, req *mcp.CallToolRequest, input addJournalInput) (*mcp.CallToolResult, simpleOutput, error) {
	e := models.NewJournalEntry(s.dateOr(input.Date), input.Text, input.Tags)
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.AddJournal(e)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved journal entry for %s tagged %v", e.Date, e.Tags),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	e := models.NewExercise(input.Name, input.Minutes)
	if err := e.Validate(); err != nil {
		return nil, simpleOutput{}, err
	}
	s.store.SetExercises(append(slices.Clone(s.store.Exercises()), e))

	return nil, simpleOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Added %s (%d min) to the routine", e.Name, e.Duration),
	}, nil
}

func (s *Server) handleToggleExercise(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, ok := findExercise(s.store.Exercises(), input.ID); !ok {
		return nil, simpleOutput{}, fmt.Errorf("exercise not found: %s", input.ID)
	}
	s.store.ToggleExercise(input.ID)

	e, _ := findExercise(s.store.Exercises(), input.ID)
	state := "not done"
	if e.Completed {
		state = "done"
	}
	return nil, simpleOutput{
		ID:      e.ID,
		Message: fmt.Sprintf("Marked %s %s", e.Name, state),
	}, nil
}

func findExercise(exercises []models.ExerciseEntry, id string) (models.ExerciseEntry, bool) {
	i := slices.IndexFunc(exercises, func(e models.ExerciseEntry) bool { return e.ID == id })
	if i < 0 {
		return models.ExerciseEntry{}, false
	}
	return exercises[i], true
}

func (s *Server) handleMoveItem(ctx context.Context, req *mcp.CallToolRequest, input moveItemInput) (*mcp.CallToolResult, simpleOutput, error) {
	mv := store.Move{List: store.Collection(input.List), From: input.From, To: input.To}
	if err := s.store.Reorder(mv); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("move %s item: %w", input.List, err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Moved %s item %d to %d", input.List, input.From, input.To),
	}, nil
}

func (s *Server) handleListEntries(ctx context.Context, req *mcp.CallToolRequest, input listEntriesInput) (*mcp.CallToolResult, entriesOutput, error) {
	if !store.IsValidCollection(input.Collection) {
		return nil, entriesOutput{}, fmt.Errorf("unknown collection: %s", input.Collection)
	}
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}

	out := entriesOutput{Collection: input.Collection}
	switch store.Collection(input.Collection) {
	case store.CollectionMoods:
		out.Total, out.Moods = limit(s.store.Moods(), input.Limit)
	case store.CollectionWater:
		out.Total, out.Water = limit(s.store.Water(), input.Limit)
	case store.CollectionSleep:
		out.Total, out.Sleep = limit(s.store.Sleep(), input.Limit)
	case store.CollectionMeals:
		out.Total, out.Meals = limit(s.store.Meals(), input.Limit)
	case store.CollectionWeights:
		out.Total, out.Weights = limit(s.store.Weights(), input.Limit)
	case store.CollectionExercises:
		out.Total, out.Exercises = limit(s.store.Exercises(), input.Limit)
	case store.CollectionJournal:
		out.Total, out.Journal = limit(s.store.Journal(), input.Limit)
	case store.CollectionStretches:
		out.Total, out.Stretches = limit(s.store.Stretches(), input.Limit)
	}
	return nil, out, nil
}

func (s *Server) handleSearchJournal(ctx context.Context, req *mcp.CallToolRequest, input searchJournalInput) (*mcp.CallToolResult, entriesOutput, error) {
	found := stats.FilterJournal(s.store.Journal(), input.Query, models.NormalizeTags(input.Tags))
	return nil, entriesOutput{
		Collection: string(store.CollectionJournal),
		Total:      len(found),
		Journal:    found,
	}, nil
}

// limit returns the full length and at most n leading items.
func limit[T any](items []T, n int) (int, []T) {
	if len(items) > n {
		return len(items), items[:n]
	}
	return len(items), items
}
