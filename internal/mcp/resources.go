// ABOUTME: MCP resource implementations for the wellness trackers.
// ABOUTME: Provides wellness://summary and wellness://today as JSON documents.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/stats"
)

const (
	summaryURI = "wellness://summary"
	todayURI   = "wellness://today"
)

func (s *Server) registerResources() {
	// wellness://summary - dashboard figures for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Wellness Summary",
		Description: "Today's water, mood, meals, sleep, weight and routine progress",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// wellness://today - every entry dated today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Entries",
		Description: "All tracker entries logged for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// todayEntries is every entry for one date.
type todayEntries struct {
	Date    string                `json:"date"`
	Moods   []models.MoodEntry    `json:"moods"`
	Water   int                   `json:"water"`
	Sleep   []models.SleepEntry   `json:"sleep"`
	Meals   []models.MealEntry    `json:"meals"`
	Weights []models.WeightEntry  `json:"weights"`
	Journal []models.JournalEntry `json:"journal"`
}

func onDate[T any](items []T, date string, dateOf func(T) string) []T {
	out := []T{}
	for _, it := range items {
		if dateOf(it) == date {
			out = append(out, it)
		}
	}
	return out
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := struct {
		GeneratedAt string `json:"generated_at"`
		stats.Summary
	}{
		GeneratedAt: s.now().Format(time.RFC3339),
		Summary:     stats.Summarize(s.store, s.today()),
	}
	return jsonResource(summaryURI, result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := s.today()
	snap := s.store.Snapshot()

	result := todayEntries{
		Date:    date,
		Moods:   onDate(snap.Moods, date, func(e models.MoodEntry) string { return e.Date }),
		Water:   stats.WaterOn(snap.Water, date),
		Sleep:   onDate(snap.Sleep, date, func(e models.SleepEntry) string { return e.Date }),
		Meals:   onDate(snap.Meals, date, func(e models.MealEntry) string { return e.Date }),
		Weights: onDate(snap.Weights, date, func(e models.WeightEntry) string { return e.Date }),
		Journal: onDate(snap.Journal, date, func(e models.JournalEntry) string { return e.Date }),
	}
	return jsonResource(todayURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
