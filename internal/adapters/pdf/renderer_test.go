package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/report"
	"github.com/workreport/core/internal/infrastructure/config"
)

func reportTasks() []entities.Task {
	description := "Postgres schema and indexes"
	difficulties := "Legacy data needed cleanup first"

	return []entities.Task{
		{
			ID:           1,
			Title:        "Write migration",
			Description:  &description,
			Status:       entities.TaskStatusCompleted,
			Priority:     entities.PriorityHigh,
			Progress:     100,
			DueDate:      time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC),
			Difficulties: &difficulties,
			Subtasks: []entities.Task{
				{ID: 3, Title: "Add indexes", Status: entities.TaskStatusCompleted, Progress: 100},
			},
		},
		{
			ID:       2,
			Title:    "Review queries",
			Status:   entities.TaskStatusInProgress,
			Priority: entities.PriorityMedium,
			Progress: 60,
			DueDate:  time.Date(2024, 12, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestDailyTemplate(t *testing.T) {
	renderer, err := NewRenderer(config.ReportsConfig{})
	require.NoError(t, err)

	now := time.Date(2024, 12, 16, 17, 45, 0, 0, time.UTC)
	model := report.BuildDaily(reportTasks(), time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC), now)

	var buf bytes.Buffer
	require.NoError(t, renderer.templates.ExecuteTemplate(&buf, "daily.html", model))

	html := buf.String()
	require.Contains(t, html, "Daily Task Report")
	require.Contains(t, html, "December 16, 2024")
	require.Contains(t, html, "Write migration")
	require.Contains(t, html, "priority-high")
	require.Contains(t, html, "High Priority")
	require.Contains(t, html, "Postgres schema and indexes")
	require.Contains(t, html, "Legacy data needed cleanup first")
	require.Contains(t, html, "Add indexes")
	require.Contains(t, html, "Completed Tasks")
	require.Contains(t, html, "Not Started Tasks") // empty sections still render
	require.Contains(t, html, "December 16, 2024 at 05:45 PM")
}

func TestWeeklyTemplate(t *testing.T) {
	renderer, err := NewRenderer(config.ReportsConfig{})
	require.NoError(t, err)

	start := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	model := report.BuildWeekly(reportTasks(), start, end, now)

	var buf bytes.Buffer
	require.NoError(t, renderer.templates.ExecuteTemplate(&buf, "weekly.html", model))

	html := buf.String()
	require.Contains(t, html, "Weekly Task Report")
	require.Contains(t, html, "December 16, 2024 - December 22, 2024")
	require.Contains(t, html, "Monday, December 16, 2024")
	require.Contains(t, html, "Tuesday, December 17, 2024")
	require.Contains(t, html, "Review queries")
	require.Contains(t, html, "Progress: 60%")
}

func TestRenderer_TemplateNameFollowsType(t *testing.T) {
	renderer, err := NewRenderer(config.ReportsConfig{})
	require.NoError(t, err)

	require.NotNil(t, renderer.templates.Lookup("daily.html"))
	require.NotNil(t, renderer.templates.Lookup("weekly.html"))
}
