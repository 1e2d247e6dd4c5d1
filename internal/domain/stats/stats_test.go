package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/workreport/core/internal/domain/entities"
)

func statusTasks(statuses ...entities.TaskStatus) []entities.Task {
	tasks := make([]entities.Task, len(statuses))
	for i, s := range statuses {
		tasks[i] = entities.Task{Status: s}
	}
	return tasks
}

func TestCountByStatus(t *testing.T) {
	tasks := statusTasks(
		entities.TaskStatusCompleted,
		entities.TaskStatusCompleted,
		entities.TaskStatusInProgress,
		entities.TaskStatusNotStarted,
		"in_progress", // legacy spelling folds into the canonical bucket
		"archived",    // unknown status counts toward Total only
	)

	counts := CountByStatus(tasks)

	require.Equal(t, 6, counts.Total)
	require.Equal(t, 2, counts.Completed)
	require.Equal(t, 2, counts.InProgress)
	require.Equal(t, 1, counts.NotStarted)
	require.Less(t, counts.Completed+counts.InProgress+counts.NotStarted, counts.Total)
}

func TestCountByStatus_Empty(t *testing.T) {
	require.Equal(t, StatusCounts{}, CountByStatus(nil))
}

func TestCountByPriority(t *testing.T) {
	tasks := []entities.Task{
		{Priority: entities.PriorityHigh},
		{Priority: entities.PriorityHigh},
		{Priority: entities.PriorityMedium},
		{Priority: entities.PriorityLow},
	}

	counts := CountByPriority(tasks)

	require.Equal(t, 1, counts.Low)
	require.Equal(t, 1, counts.Medium)
	require.Equal(t, 2, counts.High)
}

func TestWeeklyChartSeries(t *testing.T) {
	tasks := statusTasks(
		entities.TaskStatusCompleted,
		entities.TaskStatusCompleted,
		entities.TaskStatusCompleted,
		entities.TaskStatusInProgress,
		entities.TaskStatusNotStarted,
	)

	labels, datasets := WeeklyChartSeries(tasks)

	require.Equal(t, []string{
		"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday",
	}, labels)

	require.Len(t, datasets, 3)

	require.Equal(t, "Completed", datasets[0].Label)
	require.Equal(t, 3, datasets[0].Data)
	require.Equal(t, "#10B981", datasets[0].BorderColor)
	require.Equal(t, "rgba(16, 185, 129, 0.1)", datasets[0].BackgroundColor)

	require.Equal(t, "In Progress", datasets[1].Label)
	require.Equal(t, 1, datasets[1].Data)
	require.Equal(t, "#F59E0B", datasets[1].BorderColor)

	require.Equal(t, "Not Started", datasets[2].Label)
	require.Equal(t, 1, datasets[2].Data)
	require.Equal(t, "#EF4444", datasets[2].BorderColor)
}

func TestWeeklyOverview(t *testing.T) {
	overview := WeeklyOverview(statusTasks(entities.TaskStatusCompleted))

	require.Equal(t, 1, overview.Total)
	require.Equal(t, 1, overview.Completed)
	require.Len(t, overview.Labels, 7)
	require.Len(t, overview.Datasets, 3)
	require.Equal(t, 1, overview.Datasets[0].Data)
}

func TestDateOf(t *testing.T) {
	ref := time.Date(2024, 12, 18, 15, 42, 7, 123, time.UTC)
	require.Equal(t, time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC), DateOf(ref))
}

func TestWeekBounds(t *testing.T) {
	monday := time.Date(2024, 12, 16, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)

	// Mid-week reference.
	start, end := WeekBounds(time.Date(2024, 12, 18, 9, 30, 0, 0, time.UTC))
	require.Equal(t, monday, start)
	require.Equal(t, sunday, end)

	// Monday maps to itself.
	start, end = WeekBounds(monday)
	require.Equal(t, monday, start)
	require.Equal(t, sunday, end)

	// Sunday still belongs to the same Monday-anchored week.
	start, end = WeekBounds(sunday.Add(23 * time.Hour))
	require.Equal(t, monday, start)
	require.Equal(t, sunday, end)
}

func TestEndOfWeek(t *testing.T) {
	ref := time.Date(2024, 12, 18, 9, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC), EndOfWeek(ref))
}
