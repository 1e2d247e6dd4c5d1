// Package stats is the aggregation engine: pure functions that turn a task
// collection into counts and chart-ready series. No I/O, no hidden state; the
// week is always derived from an explicit reference time.
package stats

import (
	"time"

	"github.com/workreport/core/internal/domain/entities"
)

// StatusCounts holds the per-status totals for a task set. Tasks with an
// unrecognized status contribute to Total only.
type StatusCounts struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	NotStarted int `json:"notStarted"`
}

// PriorityCounts holds per-priority totals.
type PriorityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Dataset is one chart series. Data is a single whole-week scalar, not a
// per-day breakdown; the per-day grouping exists only in the weekly report
// document (see the report package).
type Dataset struct {
	Label           string `json:"label"`
	Data            int    `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// WeeklyStats is the dashboard aggregate: counts plus the weekly chart
// labels and datasets.
type WeeklyStats struct {
	StatusCounts
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// weekdayLabels is the fixed Monday-anchored label order.
var weekdayLabels = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// CountByStatus partitions tasks by normalized status.
func CountByStatus(tasks []entities.Task) StatusCounts {
	counts := StatusCounts{Total: len(tasks)}
	for i := range tasks {
		switch entities.NormalizeStatus(tasks[i].Status) {
		case entities.TaskStatusCompleted:
			counts.Completed++
		case entities.TaskStatusInProgress:
			counts.InProgress++
		case entities.TaskStatusNotStarted:
			counts.NotStarted++
		}
	}
	return counts
}

// CountByPriority partitions tasks by priority.
func CountByPriority(tasks []entities.Task) PriorityCounts {
	var counts PriorityCounts
	for i := range tasks {
		switch tasks[i].Priority {
		case entities.PriorityLow:
			counts.Low++
		case entities.PriorityMedium:
			counts.Medium++
		case entities.PriorityHigh:
			counts.High++
		}
	}
	return counts
}

// WeeklyChartSeries builds the dashboard chart: seven day labels and three
// datasets, each carrying the week-total count for its status.
func WeeklyChartSeries(tasks []entities.Task) ([]string, []Dataset) {
	counts := CountByStatus(tasks)

	labels := make([]string, len(weekdayLabels))
	copy(labels, weekdayLabels)

	datasets := []Dataset{
		{
			Label:           "Completed",
			Data:            counts.Completed,
			BorderColor:     "#10B981",
			BackgroundColor: "rgba(16, 185, 129, 0.1)",
		},
		{
			Label:           "In Progress",
			Data:            counts.InProgress,
			BorderColor:     "#F59E0B",
			BackgroundColor: "rgba(245, 158, 11, 0.1)",
		},
		{
			Label:           "Not Started",
			Data:            counts.NotStarted,
			BorderColor:     "#EF4444",
			BackgroundColor: "rgba(239, 68, 68, 0.1)",
		},
	}

	return labels, datasets
}

// WeeklyOverview composes status counts with the chart series for a task set
// already scoped to one week.
func WeeklyOverview(tasks []entities.Task) WeeklyStats {
	labels, datasets := WeeklyChartSeries(tasks)
	return WeeklyStats{
		StatusCounts: CountByStatus(tasks),
		Labels:       labels,
		Datasets:     datasets,
	}
}

// DateOf truncates a time to midnight in its location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekBounds returns the Monday and Sunday of the week containing ref.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	day := DateOf(ref)
	offset := (int(day.Weekday()) + 6) % 7 // Monday-anchored
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// EndOfWeek returns the Sunday of the week containing ref.
func EndOfWeek(ref time.Time) time.Time {
	_, end := WeekBounds(ref)
	return end
}
