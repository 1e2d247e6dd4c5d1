// Package report builds the transient document model consumed by the PDF
// renderer. Builders are pure: all inputs, including generation time, are
// explicit parameters.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/stats"
)

type Type string

const (
	TypeDaily  Type = "daily"
	TypeWeekly Type = "weekly"
)

// ParseType validates a report type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeDaily, TypeWeekly:
		return Type(s), nil
	default:
		return "", entities.ErrInvalidReportType
	}
}

// longDate is the header format, e.g. "December 16, 2024".
const longDate = "January 02, 2006"

// StatusGroup is one status section of a report.
type StatusGroup struct {
	Status entities.TaskStatus
	Label  string
	Tasks  []entities.Task
}

// DayGroup is one calendar day of a weekly report, broken down per status.
type DayGroup struct {
	Date     time.Time
	Sections []StatusGroup
}

// Model is the report-ready structure: header metadata, aggregate counts and
// grouped task lists. It is computed fresh per request and never persisted.
type Model struct {
	Type        Type
	Title       string
	Filename    string
	GeneratedAt time.Time
	Date        time.Time // daily reports
	StartDate   time.Time // weekly reports
	EndDate     time.Time
	Tasks       []entities.Task
	Counts      stats.StatusCounts
	Sections    []StatusGroup // daily: all three sections, empty ones included
	Days        []DayGroup    // weekly: per day, empty sections skipped
}

// sectionOrder is the fixed status order of report sections.
var sectionOrder = []entities.TaskStatus{
	entities.TaskStatusCompleted,
	entities.TaskStatusInProgress,
	entities.TaskStatusNotStarted,
}

// BuildDaily assembles the daily report model for one date.
func BuildDaily(tasks []entities.Task, date, now time.Time) *Model {
	return &Model{
		Type:        TypeDaily,
		Title:       "Daily Task Report - " + date.Format(longDate),
		Filename:    fmt.Sprintf("daily-report-%s.pdf", date.Format("2006-01-02")),
		GeneratedAt: now,
		Date:        date,
		Tasks:       tasks,
		Counts:      stats.CountByStatus(tasks),
		Sections:    GroupByStatus(tasks, true),
	}
}

// BuildWeekly assembles the weekly report model for an inclusive date range.
func BuildWeekly(tasks []entities.Task, start, end, now time.Time) *Model {
	return &Model{
		Type:        TypeWeekly,
		Title:       "Weekly Task Report - " + start.Format(longDate),
		Filename:    fmt.Sprintf("weekly-report-%s.pdf", start.Format("2006-01-02")),
		GeneratedAt: now,
		StartDate:   start,
		EndDate:     end,
		Tasks:       tasks,
		Counts:      stats.CountByStatus(tasks),
		Days:        WeeklyGrouping(tasks),
	}
}

// GroupByStatus buckets tasks into the fixed status section order. With
// keepEmpty the result always holds three sections, as the daily report
// renders headings for empty sections too.
func GroupByStatus(tasks []entities.Task, keepEmpty bool) []StatusGroup {
	buckets := make(map[entities.TaskStatus][]entities.Task, len(sectionOrder))
	for i := range tasks {
		status := entities.NormalizeStatus(tasks[i].Status)
		buckets[status] = append(buckets[status], tasks[i])
	}

	groups := make([]StatusGroup, 0, len(sectionOrder))
	for _, status := range sectionOrder {
		if len(buckets[status]) == 0 && !keepEmpty {
			continue
		}
		groups = append(groups, StatusGroup{
			Status: status,
			Label:  status.Label(),
			Tasks:  buckets[status],
		})
	}
	return groups
}

// WeeklyGrouping buckets tasks per calendar day in ascending order and, within
// each day, per status. This per-day breakdown exists only in the report
// document; the dashboard chart series deliberately stays a whole-week scalar
// (stats.WeeklyChartSeries).
func WeeklyGrouping(tasks []entities.Task) []DayGroup {
	byDay := make(map[time.Time][]entities.Task)
	var order []time.Time
	for i := range tasks {
		day := stats.DateOf(tasks[i].DueDate)
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], tasks[i])
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	days := make([]DayGroup, 0, len(order))
	for _, day := range order {
		days = append(days, DayGroup{
			Date:     day,
			Sections: GroupByStatus(byDay[day], false),
		})
	}
	return days
}
