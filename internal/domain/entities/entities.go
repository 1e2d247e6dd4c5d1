package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrParentNotFound    = errors.New("parent task not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
	ErrInvalidReportType = errors.New("invalid report type")
)

// TaskStatus is the canonical task status enum. The hyphenated spellings are
// canonical; underscored variants from older records are folded by
// NormalizeStatus at read boundaries.
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not-started"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a tracked unit of work. A task may reference a parent task,
// forming a tree; deleting a parent cascades to its descendants at the
// storage layer.
type Task struct {
	ID           int64      `json:"id" db:"id"`
	ParentTaskID *int64     `json:"parent_task_id" db:"parent_task_id"`
	Title        string     `json:"title" db:"title"`
	Description  *string    `json:"description" db:"description"`
	Status       TaskStatus `json:"status" db:"status"`
	Priority     Priority   `json:"priority" db:"priority"`
	Progress     int        `json:"progress_percentage" db:"progress_percentage"`
	DueDate      time.Time  `json:"due_date" db:"due_date"`
	Difficulties *string    `json:"difficulties" db:"difficulties"`
	Solutions    *string    `json:"solutions" db:"solutions"`
	Notes        *string    `json:"notes" db:"notes"`
	Subtasks     []Task     `json:"subtasks"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// NormalizeStatus folds legacy underscored status spellings into the
// canonical hyphenated enum. Unrecognized values pass through unchanged so
// aggregation keeps counting them toward totals only.
func NormalizeStatus(s TaskStatus) TaskStatus {
	switch s {
	case "not_started":
		return TaskStatusNotStarted
	case "in_progress":
		return TaskStatusInProgress
	default:
		return s
	}
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// Next returns the status a toggle advances to: not-started → in-progress →
// completed → not-started.
func (ts TaskStatus) Next() TaskStatus {
	switch NormalizeStatus(ts) {
	case TaskStatusNotStarted:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusCompleted
	case TaskStatusCompleted:
		return TaskStatusNotStarted
	default:
		return TaskStatusNotStarted
	}
}

// Label returns the human-readable form used in report section headings.
func (ts TaskStatus) Label() string {
	switch NormalizeStatus(ts) {
	case TaskStatusNotStarted:
		return "Not Started"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(ts)
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Label returns the capitalized priority name for report badges.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}

func (t Task) IsCompleted() bool {
	return NormalizeStatus(t.Status) == TaskStatusCompleted
}

func (t Task) HasDetails() bool {
	return t.Difficulties != nil || t.Solutions != nil || t.Notes != nil
}
