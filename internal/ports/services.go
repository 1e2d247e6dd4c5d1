package ports

import (
	"context"
	"time"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/report"
	"github.com/workreport/core/internal/domain/stats"
)

// TaskService interface for task CRUD and the two read-only views.
type TaskService interface {
	Dashboard(ctx context.Context, ref time.Time) (*DashboardData, error)
	ListTasks(ctx context.Context, filter TaskFilter, ref time.Time) (*TaskListData, error)
	CreateTask(ctx context.Context, input TaskInput) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, input TaskInput) (*entities.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) (*entities.Task, error)
	UpdateProgress(ctx context.Context, id int64, progress int) (*entities.Task, error)
}

// ReportService interface for report generation.
type ReportService interface {
	Daily(ctx context.Context, date time.Time) (*GeneratedReport, error)
	Weekly(ctx context.Context, start time.Time) (*GeneratedReport, error)
	Generate(ctx context.Context, typ report.Type, start time.Time) (*GeneratedReport, error)
}

// ReportRenderer produces a PDF byte stream from a report model. Rendering is
// synchronous and in-request; implementations must not retry.
type ReportRenderer interface {
	Render(ctx context.Context, model *report.Model) ([]byte, error)
}

// TaskInput carries the full field set for create and update. Updates replace
// every field; there are no partial-field semantics.
type TaskInput struct {
	Title        string
	Description  *string
	Status       entities.TaskStatus
	Priority     entities.Priority
	Progress     int
	DueDate      time.Time
	Difficulties *string
	Solutions    *string
	Notes        *string
	ParentTaskID *int64
}

// DashboardData is the dashboard view payload.
type DashboardData struct {
	Tasks       []entities.Task   `json:"tasks"`
	WeeklyStats stats.WeeklyStats `json:"weeklyStats"`
}

// TaskListData is the filtered list view payload; Filters echoes the filters
// actually applied so the caller can round-trip them.
type TaskListData struct {
	Tasks       []entities.Task   `json:"tasks"`
	Filters     AppliedFilters    `json:"filters"`
	WeeklyStats stats.WeeklyStats `json:"weeklyStats"`
}

// AppliedFilters mirrors the query parameters of the list view.
type AppliedFilters struct {
	Search    *string `json:"search"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// GeneratedReport pairs the report model with its rendered PDF.
type GeneratedReport struct {
	Model *report.Model
	PDF   []byte
}
