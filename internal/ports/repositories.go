package ports

import (
	"context"
	"time"

	"github.com/workreport/core/internal/domain/entities"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id int64) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]entities.Task, error)
	ListOnDate(ctx context.Context, date time.Time) ([]entities.Task, error)
	GetSubtasks(ctx context.Context, parentID int64) ([]entities.Task, error)
	AttachSubtasks(ctx context.Context, tasks []entities.Task) ([]entities.Task, error)
}

// TaskFilter narrows List results. Search matches title or description
// case-insensitively; the date range is inclusive on both ends. Nil fields
// apply no filtering.
type TaskFilter struct {
	Search    *string
	StartDate *time.Time
	EndDate   *time.Time
}
