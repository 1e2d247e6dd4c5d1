package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/stats"
	"github.com/workreport/core/internal/infrastructure/logger"
	"github.com/workreport/core/internal/ports"
)

// TaskService handles task CRUD and the dashboard/list read views
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
}

var _ ports.TaskService = (*TaskService)(nil)

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Dashboard returns all tasks with subtasks attached, ordered by due date
// descending, plus the aggregate stats of the week containing ref.
func (s *TaskService) Dashboard(ctx context.Context, ref time.Time) (*ports.DashboardData, error) {
	tasks, err := s.taskRepo.List(ctx, ports.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks, err = s.taskRepo.AttachSubtasks(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to attach subtasks: %w", err)
	}

	weekly, err := s.weeklyStats(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardData{
		Tasks:       tasks,
		WeeklyStats: weekly,
	}, nil
}

// ListTasks returns tasks matching filter plus weekly stats and an echo of
// the applied filters.
func (s *TaskService) ListTasks(ctx context.Context, filter ports.TaskFilter, ref time.Time) (*ports.TaskListData, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	weekly, err := s.weeklyStats(ctx, ref)
	if err != nil {
		return nil, err
	}

	applied := ports.AppliedFilters{Search: filter.Search}
	if filter.StartDate != nil {
		v := filter.StartDate.Format("2006-01-02")
		applied.StartDate = &v
	}
	if filter.EndDate != nil {
		v := filter.EndDate.Format("2006-01-02")
		applied.EndDate = &v
	}

	return &ports.TaskListData{
		Tasks:       tasks,
		Filters:     applied,
		WeeklyStats: weekly,
	}, nil
}

// CreateTask validates the full field set and persists a new task.
func (s *TaskService) CreateTask(ctx context.Context, input ports.TaskInput) (*entities.Task, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	task := &entities.Task{
		ParentTaskID: input.ParentTaskID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       entities.NormalizeStatus(input.Status),
		Priority:     input.Priority,
		Progress:     input.Progress,
		DueDate:      stats.DateOf(input.DueDate),
		Difficulties: input.Difficulties,
		Solutions:    input.Solutions,
		Notes:        input.Notes,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task created successfully", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// UpdateTask replaces every field of an existing task atomically; there are
// no partial-field semantics.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, input ports.TaskInput) (*entities.Task, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.ParentTaskID = input.ParentTaskID
	task.Title = input.Title
	task.Description = input.Description
	task.Status = entities.NormalizeStatus(input.Status)
	task.Priority = input.Priority
	task.Progress = input.Progress
	task.DueDate = stats.DateOf(input.DueDate)
	task.Difficulties = input.Difficulties
	task.Solutions = input.Solutions
	task.Notes = input.Notes

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("Task updated successfully", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// DeleteTask removes a task and, through the storage cascade, all of its
// descendants.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Task deleted successfully", "task_id", id)

	return nil
}

// ToggleStatus advances a task's status through the fixed cycle.
func (s *TaskService) ToggleStatus(ctx context.Context, id int64) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = task.Status.Next()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to toggle task status: %w", err)
	}

	s.logger.Info("Task status toggled", "task_id", task.ID, "status", task.Status)

	return task, nil
}

// UpdateProgress sets only the progress percentage of a task.
func (s *TaskService) UpdateProgress(ctx context.Context, id int64, progress int) (*entities.Task, error) {
	if progress < 0 || progress > 100 {
		return nil, entities.ErrInvalidProgress
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Progress = progress

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task progress: %w", err)
	}

	s.logger.Info("Task progress updated", "task_id", task.ID, "progress", progress)

	return task, nil
}

func (s *TaskService) weeklyStats(ctx context.Context, ref time.Time) (stats.WeeklyStats, error) {
	start, end := stats.WeekBounds(ref)

	weekTasks, err := s.taskRepo.ListInRange(ctx, start, end)
	if err != nil {
		return stats.WeeklyStats{}, fmt.Errorf("failed to load weekly tasks: %w", err)
	}

	return stats.WeeklyOverview(weekTasks), nil
}

// validateInput enforces domain invariants before any write happens. The HTTP
// layer already rejects malformed payloads; this is the validate-then-act
// guard for non-HTTP callers.
func (s *TaskService) validateInput(ctx context.Context, input ports.TaskInput) error {
	if !entities.NormalizeStatus(input.Status).IsValid() {
		return entities.ErrInvalidStatus
	}
	if !input.Priority.IsValid() {
		return entities.ErrInvalidPriority
	}
	if input.Progress < 0 || input.Progress > 100 {
		return entities.ErrInvalidProgress
	}

	if input.ParentTaskID != nil {
		if _, err := s.taskRepo.GetByID(ctx, *input.ParentTaskID); err != nil {
			if errors.Is(err, entities.ErrTaskNotFound) {
				return entities.ErrParentNotFound
			}
			return fmt.Errorf("parent task: %w", err)
		}
	}

	return nil
}
