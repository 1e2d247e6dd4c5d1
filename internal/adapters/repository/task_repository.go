package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/ports"
)

const taskColumns = `id, parent_task_id, title, description, status, priority,
	progress_percentage, due_date, difficulties, solutions, notes, created_at, updated_at`

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepositoryImpl)(nil)

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (parent_task_id, title, description, status, priority,
			progress_percentage, due_date, difficulties, solutions, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ParentTaskID, task.Title, task.Description, task.Status, task.Priority,
		task.Progress, task.DueDate, task.Difficulties, task.Solutions, task.Notes,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id int64) (*entities.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	var task entities.Task
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET parent_task_id = $2, title = $3, description = $4, status = $5, priority = $6,
			progress_percentage = $7, due_date = $8, difficulties = $9, solutions = $10,
			notes = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.ParentTaskID, task.Title, task.Description, task.Status, task.Priority,
		task.Progress, task.DueDate, task.Difficulties, task.Solutions, task.Notes,
	).Scan(&task.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}

	return nil
}

// Delete removes a task; descendants go with it through the ON DELETE CASCADE
// foreign key, not application logic.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}

	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate, *filter.EndDate)
		query += fmt.Sprintf(" AND due_date BETWEEN $%d AND $%d", len(args)-1, len(args))
	}

	query += " ORDER BY due_date DESC, id"

	var tasks []entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) ListInRange(ctx context.Context, start, end time.Time) ([]entities.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE due_date BETWEEN $1 AND $2
		ORDER BY due_date DESC, id`

	var tasks []entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, start, end); err != nil {
		return nil, fmt.Errorf("list tasks in range: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) ListOnDate(ctx context.Context, date time.Time) ([]entities.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE due_date = $1
		ORDER BY due_date DESC, id`

	var tasks []entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, date); err != nil {
		return nil, fmt.Errorf("list tasks on date: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) GetSubtasks(ctx context.Context, parentID int64) ([]entities.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE parent_task_id = $1
		ORDER BY id`

	var tasks []entities.Task
	if err := r.db.SelectContext(ctx, &tasks, query, parentID); err != nil {
		return nil, fmt.Errorf("get subtasks: %w", err)
	}

	return tasks, nil
}

// AttachSubtasks eagerly loads the direct children of every task in one query
// and attaches them by parent id.
func (r *TaskRepositoryImpl) AttachSubtasks(ctx context.Context, tasks []entities.Task) ([]entities.Task, error) {
	if len(tasks) == 0 {
		return tasks, nil
	}

	ids := make([]int64, 0, len(tasks))
	for i := range tasks {
		ids = append(ids, tasks[i].ID)
	}

	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE parent_task_id = ANY($1)
		ORDER BY id`

	var children []entities.Task
	if err := r.db.SelectContext(ctx, &children, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("attach subtasks: %w", err)
	}

	byParent := make(map[int64][]entities.Task, len(tasks))
	for i := range children {
		if children[i].ParentTaskID == nil {
			continue
		}
		byParent[*children[i].ParentTaskID] = append(byParent[*children[i].ParentTaskID], children[i])
	}

	for i := range tasks {
		tasks[i].Subtasks = byParent[tasks[i].ID]
	}

	return tasks, nil
}
