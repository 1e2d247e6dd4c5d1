package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/infrastructure/logger"
	"github.com/workreport/core/internal/ports"
)

// TaskHandler handles dashboard, list and task mutation requests
type TaskHandler struct {
	taskService ports.TaskService
	logger      *logger.Logger
	now         func() time.Time
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
		now:         time.Now,
	}
}

// Dashboard handles the dashboard view: all tasks with subtasks attached plus
// the current week's aggregate stats
// @Summary Dashboard view
// @Tags tasks
// @Produce json
// @Success 200 {object} ports.DashboardData
// @Router / [get]
func (h *TaskHandler) Dashboard(c echo.Context) error {
	data, err := h.taskService.Dashboard(c.Request().Context(), h.now())
	if err != nil {
		h.logger.Error("Dashboard failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.JSON(http.StatusOK, data)
}

// ListTasks handles the filtered task list view
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param search query string false "Match title or description"
// @Param start_date query string false "Due date range start (YYYY-MM-DD)"
// @Param end_date query string false "Due date range end (YYYY-MM-DD)"
// @Success 200 {object} ports.TaskListData
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	filter := ports.TaskFilter{}
	fields := make(map[string]string)

	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}

	if startStr := c.QueryParam("start_date"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			fields["start_date"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			filter.StartDate = &start
		}
	}

	if endStr := c.QueryParam("end_date"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			fields["end_date"] = "must be a valid date (YYYY-MM-DD)"
		} else {
			filter.EndDate = &end
		}
	}

	if len(fields) > 0 {
		return validationError(c, fields)
	}

	data, err := h.taskService.ListTasks(c.Request().Context(), filter, h.now())
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve tasks")
	}

	return c.JSON(http.StatusOK, data)
}

// CreateTask handles task creation
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body TaskRequest true "Task fields"
// @Success 201 {object} entities.Task
// @Failure 422 {object} ValidationErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, validationFields(err))
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.toInput())
	if err != nil {
		return h.mutationError(c, "Create task failed", err)
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask handles full-replace task updates
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body TaskRequest true "Task fields"
// @Success 200 {object} entities.Task
// @Failure 404 {object} echo.HTTPError
// @Failure 422 {object} ValidationErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, validationFields(err))
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.mutationError(c, "Update task failed", err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles task deletion; descendants are removed by the storage
// layer's cascade
// @Summary Delete a task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} echo.HTTPError
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		h.logger.Error("Delete task failed", "error", err, "task_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete task")
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleStatus advances the task status one step along the cycle
// not-started, in-progress, completed and back
// @Summary Toggle task status
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} echo.HTTPError
// @Router /tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleStatus(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, "Toggle status failed", err)
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateProgress sets only the progress percentage
// @Summary Update task progress
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param progress body ProgressRequest true "Progress percentage"
// @Success 200 {object} entities.Task
// @Failure 404 {object} echo.HTTPError
// @Failure 422 {object} ValidationErrorResponse
// @Router /tasks/{id}/progress [post]
func (h *TaskHandler) UpdateProgress(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req ProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, validationFields(err))
	}

	task, err := h.taskService.UpdateProgress(c.Request().Context(), id, *req.Progress)
	if err != nil {
		return h.mutationError(c, "Update progress failed", err)
	}

	return c.JSON(http.StatusOK, task)
}

// mutationError maps service errors onto HTTP responses shared by the write
// endpoints.
func (h *TaskHandler) mutationError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, entities.ErrParentNotFound):
		return validationError(c, map[string]string{"parent_task_id": "parent task not found"})
	case errors.Is(err, entities.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, entities.ErrInvalidStatus):
		return validationError(c, map[string]string{"status": "must be one of: not-started in-progress completed"})
	case errors.Is(err, entities.ErrInvalidPriority):
		return validationError(c, map[string]string{"priority": "must be one of: low medium high"})
	case errors.Is(err, entities.ErrInvalidProgress):
		return validationError(c, map[string]string{"progress_percentage": "must be between 0 and 100"})
	default:
		h.logger.Error(msg, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Request failed")
	}
}

func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid task ID")
	}
	return id, nil
}

func (r TaskRequest) toInput() ports.TaskInput {
	// DueDate already passed the datetime validator, so Parse cannot fail.
	dueDate, _ := time.Parse("2006-01-02", r.DueDate)

	return ports.TaskInput{
		Title:        r.Title,
		Description:  r.Description,
		Status:       entities.TaskStatus(r.Status),
		Priority:     entities.Priority(r.Priority),
		Progress:     *r.Progress,
		DueDate:      dueDate,
		Difficulties: r.Difficulties,
		Solutions:    r.Solutions,
		Notes:        r.Notes,
		ParentTaskID: r.ParentTaskID,
	}
}
