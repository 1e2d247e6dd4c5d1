package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/stats"
	"github.com/workreport/core/internal/infrastructure/logger"
	"github.com/workreport/core/internal/ports"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Dashboard(ctx context.Context, ref time.Time) (*ports.DashboardData, error) {
	args := m.Called(ctx, ref)

	var data *ports.DashboardData
	if value := args.Get(0); value != nil {
		data = value.(*ports.DashboardData)
	}
	return data, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter ports.TaskFilter, ref time.Time) (*ports.TaskListData, error) {
	args := m.Called(ctx, filter, ref)

	var data *ports.TaskListData
	if value := args.Get(0); value != nil {
		data = value.(*ports.TaskListData)
	}
	return data, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input ports.TaskInput) (*entities.Task, error) {
	args := m.Called(ctx, input)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id int64, input ports.TaskInput) (*entities.Task, error) {
	args := m.Called(ctx, id, input)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) ToggleStatus(ctx context.Context, id int64) (*entities.Task, error) {
	args := m.Called(ctx, id)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateProgress(ctx context.Context, id int64, progress int) (*entities.Task, error) {
	args := m.Called(ctx, id, progress)

	var task *entities.Task
	if value := args.Get(0); value != nil {
		task = value.(*entities.Task)
	}
	return task, args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	e := echo.New()
	e.Validator = &testValidator{validator: v}
	return e
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Errors
}

const validTaskBody = `{
	"title": "Write migration",
	"status": "in-progress",
	"priority": "high",
	"progress_percentage": 40,
	"due_date": "2024-12-18"
}`

func TestTaskHandler_Dashboard(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("Dashboard", mock.Anything, mock.Anything).Return(&ports.DashboardData{
		Tasks: []entities.Task{{ID: 1, Title: "Write migration"}},
		WeeklyStats: stats.WeeklyStats{
			StatusCounts: stats.StatusCounts{Total: 1, InProgress: 1},
		},
	}, nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.GET("/", handler.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got ports.DashboardData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Tasks, 1)
	require.Equal(t, 1, got.WeeklyStats.Total)
	svc.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Filters(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("ListTasks", mock.Anything, mock.MatchedBy(func(filter ports.TaskFilter) bool {
		return filter.Search != nil && *filter.Search == "migration" &&
			filter.StartDate != nil && filter.StartDate.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)) &&
			filter.EndDate == nil
	}), mock.Anything).Return(&ports.TaskListData{}, nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.GET("/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/tasks?search=migration&start_date=2024-12-01", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_MalformedDate(t *testing.T) {
	svc := new(taskServiceMock)
	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.GET("/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/tasks?start_date=18-12-2024", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := decodeErrors(t, rec)
	require.Contains(t, fields, "start_date")
	svc.AssertNotCalled(t, "ListTasks")
}

func TestTaskHandler_CreateTask(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("CreateTask", mock.Anything, mock.MatchedBy(func(input ports.TaskInput) bool {
		return input.Title == "Write migration" &&
			input.Status == entities.TaskStatusInProgress &&
			input.Priority == entities.PriorityHigh &&
			input.Progress == 40 &&
			input.DueDate.Equal(time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC))
	})).Return(&entities.Task{ID: 7, Title: "Write migration"}, nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks", handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(validTaskBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got entities.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(7), got.ID)
	svc.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_ValidationErrors(t *testing.T) {
	svc := new(taskServiceMock)
	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks", handler.CreateTask)

	body := `{"title": "", "status": "done", "priority": "high", "progress_percentage": 140, "due_date": "soon"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := decodeErrors(t, rec)
	require.Equal(t, "is required", fields["title"])
	require.Equal(t, "must be one of: not-started in-progress completed", fields["status"])
	require.Equal(t, "must be at most 100", fields["progress_percentage"])
	require.Equal(t, "must be a valid date (YYYY-MM-DD)", fields["due_date"])
	svc.AssertNotCalled(t, "CreateTask")
}

func TestTaskHandler_CreateTask_ParentMissing(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("CreateTask", mock.Anything, mock.Anything).Return(nil, entities.ErrParentNotFound).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks", handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(validTaskBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := decodeErrors(t, rec)
	require.Contains(t, fields, "parent_task_id")
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("UpdateTask", mock.Anything, int64(404), mock.Anything).Return(nil, entities.ErrTaskNotFound).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.PUT("/tasks/:id", handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPut, "/tasks/404", strings.NewReader(validTaskBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("DeleteTask", mock.Anything, int64(5)).Return(nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.DELETE("/tasks/:id", handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestTaskHandler_InvalidID(t *testing.T) {
	svc := new(taskServiceMock)
	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.DELETE("/tasks/:id", handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/tasks/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DeleteTask")
}

func TestTaskHandler_ToggleStatus(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("ToggleStatus", mock.Anything, int64(3)).Return(&entities.Task{ID: 3, Status: entities.TaskStatusCompleted}, nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks/:id/toggle", handler.ToggleStatus)

	req := httptest.NewRequest(http.MethodPost, "/tasks/3/toggle", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got entities.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, entities.TaskStatusCompleted, got.Status)
	svc.AssertExpectations(t)
}

func TestTaskHandler_UpdateProgress(t *testing.T) {
	svc := new(taskServiceMock)
	svc.On("UpdateProgress", mock.Anything, int64(3), 80).Return(&entities.Task{ID: 3, Progress: 80}, nil).Once()

	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks/:id/progress", handler.UpdateProgress)

	req := httptest.NewRequest(http.MethodPost, "/tasks/3/progress", strings.NewReader(`{"progress_percentage": 80}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestTaskHandler_UpdateProgress_OutOfRange(t *testing.T) {
	svc := new(taskServiceMock)
	handler := NewTaskHandler(svc, logger.NewNop())

	e := newTestEcho()
	e.POST("/tasks/:id/progress", handler.UpdateProgress)

	req := httptest.NewRequest(http.MethodPost, "/tasks/3/progress", strings.NewReader(`{"progress_percentage": 120}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	fields := decodeErrors(t, rec)
	require.Contains(t, fields, "progress_percentage")
	svc.AssertNotCalled(t, "UpdateProgress")
}
