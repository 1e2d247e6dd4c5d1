package services

import (
	"context"
	"fmt"
	"time"

	"github.com/workreport/core/internal/domain/entities"
	"github.com/workreport/core/internal/domain/report"
	"github.com/workreport/core/internal/domain/stats"
	"github.com/workreport/core/internal/infrastructure/logger"
	"github.com/workreport/core/internal/ports"
)

// ReportService assembles report models and renders them through the
// document renderer port.
type ReportService struct {
	taskRepo ports.TaskRepository
	renderer ports.ReportRenderer
	logger   *logger.Logger
	now      func() time.Time
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(taskRepo ports.TaskRepository, renderer ports.ReportRenderer, logger *logger.Logger) *ReportService {
	return &ReportService{
		taskRepo: taskRepo,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Daily builds and renders the report for a single date. A date with zero
// qualifying tasks produces an empty report, not an error.
func (s *ReportService) Daily(ctx context.Context, date time.Time) (*ports.GeneratedReport, error) {
	date = stats.DateOf(date)

	tasks, err := s.taskRepo.ListOnDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily tasks: %w", err)
	}

	tasks, err = s.taskRepo.AttachSubtasks(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to attach subtasks: %w", err)
	}

	model := report.BuildDaily(tasks, date, s.now())

	return s.render(ctx, model)
}

// Weekly builds and renders the report for the range from start through the
// Sunday of start's week.
func (s *ReportService) Weekly(ctx context.Context, start time.Time) (*ports.GeneratedReport, error) {
	start = stats.DateOf(start)
	end := stats.EndOfWeek(start)

	tasks, err := s.taskRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly tasks: %w", err)
	}

	tasks, err = s.taskRepo.AttachSubtasks(ctx, tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to attach subtasks: %w", err)
	}

	model := report.BuildWeekly(tasks, start, end, s.now())

	return s.render(ctx, model)
}

// Generate dispatches to the daily or weekly builder by report type.
func (s *ReportService) Generate(ctx context.Context, typ report.Type, start time.Time) (*ports.GeneratedReport, error) {
	switch typ {
	case report.TypeDaily:
		return s.Daily(ctx, start)
	case report.TypeWeekly:
		return s.Weekly(ctx, start)
	default:
		return nil, fmt.Errorf("generate report: %w", entities.ErrInvalidReportType)
	}
}

func (s *ReportService) render(ctx context.Context, model *report.Model) (*ports.GeneratedReport, error) {
	pdf, err := s.renderer.Render(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", model.Type, err)
	}

	s.logger.LogReportGenerated(string(model.Type), model.Filename, len(model.Tasks), len(pdf))

	return &ports.GeneratedReport{Model: model, PDF: pdf}, nil
}
