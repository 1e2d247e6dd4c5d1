package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workreport/core/internal/domain/report"
	"github.com/workreport/core/internal/domain/stats"
	"github.com/workreport/core/internal/infrastructure/logger"
	"github.com/workreport/core/internal/ports"
)

// ReportHandler handles PDF report requests. Every endpoint supports three
// output modes: download=true forces an attachment, json=true or an
// application/pdf Accept header streams the raw bytes, and the default is a
// JSON viewer payload pointing at the raw-bytes URL.
type ReportHandler struct {
	reportService ports.ReportService
	logger        *logger.Logger
	now           func() time.Time
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ports.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
		now:           time.Now,
	}
}

// DailyReport generates the report for the current day
// @Summary Daily report for today
// @Tags reports
// @Produce json,application/pdf
// @Param download query bool false "Force attachment download"
// @Param json query bool false "Stream raw PDF bytes"
// @Success 200 {object} ViewerResponse
// @Router /tasks/report/daily [get]
func (h *ReportHandler) DailyReport(c echo.Context) error {
	rep, err := h.reportService.Daily(c.Request().Context(), stats.DateOf(h.now()))
	if err != nil {
		h.logger.Error("Daily report failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate report")
	}

	return h.respond(c, rep, "/tasks/report/daily?json=true")
}

// WeeklyReport generates the report for the current week, Monday through
// Sunday
// @Summary Weekly report for the current week
// @Tags reports
// @Produce json,application/pdf
// @Param download query bool false "Force attachment download"
// @Param json query bool false "Stream raw PDF bytes"
// @Success 200 {object} ViewerResponse
// @Router /tasks/report/weekly [get]
func (h *ReportHandler) WeeklyReport(c echo.Context) error {
	start, _ := stats.WeekBounds(h.now())

	rep, err := h.reportService.Weekly(c.Request().Context(), start)
	if err != nil {
		h.logger.Error("Weekly report failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate report")
	}

	return h.respond(c, rep, "/tasks/report/weekly?json=true")
}

// GenerateReport generates a report of the requested type anchored at an
// arbitrary start date. Both parameters are validated before any data is
// queried.
// @Summary Generate a report for a given type and start date
// @Tags reports
// @Produce json,application/pdf
// @Param type query string true "Report type (daily or weekly)"
// @Param start_date query string true "Anchor date (YYYY-MM-DD)"
// @Param download query bool false "Force attachment download"
// @Param json query bool false "Stream raw PDF bytes"
// @Success 200 {object} ViewerResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /tasks/report [get]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	fields := make(map[string]string)

	typ, err := report.ParseType(c.QueryParam("type"))
	if err != nil {
		fields["type"] = "must be one of: daily weekly"
	}

	start, err := time.Parse("2006-01-02", c.QueryParam("start_date"))
	if err != nil {
		fields["start_date"] = "must be a valid date (YYYY-MM-DD)"
	}

	if len(fields) > 0 {
		return validationError(c, fields)
	}

	rep, err := h.reportService.Generate(c.Request().Context(), typ, start)
	if err != nil {
		h.logger.Error("Report generation failed", "error", err, "type", typ)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate report")
	}

	query := url.Values{}
	query.Set("type", string(typ))
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("json", "true")

	return h.respond(c, rep, "/tasks/report?"+query.Encode())
}

func (h *ReportHandler) respond(c echo.Context, rep *ports.GeneratedReport, pdfURL string) error {
	if boolParam(c, "download") {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Model.Filename+`"`)
		return c.Blob(http.StatusOK, "application/pdf", rep.PDF)
	}

	if boolParam(c, "json") || wantsPDF(c) {
		return c.Blob(http.StatusOK, "application/pdf", rep.PDF)
	}

	return c.JSON(http.StatusOK, ViewerResponse{
		Title:  rep.Model.Title,
		PDFURL: pdfURL,
	})
}

func wantsPDF(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "application/pdf")
}

func boolParam(c echo.Context, name string) bool {
	b, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && b
}
