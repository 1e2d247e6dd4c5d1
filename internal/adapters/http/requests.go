package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TaskRequest carries the full field set required by create and update.
type TaskRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Description  *string `json:"description"`
	Status       string  `json:"status" validate:"required,oneof=not-started in-progress completed"`
	Priority     string  `json:"priority" validate:"required,oneof=low medium high"`
	Progress     *int    `json:"progress_percentage" validate:"required,gte=0,lte=100"`
	DueDate      string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	Difficulties *string `json:"difficulties"`
	Solutions    *string `json:"solutions"`
	Notes        *string `json:"notes"`
	ParentTaskID *int64  `json:"parent_task_id"`
}

// ProgressRequest updates only the progress percentage.
type ProgressRequest struct {
	Progress *int `json:"progress_percentage" validate:"required,gte=0,lte=100"`
}

// ViewerResponse is the default report output mode: a title plus the URL
// that serves the raw PDF bytes.
type ViewerResponse struct {
	Title  string `json:"title"`
	PDFURL string `json:"pdf_url"`
}

// ValidationErrorResponse carries the per-field error map.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// validationError renders a field→message map with 422.
func validationError(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fields})
}

// validationFields converts validator errors into a field→message map keyed
// by the JSON field name.
func validationFields(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["message"] = err.Error()
		return fields
	}

	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "datetime":
		return "must be a valid date (YYYY-MM-DD)"
	default:
		return "is invalid"
	}
}
