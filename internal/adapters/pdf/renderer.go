// Package pdf implements the document renderer port: it populates an HTML
// template with the report model and converts it to PDF through wkhtmltopdf.
package pdf

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/workreport/core/internal/domain/report"
	"github.com/workreport/core/internal/infrastructure/config"
	"github.com/workreport/core/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"longDate":    func(t time.Time) string { return t.Format("January 02, 2006") },
	"shortDate":   func(t time.Time) string { return t.Format("Jan 02, 2006") },
	"dayHeading":  func(t time.Time) string { return t.Format("Monday, January 02, 2006") },
	"generatedAt": func(t time.Time) string { return t.Format("January 02, 2006 at 03:04 PM") },
	"str": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
}

// Renderer renders report models to PDF bytes. Rendering is synchronous and
// blocking; a failure propagates to the caller with no partial output.
type Renderer struct {
	templates *template.Template
}

var _ ports.ReportRenderer = (*Renderer)(nil)

// NewRenderer parses the embedded report templates and configures the
// wkhtmltopdf binary path if one is set.
func NewRenderer(cfg config.ReportsConfig) (*Renderer, error) {
	if cfg.WkhtmltopdfPath != "" {
		wkhtmltopdf.SetPath(cfg.WkhtmltopdfPath)
	}

	templates, err := template.New("reports").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse report templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render populates the template matching the model type and pipes the HTML
// through wkhtmltopdf.
func (r *Renderer) Render(ctx context.Context, model *report.Model) ([]byte, error) {
	var html bytes.Buffer
	templateName := string(model.Type) + ".html"

	if err := r.templates.ExecuteTemplate(&html, templateName, model); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", templateName, err)
	}

	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("create pdf generator: %w", err)
	}

	generator.MarginTop.Set(25)
	generator.MarginBottom.Set(25)
	generator.MarginLeft.Set(25)
	generator.MarginRight.Set(25)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html.Bytes()))
	generator.AddPage(page)

	if err := generator.CreateContext(ctx); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return generator.Bytes(), nil
}
