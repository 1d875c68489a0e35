package presentation

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/m04kA/kstudio-agenda/internal/domain"
	"github.com/m04kA/kstudio-agenda/pkg/countdown"
)

//go:embed templates/grid.html
var templatesFS embed.FS

const gridTemplate = "grid.html"

var statusLabels = map[domain.SlotStatus]string{
	domain.SlotAvailable: "Disponível",
	domain.SlotDisputed:  "Em Disputa",
	domain.SlotFull:      "Cheio",
}

// View HTML-представление сетки слотов
type View struct {
	tpl     *template.Template
	catalog *domain.Catalog
	step    int
}

// Page данные шаблона
type Page struct {
	Grid           domain.SlotGrid
	Services       []domain.Service
	BufferMinutes  int
	StepMinutes    int
	Date           string
	HoldMinutes    int
	MinHoldMinutes int
	MaxHoldMinutes int
}

// NewView разбирает встроенный шаблон
func NewView(catalog *domain.Catalog, stepMinutes int) (*View, error) {
	tpl, err := template.New(gridTemplate).Funcs(template.FuncMap{
		"clock":       countdown.FormatClock,
		"duration":    domain.FormatDuration,
		"statusLabel": func(s domain.SlotStatus) string { return statusLabels[s] },
	}).ParseFS(templatesFS, "templates/"+gridTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", gridTemplate, err)
	}

	return &View{tpl: tpl, catalog: catalog, step: stepMinutes}, nil
}

// Render пишет страницу с сеткой
func (v *View) Render(w io.Writer, grid domain.SlotGrid) error {
	return v.tpl.ExecuteTemplate(w, gridTemplate, v.page(grid))
}

func (v *View) page(grid domain.SlotGrid) Page {
	return Page{
		Grid:           grid,
		Services:       v.catalog.Services(),
		BufferMinutes:  v.catalog.BufferMinutes(),
		StepMinutes:    v.step,
		Date:           grid.Selection.Date.Format(domain.DateFormat),
		HoldMinutes:    grid.Selection.HoldMinutes(),
		MinHoldMinutes: domain.MinHoldMinutes,
		MaxHoldMinutes: domain.MaxHoldMinutes,
	}
}
