package ui

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/charts"
)

// chartResult is the payload of the chart fragment
type chartResult struct {
	Error          string
	Warning        string
	Title          string
	SpecJSON       template.JS
	Interpretation template.HTML
}

// handleChartBuild builds the selected chart plus its interpretation.
// Missing preconditions (no dataset, scatter without Y) surface as warnings
// that skip the chart without crashing the screen.
func (a *App) handleChartBuild(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	table, ok := sess.Dataset()
	if !ok {
		a.renderTemplate(w, "chart_result.html", chartResult{Warning: "Import a data file first."})
		return
	}

	kind, err := charts.ParseKind(r.FormValue("kind"))
	if err != nil {
		a.renderTemplate(w, "chart_result.html", chartResult{Error: err.Error()})
		return
	}

	color := r.FormValue("color")
	if color == "" {
		color = "#0E6BA8"
	}

	req := charts.Request{
		X:     r.FormValue("x"),
		Y:     r.FormValue("y"),
		Kind:  kind,
		Color: color,
	}

	chart, err := a.builder.Build(table, req)
	if err != nil {
		if errors.Is(err, core.ErrMissingY) {
			a.renderTemplate(w, "chart_result.html", chartResult{
				Warning: "Please choose a Y variable for a scatter plot.",
			})
			return
		}
		log.Printf("[handleChartBuild] FAILED - %v", err)
		a.renderTemplate(w, "chart_result.html", chartResult{Error: err.Error()})
		return
	}

	a.renderTemplate(w, "chart_result.html", chartResult{
		Title:          chart.Title,
		SpecJSON:       toJSON(chart),
		Interpretation: renderMarkdown(chart.Interpretation),
	})
}
