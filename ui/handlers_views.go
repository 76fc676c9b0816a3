package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/charts"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/hypotest"
)

// navEntry is one navigation link of the page shell
type navEntry struct {
	Screen Screen
	Title  string
	Path   string
	Active bool
}

// pageData is the shared template payload for every screen shell
type pageData struct {
	Screen  Screen
	Title   string
	Nav     []navEntry
	Warning string

	// Dataset context
	HasDataset  bool
	DatasetName string
	Columns     []dataset.FieldInfo
	NumericCols []string
	Preview     [][]string
	Headers     []string
	RowCount    int

	// Visualize
	ChartKinds []charts.Kind

	// Test
	TestKinds []hypotest.Kind

	// Predict
	ModelLoaded bool
	ModelError  string
	Features    []featureWidget
}

// featureWidget describes one input widget of the prediction form
type featureWidget struct {
	Name        string
	Categorical bool
	Classes     []string
	Min         float64
	Max         float64
	Mean        float64
}

// handleScreen renders the page shell for the requested screen. All five
// screens dispatch through this single switch.
func (a *App) handleScreen(w http.ResponseWriter, r *http.Request) {
	screen := ParseScreen(chi.URLParam(r, "screen"))
	sess := sessionFrom(r)

	data := pageData{
		Screen: screen,
		Title:  screen.Title(),
	}
	for _, s := range Screens() {
		data.Nav = append(data.Nav, navEntry{
			Screen: s,
			Title:  s.Title(),
			Path:   s.Path(),
			Active: s == screen,
		})
	}

	if table, ok := sess.Dataset(); ok {
		data.HasDataset = true
		data.DatasetName = table.Name
		data.Headers = table.Headers
		data.RowCount = table.RowCount()
	}

	switch screen {
	case ScreenHome:
		// Static landing screen; nothing else to assemble.

	case ScreenImport:
		if table, ok := sess.Dataset(); ok {
			data.Preview = table.Preview(a.config.Upload.PreviewRows)
		}

	case ScreenVisualize:
		data.ChartKinds = []charts.Kind{charts.KindHistogram, charts.KindBox, charts.KindScatter, charts.KindPie}
		table, ok := sess.Dataset()
		if !ok {
			data.Warning = "Import a data file first."
			break
		}
		data.Columns = table.Fields()

	case ScreenTest:
		data.TestKinds = hypotest.Kinds()
		table, ok := sess.Dataset()
		if !ok {
			data.Warning = "Import data first."
			break
		}
		data.NumericCols = table.NumericColumns()
		if len(data.NumericCols) < 2 {
			data.Warning = "Need at least two numeric columns."
		}

	case ScreenPredict:
		if !a.predictor.Ready() {
			data.ModelError = "The file " + a.config.Model.BundleFile +
				" was not found. Run the training procedure first to generate the model."
			break
		}
		data.ModelLoaded = true
		data.Features = buildFeatureWidgets(a.predictor.Bundle())
	}

	a.renderTemplate(w, screen.Template(), data)
}

// buildFeatureWidgets seeds input widgets from the bundle's recorded stats:
// categorical features become closed selects, numeric features become
// bounded inputs defaulting to the recorded mean.
func buildFeatureWidgets(b *bundle.Bundle) []featureWidget {
	widgets := make([]featureWidget, 0, len(b.Features))
	for _, feature := range b.Features {
		info := b.StatsFor(feature)
		if info.Type == bundle.FeatureCategorical {
			widgets = append(widgets, featureWidget{
				Name:        feature,
				Categorical: true,
				Classes:     info.Classes,
			})
			continue
		}
		widgets = append(widgets, featureWidget{
			Name: feature,
			Min:  info.Min,
			Max:  info.Max,
			Mean: info.Mean,
		})
	}
	return widgets
}
