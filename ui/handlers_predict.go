package ui

import (
	"html/template"
	"log"
	"net/http"

	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/predict"
)

// predictResult is the payload of the prediction fragment
type predictResult struct {
	Error      string
	Prediction *predict.Prediction
	GaugeJSON  template.JS
}

// gaugeSpec is the client-side gauge drawing payload
type gaugeSpec struct {
	Value float64             `json:"value"`
	Steps []predict.GaugeStep `json:"steps"`
	Color string              `json:"color"`
	Title string              `json:"title"`
}

// handlePredict assembles the user input vector, runs inference and renders
// the gauge plus the risk verdict. Every failure here is non-fatal: the
// screen stays usable for retry.
func (a *App) handlePredict(w http.ResponseWriter, r *http.Request) {
	if !a.predictor.Ready() {
		a.renderTemplate(w, "predict_result.html", predictResult{
			Error: "The model bundle is not loaded. Run the training procedure first.",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		a.renderTemplate(w, "predict_result.html", predictResult{Error: "Invalid form submission"})
		return
	}

	input := make(map[string]string, len(a.predictor.Bundle().Features))
	for _, feature := range a.predictor.Bundle().Features {
		input[feature] = r.FormValue(feature)
	}

	prediction, err := a.predictor.Predict(input)
	if err != nil {
		log.Printf("[handlePredict] FAILED - %v", err)
		a.renderTemplate(w, "predict_result.html", predictResult{Error: err.Error()})
		return
	}

	a.renderTemplate(w, "predict_result.html", predictResult{
		Prediction: prediction,
		GaugeJSON: toJSON(gaugeSpec{
			Value: prediction.Probability,
			Steps: predict.GaugeSteps(),
			Color: "#0E6BA8",
			Title: "Diabetes probability",
		}),
	})
}
