package ui

import (
	"log"
	"net/http"

	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/hypotest"
)

// testResult is the payload of the single-test fragment
type testResult struct {
	Error   string
	Warning string
	Result  *hypotest.Result
	VarA    string
	VarB    string
}

// sweepResult is the payload of the run-everything fragment
type sweepResult struct {
	Error   string
	Warning string
	Entries []hypotest.SweepEntry
	VarA    string
	VarB    string
}

// handleTestRun executes the selected nonparametric test on two numeric
// columns. Routine errors are surfaced verbatim; the screen stays
// interactive for correction and retry.
func (a *App) handleTestRun(w http.ResponseWriter, r *http.Request) {
	varA, varB := r.FormValue("var_a"), r.FormValue("var_b")

	kind, err := hypotest.ParseKind(r.FormValue("test"))
	if err != nil {
		a.renderTemplate(w, "test_result.html", testResult{Error: err.Error()})
		return
	}

	sampleA, sampleB, warning := a.testSamples(r, varA, varB)
	if warning != "" {
		a.renderTemplate(w, "test_result.html", testResult{Warning: warning})
		return
	}

	result, err := a.runner.Run(kind, sampleA, sampleB)
	if err != nil {
		log.Printf("[handleTestRun] FAILED - %s: %v", kind, err)
		a.renderTemplate(w, "test_result.html", testResult{Error: err.Error()})
		return
	}

	a.renderTemplate(w, "test_result.html", testResult{Result: result, VarA: varA, VarB: varB})
}

// handleTestSweep runs every supported test over the same column pair
func (a *App) handleTestSweep(w http.ResponseWriter, r *http.Request) {
	varA, varB := r.FormValue("var_a"), r.FormValue("var_b")

	sampleA, sampleB, warning := a.testSamples(r, varA, varB)
	if warning != "" {
		a.renderTemplate(w, "test_sweep.html", sweepResult{Warning: warning})
		return
	}

	entries := a.runner.RunAll(r.Context(), sampleA, sampleB)
	a.renderTemplate(w, "test_sweep.html", sweepResult{Entries: entries, VarA: varA, VarB: varB})
}

// testSamples extracts the two numeric samples, reporting screen-level
// warnings for missing preconditions.
func (a *App) testSamples(r *http.Request, varA, varB string) (sampleA, sampleB []float64, warning string) {
	sess := sessionFrom(r)

	table, ok := sess.Dataset()
	if !ok {
		return nil, nil, "Import data first."
	}
	if len(table.NumericColumns()) < 2 {
		return nil, nil, "Need at least two numeric columns."
	}

	sampleA, err := table.NumericColumn(varA)
	if err != nil {
		return nil, nil, "Unknown column: " + varA
	}
	sampleB, err = table.NumericColumn(varB)
	if err != nil {
		return nil, nil, "Unknown column: " + varB
	}
	return sampleA, sampleB, ""
}
