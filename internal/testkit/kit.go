// Package testkit generates deterministic synthetic fixtures: a
// diabetes-style dataset for the screens and a valid model bundle artifact
// for the loader and predictor.
package testkit

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
)

// GeneratorConfig configures the synthetic health-data generator
type GeneratorConfig struct {
	Rows int   `json:"rows"`
	Seed int64 `json:"seed"`
}

// DefaultConfig returns sensible defaults for synthetic data generation
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{Rows: 200, Seed: 42}
}

// Generate produces a diabetes-style table: Age, Glucose, BMI, BloodPressure,
// Smoker, Outcome. Glucose trends upward with age so scatter and rank tests
// have a real signal to find.
func Generate(cfg GeneratorConfig) (*dataset.Table, error) {
	if cfg.Rows <= 0 {
		return nil, fmt.Errorf("rows must be positive, got %d", cfg.Rows)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	headers := []string{"Age", "Glucose", "BMI", "BloodPressure", "Smoker", "Outcome"}
	rows := make([][]string, cfg.Rows)
	for i := range rows {
		age := 20 + rng.Float64()*60
		glucose := 70 + age*0.8 + rng.NormFloat64()*12
		bmi := 18 + rng.Float64()*22
		pressure := 60 + rng.Float64()*60
		smoker := "no"
		if rng.Float64() < 0.3 {
			smoker = "yes"
		}
		risk := sigmoid((glucose-120)/20 + (bmi-30)/8)
		outcome := "0"
		if rng.Float64() < risk {
			outcome = "1"
		}
		rows[i] = []string{
			fmt.Sprintf("%.0f", age),
			fmt.Sprintf("%.1f", glucose),
			fmt.Sprintf("%.1f", bmi),
			fmt.Sprintf("%.0f", pressure),
			smoker,
			outcome,
		}
	}

	return &dataset.Table{
		Name:    "synthetic_diabetes",
		Headers: headers,
		Rows:    rows,
	}, nil
}

// SampleBundle returns a small, well-formed classifier bundle over the same
// schema the generator produces.
func SampleBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Loaded: true,
		Model: &bundle.LogisticModel{
			Weights: []float64{0.03, 0.05, 0.08, 0.01, 0.6},
			Bias:    -12.0,
		},
		Encoders: map[string]*bundle.LabelEncoder{
			"Smoker": {Classes: []string{"no", "yes"}},
		},
		Features: []string{"Age", "Glucose", "BMI", "BloodPressure", "Smoker"},
		Stats: map[string]bundle.FeatureStats{
			"Age":           {Type: bundle.FeatureNumeric, Min: 20, Max: 80, Mean: 50},
			"Glucose":       {Type: bundle.FeatureNumeric, Min: 60, Max: 200, Mean: 110},
			"BMI":           {Type: bundle.FeatureNumeric, Min: 18, Max: 40, Mean: 28},
			"BloodPressure": {Type: bundle.FeatureNumeric, Min: 60, Max: 120, Mean: 85},
			"Smoker":        {Type: bundle.FeatureCategorical, Classes: []string{"no", "yes"}},
		},
	}
}

// WriteBundleFile serializes the sample bundle to path in the artifact's
// on-disk JSON layout.
func WriteBundleFile(path string) error {
	b := SampleBundle()
	payload := map[string]interface{}{
		"model":    b.Model,
		"encoders": b.Encoders,
		"features": b.Features,
		"stats":    b.Stats,
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bundle fixture: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write bundle fixture: %w", err)
	}
	return nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
