package testkit

import (
	"testing"
)

// TestGenerateDeterministic tests that the same seed yields the same table
func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	first, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.RowCount() != cfg.Rows || second.RowCount() != cfg.Rows {
		t.Fatalf("Expected %d rows, got %d and %d", cfg.Rows, first.RowCount(), second.RowCount())
	}
	for i := range first.Rows {
		for j := range first.Rows[i] {
			if first.Rows[i][j] != second.Rows[i][j] {
				t.Fatalf("Row %d cell %d differs across runs: %q vs %q",
					i, j, first.Rows[i][j], second.Rows[i][j])
			}
		}
	}
}

// TestGenerateSchema tests the generated column types
func TestGenerateSchema(t *testing.T) {
	table, err := Generate(GeneratorConfig{Rows: 100, Seed: 7})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	numeric := table.NumericColumns()
	expectedNumeric := map[string]bool{
		"Age": true, "Glucose": true, "BMI": true, "BloodPressure": true, "Outcome": true,
	}
	for _, col := range numeric {
		if !expectedNumeric[col] {
			t.Errorf("Unexpected numeric column: %s", col)
		}
	}
	if len(numeric) < 4 {
		t.Errorf("Expected at least 4 numeric columns, got %v", numeric)
	}

	smoker, err := table.ValueCounts("Smoker")
	if err != nil {
		t.Fatalf("ValueCounts failed: %v", err)
	}
	for _, vc := range smoker {
		if vc.Value != "no" && vc.Value != "yes" {
			t.Errorf("Unexpected Smoker value: %q", vc.Value)
		}
	}
}

// TestGenerateRejectsNonPositiveRows tests the row-count guard
func TestGenerateRejectsNonPositiveRows(t *testing.T) {
	if _, err := Generate(GeneratorConfig{Rows: 0, Seed: 1}); err == nil {
		t.Error("Generate should reject zero rows")
	}
}

// TestSampleBundleConsistency tests that the sample bundle is self-consistent
func TestSampleBundleConsistency(t *testing.T) {
	b := SampleBundle()

	if !b.Loaded {
		t.Error("Sample bundle should report Loaded")
	}
	if len(b.Model.Weights) != len(b.Features) {
		t.Errorf("Weights (%d) must match features (%d)", len(b.Model.Weights), len(b.Features))
	}
	for _, feature := range b.Features {
		if _, ok := b.Stats[feature]; !ok {
			t.Errorf("Feature %s has no stats", feature)
		}
	}
	if _, ok := b.Encoders["Smoker"]; !ok {
		t.Error("Sample bundle should carry the Smoker encoder")
	}
}
