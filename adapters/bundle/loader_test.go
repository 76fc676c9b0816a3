package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/testkit"
)

// TestLoadMissingFile tests that a missing artifact disables prediction
// instead of failing startup.
func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err, "missing bundle must not be an error")
	assert.False(t, b.Loaded)
	assert.Empty(t, b.Features)
	assert.NotNil(t, b.Encoders)
	assert.NotNil(t, b.Stats)
}

// TestLoadWellFormed tests deserializing a complete artifact
func TestLoadWellFormed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, testkit.WriteBundleFile(path))

	b, err := Load(path)
	require.NoError(t, err)
	assert.True(t, b.Loaded)
	assert.Equal(t, []string{"Age", "Glucose", "BMI", "BloodPressure", "Smoker"}, b.Features)
	require.NotNil(t, b.Model)
	assert.Len(t, b.Model.Weights, len(b.Features))

	encoder, ok := b.Encoders["Smoker"]
	require.True(t, ok, "Smoker encoder missing")
	assert.Equal(t, []string{"no", "yes"}, encoder.Classes)

	stats := b.StatsFor("Glucose")
	assert.Equal(t, "numeric", string(stats.Type))
	assert.Less(t, stats.Min, stats.Max)
}

// TestLoadMalformedJSON tests that a corrupt artifact is fatal
func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoadMissingModelPayload tests rejection of an artifact without a model
func TestLoadMissingModelPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"features":["Age"]}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoadMissingFeatureList tests rejection of an artifact without features
func TestLoadMissingFeatureList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	payload := `{"model":{"weights":[0.1],"bias":0.0},"features":[]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
