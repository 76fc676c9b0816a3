package bundle

import (
	"math"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// FeatureType distinguishes how a predictor input widget is rendered
type FeatureType string

const (
	FeatureNumeric     FeatureType = "numeric"
	FeatureCategorical FeatureType = "categorical"
)

// FeatureStats seeds input widget defaults and bounds for one feature.
// Numeric features carry min/max/mean; categorical features carry the
// ordered set of valid classes.
type FeatureStats struct {
	Type    FeatureType `json:"type"`
	Min     float64     `json:"min,omitempty"`
	Max     float64     `json:"max,omitempty"`
	Mean    float64     `json:"mean,omitempty"`
	Classes []string    `json:"classes,omitempty"`
}

// LabelEncoder maps categorical string values onto their trained integer
// codes. Classes are ordered exactly as recorded at training time.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// Transform returns the numeric code for a value, or an error when the value
// was never seen during training. Unseen values are surfaced, never defaulted.
func (e *LabelEncoder) Transform(feature, value string) (float64, error) {
	for i, class := range e.Classes {
		if class == value {
			return float64(i), nil
		}
	}
	return 0, core.NewUnknownCategoryError(feature, value)
}

// LogisticModel is a serialized binary logistic regression classifier
type LogisticModel struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// PredictProba returns the probability of the positive class for one row.
// The row must be ordered like the bundle's feature list.
func (m *LogisticModel) PredictProba(row []float64) float64 {
	sum := m.Bias
	for i, v := range row {
		if i < len(m.Weights) {
			sum += m.Weights[i] * v
		}
	}
	return 1.0 / (1.0 + math.Exp(-sum))
}

// Bundle is the deserialized classifier artifact: the model itself plus the
// metadata needed to build the input form and encode categorical values.
// Immutable after load; every consumer must check Loaded before use.
type Bundle struct {
	Loaded   bool
	Model    *LogisticModel
	Encoders map[string]*LabelEncoder
	Features []string
	Stats    map[string]FeatureStats
}

// StatsFor returns the descriptive stats for a feature, with a permissive
// numeric default when the artifact recorded none.
func (b *Bundle) StatsFor(feature string) FeatureStats {
	if s, ok := b.Stats[feature]; ok {
		return s
	}
	return FeatureStats{Type: FeatureNumeric, Min: 0, Max: 1, Mean: 0.5}
}
