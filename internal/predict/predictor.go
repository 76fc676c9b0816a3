// Package predict assembles user input into a model row, invokes the loaded
// classifier and maps the probability into a three-band risk classification.
package predict

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// Band is one of the three fixed risk bands
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

// Risk band thresholds over the 0-100 probability scale. Boundaries belong
// to the upper band.
const (
	lowUpperBound      = 30.0
	moderateUpperBound = 70.0
)

// Gauge colors per band.
const (
	colorLow      = "#BEE6FF"
	colorModerate = "#FDDC6B"
	colorHigh     = "#FF9A9A"
)

// Prediction is the outcome of one inference request; transient
type Prediction struct {
	Probability float64 `json:"probability"` // 0-100
	Band        Band    `json:"band"`
	Color       string  `json:"color"`
	Verdict     string  `json:"verdict"`
}

// Predictor runs inference against an immutable model bundle
type Predictor struct {
	bundle *bundle.Bundle
}

// New creates a predictor over the loaded bundle
func New(b *bundle.Bundle) *Predictor {
	return &Predictor{bundle: b}
}

// Ready reports whether the Predict screen can be used
func (p *Predictor) Ready() bool {
	return p.bundle != nil && p.bundle.Loaded
}

// Bundle exposes the underlying bundle for form construction
func (p *Predictor) Bundle() *bundle.Bundle {
	return p.bundle
}

// Predict assembles the input vector in the bundle's feature order, encodes
// categorical values, and returns the positive-class probability scaled to
// 0-100 with its risk band. Every failure is non-fatal for the screen.
func (p *Predictor) Predict(input map[string]string) (*Prediction, error) {
	if !p.Ready() {
		return nil, core.ErrModelNotLoaded
	}

	row := make([]float64, len(p.bundle.Features))
	for i, feature := range p.bundle.Features {
		raw, ok := input[feature]
		if !ok || strings.TrimSpace(raw) == "" {
			return nil, core.NewFeatureMissingError(feature)
		}
		raw = strings.TrimSpace(raw)

		if encoder, ok := p.bundle.Encoders[feature]; ok {
			code, err := encoder.Transform(feature, raw)
			if err != nil {
				return nil, err
			}
			row[i] = code
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %q is not numeric", feature, raw)
		}
		row[i] = value
	}

	probability := p.bundle.Model.PredictProba(row) * 100
	band := Classify(probability)

	return &Prediction{
		Probability: probability,
		Band:        band,
		Color:       bandColor(band),
		Verdict:     verdict(band, probability),
	}, nil
}

// Classify is a total function of the probability percentage: below 30 is
// low, 30 to below 70 is moderate, 70 and above is high.
func Classify(probability float64) Band {
	switch {
	case probability < lowUpperBound:
		return BandLow
	case probability < moderateUpperBound:
		return BandModerate
	default:
		return BandHigh
	}
}

func bandColor(band Band) string {
	switch band {
	case BandLow:
		return colorLow
	case BandModerate:
		return colorModerate
	default:
		return colorHigh
	}
}

func verdict(band Band, probability float64) string {
	switch band {
	case BandLow:
		return fmt.Sprintf("Low risk (%.1f%%)", probability)
	case BandModerate:
		return fmt.Sprintf("Moderate risk (%.1f%%)", probability)
	default:
		return fmt.Sprintf("High risk (%.1f%%)", probability)
	}
}

// GaugeSteps returns the fixed color bands for the gauge visualization
func GaugeSteps() []GaugeStep {
	return []GaugeStep{
		{From: 0, To: lowUpperBound, Color: colorLow},
		{From: lowUpperBound, To: moderateUpperBound, Color: colorModerate},
		{From: moderateUpperBound, To: 100, Color: colorHigh},
	}
}

// GaugeStep is one colored segment of the gauge
type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}
