package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Precondition errors: the screen shows a warning and skips the render.
	ErrNoDataset        = errors.New("no dataset imported")
	ErrMissingY         = errors.New("scatter plot requires a Y column")
	ErrColumnNotFound   = errors.New("column not found")
	ErrNotEnoughNumeric = errors.New("need at least two numeric columns")
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Predictor errors: surfaced to the user, screen stays interactive.
	ErrModelNotLoaded  = errors.New("model bundle not loaded")
	ErrUnknownCategory = errors.New("value not seen by encoder")
	ErrFeatureMissing  = errors.New("required feature missing from input")

	// Test runner errors
	ErrSampleMismatch = errors.New("samples must have the same length")
	ErrUnknownTest    = errors.New("unknown test selection")
	ErrUnknownChart   = errors.New("unknown chart kind")
)

// Error constructors with context
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, name)
}

func NewUnknownCategoryError(feature, value string) error {
	return fmt.Errorf("%w: %q is not a known class of %s", ErrUnknownCategory, value, feature)
}

func NewFeatureMissingError(feature string) error {
	return fmt.Errorf("%w: %s", ErrFeatureMissing, feature)
}

// Error checking helpers
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrNoDataset) ||
		errors.Is(err, ErrMissingY) ||
		errors.Is(err, ErrNotEnoughNumeric)
}
