// Package bundle loads the serialized classifier artifact produced by the
// external training procedure.
package bundle

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/errors"
)

// artifact mirrors the on-disk JSON layout of the trained bundle
type artifact struct {
	Model    *bundle.LogisticModel           `json:"model"`
	Encoders map[string]*bundle.LabelEncoder `json:"encoders,omitempty"`
	Features []string                        `json:"features"`
	Stats    map[string]bundle.FeatureStats  `json:"stats"`
}

// Load deserializes the classifier bundle at path.
//
// A missing file is not an error: the returned bundle has Loaded=false and
// empty fields, and the Predict screen degrades to a disabled state. Any
// other failure (unreadable file, malformed JSON, missing model) is returned
// and treated as fatal by the caller.
func Load(path string) (*bundle.Bundle, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("[bundle.Load] %s not found - prediction disabled", path)
		return &bundle.Bundle{
			Loaded:   false,
			Encoders: map[string]*bundle.LabelEncoder{},
			Features: []string{},
			Stats:    map[string]bundle.FeatureStats{},
		}, nil
	}
	if err != nil {
		return nil, errors.BundleCorrupt(path, err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, errors.BundleCorrupt(path, err)
	}
	if art.Model == nil {
		return nil, errors.BundleCorrupt(path, fmt.Errorf("artifact has no model payload"))
	}
	if len(art.Features) == 0 {
		return nil, errors.BundleCorrupt(path, fmt.Errorf("artifact has no feature list"))
	}

	if art.Encoders == nil {
		art.Encoders = map[string]*bundle.LabelEncoder{}
	}
	if art.Stats == nil {
		art.Stats = map[string]bundle.FeatureStats{}
	}

	log.Printf("[bundle.Load] Loaded model bundle from %s (%d features, %d encoders)",
		path, len(art.Features), len(art.Encoders))

	return &bundle.Bundle{
		Loaded:   true,
		Model:    art.Model,
		Encoders: art.Encoders,
		Features: art.Features,
		Stats:    art.Stats,
	}, nil
}
