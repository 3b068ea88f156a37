package vision

import (
	"fmt"
	"strings"
)

// LightCondition controls the rod/cone balance and final chroma.
type LightCondition struct {
	// RodBlend is the share of the achromatic rod signal in the output.
	RodBlend float64
	// Saturation scales chroma around luminance; 0 is fully gray.
	Saturation float64
}

// Light presets, from photopic to scotopic.
var (
	Bright   = LightCondition{RodBlend: 0.05, Saturation: 1.0}
	Overcast = LightCondition{RodBlend: 0.15, Saturation: 0.85}
	Dusk     = LightCondition{RodBlend: 0.45, Saturation: 0.55}
	Night    = LightCondition{RodBlend: 0.85, Saturation: 0.20}
)

// LightNames lists the preset names accepted by ParseLight.
var LightNames = []string{"bright", "overcast", "dusk", "night"}

var lightPresets = map[string]LightCondition{
	"bright":   Bright,
	"overcast": Overcast,
	"dusk":     Dusk,
	"night":    Night,
}

// ParseLight returns the named light preset.
func ParseLight(name string) (LightCondition, error) {
	lc, ok := lightPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LightCondition{}, fmt.Errorf("%w: light %q", ErrUnknownPreset, name)
	}
	return lc, nil
}
