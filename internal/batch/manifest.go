package batch

import (
	"encoding/json"
	"os"
)

// Manifest records the parameters of a run and one entry per input.
type Manifest struct {
	Species     string          `json:"species"`
	DepthFt     float64         `json:"depth_ft"`
	Attenuation [3]float64      `json:"attenuation"`
	SalinityPPT float64         `json:"salinity_ppt"`
	RodBlend    float64         `json:"rod_blend"`
	Saturation  float64         `json:"saturation"`
	Backscatter bool            `json:"backscatter"`
	Engine      string          `json:"engine"`
	Seed        uint64          `json:"seed,omitempty"`
	Entries     []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one file in the output manifest.
type ManifestEntry struct {
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewManifest builds the manifest for a finished run.
func NewManifest(cfg Config, results []Result) Manifest {
	req := cfg.Request
	m := Manifest{
		Species:     req.SpeciesID,
		DepthFt:     req.DepthFt,
		Attenuation: [3]float64(req.Water.Attenuation.Vec()),
		SalinityPPT: req.Water.SalinityPPT,
		RodBlend:    req.Light.RodBlend,
		Saturation:  req.Light.Saturation,
		Backscatter: req.Backscatter,
		Engine:      cfg.Engine,
		Seed:        cfg.Seed,
		Entries:     make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		e := ManifestEntry{Input: r.Input, Success: r.Success, Error: r.Error}
		if r.Success {
			e.Output, e.Width, e.Height = r.Output, r.Width, r.Height
		}
		m.Entries[i] = e
	}
	return m
}

// WriteManifest writes the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
