package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lurevision/internal/species"
	"lurevision/internal/vision"
)

// Config holds simulation defaults and run settings.
type Config struct {
	// Simulation
	Species     string   `json:"species" toml:"species" yaml:"species"`
	DepthFt     float64  `json:"depth_ft" toml:"depth_ft" yaml:"depth_ft"`
	Clarity     string   `json:"clarity" toml:"clarity" yaml:"clarity"`    // preset name or 0–2 position
	Salinity    *float64 `json:"salinity" toml:"salinity" yaml:"salinity"` // ppt; nil uses the species' typical value
	Light       string   `json:"light" toml:"light" yaml:"light"`
	Backscatter bool     `json:"backscatter" toml:"backscatter" yaml:"backscatter"`
	Seed        uint64   `json:"seed" toml:"seed" yaml:"seed"` // 0 seeds from the clock

	// Run settings
	Engine       string `json:"engine" toml:"engine" yaml:"engine"`
	Workers      int    `json:"workers" toml:"workers" yaml:"workers"`
	PixelWorkers int    `json:"pixel_workers" toml:"pixel_workers" yaml:"pixel_workers"` // 0 splits GOMAXPROCS across file workers
	MaxSize      int    `json:"max_size" toml:"max_size" yaml:"max_size"`
	Format       string `json:"format" toml:"format" yaml:"format"`
	OutputDir    string `json:"output_dir" toml:"output_dir" yaml:"output_dir"`
}

// Load reads a JSON, TOML or YAML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config: unsupported format %q: %s", ext, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Negative DepthFt and Salinity mean "not given".
type Flags struct {
	Species      string
	DepthFt      float64
	Clarity      string
	Salinity     float64
	Light        string
	Backscatter  bool
	Seed         uint64
	Engine       string
	Workers      int
	PixelWorkers int
	MaxSize      int
	Format       string
	OutputDir    string
}

// Resolve applies flag overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Species != "" {
		c.Species = flags.Species
	}
	if flags.DepthFt >= 0 {
		c.DepthFt = flags.DepthFt
	}
	if flags.Clarity != "" {
		c.Clarity = flags.Clarity
	}
	if flags.Salinity >= 0 {
		s := flags.Salinity
		c.Salinity = &s
	}
	if flags.Light != "" {
		c.Light = flags.Light
	}
	if flags.Backscatter {
		c.Backscatter = true
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Engine != "" {
		c.Engine = flags.Engine
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.PixelWorkers > 0 {
		c.PixelWorkers = flags.PixelWorkers
	}
	if flags.MaxSize > 0 {
		c.MaxSize = flags.MaxSize
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}

	// Defaults
	if c.Species == "" {
		c.Species = species.DefaultID
	}
	if c.Clarity == "" {
		c.Clarity = "clear"
	}
	if c.Light == "" {
		c.Light = "bright"
	}
	if c.Engine == "" {
		c.Engine = "parallel"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.MaxSize <= 0 {
		c.MaxSize = 2048
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.OutputDir == "" {
		c.OutputDir = "lurevision-out"
	}
}

// Request builds the pipeline parameters. Depth and salinity are clamped
// here, at the caller boundary, since the pipeline does not validate them.
func (c *Config) Request(store *species.Store) (vision.Request, error) {
	pos, err := vision.ParseClarity(c.Clarity)
	if err != nil {
		return vision.Request{}, fmt.Errorf("config: %w", err)
	}
	light, err := vision.ParseLight(c.Light)
	if err != nil {
		return vision.Request{}, fmt.Errorf("config: %w", err)
	}

	var salinity float64
	if c.Salinity != nil {
		salinity = *c.Salinity
	} else if p, ok := store.Lookup(c.Species); ok {
		salinity = p.Salinity.Typical
	}

	return vision.Request{
		SpeciesID:   c.Species,
		DepthFt:     max(c.DepthFt, 0),
		Water:       vision.WaterOptics{Attenuation: vision.ClarityAt(pos), SalinityPPT: min(max(salinity, 0), 40)},
		Light:       light,
		Backscatter: c.Backscatter,
	}, nil
}
