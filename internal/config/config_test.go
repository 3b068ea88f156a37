package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lurevision/internal/species"
	"lurevision/internal/vision"
)

func unset() Flags {
	return Flags{DepthFt: -1, Salinity: -1}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadFormats(t *testing.T) {
	files := map[string]string{
		"cfg.json": `{"species": "walleye", "depth_ft": 25, "salinity": 4.5, "light": "dusk", "backscatter": true, "workers": 3}`,
		"cfg.toml": "species = \"walleye\"\ndepth_ft = 25.0\nsalinity = 4.5\nlight = \"dusk\"\nbackscatter = true\nworkers = 3\n",
		"cfg.yaml": "species: walleye\ndepth_ft: 25\nsalinity: 4.5\nlight: dusk\nbackscatter: true\nworkers: 3\n",
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, name, body))
			require.NoError(t, err)
			assert.Equal(t, "walleye", cfg.Species)
			assert.Equal(t, 25.0, cfg.DepthFt)
			require.NotNil(t, cfg.Salinity)
			assert.Equal(t, 4.5, *cfg.Salinity)
			assert.Equal(t, "dusk", cfg.Light)
			assert.True(t, cfg.Backscatter)
			assert.Equal(t, 3, cfg.Workers)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "cfg.ini", "species=walleye"))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = Load(writeFile(t, "cfg.json", "{not json"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(unset())
	assert.Equal(t, species.DefaultID, cfg.Species)
	assert.Equal(t, "clear", cfg.Clarity)
	assert.Equal(t, "bright", cfg.Light)
	assert.Equal(t, "parallel", cfg.Engine)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 2048, cfg.MaxSize)
	assert.Positive(t, cfg.Workers)
	assert.Nil(t, cfg.Salinity)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	sal := 10.0
	cfg := Config{Species: "walleye", DepthFt: 25, Salinity: &sal, Workers: 2}

	f := unset()
	f.Species = "tarpon"
	f.DepthFt = 0
	f.Salinity = 33
	cfg.Resolve(f)

	assert.Equal(t, "tarpon", cfg.Species)
	assert.Equal(t, 0.0, cfg.DepthFt)
	assert.Equal(t, 33.0, *cfg.Salinity)
	assert.Equal(t, 2, cfg.Workers)
	assert.Zero(t, cfg.PixelWorkers)

	f.PixelWorkers = 3
	cfg.Resolve(f)
	assert.Equal(t, 3, cfg.PixelWorkers)

	cfg2 := Config{DepthFt: 25}
	cfg2.Resolve(unset())
	assert.Equal(t, 25.0, cfg2.DepthFt)
}

func TestRequestUsesTypicalSalinity(t *testing.T) {
	store := species.Default()
	cfg := Config{Species: "tarpon", DepthFt: 40, Clarity: "0.5", Light: "overcast", Backscatter: true}
	cfg.Resolve(unset())

	req, err := cfg.Request(store)
	require.NoError(t, err)
	p, _ := store.Lookup("tarpon")
	assert.Equal(t, p.Salinity.Typical, req.Water.SalinityPPT)
	assert.Equal(t, vision.ClarityAt(0.5), req.Water.Attenuation)
	assert.Equal(t, vision.Overcast, req.Light)
	assert.Equal(t, 40.0, req.DepthFt)
	assert.True(t, req.Backscatter)
}

func TestRequestClampsCallerInput(t *testing.T) {
	sal := 80.0
	cfg := Config{DepthFt: -5, Salinity: &sal}
	cfg.Resolve(unset())

	req, err := cfg.Request(species.Default())
	require.NoError(t, err)
	assert.Equal(t, 0.0, req.DepthFt)
	assert.Equal(t, 40.0, req.Water.SalinityPPT)
}

func TestRequestRejectsUnknownPresets(t *testing.T) {
	cfg := Config{Light: "strobe"}
	cfg.Resolve(unset())
	_, err := cfg.Request(species.Default())
	assert.ErrorIs(t, err, vision.ErrUnknownPreset)

	cfg = Config{Clarity: "soup"}
	cfg.Resolve(unset())
	_, err = cfg.Request(species.Default())
	assert.ErrorIs(t, err, vision.ErrUnknownPreset)
}
