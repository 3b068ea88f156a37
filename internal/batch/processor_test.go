package batch

import (
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lurevision/internal/imageio"
	"lurevision/internal/species"
	"lurevision/internal/vision"
)

func writeLure(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 9), 180, uint8(y * 9), uint8(100 + x)})
		}
	}
	require.NoError(t, imageio.Save(path, img, "png"))
}

func TestJobsNaming(t *testing.T) {
	jobs := Jobs([]string{"a/spoon.png", "b/Spoon.jpg", "c/crank.tga"}, "out", "webp")
	assert.Equal(t, filepath.Join("out", "spoon.webp"), jobs[0].Output)
	assert.Equal(t, filepath.Join("out", "Spoon-2.webp"), jobs[1].Output)
	assert.Equal(t, filepath.Join("out", "crank.webp"), jobs[2].Output)
}

func TestPixelWorkersFor(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)
	assert.Equal(t, procs, PixelWorkersFor(1))
	assert.Equal(t, procs, PixelWorkersFor(0))
	assert.Equal(t, 1, PixelWorkersFor(procs*2))
	assert.LessOrEqual(t, PixelWorkersFor(2)*2, max(procs, 2))
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeLure(t, filepath.Join(in, "jig.png"), 20, 10)
	writeLure(t, filepath.Join(in, "popper.png"), 8, 30)
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.png"), []byte("nope"), 0644))

	cfg := Config{
		Store: species.Default(),
		Request: vision.Request{
			SpeciesID:   "steelhead",
			DepthFt:     150,
			Water:       vision.WaterOptics{Attenuation: vision.Clear, SalinityPPT: 15},
			Light:       vision.Dusk,
			Backscatter: true,
		},
		Engine:  "parallel",
		Seed:    11,
		Workers: 2,
		MaxSize: 16,
		Format:  "png",
	}
	inputs := []string{
		filepath.Join(in, "jig.png"),
		filepath.Join(in, "popper.png"),
		filepath.Join(in, "broken.png"),
	}
	results := Run(cfg, Jobs(inputs, out, cfg.Format))
	require.Len(t, results, 3)

	assert.True(t, results[0].Success, results[0].Error)
	assert.Equal(t, 16, results[0].Width)
	assert.Equal(t, 8, results[0].Height)
	assert.True(t, results[1].Success, results[1].Error)
	assert.Equal(t, 16, results[1].Height)
	assert.False(t, results[2].Success)
	assert.Contains(t, results[2].Error, "imageio: decode")

	img, err := imageio.Load(filepath.Join(out, "jig.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())

	// Same seed, same output.
	again := Run(cfg, Jobs(inputs[:1], t.TempDir(), cfg.Format))
	img2, err := imageio.Load(again[0].Output)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, img2.Pix)

	m := NewManifest(cfg, results)
	path := filepath.Join(out, "manifest.json")
	require.NoError(t, WriteManifest(path, m))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Manifest
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, "steelhead", back.Species)
	assert.Equal(t, [3]float64{0.30, 0.12, 0.08}, back.Attenuation)
	require.Len(t, back.Entries, 3)
	assert.Empty(t, back.Entries[2].Output)
	assert.NotEmpty(t, back.Entries[2].Error)
}

func TestRunUnknownEngine(t *testing.T) {
	in := t.TempDir()
	writeLure(t, filepath.Join(in, "jig.png"), 4, 4)
	results := Run(Config{Engine: "gpu", Format: "png"}, Jobs([]string{filepath.Join(in, "jig.png")}, t.TempDir(), "png"))
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "unknown engine")
}
