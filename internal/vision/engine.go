package vision

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	"golang.org/x/sync/errgroup"

	"lurevision/internal/raster"
	"lurevision/internal/species"
)

// ErrUnknownEngine is returned by NewEngine for an unrecognised name.
var ErrUnknownEngine = errors.New("vision: unknown engine")

// Engine is an interchangeable execution strategy for the pipeline.
type Engine interface {
	Simulate(src *raster.Frame, req Request) (*raster.Frame, error)
}

// Reference processes pixels one at a time in float64.
type Reference struct {
	Store *species.Store
	Rand  RandSource
}

func (e *Reference) Simulate(src *raster.Frame, req Request) (*raster.Frame, error) {
	return Simulate(e.Store, src, req, e.Rand)
}

// Parallel processes row bands concurrently with a fused color matrix,
// a decode lookup table and float32 arithmetic.
type Parallel struct {
	Store   *species.Store
	Rand    RandSource
	Workers int // <= 0 uses GOMAXPROCS
}

// NewEngine builds an engine by name: "reference" or "parallel".
func NewEngine(name string, store *species.Store, rnd RandSource, workers int) (Engine, error) {
	switch name {
	case "reference":
		return &Reference{Store: store, Rand: rnd}, nil
	case "parallel", "":
		return &Parallel{Store: store, Rand: rnd, Workers: workers}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// bandsPerWorker splits rows finer than the worker count so a slow band
// does not leave other workers idle.
const bandsPerWorker = 4

// bandRanges returns the [start, end) row ranges Parallel dispatches.
func bandRanges(rows, workers int) [][2]int {
	band := max(1, (rows+workers*bandsPerWorker-1)/(workers*bandsPerWorker))
	var out [][2]int
	for y0 := 0; y0 < rows; y0 += band {
		out = append(out, [2]int{y0, min(y0+band, rows)})
	}
	return out
}

// parallelKernel holds the per-call constants of the parallel path.
type parallelKernel struct {
	m     [9]float32
	trans [3]float32

	backscatter bool
	deep        bool
	haze        float32
	decay       float32
	hazeColor   [3]float32

	// glow holds green, blue jitter pairs, one per pixel, drawn in pixel order.
	glow []float32
}

func (e *Parallel) Simulate(src *raster.Frame, req Request) (*raster.Frame, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("vision: %w", err)
	}
	store := e.Store
	if store == nil {
		store = species.Default()
	}

	trans := req.Water.Transmittance(req.DepthFt)
	k := &parallelKernel{
		m:           Fuse(store.ResolveMatrix(req.SpeciesID), req.Light).Float32(),
		trans:       [3]float32{float32(trans[0]), float32(trans[1]), float32(trans[2])},
		backscatter: req.Backscatter,
		deep:        req.DepthFt > DeepSeaFt,
		haze:        float32(HazeIntensity(req.DepthFt)),
		decay:       float32(AmbientDecay(req.DepthFt)),
		hazeColor:   [3]float32{float32(HazeColor[0]), float32(HazeColor[1]), float32(HazeColor[2])},
	}
	if k.backscatter && k.deep {
		rnd := orTimeSeeded(e.Rand)
		k.glow = make([]float32, 2*src.Len())
		for i := 0; i < len(k.glow); i += 2 {
			k.glow[i] = float32(glowGreen * rnd.Float64())
			k.glow[i+1] = float32(glowBlue * rnd.Float64())
		}
	}

	dst := raster.NewFrame(src.Width, src.Height)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range bandRanges(src.Height, workers) {
		start, end := r[0]*src.Width, r[1]*src.Width
		g.Go(func() error {
			k.run(src.Pix, dst.Pix, start, end)
			return nil
		})
	}
	_ = g.Wait() // bands never fail
	return dst, nil
}

// run processes pixels [start, end).
func (k *parallelKernel) run(src, dst []uint8, start, end int) {
	m := &k.m
	for p := start; p < end; p++ {
		i := p * 4
		r := srgbToLinear[src[i]] * k.trans[0]
		g := srgbToLinear[src[i+1]] * k.trans[1]
		b := srgbToLinear[src[i+2]] * k.trans[2]

		or := m[0]*r + m[1]*g + m[2]*b
		og := m[3]*r + m[4]*g + m[5]*b
		ob := m[6]*r + m[7]*g + m[8]*b

		if k.backscatter {
			if k.deep {
				or *= k.decay
				og = og*k.decay + k.glow[2*p]
				ob = ob*k.decay + k.glow[2*p+1]
			} else {
				t := k.haze
				or = or*(1-t) + k.hazeColor[0]*t
				og = og*(1-t) + k.hazeColor[1]*t
				ob = ob*(1-t) + k.hazeColor[2]*t
			}
		}

		dst[i] = encode8f(or)
		dst[i+1] = encode8f(og)
		dst[i+2] = encode8f(ob)
		dst[i+3] = src[i+3]
	}
}

// encode8f is the float32 counterpart of encode8.
func encode8f(c float32) uint8 {
	var s float32
	if c <= 0.0031308 {
		s = c * 12.92
	} else {
		s = 1.055*math32.Pow(c, 1/2.4) - 0.055
	}
	if !(s > 0) {
		return 0
	}
	if s >= 1 {
		return 255
	}
	return uint8(s*255 + 0.5)
}
