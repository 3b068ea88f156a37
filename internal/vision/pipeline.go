package vision

import (
	"fmt"

	"lurevision/internal/mathutil"
	"lurevision/internal/raster"
	"lurevision/internal/species"
)

// Luma holds the Rec. 601 weights used for the saturation step.
var Luma = mathutil.Vec3{0.299, 0.587, 0.114}

// Request carries everything except the pixels.
type Request struct {
	SpeciesID   string
	DepthFt     float64
	Water       WaterOptics
	Light       LightCondition
	Backscatter bool
}

// kernel holds the per-call constants of the reference path.
type kernel struct {
	matrix species.VisionMatrix
	trans  mathutil.Vec3
	req    Request
	rnd    RandSource
	cones  []float64
}

func newKernel(store *species.Store, req Request, rnd RandSource) *kernel {
	m := store.ResolveMatrix(req.SpeciesID)
	return &kernel{
		matrix: m,
		trans:  req.Water.Transmittance(req.DepthFt),
		req:    req,
		rnd:    rnd,
		cones:  make([]float64, m.ConeCount()),
	}
}

// shade runs steps 2–7 on one decoded pixel and returns linear RGB.
func (k *kernel) shade(in mathutil.Vec3) mathutil.Vec3 {
	lin := mathutil.Vec3{SRGBToLinear(in[0]), SRGBToLinear(in[1]), SRGBToLinear(in[2])}
	lin = lin.Mul(k.trans)

	cones := k.matrix.Project(lin, k.cones)
	rod := k.matrix.Rod(lin)

	coneRGB := k.matrix.Reconstruct(cones)
	c := coneRGB.Lerp(mathutil.Splat(rod), k.req.Light.RodBlend)

	l := c.Dot(Luma)
	c = mathutil.Splat(l).Add(c.Sub(mathutil.Splat(l)).Scale(k.req.Light.Saturation))

	if k.req.Backscatter {
		c = backscatter(c, k.req.DepthFt, k.rnd)
	}
	return c
}

// Simulate runs the reference pipeline over src and returns a new frame.
// A nil store uses the built-in catalogue; a nil rnd is time seeded.
func Simulate(store *species.Store, src *raster.Frame, req Request, rnd RandSource) (*raster.Frame, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("vision: %w", err)
	}
	if store == nil {
		store = species.Default()
	}
	k := newKernel(store, req, orTimeSeeded(rnd))

	dst := raster.NewFrame(src.Width, src.Height)
	for i := 0; i < len(src.Pix); i += 4 {
		in := mathutil.Vec3{
			float64(src.Pix[i]) / 255,
			float64(src.Pix[i+1]) / 255,
			float64(src.Pix[i+2]) / 255,
		}
		out := k.shade(in)
		dst.Pix[i] = encode8(out[0])
		dst.Pix[i+1] = encode8(out[1])
		dst.Pix[i+2] = encode8(out[2])
		dst.Pix[i+3] = src.Pix[i+3]
	}
	return dst, nil
}
