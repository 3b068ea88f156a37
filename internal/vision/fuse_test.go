package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lurevision/internal/mathutil"
	"lurevision/internal/species"
)

func TestFuseMatchesStepwise(t *testing.T) {
	store := species.Default()
	colors := []mathutil.Vec3{{0.9, 0.1, 0.2}, {0.05, 0.6, 0.3}, {1, 1, 1}}
	lights := []LightCondition{Bright, Overcast, Dusk, Night, {RodBlend: 0.5, Saturation: 1.4}}

	for _, c := range species.Cardinalities {
		m, _ := store.Matrix(c)
		for _, lc := range lights {
			k := &kernel{matrix: m, trans: mathutil.Splat(1), req: Request{Light: lc}, cones: make([]float64, 5)}
			fused := Fuse(m, lc)
			for _, srgb := range colors {
				lin := mathutil.Vec3{SRGBToLinear(srgb[0]), SRGBToLinear(srgb[1]), SRGBToLinear(srgb[2])}
				want := k.shade(srgb)
				got := fused.MulVec3(lin)
				for i := range want {
					assert.InDelta(t, want[i], got[i], 1e-12, "%s %+v channel %d", c, lc, i)
				}
			}
		}
	}
}
