package vision

import (
	"lurevision/internal/mathutil"
	"lurevision/internal/species"
)

// Fuse collapses projection, rod blend and saturation into one matrix M
// so that M × attenuatedRGB equals the reference path's steps 4–6.
func Fuse(m species.VisionMatrix, light LightCondition) mathutil.Mat3 {
	w := m.RodWeights
	rods := mathutil.Mat3Rows(w, w, w)
	blend := m.Transfer().Scale(1 - light.RodBlend).Add(rods.Scale(light.RodBlend))

	s := light.Saturation
	sat := mathutil.Mat3Identity().Scale(s).Add(mathutil.Mat3Rows(Luma, Luma, Luma).Scale(1 - s))
	return mathutil.Mat3Mul(sat, blend)
}
