package vision

import (
	"math"
	"math/rand/v2"
	"time"

	"lurevision/internal/mathutil"
)

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// NewRand returns a seeded source for reproducible bioluminescence.
func NewRand(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func orTimeSeeded(r RandSource) RandSource {
	if r != nil {
		return r
	}
	return NewRand(uint64(time.Now().UnixNano()))
}

const (
	// DeepSeaFt is the depth beyond which backscatter switches from haze
	// to ambient decay with bioluminescent flecks.
	DeepSeaFt = 100.0

	hazeRampFt = 30.0
	hazeMax    = 0.15
	decayFt    = 200.0
	decayFloor = 0.01
	glowGreen  = 0.015
	glowBlue   = 0.02
)

// HazeColor is the linear bluish-gray that suspended particles scatter.
var HazeColor = mathutil.Vec3{0.4, 0.5, 0.6}

// HazeIntensity returns the blend factor toward HazeColor for shallow water.
func HazeIntensity(depthFt float64) float64 {
	return math.Min(depthFt/hazeRampFt, 1) * hazeMax
}

// AmbientDecay returns the uniform light loss factor for deep water.
// All channels decay alike; red is not singled out.
func AmbientDecay(depthFt float64) float64 {
	return math.Max(decayFloor, math.Exp(-(depthFt-DeepSeaFt)/decayFt))
}

// backscatter applies the haze or deep-sea effect to a linear color.
// The deep-sea branch draws green then blue from rnd.
func backscatter(rgb mathutil.Vec3, depthFt float64, rnd RandSource) mathutil.Vec3 {
	if depthFt <= DeepSeaFt {
		return rgb.Lerp(HazeColor, HazeIntensity(depthFt))
	}
	rgb = rgb.Scale(AmbientDecay(depthFt))
	rgb[1] += glowGreen * rnd.Float64()
	rgb[2] += glowBlue * rnd.Float64()
	return rgb
}
