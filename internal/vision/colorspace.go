package vision

import "math"

// SRGBToLinear applies the sRGB decoding transfer function to c in [0,1].
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB encoding transfer function. It does not clamp.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// Precomputed sRGB-to-linear lookup table (256 entries) for 8-bit input.
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = float32(SRGBToLinear(float64(i) / 255.0))
	}
}

// encode8 converts a linear value to a clamped, rounded sRGB byte.
// NaN encodes as 0.
func encode8(c float64) uint8 {
	s := LinearToSRGB(c)
	if !(s > 0) {
		return 0
	}
	if s >= 1 {
		return 255
	}
	return uint8(math.Round(s * 255))
}
