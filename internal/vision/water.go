package vision

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"lurevision/internal/mathutil"
)

// FeetToMeters converts the caller's depth unit to the attenuation unit.
const FeetToMeters = 0.3048

// ErrUnknownPreset is returned when a clarity or light name is not recognised.
var ErrUnknownPreset = errors.New("vision: unknown preset")

// Attenuation holds per-channel Beer-Lambert coefficients in m⁻¹.
type Attenuation struct {
	KR, KG, KB float64
}

// Vec returns the coefficients as an RGB vector.
func (a Attenuation) Vec() mathutil.Vec3 {
	return mathutil.Vec3{a.KR, a.KG, a.KB}
}

// Clarity presets, clearest first.
var (
	Clear = Attenuation{KR: 0.30, KG: 0.12, KB: 0.08}
	Murky = Attenuation{KR: 0.55, KG: 0.30, KB: 0.22}
	Muddy = Attenuation{KR: 1.00, KG: 0.65, KB: 0.55}
)

var clarityPresets = [...]Attenuation{Clear, Murky, Muddy}

var clarityNames = map[string]float64{"clear": 0, "murky": 1, "muddy": 2}

// ClarityAt interpolates between adjacent presets: 0 is Clear, 1 Murky,
// 2 Muddy. Positions outside [0, 2] are pinned to the nearest preset.
func ClarityAt(pos float64) Attenuation {
	last := float64(len(clarityPresets) - 1)
	if !(pos > 0) {
		return clarityPresets[0]
	}
	if pos >= last {
		return clarityPresets[len(clarityPresets)-1]
	}
	i := int(pos)
	t := pos - float64(i)
	a, b := clarityPresets[i].Vec(), clarityPresets[i+1].Vec()
	v := a.Lerp(b, t)
	return Attenuation{KR: v[0], KG: v[1], KB: v[2]}
}

// ParseClarity accepts a preset name or a numeric position for ClarityAt.
func ParseClarity(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if pos, ok := clarityNames[s]; ok {
		return pos, nil
	}
	pos, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: clarity %q", ErrUnknownPreset, s)
	}
	return pos, nil
}

// salinityScale is the per-channel attenuation increase per 10 ppt.
var salinityScale = mathutil.Vec3{0.008, 0.005, 0.003}

// WaterOptics describes the water column between the object and the viewer.
type WaterOptics struct {
	Attenuation Attenuation
	SalinityPPT float64
}

// Coefficients returns the salinity-adjusted attenuation coefficients:
// k' = k × (1 + salinity/10 × s).
func (w WaterOptics) Coefficients() mathutil.Vec3 {
	k := w.Attenuation.Vec()
	f := w.SalinityPPT / 10
	return mathutil.Vec3{
		k[0] * (1 + f*salinityScale[0]),
		k[1] * (1 + f*salinityScale[1]),
		k[2] * (1 + f*salinityScale[2]),
	}
}

// Transmittance returns the fraction of each channel that survives a trip
// down to depthFt and back up again.
func (w WaterOptics) Transmittance(depthFt float64) mathutil.Vec3 {
	d := DoublePassMeters(depthFt)
	k := w.Coefficients()
	return mathutil.Vec3{
		math.Exp(-k[0] * d),
		math.Exp(-k[1] * d),
		math.Exp(-k[2] * d),
	}
}

// DoublePassMeters converts a depth in feet to the round-trip light path in meters.
func DoublePassMeters(depthFt float64) float64 {
	return depthFt * FeetToMeters * 2
}
