package species

import "lurevision/internal/mathutil"

// scotopicRods is shared by every matrix: rods are modelled as one
// achromatic channel regardless of how many cone classes a species has.
var scotopicRods = mathutil.Vec3{0.10, 0.55, 0.35}

// canonicalMatrices are the five vision matrices, one per cardinality.
// Cone columns run from the shortest to the longest wavelength class.
func canonicalMatrices() map[Cardinality]VisionMatrix {
	return map[Cardinality]VisionMatrix{
		Monochromatic: {
			Cardinality: Monochromatic,
			RGBToSpecies: [][]float64{
				{0.25},
				{0.60},
				{0.45},
			},
			SpeciesToRGB: [][]float64{
				{0.35, 0.75, 0.65},
			},
			RodWeights: scotopicRods,
		},
		Dichromatic: {
			Cardinality: Dichromatic,
			RGBToSpecies: [][]float64{
				{0.10, 0.00},
				{0.55, 0.25},
				{0.20, 0.70},
			},
			SpeciesToRGB: [][]float64{
				{0.45, 0.85, 0.20},
				{0.05, 0.35, 0.95},
			},
			RodWeights: scotopicRods,
		},
		Trichromatic: {
			Cardinality: Trichromatic,
			RGBToSpecies: [][]float64{
				{0.00, 0.15, 0.85},
				{0.15, 0.75, 0.10},
				{0.85, 0.10, 0.05},
			},
			SpeciesToRGB: [][]float64{
				{0.00, 0.05, 0.95},
				{0.05, 0.90, 0.05},
				{0.95, 0.05, 0.00},
			},
			RodWeights: scotopicRods,
		},
		Tetrachromatic: {
			Cardinality: Tetrachromatic,
			RGBToSpecies: [][]float64{
				{0.00, 0.05, 0.15, 0.80},
				{0.02, 0.15, 0.70, 0.13},
				{0.20, 0.70, 0.10, 0.00},
			},
			SpeciesToRGB: [][]float64{
				{0.30, 0.00, 0.60},
				{0.00, 0.10, 0.85},
				{0.05, 0.85, 0.10},
				{0.90, 0.10, 0.00},
			},
			RodWeights: scotopicRods,
		},
		Pentachromatic: {
			Cardinality: Pentachromatic,
			RGBToSpecies: [][]float64{
				{0.00, 0.02, 0.10, 0.30, 0.58},
				{0.02, 0.13, 0.60, 0.22, 0.03},
				{0.25, 0.60, 0.10, 0.00, 0.00},
			},
			SpeciesToRGB: [][]float64{
				{0.35, 0.05, 0.60},
				{0.00, 0.15, 0.85},
				{0.05, 0.85, 0.10},
				{0.60, 0.40, 0.00},
				{0.95, 0.05, 0.00},
			},
			RodWeights: scotopicRods,
		},
	}
}
