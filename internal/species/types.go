package species

import (
	"errors"
	"fmt"
	"slices"

	"lurevision/internal/mathutil"
)

var (
	// ErrMatrixShape marks a vision matrix whose dimensions disagree with its cone count.
	ErrMatrixShape = errors.New("species: vision matrix shape mismatch")
	// ErrUnknownCardinality marks a cardinality outside 1–5 or without a matrix.
	ErrUnknownCardinality = errors.New("species: unknown vision cardinality")
	// ErrDuplicateID marks two profiles sharing an id.
	ErrDuplicateID = errors.New("species: duplicate profile id")
)

// Cardinality is the number of cone classes a species model uses.
type Cardinality int

const (
	Monochromatic Cardinality = iota + 1
	Dichromatic
	Trichromatic
	Tetrachromatic
	Pentachromatic
)

// Cardinalities lists every supported cardinality in ascending order.
var Cardinalities = [...]Cardinality{Monochromatic, Dichromatic, Trichromatic, Tetrachromatic, Pentachromatic}

// ConeCount returns the number of photoreceptor response channels.
func (c Cardinality) ConeCount() int {
	return int(c)
}

// Valid reports whether c is one of the five supported cardinalities.
func (c Cardinality) Valid() bool {
	return c >= Monochromatic && c <= Pentachromatic
}

func (c Cardinality) String() string {
	switch c {
	case Monochromatic:
		return "monochromatic"
	case Dichromatic:
		return "dichromatic"
	case Trichromatic:
		return "trichromatic"
	case Tetrachromatic:
		return "tetrachromatic"
	case Pentachromatic:
		return "pentachromatic"
	default:
		return fmt.Sprintf("cardinality(%d)", int(c))
	}
}

// Environment is the habitat a species is catalogued under.
// It only drives filtering; the pipeline never reads it.
type Environment string

const (
	Freshwater Environment = "freshwater"
	Saltwater  Environment = "saltwater"
	Anadromous Environment = "anadromous"
	DeepSea    Environment = "deep-sea"
)

// Environments lists habitats in display order.
var Environments = [...]Environment{Freshwater, Saltwater, Anadromous, DeepSea}

// SalinityRange is in parts per thousand.
type SalinityRange struct {
	Min     float64
	Max     float64
	Typical float64
}

// Profile is one catalogue entry.
type Profile struct {
	ID          string
	CommonName  string
	Cardinality Cardinality
	Environment Environment
	ConePeaksNM []float64 // peak sensitivity per cone class, shortest first
	Salinity    SalinityRange
}

func (p Profile) clone() Profile {
	p.ConePeaksNM = slices.Clone(p.ConePeaksNM)
	return p
}

// VisionMatrix maps linear RGB into a species' photoreceptor responses and back.
type VisionMatrix struct {
	Cardinality Cardinality

	// RGBToSpecies has 3 rows (R, G, B) and ConeCount columns.
	RGBToSpecies [][]float64
	// SpeciesToRGB has ConeCount rows and 3 columns (R, G, B).
	SpeciesToRGB [][]float64
	// RodWeights weights R, G, B for the achromatic rod response.
	RodWeights mathutil.Vec3
}

func (m VisionMatrix) clone() VisionMatrix {
	m.RGBToSpecies = cloneRows(m.RGBToSpecies)
	m.SpeciesToRGB = cloneRows(m.SpeciesToRGB)
	return m
}

func cloneRows(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// ConeCount returns the number of cone channels.
func (m VisionMatrix) ConeCount() int {
	return m.Cardinality.ConeCount()
}

// Validate checks the matrix dimensions against the declared cone count.
func (m VisionMatrix) Validate() error {
	if !m.Cardinality.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownCardinality, int(m.Cardinality))
	}
	n := m.ConeCount()
	if len(m.RGBToSpecies) != 3 {
		return fmt.Errorf("%w: %s rgbToSpecies has %d rows, want 3", ErrMatrixShape, m.Cardinality, len(m.RGBToSpecies))
	}
	for i, row := range m.RGBToSpecies {
		if len(row) != n {
			return fmt.Errorf("%w: %s rgbToSpecies row %d has %d columns, want %d", ErrMatrixShape, m.Cardinality, i, len(row), n)
		}
	}
	if len(m.SpeciesToRGB) != n {
		return fmt.Errorf("%w: %s speciesToRgb has %d rows, want %d", ErrMatrixShape, m.Cardinality, len(m.SpeciesToRGB), n)
	}
	for i, row := range m.SpeciesToRGB {
		if len(row) != 3 {
			return fmt.Errorf("%w: %s speciesToRgb row %d has %d columns, want 3", ErrMatrixShape, m.Cardinality, i, len(row))
		}
	}
	return nil
}

// Project runs the forward projection: linear RGB to cone responses.
// dst must have room for ConeCount values; it is returned resliced.
func (m VisionMatrix) Project(rgb mathutil.Vec3, dst []float64) []float64 {
	n := m.ConeCount()
	dst = dst[:n]
	for j := 0; j < n; j++ {
		dst[j] = rgb[0]*m.RGBToSpecies[0][j] + rgb[1]*m.RGBToSpecies[1][j] + rgb[2]*m.RGBToSpecies[2][j]
	}
	return dst
}

// Reconstruct runs the inverse projection, summing every cone's RGB contribution.
func (m VisionMatrix) Reconstruct(cones []float64) mathutil.Vec3 {
	var rgb mathutil.Vec3
	for j, c := range cones {
		row := m.SpeciesToRGB[j]
		rgb[0] += c * row[0]
		rgb[1] += c * row[1]
		rgb[2] += c * row[2]
	}
	return rgb
}

// Rod returns the scalar rod response for linear RGB.
func (m VisionMatrix) Rod(rgb mathutil.Vec3) float64 {
	return rgb.Dot(m.RodWeights)
}

// Transfer returns the 3×3 matrix T with T × rgb equal to
// Reconstruct(Project(rgb)). Both projections are linear, so their
// composition collapses to a single color matrix.
func (m VisionMatrix) Transfer() mathutil.Mat3 {
	var t mathutil.Mat3
	n := m.ConeCount()
	for out := 0; out < 3; out++ {
		for in := 0; in < 3; in++ {
			var s float64
			for j := 0; j < n; j++ {
				s += m.RGBToSpecies[in][j] * m.SpeciesToRGB[j][out]
			}
			t[out*3+in] = s
		}
	}
	return t
}
