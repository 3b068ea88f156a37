package species

import "fmt"

// Store is an immutable species catalogue. It is safe for concurrent
// reads without synchronisation. Every accessor returns copies.
type Store struct {
	profiles []Profile
	byID     map[string]int
	matrices map[Cardinality]VisionMatrix
}

// NewStore validates the matrices and profiles and builds a store.
// Every cardinality used by a profile must have a matrix, and the
// dichromatic matrix must be present because it backs unknown ids.
func NewStore(profiles []Profile, matrices map[Cardinality]VisionMatrix) (*Store, error) {
	s := &Store{
		profiles: make([]Profile, len(profiles)),
		byID:     make(map[string]int, len(profiles)),
		matrices: make(map[Cardinality]VisionMatrix, len(matrices)),
	}

	for card, m := range matrices {
		if m.Cardinality != card {
			return nil, fmt.Errorf("%w: %s registered under %s", ErrMatrixShape, m.Cardinality, card)
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		s.matrices[card] = m.clone()
	}
	if _, ok := s.matrices[Dichromatic]; !ok {
		return nil, fmt.Errorf("%w: no dichromatic default matrix", ErrUnknownCardinality)
	}

	for i, p := range profiles {
		s.profiles[i] = p.clone()
		if _, ok := s.matrices[p.Cardinality]; !ok {
			return nil, fmt.Errorf("%w: %q declares %s", ErrUnknownCardinality, p.ID, p.Cardinality)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		s.byID[p.ID] = i
	}

	return s, nil
}

var defaultStore = mustStore(catalogue(), canonicalMatrices())

func mustStore(profiles []Profile, matrices map[Cardinality]VisionMatrix) *Store {
	s, err := NewStore(profiles, matrices)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns the built-in catalogue.
func Default() *Store {
	return defaultStore
}

// Lookup returns the profile for id.
func (s *Store) Lookup(id string) (Profile, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Profile{}, false
	}
	return s.profiles[i].clone(), true
}

// ResolveMatrix returns the vision matrix for the species' cardinality.
// Unknown ids resolve to the dichromatic matrix instead of failing: the
// pipeline must produce an image even when the caller's selection is stale.
func (s *Store) ResolveMatrix(id string) VisionMatrix {
	if p, ok := s.Lookup(id); ok {
		return s.matrices[p.Cardinality].clone()
	}
	return s.matrices[Dichromatic].clone()
}

// Matrix returns the canonical matrix for a cardinality.
func (s *Store) Matrix(c Cardinality) (VisionMatrix, bool) {
	m, ok := s.matrices[c]
	return m.clone(), ok
}

// Profiles returns every profile in catalogue order.
func (s *Store) Profiles() []Profile {
	out := make([]Profile, len(s.profiles))
	for i, p := range s.profiles {
		out[i] = p.clone()
	}
	return out
}

// ListByEnvironment returns the profiles for env in catalogue order.
func (s *Store) ListByEnvironment(env Environment) []Profile {
	var out []Profile
	for _, p := range s.profiles {
		if p.Environment == env {
			out = append(out, p.clone())
		}
	}
	return out
}
