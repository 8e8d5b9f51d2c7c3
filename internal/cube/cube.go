// Package cube implements the cube algebra layer: the cubie-level state
// representation, the six face turns, and conversion to and from the
// facelet grid an external viewer would render.
//
// Corner positions 0-7 and edge positions 0-11 follow the numbering
// recovered from the reference implementation's index diagrams:
// corners 0,1,2,3 are the bottom (D) ring in clockwise order DBL, DBR,
// DFR, DFL; corners 4,5,6,7 are the top (U) ring UBL, UBR, UFR, UFL.
// Edges 0,1,2,3 are the middle slice in clockwise order BL, BR, FR, FL;
// edges 4,5,6,7 are the top ring UB, UR, UF, UL; edges 8,9,10,11 are the
// bottom ring DB, DR, DF, DL.
package cube

import "fmt"

// State is the cubie-level representation of a cube: for each of the 8
// corner and 12 edge positions, which cubie identity currently occupies
// it (Perm) and how that cubie is twisted/flipped relative to its
// solved orientation (Orient).
type State struct {
	CornerPerm   [8]int8
	CornerOrient [8]int8 // 0, 1, or 2
	EdgePerm     [12]int8
	EdgeOrient   [12]int8 // 0 or 1
}

// NewSolved returns a cube in the solved state.
func NewSolved() *State {
	s := &State{}
	for i := range s.CornerPerm {
		s.CornerPerm[i] = int8(i)
	}
	for i := range s.EdgePerm {
		s.EdgePerm[i] = int8(i)
	}
	return s
}

// Copy returns an independent copy of s.
func (s *State) Copy() *State {
	c := *s
	return &c
}

// IsSolved reports whether every cubie is in its home position with
// zero orientation.
func (s *State) IsSolved() bool {
	for i := 0; i < 8; i++ {
		if s.CornerPerm[i] != int8(i) || s.CornerOrient[i] != 0 {
			return false
		}
	}
	for i := 0; i < 12; i++ {
		if s.EdgePerm[i] != int8(i) || s.EdgeOrient[i] != 0 {
			return false
		}
	}
	return true
}

// Validate checks the parity invariants a reachable cube state must
// satisfy: corner and edge permutations must be genuine permutations of
// 0..7/0..11, corner orientations must sum to 0 mod 3, edge
// orientations must sum to 0 mod 2, and the permutation parity of the
// corners must match that of the edges.
func (s *State) Validate() error {
	var seenC [8]bool
	coSum := 0
	for i, p := range s.CornerPerm {
		if p < 0 || p >= 8 || seenC[p] {
			return fmt.Errorf("cube: invalid corner permutation at position %d", i)
		}
		seenC[p] = true
		if s.CornerOrient[i] < 0 || s.CornerOrient[i] > 2 {
			return fmt.Errorf("cube: invalid corner orientation at position %d", i)
		}
		coSum += int(s.CornerOrient[i])
	}
	if coSum%3 != 0 {
		return fmt.Errorf("cube: corner orientation sum %d is not a multiple of 3", coSum)
	}

	var seenE [12]bool
	eoSum := 0
	for i, p := range s.EdgePerm {
		if p < 0 || p >= 12 || seenE[p] {
			return fmt.Errorf("cube: invalid edge permutation at position %d", i)
		}
		seenE[p] = true
		if s.EdgeOrient[i] < 0 || s.EdgeOrient[i] > 1 {
			return fmt.Errorf("cube: invalid edge orientation at position %d", i)
		}
		eoSum += int(s.EdgeOrient[i])
	}
	if eoSum%2 != 0 {
		return fmt.Errorf("cube: edge orientation sum %d is not even", eoSum)
	}

	if permParity(s.CornerPerm[:]) != permParity(s.EdgePerm[:]) {
		return fmt.Errorf("cube: corner and edge permutation parity disagree")
	}
	return nil
}

func permParity(p []int8) int {
	visited := make([]bool, len(p))
	parity := 0
	for i := range p {
		if visited[i] {
			continue
		}
		cycleLen := 0
		for j := i; !visited[j]; j = int(p[j]) {
			visited[j] = true
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}

// Apply applies a single move and returns the resulting state, leaving
// s unmodified.
func (s *State) Apply(m Move) *State {
	n := s.Copy()
	for i := 0; i < m.Turns(); i++ {
		n.rotateQuarter(m.Face())
	}
	return n
}

// ApplySequence applies a sequence of moves in order and returns the
// resulting state.
func (s *State) ApplySequence(moves []Move) *State {
	n := s
	for _, m := range moves {
		n = n.Apply(m)
	}
	return n
}
