// Package coords implements the bijective coordinate encoders that map
// a cube.State onto the dense integer index space of a pruning table.
// Every encoder here is transcribed from the reference algo_kociemba.cpp
// / algo_krof.cpp encode_* functions; the permutation encoders are built
// on top of perm.Rank the way the reference builds them on
// encode_perm<N,S>.
package coords

import (
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/perm"
)

var factorial4 = perm.FallingFactorial(4)
var factorial8 = perm.FallingFactorial(8)
var factorial12 = perm.FallingFactorial(12)

// Domain sizes for the Kociemba phase-1 coordinates: corner orientation
// (3^8 positional values, not 3^7 — every corner position is tracked),
// edge orientation (2^11 — the 12th position's orientation is implied by
// the sum-to-0-mod-2 invariant, so only 11 positions carry independent
// information), and the UD-slice placement coordinate: which 4 of the 12
// edge positions currently hold a slice edge, unordered (C(12,4) = 495).
// G1 membership only requires the slice edges confined to the slice, not
// in any particular order — their order is left entirely to phase 2's
// Phase2Edges2 coordinate.
const (
	Phase1CornerOrientSize = 6561 // 3^8
	Phase1EdgeOrientSize   = 2048 // 2^11
	Phase1SliceSize        = 495  // C(12,4)
)

// Domain sizes for the Kociemba phase-2 coordinates.
const (
	Phase2CornerSize = 40320 // 8!
	Phase2Edges1Size = 40320 // 8!
	Phase2Edges2Size = 24    // 4!
)

// Domain sizes for the KROF single-phase pattern databases.
const (
	KrofCornersSize = 88179840 // 3^7 * 8!
	KrofEdgesSize   = 42577920 // 2^6 * 12!/6!
)

// Phase1CornerOrient is a purely positional base-3 reading of every
// corner's orientation; it does not depend on the permutation.
func Phase1CornerOrient(s *cube.State) int {
	v := 0
	for i := 0; i < 8; i++ {
		v += int(s.CornerOrient[i]) * pow3[i]
	}
	return v
}

var pow3 = [8]int{1, 3, 9, 27, 81, 243, 729, 2187}

// Phase1EdgeOrient reads the orientation of every edge position as a
// bitmask, one bit per position 0-10; position 11's orientation is
// always implied by the invariant that the sum over all 12 is even, so
// it carries no independent information and is left out of the index.
func Phase1EdgeOrient(s *cube.State) int {
	v := 0
	for i := 0; i < 11; i++ {
		v |= int(s.EdgeOrient[i]) << i
	}
	return v
}

// Phase1Slice ranks which 4 of the 12 edge positions currently hold one
// of the four UD-slice edges (identities 0-3), as an unordered C(12,4)
// combination via the standard combinatorial number system: scanning
// positions low to high, the i-th (0-indexed) position found to hold a
// slice edge contributes choose(position, i+1). Phase 1 only needs these
// four edges confined to the slice, not in any particular order, so
// which specific identity sits in which of the four slots is deliberately
// not distinguished here — see Phase2Edges2.
func Phase1Slice(s *cube.State) int {
	v := 0
	found := 0
	for pos := 0; pos < 12; pos++ {
		if s.EdgePerm[pos] < 4 {
			v += choose(pos, found+1)
			found++
		}
	}
	return v
}

// choose returns the binomial coefficient n-choose-k (0 when k is out of
// [0, n]), computed iteratively so every partial product stays exact.
func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	v := 1
	for i := 0; i < k; i++ {
		v = v * (n - i) / (i + 1)
	}
	return v
}

// Phase2Corners ranks the full corner permutation.
func Phase2Corners(s *cube.State) int {
	return perm.Rank(s.CornerPerm[:7], factorial8, 8)
}

// Phase2Edges1 ranks the permutation of the 8 non-slice edges (identity
// 4-11) across their 8 positions (4-11), valid once phase 1 has confined
// the slice edges to positions 0-3.
func Phase2Edges1(s *cube.State) int {
	var p [8]int8
	for i := 4; i < 12; i++ {
		p[i-4] = s.EdgePerm[i] - 4
	}
	return perm.Rank(p[:7], factorial8, 8)
}

// Phase2Edges2 ranks the permutation of the 4 slice edges among
// positions 0-3, valid once phase 1 has confined them there.
func Phase2Edges2(s *cube.State) int {
	return perm.Rank(s.EdgePerm[:3], factorial4, 4)
}

// krofCornerOrientSize is the 3^7 domain of the 7 tracked corner
// orientations (the 8th is determined by the sum-to-0-mod-3 invariant).
const krofCornerOrientSize = 2187

// KrofCorners ranks the full corner state (permutation and orientation)
// into a single index over the full 3^7*8! domain used by KROF's corner
// pattern database.
func KrofCorners(s *cube.State) int {
	v := 0
	for i := 0; i < 7; i++ {
		v = v*3 + int(s.CornerOrient[i])
	}
	return v + perm.Rank(s.CornerPerm[:7], factorial8, 8)*krofCornerOrientSize
}

// KrofEdges1 and KrofEdges2 rank the state of the two disjoint 6-edge
// groups KROF uses as its edge pattern databases: which 6 of the 12
// positions hold that group's edges, their order, and their
// orientation.
func KrofEdges1(s *cube.State) int {
	return krofEdgeGroup(s, 0)
}

func KrofEdges2(s *cube.State) int {
	return krofEdgeGroup(s, 6)
}

func krofEdgeGroup(s *cube.State, base int8) int {
	var p [6]int8
	v := 0
	for pos := 0; pos < 12; pos++ {
		id := s.EdgePerm[pos]
		var t int8
		if base == 0 {
			if id >= 6 {
				continue
			}
			t = id
		} else {
			if id < 6 {
				continue
			}
			t = id - 6
		}
		// Positions are counted from base, so the solved cube (group
		// edges at positions base..base+5) ranks as the identity.
		p[t] = int8((pos + 12 - int(base)) % 12)
		v |= int(s.EdgeOrient[pos]) << t
	}
	rank := perm.Rank(p[:6], factorial12, 12)
	return v + rank<<6
}
