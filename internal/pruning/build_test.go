package pruning

import (
	"testing"

	"github.com/hailam/cubesolve/internal/cube"
)

// quarterTurnsOnly restricts the flood to a single face's three turns,
// small enough to flood exhaustively in a unit test: that face's group
// has exactly 4 elements (identity plus three turn counts).
func quarterTurnsOnly(f cube.Face) []cube.Move {
	return []cube.Move{cube.NewMove(f, 1), cube.NewMove(f, 2), cube.NewMove(f, 3)}
}

func TestBuildFloodsSingleFaceGroup(t *testing.T) {
	spec := BuildSpec{
		Name:    "test-up-only",
		Domain:  4,
		Encode:  func(s *cube.State) int { return int(s.CornerPerm[4]) % 4 },
		Moves:   quarterTurnsOnly(cube.Up),
		workers: 2,
	}
	tbl := Build(spec)

	if got := tbl.Get(spec.Encode(cube.NewSolved())); got != 0 {
		t.Errorf("solved state should be at depth 0, got %d", got)
	}

	counts := tbl.depthCounts()
	total := 0
	for d := 0; d < 4; d++ {
		total += counts[d]
	}
	if total == 0 {
		t.Fatal("flooding a single face's 4-element group should reach at least one depth under 4")
	}
}

// TestBuildIsDeterministicAcrossWorkerCounts floods the 11-bit edge
// orientation coordinate, whose value after a move depends only on its
// value before it. Build keeps whichever state first reaches a
// coordinate, so only such coordinates give a flood whose result cannot
// depend on which worker wins a write.
func TestBuildIsDeterministicAcrossWorkerCounts(t *testing.T) {
	spec1 := BuildSpec{
		Name:   "det-1",
		Domain: 2048,
		Encode: func(s *cube.State) int {
			v := 0
			for i := 0; i < 11; i++ {
				v |= int(s.EdgeOrient[i]) << i
			}
			return v
		},
		Moves:   cube.AllMoves(),
		workers: 1,
	}
	spec4 := spec1
	spec4.workers = 4

	t1 := Build(spec1)
	t4 := Build(spec4)

	for i := 0; i < spec1.Domain; i++ {
		if t1.Get(i) != t4.Get(i) {
			t.Errorf("coordinate %d: single-worker depth %d != four-worker depth %d", i, t1.Get(i), t4.Get(i))
		}
	}
}
