package solver

import (
	"context"
	"testing"

	"github.com/hailam/cubesolve/internal/cube"
)

func TestMergeSeamCombinesSameFaceTurns(t *testing.T) {
	phase1 := []cube.Move{cube.NewMove(cube.Right, 1), cube.NewMove(cube.Up, 1)}
	phase2 := []cube.Move{cube.NewMove(cube.Up, 1), cube.NewMove(cube.Down, 2)}

	got := mergeSeam(phase1, phase2)
	want := []cube.Move{cube.NewMove(cube.Right, 1), cube.NewMove(cube.Up, 2), cube.NewMove(cube.Down, 2)}

	if len(got) != len(want) {
		t.Fatalf("mergeSeam returned %d moves, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mergeSeam[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMergeSeamDropsCancellingTurns(t *testing.T) {
	phase1 := []cube.Move{cube.NewMove(cube.Up, 1)}
	phase2 := []cube.Move{cube.NewMove(cube.Up, 3)} // U then U' cancels entirely

	got := mergeSeam(phase1, phase2)
	if len(got) != 0 {
		t.Fatalf("mergeSeam should cancel U then U' to nothing, got %v", got)
	}
}

func TestMergeSeamLeavesDifferentFacesAlone(t *testing.T) {
	phase1 := []cube.Move{cube.NewMove(cube.Up, 1)}
	phase2 := []cube.Move{cube.NewMove(cube.Right, 2)}

	got := mergeSeam(phase1, phase2)
	want := []cube.Move{cube.NewMove(cube.Up, 1), cube.NewMove(cube.Right, 2)}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("mergeSeam across different faces should just concatenate, got %v", got)
	}
}

// TestMergeSeamCascadesThroughCancellation checks that a full
// cancellation at the seam exposes a new same-face pair one level
// further in, and that pair folds too instead of being left as two
// consecutive turns of the same face.
func TestMergeSeamCascadesThroughCancellation(t *testing.T) {
	phase1 := []cube.Move{cube.NewMove(cube.Left, 1), cube.NewMove(cube.Right, 1), cube.NewMove(cube.Up, 1)}
	phase2 := []cube.Move{cube.NewMove(cube.Up, 3), cube.NewMove(cube.Right, 2), cube.NewMove(cube.Down, 1)}

	got := mergeSeam(phase1, phase2)
	want := []cube.Move{cube.NewMove(cube.Left, 1), cube.NewMove(cube.Right, 3), cube.NewMove(cube.Down, 1)}

	if len(got) != len(want) {
		t.Fatalf("mergeSeam returned %d moves, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mergeSeam[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestKociembaSolvesShallowScramble builds a real (in-memory, unsaved)
// Kociemba solver and checks it can undo a short scramble. The phase
// tables here top out at 40320 entries, small enough to flood in a
// test process.
func TestKociembaSolvesShallowScramble(t *testing.T) {
	s, err := New(Config{Algorithm: Kociemba, Threads: 2})
	if err != nil {
		t.Fatalf("New(Kociemba) failed: %v", err)
	}

	scramble := []cube.Move{cube.NewMove(cube.Right, 1), cube.NewMove(cube.Up, 2), cube.NewMove(cube.Front, 3)}
	start := cube.NewSolved().ApplySequence(scramble)

	moves, err := s.Solve(context.Background(), start)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	got := start.ApplySequence(moves)
	if !got.IsSolved() {
		t.Fatalf("applying the returned %d moves did not solve the cube", len(moves))
	}
}

// TestKociembaReusableAcrossSolves checks that one constructed Solver
// can be used for more than one scramble without rebuilding its tables.
func TestKociembaReusableAcrossSolves(t *testing.T) {
	s, err := New(Config{Algorithm: Kociemba, Threads: 2})
	if err != nil {
		t.Fatalf("New(Kociemba) failed: %v", err)
	}

	scrambles := [][]cube.Move{
		{cube.NewMove(cube.Up, 1)},
		{cube.NewMove(cube.Left, 2), cube.NewMove(cube.Down, 3)},
	}
	for _, sc := range scrambles {
		start := cube.NewSolved().ApplySequence(sc)
		moves, err := s.Solve(context.Background(), start)
		if err != nil {
			t.Fatalf("Solve(%v) failed: %v", sc, err)
		}
		if !start.ApplySequence(moves).IsSolved() {
			t.Fatalf("Solve(%v) returned a move list that did not solve the cube", sc)
		}
	}
}

func TestKociembaRejectsMalformedCube(t *testing.T) {
	s, err := New(Config{Algorithm: Kociemba, Threads: 1})
	if err != nil {
		t.Fatalf("New(Kociemba) failed: %v", err)
	}

	bad := cube.NewSolved()
	bad.CornerPerm[0] = bad.CornerPerm[1]

	_, err = s.Solve(context.Background(), bad)
	if err == nil {
		t.Fatal("Solve should reject a cube that fails Validate")
	}
	if _, ok := err.(*MalformedCube); !ok {
		t.Errorf("expected *MalformedCube, got %T", err)
	}
}
