package solver

import (
	"context"
	"testing"

	"github.com/hailam/cubesolve/internal/cube"
)

// TestKrofSolvesShallowScramble builds the full KROF pattern databases
// (domains up to ~88 million entries) and solves a short scramble. The
// build alone floods tens of millions of states, so this is skipped
// under -short.
func TestKrofSolvesShallowScramble(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full KROF table build under -short")
	}

	s, err := New(Config{Algorithm: Krof, Threads: 4})
	if err != nil {
		t.Fatalf("New(Krof) failed: %v", err)
	}

	scramble := []cube.Move{cube.NewMove(cube.Right, 1), cube.NewMove(cube.Up, 2)}
	start := cube.NewSolved().ApplySequence(scramble)

	moves, err := s.Solve(context.Background(), start)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !start.ApplySequence(moves).IsSolved() {
		t.Fatalf("applying the returned %d moves did not solve the cube", len(moves))
	}
}

func TestKrofRejectsMalformedCube(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full KROF table build under -short")
	}

	s, err := New(Config{Algorithm: Krof, Threads: 1})
	if err != nil {
		t.Fatalf("New(Krof) failed: %v", err)
	}

	bad := cube.NewSolved()
	bad.CornerOrient[0] = 1

	_, err = s.Solve(context.Background(), bad)
	if err == nil {
		t.Fatal("Solve should reject a cube that fails Validate")
	}
	if _, ok := err.(*MalformedCube); !ok {
		t.Errorf("expected *MalformedCube, got %T", err)
	}
}
