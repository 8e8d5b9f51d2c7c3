package solver

import (
	"context"

	"github.com/hailam/cubesolve/internal/coords"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/pruning"
)

// kociembaSolver is the two-phase search: phase 1 reaches the
// <U,D,L2,R2,F2,B2> subgroup (corners oriented, edges oriented, the four
// slice edges confined to the middle slice), phase 2 solves within it.
// Grounded directly on algo_kociemba.cpp's kociemba_t::solve /
// search_phrase<Phase>.
type kociembaSolver struct {
	tables     map[uint32]*pruning.Table
	phase2Move []cube.Move
	threads    int
}

func newKociembaSolver(cfg Config) (*kociembaSolver, error) {
	solved := cube.NewSolved()
	phase1Moves := cube.AllMoves()
	phase2Moves := g2Moves()

	specs := []tableSpec{
		{coordPhase1CornerOrient, pruning.BuildSpec{
			Name: "phase1-corner-orient", Domain: coords.Phase1CornerOrientSize,
			Encode: coords.Phase1CornerOrient, Moves: phase1Moves, Seeds: []*cube.State{solved},
		}},
		{coordPhase1EdgeOrient, pruning.BuildSpec{
			Name: "phase1-edge-orient", Domain: coords.Phase1EdgeOrientSize,
			Encode: coords.Phase1EdgeOrient, Moves: phase1Moves, Seeds: []*cube.State{solved},
		}},
		{coordPhase1Slice, pruning.BuildSpec{
			Name: "phase1-slice", Domain: coords.Phase1SliceSize,
			Encode: coords.Phase1Slice, Moves: phase1Moves, Seeds: []*cube.State{solved},
		}},
		{coordPhase2Corners, pruning.BuildSpec{
			Name: "phase2-corners", Domain: coords.Phase2CornerSize,
			Encode: coords.Phase2Corners, Moves: phase2Moves, Seeds: []*cube.State{solved},
		}},
		{coordPhase2Edges1, pruning.BuildSpec{
			Name: "phase2-edges1", Domain: coords.Phase2Edges1Size,
			Encode: coords.Phase2Edges1, Moves: phase2Moves, Seeds: []*cube.State{solved},
		}},
		{coordPhase2Edges2, pruning.BuildSpec{
			Name: "phase2-edges2", Domain: coords.Phase2Edges2Size,
			Encode: coords.Phase2Edges2, Moves: phase2Moves, Seeds: []*cube.State{solved},
		}},
	}

	tables, err := loadOrBuildTables(cfg.TablePath, specs)
	if err != nil {
		return nil, err
	}
	return &kociembaSolver{tables: tables, phase2Move: phase2Moves, threads: cfg.Threads}, nil
}

// g2Moves enumerates the ten moves of the phase-2 subgroup
// <U,D,L2,R2,F2,B2>: any quarter/half/three-quarter turn of U or D, and
// only the half turn of L, R, F, B.
func g2Moves() []cube.Move {
	moves := make([]cube.Move, 0, 10)
	for _, f := range []cube.Face{cube.Up, cube.Down} {
		for t := 1; t <= 3; t++ {
			moves = append(moves, cube.NewMove(f, t))
		}
	}
	for _, f := range []cube.Face{cube.Front, cube.Back, cube.Left, cube.Right} {
		moves = append(moves, cube.NewMove(f, 2))
	}
	return moves
}

func (ks *kociembaSolver) phase1Heuristic(s *cube.State) int {
	h := ks.tables[coordPhase1CornerOrient].Get(coords.Phase1CornerOrient(s))
	if v := ks.tables[coordPhase1EdgeOrient].Get(coords.Phase1EdgeOrient(s)); v > h {
		h = v
	}
	if v := ks.tables[coordPhase1Slice].Get(coords.Phase1Slice(s)); v > h {
		h = v
	}
	return h
}

func (ks *kociembaSolver) phase2Heuristic(s *cube.State) int {
	h := ks.tables[coordPhase2Corners].Get(coords.Phase2Corners(s))
	if v := ks.tables[coordPhase2Edges1].Get(coords.Phase2Edges1(s)); v > h {
		h = v
	}
	if v := ks.tables[coordPhase2Edges2].Get(coords.Phase2Edges2(s)); v > h {
		h = v
	}
	return h
}

func (ks *kociembaSolver) phase1DFS(ctx context.Context, s *cube.State, g, bound int, last cube.Move) ([]cube.Move, bool) {
	h := ks.phase1Heuristic(s)
	if g+h > bound {
		return nil, false
	}
	if h == 0 {
		return []cube.Move{}, true
	}
	if ctx.Err() != nil {
		return nil, false
	}
	for _, m := range cube.AllMoves() {
		if !m.CanFollow(last) {
			continue
		}
		child := s.Apply(m)
		if rest, ok := ks.phase1DFS(ctx, child, g+1, bound, m); ok {
			return append([]cube.Move{m}, rest...), true
		}
	}
	return nil, false
}

func (ks *kociembaSolver) phase2DFS(ctx context.Context, s *cube.State, g, bound int, last cube.Move) ([]cube.Move, bool) {
	h := ks.phase2Heuristic(s)
	if g+h > bound {
		return nil, false
	}
	if h == 0 {
		return []cube.Move{}, true
	}
	if ctx.Err() != nil {
		return nil, false
	}
	for _, m := range ks.phase2Move {
		if !m.CanFollow(last) {
			continue
		}
		child := s.Apply(m)
		if rest, ok := ks.phase2DFS(ctx, child, g+1, bound, m); ok {
			return append([]cube.Move{m}, rest...), true
		}
	}
	return nil, false
}

// rootSplitDepth is the bound below which spawning a goroutine per
// first move costs more than it saves; below it phase1/phase2 just run
// the serial DFS directly. Grounded on algo_krof.cpp's solve, which
// applies the same depth < 11 || thread_num == 1 test before choosing
// between its serial and multi-threaded search paths.
const rootSplitDepth = 11

func (ks *kociembaSolver) phase1Bounded(ctx context.Context, root *cube.State, bound int) ([]cube.Move, bool) {
	if bound < rootSplitDepth || ks.threads <= 1 {
		return ks.phase1DFS(ctx, root, 0, bound, cube.NoMove)
	}
	return splitRoot(ctx, ks.threads, cube.AllMoves(), func(ctx context.Context, m cube.Move) ([]cube.Move, bool) {
		child := root.Apply(m)
		rest, ok := ks.phase1DFS(ctx, child, 1, bound, m)
		if !ok {
			return nil, false
		}
		return append([]cube.Move{m}, rest...), true
	})
}

func (ks *kociembaSolver) phase2Bounded(ctx context.Context, root *cube.State, bound int) ([]cube.Move, bool) {
	if bound < rootSplitDepth || ks.threads <= 1 {
		return ks.phase2DFS(ctx, root, 0, bound, cube.NoMove)
	}
	return splitRoot(ctx, ks.threads, ks.phase2Move, func(ctx context.Context, m cube.Move) ([]cube.Move, bool) {
		child := root.Apply(m)
		rest, ok := ks.phase2DFS(ctx, child, 1, bound, m)
		if !ok {
			return nil, false
		}
		return append([]cube.Move{m}, rest...), true
	})
}

func (ks *kociembaSolver) phase1(ctx context.Context, root *cube.State) ([]cube.Move, error) {
	bound := ks.phase1Heuristic(root)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if path, ok := ks.phase1Bounded(ctx, root, bound); ok {
			return path, nil
		}
		bound++
	}
}

func (ks *kociembaSolver) phase2(ctx context.Context, root *cube.State) ([]cube.Move, error) {
	bound := ks.phase2Heuristic(root)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if path, ok := ks.phase2Bounded(ctx, root, bound); ok {
			return path, nil
		}
		bound++
	}
}

// Solve runs phase 1, applies it, runs phase 2 from the resulting state,
// and merges the two move lists at their seam: if phase 2's first move
// shares a face with phase 1's last move, the two turn counts combine
// (mod 4) into one move instead of being left as two separate turns of
// the same face back to back.
func (ks *kociembaSolver) Solve(ctx context.Context, s *cube.State) ([]cube.Move, error) {
	if err := s.Validate(); err != nil {
		return nil, &MalformedCube{Err: err}
	}
	p1, err := ks.phase1(ctx, s)
	if err != nil {
		return nil, err
	}
	mid := s.ApplySequence(p1)
	p2, err := ks.phase2(ctx, mid)
	if err != nil {
		return nil, err
	}
	return mergeSeam(p1, p2), nil
}

// mergeSeam joins two consecutive move lists and folds any same-face
// runs left adjacent at the boundary, since the two phase searches are
// independent and neither knows about the other's boundary move.
func mergeSeam(phase1, phase2 []cube.Move) []cube.Move {
	combined := make([]cube.Move, 0, len(phase1)+len(phase2))
	combined = append(combined, phase1...)
	combined = append(combined, phase2...)
	return foldSameFace(combined)
}

// foldSameFace collapses consecutive turns of the same face into a
// single move (turn counts summed mod 4, dropped entirely when the sum
// is 0), cascading as far as a cancellation reaches. Each phase's own
// DFS already forbids same-face moves back to back (cube.Move.CanFollow),
// so any such run can only start at the seam where two phases' move
// lists meet — but a full cancellation there can expose a new same-face
// pair one level further in, e.g. […,R,U,U',R2,…] folds first to
// […,R,R2,…] once U and U' cancel, then to […,R3,…].
func foldSameFace(moves []cube.Move) []cube.Move {
	out := make([]cube.Move, 0, len(moves))
	for _, m := range moves {
		for len(out) > 0 && out[len(out)-1].Face() == m.Face() {
			last := out[len(out)-1]
			out = out[:len(out)-1]
			turns := (last.Turns() + m.Turns()) % 4
			if turns == 0 {
				m = cube.NoMove
				break
			}
			m = cube.NewMove(last.Face(), turns)
		}
		if m != cube.NoMove {
			out = append(out, m)
		}
	}
	return out
}
