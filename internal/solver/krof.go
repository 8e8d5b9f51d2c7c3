package solver

import (
	"context"

	"github.com/hailam/cubesolve/internal/coords"
	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/pruning"
)

// krofSolver is the single-phase search: one IDA* over all 18 moves,
// guided by the max of three pattern-database lookups (full corner
// state, and two complementary 6-edge groups). Grounded directly on
// algo_krof.cpp's krof_t::solve/search/estimate.
type krofSolver struct {
	tables  map[uint32]*pruning.Table
	threads int
}

func newKrofSolver(cfg Config) (*krofSolver, error) {
	solved := cube.NewSolved()
	moves := cube.AllMoves()

	specs := []tableSpec{
		{coordKrofCorners, pruning.BuildSpec{
			Name: "krof-corners", Domain: coords.KrofCornersSize,
			Encode: coords.KrofCorners, Moves: moves, Seeds: []*cube.State{solved},
		}},
		{coordKrofEdges1, pruning.BuildSpec{
			Name: "krof-edges1", Domain: coords.KrofEdgesSize,
			Encode: coords.KrofEdges1, Moves: moves, Seeds: []*cube.State{solved},
		}},
		{coordKrofEdges2, pruning.BuildSpec{
			Name: "krof-edges2", Domain: coords.KrofEdgesSize,
			Encode: coords.KrofEdges2, Moves: moves, Seeds: []*cube.State{solved},
		}},
	}

	tables, err := loadOrBuildTables(cfg.TablePath, specs)
	if err != nil {
		return nil, err
	}
	return &krofSolver{tables: tables, threads: cfg.Threads}, nil
}

func (ks *krofSolver) heuristic(s *cube.State) int {
	h := ks.tables[coordKrofCorners].Get(coords.KrofCorners(s))
	if v := ks.tables[coordKrofEdges1].Get(coords.KrofEdges1(s)); v > h {
		h = v
	}
	if v := ks.tables[coordKrofEdges2].Get(coords.KrofEdges2(s)); v > h {
		h = v
	}
	return h
}

func (ks *krofSolver) dfs(ctx context.Context, s *cube.State, g, bound int, last cube.Move) ([]cube.Move, bool) {
	h := ks.heuristic(s)
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
		if rest, ok := ks.dfs(ctx, child, g+1, bound, m); ok {
			return append([]cube.Move{m}, rest...), true
		}
	}
	return nil, false
}

func (ks *krofSolver) bounded(ctx context.Context, root *cube.State, bound int) ([]cube.Move, bool) {
	if bound < rootSplitDepth || ks.threads <= 1 {
		return ks.dfs(ctx, root, 0, bound, cube.NoMove)
	}
	return splitRoot(ctx, ks.threads, cube.AllMoves(), func(ctx context.Context, m cube.Move) ([]cube.Move, bool) {
		child := root.Apply(m)
		rest, ok := ks.dfs(ctx, child, 1, bound, m)
		if !ok {
			return nil, false
		}
		return append([]cube.Move{m}, rest...), true
	})
}

// Solve runs a single IDA*, widening the bound one ply at a time until
// a branch reaches heuristic 0 (solved).
func (ks *krofSolver) Solve(ctx context.Context, s *cube.State) ([]cube.Move, error) {
	if err := s.Validate(); err != nil {
		return nil, &MalformedCube{Err: err}
	}
	bound := ks.heuristic(s)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if path, ok := ks.bounded(ctx, s, bound); ok {
			return path, nil
		}
		bound++
	}
}
