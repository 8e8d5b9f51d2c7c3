package pruning

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/pbnjay/memory"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/cubesolve/internal/cube"
)

// BuildSpec describes one BFS flood: the coordinate domain to fill, the
// encoder mapping a cube state onto that domain, the move set the flood
// is allowed to explore, and the seed states the flood starts from
// (defaulting to the solved cube).
//
// Restricting Moves to the ten moves of <U,D,L2,R2,F2,B2> builds a
// phase-2-scoped table (grounded on heuristic.hpp's IsGroup1 template
// flag); the full 18-move set builds a phase-1 or KROF table.
type BuildSpec struct {
	Name    string
	Domain  int
	Encode  func(*cube.State) int
	Moves   []cube.Move
	Seeds   []*cube.State
	workers int // 0 means runtime.GOMAXPROCS(0); tests override it
}

// Build runs the BFS flood described by spec and returns the resulting
// table. Each depth layer is expanded concurrently with an
// errgroup.Group, one goroutine per frontier state, writing into the
// table with an atomic compare-and-swap per coordinate rather than a
// lock — grounded on heuristic.hpp's init_heuristic queue-based flood,
// generalized to parallel per-depth expansion the way
// internal/engine/transposition.go generalizes a single mutex into
// fine-grained concurrent access.
func Build(spec BuildSpec) *Table {
	warnIfMemoryTight(spec)

	t := NewTable(spec.Domain)

	seeds := spec.Seeds
	if len(seeds) == 0 {
		seeds = []*cube.State{cube.NewSolved()}
	}

	workers := spec.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	frontier := make([]*cube.State, 0, len(seeds))
	for _, c := range seeds {
		if t.trySet(spec.Encode(c), 0) {
			frontier = append(frontier, c)
		}
	}

	for depth := 0; len(frontier) > 0; depth++ {
		frontier = expandLayer(frontier, spec, t, depth, workers)
	}

	logBuildSummary(spec, t)
	return t
}

func expandLayer(frontier []*cube.State, spec BuildSpec, t *Table, depth, workers int) []*cube.State {
	var mu sync.Mutex
	next := make([]*cube.State, 0, len(frontier))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for _, c := range frontier {
		c := c
		g.Go(func() error {
			var found []*cube.State
			for _, m := range spec.Moves {
				child := c.Apply(m)
				if t.trySet(spec.Encode(child), depth+1) {
					found = append(found, child)
				}
			}
			if len(found) > 0 {
				mu.Lock()
				next = append(next, found...)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; Wait only rendezvouses them

	return next
}

func warnIfMemoryTight(spec BuildSpec) {
	bytesNeeded := uint64((spec.Domain + 1) / 2)
	total := memory.TotalMemory()
	if total > 0 && bytesNeeded*4 > total {
		log.Printf("pruning: table %q wants ~%d MB, which is a large fraction of %d MB total memory",
			spec.Name, bytesNeeded/(1<<20), total/(1<<20))
	}
}

func logBuildSummary(spec BuildSpec, t *Table) {
	counts := t.depthCounts()
	values := make([]float64, 0, t.Size)
	for depth, n := range counts {
		for i := 0; i < n; i++ {
			values = append(values, float64(depth))
		}
		if n > 0 {
			log.Printf("pruning: table %q depth %d: %d states", spec.Name, depth, n)
		}
	}
	if len(values) == 0 {
		return
	}
	hist := histogram.Hist(len(counts), values)
	if err := histogram.Fprint(logWriter{}, hist, histogram.Linear(40)); err != nil {
		log.Printf("pruning: table %q histogram render failed: %v", spec.Name, err)
	}
}

// logWriter adapts the stdlib logger to the io.Writer the histogram
// printer wants, so the depth-distribution diagnostic lands in the same
// log stream as everything else.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	log.Print(string(p))
	return len(p), nil
}
