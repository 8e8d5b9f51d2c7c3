// Command cubesolve is a minimal demonstration binary wiring the cube
// algebra and solver packages together: it accepts an already-scrambled
// cube as a facelet string, builds or loads pruning tables, solves, and
// prints the move sequence.
package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/solver"
)

var (
	facelets  = flag.String("facelets", "", "scrambled cube as U=...&L=...&F=...&R=...&B=...&D=... facelet string")
	algorithm = flag.String("algorithm", "kociemba", "search algorithm: kociemba or krof")
	threads   = flag.Int("threads", 0, "max concurrent root-split goroutines (0 uses $CUBESOLVE_THREADS, or 4 if unset)")
	tablePath = flag.String("tables", "", "pruning-table bundle file: loaded if present, built and saved there if absent")
	scramble  = flag.Int("scramble", 20, "when -facelets is omitted, scramble this many random moves from solved before solving")
)

func main() {
	flag.Parse()

	tp := *tablePath
	if tp == "" {
		tp = os.Getenv("CUBESOLVE_TABLES")
	}

	alg, err := solver.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatal(err)
	}

	n := *threads
	if n <= 0 {
		n = runtimeThreads()
	}

	s, err := solver.New(solver.Config{Algorithm: alg, Threads: n, TablePath: tp})
	if err != nil {
		log.Fatalf("cubesolve: building solver: %v", err)
	}

	start, err := startState(*facelets, *scramble)
	if err != nil {
		log.Fatalf("cubesolve: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	t0 := time.Now()
	moves, err := s.Solve(ctx, start)
	if err != nil {
		log.Fatalf("cubesolve: solve failed: %v", err)
	}

	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	log.Printf("solved in %d moves (%s): %s", len(moves), time.Since(t0), strings.Join(words, " "))
}

// startState builds the initial cube: parsed from facelets if given,
// otherwise scrambled from solved with n random canonical moves, so a
// demonstration run has a starting point when none is supplied on the
// command line.
func startState(facelets string, n int) (*cube.State, error) {
	if facelets != "" {
		return cube.ParseFaceletString(facelets)
	}
	s := cube.NewSolved()
	last := cube.NoMove
	moves := cube.AllMoves()
	for i := 0; i < n; i++ {
		var m cube.Move
		for {
			m = moves[rand.Intn(len(moves))]
			if m.CanFollow(last) {
				break
			}
		}
		s = s.Apply(m)
		last = m
	}
	return s, nil
}

func runtimeThreads() int {
	if v := os.Getenv("CUBESOLVE_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 4
}
