// Package solver implements the two search drivers that turn a scrambled
// cube.State into a move sequence back to solved: a two-phase Kociemba
// search and a single-phase KROF search, both backed by pruning-table
// heuristics and both able to split their root across goroutines.
package solver

import (
	"context"
	"fmt"
	"os"

	"github.com/hailam/cubesolve/internal/cube"
	"github.com/hailam/cubesolve/internal/pruning"
)

// Algorithm selects which search drives a Solver.
type Algorithm int

const (
	Kociemba Algorithm = iota
	Krof
)

func (a Algorithm) String() string {
	switch a {
	case Kociemba:
		return "kociemba"
	case Krof:
		return "krof"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses the -algorithm flag value accepted by
// cmd/cubesolve.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "kociemba":
		return Kociemba, nil
	case "krof":
		return Krof, nil
	default:
		return 0, &InvalidConfig{Reason: fmt.Sprintf("unknown algorithm %q", s)}
	}
}

// Config configures a Solver's construction: which algorithm to run, how
// many goroutines its root split may run concurrently, and where its
// pruning tables live on disk.
//
// Grounded on internal/tablebase/tablebase.go's Prober-plus-Config
// shape: a factory function returning an interface, backed by typed
// construction errors instead of a bare error string.
type Config struct {
	Algorithm Algorithm

	// Threads bounds how many goroutines a root split may run at once.
	// Must be in [1, maxThreads]; anything else is an InvalidConfig.
	Threads int

	// TablePath, if non-empty, is where pruning tables are loaded from
	// if present, or built once and saved to if absent. Corruption in
	// an existing file (xxhash mismatch) is returned as a
	// pruning.TableLoadError rather than silently triggering a rebuild,
	// per SPEC_FULL.md section 8 property 9.
	TablePath string
}

// Solver finds a move sequence that returns a cube.State to solved.
// Grounded on internal/tablebase/tablebase.go's Prober interface: a
// small method set returned by a factory, hiding the concrete search
// and its tables behind construction-time configuration.
type Solver interface {
	// Solve returns the moves that solve s, applied in order. s is not
	// modified. A Solver is safe to call Solve on repeatedly with
	// different states; it does not need to be reconstructed between
	// solves (SPEC_FULL.md section 8 property 8).
	Solve(ctx context.Context, s *cube.State) ([]cube.Move, error)
}

// maxThreads is the upper bound on Config.Threads.
const maxThreads = 32

// New builds a Solver per cfg, loading its pruning tables from
// cfg.TablePath if present or building and saving them there if absent.
// If cfg.TablePath is empty, tables are built in memory and discarded
// when the Solver is garbage collected.
func New(cfg Config) (Solver, error) {
	if cfg.Threads <= 0 || cfg.Threads > maxThreads {
		return nil, &InvalidConfig{Reason: fmt.Sprintf("Threads must be in [1, %d], got %d", maxThreads, cfg.Threads)}
	}
	switch cfg.Algorithm {
	case Kociemba:
		return newKociembaSolver(cfg)
	case Krof:
		return newKrofSolver(cfg)
	default:
		return nil, &InvalidConfig{Reason: fmt.Sprintf("unknown algorithm %d", cfg.Algorithm)}
	}
}

// Coordinate identifiers persisted alongside each table in a bundle file,
// so a loaded bundle can be matched back to the encoder that built it
// regardless of the order tables were written in.
const (
	coordPhase1CornerOrient uint32 = iota + 1
	coordPhase1EdgeOrient
	coordPhase1Slice
	coordPhase2Corners
	coordPhase2Edges1
	coordPhase2Edges2
	coordKrofCorners
	coordKrofEdges1
	coordKrofEdges2
)

// tableSpec pairs a BuildSpec with the coordinate id it is persisted
// under.
type tableSpec struct {
	id   uint32
	spec pruning.BuildSpec
}

// loadOrBuildTables loads every table named in specs from path if it
// exists, or builds each with pruning.Build and saves the resulting
// bundle to path if path is non-empty. A corrupt or incomplete existing
// file is returned as an error rather than silently rebuilt, so callers
// learn about on-disk corruption instead of masking it.
func loadOrBuildTables(path string, specs []tableSpec) (map[uint32]*pruning.Table, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return loadTables(path, specs)
		}
	}
	return buildTables(path, specs)
}

func loadTables(path string, specs []tableSpec) (map[uint32]*pruning.Table, error) {
	bundle, err := pruning.LoadBundle(path)
	if err != nil {
		return nil, err
	}
	tables := make(map[uint32]*pruning.Table, len(bundle))
	for _, nt := range bundle {
		tables[nt.CoordID] = nt.Table
	}
	for _, sp := range specs {
		t, ok := tables[sp.id]
		if !ok || t.Size != sp.spec.Domain {
			return nil, &pruning.TableLoadError{
				Path: path,
				Err:  fmt.Errorf("bundle missing or mismatched table for coordinate %d", sp.id),
			}
		}
	}
	return tables, nil
}

func buildTables(path string, specs []tableSpec) (map[uint32]*pruning.Table, error) {
	tables := make(map[uint32]*pruning.Table, len(specs))
	named := make([]pruning.NamedTable, 0, len(specs))
	for _, sp := range specs {
		t := pruning.Build(sp.spec)
		tables[sp.id] = t
		named = append(named, pruning.NamedTable{CoordID: sp.id, Table: t})
	}
	if path != "" {
		if err := pruning.SaveBundle(path, named); err != nil {
			return nil, err
		}
	}
	return tables, nil
}
