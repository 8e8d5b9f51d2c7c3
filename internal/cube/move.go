package cube

import "fmt"

// Move encodes a single face turn in 8 bits:
// bits 0-2: face (0-5)
// bits 3-4: quarter turns clockwise, 1-3 (3 means a single counter-clockwise turn)
type Move uint8

// NoMove represents an invalid or null move.
const NoMove Move = 0xFF

// NewMove builds a move from a face and a turn count, normalizing the
// turn count into 1-3 (mod 4; a turn count of 0 is rejected by the
// caller since it is a no-op, never produced by the search).
func NewMove(f Face, turns int) Move {
	t := ((turns % 4) + 4) % 4
	return Move(f) | Move(t)<<3
}

// Face returns the face this move turns.
func (m Move) Face() Face {
	return Face(m & 0x7)
}

// Turns returns the number of clockwise quarter turns, 1-3.
func (m Move) Turns() int {
	return int((m >> 3) & 0x3)
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return NewMove(m.Face(), 4-m.Turns())
}

// String renders the move in Singmaster notation: a bare face letter for
// a quarter turn, a trailing "2" for a half turn, and a trailing "'" for
// a counter-clockwise quarter turn.
func (m Move) String() string {
	if m == NoMove {
		return "-"
	}
	s := m.Face().String()
	switch m.Turns() {
	case 2:
		s += "2"
	case 3:
		s += "'"
	}
	return s
}

// ParseMove parses a single Singmaster move token such as "U", "R2", or "F'".
func ParseMove(s string) (Move, error) {
	if len(s) == 0 {
		return NoMove, fmt.Errorf("cube: empty move")
	}
	f, err := ParseFace(s[:1])
	if err != nil {
		return NoMove, err
	}
	turns := 1
	if len(s) > 1 {
		switch s[1:] {
		case "2":
			turns = 2
		case "'", "3":
			turns = 3
		default:
			return NoMove, fmt.Errorf("cube: invalid move suffix %q", s)
		}
	}
	return NewMove(f, turns), nil
}

// noFace is the disallowedAfter sentinel for faces with no canonical
// successor restriction.
const noFace Face = -1

// disallowedAfter[f] names the face that must never directly precede f,
// transcribed from the reference disallow_faces table: Down may not
// follow Up, Back may not follow Front, Right may not follow Left. Up,
// Front and Left carry no restriction, so of every commuting
// opposite-face pair (U/D, F/B, L/R) the search explores only one
// order.
var disallowedAfter = [NumFaces]Face{noFace, Up, noFace, Front, noFace, Left}

// CanFollow reports whether m may legally follow last in a canonicalized
// search: never the same face twice in a row, and never the "wrong"
// half of a commuting opposite-face pair. NoMove as last always allows
// m, for the root of a search.
func (m Move) CanFollow(last Move) bool {
	if last == NoMove {
		return true
	}
	f, lf := m.Face(), last.Face()
	return f != lf && disallowedAfter[f] != lf
}

// MoveList is a fixed-size list of candidate moves, sized for the
// largest branching factor the search ever produces (18 first moves,
// 15 afterward), to avoid allocation on the search hot path.
type MoveList struct {
	moves [20]Move
	count int
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Slice returns the moves currently in the list.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// AllMoves enumerates every face turn in a fixed, reproducible order:
// face-major, then quarter/half/three-quarter turn. Used as the move set
// of the unrestricted (phase-1 / KROF) table floods and searches.
func AllMoves() []Move {
	moves := make([]Move, 0, NumFaces*3)
	for f := Face(0); f < NumFaces; f++ {
		for t := 1; t <= 3; t++ {
			moves = append(moves, NewMove(f, t))
		}
	}
	return moves
}
