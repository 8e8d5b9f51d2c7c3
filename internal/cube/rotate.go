package cube

// faceTurn describes the effect of one clockwise quarter turn of a
// face: the 4-cycle of corner positions and edge positions the turn
// permutes (content flows cycle[0]->cycle[1]->cycle[2]->cycle[3]->cycle[0]),
// and whether that face twists corners / flips edges.
type faceTurn struct {
	cornerCycle [4]int8
	edgeCycle   [4]int8
	twistsCorners bool
	flipsEdges    bool
}

// turns is indexed by Face. The cycles are transcribed from standard
// Rubik's-cube quarter-turn mechanics applied to the corner/edge
// numbering recovered from cube.h (see package doc comment); U/D turns
// neither twist corners nor flip edges, F/B turns flip edges, and every
// non-U/D turn twists corners.
var turns = [NumFaces]faceTurn{
	Up:    {cornerCycle: [4]int8{4, 5, 6, 7}, edgeCycle: [4]int8{4, 5, 6, 7}},
	Down:  {cornerCycle: [4]int8{0, 3, 2, 1}, edgeCycle: [4]int8{8, 11, 10, 9}},
	Front: {cornerCycle: [4]int8{7, 6, 2, 3}, edgeCycle: [4]int8{6, 2, 10, 3}, twistsCorners: true, flipsEdges: true},
	Back:  {cornerCycle: [4]int8{5, 4, 0, 1}, edgeCycle: [4]int8{4, 0, 8, 1}, twistsCorners: true, flipsEdges: true},
	Left:  {cornerCycle: [4]int8{4, 7, 3, 0}, edgeCycle: [4]int8{7, 3, 11, 0}, twistsCorners: true},
	Right: {cornerCycle: [4]int8{6, 5, 1, 2}, edgeCycle: [4]int8{5, 1, 9, 2}, twistsCorners: true},
}

// cornerTwistDelta alternates +1, +2 around a corner-twisting cycle:
// the piece moving into cycle[i+1] from cycle[i] picks up this delta,
// mod 3.
var cornerTwistDelta = [4]int8{1, 2, 1, 2}

// rotateQuarter applies one clockwise quarter turn of f to s in place.
func (s *State) rotateQuarter(f Face) {
	t := turns[f]

	var newCP [4]int8
	var newCO [4]int8
	for i := 0; i < 4; i++ {
		src := t.cornerCycle[(i+3)%4]
		newCP[i] = s.CornerPerm[src]
		delta := int8(0)
		if t.twistsCorners {
			delta = cornerTwistDelta[(i+3)%4]
		}
		newCO[i] = (s.CornerOrient[src] + delta) % 3
	}
	for i, pos := range t.cornerCycle {
		s.CornerPerm[pos] = newCP[i]
		s.CornerOrient[pos] = newCO[i]
	}

	var newEP [4]int8
	var newEO [4]int8
	for i := 0; i < 4; i++ {
		src := t.edgeCycle[(i+3)%4]
		newEP[i] = s.EdgePerm[src]
		o := s.EdgeOrient[src]
		if t.flipsEdges {
			o ^= 1
		}
		newEO[i] = o
	}
	for i, pos := range t.edgeCycle {
		s.EdgePerm[pos] = newEP[i]
		s.EdgeOrient[pos] = newEO[i]
	}
}
