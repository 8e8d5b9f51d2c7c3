package cube

import (
	"fmt"
	"strings"
)

// Facelet color letters, following the scheme used by the viewer's
// query-string convention (U=yellow, D=white, F=blue, B=green, L=orange,
// R=red): U=y, D=w, F=b, B=g, L=o, R=r.
var faceColor = [NumFaces]byte{'y', 'w', 'b', 'g', 'o', 'r'}

func colorOfFace(f Face) byte { return faceColor[f] }

func faceOfColor(c byte) (Face, error) {
	for f, col := range faceColor {
		if col == c {
			return Face(f), nil
		}
	}
	return 0, fmt.Errorf("cube: unknown facelet color %q", c)
}

// cornerFaces[p] lists, for corner position p, the three faces meeting
// there: index 0 is always the Up/Down face, indices 1 and 2 are the two
// side faces in a fixed (arbitrary but consistent) order. Since corner
// identity id is defined as the cubie that occupies position id when
// solved, this same table also gives identity id's three home sticker
// colors, in the order its stickers cycle through as orientation increases.
var cornerFaces = [8][3]Face{
	0: {Down, Back, Left},
	1: {Down, Right, Back},
	2: {Down, Front, Right},
	3: {Down, Left, Front},
	4: {Up, Left, Back},
	5: {Up, Back, Right},
	6: {Up, Right, Front},
	7: {Up, Front, Left},
}

// edgeFaces[p] lists, for edge position p, the two faces meeting there;
// index 0 is the Up/Down face for top/bottom-ring edges, or the first
// side face for middle-slice edges.
var edgeFaces = [12][2]Face{
	0:  {Back, Left},
	1:  {Back, Right},
	2:  {Front, Right},
	3:  {Front, Left},
	4:  {Up, Back},
	5:  {Up, Right},
	6:  {Up, Front},
	7:  {Up, Left},
	8:  {Down, Back},
	9:  {Down, Right},
	10: {Down, Front},
	11: {Down, Left},
}

func cornerFaceIndex(f Face, p int) int {
	for i, g := range cornerFaces[p] {
		if g == f {
			return i
		}
	}
	panic(fmt.Sprintf("cube: face %v does not touch corner position %d", f, p))
}

func edgeFaceIndex(f Face, p int) int {
	for i, g := range edgeFaces[p] {
		if g == f {
			return i
		}
	}
	panic(fmt.Sprintf("cube: face %v does not touch edge position %d", f, p))
}

// faceSlot names the cubie (corner or edge) contributing the color at
// one of the eight non-center slots of a face, slots numbered 0-8
// row-major with 4 skipped (the fixed center).
type faceSlot struct {
	isCorner bool
	pos      int
}

// faceLayout[f] gives the eight non-center slots of face f in row-major
// order (0,1,2,3,5,6,7,8), each face viewed from outside the cube with
// the layout used throughout rotate.go: U/D viewed top-down with back
// at row 0; F/L viewed with Up at row 0 and the adjoining side at
// column 0 or 2 per rotate.go's turn derivation; B/R mirrored
// accordingly since they are viewed from behind/the right.
var faceLayout = [NumFaces][8]faceSlot{
	Up: {
		{true, 4}, {false, 4}, {true, 5},
		{false, 7}, {false, 5},
		{true, 7}, {false, 6}, {true, 6},
	},
	Down: {
		{true, 0}, {false, 8}, {true, 1},
		{false, 11}, {false, 9},
		{true, 3}, {false, 10}, {true, 2},
	},
	Front: {
		{true, 7}, {false, 6}, {true, 6},
		{false, 3}, {false, 2},
		{true, 3}, {false, 10}, {true, 2},
	},
	Back: {
		{true, 5}, {false, 4}, {true, 4},
		{false, 1}, {false, 0},
		{true, 1}, {false, 8}, {true, 0},
	},
	Left: {
		{true, 4}, {false, 7}, {true, 7},
		{false, 0}, {false, 3},
		{true, 0}, {false, 11}, {true, 3},
	},
	Right: {
		{true, 6}, {false, 5}, {true, 5},
		{false, 2}, {false, 1},
		{true, 2}, {false, 9}, {true, 1},
	},
}

// ToFacelets renders s as the 9-character-per-face facelet grids
// consumed by an external viewer, keyed by face.
func (s *State) ToFacelets() map[Face]string {
	out := make(map[Face]string, NumFaces)
	for f := Face(0); f < NumFaces; f++ {
		var b [9]byte
		b[4] = colorOfFace(f)
		layout := faceLayout[f]
		slot := 0
		for i := 0; i < 9; i++ {
			if i == 4 {
				continue
			}
			sl := layout[slot]
			slot++
			if sl.isCorner {
				id := s.CornerPerm[sl.pos]
				k := cornerFaceIndex(f, sl.pos)
				o := int(s.CornerOrient[sl.pos])
				b[i] = colorOfFace(cornerFaces[id][(k+o)%3])
			} else {
				id := s.EdgePerm[sl.pos]
				k := edgeFaceIndex(f, sl.pos)
				o := int(s.EdgeOrient[sl.pos])
				b[i] = colorOfFace(edgeFaces[id][(k+o)%2])
			}
		}
		out[f] = string(b[:])
	}
	return out
}

// FaceletString renders s in the "U=...&L=...&F=...&R=...&B=...&D=...".
// query-string form.
func (s *State) FaceletString() string {
	m := s.ToFacelets()
	order := []Face{Up, Left, Front, Right, Back, Down}
	parts := make([]string, len(order))
	for i, f := range order {
		parts[i] = f.String() + "=" + m[f]
	}
	return strings.Join(parts, "&")
}

// ParseFacelets reconstructs a State from the facelet grids produced by
// ToFacelets. It returns a MalformedCube-class error if the grids do not
// encode a geometrically valid set of cubies (wrong color multiset,
// unknown color, or a color combination matching no corner/edge).
func ParseFacelets(grids map[Face]string) (*State, error) {
	for f, g := range grids {
		if len(g) != 9 {
			return nil, fmt.Errorf("cube: face %v facelet string has length %d, want 9", f, len(g))
		}
	}

	s := &State{}

	for p := 0; p < 8; p++ {
		var obs [3]Face
		for k, f := range cornerFaces[p] {
			grid := grids[f]
			slotIdx := cornerSlotIndex(f, p)
			color := grid[slotIdx]
			face, err := faceOfColor(color)
			if err != nil {
				return nil, err
			}
			obs[k] = face
		}
		id, o, err := matchCorner(obs)
		if err != nil {
			return nil, fmt.Errorf("cube: corner position %d: %w", p, err)
		}
		s.CornerPerm[p] = int8(id)
		s.CornerOrient[p] = int8(o)
	}

	for p := 0; p < 12; p++ {
		var obs [2]Face
		for k, f := range edgeFaces[p] {
			grid := grids[f]
			slotIdx := edgeSlotIndex(f, p)
			color := grid[slotIdx]
			face, err := faceOfColor(color)
			if err != nil {
				return nil, err
			}
			obs[k] = face
		}
		id, o, err := matchEdge(obs)
		if err != nil {
			return nil, fmt.Errorf("cube: edge position %d: %w", p, err)
		}
		s.EdgePerm[p] = int8(id)
		s.EdgeOrient[p] = int8(o)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}
	return s, nil
}

// ParseFaceletString parses the "U=...&L=..." query-string form produced
// by FaceletString.
func ParseFaceletString(s string) (*State, error) {
	grids := make(map[Face]string, NumFaces)
	for _, part := range strings.Split(s, "&") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("cube: malformed facelet term %q", part)
		}
		f, err := ParseFace(kv[0])
		if err != nil {
			return nil, err
		}
		grids[f] = kv[1]
	}
	return ParseFacelets(grids)
}

func cornerSlotIndex(f Face, p int) int {
	for i, sl := range faceLayout[f] {
		if sl.isCorner && sl.pos == p {
			return rowMajorIndex(i)
		}
	}
	panic(fmt.Sprintf("cube: corner position %d not found on face %v", p, f))
}

func edgeSlotIndex(f Face, p int) int {
	for i, sl := range faceLayout[f] {
		if !sl.isCorner && sl.pos == p {
			return rowMajorIndex(i)
		}
	}
	panic(fmt.Sprintf("cube: edge position %d not found on face %v", p, f))
}

// rowMajorIndex maps an index into the 8-element faceLayout (which skips
// the center) back to its 0-8 row-major grid slot.
func rowMajorIndex(i int) int {
	if i < 4 {
		return i
	}
	return i + 1
}

func matchCorner(obs [3]Face) (id int, o int, err error) {
	for cid := 0; cid < 8; cid++ {
		home := cornerFaces[cid]
		if !sameSet3(home, obs) {
			continue
		}
		shift := indexOf3(home, obs[0])
		ok := true
		for k := 0; k < 3; k++ {
			if home[(k+shift)%3] != obs[k] {
				ok = false
				break
			}
		}
		if ok {
			return cid, shift, nil
		}
	}
	return 0, 0, fmt.Errorf("no corner matches facelet colors %v/%v/%v", obs[0], obs[1], obs[2])
}

func matchEdge(obs [2]Face) (id int, o int, err error) {
	for eid := 0; eid < 12; eid++ {
		home := edgeFaces[eid]
		if !sameSet2(home, obs) {
			continue
		}
		shift := 0
		if home[0] != obs[0] {
			shift = 1
		}
		return eid, shift, nil
	}
	return 0, 0, fmt.Errorf("no edge matches facelet colors %v/%v", obs[0], obs[1])
}

func sameSet3(a, b [3]Face) bool {
	return containsAll3(a, b) && containsAll3(b, a)
}

func containsAll3(a, b [3]Face) bool {
	for _, x := range b {
		found := false
		for _, y := range a {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameSet2(a, b [2]Face) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

func indexOf3(a [3]Face, f Face) int {
	for i, g := range a {
		if g == f {
			return i
		}
	}
	return -1
}
