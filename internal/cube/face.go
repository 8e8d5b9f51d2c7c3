package cube

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int8

const (
	Up Face = iota
	Down
	Front
	Back
	Left
	Right
)

// NumFaces is the number of distinct faces.
const NumFaces = 6

// opposite maps a face to the face on the opposite side of the cube,
// indexed the same way as the reference disallow_faces table.
var opposite = [NumFaces]Face{Down, Up, Back, Front, Right, Left}

// Opposite returns the face directly across the cube from f.
func (f Face) Opposite() Face {
	return opposite[f]
}

var faceNames = [NumFaces]string{"U", "D", "F", "B", "L", "R"}

// String returns the Singmaster letter for the face.
func (f Face) String() string {
	if f < 0 || int(f) >= NumFaces {
		return "?"
	}
	return faceNames[f]
}

// ParseFace parses a single Singmaster face letter.
func ParseFace(s string) (Face, error) {
	switch s {
	case "U":
		return Up, nil
	case "D":
		return Down, nil
	case "F":
		return Front, nil
	case "B":
		return Back, nil
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	default:
		return 0, fmt.Errorf("cube: invalid face %q", s)
	}
}
