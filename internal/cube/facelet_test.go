package cube

import "testing"

func TestFaceletRoundTripSolved(t *testing.T) {
	s := NewSolved()
	str := s.FaceletString()
	got, err := ParseFaceletString(str)
	if err != nil {
		t.Fatalf("ParseFaceletString failed: %v", err)
	}
	if *got != *s {
		t.Fatal("round-tripping the solved cube through facelets should be the identity")
	}
}

func TestFaceletRoundTripScrambled(t *testing.T) {
	s := NewSolved().ApplySequence([]Move{
		NewMove(Up, 1), NewMove(Right, 2), NewMove(Front, 3),
		NewMove(Left, 1), NewMove(Down, 2), NewMove(Back, 1),
	})
	str := s.FaceletString()
	got, err := ParseFaceletString(str)
	if err != nil {
		t.Fatalf("ParseFaceletString failed: %v", err)
	}
	if *got != *s {
		t.Fatal("round-tripping a scrambled cube through facelets should be the identity")
	}
}

func TestFaceletStringHasSixFaces(t *testing.T) {
	s := NewSolved()
	grids := s.ToFacelets()
	if len(grids) != NumFaces {
		t.Fatalf("ToFacelets returned %d faces, want %d", len(grids), NumFaces)
	}
	for f, g := range grids {
		if len(g) != 9 {
			t.Errorf("face %v facelet string has length %d, want 9", f, len(g))
		}
	}
}

func TestParseFaceletStringRejectsMalformedTerm(t *testing.T) {
	if _, err := ParseFaceletString("U=bad"); err == nil {
		t.Fatal("a facelet string missing the other five faces should fail to parse")
	}
}
