package perm

import "testing"

func TestFallingFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{4, []int{1, 4, 12, 24, 24}},
		{8, []int{1, 8, 56, 336, 1680, 6720, 20160, 40320, 40320}},
	}
	for _, tc := range tests {
		got := FallingFactorial(tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("FallingFactorial(%d) has length %d, want %d", tc.n, len(got), len(tc.want))
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("FallingFactorial(%d)[%d] = %d, want %d", tc.n, i, got[i], tc.want[i])
			}
		}
	}
}

// TestRankIsBijective checks that ranking every permutation of 4 elements
// via the full-permutation S=N-1 convention produces every index in
// 0..23 exactly once.
func TestRankIsBijective(t *testing.T) {
	weights := FallingFactorial(4)
	seen := make([]bool, 24)

	var perm [4]int8
	var used [4]bool
	var generate func(depth int)
	generate = func(depth int) {
		if depth == 4 {
			p := make([]int8, 3)
			copy(p, perm[:3])
			r := Rank(p, weights, 4)
			if r < 0 || r >= 24 {
				t.Fatalf("Rank returned out-of-range index %d for %v", r, perm)
			}
			if seen[r] {
				t.Fatalf("Rank produced duplicate index %d for %v", r, perm)
			}
			seen[r] = true
			return
		}
		for v := int8(0); v < 4; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm[depth] = v
			generate(depth + 1)
			used[v] = false
		}
	}
	generate(0)

	for i, ok := range seen {
		if !ok {
			t.Errorf("index %d was never produced by Rank", i)
		}
	}
}

func TestRankIdentityIsZero(t *testing.T) {
	weights := FallingFactorial(8)
	p := []int8{0, 1, 2, 3, 4, 5, 6}
	if r := Rank(p, weights, 8); r != 0 {
		t.Errorf("Rank of the identity permutation = %d, want 0", r)
	}
}
