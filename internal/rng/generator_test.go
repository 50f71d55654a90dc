package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New("org/repo-abc123")
	b := New("org/repo-abc123")
	for i := 0; i < 200; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("sequence diverged at draw %d: %v vs %v", i, av, bv)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New("org/repo-c1")
	b := New("org/repo-c2")
	same := true
	for i := 0; i < 20; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("different seeds produced identical sequences")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := New("reset-seed")
	first := make([]float64, 50)
	for i := range first {
		first[i] = g.Next()
	}
	g.Reset()
	for i := range first {
		if v := g.Next(); v != first[i] {
			t.Fatalf("draw %d after reset: got %v want %v", i, v, first[i])
		}
	}
}

func TestNextRange(t *testing.T) {
	g := New("range-seed")
	for i := 0; i < 1000; i++ {
		v := g.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next out of [0,1): %v", v)
		}
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	g := New("int-seed")
	sawMin, sawMax := false, false
	for i := 0; i < 2000; i++ {
		v := g.IntBetween(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntBetween(2,5) out of range: %d", v)
		}
		if v == 2 {
			sawMin = true
		}
		if v == 5 {
			sawMax = true
		}
	}
	if !sawMin || !sawMax {
		t.Fatalf("IntBetween never hit a bound: min=%v max=%v", sawMin, sawMax)
	}
	if v := g.IntBetween(7, 7); v != 7 {
		t.Fatalf("degenerate range: got %d want 7", v)
	}
}

func TestFloat64Between(t *testing.T) {
	g := New("float-seed")
	for i := 0; i < 1000; i++ {
		v := g.Float64Between(0.45, 0.55)
		if v < 0.45 || v >= 0.55 {
			t.Fatalf("Float64Between out of range: %v", v)
		}
	}
}

func TestBoolExtremes(t *testing.T) {
	g := New("bool-seed")
	for i := 0; i < 100; i++ {
		if g.Bool(1.0) != true {
			t.Fatalf("Bool(1.0) returned false")
		}
		if g.Bool(0.0) != false {
			t.Fatalf("Bool(0.0) returned true")
		}
	}
}

func TestPick(t *testing.T) {
	g := New("pick-seed")
	items := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		v, err := Pick(g, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("picked element not in list: %q", v)
		}
	}
	if _, err := Pick(g, []string{}); err != ErrEmptyPick {
		t.Fatalf("expected ErrEmptyPick, got %v", err)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	g := New("shuffle-seed")
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := Shuffle(g, items)
	if &out[0] != &items[0] {
		t.Fatalf("Shuffle must return the same slice")
	}
	counts := map[int]int{}
	for _, v := range out {
		counts[v]++
	}
	for v := 1; v <= 8; v++ {
		if counts[v] != 1 {
			t.Fatalf("element %d appears %d times after shuffle", v, counts[v])
		}
	}
}

func TestShuffledLeavesOriginal(t *testing.T) {
	g := New("shuffled-seed")
	items := []int{1, 2, 3, 4, 5}
	_ = Shuffled(g, items)
	for i, v := range items {
		if v != i+1 {
			t.Fatalf("original mutated at %d: %d", i, v)
		}
	}
}

func TestWeightedPick(t *testing.T) {
	g := New("weighted-seed")
	opts := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		v, err := WeightedPick(g, opts, []float64{0, 0, 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "c" {
			t.Fatalf("zero-weight option selected: %q", v)
		}
	}
	if _, err := WeightedPick(g, opts, []float64{1, 2}); err != ErrWeightedPick {
		t.Fatalf("length mismatch: expected ErrWeightedPick, got %v", err)
	}
	if _, err := WeightedPick(g, []string{}, []float64{}); err != ErrWeightedPick {
		t.Fatalf("empty inputs: expected ErrWeightedPick, got %v", err)
	}
}

func TestGenerateSeed(t *testing.T) {
	if s := GenerateSeed("org/repo", "abc", 42); s != "org/repo-abc-42" {
		t.Fatalf("unexpected seed: %q", s)
	}
}

func TestFromRepoMetadata(t *testing.T) {
	if s := FromRepoMetadata("org/repo", "abc123"); s != "org/repo-abc123" {
		t.Fatalf("unexpected seed with commit: %q", s)
	}
	if s := FromRepoMetadata("org/repo", ""); s != "org/repo-default" {
		t.Fatalf("unexpected seed without commit: %q", s)
	}
}
