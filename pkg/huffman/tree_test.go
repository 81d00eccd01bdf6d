package huffman

import (
	"errors"
	"testing"
)

func TestBuildTreeEmpty(t *testing.T) {
	if _, err := BuildTree(Frequencies{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestBuildTreeOptimal(t *testing.T) {
	root, err := BuildTree(Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.Freq != 100 {
		t.Fatalf("root freq = %d, want 100", root.Freq)
	}
	f, rest := root.Left, root.Right
	if !f.IsLeaf() || f.Byte != 'f' || f.Freq != 45 {
		t.Fatalf("left of root = %+v, want leaf f:45", f)
	}
	if rest.Freq != 55 || rest.IsLeaf() {
		t.Fatalf("right of root = %+v, want internal 55", rest)
	}
	if rest.Left.Freq != 25 || rest.Right.Freq != 30 {
		t.Fatalf("55 split into %d/%d, want 25/30", rest.Left.Freq, rest.Right.Freq)
	}

	// weighted path length 224 is the known optimum for this table
	codes := GenerateCodes(root)
	freqs := Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45}
	if got := codes.Bits(freqs); got != 224 {
		t.Fatalf("weighted path length = %d, want 224", got)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	root, err := BuildTree(Frequencies{'x': 7})
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if root.IsLeaf() {
		t.Fatalf("single-symbol root must not be a bare leaf")
	}
	if !root.Left.IsLeaf() || root.Left.Byte != 'x' {
		t.Fatalf("left = %+v, want leaf x", root.Left)
	}
	if root.Freq != 7 || root.Right.Freq != 0 {
		t.Fatalf("freqs root=%d phantom=%d", root.Freq, root.Right.Freq)
	}
	if c := GenerateCodes(root)['x']; c != "0" {
		t.Fatalf("code for x = %q, want \"0\"", c)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	freqs := CountFrequencies([]byte("deterministic-test-abc123"))
	a, _ := BuildTree(freqs)
	b, _ := BuildTree(freqs)
	ca, cb := GenerateCodes(a), GenerateCodes(b)
	for k, v := range ca {
		if cb[k] != v {
			t.Fatalf("code for %q differs: %q vs %q", k, v, cb[k])
		}
	}
}

func TestCountFrequencies(t *testing.T) {
	f := CountFrequencies([]byte("abracadabra"))
	want := Frequencies{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if len(f) != len(want) {
		t.Fatalf("got %d entries, want %d", len(f), len(want))
	}
	for b, c := range want {
		if f[b] != c {
			t.Fatalf("freq[%q] = %d, want %d", b, f[b], c)
		}
	}
	if f.Total() != 11 {
		t.Fatalf("total = %d", f.Total())
	}
	if len(CountFrequencies(nil)) != 0 {
		t.Fatalf("empty input must give empty table")
	}
}
