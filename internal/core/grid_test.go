package core

import "testing"

func TestWrapBothAxes(t *testing.T) {
	g := NewByteGrid(4, 3)

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{3, 2, 3, 2},
		{4, 3, 0, 0},
		{-1, -1, 3, 2},
		{-4, -3, 0, 0},
		{-5, -4, 3, 2},
		{9, 8, 1, 2},
	}

	for _, c := range cases {
		wx, wy := g.Wrap(c.x, c.y)
		if wx != c.wx || wy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestIndexRowMajor(t *testing.T) {
	g := NewByteGrid(5, 4)
	if idx := g.Index(0, 0); idx != 0 {
		t.Fatalf("Index(0,0) = %d, expected 0", idx)
	}
	if idx := g.Index(4, 0); idx != 4 {
		t.Fatalf("Index(4,0) = %d, expected 4", idx)
	}
	if idx := g.Index(0, 1); idx != 5 {
		t.Fatalf("Index(0,1) = %d, expected 5", idx)
	}
	if idx := g.Index(4, 3); idx != 19 {
		t.Fatalf("Index(4,3) = %d, expected 19", idx)
	}
}

func TestAtSetClear(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(2, 1, 7)
	if v := g.At(2, 1); v != 7 {
		t.Fatalf("At(2,1) = %d after Set, expected 7", v)
	}
	if v := g.Cells()[g.Index(2, 1)]; v != 7 {
		t.Fatalf("Cells()[Index(2,1)] = %d, expected 7", v)
	}

	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear, expected 0", i, v)
		}
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -2)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate grid clamped to %dx%d, expected 1x1", g.W, g.H)
	}
	if len(g.Cells()) != 1 {
		t.Fatalf("degenerate grid holds %d cells, expected 1", len(g.Cells()))
	}
}
