package life

import (
	"slices"
	"testing"

	"conway-life/internal/core"
)

func TestNeighborCountWrapsBothAxes(t *testing.T) {
	const w, h = 4, 5
	neighbors := [][2]int{
		{3, 4}, {0, 4}, {1, 4},
		{3, 0}, {1, 0},
		{3, 1}, {0, 1}, {1, 1},
	}

	for _, n := range neighbors {
		b := New(w, h)
		b.Cells()[n[1]*w+n[0]] = 1
		if got := b.NeighborCount(0, 0); got != 1 {
			t.Fatalf("alive cell at (%d,%d) not counted from corner: got %d, expected 1", n[0], n[1], got)
		}
	}

	b := New(w, h)
	for _, n := range neighbors {
		b.Cells()[n[1]*w+n[0]] = 1
	}
	if got := b.NeighborCount(0, 0); got != 8 {
		t.Fatalf("corner neighbor count = %d with all 8 wrapped neighbors alive, expected 8", got)
	}

	b.Cells()[2*w+2] = 1 // not adjacent to the corner
	if got := b.NeighborCount(0, 0); got != 8 {
		t.Fatalf("corner neighbor count = %d after distant cell set, expected 8", got)
	}
}

func TestLoneCellDies(t *testing.T) {
	b := New(3, 3)
	b.Cells()[1*3+1] = 1

	b.Step()

	if pop := b.Population(); pop != 0 {
		t.Fatalf("lone cell left population %d after one step, expected 0", pop)
	}
}

func TestBlockStillLife(t *testing.T) {
	b := New(6, 6)
	w := b.Size().W
	set := func(x, y int) { b.Cells()[y*w+x] = 1 }
	set(2, 2)
	set(3, 2)
	set(2, 3)
	set(3, 3)

	before := slices.Clone(b.Cells())
	for i := 0; i < 2; i++ {
		b.Step()
		if !slices.Equal(b.Cells(), before) {
			t.Fatalf("block changed after step %d", i+1)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	b := New(5, 5)
	w := b.Size().W
	set := func(x, y int) { b.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	b.Step()
	cells := b.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	b.Step()
	cells = b.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

// stepReference recomputes one generation sequentially from an immutable
// snapshot, independently of Board's banded scan.
func stepReference(cells []uint8, w, h int) []uint8 {
	out := make([]uint8, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cells[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := cells[idx] == 1
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = 1
			}
		}
	}
	return out
}

func TestStepMatchesSequentialReference(t *testing.T) {
	const w, h = 31, 17
	b := New(w, h)
	b.Seed(core.NewRNG(1337).Source(), 0.7)

	want := slices.Clone(b.Cells())
	for turn := 0; turn < 50; turn++ {
		want = stepReference(want, w, h)
		b.Step()
		got := b.Cells()
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("mismatch at turn %d cell (%d,%d): board=%d reference=%d", turn, i%w, i/w, got[i], want[i])
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	a := New(24, 24)
	b := New(24, 24)
	a.Seed(core.NewRNG(7).Source(), 0.5)
	b.Seed(core.NewRNG(7).Source(), 0.5)

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("boards diverged at step %d", i+1)
		}
	}
}

func TestSeedExtremes(t *testing.T) {
	b := New(16, 16)
	rng := core.NewRNG(3).Source()

	b.Seed(rng, 1)
	if pop := b.Population(); pop != 0 {
		t.Fatalf("population %d with dead chance 1, expected 0", pop)
	}

	b.Seed(rng, 0)
	if pop := b.Population(); pop != 256 {
		t.Fatalf("population %d with dead chance 0, expected 256", pop)
	}

	b.Step()
	if pop := b.Population(); pop != 0 {
		t.Fatalf("population %d after stepping a saturated torus, expected 0", pop)
	}
}

func TestSeedDeterministic(t *testing.T) {
	a := New(32, 32)
	b := New(32, 32)
	a.Seed(core.NewRNG(99).Source(), 0.7)
	b.Seed(core.NewRNG(99).Source(), 0.7)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical seeds produced different boards")
	}

	c := New(32, 32)
	c.Seed(core.NewRNG(100).Source(), 0.7)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical boards")
	}
}

func BenchmarkStep(b *testing.B) {
	board := New(256, 256)
	board.Seed(core.NewRNG(1).Source(), 0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Step()
	}
}
