package life

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"conway-life/internal/core"
)

// Board implements Conway's Game of Life on a toroidal grid. It keeps two
// buffers: the current generation, read-only while a step is computed, and
// the next generation, which takes over after every step.
type Board struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a board with the provided dimensions.
func New(w, h int) *Board {
	return &Board{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current generation values.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Seed randomizes the current generation using the provided source, sampling
// each cell dead with the given chance, and clears the next buffer.
func (b *Board) Seed(rng *rand.Rand, deadChance float64) {
	core.FillBinary(rng, b.cur.Cells(), 1-deadChance)
	b.nxt.Clear()
}

// NeighborCount returns how many of the 8 cells surrounding (x, y) are alive
// in the current generation, wrapping on both axes.
func (b *Board) NeighborCount(x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := b.cur.Wrap(x+dx, y+dy)
			neighbors += int(b.cur.At(nx, ny))
		}
	}
	return neighbors
}

// Step advances the board by one generation. The scan fans out across row
// bands; every band reads only the current buffer and writes a disjoint
// stripe of the next one, so the result matches a sequential scan exactly.
func (b *Board) Step() {
	w, h := b.cur.W, b.cur.H
	cur := b.cur.Cells()
	nxt := b.nxt.Cells()

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	band := (h + workers - 1) / workers

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		startY := i * band
		if startY >= h {
			break
		}
		endY := startY + band
		if endY > h {
			endY = h
		}
		eg.Go(func() error {
			for y := startY; y < endY; y++ {
				for x := 0; x < w; x++ {
					idx := y*w + x
					neighbors := b.NeighborCount(x, y)
					alive := cur[idx] == 1
					nxt[idx] = 0
					if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
						nxt[idx] = 1
					}
				}
			}
			return nil
		})
	}
	_ = eg.Wait()

	b.cur, b.nxt = b.nxt, b.cur
}

// Population counts the alive cells in the current generation.
func (b *Board) Population() int {
	total := 0
	for _, v := range b.cur.Cells() {
		total += int(v)
	}
	return total
}
