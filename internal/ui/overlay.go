//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatsOverlay draws an optional status line over the running game.
type StatsOverlay struct {
	visible bool
}

// NewStatsOverlay constructs a hidden overlay.
func NewStatsOverlay() *StatsOverlay { return &StatsOverlay{} }

// Update toggles the overlay when the D key is pressed.
func (o *StatsOverlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the status line when the overlay is visible.
func (o *StatsOverlay) Draw(screen *ebiten.Image, generation, population int, perSecond float64) {
	if !o.visible {
		return
	}
	line := fmt.Sprintf("gen %d  pop %d  %.1f gen/s", generation, population, perSecond)
	text.Draw(screen, line, basicfont.Face7x13, statsMargin, statsBaseline, color.White)
}

const (
	statsMargin   = 6
	statsBaseline = 16
)
