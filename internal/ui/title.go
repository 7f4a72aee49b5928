//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// TitleScreen draws the pre-game title and key instructions.
type TitleScreen struct {
	width  int
	height int
}

// NewTitleScreen lays out the title block for the given window dimensions.
func NewTitleScreen(width, height int) *TitleScreen {
	return &TitleScreen{width: width, height: height}
}

// Draw paints the title block onto the screen.
func (t *TitleScreen) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	x := t.width / 8
	y := t.height / 8
	spacing := t.width / 20
	if spacing < minLineSpacing {
		spacing = minLineSpacing
	}

	text.Draw(screen, titleText, face, x, y, color.White)
	text.Draw(screen, startHint, face, x, y+2*spacing, color.White)
	text.Draw(screen, restartHint, face, x, y+4*spacing, color.White)
}

const (
	titleText      = "Conway's Game of Life"
	startHint      = "Press the Space key to start the game"
	restartHint    = "Press the R key to restart the game"
	minLineSpacing = 16
)
