//go:build !ebiten

package ui

// TitleScreen is a no-op placeholder for headless builds.
type TitleScreen struct{}

// NewTitleScreen returns a stub title screen.
func NewTitleScreen(int, int) *TitleScreen { return &TitleScreen{} }

// Draw is a no-op in the headless build.
func (t *TitleScreen) Draw(any) {}
