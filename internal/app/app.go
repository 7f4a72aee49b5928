//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"conway-life/internal/core"
	"conway-life/internal/render"
	"conway-life/internal/ui"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	title   *ui.TitleScreen
	overlay *ui.StatsOverlay
	pacer   *core.FixedDelay

	aliveColor color.Color
	deadColor  color.Color

	width  int
	height int
	scale  int
}

// New constructs a Game for the provided validated configuration.
func New(cfg *Config) *Game {
	return &Game{
		session:    NewSession(cfg),
		painter:    render.NewGridPainter(cfg.Cols(), cfg.Rows()),
		title:      ui.NewTitleScreen(cfg.Width, cfg.Height),
		overlay:    ui.NewStatsOverlay(),
		pacer:      core.NewFixedDelay(cfg.Delay()),
		aliveColor: color.White,
		deadColor:  color.Black,
		width:      cfg.Width,
		height:     cfg.Height,
		scale:      cfg.Resolution,
	}
}

// Update polls input, applies state transitions, and advances the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Apply(SignalQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.session.Apply(SignalStart) {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Apply(SignalRestart)
	}

	g.overlay.Update()

	if g.session.Done() {
		return ebiten.Termination
	}
	if g.session.Mode() == ModeRunning && g.pacer.ShouldStep() {
		g.session.Advance()
	}
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.deadColor)
	switch g.session.Mode() {
	case ModeTitle:
		g.title.Draw(screen)
	case ModeRunning:
		g.painter.Blit(screen, g.session.Board().Cells(), g.aliveColor, g.deadColor, g.scale)
		stats := g.session.Stats()
		g.overlay.Draw(screen, stats.Generations(), stats.Population(), stats.PerSecond())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
