//go:build ebiten

package app

import (
	"fmt"
	"io/fs"
	"log"

	"brawl-memory/internal/assets"
	"brawl-memory/internal/core"
	"brawl-memory/internal/i18n"
	"brawl-memory/internal/render"
	"brawl-memory/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the menu, the difficulty selector and a running mode to the
// ebiten.Game interface.
type Game struct {
	cfg     *Config
	screen  core.Size
	clock   core.Clock
	printer *i18n.Printer

	painter  *render.BoardPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	menu     *ui.Menu
	selector *ui.Selector

	scene     Scene
	selection *Selection
	mode      core.Mode
	layout    core.Layout
	seed      int64
}

// New constructs a Game reading artwork from fsys. When cfg.Mode is set the
// game opens straight into that mode.
func New(cfg *Config, fsys fs.FS) (*Game, error) {
	tag, err := i18n.ParseTag(cfg.Lang)
	if err != nil {
		return nil, err
	}
	printer := i18n.NewPrinter(tag)
	screen := core.Size{W: cfg.Width, H: cfg.Height}
	selection := &Selection{Mode: cfg.Mode, Pairs: PairsControl().ClampInt(cfg.Pairs)}
	g := &Game{
		cfg:       cfg,
		screen:    screen,
		clock:     core.SystemClock{},
		printer:   printer,
		painter:   render.NewBoardPainter(assets.NewLibrary(fsys, core.Size{W: CardWidth, H: CardHeight})),
		hud:       ui.NewHUD(printer, screen.W, HUDHeight),
		overlay:   ui.NewOverlay(printer, screen),
		menu:      ui.NewMenu(printer, screen),
		selector:  ui.NewSelector(printer, screen, selection),
		selection: selection,
		seed:      core.ResolveSeed(cfg.Seed),
	}
	if cfg.Mode != "" {
		if err := g.start(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// start deals a fresh game of the selected mode.
func (g *Game) start() error {
	factory, ok := core.Modes()[g.selection.Mode]
	if !ok {
		return fmt.Errorf("unknown mode %q", g.selection.Mode)
	}
	g.mode = factory(core.ModeConfig{
		Seed:      g.seed,
		Pairs:     g.selection.Pairs,
		Columns:   g.cfg.Columns,
		FlipDelay: g.cfg.FlipDelay,
		Clock:     g.clock,
	})
	top := BoardTop(g.hud.Height(), g.showsTarget())
	g.layout = BoardLayout(len(g.mode.Cards()), g.cfg.Columns, g.screen, top)
	g.scene = ScenePlay
	return nil
}

// showsTarget reports whether the running mode asks for a card to find.
func (g *Game) showsTarget() bool {
	return g.mode != nil && g.mode.Name() == "challenge"
}

// Reset reshuffles the running mode with the next seed.
func (g *Game) Reset() {
	if g.mode == nil {
		return
	}
	g.seed = NextSeed(g.cfg.Seed, g.seed)
	g.mode.Reset(g.seed)
}

// Update handles per-frame logic for the current scene.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	switch g.scene {
	case SceneMenu:
		return g.updateMenu()
	case SceneSelect:
		return g.updateSelect()
	default:
		g.updatePlay()
		return nil
	}
}

func (g *Game) updateMenu() error {
	switch g.menu.Update() {
	case ui.ActionExit:
		return ebiten.Termination
	case ui.ActionMemory:
		g.selection.Mode = "memory"
		g.scene = SceneSelect
	case ui.ActionChallenge:
		g.selection.Mode = "challenge"
		g.scene = SceneSelect
	}
	return nil
}

func (g *Game) updateSelect() error {
	switch g.selector.Update() {
	case ui.ActionStart:
		g.seed = NextSeed(g.cfg.Seed, g.seed)
		if err := g.start(); err != nil {
			return err
		}
		log.Printf("%s started with %d characters", g.selection.Mode, g.selection.Pairs)
	case ui.ActionBack:
		g.scene = SceneMenu
	}
	return nil
}

func (g *Game) updatePlay() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.scene = SceneSelect
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.scene = SceneSelect
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if idx, ok := g.layout.CellAt(mx, my); ok {
			g.mode.Click(idx)
		}
	}
	g.mode.Update()
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	switch g.scene {
	case SceneMenu:
		g.menu.Draw(screen)
	case SceneSelect:
		g.selector.Draw(screen)
	default:
		stats := g.mode.Stats()
		challenge := g.showsTarget()
		g.painter.Draw(screen, g.layout, g.mode.Cards())
		if challenge && stats.Target != "" && stats.Status != core.StatusPreview {
			r := TargetRect(g.screen, g.hud.Height())
			g.painter.DrawCard(screen, g.painter.Front(stats.Target), r, 1)
			render.Frame(screen, r)
		}
		g.hud.Draw(screen, stats, challenge)
		g.overlay.Draw(screen, stats, challenge)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screen.W, g.screen.H
}
