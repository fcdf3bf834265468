package trellis

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	// Title is the window title. Empty leaves ebiten's default.
	Title string
	// Width and Height are the initial window size. Zero keeps 640x480.
	Width, Height int
	// FixedSize disables window resizing.
	FixedSize bool
	// ShowFPS overlays the actual FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and drives scene until the window is closed: every tick
// the scene processes polled input and runs its update pass, every frame it
// is laid out if the window changed size, cleared, and rendered. The scene is
// closed when Run returns.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = 640, 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.FixedSize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	scene.pointers = ebitenPointers{}
	defer scene.Close()
	if err := ebiten.RunGame(&game{scene: scene, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("trellis: run: %w", err)
	}
	return nil
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	showFPS bool
	w, h    int
}

func (g *game) Update() error {
	g.scene.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout reports the outside size as the screen size and forwards size
// changes to the scene so the tree is reshaped before the next Draw.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.scene.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
