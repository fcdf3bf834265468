package trellis

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labelled capture of the frame being drawn. Queued
// captures are written by Draw once the render pass is done, as
// <ScreenshotDir>/<timestamp>_<label>.png.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// PendingScreenshots returns how many captures are queued for the next Draw.
func (s *Scene) PendingScreenshots() int {
	return len(s.screenshotQueue)
}

func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] screenshot: mkdir %s: %v\n", s.ScreenshotDir, err)
		return
	}

	img := captureNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[trellis] screenshot: %v\n", err)
		}
	}
}

// captureNRGBA reads screen back and converts its premultiplied pixels to
// straight alpha.
func captureNRGBA(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	unpremultiply(img.Pix)
	return img
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := int(pix[i+3])
		if a == 0 || a == 255 {
			continue
		}
		for c := 0; c < 3; c++ {
			pix[i+c] = uint8(min(int(pix[i+c])*255/a, 255))
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', replaces anything
// else with '_' and maps a blank label to "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
