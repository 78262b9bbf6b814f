package glide

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshMs is how often the FPS sprite redraws its text.
const fpsRefreshMs = 500

// NewFPSSprite returns a sprite showing the current FPS and TPS. It redraws
// itself every half second from a ticker on a, so it keeps updating for as
// long as the animator ticks. Stop the returned ticker to freeze it.
func (a *Animator) NewFPSSprite() (*Sprite, *Ticker) {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	s := NewSprite("fps", img)

	last := a.Now() - fpsRefreshMs
	k := a.OnFrame(func() bool {
		if a.Now()-last < fpsRefreshMs {
			return false
		}
		last = a.Now()
		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		return false
	})
	return s, k
}
