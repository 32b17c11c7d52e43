//go:build !pandagl_x11

package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Run opens a desktop window that displays the session frame and forwards
// keyboard input. It blocks until the window closes and returns nil on a
// user-requested close.
func Run(cfg Config, newApp func(*Session) func() error) error {
	cfg = cfg.withDefaults()
	s := newSession(cfg)
	step := newApp(s)

	g := &game{s: s, step: step}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	s     *Session
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *game) Update() error {
	g.pollKeys()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	if g.s.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.s.frame.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}

	// Packed ARGB to RGBA bytes. The frame is fully composited, so the
	// window always presents it opaque.
	src := g.s.frame.Pix()
	dst := g.img.Pix
	for i, p := range src {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.frame.Size()
}

func (g *game) pollKeys() {
	emit := func(code KeyCode, press bool) {
		g.s.emit(KeyEvent{Code: code, Press: press})
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		g.s.emit(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		emit(KeyUp, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) {
		emit(KeyUp, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		emit(KeyDown, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowDown) {
		emit(KeyDown, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		emit(KeyLeft, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft) {
		emit(KeyLeft, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		emit(KeyRight, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowRight) {
		emit(KeyRight, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		emit(KeyEnter, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEnter) {
		emit(KeyEnter, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEscape, true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		emit(KeyEscape, false)
	}
}
