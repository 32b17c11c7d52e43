// Package window opens a desktop window that presents a pandagl frame
// buffer and forwards keyboard input.
//
// Two interchangeable backends are provided, selected at build time:
//
//   - default: an Ebitengine-hosted window (portable)
//   - pandagl_x11 build tag: a pure-Go X11 client (no cgo)
//
// Both expose the same Run entry point. The backend owns the main loop;
// the application supplies a per-frame step callback built around the
// Session it receives.
package window

import (
	"github.com/PhilipPanda/pandagl"
	"github.com/PhilipPanda/pandagl/internal/buildinfo"
)

// Config describes the window to open. Zero values pick defaults.
type Config struct {
	// Width and Height give the frame buffer size in pixels.
	Width  int
	Height int
	// Scale multiplies the frame buffer size into window pixels.
	Scale int
	// Title is the window title.
	Title string
	// TPS is how many times per second the step callback runs.
	TPS int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Title == "" {
		c.Title = "pandagl (" + buildinfo.Short() + ")"
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
)

// KeyEvent is a keyboard event. Printable input arrives as Rune with
// Code KeyUnknown; navigation keys arrive as Code with a zero Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Session is the application's view of an open window. It is handed to
// the app constructor passed to Run and stays valid until Run returns.
type Session struct {
	frame  *pandagl.Buffer
	events chan KeyEvent
	quit   bool
}

func newSession(cfg Config) *Session {
	return &Session{
		frame:  pandagl.NewBuffer(cfg.Width, cfg.Height),
		events: make(chan KeyEvent, 64),
	}
}

// Frame returns the buffer the window presents after every step. Draw
// into it from the step callback.
func (s *Session) Frame() *pandagl.Buffer { return s.frame }

// Events returns the keyboard event stream. Events are dropped rather
// than blocking the window loop when the channel is full, so drain it
// every step.
func (s *Session) Events() <-chan KeyEvent { return s.events }

// Quit asks the window to close after the current step. Run then
// returns nil.
func (s *Session) Quit() { s.quit = true }

// emit forwards a key event without ever blocking the window loop.
func (s *Session) emit(ev KeyEvent) {
	select {
	case s.events <- ev:
	default:
	}
}
