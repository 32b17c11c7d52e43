//go:build pandagl_x11

package window

import (
	"fmt"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/PhilipPanda/pandagl"
)

// Keysyms the window translates into key events.
const (
	keysymReturn = 0xff0d
	keysymEscape = 0xff1b
	keysymLeft   = 0xff51
	keysymUp     = 0xff52
	keysymRight  = 0xff53
	keysymDown   = 0xff54
)

// Run opens an X11 window that displays the session frame and forwards
// keyboard input. It talks the X protocol directly over a pure-Go
// connection, so it needs no cgo. It blocks until the window closes and
// returns nil on a user-requested close.
func Run(cfg Config, newApp func(*Session) func() error) error {
	cfg = cfg.withDefaults()

	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("window: connect to X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return fmt.Errorf("window: allocate window id: %w", err)
	}

	winW := uint16(cfg.Width * cfg.Scale)
	winH := uint16(cfg.Height * cfg.Scale)
	err = xproto.CreateWindowChecked(conn, screen.RootDepth, wid, screen.Root,
		0, 0, winW, winH, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.BlackPixel,
			xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease |
				xproto.EventMaskExposure | xproto.EventMaskStructureNotify,
		}).Check()
	if err != nil {
		return fmt.Errorf("window: create window: %w", err)
	}

	xproto.ChangeProperty(conn, xproto.PropModeReplace, wid,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(cfg.Title)), []byte(cfg.Title))

	// Opt in to the close button via WM_DELETE_WINDOW.
	protocols, err := internAtom(conn, "WM_PROTOCOLS")
	if err != nil {
		return err
	}
	deleteWindow, err := internAtom(conn, "WM_DELETE_WINDOW")
	if err != nil {
		return err
	}
	atomBytes := make([]byte, 4)
	xgb.Put32(atomBytes, uint32(deleteWindow))
	xproto.ChangeProperty(conn, xproto.PropModeReplace, wid,
		protocols, xproto.AtomAtom, 32, 1, atomBytes)

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return fmt.Errorf("window: allocate graphics context: %w", err)
	}
	xproto.CreateGC(conn, gc, xproto.Drawable(wid), xproto.GcForeground,
		[]uint32{screen.BlackPixel})

	keys, err := newKeymap(conn, setup)
	if err != nil {
		return err
	}

	xproto.MapWindow(conn, wid)

	s := newSession(cfg)
	step := newApp(s)

	// WaitForEvent blocks, so a dedicated goroutine pumps events into a
	// channel the frame loop can select on. It exits when the connection
	// closes. Events are dropped rather than blocking the pump.
	events := make(chan xgb.Event, 64)
	go func() {
		defer close(events)
		for {
			ev, xerr := conn.WaitForEvent()
			if ev == nil && xerr == nil {
				return
			}
			if xerr != nil {
				pandagl.Logger().Debug("x11 error", "err", xerr.Error())
				continue
			}
			select {
			case events <- ev:
			default:
			}
		}
	}()

	p := &presenter{
		conn:        conn,
		win:         wid,
		gc:          gc,
		width:       int(winW),
		height:      int(winH),
		scale:       cfg.Scale,
		depth:       screen.RootDepth,
		maxReqBytes: int(setup.MaximumRequestLength) * 4,
		data:        make([]byte, int(winW)*int(winH)*4),
	}

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TPS))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case xproto.KeyPressEvent:
				if ke, ok := keys.keyEvent(e.Detail, e.State, true); ok {
					s.emit(ke)
				}
			case xproto.KeyReleaseEvent:
				if ke, ok := keys.keyEvent(e.Detail, e.State, false); ok {
					s.emit(ke)
				}
			case xproto.ExposeEvent:
				p.present(s.frame)
			case xproto.ClientMessageEvent:
				if e.Format == 32 && len(e.Data.Data32) > 0 &&
					xproto.Atom(e.Data.Data32[0]) == deleteWindow {
					return nil
				}
			case xproto.DestroyNotifyEvent:
				return nil
			}
		case <-ticker.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if s.quit {
				return nil
			}
			p.present(s.frame)
		}
	}
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("window: intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}

// keymap resolves keycodes to keysyms from the server's keyboard mapping.
type keymap struct {
	first   xproto.Keycode
	perCode int
	syms    []xproto.Keysym
}

func newKeymap(conn *xgb.Conn, setup *xproto.SetupInfo) (*keymap, error) {
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return nil, fmt.Errorf("window: keyboard mapping: %w", err)
	}
	return &keymap{
		first:   setup.MinKeycode,
		perCode: int(reply.KeysymsPerKeycode),
		syms:    reply.Keysyms,
	}, nil
}

func (k *keymap) lookup(code xproto.Keycode, state uint16) xproto.Keysym {
	if code < k.first || k.perCode == 0 {
		return 0
	}
	i := int(code-k.first) * k.perCode
	if i >= len(k.syms) {
		return 0
	}
	if state&xproto.ModMaskShift != 0 && k.perCode > 1 && i+1 < len(k.syms) && k.syms[i+1] != 0 {
		return k.syms[i+1]
	}
	return k.syms[i]
}

func (k *keymap) keyEvent(code xproto.Keycode, state uint16, press bool) (KeyEvent, bool) {
	sym := k.lookup(code, state)
	switch sym {
	case keysymUp:
		return KeyEvent{Code: KeyUp, Press: press}, true
	case keysymDown:
		return KeyEvent{Code: KeyDown, Press: press}, true
	case keysymLeft:
		return KeyEvent{Code: KeyLeft, Press: press}, true
	case keysymRight:
		return KeyEvent{Code: KeyRight, Press: press}, true
	case keysymReturn:
		return KeyEvent{Code: KeyEnter, Press: press}, true
	case keysymEscape:
		return KeyEvent{Code: KeyEscape, Press: press}, true
	}
	// Printable input is only reported on press, like text input on the
	// other backend.
	if press && sym >= 0x20 && sym <= 0x7e {
		return KeyEvent{Press: true, Rune: rune(sym)}, true
	}
	return KeyEvent{}, false
}

// presenter pushes frame pixels to the window with PutImage, splitting
// rows into chunks that fit the server's maximum request length.
type presenter struct {
	conn        *xgb.Conn
	win         xproto.Window
	gc          xproto.Gcontext
	width       int
	height      int
	scale       int
	depth       byte
	maxReqBytes int
	data        []byte
}

func (p *presenter) present(frame *pandagl.Buffer) {
	fw, _ := frame.Size()
	src := frame.Pix()

	// ZPixmap rows on a little-endian server: B, G, R, pad per pixel.
	// Scaling replicates frame pixels into window pixels.
	for y := 0; y < p.height; y++ {
		row := src[(y/p.scale)*fw:]
		out := p.data[y*p.width*4:]
		for x := 0; x < p.width; x++ {
			c := row[x/p.scale]
			j := x * 4
			out[j+0] = uint8(c)
			out[j+1] = uint8(c >> 8)
			out[j+2] = uint8(c >> 16)
			out[j+3] = 0
		}
	}

	rowBytes := p.width * 4
	rowsPer := (p.maxReqBytes - 28) / rowBytes
	if rowsPer < 1 {
		rowsPer = 1
	}
	for y := 0; y < p.height; y += rowsPer {
		n := rowsPer
		if y+n > p.height {
			n = p.height - y
		}
		chunk := p.data[y*rowBytes : (y+n)*rowBytes]
		xproto.PutImage(p.conn, xproto.ImageFormatZPixmap, xproto.Drawable(p.win), p.gc,
			uint16(p.width), uint16(n), 0, int16(y), 0, p.depth, chunk)
	}
}
