package window

import "testing"

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 1 {
		t.Errorf("Scale = %d, want 1", cfg.Scale)
	}
	if cfg.TPS != 60 {
		t.Errorf("TPS = %d, want 60", cfg.TPS)
	}
	if cfg.Title == "" {
		t.Error("Title not defaulted")
	}
}

func TestConfigExplicitValuesKept(t *testing.T) {
	in := Config{Width: 320, Height: 200, Scale: 3, Title: "demo", TPS: 30}
	cfg := in.withDefaults()
	if cfg != in {
		t.Fatalf("withDefaults() = %+v, want %+v", cfg, in)
	}
}

func TestSessionFrameMatchesConfig(t *testing.T) {
	s := newSession(Config{Width: 32, Height: 16}.withDefaults())
	w, h := s.Frame().Size()
	if w != 32 || h != 16 {
		t.Fatalf("frame size = %dx%d, want 32x16", w, h)
	}
}

func TestSessionEmitNeverBlocks(t *testing.T) {
	s := newSession(Config{Width: 4, Height: 4}.withDefaults())

	// Nothing drains the channel here; emit must drop instead of block.
	for i := 0; i < 1000; i++ {
		s.emit(KeyEvent{Code: KeyUp, Press: true})
	}

	drained := 0
drain:
	for {
		select {
		case <-s.Events():
			drained++
		default:
			break drain
		}
	}
	if drained == 0 || drained >= 1000 {
		t.Fatalf("drained %d events, want a bounded non-zero count", drained)
	}
}

func TestQuit(t *testing.T) {
	s := newSession(Config{}.withDefaults())
	if s.quit {
		t.Fatal("new session already quit")
	}
	s.Quit()
	if !s.quit {
		t.Fatal("Quit() did not mark the session")
	}
}
