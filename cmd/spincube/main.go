// Command spincube renders a spinning textured cube inside a torus,
// driven entirely by the CPU rasterizer.
//
// Arrow keys orbit the camera, +/- zoom, m cycles the render mode,
// z toggles the depth buffer, h toggles the HUD, space pauses the spin
// and Escape quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/PhilipPanda/pandagl"
	"github.com/PhilipPanda/pandagl/fonts/font8x8"
	"github.com/PhilipPanda/pandagl/internal/buildinfo"
	"github.com/PhilipPanda/pandagl/window"
)

func main() {
	var (
		texPath = flag.String("tex", "", "Path to a BMP texture for the cube (checker pattern when empty).")
		mode    = flag.String("mode", "tex", "Initial render mode: wire, flat or tex.")
		width   = flag.Int("width", 800, "Frame width in pixels.")
		height  = flag.Int("height", 600, "Frame height in pixels.")
		scale   = flag.Int("scale", 1, "Window scale factor.")
		tps     = flag.Int("tps", 60, "Frames per second.")
		verbose = flag.Bool("v", false, "Enable debug logging.")
		version = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("spincube", buildinfo.Full())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pandagl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	initialMode, err := parseMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := window.Config{
		Width:  *width,
		Height: *height,
		Scale:  *scale,
		Title:  "spincube (" + buildinfo.Short() + ")",
		TPS:    *tps,
	}
	if err := window.Run(cfg, func(s *window.Session) func() error {
		return newApp(s, *texPath, initialMode).step
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseMode(s string) (pandagl.RenderMode, error) {
	switch s {
	case "wire":
		return pandagl.RenderWireframe, nil
	case "flat":
		return pandagl.RenderSolidFlat, nil
	case "tex":
		return pandagl.RenderSolidTextured, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want wire, flat or tex)", s)
}

func modeName(m pandagl.RenderMode) string {
	switch m {
	case pandagl.RenderWireframe:
		return "wire"
	case pandagl.RenderSolidFlat:
		return "flat"
	default:
		return "tex"
	}
}

type app struct {
	session  *window.Session
	renderer *pandagl.Renderer
	scene    *pandagl.Scene
	orbit    pandagl.OrbitController
	held     map[window.KeyCode]bool

	cubeID  int
	torusID int

	hud    bool
	paused bool
	angle  float32
}

func newApp(s *window.Session, texPath string, mode pandagl.RenderMode) *app {
	w, h := s.Frame().Size()

	r := pandagl.NewRenderer(w, h, false)
	r.Mode = mode
	r.ClearColor = pandagl.RGB(0x12, 0x12, 0x18)

	scene := pandagl.CreateScene(8)
	scene.Camera.FOVYRad = 1.05

	// The torus goes in first: with no depth buffer, later meshes paint
	// over earlier ones.
	torus := pandagl.NewTorusMesh(1.7, 0.22, 28, 12)
	torus.Material.BaseColor = pandagl.RGB(0x3A, 0x6E, 0xA5)
	torusID := scene.AddMesh(torus)

	cube := pandagl.NewCubeMesh(1.3, [6]pandagl.Color{
		pandagl.RGB(0xD9, 0x4F, 0x4F),
		pandagl.RGB(0x4F, 0xD9, 0x6A),
		pandagl.RGB(0x4F, 0x7E, 0xD9),
		pandagl.RGB(0xD9, 0xC8, 0x4F),
		pandagl.RGB(0xB5, 0x4F, 0xD9),
		pandagl.RGB(0x4F, 0xD9, 0xD0),
	})
	cube.Material.Texture = loadTexture(texPath)
	cubeID := scene.AddMesh(cube)

	return &app{
		session:  s,
		renderer: r,
		scene:    scene,
		orbit: pandagl.OrbitController{
			Yaw:       0.6,
			Pitch:     0.35,
			Radius:    4.2,
			MinRadius: 2,
			MaxRadius: 12,
		},
		held:    make(map[window.KeyCode]bool),
		cubeID:  cubeID,
		torusID: torusID,
		hud:     true,
	}
}

func loadTexture(path string) *pandagl.Image {
	if path == "" {
		return checkerTexture(64, 8)
	}
	img, err := pandagl.LoadBMP(path)
	if err != nil {
		pandagl.Logger().Warn("texture load failed, using checker", "path", path, "err", err)
		return checkerTexture(64, 8)
	}
	return img
}

// checkerTexture draws a checkerboard into an offscreen buffer and
// snapshots it into an immutable image.
func checkerTexture(size, cells int) *pandagl.Image {
	light := pandagl.RGB(0xF0, 0xF0, 0xE8)
	dark := pandagl.RGB(0x2E, 0x2E, 0x38)

	buf := pandagl.NewBuffer(size, size)
	cell := size / cells
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			c := light
			if (x+y)%2 == 1 {
				c = dark
			}
			buf.FillRect(x*cell, y*cell, cell, cell, c)
		}
	}
	return buf.Snapshot()
}

func (a *app) step() error {
	a.handleInput()

	const turn = 0.035
	if a.held[window.KeyLeft] {
		a.orbit.Rotate(-turn, 0)
	}
	if a.held[window.KeyRight] {
		a.orbit.Rotate(turn, 0)
	}
	if a.held[window.KeyUp] {
		a.orbit.Rotate(0, turn)
	}
	if a.held[window.KeyDown] {
		a.orbit.Rotate(0, -turn)
	}
	a.orbit.Apply(&a.scene.Camera)

	if !a.paused {
		a.angle += 0.02
	}
	spin := pandagl.Mat4Mul(pandagl.Mat4RotateY(a.angle), pandagl.Mat4RotateX(a.angle*0.6))
	a.scene.UpdateMeshTransform(a.cubeID, spin)
	a.scene.UpdateMeshTransform(a.torusID, pandagl.Mat4RotateX(a.angle*0.35))

	frame := a.session.Frame()
	a.renderer.Render(frame, a.scene)
	if a.hud {
		a.drawHUD(frame)
	}
	return nil
}

func (a *app) handleInput() {
	for {
		select {
		case ev := <-a.session.Events():
			a.handleKey(ev)
		default:
			return
		}
	}
}

func (a *app) handleKey(ev window.KeyEvent) {
	switch ev.Code {
	case window.KeyEscape:
		if ev.Press {
			a.session.Quit()
		}
		return
	case window.KeyUp, window.KeyDown, window.KeyLeft, window.KeyRight:
		a.held[ev.Code] = ev.Press
		return
	}

	if !ev.Press {
		return
	}
	switch ev.Rune {
	case 'm':
		a.cycleMode()
	case 'z':
		w, h := a.session.Frame().Size()
		a.renderer.EnableDepth(!a.renderer.Depth, w, h)
	case 'h':
		a.hud = !a.hud
	case ' ':
		a.paused = !a.paused
	case '+', '=':
		a.orbit.Zoom(-0.25)
	case '-':
		a.orbit.Zoom(0.25)
	}
}

func (a *app) cycleMode() {
	switch a.renderer.Mode {
	case pandagl.RenderWireframe:
		a.renderer.SetRenderMode(pandagl.RenderSolidFlat)
	case pandagl.RenderSolidFlat:
		a.renderer.SetRenderMode(pandagl.RenderSolidTextured)
	default:
		a.renderer.SetRenderMode(pandagl.RenderWireframe)
	}
}

func (a *app) drawHUD(frame *pandagl.Buffer) {
	_, h := frame.Size()

	white := pandagl.RGB(0xFF, 0xFF, 0xFF)
	dim := pandagl.RGBA(0xFF, 0xFF, 0xFF, 0x90)

	status := fmt.Sprintf("mode %s  depth %v", modeName(a.renderer.Mode), a.renderer.Depth)
	pandagl.DrawText(frame, font8x8.Font, 8, 6, status, white)
	pandagl.DrawText(frame, font8x8.Font, 8, 18,
		"arrows orbit  +/- zoom  m mode  z depth  h hud  esc quit", dim)

	// Little axes gauge, bottom left.
	pandagl.DrawThickLine(frame, 18, h-18, 58, h-18, 3, pandagl.RGB(0xD9, 0x4F, 0x4F))
	pandagl.DrawThickLine(frame, 18, h-18, 18, h-58, 3, pandagl.RGB(0x4F, 0xD9, 0x6A))
	pandagl.DrawCircle(frame, 18, h-18, 6, white)
}
