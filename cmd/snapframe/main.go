// Command snapframe renders the spinning-cube scene without a window and
// writes one frame to an image file. It is the headless counterpart to
// spincube: advance the animation a fixed number of steps, rasterize the
// final frame, encode it and exit.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/PhilipPanda/pandagl"
	"github.com/PhilipPanda/pandagl/internal/buildinfo"
)

func main() {
	var (
		outPath = flag.String("out", "frame.png", "Output image (.png or .bmp).")
		texPath = flag.String("tex", "", "Path to a BMP texture for the cube (checker pattern when empty).")
		mode    = flag.String("mode", "tex", "Render mode: wire, flat or tex.")
		width   = flag.Int("width", 800, "Frame width in pixels.")
		height  = flag.Int("height", 600, "Frame height in pixels.")
		steps   = flag.Int("steps", 90, "Animation steps to advance before the capture.")
		depth   = flag.Bool("depth", false, "Render with the per-pixel depth buffer.")
		version = flag.Bool("version", false, "Print version and exit.")
	)
	flag.Parse()

	if *version {
		fmt.Println("snapframe", buildinfo.Full())
		return
	}
	if *width <= 0 || *height <= 0 {
		fatalf("frame size %dx%d is not drawable", *width, *height)
	}

	renderMode := pandagl.RenderSolidTextured
	switch *mode {
	case "wire":
		renderMode = pandagl.RenderWireframe
	case "flat":
		renderMode = pandagl.RenderSolidFlat
	case "tex":
	default:
		fatalf("unknown mode %q (want wire, flat or tex)", *mode)
	}

	frame := pandagl.NewBuffer(*width, *height)
	render(frame, *texPath, renderMode, *depth, *steps)

	if err := writeImage(*outPath, frame); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// render builds the demo scene, advances the spin and rasterizes the
// final state into frame.
func render(frame *pandagl.Buffer, texPath string, mode pandagl.RenderMode, depth bool, steps int) {
	w, h := frame.Size()

	r := pandagl.NewRenderer(w, h, depth)
	r.Mode = mode
	r.ClearColor = pandagl.RGB(0x12, 0x12, 0x18)

	scene := pandagl.CreateScene(8)
	scene.Camera.FOVYRad = 1.05

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

	orbit := pandagl.OrbitController{Yaw: 0.6, Pitch: 0.35, Radius: 4.2}
	orbit.Apply(&scene.Camera)

	angle := 0.02 * float32(steps)
	spin := pandagl.Mat4Mul(pandagl.Mat4RotateY(angle), pandagl.Mat4RotateX(angle*0.6))
	scene.UpdateMeshTransform(cubeID, spin)
	scene.UpdateMeshTransform(torusID, pandagl.Mat4RotateX(angle*0.35))

	r.Render(frame, scene)
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

// writeImage encodes the frame in the format named by the file extension.
func writeImage(path string, frame *pandagl.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	img := frame.ToImage()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("unsupported extension %q (want .png or .bmp)", filepath.Ext(path))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
