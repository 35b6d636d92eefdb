// Command gen drives the frame loop with scripted key presses in a hidden
// window, captures the framebuffer after each script and saves JPEG
// screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	quad "github.com/go-theft-auto/movingquad"
	"github.com/go-theft-auto/movingquad/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one scripted run of the frame loop.
type screenshot struct {
	name   string     // filename without extension
	keys   []quad.Key // keys held on every frame
	frames int        // frames to run
}

func run() error {
	cfg := quad.DefaultConfig()
	cfg.Title = "screenshot-gen"
	cfg.VSync = false
	cfg.Hidden = true

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.NewProgram(quad.VertexShaderSource, quad.FragmentShaderSource)
	if err != nil {
		program.Delete()
		return fmt.Errorf("shaders: %w", err)
	}
	mesh := opengl.NewMesh(quad.QuadVertices(), quad.QuadIndices())
	renderer := opengl.NewRenderer(program, mesh, cfg.Width, cfg.Height)
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "origin", frames: 2},
		{name: "right", keys: []quad.Key{quad.KeyRight}, frames: 50},
		{name: "up_left", keys: []quad.Key{quad.KeyUp, quad.KeyLeft}, frames: 75},
		{name: "off_screen", keys: []quad.Key{quad.KeyDown}, frames: 400},
	}

	for _, s := range shots {
		off, err := capture(window, renderer, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg offset %s\n", s.name, off)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(window *opengl.Window, renderer *opengl.Renderer, s screenshot, outDir string) (quad.Offset, error) {
	// Fresh loop per screenshot so offsets do not carry over.
	w := &scriptedWindow{Window: window, keys: s.keys, frames: s.frames}
	loop := quad.NewLoop(w, renderer)
	loop.Run()

	width, height := renderer.Size()
	img, err := quad.FrameImage(renderer.ReadPixels(), width, height)
	if err != nil {
		return loop.Offset(), err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return loop.Offset(), err
	}
	defer f.Close()
	return loop.Offset(), quad.EncodeJPEG(f, img)
}

// scriptedWindow replaces key polling with a fixed set of held keys and
// closes itself after a number of frames. Buffers are not swapped so the
// last frame stays readable.
type scriptedWindow struct {
	*opengl.Window
	keys   []quad.Key
	frames int
	done   int
}

func (w *scriptedWindow) ShouldClose() bool {
	return w.done >= w.frames
}

func (w *scriptedWindow) SetShouldClose(bool) {}

func (w *scriptedWindow) PollKeys(s *quad.InputState) {
	for _, k := range w.keys {
		s.SetKey(k, true)
	}
}

func (w *scriptedWindow) SwapBuffers() {
	w.done++
}
