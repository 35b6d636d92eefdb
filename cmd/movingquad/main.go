// Command movingquad opens a window and draws an orange quad on a red
// background. The arrow keys move the viewport origin by two pixels per
// frame; Escape or closing the window quits.
//
// Settings default to an 800x600 window with an OpenGL 3.3 core context and
// can be overridden from a .env file in the working directory or the
// environment (MOVINGQUAD_WIDTH, MOVINGQUAD_HEIGHT, MOVINGQUAD_TITLE,
// MOVINGQUAD_GL_MAJOR, MOVINGQUAD_GL_MINOR, MOVINGQUAD_VSYNC,
// MOVINGQUAD_VERBOSE, MOVINGQUAD_STRICT_SHADERS).
//
//	go run ./cmd/movingquad/
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	quad "github.com/go-theft-auto/movingquad"
	"github.com/go-theft-auto/movingquad/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		switch {
		case errors.Is(err, quad.ErrWindow):
			quad.Logger().Error("window creation failed", "err", err)
		case errors.Is(err, quad.ErrLoader):
			quad.Logger().Error("OpenGL loader failed", "err", err)
		default:
			quad.Logger().Error("startup failed", "err", err)
		}
		os.Exit(-1)
	}
}

func run() error {
	cfg, err := quad.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	quad.SetVerbose(cfg.Verbose)

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	program, err := opengl.NewProgram(quad.VertexShaderSource, quad.FragmentShaderSource)
	if err != nil {
		quad.Logger().Error("shader build failed", "err", err)
		if cfg.StrictShaders {
			program.Delete()
			return fmt.Errorf("shaders: %w", err)
		}
	}

	mesh := opengl.NewMesh(quad.QuadVertices(), quad.QuadIndices())
	renderer := opengl.NewRenderer(program, mesh, cfg.Width, cfg.Height)
	defer renderer.Delete()

	quad.NewLoop(window, renderer).Run()
	return nil
}
