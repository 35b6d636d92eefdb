/*
Package movingquad holds the platform-independent half of a small OpenGL
program that draws an orange quad and lets the arrow keys slide the viewport.

# Overview

The program runs four phases in order: open a window with a 3.3 core
context, build the shader program, upload the quad, and run the frame loop.
This package owns everything that does not need a live context:

  - Config, loaded from defaults, .env files and the environment
  - InputState and Key, the per-frame keyboard snapshot
  - Offset, the unbounded viewport origin moved by the arrow keys
  - the quad geometry and the shader sources
  - Loop, the frame loop state machine over the Window and Renderer interfaces
  - ShaderError and the sentinel startup errors

The OpenGL and GLFW side lives in backend/opengl.

# Frame Loop

	window, _ := opengl.OpenWindow(cfg)
	program, err := opengl.NewProgram(movingquad.VertexShaderSource, movingquad.FragmentShaderSource)
	mesh := opengl.NewMesh(movingquad.QuadVertices(), movingquad.QuadIndices())
	renderer := opengl.NewRenderer(program, mesh, cfg.Width, cfg.Height)

	movingquad.NewLoop(window, renderer).Run()

Each frame polls keys, sets the close flag on Escape, moves the offset by
MoveStep per held arrow key, draws, presents and polls events. The close
flag is checked only at the top of the loop, so the frame in which Escape is
seen is still drawn.

# Keyboard

	Esc           Quit
	Left / Right  Move the viewport origin along X by 2 pixels per frame
	Up / Down     Move the viewport origin along Y by 2 pixels per frame
*/
package movingquad
