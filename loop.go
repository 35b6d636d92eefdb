package movingquad

// Window is the part of a platform window the frame loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// PollKeys snapshots the current key state into s.
	PollKeys(s *InputState)
	SwapBuffers()
	PollEvents()
}

// Renderer draws one frame with the viewport anchored at the given offset.
type Renderer interface {
	Frame(offset Offset)
}

// State is the frame loop state.
type State int

const (
	StateRunning State = iota
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Loop owns the per-frame state and drives a Window and a Renderer.
type Loop struct {
	window   Window
	renderer Renderer
	input    *InputState
	offset   Offset
	state    State
	frames   int
}

// NewLoop creates a loop in the running state with a zero offset.
func NewLoop(window Window, renderer Renderer) *Loop {
	return &Loop{
		window:   window,
		renderer: renderer,
		input:    NewInputState(),
	}
}

// Run executes frames until the window's close flag is set.
// The flag is only checked before a frame, so a frame that requests
// closing still draws and presents.
func (l *Loop) Run() {
	for l.state == StateRunning {
		if l.window.ShouldClose() {
			l.state = StateClosing
			break
		}
		l.Step()
	}
	logger.Debug("frame loop finished", "frames", l.frames, "offset", l.offset.String())
}

// Step runs one frame body without checking the close flag.
func (l *Loop) Step() {
	l.input.Reset()
	l.window.PollKeys(l.input)
	if Verbose() {
		l.logKeyChanges()
	}

	if l.input.KeyDown(KeyEscape) {
		l.window.SetShouldClose(true)
	}
	l.offset.Apply(l.input)

	l.renderer.Frame(l.offset)

	l.window.SwapBuffers()
	l.window.PollEvents()
	l.frames++
}

func (l *Loop) logKeyChanges() {
	pressed, released := l.input.Changed()
	for _, k := range pressed {
		logger.Debug("key pressed", "key", KeyName(k), "frame", l.frames)
	}
	for _, k := range released {
		logger.Debug("key released", "key", KeyName(k), "frame", l.frames)
	}
}

// Offset returns the current viewport offset.
func (l *Loop) Offset() Offset { return l.offset }

// State returns the loop state.
func (l *Loop) State() State { return l.state }

// Frames returns the number of frames executed.
func (l *Loop) Frames() int { return l.frames }
