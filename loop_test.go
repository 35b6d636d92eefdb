package movingquad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quad "github.com/go-theft-auto/movingquad"
)

// fakeWindow replays a per-frame key script.
type fakeWindow struct {
	// script holds the keys held on frame i; later frames hold nothing.
	script [][]quad.Key
	frame  int
	closed bool
	// closedAt is the frame SetShouldClose(true) was called on, -1 if never.
	closedAt int
	swaps    int
	polls    int
	// closeAfter simulates the OS close button after this many frames.
	closeAfter int
}

func newFakeWindow(script ...[]quad.Key) *fakeWindow {
	return &fakeWindow{script: script, closedAt: -1}
}

func (w *fakeWindow) ShouldClose() bool {
	if w.closeAfter > 0 && w.frame >= w.closeAfter {
		return true
	}
	return w.closed
}

func (w *fakeWindow) SetShouldClose(v bool) {
	if v && !w.closed {
		w.closedAt = w.frame
	}
	w.closed = v
}

func (w *fakeWindow) PollKeys(s *quad.InputState) {
	held := map[quad.Key]bool{}
	if w.frame < len(w.script) {
		for _, k := range w.script[w.frame] {
			held[k] = true
		}
	}
	for k := quad.KeyNone + 1; k < quad.KeyCount; k++ {
		s.SetKey(k, held[k])
	}
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) PollEvents() {
	w.polls++
	w.frame++
}

// fakeRenderer records the offset of every drawn frame.
type fakeRenderer struct {
	offsets []quad.Offset
}

func (r *fakeRenderer) Frame(offset quad.Offset) {
	r.offsets = append(r.offsets, offset)
}

func repeat(n int, keys ...quad.Key) [][]quad.Key {
	out := make([][]quad.Key, n)
	for i := range out {
		out[i] = keys
	}
	return out
}

func TestLoopIdleFramesKeepOrigin(t *testing.T) {
	w := newFakeWindow()
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	for i := 0; i < 10; i++ {
		loop.Step()
	}

	assert.Equal(t, quad.Offset{}, loop.Offset())
	assert.False(t, w.ShouldClose())
	assert.Equal(t, quad.StateRunning, loop.State())
	assert.Equal(t, 10, loop.Frames())
	assert.Len(t, r.offsets, 10)
	assert.Equal(t, 10, w.swaps)
	assert.Equal(t, 10, w.polls)
}

func TestLoopRightThenEscape(t *testing.T) {
	script := append(repeat(5, quad.KeyRight), []quad.Key{quad.KeyEscape})
	w := newFakeWindow(script...)
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	loop.Run()

	assert.Equal(t, quad.Offset{X: 10, Y: 0}, loop.Offset())
	assert.True(t, w.closed)
	assert.Equal(t, 5, w.closedAt, "close flag set on the sixth frame")
	assert.Equal(t, quad.StateClosing, loop.State())

	// The Escape frame is still drawn and presented before the loop exits.
	assert.Equal(t, 6, loop.Frames())
	require.Len(t, r.offsets, 6)
	assert.Equal(t, quad.Offset{X: 10}, r.offsets[5])
	assert.Equal(t, 6, w.swaps)
}

func TestLoopEscapeFrameAppliesMovement(t *testing.T) {
	w := newFakeWindow([]quad.Key{quad.KeyEscape, quad.KeyUp, quad.KeyLeft})
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	loop.Run()

	assert.Equal(t, 1, loop.Frames())
	assert.Equal(t, quad.Offset{X: -2, Y: 2}, loop.Offset())
	assert.Equal(t, []quad.Offset{{X: -2, Y: 2}}, r.offsets)
}

func TestLoopWindowClosedBeforeFirstFrame(t *testing.T) {
	w := newFakeWindow()
	w.closed = true
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	loop.Run()

	assert.Equal(t, 0, loop.Frames())
	assert.Empty(t, r.offsets)
	assert.Equal(t, quad.StateClosing, loop.State())
}

func TestLoopOSCloseStopsRun(t *testing.T) {
	w := newFakeWindow(repeat(100, quad.KeyDown)...)
	w.closeAfter = 30
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	loop.Run()

	assert.Equal(t, 30, loop.Frames())
	assert.Equal(t, quad.Offset{Y: -60}, loop.Offset())
	assert.Equal(t, -1, w.closedAt, "loop must not set the flag itself")
}

func TestLoopRendererSeesOffsetAfterMovement(t *testing.T) {
	w := newFakeWindow(
		[]quad.Key{quad.KeyRight},
		[]quad.Key{quad.KeyRight, quad.KeyUp},
		nil,
		[]quad.Key{quad.KeyLeft, quad.KeyRight},
	)
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	for i := 0; i < 4; i++ {
		loop.Step()
	}

	assert.Equal(t, []quad.Offset{
		{X: 2, Y: 0},
		{X: 4, Y: 2},
		{X: 4, Y: 2},
		{X: 4, Y: 2},
	}, r.offsets)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", quad.StateRunning.String())
	assert.Equal(t, "closing", quad.StateClosing.String())
	assert.Equal(t, "unknown", quad.State(42).String())
}

func TestLoopVerboseKeyLoggingLeavesStateAlone(t *testing.T) {
	quad.SetVerbose(true)
	t.Cleanup(func() { quad.SetVerbose(false) })

	w := newFakeWindow(append(repeat(3, quad.KeyRight), nil)...)
	r := &fakeRenderer{}
	loop := quad.NewLoop(w, r)

	for i := 0; i < 4; i++ {
		loop.Step()
	}

	assert.Equal(t, 4, loop.Frames())
	assert.Equal(t, quad.Offset{X: 6}, loop.Offset())
	assert.False(t, w.ShouldClose())
}
