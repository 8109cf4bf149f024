// Package engine drives the per-tick frame loop: it counts frames, applies
// the frame-skip factor and keeps the input tracker's history in step.
//
// A Scheduler is owned by a single host loop and is not safe for concurrent use.
package engine

import "github.com/vovakirdan/tui-life/internal/core"

// TicksPerSecond is the nominal host tick rate. Duration-based gating
// (banner visibility, periodic effects) is expressed in these ticks.
const TicksPerSecond = 60

// FrameContext is the input view handed to a frame body.
type FrameContext struct {
	// Frame is the counter value before this tick's increment.
	Frame uint64

	gamepads [core.MaxGamepads]core.GamepadState
	mouse    core.MouseState
}

// NewFrameContext builds a context from explicit input states.
func NewFrameContext(frame uint64, gamepads [core.MaxGamepads]core.GamepadState, mouse core.MouseState) FrameContext {
	return FrameContext{
		Frame:    frame,
		gamepads: gamepads,
		mouse:    mouse,
	}
}

// Gamepad returns this tick's state for a slot.
func (c FrameContext) Gamepad(slot core.Slot) core.GamepadState {
	if slot < core.Gamepad1 || slot > core.Gamepad4 {
		panic("engine: gamepad slot out of range")
	}
	return c.gamepads[slot]
}

// Mouse returns this tick's pointer state.
func (c FrameContext) Mouse() core.MouseState {
	return c.mouse
}

// Scheduler advances the frame counter once per host tick and decides
// whether the tick body runs.
type Scheduler struct {
	frame     uint64
	frameSkip uint32
	input     *core.InputTracker
}

// NewScheduler creates a scheduler that refreshes and commits input through tracker.
func NewScheduler(tracker *core.InputTracker, frameSkip uint32) *Scheduler {
	if tracker == nil {
		panic("engine: nil input tracker")
	}
	return &Scheduler{
		frameSkip: frameSkip,
		input:     tracker,
	}
}

// SetFrameSkip changes the skip factor. Zero means never skip.
func (s *Scheduler) SetFrameSkip(k uint32) {
	s.frameSkip = k
}

// FrameSkip returns the skip factor.
func (s *Scheduler) FrameSkip() uint32 {
	return s.frameSkip
}

// FrameCount returns the number of ticks processed so far.
func (s *Scheduler) FrameCount() uint64 {
	return s.frame
}

// ShouldRun reports whether the body executes on the given frame index.
func (s *Scheduler) ShouldRun(frame uint64) bool {
	return s.frameSkip == 0 || frame%uint64(s.frameSkip) == 0
}

// RunFrame processes one host tick. The body runs only on frames selected by
// the skip factor; the counter and the input history advance every tick.
// Returns whether the body ran.
func (s *Scheduler) RunFrame(body func(ctx FrameContext)) bool {
	current := s.frame
	s.input.Refresh()

	ran := s.ShouldRun(current)
	if ran {
		body(NewFrameContext(current, s.input.Gamepads(), s.input.Mouse()))
	}

	s.frame = current + 1
	s.input.Commit()
	return ran
}

// Elapsed converts the frame counter to whole seconds of nominal time.
func (s *Scheduler) Elapsed() uint64 {
	return s.frame / TicksPerSecond
}
