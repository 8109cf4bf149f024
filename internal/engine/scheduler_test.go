package engine

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/core"
)

type stubSource struct {
	pad uint8
}

func (s *stubSource) Gamepad(slot core.Slot) uint8 {
	if slot == core.Gamepad1 {
		return s.pad
	}
	return 0
}

func (s *stubSource) Mouse() (int, int, uint8) { return 0, 0, 0 }

func newTestScheduler(skip uint32) (*Scheduler, *stubSource) {
	src := &stubSource{}
	tracker := core.NewInputTracker(src, core.NewRect(0, 0, core.ScreenSize, core.ScreenSize))
	return NewScheduler(tracker, skip), src
}

func TestRunFrameNoSkip(t *testing.T) {
	s, _ := newTestScheduler(0)

	var frames []uint64
	for i := 0; i < 5; i++ {
		if !s.RunFrame(func(ctx FrameContext) { frames = append(frames, ctx.Frame) }) {
			t.Errorf("tick %d: body should run when skip is 0", i)
		}
	}

	if s.FrameCount() != 5 {
		t.Errorf("FrameCount() = %d, expected 5", s.FrameCount())
	}
	for i, f := range frames {
		if f != uint64(i) {
			t.Errorf("body %d saw frame %d, expected the pre-increment value %d", i, f, i)
		}
	}
}

func TestRunFrameWithSkip(t *testing.T) {
	tests := []struct {
		skip     uint32
		ticks    int
		expected []uint64
	}{
		{skip: 1, ticks: 4, expected: []uint64{0, 1, 2, 3}},
		{skip: 2, ticks: 6, expected: []uint64{0, 2, 4}},
		{skip: 3, ticks: 7, expected: []uint64{0, 3, 6}},
	}

	for _, tc := range tests {
		s, _ := newTestScheduler(tc.skip)
		var ran []uint64
		for i := 0; i < tc.ticks; i++ {
			s.RunFrame(func(ctx FrameContext) { ran = append(ran, ctx.Frame) })
		}

		if s.FrameCount() != uint64(tc.ticks) {
			t.Errorf("skip %d: FrameCount() = %d, expected %d", tc.skip, s.FrameCount(), tc.ticks)
		}
		if len(ran) != len(tc.expected) {
			t.Fatalf("skip %d: body ran on %v, expected %v", tc.skip, ran, tc.expected)
		}
		for i := range ran {
			if ran[i] != tc.expected[i] {
				t.Errorf("skip %d: body ran on %v, expected %v", tc.skip, ran, tc.expected)
				break
			}
		}
	}
}

func TestInputCommittedOnSkippedTicks(t *testing.T) {
	s, src := newTestScheduler(2)

	// Frame 0 runs with nothing pressed.
	s.RunFrame(func(FrameContext) {})

	// Button goes down on frame 1, which is skipped; the edge is consumed there.
	src.pad = uint8(core.ButtonX)
	if s.RunFrame(func(FrameContext) { t.Error("frame 1 should be skipped") }) {
		t.Error("RunFrame should report the skip")
	}

	// Frame 2 runs: the button is held but no longer "just pressed".
	s.RunFrame(func(ctx FrameContext) {
		pad := ctx.Gamepad(core.Gamepad1)
		if !pad.Held(core.ButtonX) {
			t.Error("X should be held on frame 2")
		}
		if pad.JustPressed(core.ButtonX) {
			t.Error("X edge was committed on the skipped frame and must not fire again")
		}
	})
}

func TestJustPressedVisibleInBody(t *testing.T) {
	s, src := newTestScheduler(0)
	src.pad = uint8(core.ButtonZ)

	fired := 0
	for i := 0; i < 4; i++ {
		s.RunFrame(func(ctx FrameContext) {
			if ctx.Gamepad(core.Gamepad1).JustPressed(core.ButtonZ) {
				fired++
			}
		})
	}
	if fired != 1 {
		t.Errorf("JustPressed(Z) fired %d times across held ticks, expected 1", fired)
	}
}

func TestSetFrameSkipAndElapsed(t *testing.T) {
	s, _ := newTestScheduler(0)
	s.SetFrameSkip(4)
	if s.FrameSkip() != 4 {
		t.Errorf("FrameSkip() = %d, expected 4", s.FrameSkip())
	}

	for i := 0; i < TicksPerSecond*2+5; i++ {
		s.RunFrame(func(FrameContext) {})
	}
	if s.Elapsed() != 2 {
		t.Errorf("Elapsed() = %d, expected 2", s.Elapsed())
	}
}
