package core

import "testing"

// fakeSource is a scripted raw input source.
type fakeSource struct {
	pads    [MaxGamepads]uint8
	x, y    int
	buttons uint8
}

func (f *fakeSource) Gamepad(slot Slot) uint8 { return f.pads[slot] }

func (f *fakeSource) Mouse() (int, int, uint8) { return f.x, f.y, f.buttons }

func newTestTracker() (*InputTracker, *fakeSource) {
	src := &fakeSource{}
	return NewInputTracker(src, NewRect(0, 0, ScreenSize, ScreenSize)), src
}

func TestJustPressedFiresOnceWhileHeld(t *testing.T) {
	tracker, src := newTestTracker()

	const ticks = 5
	src.pads[Gamepad1] = uint8(ButtonX)

	justPressedCount := 0
	for i := 0; i < ticks; i++ {
		tracker.Refresh()
		pad := tracker.Gamepad(Gamepad1)
		if !pad.Held(ButtonX) {
			t.Errorf("tick %d: Held(X) = false, expected true", i)
		}
		if pad.JustPressed(ButtonX) {
			justPressedCount++
			if i != 0 {
				t.Errorf("JustPressed(X) fired on tick %d, expected only tick 0", i)
			}
		}
		tracker.Commit()
	}

	if justPressedCount != 1 {
		t.Errorf("JustPressed(X) fired %d times, expected 1", justPressedCount)
	}
}

func TestJustPressedRearmsAfterRelease(t *testing.T) {
	tracker, src := newTestTracker()

	sequence := []struct {
		raw         uint8
		justPressed bool
	}{
		{uint8(ButtonZ), true},
		{uint8(ButtonZ), false},
		{0, false},
		{uint8(ButtonZ), true},
	}

	for i, step := range sequence {
		src.pads[Gamepad1] = step.raw
		tracker.Refresh()
		if got := tracker.Gamepad(Gamepad1).JustPressed(ButtonZ); got != step.justPressed {
			t.Errorf("tick %d: JustPressed(Z) = %v, expected %v", i, got, step.justPressed)
		}
		tracker.Commit()
	}
}

func TestQueriesAreStableWithinTick(t *testing.T) {
	tracker, src := newTestTracker()
	src.pads[Gamepad1] = uint8(ButtonX)

	tracker.Refresh()
	for i := 0; i < 3; i++ {
		if !tracker.Gamepad(Gamepad1).JustPressed(ButtonX) {
			t.Fatalf("query %d: JustPressed should stay true until Commit", i)
		}
	}
}

func TestMissingCommitKeepsEdgeAlive(t *testing.T) {
	tracker, src := newTestTracker()
	src.pads[Gamepad1] = uint8(ButtonX)

	tracker.Refresh()
	tracker.Refresh()
	if !tracker.Gamepad(Gamepad1).JustPressed(ButtonX) {
		t.Error("without Commit the previous snapshot must not advance")
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	tracker, src := newTestTracker()
	src.pads[Gamepad2] = uint8(ButtonUp)

	tracker.Refresh()
	if tracker.Gamepad(Gamepad1).Held(ButtonUp) {
		t.Error("slot 1 should not see slot 2's button")
	}
	if !tracker.Gamepad(Gamepad2).JustPressed(ButtonUp) {
		t.Error("slot 2 should see Up just pressed")
	}
	if got := tracker.Gamepads()[Gamepad2]; !got.Held(ButtonUp) {
		t.Error("Gamepads() should expose slot 2 state")
	}
}

func TestMouseClampAndEdges(t *testing.T) {
	tracker, src := newTestTracker()

	tests := []struct {
		name         string
		x, y         int
		expectX      int
		expectY      int
		buttons      uint8
		leftHeld     bool
		leftJustDown bool
	}{
		{"inside", 10, 20, 10, 20, uint8(MouseLeft), true, true},
		{"negative clamps to zero", -5, -7, 0, 0, uint8(MouseLeft), true, false},
		{"beyond clamps to edge", 500, 170, 159, 159, 0, false, false},
		{"press again", 3, 3, 3, 3, uint8(MouseLeft | MouseRight), true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src.x, src.y, src.buttons = tc.x, tc.y, tc.buttons
			tracker.Refresh()
			m := tracker.Mouse()

			x, y := m.Position()
			if x != tc.expectX || y != tc.expectY {
				t.Errorf("Position() = (%d, %d), expected (%d, %d)", x, y, tc.expectX, tc.expectY)
			}
			if m.Held(MouseLeft) != tc.leftHeld {
				t.Errorf("Held(Left) = %v, expected %v", m.Held(MouseLeft), tc.leftHeld)
			}
			if m.JustPressed(MouseLeft) != tc.leftJustDown {
				t.Errorf("JustPressed(Left) = %v, expected %v", m.JustPressed(MouseLeft), tc.leftJustDown)
			}
			tracker.Commit()
		})
	}
}

func TestUnknownButtonPanics(t *testing.T) {
	state := NewGamepadState(0xff, 0)
	defer func() {
		if recover() == nil {
			t.Error("querying an unknown button should panic")
		}
	}()
	state.Held(Button(0x04))
}

func TestInvalidSlotPanics(t *testing.T) {
	tracker, _ := newTestTracker()
	tracker.Refresh()
	defer func() {
		if recover() == nil {
			t.Error("querying slot 4 should panic")
		}
	}()
	tracker.Gamepad(Slot(4))
}

func TestButtonString(t *testing.T) {
	if ButtonX.String() != "X" || ButtonDown.String() != "Down" {
		t.Error("unexpected button names")
	}
	if Button(0x04).String() != "Unknown" {
		t.Error("unknown button should be named Unknown")
	}
}
