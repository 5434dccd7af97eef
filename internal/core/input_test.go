package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionPause)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	if !f.Has(ActionPause) || !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("frame should report every action that was set")
	}
	if len(f.Turns) != 2 || f.Turns[0] != ActionUp || f.Turns[1] != ActionLeft {
		t.Errorf("Turns = %v, expected [Up Left]", f.Turns)
	}

	f.Clear()
	if f.Has(ActionPause) || len(f.Turns) != 0 {
		t.Error("Clear should drop all actions and turns")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
