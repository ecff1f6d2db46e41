package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionPause)

	got := f.Actions()
	want := []Action{ActionLeft, ActionLeft, ActionPause}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if !f.Has(ActionPause) || f.Has(ActionRight) {
		t.Error("Has() reports the wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Clear() left %d actions", f.Len())
	}
	if !clone.Has(ActionRight) {
		t.Error("clone should be independent of the original")
	}

	var zero InputFrame
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("zero-value frame should accept actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRestart.String() != "Restart" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
