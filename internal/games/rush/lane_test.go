package rush

import (
	"testing"
	"time"
)

func TestLaneShift(t *testing.T) {
	tests := []struct {
		from  Lane
		delta int
		want  Lane
	}{
		{LaneCenter, -1, LaneLeft},
		{LaneCenter, 1, LaneRight},
		{LaneLeft, -1, LaneLeft},
		{LaneRight, 1, LaneRight},
		{LaneLeft, 5, LaneRight},
	}
	for _, tt := range tests {
		if got := tt.from.Shift(tt.delta); got != tt.want {
			t.Errorf("%v.Shift(%d) = %v, want %v", tt.from, tt.delta, got, tt.want)
		}
	}
}

func TestLaneGeometry(t *testing.T) {
	if LaneLeft.X(80) != -80 || LaneCenter.X(80) != 0 || LaneRight.X(80) != 80 {
		t.Error("unexpected lane centers")
	}
	for i, l := range Lanes {
		if l.Index() != i {
			t.Errorf("%v.Index() = %d, want %d", l, l.Index(), i)
		}
	}
}

func TestClockAdvance(t *testing.T) {
	c := NewClock(60)

	in := c.Advance(time.Second / 60)
	if in.Scale != 1 {
		t.Errorf("Scale = %v, want 1 for one reference frame", in.Scale)
	}
	in = c.Advance(time.Second / 30)
	if in.Scale < 1.99 || in.Scale > 2.01 {
		t.Errorf("Scale = %v, want about 2", in.Scale)
	}
	if in.Now != time.Second/60+time.Second/30 {
		t.Errorf("Now = %v", in.Now)
	}

	in = c.Advance(-time.Second)
	if in.Elapsed != 0 || in.Scale != 0 {
		t.Errorf("negative elapsed should be clamped, got %+v", in)
	}

	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now = %v after reset", c.Now())
	}
}

func TestRNGRange(t *testing.T) {
	r := NewSimpleRNG(0)
	for range 1000 {
		if v := r.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) = %d", v)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v", f)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}
