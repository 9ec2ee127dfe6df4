package city

import "testing"

func TestMaskSpanAndVisibility(t *testing.T) {
	f := &Frame{}
	f.Reset(200, 100)

	f.MaskSpan(50, 99, 40)

	tests := []struct {
		name    string
		x, y    float64
		visible bool
	}{
		{"open sky left of span", 10, 90, true},
		{"above the roofline", 60, 20, true},
		{"inside the silhouette", 60, 50, false},
		{"right of span", 150, 90, true},
		{"exactly on the roofline", 60, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.SkyVisible(tt.x, tt.y); got != tt.visible {
				t.Errorf("SkyVisible(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.visible)
			}
		})
	}
}

func TestMaskResetsBetweenFrames(t *testing.T) {
	f := &Frame{}
	f.Reset(100, 100)
	f.MaskSpan(0, 99, 10)
	if f.SkyVisible(50, 50) {
		t.Fatal("mask not applied")
	}
	f.Reset(100, 100)
	if !f.SkyVisible(50, 50) {
		t.Fatal("mask survived Reset")
	}
}

func TestFrameVertexArena(t *testing.T) {
	f := &Frame{}
	f.Reset(100, 100)
	f.Rect(1, 2, 10, 10, Palette.Building, 1)
	f.Line(0, 0, 5, 5, 2, Palette.Outline, 0.5)
	f.Point(7, 8, 3, Palette.Star, 1)

	if len(f.Cmds) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(f.Cmds))
	}
	if f.Cmds[0].Kind != CmdPoly || f.Cmds[0].Count != 4 {
		t.Errorf("rect command wrong: %+v", f.Cmds[0])
	}
	if f.Cmds[1].Kind != CmdLine || f.Cmds[1].Count != 2 || f.Cmds[1].Size != 2 {
		t.Errorf("line command wrong: %+v", f.Cmds[1])
	}
	pts := f.Pts(f.Cmds[2])
	if len(pts) != 1 || pts[0].X != 7 || pts[0].Y != 8 {
		t.Errorf("point vertices wrong: %+v", pts)
	}
}

func TestDegeneratePolyDropped(t *testing.T) {
	f := &Frame{}
	f.Reset(100, 100)
	f.Poly(Palette.Building, 1, Vec2{0, 0}, Vec2{1, 1})
	if len(f.Cmds) != 0 {
		t.Fatal("two-vertex polygon should be dropped")
	}
}

func TestComposeMasksUnderBuildings(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 77
	c := NewCity(opts, 1280, 720)

	f := &Frame{}
	c.Compose(f)

	if len(f.Cmds) == 0 {
		t.Fatal("compose produced no draw commands")
	}
	// Any point straight under a building's roofline must be masked.
	b := &c.Buildings[len(c.Buildings)/2]
	x := b.X + b.Width*0.5
	if f.SkyVisible(x, b.RoofY(c.H)+5) {
		t.Errorf("mask missing under building at x=%v", x)
	}
	// And the sky right at the top is always open.
	if !f.SkyVisible(x, 1) {
		t.Error("mask covering the very top of the frame")
	}
}

func TestComposeDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 5
	a := NewCity(opts, 800, 600)
	b := NewCity(opts, 800, 600)

	fa, fb := &Frame{}, &Frame{}
	a.Update(0.016)
	b.Update(0.016)
	a.Compose(fa)
	b.Compose(fb)

	if len(fa.Cmds) != len(fb.Cmds) {
		t.Fatalf("command counts differ: %d vs %d", len(fa.Cmds), len(fb.Cmds))
	}
	for i := range fa.Cmds {
		if fa.Cmds[i] != fb.Cmds[i] {
			t.Fatalf("command %d differs between identical cities", i)
		}
	}
}

func TestUpdateAdvancesClocks(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 3
	c := NewCity(opts, 800, 600)

	phase0 := c.Buildings[0].PhaseTimer
	beam0 := c.beamClock
	c.Update(0.5)

	if c.Buildings[0].PhaseTimer <= phase0 {
		t.Error("building phase timer did not advance")
	}
	if c.beamClock != beam0+BeamStep {
		t.Errorf("beam clock advanced by %v, want fixed step %v", c.beamClock-beam0, BeamStep)
	}
	if c.Now() <= 0 {
		t.Error("scene time did not accumulate")
	}
}

func TestSpeedMultiplier(t *testing.T) {
	slow := DefaultOptions()
	slow.Seed = 9
	fast := slow
	fast.Speed = 3.0

	cs := NewCity(slow, 800, 600)
	cf := NewCity(fast, 800, 600)
	cs.Update(1.0)
	cf.Update(1.0)

	if cf.Now() <= cs.Now() {
		t.Errorf("speed 3 accumulated %v, speed 1 accumulated %v", cf.Now(), cs.Now())
	}
}
