package city

import "testing"

func TestStarBrightnessClamped(t *testing.T) {
	sf := NewStarField(NewRand(21), 1.0, 1920, 1080)
	now := 0.0
	for step := 0; step < 500; step++ {
		dt := 0.016 + float64(step%7)*0.01
		now += dt
		sf.Update(dt, now)
		for i, s := range sf.Sky {
			if s.Bright < StarMinBright || s.Bright > StarMaxBright {
				t.Fatalf("sky star %d brightness %v outside [%v,%v]",
					i, s.Bright, StarMinBright, StarMaxBright)
			}
		}
		for i, s := range sf.Gap {
			if s.Bright < StarMinBright || s.Bright > StarMaxBright {
				t.Fatalf("gap star %d brightness %v outside [%v,%v]",
					i, s.Bright, StarMinBright, StarMaxBright)
			}
		}
	}
}

func TestStarHorizontalWrap(t *testing.T) {
	sf := NewStarField(NewRand(5), 0.5, 800, 600)
	for i := range sf.Sky {
		sf.Sky[i].VX = 300 // force fast drift
	}
	now := 0.0
	for step := 0; step < 200; step++ {
		now += 0.1
		sf.Update(0.1, now)
	}
	for i, s := range sf.Sky {
		if s.X < 0 || s.X >= 800 {
			t.Fatalf("star %d drifted out: x=%v", i, s.X)
		}
		if s.Y < 0 || s.Y > 600 {
			t.Fatalf("star %d escaped vertical clamp: y=%v", i, s.Y)
		}
	}
}

func TestDensityGradientSampler(t *testing.T) {
	const samples = 10000
	const minRatio = 3.0

	sf := &StarField{surfaceW: 1000, surfaceH: 1000}
	r := NewRand(31337)

	low, high := 0, 0 // lowest quartile of height vs topmost quartile
	for i := 0; i < samples; i++ {
		var s Star
		sf.seedGapStar(r, &s)
		h := s.Y / (1000 * 0.98)
		if h >= 0.75 {
			low++ // near the ground
		} else if h < 0.25 {
			high++ // near the frame top
		}
	}
	if high == 0 {
		t.Fatal("no samples in the top quartile; sky floor is broken")
	}
	ratio := float64(low) / float64(high)
	if ratio < minRatio {
		t.Errorf("ground/top density ratio %.2f below %v (low=%d high=%d)",
			ratio, minRatio, low, high)
	}
}

func TestGradientSamplerTerminates(t *testing.T) {
	// Even a pathological acceptance curve must finish within the bounded
	// attempts; exercise a large batch as a smoke test.
	sf := &StarField{surfaceW: 100, surfaceH: 100}
	r := NewRand(1)
	for i := 0; i < 100000; i++ {
		var s Star
		sf.seedGapStar(r, &s)
	}
}

func TestCelestialOcclusion(t *testing.T) {
	buildings := []Building{
		{X: 100, Width: 50, Height: 300},
	}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"above roof", 120, 700, false},
		{"inside span below roof", 120, 800, true},
		{"left of building", 50, 900, false},
		{"right of building", 200, 900, false},
		{"on roofline", 120, 780, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := occludedByBuilding(buildings, tt.x, tt.y, 1080)
			if got != tt.want {
				t.Errorf("occluded(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCelestialBrightnessClamped(t *testing.T) {
	cs := NewCelestialSphere(9, 1.0, 1920, 1080, true)
	var buf []CelestialStar
	now := 0.0
	for step := 0; step < 50; step++ {
		now += 0.5
		cs.Update(0.5)
		buf = cs.Stars(buf[:0], nil, now)
		for i, s := range buf {
			if s.Bright < StarMinBright || s.Bright > StarMaxBright {
				t.Fatalf("celestial star %d brightness %v out of range", i, s.Bright)
			}
			if s.X < 0 || s.X >= 1920 || s.Y < 0 || s.Y >= 1080 {
				t.Fatalf("celestial star %d projected off-surface (%v,%v)", i, s.X, s.Y)
			}
		}
	}
}
