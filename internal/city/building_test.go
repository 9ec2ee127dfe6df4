package city

import (
	"math"
	"testing"
)

func TestArchetypeCatalog(t *testing.T) {
	if len(Archetypes) != 11 {
		t.Fatalf("expected 11 archetypes, got %d", len(Archetypes))
	}
	for _, a := range Archetypes {
		if a.Floors[0] <= 0 || a.Floors[1] < a.Floors[0] {
			t.Errorf("%s: bad floor range %v", a.Name, a.Floors)
		}
		if a.Width[0] <= 0 || a.Width[1] < a.Width[0] {
			t.Errorf("%s: bad width range %v", a.Name, a.Width)
		}
		if a.Occupancy <= 0 || a.Occupancy > 1 {
			t.Errorf("%s: occupancy %v out of (0,1]", a.Name, a.Occupancy)
		}
	}
}

func TestSkylinePacking(t *testing.T) {
	tests := []struct {
		name  string
		seed  uint64
		count int
	}{
		{"small", 1, 5},
		{"medium", 42, 40},
		{"large", 0xDEADBEEF, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildings := GenerateSkyline(NewRand(tt.seed), tt.count, 1920, 1080)
			if len(buildings) != tt.count {
				t.Fatalf("expected %d buildings, got %d", tt.count, len(buildings))
			}
			for i := 0; i+1 < len(buildings); i++ {
				if buildings[i].Right() != buildings[i+1].X {
					t.Errorf("gap/overlap at %d: right=%v next left=%v",
						i, buildings[i].Right(), buildings[i+1].X)
				}
			}
		})
	}
}

func TestSkylineHeightCap(t *testing.T) {
	const surfaceH = 1080.0
	maxH := (surfaceH - SkyMargin) * HeightCapFraction * (1 + HeightCapVary)

	for seed := uint64(1); seed < 30; seed++ {
		buildings := GenerateSkyline(NewRand(seed), 100, 1920, surfaceH)
		for i, b := range buildings {
			if b.Height <= 0 {
				t.Fatalf("seed %d building %d: non-positive height %v", seed, i, b.Height)
			}
			if b.Height > maxH+1e-9 {
				t.Fatalf("seed %d building %d: height %v exceeds cap %v", seed, i, b.Height, maxH)
			}
		}
	}
}

func TestAviationFlag(t *testing.T) {
	buildings := GenerateSkyline(NewRand(7), 300, 1920, 1080)
	for i, b := range buildings {
		arch := Archetypes[b.Archetype]
		want := arch.AlwaysBeacon || (arch.BeaconFloors > 0 && b.Floors > arch.BeaconFloors)
		if b.Aviation != want {
			t.Errorf("building %d (%s, %d floors): aviation=%v want %v",
				i, arch.Name, b.Floors, b.Aviation, want)
		}
	}
}

func TestWindowsPerFloor(t *testing.T) {
	tests := []struct {
		width float64
		min   int
		max   int
	}{
		{10, 1, 1},
		{60, 2, MaxWindowCols},
		{500, MaxWindowCols, MaxWindowCols},
	}
	for _, tt := range tests {
		got := windowsPerFloor(tt.width)
		if got < tt.min || got > tt.max {
			t.Errorf("windowsPerFloor(%v) = %d, want within [%d,%d]", tt.width, got, tt.min, tt.max)
		}
	}
}

func TestSkylineDeterministic(t *testing.T) {
	a := GenerateSkyline(NewRand(99), 50, 1920, 1080)
	b := GenerateSkyline(NewRand(99), 50, 1920, 1080)
	for i := range a {
		if a[i].X != b[i].X || a[i].Height != b[i].Height || a[i].Archetype != b[i].Archetype {
			t.Fatalf("generation not deterministic at building %d", i)
		}
	}
	if math.IsNaN(a[0].Height) {
		t.Fatal("NaN height")
	}
}
