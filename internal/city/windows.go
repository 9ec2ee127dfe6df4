package city

// floorWeight adjusts lit probability by floor. Residential blocks are
// busiest near street level and thin out upward; office and 24-hour
// patterns stay near uniform.
func floorWeight(pattern IllumPattern, floor, floors int) float64 {
	if floors <= 1 {
		return 1.0
	}
	h := float64(floor) / float64(floors-1) // 0 = ground, 1 = top
	switch pattern {
	case PatternResidential:
		return 1.35 - 0.7*h
	case PatternAllNight:
		return 1.0
	default:
		return 1.1 - 0.2*h
	}
}

// SeedWindows fills the building's lit/unlit grid from its occupancy ratio.
// Runs once at generation; afterwards the grid only changes by ToggleWindow.
func SeedWindows(r *Rand, b *Building) {
	rows := clamp(b.Floors, 0, MaxWindowRows)
	cols := clamp(b.PerFloor, 0, MaxWindowCols)
	for f := 0; f < rows; f++ {
		p := clampF(b.Occupancy*floorWeight(b.Pattern, f, rows), 0, 1)
		for c := 0; c < cols; c++ {
			b.Windows[f][c] = r.Float64() < p
		}
	}
}

// ToggleWindow flips one cell. Indices outside the building's actual grid,
// or outside the global bounds, are a no-op.
func ToggleWindow(b *Building, floor, col int) {
	if b == nil || b.Floors <= 0 || b.PerFloor <= 0 {
		return
	}
	if floor < 0 || floor >= b.Floors || floor >= MaxWindowRows {
		return
	}
	if col < 0 || col >= b.PerFloor || col >= MaxWindowCols {
		return
	}
	b.Windows[floor][col] = !b.Windows[floor][col]
}

// MutateWindows flips a bounded number of random cells across the skyline.
// This is ambient activity, not a re-simulation: the original occupancy
// probabilities are never consulted again.
func MutateWindows(r *Rand, buildings []Building) {
	if len(buildings) == 0 {
		return
	}
	for i := 0; i < WindowTogglesPerTick; i++ {
		bi := r.Intn(len(buildings))
		if bi < 0 || bi >= len(buildings) {
			continue
		}
		b := &buildings[bi]
		if b.Floors <= 0 || b.PerFloor <= 0 {
			continue
		}
		f := r.Intn(clamp(b.Floors, 1, MaxWindowRows))
		c := r.Intn(clamp(b.PerFloor, 1, MaxWindowCols))
		ToggleWindow(b, f, c)
	}
}
