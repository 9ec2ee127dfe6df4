package city

// FeatureMask is a bitmask of rooftop accessories on a single building.
type FeatureMask uint8

const (
	FeatureCommTower FeatureMask = 1 << iota // rotating communication strobe
	FeatureWaterTank                         // water tower with caution light
	FeatureHVACFan                           // rooftop fan unit
	FeatureCrane                             // maintenance crane (megatall fallback)
)

// SparseFeatures are the kinds placed by the one-time allocator; the crane
// is excluded — it only appears through the megatall fallback rule.
var SparseFeatures = []FeatureMask{FeatureCommTower, FeatureWaterTank, FeatureHVACFan}

// HasAny reports whether any of the given bits are set.
func (m FeatureMask) HasAny(bits FeatureMask) bool { return m&bits != 0 }

// SparseCount returns how many allocator-placed feature bits are set.
func (m FeatureMask) SparseCount() int {
	n := 0
	for _, f := range SparseFeatures {
		if m&f != 0 {
			n++
		}
	}
	return n
}

// Building is one skyline tower. X/Width/Height are screen pixels; Height
// is measured up from the ground line at the bottom surface edge.
type Building struct {
	X         float64
	Width     float64
	Height    float64
	Archetype int // index into Archetypes
	Floors    int
	PerFloor  int // windows per floor
	Occupancy float64
	Pattern   IllumPattern

	Features FeatureMask
	Aviation bool // aviation-safety beacon on the roofline

	AntennaCount int
	TowerHeight  float64 // spire above the roofline, 0 = none
	RoofElev     float64 // raised mechanical penthouse band

	Windows    [MaxWindowRows][MaxWindowCols]bool
	PhaseTimer float64 // per-building animation phase offset
}

// Right returns the building's right edge; the next building starts here.
func (b *Building) Right() float64 { return b.X + b.Width }

// RoofY returns the screen-space y of the roofline for a given surface height.
func (b *Building) RoofY(surfaceH float64) float64 { return surfaceH - b.Height }

// GenerateSkyline rolls count buildings packed left-to-right with zero gap.
// Raw height is floors x per-floor unit, then capped at a perturbed fraction
// of the usable surface height so the silhouette stays in a bounded band no
// matter what an archetype rolls.
func GenerateSkyline(r *Rand, count int, surfaceW, surfaceH float64) []Building {
	if count <= 0 {
		return nil
	}
	usable := surfaceH - SkyMargin
	if usable < 1 {
		usable = 1
	}

	buildings := make([]Building, count)
	left := FirstBuildingX
	for i := range buildings {
		ai := r.Intn(len(Archetypes))
		arch := &Archetypes[ai]
		b := &buildings[i]

		b.Archetype = ai
		b.Floors = r.Range(arch.Floors[0], arch.Floors[1])
		b.Width = r.RangeF(arch.Width[0], arch.Width[1])
		b.Occupancy = arch.Occupancy
		b.Pattern = arch.Pattern

		raw := float64(b.Floors) * arch.FloorHeight
		lid := usable * HeightCapFraction * (1 + r.RangeF(-HeightCapVary, HeightCapVary))
		if raw > lid {
			raw = lid
		}
		if raw < arch.FloorHeight {
			raw = arch.FloorHeight
		}
		b.Height = raw

		b.X = left
		left = b.Right()

		b.PerFloor = windowsPerFloor(b.Width)
		b.Aviation = arch.AlwaysBeacon || (arch.BeaconFloors > 0 && b.Floors > arch.BeaconFloors)

		// Silhouette dressing: antennas on most roofs, spires on tall ones,
		// a mechanical penthouse band on wider footprints.
		b.AntennaCount = r.Range(0, 3)
		if b.Floors >= 30 && r.Chance(0.45) {
			b.TowerHeight = r.RangeF(14, 42)
		}
		if b.Width >= 70 && r.Chance(0.5) {
			b.RoofElev = r.RangeF(4, 10)
		}
		b.PhaseTimer = r.RangeF(0, BeaconPeriod)

		SeedWindows(r, b)
	}
	return buildings
}

// windowsPerFloor derives the lit-window column count from footprint width.
func windowsPerFloor(width float64) int {
	n := int((width - WindowGutter) / (WindowCellW + WindowGutter))
	return clamp(n, 1, MaxWindowCols)
}
