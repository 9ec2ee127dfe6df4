package city

// IllumPattern classifies how a building's windows light up over the night.
type IllumPattern uint8

const (
	PatternResidential IllumPattern = iota // lower floors busier, thins out upward
	PatternOffice                          // near-uniform, moderate occupancy
	PatternAllNight                        // hospitals etc. — uniform and bright
)

// Archetype is a building template defining generation ranges for floors,
// width and occupancy.
type Archetype struct {
	Name         string
	Floors       [2]int     // min/max floor count
	FloorHeight  float64    // pixels per floor before the height cap
	Width        [2]float64 // min/max footprint width in pixels
	Occupancy    float64    // base lit-window probability
	Pattern      IllumPattern
	AlwaysBeacon bool // aviation-flagged regardless of height
	BeaconFloors int  // aviation-flagged above this floor count (0 = never)
}

var (
	ArchResidential = Archetype{
		Name:        "Residential",
		Floors:      [2]int{6, 18},
		FloorHeight: 9,
		Width:       [2]float64{42, 70},
		Occupancy:   0.38,
		Pattern:     PatternResidential,
	}
	ArchOfficeTower = Archetype{
		Name:         "Office Tower",
		Floors:       [2]int{20, 45},
		FloorHeight:  8,
		Width:        [2]float64{50, 85},
		Occupancy:    0.30,
		Pattern:      PatternOffice,
		BeaconFloors: AviationFloors,
	}
	ArchMegatower = Archetype{
		Name:         "Megatower",
		Floors:       [2]int{55, 90},
		FloorHeight:  8,
		Width:        [2]float64{60, 95},
		Occupancy:    0.26,
		Pattern:      PatternOffice,
		AlwaysBeacon: true,
	}
	ArchHospital = Archetype{
		Name:         "Hospital",
		Floors:       [2]int{8, 16},
		FloorHeight:  10,
		Width:        [2]float64{70, 110},
		Occupancy:    0.62,
		Pattern:      PatternAllNight,
		AlwaysBeacon: true, // helipad
	}
	ArchInstitute = Archetype{
		Name:        "Institute",
		Floors:      [2]int{5, 12},
		FloorHeight: 11,
		Width:       [2]float64{60, 100},
		Occupancy:   0.22,
		Pattern:     PatternOffice,
	}
	ArchCommercial = Archetype{
		Name:        "Commercial",
		Floors:      [2]int{4, 10},
		FloorHeight: 10,
		Width:       [2]float64{46, 78},
		Occupancy:   0.45,
		Pattern:     PatternAllNight,
	}
	ArchIndustrial = Archetype{
		Name:        "Industrial",
		Floors:      [2]int{2, 6},
		FloorHeight: 13,
		Width:       [2]float64{68, 120},
		Occupancy:   0.18,
		Pattern:     PatternOffice,
	}
	ArchCultural = Archetype{
		Name:        "Cultural",
		Floors:      [2]int{3, 7},
		FloorHeight: 12,
		Width:       [2]float64{56, 96},
		Occupancy:   0.34,
		Pattern:     PatternOffice,
	}
	ArchResearch = Archetype{
		Name:         "Research",
		Floors:       [2]int{10, 28},
		FloorHeight:  9,
		Width:        [2]float64{48, 80},
		Occupancy:    0.40,
		Pattern:      PatternAllNight,
		BeaconFloors: AviationFloors,
	}
	ArchRetail = Archetype{
		Name:        "Retail",
		Floors:      [2]int{2, 5},
		FloorHeight: 11,
		Width:       [2]float64{40, 66},
		Occupancy:   0.50,
		Pattern:     PatternAllNight,
	}
	ArchConvention = Archetype{
		Name:        "Convention",
		Floors:      [2]int{3, 8},
		FloorHeight: 12,
		Width:       [2]float64{80, 130},
		Occupancy:   0.28,
		Pattern:     PatternOffice,
	}
)

// Archetypes is the fixed generation catalog; selection is uniform.
var Archetypes = []Archetype{
	ArchResidential,
	ArchOfficeTower,
	ArchMegatower,
	ArchHospital,
	ArchInstitute,
	ArchCommercial,
	ArchIndustrial,
	ArchCultural,
	ArchResearch,
	ArchRetail,
	ArchConvention,
}
