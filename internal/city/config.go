package city

// Window defaults (windowed mode; fullscreen uses the monitor mode).
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Skyline layout (in screen pixels).
const (
	SkyMargin         = 90   // reserved band above the tallest roofline
	HeightCapFraction = 0.72 // of (surface height - SkyMargin)
	HeightCapVary     = 0.06 // symmetric random perturbation of the cap
	FirstBuildingX    = -8.0 // first left edge, slightly off-surface
)

// Window grids.
const (
	MaxWindowRows = 28
	MaxWindowCols = 10

	WindowToggleInterval = 0.75 // seconds between ambient light flips
	WindowTogglesPerTick = 6

	WindowCellW  = 5.0
	WindowCellH  = 7.0
	WindowGutter = 3.0
)

// Rooftop features.
const (
	SparseFeatureCopies = 2  // global instances per sparse feature kind
	MegatallFloors      = 60 // floor count that earns a fallback crane
	AviationFloors      = 40 // conditional aviation-beacon threshold
)

// Stars.
const (
	SkyStarBase     = 340 // sky population at density 1.0
	GapStarFactor   = 3   // gap population = sky population x factor
	StarMinBright   = 0.15
	StarMaxBright   = 1.00
	StarTwinkleAmp  = 0.25
	BrightFraction  = 0.12 // share of stars flagged bright
	CrossGlowThresh = 0.80
	GradientTries   = 8 // rejection-sampling attempts before accept-last
)

// Meteors.
const (
	MeteorPoolSize     = 4
	MeteorTrailLen     = 16
	MeteorLifeDecay    = 0.5 // life units per second
	MeteorSpawnMin     = 5.0 // seconds
	MeteorSpawnMax     = 20.0
	MeteorExitMargin   = 50.0
	MeteorMinSpeed     = 220.0
	MeteorMaxSpeed     = 420.0
	MeteorSkyBandFrac  = 0.35 // spawn within the top fraction of the surface
	MeteorMinFallAngle = 0.30 // radians below horizontal
	MeteorMaxFallAngle = 1.10
)

// Feature animation timing.
const (
	BeaconPeriod   = 1.5  // seconds per blink cycle
	BeaconDuty     = 0.22 // lit fraction of the period
	BeamDegPerUnit = 72.0 // sweep speed of the rotating strobe
	BeamStep       = 1.0 / 60.0
	BeamWidthDeg   = 26.0
)

// Input grace: pointer motion is ignored for this long after start so the
// cursor settling on launch doesn't immediately dismiss the saver.
const MotionGraceSeconds = 1.5
