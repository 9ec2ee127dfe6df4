package city

// StarMode selects how the star layer is produced.
type StarMode uint8

const (
	StarModeField  StarMode = iota // legacy drifting field with twinkle
	StarModeSphere                 // celestial sphere with sidereal rotation
	StarModeStatic                 // celestial sphere, rotation frozen
)

// Options is the engine configuration, owned by the CLI layer.
type Options struct {
	Speed      float64 // scales every elapsed-time delta
	Density    float64 // sky star population scale in [0,1]
	MeteorFreq float64 // divides the spawn-delay band
	Stars      StarMode
	Seed       uint64
	Windowed   bool
	Audio      bool
}

// DefaultOptions returns the stock screensaver tuning.
func DefaultOptions() Options {
	return Options{
		Speed:      1.0,
		Density:    0.8,
		MeteorFreq: 1.0,
		Stars:      StarModeField,
	}
}

// City is the whole scene: buildings, infrastructure table, star layer and
// meteor pool. One instance is owned by the render loop; nothing here is
// safe for concurrent use and nothing needs to be.
type City struct {
	Opts Options
	W, H float64

	Buildings []Building
	Infra     []Placement
	placed    bool // one-time allocator guard; single-threaded re-entry only

	stars   *StarField
	sphere  *CelestialSphere
	meteors *MeteorSystem

	rng       *Rand
	now       float64 // accumulated scaled time
	beamClock float64 // fixed-step clock for the rotating strobe
	toggleAcc float64 // window-mutation cadence accumulator

	celBuf []CelestialStar
}

// NewCity generates the skyline and seeds every subsystem. Building count
// is derived from the surface width so the row always spans the frame.
func NewCity(opts Options, surfaceW, surfaceH float64) *City {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	opts.Density = clampF(opts.Density, 0, 1)

	c := &City{
		Opts: opts,
		W:    surfaceW,
		H:    surfaceH,
		rng:  NewRand(opts.Seed),
	}

	count := int(surfaceW/64) + 3
	c.Buildings = GenerateSkyline(c.rng, count, surfaceW, surfaceH)
	c.EnsureInfrastructure()

	switch opts.Stars {
	case StarModeSphere:
		c.sphere = NewCelestialSphere(opts.Seed^0x57A6, opts.Density, surfaceW, surfaceH, true)
	case StarModeStatic:
		c.sphere = NewCelestialSphere(opts.Seed^0x57A6, opts.Density, surfaceW, surfaceH, false)
	default:
		c.stars = NewStarField(NewRand(opts.Seed^0x57A6), opts.Density, surfaceW, surfaceH)
	}
	c.meteors = NewMeteorSystem(opts.Seed^0xBEAD, opts.MeteorFreq, surfaceW, surfaceH)
	return c
}

// EnsureInfrastructure runs the sparse-feature allocator exactly once.
// Subsequent calls are a no-op; the table is not designed to be re-rolled
// after a live configuration change.
func (c *City) EnsureInfrastructure() {
	if c.placed {
		return
	}
	c.Infra = PlaceInfrastructure(c.rng, c.Buildings)
	c.placed = true
}

// Update advances every subsystem by one frame. dt is wall-clock seconds,
// scaled here by the speed option.
func (c *City) Update(dt float64) {
	dt *= c.Opts.Speed
	c.now += dt

	// Per-building animation phases advance by real elapsed time; the beam
	// clock keeps its original fixed per-call step (see BeamAngle).
	for i := range c.Buildings {
		c.Buildings[i].PhaseTimer += dt
	}
	c.beamClock += BeamStep

	c.toggleAcc += dt
	for c.toggleAcc >= WindowToggleInterval {
		MutateWindows(c.rng, c.Buildings)
		c.toggleAcc -= WindowToggleInterval
	}

	if c.stars != nil {
		c.stars.Update(dt, c.now)
	}
	if c.sphere != nil {
		c.sphere.Update(dt)
	}
	c.meteors.Update(dt)
}

// Now returns the accumulated scaled scene time.
func (c *City) Now() float64 { return c.now }
