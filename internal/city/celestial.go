package city

import "math"

// CelestialSphere generates the star layer analytically every frame: each
// index hashes to a fixed right-ascension/declination pair, the whole sphere
// rotates by a slowly accumulating sidereal angle, and stars project
// stereographically into screen space. Nothing is stored per star beyond
// the seed, so the mode costs no extra memory over the legacy field.
type CelestialSphere struct {
	seed     uint64
	count    int
	angle    float64 // accumulated sidereal rotation, radians
	rate     float64 // radians per second; 0 = no rotation
	surfaceW float64
	surfaceH float64
}

// CelestialStar is one projected star for the current frame.
type CelestialStar struct {
	X, Y   float64
	Bright float64
	Cross  bool
}

func NewCelestialSphere(seed uint64, density, surfaceW, surfaceH float64, rotate bool) *CelestialSphere {
	count := int(clampF(density, 0, 1) * SkyStarBase * (GapStarFactor + 1))
	if count < 1 {
		count = 1
	}
	rate := 0.0
	if rotate {
		rate = 0.009 // slow enough that motion reads as sidereal drift
	}
	return &CelestialSphere{
		seed:     seed,
		count:    count,
		rate:     rate,
		surfaceW: surfaceW,
		surfaceH: surfaceH,
	}
}

// Update accumulates the rotation angle.
func (cs *CelestialSphere) Update(dt float64) {
	cs.angle = math.Mod(cs.angle+cs.rate*dt, 2*math.Pi)
}

// Stars appends this frame's visible stars to out and returns it. A star is
// culled when its projection lands inside a building's horizontal span below
// that building's roofline, or outside the surface.
func (cs *CelestialSphere) Stars(out []CelestialStar, buildings []Building, now float64) []CelestialStar {
	for i := 0; i < cs.count; i++ {
		h1 := hash2D(cs.seed, i, 0)
		h2 := hash2D(cs.seed, i, 1)

		ra := float64(h1&0xFFFFFF) / float64(0xFFFFFF) * 2 * math.Pi
		dec := math.Asin(float64(h2&0xFFFFFF)/float64(0xFFFFFF)*2 - 1)

		// Unit direction after sidereal rotation about the polar axis.
		lon := ra + cs.angle
		x := math.Cos(dec) * math.Cos(lon)
		y := math.Cos(dec) * math.Sin(lon)
		z := math.Sin(dec)
		if z <= 0.02 {
			continue // below (or grazing) the horizon
		}

		// Stereographic projection from the nadir onto the zenith plane.
		k := 2.0 / (1.0 + z)
		px := cs.surfaceW*0.5 + x*k*cs.surfaceW*0.34
		py := cs.surfaceH*0.72 - z*k*cs.surfaceH*0.30 + y*k*cs.surfaceH*0.16
		if px < 0 || px >= cs.surfaceW || py < 0 || py >= cs.surfaceH {
			continue
		}
		if occludedByBuilding(buildings, px, py, cs.surfaceH) {
			continue
		}

		base := 0.3 + float64(h2>>40&0xFF)/255.0*0.45
		phase := float64(h1>>40&0xFF) / 255.0 * 2 * math.Pi
		speed := 0.8 + float64(h1>>48&0xFF)/255.0*2.4
		bright := clampF(base+math.Sin(now*speed+phase)*StarTwinkleAmp, StarMinBright, StarMaxBright)

		out = append(out, CelestialStar{
			X: px, Y: py,
			Bright: bright,
			Cross:  float64(h2>>56&0xFF)/256.0 < BrightFraction,
		})
	}
	return out
}

// occludedByBuilding reports whether (x, y) sits within a building's span
// and below its roofline.
func occludedByBuilding(buildings []Building, x, y, surfaceH float64) bool {
	for i := range buildings {
		b := &buildings[i]
		if x >= b.X && x < b.Right() && y >= b.RoofY(surfaceH) {
			return true
		}
	}
	return false
}
