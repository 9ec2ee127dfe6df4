package city

import "math"

// Star is one twinkling point. Position is screen pixels; the x coordinate
// wraps at the surface edges as the star drifts.
type Star struct {
	X, Y    float64
	VX, VY  float64
	Base    float64 // resting brightness
	Bright  float64 // instantaneous brightness, clamped each update
	Phase   float64
	Speed   float64 // twinkle angular speed
	IsCross bool    // renders a 4-point cross glow when bright enough
}

// StarField holds the two star populations: a thin uniform sky layer and a
// denser gap layer concentrated toward the ground.
type StarField struct {
	Sky []Star
	Gap []Star

	surfaceW float64
	surfaceH float64
}

// NewStarField allocates and seeds both populations. density scales the sky
// population in [0,1]; the gap population follows at GapStarFactor x.
func NewStarField(r *Rand, density, surfaceW, surfaceH float64) *StarField {
	density = clampF(density, 0, 1)
	skyCount := int(density * SkyStarBase)
	if skyCount < 1 {
		skyCount = 1
	}
	sf := &StarField{
		Sky:      make([]Star, skyCount),
		Gap:      make([]Star, skyCount*GapStarFactor),
		surfaceW: surfaceW,
		surfaceH: surfaceH,
	}
	for i := range sf.Sky {
		seedStar(r, &sf.Sky[i], r.RangeF(0, surfaceW), r.RangeF(0, surfaceH*0.96))
	}
	for i := range sf.Gap {
		sf.seedGapStar(r, &sf.Gap[i])
	}
	return sf
}

func seedStar(r *Rand, s *Star, x, y float64) {
	s.X = x
	s.Y = y
	s.VX = r.RangeF(-1.2, 1.2)
	s.VY = r.RangeF(-0.4, 0.4)
	s.Base = r.RangeF(0.35, 0.75)
	s.Bright = s.Base
	s.Phase = r.RangeF(0, 2*math.Pi)
	s.Speed = r.RangeF(0.8, 3.2)
	s.IsCross = r.Chance(BrightFraction)
}

// seedGapStar rejection-samples a height so density rises toward the ground
// and meets the sky layer's density near the frame top. Bounded attempts;
// the last candidate is accepted unconditionally so seeding always ends.
func (sf *StarField) seedGapStar(r *Rand, s *Star) {
	h := 0.0
	for try := 0; try < GradientTries; try++ {
		h = r.Float64() // 0 = top, 1 = ground
		if r.Float64() < gapAcceptance(h) {
			break
		}
	}
	seedStar(r, s, r.RangeF(0, sf.surfaceW), h*(sf.surfaceH*0.98))
}

// gapAcceptance is the target density curve: quadratic growth toward the
// ground, floored at the sky layer's uniform density near the top.
func gapAcceptance(h float64) float64 {
	const skyFloor = 0.12
	return skyFloor + (1-skyFloor)*h*h
}

// Update advances drift and twinkle. Brightness is always clamped into
// [StarMinBright, StarMaxBright]; x wraps, y clamps near the margins.
func (sf *StarField) Update(dt, now float64) {
	sf.updateSlice(sf.Sky, dt, now)
	sf.updateSlice(sf.Gap, dt, now)
}

func (sf *StarField) updateSlice(stars []Star, dt, now float64) {
	for i := range stars {
		s := &stars[i]
		s.X = wrapF(s.X+s.VX*dt, sf.surfaceW)
		s.Y = clampF(s.Y+s.VY*dt, 2, sf.surfaceH-2)
		s.Bright = clampF(
			s.Base+math.Sin(now*s.Speed+s.Phase)*StarTwinkleAmp,
			StarMinBright, StarMaxBright,
		)
	}
}
