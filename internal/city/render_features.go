package city

import "math"

// featureTopY returns where rooftop gear sits for a building: above the
// spire if there is one, else on the roofline.
func (c *City) featureTopY(b *Building) float64 {
	y := b.RoofY(c.H)
	if b.TowerHeight > 0 {
		y -= b.TowerHeight
	}
	return y
}

// composeBeacons blinks the aviation lights on flagged rooflines.
func (c *City) composeBeacons(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if !b.Aviation || !BeaconLit(b.PhaseTimer) {
			continue
		}
		x := b.X + b.Width*0.5
		y := c.featureTopY(b) - 2
		f.Glow(x, y, 12, Palette.BeaconRed, 0.8)
		f.Point(x, y, 3, Palette.BeaconRed, 1)
	}
}

// composeCommTowers draws the communication masts and their rotating beam
// wedge. Every mast shares the one fixed-step beam clock so the whole
// skyline sweeps in unison.
func (c *City) composeCommTowers(f *Frame) {
	angle := BeamAngle(c.beamClock) * math.Pi / 180
	half := BeamWidthDeg * 0.5 * math.Pi / 180

	for i := range c.Buildings {
		b := &c.Buildings[i]
		if !b.Features.HasAny(FeatureCommTower) {
			continue
		}
		x := b.X + b.Width*0.5
		roof := b.RoofY(c.H)
		top := roof - 34

		f.Line(x, roof, x, top, 2, Palette.TowerGrey, 1)
		f.Line(x-8, roof-12, x+8, roof-12, 1, Palette.TowerGrey, 1)
		f.Line(x-5, roof-24, x+5, roof-24, 1, Palette.TowerGrey, 1)

		// Sweep wedge: a translucent fan centred on the beam angle.
		const reach = 64.0
		f.Poly(Palette.BeamWhite, 0.16,
			Vec2{float32(x), float32(top)},
			Vec2{float32(x + math.Cos(angle-half)*reach), float32(top + math.Sin(angle-half)*reach)},
			Vec2{float32(x + math.Cos(angle)*reach*1.06), float32(top + math.Sin(angle)*reach*1.06)},
			Vec2{float32(x + math.Cos(angle+half)*reach), float32(top + math.Sin(angle+half)*reach)},
		)
		f.Glow(x, top, 9, Palette.BeamWhite, 0.7)
	}
}

// composeWaterTowers draws the tank-on-legs silhouette with its two-colour
// caution pulse.
func (c *City) composeWaterTowers(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		if !b.Features.HasAny(FeatureWaterTank) {
			continue
		}
		x := b.X + b.Width*0.5
		roof := b.RoofY(c.H)

		const tankW, tankH, legH = 22.0, 16.0, 9.0
		f.Line(x-tankW*0.35, roof, x-tankW*0.35, roof-legH, 1.5, Palette.TowerGrey, 1)
		f.Line(x+tankW*0.35, roof, x+tankW*0.35, roof-legH, 1.5, Palette.TowerGrey, 1)
		f.Rect(x-tankW*0.5, roof-legH-tankH, tankW, tankH, Palette.TankGrey, 1)
		f.Poly(Palette.TankGrey, 1,
			Vec2{float32(x - tankW*0.5), float32(roof - legH - tankH)},
			Vec2{float32(x), float32(roof - legH - tankH - 7)},
			Vec2{float32(x + tankW*0.5), float32(roof - legH - tankH)},
		)

		col, intensity := CautionPulse(b.PhaseTimer)
		f.Glow(x, roof-legH-tankH-8, 8, col, float32(intensity*0.8))
		f.Point(x, roof-legH-tankH-8, 2.4, col, float32(intensity))
	}
}

// composeAccessories draws the leftover rooftop gear: HVAC fans and the
// fallback maintenance cranes.
func (c *City) composeAccessories(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		roof := b.RoofY(c.H)

		if b.Features.HasAny(FeatureHVACFan) {
			x := b.X + b.Width*0.35
			const boxW, boxH = 18.0, 10.0
			f.Rect(x-boxW*0.5, roof-boxH, boxW, boxH, Palette.BuildingHi, 1)

			// Four blades spun by the building's own phase timer.
			fa := FanAngle(b.PhaseTimer)
			cy := roof - boxH*0.5
			for blade := 0; blade < 4; blade++ {
				a := fa + float64(blade)*math.Pi/2
				f.Line(x, cy, x+math.Cos(a)*4.2, cy+math.Sin(a)*4.2, 1, Palette.FanBlade, 0.9)
			}
		}

		if b.Features.HasAny(FeatureCrane) {
			x := b.X + b.Width*0.7
			const mastH, jib, counter = 30.0, 26.0, 10.0
			top := roof - mastH
			f.Line(x, roof, x, top, 2, Palette.CraneYellow, 1)
			f.Line(x-counter, top, x+jib, top, 1.5, Palette.CraneYellow, 1)
			f.Line(x, top+6, x+jib*0.7, top, 1, Palette.CraneYellow, 0.8)
			f.Line(x+jib*0.85, top, x+jib*0.85, top+9, 1, Palette.CraneYellow, 0.9)
		}
	}
}
