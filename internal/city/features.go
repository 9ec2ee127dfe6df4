package city

import "math"

// BeaconLit is the aviation-beacon duty-cycle oscillator: lit while the
// phase sits inside the active slice of each period.
func BeaconLit(phase float64) bool {
	return math.Mod(phase, BeaconPeriod) < BeaconPeriod*BeaconDuty
}

// BeamAngle converts the accumulated beam clock into a sweep angle in
// degrees. The clock advances by a fixed per-frame step, not elapsed time;
// the original cadence was frame-locked and unifying the two would change
// the observable sweep speed.
func BeamAngle(clock float64) float64 {
	return math.Mod(clock*BeamDegPerUnit, 360)
}

// CautionPulse is the water-tower light: two-colour alternation on a 1 s
// cycle with a slower sinusoidal breathing layered on top.
func CautionPulse(phase float64) (RGB, float64) {
	col := Palette.CautionAmbr
	if math.Mod(phase, 1.0) >= 0.5 {
		col = Palette.CautionRed
	}
	intensity := 0.7 + 0.3*math.Sin(phase*2.6)
	return col, clampF(intensity, 0, 1)
}

// FanAngle spins the HVAC blades from the building's own phase timer.
func FanAngle(phase float64) float64 {
	return math.Mod(phase*3.4, 2*math.Pi)
}
