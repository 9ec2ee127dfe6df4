package city

import (
	"math"
	"testing"
)

func TestBeaconDutyCycle(t *testing.T) {
	tests := []struct {
		name  string
		phase float64
		lit   bool
	}{
		{"cycle start", 0, true},
		{"inside active slice", BeaconPeriod * BeaconDuty * 0.9, true},
		{"just past active slice", BeaconPeriod*BeaconDuty + 0.01, false},
		{"end of period", BeaconPeriod - 0.01, false},
		{"second cycle start", BeaconPeriod + 0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BeaconLit(tt.phase); got != tt.lit {
				t.Errorf("BeaconLit(%v) = %v, want %v", tt.phase, got, tt.lit)
			}
		})
	}
}

func TestBeaconDutyFraction(t *testing.T) {
	lit := 0
	const steps = 10000
	for i := 0; i < steps; i++ {
		if BeaconLit(float64(i) / steps * BeaconPeriod * 10) {
			lit++
		}
	}
	frac := float64(lit) / steps
	if math.Abs(frac-BeaconDuty) > 0.02 {
		t.Errorf("lit fraction %.3f, want about %v", frac, BeaconDuty)
	}
}

func TestBeamAngleRange(t *testing.T) {
	for clock := 0.0; clock < 100; clock += 0.37 {
		a := BeamAngle(clock)
		if a < 0 || a >= 360 {
			t.Fatalf("BeamAngle(%v) = %v outside [0,360)", clock, a)
		}
	}
}

func TestBeamAngleAdvances(t *testing.T) {
	a1 := BeamAngle(1.0)
	a2 := BeamAngle(1.0 + BeamStep)
	if a1 == a2 {
		t.Error("beam angle did not advance over one clock step")
	}
}

func TestCautionPulseAlternates(t *testing.T) {
	c1, _ := CautionPulse(0.25)
	c2, _ := CautionPulse(0.75)
	if c1 == c2 {
		t.Error("caution colours identical across the half-cycle boundary")
	}
	for phase := 0.0; phase < 20; phase += 0.13 {
		_, intensity := CautionPulse(phase)
		if intensity < 0 || intensity > 1 {
			t.Fatalf("intensity %v at phase %v outside [0,1]", intensity, phase)
		}
	}
}
