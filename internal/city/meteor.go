package city

import "math"

// Meteor is one pooled streak. Inactive slots wait for the spawner; active
// slots integrate velocity, decay life and push their history into a
// fixed-length trail ring.
type Meteor struct {
	Active bool
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, slot freed at <= 0

	TrailX [MeteorTrailLen]float64
	TrailY [MeteorTrailLen]float64
	TrailA [MeteorTrailLen]float64
}

// MeteorSystem owns the pool and spawn scheduling. The next spawn delay is
// rolled immediately after each spawn, uniform over the configured band
// divided by the frequency multiplier.
type MeteorSystem struct {
	Pool [MeteorPoolSize]Meteor

	rng       *Rand
	frequency float64
	timer     float64
	nextDelay float64
	surfaceW  float64
	surfaceH  float64
}

func NewMeteorSystem(seed uint64, frequency, surfaceW, surfaceH float64) *MeteorSystem {
	if frequency <= 0 {
		frequency = 1
	}
	ms := &MeteorSystem{
		rng:       NewRand(seed),
		frequency: frequency,
		surfaceW:  surfaceW,
		surfaceH:  surfaceH,
	}
	ms.rollDelay()
	return ms
}

func (ms *MeteorSystem) rollDelay() {
	ms.nextDelay = ms.rng.RangeF(MeteorSpawnMin, MeteorSpawnMax) / ms.frequency
	ms.timer = 0
}

// Update runs spawn scheduling then advances every active slot.
func (ms *MeteorSystem) Update(dt float64) {
	ms.timer += dt
	if ms.timer >= ms.nextDelay {
		ms.spawn()
		ms.rollDelay()
	}
	for i := range ms.Pool {
		if ms.Pool[i].Active {
			ms.updateMeteor(&ms.Pool[i], dt)
		}
	}
}

// spawn activates the first free slot. A full pool skips the spawn silently;
// a missing streak beats stalling the saver.
func (ms *MeteorSystem) spawn() {
	for i := range ms.Pool {
		m := &ms.Pool[i]
		if m.Active {
			continue
		}
		speed := ms.rng.RangeF(MeteorMinSpeed, MeteorMaxSpeed)
		angle := ms.rng.RangeF(MeteorMinFallAngle, MeteorMaxFallAngle)
		if ms.rng.Chance(0.5) {
			angle = math.Pi - angle // fall leftward instead
		}
		ActivateMeteor(m,
			ms.rng.RangeF(0, ms.surfaceW),
			ms.rng.RangeF(0, ms.surfaceH*MeteorSkyBandFrac),
			math.Cos(angle)*speed,
			math.Sin(angle)*speed,
		)
		return
	}
}

// ActivateMeteor arms a slot with full life and a cleared trail.
func ActivateMeteor(m *Meteor, x, y, vx, vy float64) {
	m.Active = true
	m.X, m.Y = x, y
	m.VX, m.VY = vx, vy
	m.Life = 1.0
	for i := range m.TrailA {
		m.TrailX[i] = x
		m.TrailY[i] = y
		m.TrailA[i] = 0
	}
}

func (ms *MeteorSystem) updateMeteor(m *Meteor, dt float64) {
	UpdateMeteor(m, dt, ms.surfaceW, ms.surfaceH)
}

// UpdateMeteor integrates one slot: kinematics, life decay, trail shift,
// then deactivation on expiry or leaving the surface (with margin).
func UpdateMeteor(m *Meteor, dt, surfaceW, surfaceH float64) {
	m.X += m.VX * dt
	m.Y += m.VY * dt
	m.Life -= MeteorLifeDecay * dt

	// Shift the ring down one slot, newest at index 0.
	for i := MeteorTrailLen - 1; i > 0; i-- {
		m.TrailX[i] = m.TrailX[i-1]
		m.TrailY[i] = m.TrailY[i-1]
		m.TrailA[i] = m.TrailA[i-1]
	}
	m.TrailX[0] = m.X
	m.TrailY[0] = m.Y
	m.TrailA[0] = clampF(m.Life, 0, 1)

	if m.Life <= 0 ||
		m.X < -MeteorExitMargin || m.X > surfaceW+MeteorExitMargin ||
		m.Y < -MeteorExitMargin || m.Y > surfaceH+MeteorExitMargin {
		m.Active = false
	}
}
