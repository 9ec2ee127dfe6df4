package city

import (
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// AmbienceSystem streams an endless synthesized night-city bed: lowpassed
// wind noise, a faint mains hum, and a distant siren every few minutes.
type AmbienceSystem struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
	seed   uint64
}

var globalAmbience *AmbienceSystem

var ambienceVolume = 0.16

// InitAmbience opens the audio device. Failure is non-fatal for the saver;
// the caller logs and continues without sound.
func InitAmbience(seed uint64) error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAmbience = &AmbienceSystem{ctx: ctx, ready: ready, seed: seed}
	return nil
}

// StartAmbience begins the endless bed once the context is ready.
func StartAmbience() {
	a := globalAmbience
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if a.player != nil {
		a.player.Close()
	}
	reader := &ambienceReader{seed: a.seed, nextSiren: 45.0}
	player := a.ctx.NewPlayer(reader)
	player.SetVolume(ambienceVolume)
	a.player = player
	player.Play()
}

// StopAmbience closes the stream player, if any.
func StopAmbience() {
	if globalAmbience != nil && globalAmbience.player != nil {
		globalAmbience.player.Close()
		globalAmbience.player = nil
	}
}

// ambienceReader synthesizes samples on demand; it never returns io.EOF.
type ambienceReader struct {
	t    float64
	seed uint64

	lp  float64 // wind lowpass state
	lp2 float64

	sirenAt   float64 // start time of the active siren, <0 = none
	nextSiren float64
}

const sampleDt = 1.0 / SampleRate

func (m *ambienceReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	for i := 0; i < samples; i++ {
		m.t += sampleDt

		// Wind: white noise through two cheap one-pole lowpasses, with a
		// slow amplitude swell so gusts come and go.
		n := lcg(&m.seed)*2 - 1
		m.lp += (n - m.lp) * 0.035
		m.lp2 += (m.lp - m.lp2) * 0.08
		swell := 0.55 + 0.45*math.Sin(m.t*0.11)*math.Sin(m.t*0.047+1.3)
		wind := m.lp2 * 1.6 * swell

		// Mains hum, barely audible.
		hum := (math.Sin(2*math.Pi*49*m.t) + 0.5*math.Sin(2*math.Pi*98*m.t)) * 0.035

		// Distant siren: slow two-tone sweep, scheduled minutes apart.
		siren := 0.0
		if m.sirenAt == 0 && m.t >= m.nextSiren {
			m.sirenAt = m.t
		}
		if m.sirenAt > 0 {
			st := m.t - m.sirenAt
			if st > 14.0 {
				m.sirenAt = 0
				m.nextSiren = m.t + 90.0 + lcg(&m.seed)*150.0
			} else {
				freq := 640.0 + 180.0*math.Sin(st*2.1)
				env := math.Sin(st / 14.0 * math.Pi) // fade in and out
				siren = math.Sin(2*math.Pi*freq*st) * env * 0.03
			}
		}

		s := softSat(wind + hum + siren)
		// Slightly decorrelate channels for width.
		putStereoF32LR(p, i, s, s*0.92+hum*0.08)
	}
	return samples * 8, nil
}

// putStereoF32LR writes one stereo float32 sample pair at index i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	l := math.Float32bits(float32(left))
	r := math.Float32bits(float32(right))
	o := i * 8
	buf[o+0] = byte(l)
	buf[o+1] = byte(l >> 8)
	buf[o+2] = byte(l >> 16)
	buf[o+3] = byte(l >> 24)
	buf[o+4] = byte(r)
	buf[o+5] = byte(r >> 8)
	buf[o+6] = byte(r >> 16)
	buf[o+7] = byte(r >> 24)
}

// softSat is a gentle tanh-like limiter keeping the mix out of clipping.
func softSat(x float64) float64 {
	if x > 1.5 {
		return 1
	}
	if x < -1.5 {
		return -1
	}
	return x * (27 + x*x) / (27 + 9*x*x)
}

// lcg returns a cheap uniform sample in [0,1) advancing the seed.
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(*seed>>11) * (1.0 / (1 << 53))
}
