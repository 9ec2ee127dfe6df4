package city

import "math"

const skyGradientBands = 10

// composeSkyGradient paints the background as horizontal bands lerping from
// the zenith colour down to the horizon glow.
func (c *City) composeSkyGradient(f *Frame) {
	bandH := c.H / skyGradientBands
	for i := 0; i < skyGradientBands; i++ {
		t := float64(i) / float64(skyGradientBands-1)
		col := lerpRGB(Palette.SkyTop, Palette.SkyHorizon, t*t)
		f.Rect(0, float64(i)*bandH, c.W, bandH+1, col, 1)
	}
}

// composeMoon draws a phase-lit disc high in the sky. It sits above every
// roofline, so it is deliberately drawn before the mask exists.
func (c *City) composeMoon(f *Frame) {
	mx := c.W * 0.82
	my := c.H * 0.16
	const radius = 26.0

	f.Glow(mx, my, radius*5.2, Palette.Moon, 0.16)
	f.Poly(Palette.Moon, 1, discPts(mx, my, radius, 22)...)
	// Offset shade disc carves the crescent.
	f.Poly(Palette.MoonShade, 0.92, discPts(mx-radius*0.38, my-radius*0.16, radius*0.94, 22)...)
}

func discPts(cx, cy, r float64, segments int) []Vec2 {
	pts := make([]Vec2, segments)
	for i := range pts {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = Vec2{float32(cx + math.Cos(a)*r), float32(cy + math.Sin(a)*r)}
	}
	return pts
}

// composeStars draws whichever star layer is active, restricted to pixels
// the footprint pass left unmasked.
func (c *City) composeStars(f *Frame) {
	if c.sphere != nil {
		c.celBuf = c.sphere.Stars(c.celBuf[:0], c.Buildings, c.now)
		for _, s := range c.celBuf {
			c.drawStar(f, s.X, s.Y, s.Bright, s.Cross)
		}
		return
	}
	for i := range c.stars.Sky {
		s := &c.stars.Sky[i]
		if f.SkyVisible(s.X, s.Y) {
			c.drawStar(f, s.X, s.Y, s.Bright, s.IsCross)
		}
	}
	for i := range c.stars.Gap {
		s := &c.stars.Gap[i]
		if f.SkyVisible(s.X, s.Y) {
			c.drawStar(f, s.X, s.Y, s.Bright, s.IsCross)
		}
	}
}

func (c *City) drawStar(f *Frame, x, y, bright float64, cross bool) {
	size := 1.2 + bright*1.6
	f.Point(x, y, size, Palette.Star, float32(bright))
	if cross && bright > CrossGlowThresh {
		arm := 3.0 + bright*4.0
		a := float32((bright - CrossGlowThresh) / (1 - CrossGlowThresh) * 0.8)
		f.Line(x-arm, y, x+arm, y, 1, Palette.StarBright, a)
		f.Line(x, y-arm, x, y+arm, 1, Palette.StarBright, a)
		f.Glow(x, y, arm*2.4, Palette.StarBright, a*0.5)
	}
}

// composeMeteors draws active streaks: fading trail segments, then the head.
func (c *City) composeMeteors(f *Frame) {
	for i := range c.meteors.Pool {
		m := &c.meteors.Pool[i]
		if !m.Active {
			continue
		}
		for j := MeteorTrailLen - 1; j > 0; j-- {
			a := m.TrailA[j] * (1 - float64(j)/MeteorTrailLen)
			if a <= 0.02 {
				continue
			}
			w := 0.8 + 2.2*(1-float64(j)/MeteorTrailLen)
			f.Line(m.TrailX[j], m.TrailY[j], m.TrailX[j-1], m.TrailY[j-1],
				w, Palette.MeteorTrail, float32(a*0.8))
		}
		f.Glow(m.X, m.Y, 14, Palette.MeteorHead, float32(m.Life))
		f.Point(m.X, m.Y, 2.6, Palette.MeteorHead, float32(clampF(m.Life*1.2, 0, 1)))
	}
}
