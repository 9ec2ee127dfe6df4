package city

// Vec2 is a screen-space vertex.
type Vec2 struct {
	X, Y float32
}

type CmdKind uint8

const (
	CmdPoly  CmdKind = iota // filled convex polygon, fan order
	CmdLine                 // one segment, Size = line width
	CmdPoint                // round point, Size = diameter
	CmdGlow                 // additive radial glow point, Size = diameter
)

// DrawCmd is one immediate primitive. Vertices live in the owning Frame's
// arena; command order is the paint order and is load-bearing.
type DrawCmd struct {
	Kind  CmdKind
	Start int // range into Frame.Verts
	Count int
	Size  float32
	Col   RGB
	Alpha float32
}

// Frame accumulates one frame's draw list plus the building occlusion mask.
// Both are recycled between frames; no allocation in the steady state.
type Frame struct {
	Cmds  []DrawCmd
	Verts []Vec2

	W, H float64
	mask []float64 // per-column roofline y; H where no building covers
}

// Reset clears the draw list and the occlusion mask for a new frame.
func (f *Frame) Reset(w, h float64) {
	f.Cmds = f.Cmds[:0]
	f.Verts = f.Verts[:0]
	f.W, f.H = w, h
	cols := int(w)
	if cols < 1 {
		cols = 1
	}
	if cap(f.mask) < cols {
		f.mask = make([]float64, cols)
	}
	f.mask = f.mask[:cols]
	for i := range f.mask {
		f.mask[i] = h
	}
}

// Pts returns the vertex slice of a command.
func (f *Frame) Pts(c DrawCmd) []Vec2 {
	return f.Verts[c.Start : c.Start+c.Count]
}

func (f *Frame) push(kind CmdKind, size float32, col RGB, alpha float32, pts ...Vec2) {
	start := len(f.Verts)
	f.Verts = append(f.Verts, pts...)
	f.Cmds = append(f.Cmds, DrawCmd{
		Kind: kind, Start: start, Count: len(pts),
		Size: size, Col: col, Alpha: alpha,
	})
}

// Poly emits a filled convex polygon in fan order.
func (f *Frame) Poly(col RGB, alpha float32, pts ...Vec2) {
	if len(pts) < 3 {
		return
	}
	f.push(CmdPoly, 0, col, alpha, pts...)
}

// Rect emits an axis-aligned filled rectangle.
func (f *Frame) Rect(x, y, w, h float64, col RGB, alpha float32) {
	f.Poly(col, alpha,
		Vec2{float32(x), float32(y)},
		Vec2{float32(x + w), float32(y)},
		Vec2{float32(x + w), float32(y + h)},
		Vec2{float32(x), float32(y + h)},
	)
}

// Line emits one segment with the given width.
func (f *Frame) Line(x1, y1, x2, y2, width float64, col RGB, alpha float32) {
	f.push(CmdLine, float32(width), col, alpha,
		Vec2{float32(x1), float32(y1)},
		Vec2{float32(x2), float32(y2)},
	)
}

// Point emits one round point with the given diameter.
func (f *Frame) Point(x, y, size float64, col RGB, alpha float32) {
	f.push(CmdPoint, float32(size), col, alpha, Vec2{float32(x), float32(y)})
}

// Glow emits an additive radial glow sprite.
func (f *Frame) Glow(x, y, size float64, col RGB, alpha float32) {
	f.push(CmdGlow, float32(size), col, alpha, Vec2{float32(x), float32(y)})
}

// MaskSpan records an opaque span: columns x0..x1 are covered from topY down.
func (f *Frame) MaskSpan(x0, x1, topY float64) {
	if len(f.mask) == 0 {
		return
	}
	lo := clamp(int(x0), 0, len(f.mask)-1)
	hi := clamp(int(x1), 0, len(f.mask)-1)
	for x := lo; x <= hi; x++ {
		if topY < f.mask[x] {
			f.mask[x] = topY
		}
	}
}

// SkyVisible reports whether a sky pixel survives the occlusion mask.
func (f *Frame) SkyVisible(x, y float64) bool {
	if len(f.mask) == 0 {
		return true
	}
	xi := clamp(int(x), 0, len(f.mask)-1)
	return y < f.mask[xi]
}

// Compose builds the full frame in the fixed pass order. Later passes rely
// on earlier ones: the footprint pass must complete before any star is
// tested against the mask, and windows paint over everything.
func (c *City) Compose(f *Frame) {
	f.Reset(c.W, c.H)

	c.composeSkyGradient(f)
	c.composeMoon(f)
	c.composeFootprints(f) // fills the occlusion mask
	c.composeStars(f)
	c.composeOutlines(f)
	c.composeMeteors(f)

	// Rooftop features, one pass per category.
	c.composeBeacons(f)
	c.composeCommTowers(f)
	c.composeWaterTowers(f)
	c.composeAccessories(f)

	c.composeWindows(f)
}
