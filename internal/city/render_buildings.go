package city

// composeFootprints draws every building body and writes its silhouette
// into the occlusion mask. The star pass depends on the mask being complete
// before it runs.
func (c *City) composeFootprints(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		roof := b.RoofY(c.H)

		f.Rect(b.X, roof, b.Width, b.Height, Palette.Building, 1)
		f.MaskSpan(b.X, b.Right(), roof)

		// Mechanical penthouse band.
		if b.RoofElev > 0 {
			px := b.X + b.Width*0.3
			pw := b.Width * 0.4
			f.Rect(px, roof-b.RoofElev, pw, b.RoofElev, Palette.BuildingHi, 1)
			f.MaskSpan(px, px+pw, roof-b.RoofElev)
		}

		// Spire.
		if b.TowerHeight > 0 {
			cx := b.X + b.Width*0.5
			f.Line(cx, roof, cx, roof-b.TowerHeight, 2, Palette.TowerGrey, 1)
			f.MaskSpan(cx-1, cx+1, roof-b.TowerHeight)
		}

		// Antenna masts, spread across the roof.
		for a := 0; a < b.AntennaCount; a++ {
			ax := b.X + b.Width*(float64(a)+1)/(float64(b.AntennaCount)+1)
			ah := 8.0 + float64((i+a*7)%3)*5.0
			f.Line(ax, roof, ax, roof-ah, 1, Palette.TowerGrey, 1)
		}
	}
}

// composeOutlines adds the faint architectural edge accents that separate
// adjacent towers of near-identical darkness.
func (c *City) composeOutlines(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		roof := b.RoofY(c.H)
		f.Line(b.X, roof, b.Right(), roof, 1, Palette.Outline, 0.6)
		f.Line(b.X, roof, b.X, c.H, 1, Palette.Outline, 0.35)
	}
}

// composeWindows paints the lit cells of every occupancy grid. This is the
// final pass, over every silhouette and feature.
func (c *City) composeWindows(f *Frame) {
	for i := range c.Buildings {
		b := &c.Buildings[i]
		rows := clamp(b.Floors, 0, MaxWindowRows)
		cols := clamp(b.PerFloor, 0, MaxWindowCols)
		if rows == 0 || cols == 0 {
			continue
		}

		pitch := b.Height / float64(rows)
		cellH := WindowCellH
		if cellH > pitch-1.5 {
			cellH = pitch - 1.5
		}
		if cellH < 1 {
			continue // too squat to show individual floors
		}
		span := float64(cols)*WindowCellW + float64(cols+1)*WindowGutter
		step := WindowCellW + WindowGutter
		x0 := b.X + (b.Width-span)*0.5 + WindowGutter

		col := Palette.WindowCool
		if b.Pattern == PatternResidential {
			col = Palette.WindowWarm
		}
		for fl := 0; fl < rows; fl++ {
			y := c.H - float64(fl+1)*pitch + (pitch-cellH)*0.5
			for w := 0; w < cols; w++ {
				if !b.Windows[fl][w] {
					continue
				}
				f.Rect(x0+float64(w)*step, y, WindowCellW, cellH, col, 0.9)
			}
		}
	}
}
