package city

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	SkyTop      RGB
	SkyHorizon  RGB
	Building    RGB
	BuildingHi  RGB
	Outline     RGB
	WindowWarm  RGB
	WindowCool  RGB
	Star        RGB
	StarBright  RGB
	MeteorHead  RGB
	MeteorTrail RGB
	Moon        RGB
	MoonShade   RGB
	BeaconRed   RGB
	BeamWhite   RGB
	CautionAmbr RGB
	CautionRed  RGB
	TowerGrey   RGB
	TankGrey    RGB
	CraneYellow RGB
	FanBlade    RGB
}{
	SkyTop:      RGB{R: 4, G: 6, B: 18},
	SkyHorizon:  RGB{R: 18, G: 20, B: 44},
	Building:    RGB{R: 14, G: 15, B: 24},
	BuildingHi:  RGB{R: 24, G: 26, B: 38},
	Outline:     RGB{R: 40, G: 44, B: 62},
	WindowWarm:  RGB{R: 255, G: 214, B: 120},
	WindowCool:  RGB{R: 170, G: 205, B: 245},
	Star:        RGB{R: 222, G: 228, B: 245},
	StarBright:  RGB{R: 250, G: 250, B: 255},
	MeteorHead:  RGB{R: 255, G: 245, B: 214},
	MeteorTrail: RGB{R: 170, G: 190, B: 235},
	Moon:        RGB{R: 236, G: 236, B: 224},
	MoonShade:   RGB{R: 8, G: 10, B: 26},
	BeaconRed:   RGB{R: 255, G: 56, B: 48},
	BeamWhite:   RGB{R: 235, G: 240, B: 255},
	CautionAmbr: RGB{R: 255, G: 176, B: 48},
	CautionRed:  RGB{R: 235, G: 64, B: 40},
	TowerGrey:   RGB{R: 58, G: 62, B: 76},
	TankGrey:    RGB{R: 46, G: 48, B: 60},
	CraneYellow: RGB{R: 212, G: 168, B: 54},
	FanBlade:    RGB{R: 96, G: 102, B: 116},
}
