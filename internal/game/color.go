package game

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

// Palette holds the base colours for terrain biomes, props, and animals.
var Palette = struct {
	Water      RGB
	Grass      RGB
	Dirt       RGB
	Forest     RGB
	Rock       RGB
	Snow       RGB
	TreeTrunk  RGB
	TreeCrown  RGB
	Boulder    RGB
	GrassTuft  RGB
	DeerBody   RGB
	DeerBelly  RGB
	DeerLeg    RGB
	DeerAntler RGB
	RabbitBody RGB
	RabbitEar  RGB
	Track      RGB
	Blood      RGB
	MuzzleHot  RGB
	RainDrop   RGB
	SnowFlake  RGB
}{
	Water:      RGB{R: 51, G: 102, B: 204},
	Grass:      RGB{R: 26, G: 128, B: 26},
	Dirt:       RGB{R: 102, G: 71, B: 38},
	Forest:     RGB{R: 64, G: 51, B: 26},
	Rock:       RGB{R: 51, G: 38, B: 26},
	Snow:       RGB{R: 242, G: 242, B: 242},
	TreeTrunk:  RGB{R: 92, G: 62, B: 32},
	TreeCrown:  RGB{R: 40, G: 96, B: 36},
	Boulder:    RGB{R: 97, G: 94, B: 89},
	GrassTuft:  RGB{R: 70, G: 130, B: 48},
	DeerBody:   RGB{R: 148, G: 97, B: 51},
	DeerBelly:  RGB{R: 209, G: 189, B: 158},
	DeerLeg:    RGB{R: 107, G: 66, B: 36},
	DeerAntler: RGB{R: 230, G: 224, B: 209},
	RabbitBody: RGB{R: 189, G: 168, B: 148},
	RabbitEar:  RGB{R: 230, G: 219, B: 209},
	Track:      RGB{R: 64, G: 51, B: 38},
	Blood:      RGB{R: 150, G: 24, B: 18},
	MuzzleHot:  RGB{R: 255, G: 214, B: 120},
	RainDrop:   RGB{R: 175, G: 195, B: 220},
	SnowFlake:  RGB{R: 235, G: 242, B: 250},
}
