package game

type DecorKind uint8

const (
	DecorTree DecorKind = iota
	DecorRock
	DecorGrass
)

type Decor struct {
	Kind    DecorKind
	Pos     Vec3
	Scale   float64
	Heading float64
}

// GenerateDecor scatters trees, rocks and grass tufts over the terrain.
// Trees cluster around seed points; everything stays between the waterline
// and the snow line so props never float in the river or on bare rock.
func GenerateDecor(t *Terrain, seed uint64) []Decor {
	r := NewRand(seed ^ 0xDEC0BA5E)
	var out []Decor

	hx, hy := t.HalfExtentX(), t.HalfExtentY()

	place := func(kind DecorKind, x, y, minScale, maxScale float64) bool {
		if x < -hx || x > hx || y < -hy || y > hy {
			return false
		}
		h := t.HeightAt(x, y)
		if h <= WaterLevel+0.3 || h >= SnowLine {
			return false
		}
		out = append(out, Decor{
			Kind:    kind,
			Pos:     Vec3{X: x, Y: y, Z: h},
			Scale:   r.RangeF(minScale, maxScale),
			Heading: r.Angle(),
		})
		return true
	}

	// Tree clusters.
	for c := 0; c < 22; c++ {
		cx := r.RangeF(-hx*0.9, hx*0.9)
		cy := r.RangeF(-hy*0.9, hy*0.9)
		n := r.Range(4, 11)
		for i := 0; i < n; i++ {
			place(DecorTree, cx+r.RangeF(-9, 9), cy+r.RangeF(-9, 9), 0.8, 1.5)
		}
	}

	// Lone rocks.
	for i := 0; i < 40; i++ {
		place(DecorRock, r.RangeF(-hx, hx), r.RangeF(-hy, hy), 0.5, 1.8)
	}

	// Grass tufts, dense but cheap.
	for i := 0; i < 350; i++ {
		place(DecorGrass, r.RangeF(-hx, hx), r.RangeF(-hy, hy), 0.6, 1.2)
	}

	return out
}
