package game

import "math"

// Terrain is a procedurally generated height-field. Heights are generated
// once per session; queries interpolate bilinearly between grid cells.
type Terrain struct {
	Width   int
	Height  int
	Scale   float64
	Octaves int

	heights [][]float64 // (Width+1) x (Height+1)
	seed    uint64
}

func NewTerrain(width, height int, scale float64, octaves int, seed int64) *Terrain {
	t := &Terrain{
		Width:   width,
		Height:  height,
		Scale:   scale,
		Octaves: octaves,
		seed:    uint64(seed),
	}
	t.generate(seed)
	return t
}

// generate fills the height map: multi-octave noise shaped by a
// distance-from-center weight (hills in the middle, flatter rim), a
// meandering river valley cut, and an erosion smoothing pass.
func (t *Terrain) generate(seed int64) {
	noise := newFBM(seed, t.Octaves)

	t.heights = make([][]float64, t.Width+1)
	for x := range t.heights {
		t.heights[x] = make([]float64, t.Height+1)
	}

	for x := 0; x <= t.Width; x++ {
		nx := float64(x)/float64(t.Width) - 0.5
		for y := 0; y <= t.Height; y++ {
			ny := float64(y)/float64(t.Height) - 0.5

			distance := math.Sqrt(nx*nx + ny*ny)
			centerWeight := math.Max(0, 1-distance*1.3)

			value := noise.At(nx, ny) * centerWeight
			h := value*TerrainHeightScale + distance*TerrainEdgeLift

			if d := riverDepthAt(nx, ny); d < 0 {
				h -= RiverDepth + math.Abs(d)*1.5
			}

			t.heights[x][y] = h
		}
	}

	t.erode()

	for x := 0; x <= t.Width; x++ {
		for y := 0; y <= t.Height; y++ {
			if t.heights[x][y] < TerrainMinHeight {
				t.heights[x][y] = TerrainMinHeight
			}
		}
	}
}

// riverDepthAt returns a negative value inside the river channel (deeper
// toward the centerline) and >= 0 outside. Coordinates are normalized to
// [-0.5, 0.5].
func riverDepthAt(nx, ny float64) float64 {
	riverY := nx*0.3 + 0.1*math.Sin(nx*10)
	return math.Abs(ny-riverY) - RiverHalfWidth
}

// erode lowers each point by a fraction of how far its neighbours tower over
// it, softening sharp ridges.
func (t *Terrain) erode() {
	src := t.heights
	dst := make([][]float64, t.Width+1)
	for x := range dst {
		dst[x] = make([]float64, t.Height+1)
		copy(dst[x], src[x])
	}

	for x := 0; x <= t.Width; x++ {
		for y := 0; y <= t.Height; y++ {
			h := src[x][y]
			erosion := 0.0
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					ix, iy := x+dx, y+dy
					if ix < 0 || iy < 0 || ix > t.Width || iy > t.Height {
						continue
					}
					erosion += math.Max(0, src[ix][iy]-h) * 0.1
				}
			}
			dst[x][y] = h - erosion*0.05
		}
	}
	t.heights = dst
}

// HeightAt returns the interpolated terrain height at world coordinates.
// Queries outside the grid clamp to the nearest edge.
func (t *Terrain) HeightAt(wx, wy float64) float64 {
	fx := wx/t.Scale + float64(t.Width)/2
	fy := wy/t.Scale + float64(t.Height)/2

	fx = clampF(fx, 0, float64(t.Width))
	fy = clampF(fy, 0, float64(t.Height))

	x1 := int(fx)
	y1 := int(fy)
	x2 := clamp(x1+1, 0, t.Width)
	y2 := clamp(y1+1, 0, t.Height)

	h11 := t.heights[x1][y1]
	h12 := t.heights[x1][y2]
	h21 := t.heights[x2][y1]
	h22 := t.heights[x2][y2]

	dx := fx - float64(x1)
	dy := fy - float64(y1)
	return (1-dx)*(1-dy)*h11 + dx*(1-dy)*h21 + (1-dx)*dy*h12 + dx*dy*h22
}

// HalfExtentX/Y are the world-space half sizes of the terrain.
func (t *Terrain) HalfExtentX() float64 { return float64(t.Width) / 2 * t.Scale }
func (t *Terrain) HalfExtentY() float64 { return float64(t.Height) / 2 * t.Scale }

// normalAt computes the surface normal from central height differences,
// falling back to one-sided differences at the grid edge.
func (t *Terrain) normalAt(x, y int) (nx, ny, nz float64) {
	h := t.heights
	switch {
	case x == 0:
		nx = (h[x][y] - h[x+1][y]) / t.Scale
	case x == t.Width:
		nx = (h[x-1][y] - h[x][y]) / t.Scale
	default:
		nx = (h[x-1][y] - h[x+1][y]) / (2 * t.Scale)
	}
	switch {
	case y == 0:
		ny = (h[x][y] - h[x][y+1]) / t.Scale
	case y == t.Height:
		ny = (h[x][y-1] - h[x][y]) / t.Scale
	default:
		ny = (h[x][y-1] - h[x][y+1]) / (2 * t.Scale)
	}
	nz = 1.0
	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l > 1e-6 {
		nx /= l
		ny /= l
		nz /= l
	}
	return
}

// biomeColor maps elevation to terrain colour bands.
func biomeColor(h float64) RGB {
	switch {
	case h < WaterLevel:
		return Palette.Water
	case h < 4.0:
		return Palette.Grass
	case h < 6.0:
		return Palette.Dirt
	case h < 8.0:
		return Palette.Forest
	case h < SnowLine:
		return Palette.Rock
	default:
		return Palette.Snow
	}
}

// MeshData emits the terrain as an interleaved triangle list for the GL
// terrain program: position(3) + normal(3) + color(3) per vertex.
func (t *Terrain) MeshData() []float32 {
	vert := func(buf []float32, x, y int) []float32 {
		wx := (float64(x) - float64(t.Width)/2) * t.Scale
		wy := (float64(y) - float64(t.Height)/2) * t.Scale
		wz := t.heights[x][y]
		nx, ny, nz := t.normalAt(x, y)
		// Small deterministic per-vertex jitter breaks up the flat bands.
		jit := int(hash2D(t.seed, x, y)%13) - 6
		col := biomeColor(wz).Add(jit, jit, jit)
		return append(buf,
			float32(wx), float32(wy), float32(wz),
			float32(nx), float32(ny), float32(nz),
			float32(col.R)/255.0, float32(col.G)/255.0, float32(col.B)/255.0,
		)
	}

	buf := make([]float32, 0, t.Width*t.Height*6*9)
	for x := 0; x < t.Width; x++ {
		for y := 0; y < t.Height; y++ {
			buf = vert(buf, x, y)
			buf = vert(buf, x+1, y)
			buf = vert(buf, x, y+1)

			buf = vert(buf, x+1, y)
			buf = vert(buf, x+1, y+1)
			buf = vert(buf, x, y+1)
		}
	}
	return buf
}
