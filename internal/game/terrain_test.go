package game

import (
	"math"
	"testing"
)

func testTerrain(t *testing.T) *Terrain {
	t.Helper()
	return NewTerrain(TerrainWidth, TerrainHeight, TerrainScale, TerrainOctaves, TerrainSeed)
}

func TestTerrainDeterministic(t *testing.T) {
	a := testTerrain(t)
	b := testTerrain(t)
	for x := 0; x <= a.Width; x += 17 {
		for y := 0; y <= a.Height; y += 17 {
			if a.heights[x][y] != b.heights[x][y] {
				t.Fatalf("same seed produced different heights at (%d,%d)", x, y)
			}
		}
	}
}

func TestTerrainMinHeightClamp(t *testing.T) {
	tr := testTerrain(t)
	for x := 0; x <= tr.Width; x++ {
		for y := 0; y <= tr.Height; y++ {
			if tr.heights[x][y] < TerrainMinHeight {
				t.Fatalf("height at (%d,%d) = %f below clamp %v", x, y, tr.heights[x][y], TerrainMinHeight)
			}
		}
	}
}

func TestHeightAtClampsOutOfBounds(t *testing.T) {
	tr := testTerrain(t)
	inside := tr.HeightAt(tr.HalfExtentX(), 0)
	outside := tr.HeightAt(tr.HalfExtentX()+500, 0)
	if inside != outside {
		t.Fatalf("out-of-bounds query not clamped to edge: %f vs %f", inside, outside)
	}

	// Far corners must not panic and must return a clamped value.
	h := tr.HeightAt(-1e6, 1e6)
	if math.IsNaN(h) || h < TerrainMinHeight {
		t.Fatalf("corner query returned %f", h)
	}
}

func TestHeightAtInterpolates(t *testing.T) {
	tr := testTerrain(t)
	// A query halfway between two grid points must be bounded by them.
	x0, y0 := 10, 10
	wx0 := (float64(x0) - float64(tr.Width)/2) * tr.Scale
	wy0 := (float64(y0) - float64(tr.Height)/2) * tr.Scale
	h0 := tr.heights[x0][y0]
	h1 := tr.heights[x0+1][y0]
	mid := tr.HeightAt(wx0+tr.Scale/2, wy0)
	lo, hi := math.Min(h0, h1), math.Max(h0, h1)
	if mid < lo-1e-9 || mid > hi+1e-9 {
		t.Fatalf("interpolated height %f outside [%f, %f]", mid, lo, hi)
	}
}

func TestMeshDataShape(t *testing.T) {
	tr := NewTerrain(8, 8, 1, 2, 1)
	mesh := tr.MeshData()
	wantVerts := 8 * 8 * 6
	if len(mesh) != wantVerts*9 {
		t.Fatalf("mesh floats = %d, want %d", len(mesh), wantVerts*9)
	}
	// Normals must be roughly unit length.
	for v := 0; v < wantVerts; v += 97 {
		nx := float64(mesh[v*9+3])
		ny := float64(mesh[v*9+4])
		nz := float64(mesh[v*9+5])
		l := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if math.Abs(l-1) > 0.01 {
			t.Fatalf("vertex %d normal length = %f", v, l)
		}
	}
}

func TestBiomeColorBands(t *testing.T) {
	if biomeColor(WaterLevel-1) != Palette.Water {
		t.Fatalf("below water level should be water")
	}
	if biomeColor(SnowLine+1) != Palette.Snow {
		t.Fatalf("above snow line should be snow")
	}
	if biomeColor(3) == biomeColor(SnowLine+1) {
		t.Fatalf("midland elevation should not be snow")
	}
}
