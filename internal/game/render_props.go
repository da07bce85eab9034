package game

import "math"

// Animals and props are composed from colored boxes. Each box contributes
// 36 scene vertices (pos, normal, color) with yaw and pitch baked in on the
// CPU so everything batches into one draw.

var boxFaces = [6]struct {
	normal  [3]float64
	corners [4][3]float64
}{
	{[3]float64{1, 0, 0}, [4][3]float64{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}}},
	{[3]float64{-1, 0, 0}, [4][3]float64{{-1, 1, -1}, {-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}}},
	{[3]float64{0, 1, 0}, [4][3]float64{{1, 1, -1}, {-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}}},
	{[3]float64{0, -1, 0}, [4][3]float64{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	{[3]float64{0, 0, 1}, [4][3]float64{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float64{0, 0, -1}, [4][3]float64{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
}

// rotatePY applies pitch about the lateral axis then yaw about the up axis.
func rotatePY(x, y, z, yaw, pitch float64) (float64, float64, float64) {
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	x, z = x*cp+z*sp, -x*sp+z*cp
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	x, y = x*cy-y*sy, x*sy+y*cy
	return x, y, z
}

// appendBox emits one oriented box. origin is the anchor the whole figure
// rotates around, offset is the box center in local space.
func appendBox(buf []float32, origin, offset, half Vec3, yaw, pitch float64, col RGB) []float32 {
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255

	ox, oy, oz := rotatePY(offset.X, offset.Y, offset.Z, yaw, pitch)
	cx, cy, cz := origin.X+ox, origin.Y+oy, origin.Z+oz

	for _, f := range boxFaces {
		nx, ny, nz := rotatePY(f.normal[0], f.normal[1], f.normal[2], yaw, pitch)
		var vx, vy, vz [4]float64
		for i, c := range f.corners {
			lx, ly, lz := rotatePY(c[0]*half.X, c[1]*half.Y, c[2]*half.Z, yaw, pitch)
			vx[i], vy[i], vz[i] = cx+lx, cy+ly, cz+lz
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			buf = append(buf,
				float32(vx[i]), float32(vy[i]), float32(vz[i]),
				float32(nx), float32(ny), float32(nz),
				cr, cg, cb,
			)
		}
	}
	return buf
}

// BuildDecorMesh assembles the static prop mesh once per level.
func BuildDecorMesh(decor []Decor) []float32 {
	var buf []float32
	for i := range decor {
		d := &decor[i]
		s := d.Scale
		switch d.Kind {
		case DecorTree:
			buf = appendBox(buf, d.Pos, Vec3{Z: 1.6 * s}, Vec3{X: 0.28 * s, Y: 0.28 * s, Z: 1.6 * s}, d.Heading, 0, Palette.TreeTrunk)
			buf = appendBox(buf, d.Pos, Vec3{Z: 3.6 * s}, Vec3{X: 1.5 * s, Y: 1.5 * s, Z: 1.2 * s}, d.Heading, 0, Palette.TreeCrown)
			buf = appendBox(buf, d.Pos, Vec3{Z: 5.0 * s}, Vec3{X: 0.9 * s, Y: 0.9 * s, Z: 0.8 * s}, d.Heading, 0, Palette.TreeCrown)
		case DecorRock:
			buf = appendBox(buf, d.Pos, Vec3{Z: 0.4 * s}, Vec3{X: 0.7 * s, Y: 0.55 * s, Z: 0.45 * s}, d.Heading, 0, Palette.Boulder)
		case DecorGrass:
			buf = appendBox(buf, d.Pos, Vec3{Z: 0.25 * s}, Vec3{X: 0.06 * s, Y: 0.06 * s, Z: 0.28 * s}, d.Heading, 0, Palette.GrassTuft)
		}
	}
	return buf
}

// AppendAnimalMesh emits one animal as a small boxy figure. Dead animals
// carry FallPitch so the whole figure lies on its side.
func AppendAnimalMesh(buf []float32, a *Animal) []float32 {
	yaw := a.Heading
	pitch := a.FallPitch
	o := a.Pos

	switch a.Species {
	case SpeciesDeer:
		body := Palette.DeerBody
		leg := Palette.DeerLeg
		buf = appendBox(buf, o, Vec3{Z: 1.05}, Vec3{X: 0.75, Y: 0.35, Z: 0.4}, yaw, pitch, body)
		buf = appendBox(buf, o, Vec3{Z: 0.82}, Vec3{X: 0.6, Y: 0.3, Z: 0.14}, yaw, pitch, Palette.DeerBelly)
		buf = appendBox(buf, o, Vec3{X: 0.85, Z: 1.55}, Vec3{X: 0.26, Y: 0.2, Z: 0.3}, yaw, pitch, body)
		for _, lx := range [2]float64{0.5, -0.5} {
			for _, ly := range [2]float64{0.24, -0.24} {
				buf = appendBox(buf, o, Vec3{X: lx, Y: ly, Z: 0.35}, Vec3{X: 0.08, Y: 0.08, Z: 0.35}, yaw, pitch, leg)
			}
		}
		buf = appendBox(buf, o, Vec3{X: 0.95, Y: 0.14, Z: 2.0}, Vec3{X: 0.05, Y: 0.05, Z: 0.24}, yaw, pitch, Palette.DeerAntler)
		buf = appendBox(buf, o, Vec3{X: 0.95, Y: -0.14, Z: 2.0}, Vec3{X: 0.05, Y: 0.05, Z: 0.24}, yaw, pitch, Palette.DeerAntler)

	case SpeciesRabbit:
		body := Palette.RabbitBody
		buf = appendBox(buf, o, Vec3{Z: 0.28}, Vec3{X: 0.3, Y: 0.18, Z: 0.2}, yaw, pitch, body)
		buf = appendBox(buf, o, Vec3{X: 0.32, Z: 0.5}, Vec3{X: 0.13, Y: 0.12, Z: 0.13}, yaw, pitch, body)
		buf = appendBox(buf, o, Vec3{X: 0.36, Y: 0.07, Z: 0.74}, Vec3{X: 0.035, Y: 0.03, Z: 0.13}, yaw, pitch, Palette.RabbitEar)
		buf = appendBox(buf, o, Vec3{X: 0.36, Y: -0.07, Z: 0.74}, Vec3{X: 0.035, Y: 0.03, Z: 0.13}, yaw, pitch, Palette.RabbitEar)
	}
	return buf
}

// AppendTrackMesh emits flat dark patches along an animal's trail. Tracks
// shrink with age instead of fading, the scene pass has no alpha.
func AppendTrackMesh(buf []float32, tracks []Track) []float32 {
	for i := range tracks {
		t := &tracks[i]
		age := clampF(t.Age/TrackFadeTime, 0, 1)
		size := 0.16 * (1 - age*0.7)
		if size <= 0.02 {
			continue
		}
		pos := Vec3{X: t.X, Y: t.Y, Z: t.Z + 0.02}
		buf = appendBox(buf, pos, Vec3{}, Vec3{X: size * 1.5, Y: size, Z: 0.012}, t.Heading, 0, Palette.Track)
	}
	return buf
}

// BuildDynamicMesh rebuilds the per-frame mesh: every animal plus trails.
func BuildDynamicMesh(buf []float32, animals []Animal) []float32 {
	buf = buf[:0]
	for i := range animals {
		a := &animals[i]
		buf = AppendTrackMesh(buf, a.Tracks)
		buf = AppendAnimalMesh(buf, a)
	}
	return buf
}
