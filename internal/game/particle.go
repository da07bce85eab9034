package game

type ParticleKind uint8

const (
	ParticleRain ParticleKind = iota
	ParticleSnow
	ParticleBlood
	ParticleImpact
	ParticleMuzzle
)

// Particle is a world-space point sprite. Velocity is applied every frame;
// only precipitation keeps its velocity, the rest decelerate and fall.
type Particle struct {
	Pos Vec3
	Vel Vec3

	Size    float64
	Life    float64
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	return &ParticleSystem{
		Max: maxParticles,
		P:   make([]Particle, 0, maxParticles),
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Update advances all particles, killing them past their life or below the
// terrain, and compacts the slice.
func (ps *ParticleSystem) Update(dt float64, terrain *Terrain) {
	alive := ps.P[:0]
	for i := range ps.P {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}

		switch p.Kind {
		case ParticleRain, ParticleSnow:
			// Constant fall, wind already baked into Vel.
		case ParticleBlood, ParticleImpact:
			p.Vel.Z -= 22 * dt
			p.Vel.X *= 1 - 1.6*dt
			p.Vel.Y *= 1 - 1.6*dt
		case ParticleMuzzle:
			p.Vel = p.Vel.Scale(1 - 6*dt)
		}

		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		if p.Kind != ParticleMuzzle && p.Pos.Z <= terrain.HeightAt(p.Pos.X, p.Pos.Y) {
			continue
		}
		alive = append(alive, *p)
	}
	ps.P = alive
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// RenderData packs live particles into the point sprite vertex format:
// [x, y, z, size, r, g, b, a] * N.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for i := range ps.P {
		p := &ps.P[i]
		t := p.Life / p.MaxLife
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}

		a := 1.0 - t
		size := p.Size
		switch p.Kind {
		case ParticleRain:
			a = 0.65
			size *= 0.8
		case ParticleSnow:
			a = 0.95
		case ParticleBlood:
			a = 1.0 - t*0.4
		case ParticleImpact:
			a = 1.0 - t
		case ParticleMuzzle:
			a = (1.0 - t) * 1.2
			size *= 1.0 + t*1.5
		}
		if a <= 0 {
			continue
		}
		if a > 1 {
			a = 1
		}

		buf = append(buf,
			float32(p.Pos.X), float32(p.Pos.Y), float32(p.Pos.Z), float32(size),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255, float32(a),
		)
	}
	return buf
}
