package game

import opensimplex "github.com/ojrac/opensimplex-go"

// fbm sums octaves of OpenSimplex noise with amplitude halving and frequency
// doubling per octave. Output stays roughly in [-2, 2] for 4 octaves.
type fbm struct {
	noise   opensimplex.Noise
	octaves int
}

func newFBM(seed int64, octaves int) fbm {
	if octaves < 1 {
		octaves = 1
	}
	return fbm{noise: opensimplex.New(seed), octaves: octaves}
}

func (f fbm) At(x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	value := 0.0
	for i := 0; i < f.octaves; i++ {
		value += f.noise.Eval2(x*frequency, y*frequency) * amplitude
		amplitude *= 0.5
		frequency *= 2.0
	}
	return value
}
