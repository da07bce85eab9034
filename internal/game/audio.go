package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundGunshot SoundKind = iota
	SoundDryFire
	SoundReload
	SoundHit
	SoundKill
	SoundFootstep
	SoundMenuSelect
	SoundThunder
	SoundGameOver
	SoundEat
	SoundDrink
)

// AudioSystem manages procedural sound effects and the ambient rain loop.
type AudioSystem struct {
	ctx        *oto.Context
	ready      chan struct{}
	rainPlayer oto.Player
}

var globalAudio *AudioSystem

var sfxVolume float64 = 0.58
var rainVolume float64 = 0.16

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

func SetSFXVolume(vol float64) {
	sfxVolume = clampF(vol, 0, 1)
}

// PlaySound plays a procedurally generated sound effect.
func PlaySound(kind SoundKind) {
	PlaySoundWithGain(kind, 1.0)
}

func PlaySoundWithGain(kind SoundKind, gain float64) {
	if globalAudio == nil || gain <= 0 {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartRainLoop begins the ambient rain bed, replacing any running loop.
func StartRainLoop() {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	StopRainLoop()
	player := globalAudio.ctx.NewPlayer(&rainReader{seed: uint64(time.Now().UnixNano() | 1)})
	player.SetVolume(rainVolume)
	globalAudio.rainPlayer = player
	player.Play()
}

func StopRainLoop() {
	if globalAudio == nil || globalAudio.rainPlayer == nil {
		return
	}
	globalAudio.rainPlayer.Close()
	globalAudio.rainPlayer = nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// rainReader streams filtered noise forever, so the rain bed never loops
// audibly.
type rainReader struct {
	seed uint64
	lp   float64
}

func (r *rainReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	for i := 0; i < samples; i++ {
		n := lcg(&r.seed)
		// One-pole lowpass turns white noise into a rain hiss.
		r.lp += (n - r.lp) * 0.18
		putStereoF32(p, i, softSat(r.lp*0.9))
	}
	return samples * 8, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// ---- Sound effects -------------------------------------------------------

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundGunshot:
		return genGunshot()
	case SoundDryFire:
		return genDryFire()
	case SoundReload:
		return genReload()
	case SoundHit:
		return genHit()
	case SoundKill:
		return genKill()
	case SoundFootstep:
		return genFootstep()
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundThunder:
		return genThunder()
	case SoundGameOver:
		return genGameOver()
	case SoundEat:
		return genEat()
	case SoundDrink:
		return genDrink()
	}
	return nil
}

func genGunshot() []byte {
	n := int(0.13 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		// Sharp transient (first 15ms).
		crack := 0.0
		if p < 0.014 {
			crack = lcg(&seed) * (1 - p/0.014) * 0.9
		}
		// Pitched sub drop: 200 to 35 Hz.
		thumpFreq := 200 * math.Pow(0.04, p*4)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*20) * 0.65
		// Noise body with decay.
		body := lcg(&seed) * math.Pow(1-p, 5) * 0.3
		// High-frequency ring.
		ring := math.Sin(2*math.Pi*3400*t) * math.Exp(-p*35) * 0.09
		s := crack + thump + body + ring
		putStereoF32(buf, i, softSat(s*0.85))
	}
	return buf
}

func genDryFire() []byte {
	n := SampleRate * 45 / 1000
	buf := makeBuf(n)
	seed := uint64(31)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		click := lcg(&seed) * math.Exp(-p*60) * 0.5
		tick := math.Sin(2*math.Pi*2600*float64(i)/SampleRate) * math.Exp(-p*45) * 0.22
		putStereoF32(buf, i, softSat(click+tick))
	}
	return buf
}

// genReload is two mechanical clacks: magazine out, magazine in.
func genReload() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(991)
	clacks := [2]float64{0.05, 0.36}
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		s := 0.0
		for _, onset := range clacks {
			if t < onset {
				continue
			}
			lt := t - onset
			s += lcg(&seed) * math.Exp(-lt*55) * 0.4
			s += math.Sin(2*math.Pi*900*lt) * math.Exp(-lt*40) * 0.25
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func genHit() []byte {
	n := SampleRate * 90 / 1000
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thud := math.Sin(2*math.Pi*(170-90*p)*t) * math.Exp(-p*14) * 0.55
		smack := lcg(&seed) * math.Exp(-p*30) * 0.3
		putStereoF32(buf, i, softSat(thud+smack))
	}
	return buf
}

// genKill is a short two-note confirm chime.
func genKill() []byte {
	n := int(0.3 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		s := 0.0
		if p < 0.5 {
			env := adsr(p*2, 0.01, 0.4, 0.2, 0.3)
			s += fm(t, 660, 2.0, 1.2) * env * 0.3
		}
		if p >= 0.3 {
			np := (p - 0.3) / 0.7
			env := adsr(np, 0.01, 0.35, 0.25, 0.35)
			s += fm(t, 990, 2.0, 1.0) * env * 0.3
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func genFootstep() []byte {
	n := SampleRate * 60 / 1000
	buf := makeBuf(n)
	seed := uint64(time.Now().UnixNano() | 1)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		crunch := lcg(&seed) * math.Exp(-p*18) * 0.26
		thud := math.Sin(2*math.Pi*95*float64(i)/SampleRate) * math.Exp(-p*25) * 0.2
		putStereoF32(buf, i, softSat(crunch+thud))
	}
	return buf
}

func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genThunder is a long low rumble with a couple of secondary cracks.
func genThunder() []byte {
	n := int(2.2 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(133711)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		noise := lcg(&seed)
		lp += (noise - lp) * 0.04
		rumble := lp * math.Exp(-p*2.2) * 2.4
		crack := 0.0
		if t > 0.5 && t < 0.55 {
			crack = lcg(&seed) * 0.4
		}
		sub := math.Sin(2*math.Pi*(42-14*p)*t) * math.Exp(-p*3) * 0.3
		putStereoF32(buf, i, softSat(rumble+crack+sub))
	}
	return buf
}

func genGameOver() []byte {
	dur := 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025) // slight pitch drop
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1 // sub
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func genEat() []byte {
	n := SampleRate * 140 / 1000
	buf := makeBuf(n)
	seed := uint64(808)
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		chew := lcg(&seed) * math.Exp(-p*10) * 0.2 * (1 + math.Sin(p*math.Pi*6)*0.5)
		putStereoF32(buf, i, softSat(chew))
	}
	return buf
}

func genDrink() []byte {
	n := SampleRate * 200 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.1, 0.3, 0.4, 0.3)
		glug := fm(t, 220+120*math.Sin(p*math.Pi*3), 0.5, 1.5) * env * 0.25
		putStereoF32(buf, i, softSat(glug))
	}
	return buf
}
