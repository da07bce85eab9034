package game

type WeatherKind uint8

const (
	WeatherClear WeatherKind = iota
	WeatherRain
	WeatherSnow
	WeatherFog
)

func (w WeatherKind) String() string {
	switch w {
	case WeatherClear:
		return "clear"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	case WeatherFog:
		return "fog"
	}
	return "unknown"
}

// WeatherSystem holds one condition at a time and cross-fades to a randomly
// picked next one when the hold timer runs out. Precipitation particles
// spawn in a disc above the player.
type WeatherSystem struct {
	rng *Rand

	Current WeatherKind
	Next    WeatherKind

	holdLeft   float64
	transition float64 // seconds left in the cross-fade, 0 when settled

	windX    float64
	spawnAcc float64
	gustAcc  float64

	Flash        float64 // lightning flash brightness, decays per frame
	lightningAcc float64

	bus *EventBus
}

func NewWeatherSystem(seed uint64, bus *EventBus) *WeatherSystem {
	ws := &WeatherSystem{rng: NewRand(seed ^ 0x57A7E12D), bus: bus}
	ws.Reset()
	return ws
}

func (ws *WeatherSystem) Reset() {
	ws.Current = WeatherClear
	ws.Next = WeatherClear
	ws.transition = 0
	ws.holdLeft = ws.rng.RangeF(WeatherHoldMin, WeatherHoldMax) * 0.5
	ws.windX = ws.rng.RangeF(-6, 6)
	ws.spawnAcc = 0
	ws.gustAcc = 0
	ws.Flash = 0
	ws.lightningAcc = 0
}

// pickNext never repeats the current condition.
func (ws *WeatherSystem) pickNext() WeatherKind {
	for {
		k := WeatherKind(ws.rng.Intn(4))
		if k != ws.Current {
			return k
		}
	}
}

// Intensity is how far established the current condition is, fading in
// during a transition.
func (ws *WeatherSystem) Intensity() float64 {
	if ws.transition <= 0 {
		return 1
	}
	return 1 - ws.transition/WeatherTransitionTime
}

// FogDensity feeds the terrain shader: heavier in fog, some in rain/snow.
func (ws *WeatherSystem) FogDensity() float64 {
	base := 0.0035
	var target float64
	switch ws.Current {
	case WeatherFog:
		target = 0.016
	case WeatherRain:
		target = 0.0075
	case WeatherSnow:
		target = 0.0065
	default:
		target = base
	}
	return lerpF(base, target, ws.Intensity())
}

func (ws *WeatherSystem) Update(dt float64, ps *ParticleSystem, playerPos Vec3) {
	if ws.transition > 0 {
		ws.transition -= dt
		if ws.transition <= 0 {
			ws.transition = 0
		}
	} else {
		ws.holdLeft -= dt
		if ws.holdLeft <= 0 {
			ws.Current = ws.pickNext()
			ws.transition = WeatherTransitionTime
			ws.holdLeft = ws.rng.RangeF(WeatherHoldMin, WeatherHoldMax)
			if ws.bus != nil {
				ws.bus.Publish(Event{Type: EventWeatherChanged, Weather: ws.Current})
			}
		}
	}

	ws.Flash *= 1 - 4*dt
	if ws.Flash < 0.01 {
		ws.Flash = 0
	}

	// Gusts slowly steer precipitation sideways.
	ws.gustAcc += dt
	if ws.gustAcc >= 0.6 {
		ws.windX = clampF(ws.windX+ws.rng.RangeF(-1.5, 1.5), -10, 10)
		ws.gustAcc = 0
	}

	// Lightning only during established rain.
	if ws.Current == WeatherRain && ws.transition == 0 {
		ws.lightningAcc += dt
		if ws.lightningAcc >= LightningMinGap {
			ws.lightningAcc = 0
			if ws.rng.Float64() < LightningChance {
				ws.Flash = 1
				if ws.bus != nil {
					ws.bus.Publish(Event{Type: EventLightning})
				}
			}
		}
	}

	ws.spawnPrecip(dt, ps, playerPos)
}

func (ws *WeatherSystem) spawnPrecip(dt float64, ps *ParticleSystem, playerPos Vec3) {
	var rate float64
	switch ws.Current {
	case WeatherRain:
		rate = RainSpawnRate
	case WeatherSnow:
		rate = SnowSpawnRate
	default:
		return
	}
	rate *= ws.Intensity()

	ws.spawnAcc += rate * dt
	count := int(ws.spawnAcc)
	if count <= 0 {
		return
	}
	ws.spawnAcc -= float64(count)

	for i := 0; i < count; i++ {
		x := playerPos.X + ws.rng.RangeF(-PrecipRadius, PrecipRadius)
		y := playerPos.Y + ws.rng.RangeF(-PrecipRadius, PrecipRadius)
		z := playerPos.Z + ws.rng.RangeF(14, 26)

		switch ws.Current {
		case WeatherRain:
			ps.Add(Particle{
				Pos:     Vec3{X: x, Y: y, Z: z},
				Vel:     Vec3{X: ws.windX * 0.4, Y: ws.rng.RangeF(-2, 2), Z: -(34 + ws.rng.RangeF(0, 14))},
				Size:    2.2 + ws.rng.RangeF(0, 1.2),
				MaxLife: 1.6,
				Col:     Palette.RainDrop,
				Kind:    ParticleRain,
			})
		case WeatherSnow:
			ps.Add(Particle{
				Pos:     Vec3{X: x, Y: y, Z: z},
				Vel:     Vec3{X: ws.windX + ws.rng.RangeF(-2, 2), Y: ws.rng.RangeF(-2, 2), Z: -(5 + ws.rng.RangeF(0, 3))},
				Size:    3.0 + ws.rng.RangeF(0, 2.0),
				MaxLife: 6.0,
				Col:     Palette.SnowFlake,
				Kind:    ParticleSnow,
			})
		}
	}
}
