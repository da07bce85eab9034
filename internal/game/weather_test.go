package game

import "testing"

func TestWeatherEventuallyChanges(t *testing.T) {
	bus := NewEventBus()
	changed := 0
	bus.Subscribe(EventWeatherChanged, func(Event) { changed++ })

	ws := NewWeatherSystem(123, bus)
	ps := NewParticleSystem(64)
	tr := NewTerrain(10, 10, 1, 2, 1)

	dt := 1.0 / 30
	for sim := 0.0; sim < WeatherHoldMax*3; sim += dt {
		ws.Update(dt, ps, Vec3{})
		ps.Update(dt, tr)
	}
	if changed == 0 {
		t.Fatalf("weather never changed over %v seconds", WeatherHoldMax*3)
	}
}

func TestWeatherNeverRepeatsItself(t *testing.T) {
	ws := NewWeatherSystem(9, nil)
	for i := 0; i < 100; i++ {
		next := ws.pickNext()
		if next == ws.Current {
			t.Fatalf("pickNext returned the current condition")
		}
		ws.Current = next
	}
}

func TestTransitionIntensityRamps(t *testing.T) {
	ws := NewWeatherSystem(5, nil)
	ws.Current = WeatherRain
	ws.transition = WeatherTransitionTime
	if ws.Intensity() != 0 {
		t.Fatalf("intensity at transition start = %f, want 0", ws.Intensity())
	}
	ws.transition = WeatherTransitionTime / 2
	if got := ws.Intensity(); got < 0.49 || got > 0.51 {
		t.Fatalf("intensity mid-transition = %f, want 0.5", got)
	}
	ws.transition = 0
	if ws.Intensity() != 1 {
		t.Fatalf("settled intensity = %f, want 1", ws.Intensity())
	}
}

func TestFogDensityByCondition(t *testing.T) {
	ws := NewWeatherSystem(5, nil)
	ws.Current = WeatherClear
	ws.transition = 0
	clear := ws.FogDensity()

	ws.Current = WeatherFog
	foggy := ws.FogDensity()
	if foggy <= clear {
		t.Fatalf("fog density in fog (%f) not above clear (%f)", foggy, clear)
	}
}

func TestPrecipitationSpawnsParticles(t *testing.T) {
	ws := NewWeatherSystem(77, nil)
	ws.Current = WeatherRain
	ws.transition = 0
	ws.holdLeft = 1e9

	ps := NewParticleSystem(2000)
	ws.Update(0.5, ps, Vec3{})
	if len(ps.P) == 0 {
		t.Fatalf("established rain spawned no particles")
	}
	for i := range ps.P {
		if ps.P[i].Kind != ParticleRain {
			t.Fatalf("unexpected particle kind %v during rain", ps.P[i].Kind)
		}
	}
}

func TestResetReturnsToClear(t *testing.T) {
	ws := NewWeatherSystem(12, NewEventBus())
	ws.Current = WeatherRain
	ws.transition = WeatherTransitionTime / 2
	ws.Flash = 1
	ws.Reset()
	if ws.Current != WeatherClear {
		t.Fatalf("condition after reset = %v, want clear", ws.Current)
	}
	if ws.Intensity() != 1 || ws.Flash != 0 {
		t.Fatalf("reset left transition (%f) or flash (%f) behind", ws.Intensity(), ws.Flash)
	}
}

func TestDayCycleClock(t *testing.T) {
	d := NewDayCycle()
	if d.Hour != StartHour {
		t.Fatalf("start hour = %f, want %v", d.Hour, StartHour)
	}

	// A full day of updates wraps back to the start hour.
	dt := 1.0
	for i := 0; i < int(DayLengthSeconds); i++ {
		d.Update(dt)
	}
	if diff := d.Hour - StartHour; diff > 0.01 || diff < -0.01 {
		t.Fatalf("hour after a full day = %f, want %v", d.Hour, StartHour)
	}

	d.Hour = 9.5
	if got := d.ClockString(); got != "09:30" {
		t.Fatalf("clock = %q, want 09:30", got)
	}
}

func TestSunElevation(t *testing.T) {
	d := NewDayCycle()
	d.Hour = NoonHour
	if e := d.SunElevation(); e < 0.99 {
		t.Fatalf("noon elevation = %f, want 1", e)
	}
	d.Hour = DawnHour
	if e := d.SunElevation(); e > 0.01 || e < -0.01 {
		t.Fatalf("dawn elevation = %f, want 0", e)
	}
	d.Hour = 0
	if e := d.SunElevation(); e >= 0 {
		t.Fatalf("midnight elevation = %f, want negative", e)
	}
	if d.Ambient() < 0.18-1e-9 {
		t.Fatalf("night ambient below floor: %f", d.Ambient())
	}
}

func TestSkyDarkAtNightBrightAtNoon(t *testing.T) {
	d := NewDayCycle()
	d.Hour = 2
	night := d.SkyColor()
	d.Hour = NoonHour + 1
	day := d.SkyColor()
	if int(night.R)+int(night.G)+int(night.B) >= int(day.R)+int(day.G)+int(day.B) {
		t.Fatalf("night sky %v not darker than day sky %v", night, day)
	}
}
