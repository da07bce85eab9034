package game

import "math"

// DayCycle maps elapsed play time to a virtual clock and derives the sun
// direction, light levels and sky/fog colors from it. One full day lasts
// DayLengthSeconds of play.
type DayCycle struct {
	Hour float64 // 0..24 virtual hour
}

func NewDayCycle() *DayCycle {
	return &DayCycle{Hour: StartHour}
}

func (d *DayCycle) Reset() {
	d.Hour = StartHour
}

func (d *DayCycle) Update(dt float64) {
	d.Hour += dt * 24 / DayLengthSeconds
	for d.Hour >= 24 {
		d.Hour -= 24
	}
}

// SunElevation is 0 at dawn/dusk, 1 at noon, negative at night.
func (d *DayCycle) SunElevation() float64 {
	span := float64(DuskHour - DawnHour)
	return math.Sin((d.Hour - DawnHour) / span * math.Pi)
}

// SunDir is the direction light travels, pointing down when the sun is up.
func (d *DayCycle) SunDir() Vec3 {
	elev := d.SunElevation()
	if elev < 0.05 {
		elev = 0.05
	}
	// Azimuth sweeps east to west over the day.
	az := (d.Hour - DawnHour) / float64(DuskHour-DawnHour) * math.Pi
	h := math.Cos(elev * math.Pi / 2)
	v := Vec3{
		X: -math.Cos(az) * h,
		Y: -0.3 * h,
		Z: -math.Sin(elev * math.Pi / 2),
	}
	return v.Normalize()
}

// Ambient is the base light level, clamped so nights stay navigable.
func (d *DayCycle) Ambient() float64 {
	e := d.SunElevation()
	return clampF(0.18+0.82*e, 0.18, 1.0)
}

var (
	skyNight = RGB{10, 14, 30}
	skyDawn  = RGB{235, 160, 110}
	skyDay   = RGB{120, 175, 235}
	skyDusk  = RGB{200, 110, 90}
)

// SkyColor blends keyframe colors across dawn, day, dusk and night.
func (d *DayCycle) SkyColor() RGB {
	h := d.Hour
	switch {
	case h < DawnHour-1 || h >= DuskHour+1:
		return skyNight
	case h < DawnHour+1:
		return lerpRGB(skyNight, skyDawn, (h-(DawnHour-1))/2)
	case h < NoonHour:
		return lerpRGB(skyDawn, skyDay, (h-(DawnHour+1))/float64(NoonHour-DawnHour-1))
	case h < DuskHour-1:
		return lerpRGB(skyDay, skyDusk, (h-NoonHour)/float64(DuskHour-1-NoonHour))
	default:
		return lerpRGB(skyDusk, skyNight, (h-(DuskHour-1))/2)
	}
}

// FogColor tracks the sky so the horizon blends out cleanly.
func (d *DayCycle) FogColor() RGB {
	return d.SkyColor()
}

// ClockString formats the virtual hour as HH:MM.
func (d *DayCycle) ClockString() string {
	hh := int(d.Hour)
	mm := int((d.Hour - float64(hh)) * 60)
	return twoDigits(hh) + ":" + twoDigits(mm)
}

func twoDigits(v int) string {
	return string([]byte{byte('0' + v/10%10), byte('0' + v%10)})
}
