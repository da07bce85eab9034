package game

import "fmt"

type MenuScreen uint8

const (
	ScreenMain MenuScreen = iota
	ScreenSettings
	ScreenPause
	ScreenGameOver
)

type hudMessage struct {
	text string
	ttl  float64
}

// Settings are the few tunables exposed in the settings menu.
type Settings struct {
	Sensitivity float64 // multiplier on MouseSensitivity
	SoundOn     bool
	InvertY     bool
}

// UI owns menu navigation state and the transient HUD message queue.
type UI struct {
	Screen   MenuScreen
	Cursor   int
	Settings Settings

	messages []hudMessage
}

func NewUI() *UI {
	return &UI{
		Settings: Settings{Sensitivity: 1.0, SoundOn: true},
	}
}

func (u *UI) PushMessage(text string) {
	u.messages = append(u.messages, hudMessage{text: text, ttl: 3.5})
	if len(u.messages) > 4 {
		u.messages = u.messages[len(u.messages)-4:]
	}
}

func (u *UI) ClearMessages() {
	u.messages = u.messages[:0]
}

func (u *UI) Update(dt float64) {
	alive := u.messages[:0]
	for _, m := range u.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			alive = append(alive, m)
		}
	}
	u.messages = alive
}

func (u *UI) itemCount() int {
	switch u.Screen {
	case ScreenMain:
		return 3
	case ScreenSettings:
		return 4
	case ScreenPause:
		return 3
	case ScreenGameOver:
		return 2
	}
	return 1
}

func (u *UI) MoveCursor(delta int) {
	n := u.itemCount()
	u.Cursor = (u.Cursor + delta + n) % n
}

func (u *UI) SetScreen(s MenuScreen) {
	u.Screen = s
	u.Cursor = 0
}

// AdjustSetting handles left/right on the settings screen.
func (u *UI) AdjustSetting(dir int) {
	if u.Screen != ScreenSettings {
		return
	}
	switch u.Cursor {
	case 0:
		u.Settings.Sensitivity = clampF(u.Settings.Sensitivity+float64(dir)*0.1, 0.2, 3.0)
	case 1:
		u.Settings.SoundOn = !u.Settings.SoundOn
	case 2:
		u.Settings.InvertY = !u.Settings.InvertY
	}
}

var (
	uiDim       = RGB{R: 150, G: 150, B: 150}
	uiBright    = RGB{R: 240, G: 235, B: 210}
	uiAccent    = RGB{R: 235, G: 180, B: 60}
	uiDanger    = RGB{R: 220, G: 60, B: 50}
	uiGood      = RGB{R: 90, G: 200, B: 90}
	staminaCol  = RGB{R: 80, G: 170, B: 220}
	hungerCol   = RGB{R: 200, G: 150, B: 60}
	thirstCol   = RGB{R: 70, G: 140, B: 230}
)

// RenderHUD draws the in-game overlay: crosshair, survival meters, ammo,
// score block, clock and transient messages.
func (u *UI) RenderHUD(r *Renderer, p *Player, s *Session, day *DayCycle, weather *WeatherSystem, fbW, fbH int) {
	cx := float32(fbW) / 2
	cy := float32(fbH) / 2

	// Crosshair: white when ready, amber while reloading, red when empty.
	chCol := uiBright
	if p.Weapon.Reloading {
		chCol = uiAccent
	} else if p.Weapon.Ammo == 0 {
		chCol = uiDanger
	}
	gap := float32(5)
	arm := float32(9)
	th := float32(2)
	r.DrawRect(cx-gap-arm, cy-th/2, arm, th, chCol, 0.9)
	r.DrawRect(cx+gap, cy-th/2, arm, th, chCol, 0.9)
	r.DrawRect(cx-th/2, cy-gap-arm, th, arm, chCol, 0.9)
	r.DrawRect(cx-th/2, cy+gap, th, arm, chCol, 0.9)

	// Survival meters, bottom left.
	bx := float32(16)
	by := float32(fbH - 110)
	bw := float32(170)
	bh := float32(12)
	r.DrawString("HP", int(bx), int(by)-2, 1.4, uiDim)
	r.DrawMeter(bx+44, by, bw, bh, p.HP.Fraction(), MeterColor(p.HP.Fraction()))
	by += 24
	r.DrawString("STA", int(bx), int(by)-2, 1.4, uiDim)
	r.DrawMeter(bx+44, by, bw, bh, p.Stamina/100, staminaCol)
	by += 24
	r.DrawString("FOOD", int(bx), int(by)-2, 1.4, uiDim)
	r.DrawMeter(bx+44, by, bw, bh, p.Hunger/100, hungerCol)
	by += 24
	r.DrawString("H2O", int(bx), int(by)-2, 1.4, uiDim)
	r.DrawMeter(bx+44, by, bw, bh, p.Thirst/100, thirstCol)

	// Ammo, bottom right.
	ammo := fmt.Sprintf("%d / %d", p.Weapon.Ammo, p.Weapon.Magazine)
	if p.Weapon.Reloading {
		ammo = "RELOADING"
	}
	r.DrawString(ammo, fbW-TextWidth(ammo, 2)-20, fbH-40, 2, uiBright)

	// Score block, top left.
	r.DrawString(fmt.Sprintf("SCORE %d", s.Score), 16, 14, 2, uiBright)
	killCol := uiDim
	if s.ObjectiveMet() {
		killCol = uiGood
	}
	r.DrawString(fmt.Sprintf("KILLS %d/%d", s.Kills, s.Objective), 16, 36, 1.6, killCol)
	r.DrawString(fmt.Sprintf("ACCURACY %d%%", int(s.Accuracy()*100+0.5)), 16, 54, 1.6, uiDim)

	// Clock and weather, top right.
	clock := day.ClockString()
	r.DrawString(clock, fbW-TextWidth(clock, 2)-20, 14, 2, uiBright)
	wtxt := weather.Current.String()
	r.DrawString(wtxt, fbW-TextWidth(wtxt, 1.6)-20, 38, 1.6, uiDim)

	// Messages just above center.
	my := int(cy) - 120
	for _, m := range u.messages {
		a := float32(1)
		if m.ttl < 0.6 {
			a = float32(m.ttl / 0.6)
		}
		r.DrawStringAlpha(m.text, fbW/2-TextWidth(m.text, 1.8)/2, my, 1.8, uiAccent, a)
		my += 22
	}
}

func (u *UI) drawTitle(r *Renderer, title string, fbW int) {
	r.DrawString(title, fbW/2-TextWidth(title, 4)/2, 120, 4, uiAccent)
}

func (u *UI) drawItems(r *Renderer, items []string, fbW, startY int) {
	for i, item := range items {
		col := uiDim
		prefix := "  "
		if i == u.Cursor {
			col = uiBright
			prefix = "> "
		}
		line := prefix + item
		r.DrawString(line, fbW/2-TextWidth(line, 2)/2, startY+i*34, 2, col)
	}
}

// RenderMenu draws whichever menu screen is active over a dimmed backdrop.
func (u *UI) RenderMenu(r *Renderer, s *Session, fbW, fbH int) {
	r.DrawRect(0, 0, float32(fbW), float32(fbH), RGB{R: 8, G: 10, B: 8}, 0.55)

	switch u.Screen {
	case ScreenMain:
		u.drawTitle(r, "OPEN SEASON", fbW)
		sub := "A HUNTING SIMULATOR"
		r.DrawString(sub, fbW/2-TextWidth(sub, 1.6)/2, 172, 1.6, uiDim)
		u.drawItems(r, []string{"START HUNT", "SETTINGS", "QUIT"}, fbW, 280)
		hint := "WASD MOVE / MOUSE AIM / SHIFT SPRINT / R RELOAD"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.4)/2, fbH-60, 1.4, uiDim)

	case ScreenSettings:
		u.drawTitle(r, "SETTINGS", fbW)
		onOff := func(b bool) string {
			if b {
				return "ON"
			}
			return "OFF"
		}
		items := []string{
			fmt.Sprintf("SENSITIVITY < %.1f >", u.Settings.Sensitivity),
			"SOUND " + onOff(u.Settings.SoundOn),
			"INVERT Y " + onOff(u.Settings.InvertY),
			"BACK",
		}
		u.drawItems(r, items, fbW, 280)

	case ScreenPause:
		u.drawTitle(r, "PAUSED", fbW)
		u.drawItems(r, []string{"RESUME", "RESTART", "QUIT TO MENU"}, fbW, 280)

	case ScreenGameOver:
		if s.Won {
			u.drawTitle(r, "HUNT COMPLETE", fbW)
		} else {
			u.drawTitle(r, "GAME OVER", fbW)
		}
		stats := []string{
			fmt.Sprintf("SCORE %d", s.Score),
			fmt.Sprintf("KILLS %d", s.Kills),
			fmt.Sprintf("SHOTS %d", s.ShotsFired),
			fmt.Sprintf("ACCURACY %d%%", int(s.Accuracy()*100+0.5)),
			"TIME " + s.ClockString(),
		}
		for i, line := range stats {
			r.DrawString(line, fbW/2-TextWidth(line, 1.8)/2, 200+i*24, 1.8, uiBright)
		}
		u.drawItems(r, []string{"PLAY AGAIN", "MAIN MENU"}, fbW, 360)
	}
}
