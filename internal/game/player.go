package game

import "math"

// Player is the first-person hunter: position on the terrain, look angles,
// survival meters and the rifle with its in-flight projectiles.
type Player struct {
	Pos   Vec3 // feet position, Z follows the terrain
	Yaw   float64
	Pitch float64

	HP      Health
	Stamina float64
	Hunger  float64
	Thirst  float64

	Sprinting bool
	moving    bool
	walkPhase float64

	Weapon      Weapon
	Projectiles []Projectile
}

// PlayerInput is the per-frame movement intent decoded from the keyboard.
type PlayerInput struct {
	Forward float64 // -1..1
	Strafe  float64 // -1..1
	Sprint  bool
}

func NewPlayer() *Player {
	return &Player{
		HP:      NewHealth(100),
		Stamina: 100,
		Hunger:  100,
		Thirst:  100,
		Weapon:  *NewRifle(),
	}
}

func (p *Player) Reset() {
	*p = *NewPlayer()
}

// Look applies a mouse delta to the view angles. Pitch is clamped just shy
// of straight up/down so the view matrix never degenerates.
func (p *Player) Look(dx, dy float64) {
	p.Yaw -= dx * MouseSensitivity * math.Pi / 180
	p.Pitch -= dy * MouseSensitivity * math.Pi / 180
	limit := 89 * math.Pi / 180
	p.Pitch = clampF(p.Pitch, -limit, limit)
}

// Forward is the direction the player is looking, including pitch.
func (p *Player) Forward() Vec3 {
	cp := math.Cos(p.Pitch)
	return Vec3{
		X: math.Cos(p.Yaw) * cp,
		Y: math.Sin(p.Yaw) * cp,
		Z: math.Sin(p.Pitch),
	}
}

// EyePos is the camera origin, eye height above the feet.
func (p *Player) EyePos() Vec3 {
	e := p.Pos
	e.Z += PlayerEyeHeight
	return e
}

func (p *Player) Update(dt float64, in PlayerInput, terrain *Terrain) {
	speed := PlayerMoveSpeed
	p.Sprinting = in.Sprint && p.Stamina > 0 && (in.Forward != 0 || in.Strafe != 0)
	if p.Sprinting {
		speed *= PlayerSprintMult
		p.Stamina = clampF(p.Stamina-StaminaDrainRate*dt, 0, 100)
	} else {
		p.Stamina = clampF(p.Stamina+StaminaRecoverRate*dt, 0, 100)
	}

	// Movement is planar: forward follows yaw only, strafe is perpendicular.
	fx, fy := math.Cos(p.Yaw), math.Sin(p.Yaw)
	sx, sy := math.Cos(p.Yaw-math.Pi/2), math.Sin(p.Yaw-math.Pi/2)
	mx := fx*in.Forward + sx*in.Strafe
	my := fy*in.Forward + sy*in.Strafe
	if l := math.Hypot(mx, my); l > 1 {
		mx /= l
		my /= l
	}
	p.moving = mx != 0 || my != 0

	p.Pos.X += mx * speed * dt
	p.Pos.Y += my * speed * dt
	p.Pos.X = clampF(p.Pos.X, -terrain.HalfExtentX(), terrain.HalfExtentX())
	p.Pos.Y = clampF(p.Pos.Y, -terrain.HalfExtentY(), terrain.HalfExtentY())
	p.Pos.Z = terrain.HeightAt(p.Pos.X, p.Pos.Y)

	if p.moving {
		phaseSpeed := 1.8
		if p.Sprinting {
			phaseSpeed = 2.6
		}
		p.walkPhase += dt * phaseSpeed
	}

	p.Hunger = clampF(p.Hunger-HungerDrainRate*dt, 0, 100)
	p.Thirst = clampF(p.Thirst-ThirstDrainRate*dt, 0, 100)
	if p.Hunger <= 0 || p.Thirst <= 0 {
		p.HP.Damage(StarveDamageRate * dt)
	}

	p.Weapon.UpdateReload(p.totalTime())

	// Advance projectiles, compacting spent ones.
	alive := p.Projectiles[:0]
	for i := range p.Projectiles {
		if p.Projectiles[i].Update(dt) {
			alive = append(alive, p.Projectiles[i])
		}
	}
	p.Projectiles = alive
}

// FootstepDue reports whether the walk cycle crossed a step boundary, used
// to trigger footstep sounds.
func (p *Player) FootstepDue(prevPhase float64) bool {
	return math.Floor(p.walkPhase) > math.Floor(prevPhase)
}

func (p *Player) WalkPhase() float64 { return p.walkPhase }

// Shoot fires the rifle along the view direction. Returns true if a round
// left the barrel.
func (p *Player) Shoot(now float64) bool {
	pr := p.Weapon.Fire(p.EyePos(), p.Forward(), now)
	if pr == nil {
		return false
	}
	p.Projectiles = append(p.Projectiles, *pr)
	return true
}

func (p *Player) Reload(now float64) bool {
	return p.Weapon.StartReload(now)
}

// totalTime mirrors the clock Fire/StartReload were called with. The weapon
// stores absolute timestamps, so reload completion is checked against the
// same monotonic session clock by the caller; Update keeps its own copy.
func (p *Player) totalTime() float64 {
	return p.Weapon.lastClock
}

// SyncClock hands the session clock to the weapon before Update runs.
func (p *Player) SyncClock(now float64) {
	p.Weapon.lastClock = now
}

// Eat and Drink restore the survival meters, capped at full, and mend a
// little health with them.
func (p *Player) Eat(amount float64) {
	p.Hunger = clampF(p.Hunger+amount, 0, 100)
	p.HP.Heal(amount * 0.1)
}

func (p *Player) Drink(amount float64) {
	p.Thirst = clampF(p.Thirst+amount, 0, 100)
	p.HP.Heal(amount * 0.05)
}
