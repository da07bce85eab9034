package game

// Projectile is a fired round advancing in a straight line at constant
// speed. It deactivates past MaxRange or when a hit consumes it.
type Projectile struct {
	Pos      Vec3
	Dir      Vec3 // unit length
	Speed    float64
	Damage   float64
	Traveled float64
	MaxRange float64
	Active   bool
}

func NewProjectile(origin, direction Vec3, speed, damage float64) Projectile {
	return Projectile{
		Pos:      origin,
		Dir:      direction.Normalize(),
		Speed:    speed,
		Damage:   damage,
		MaxRange: ProjectileMaxRange,
		Active:   true,
	}
}

// Update advances the projectile one frame and returns false once it should
// be removed.
func (p *Projectile) Update(dt float64) bool {
	if !p.Active {
		return false
	}
	step := p.Speed * dt
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	p.Traveled += step
	if p.Traveled >= p.MaxRange {
		p.Active = false
		return false
	}
	return true
}

// Weapon tracks ammo, fire cadence and reload state.
type Weapon struct {
	Name            string
	FireInterval    float64
	Damage          float64
	ProjectileSpeed float64
	Magazine        int
	Ammo            int

	lastShotTime float64 // negative so the first shot is never gated
	Reloading    bool
	ReloadTime   float64
	reloadStart  float64
	lastClock    float64
}

func NewRifle() *Weapon {
	return &Weapon{
		Name:            "Hunting Rifle",
		FireInterval:    RifleFireInterval,
		Damage:          RifleDamage,
		ProjectileSpeed: RifleProjectileSpeed,
		Magazine:        RifleMagazine,
		Ammo:            RifleMagazine,
		ReloadTime:      RifleReloadTime,
		lastShotTime:    -RifleFireInterval,
	}
}

// CanFire reports whether a shot is possible: loaded, not reloading, and
// past the fire interval.
func (w *Weapon) CanFire(now float64) bool {
	if w.Reloading || w.Ammo <= 0 {
		return false
	}
	return now-w.lastShotTime >= w.FireInterval
}

// Fire spends a round and returns the projectile, or nil when the weapon
// cannot shoot.
func (w *Weapon) Fire(origin, direction Vec3, now float64) *Projectile {
	if !w.CanFire(now) {
		return nil
	}
	w.Ammo--
	w.lastShotTime = now
	p := NewProjectile(origin, direction, w.ProjectileSpeed, w.Damage)
	return &p
}

// StartReload begins reloading unless already reloading or the magazine is
// full. Returns whether a reload was started.
func (w *Weapon) StartReload(now float64) bool {
	if w.Reloading || w.Ammo == w.Magazine {
		return false
	}
	w.Reloading = true
	w.reloadStart = now
	return true
}

// UpdateReload finishes a pending reload once its time elapses. Returns true
// on the frame the magazine refills.
func (w *Weapon) UpdateReload(now float64) bool {
	if !w.Reloading {
		return false
	}
	if now-w.reloadStart >= w.ReloadTime {
		w.Ammo = w.Magazine
		w.Reloading = false
		return true
	}
	return false
}

// ReloadProgress is 0..1 while reloading, 1 otherwise.
func (w *Weapon) ReloadProgress(now float64) float64 {
	if !w.Reloading {
		return 1
	}
	return clampF((now-w.reloadStart)/w.ReloadTime, 0, 1)
}
