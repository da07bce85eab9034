package game

import "testing"

func TestFireSpendsAmmoAndGatesOnInterval(t *testing.T) {
	w := NewRifle()
	p := w.Fire(Vec3{}, Vec3{X: 1}, 0)
	if p == nil {
		t.Fatalf("first shot blocked")
	}
	if w.Ammo != RifleMagazine-1 {
		t.Fatalf("ammo after shot = %d, want %d", w.Ammo, RifleMagazine-1)
	}

	if w.Fire(Vec3{}, Vec3{X: 1}, RifleFireInterval/2) != nil {
		t.Fatalf("fired inside the fire interval")
	}
	if w.Fire(Vec3{}, Vec3{X: 1}, RifleFireInterval) == nil {
		t.Fatalf("blocked after the interval elapsed")
	}
}

func TestFireBlockedWhenEmptyOrReloading(t *testing.T) {
	w := NewRifle()
	now := 0.0
	for w.Ammo > 0 {
		if w.Fire(Vec3{}, Vec3{X: 1}, now) == nil {
			t.Fatalf("shot blocked with %d rounds left", w.Ammo)
		}
		now += RifleFireInterval
	}
	if w.Fire(Vec3{}, Vec3{X: 1}, now+10) != nil {
		t.Fatalf("fired on an empty magazine")
	}

	if !w.StartReload(now) {
		t.Fatalf("reload refused on empty magazine")
	}
	if w.Fire(Vec3{}, Vec3{X: 1}, now+RifleReloadTime/2) != nil {
		t.Fatalf("fired mid-reload")
	}
}

func TestReloadNoOpAtFullMag(t *testing.T) {
	w := NewRifle()
	if w.StartReload(0) {
		t.Fatalf("reload started with a full magazine")
	}
	if w.Reloading {
		t.Fatalf("weapon stuck in reloading state")
	}
}

func TestReloadRefillsAfterDuration(t *testing.T) {
	w := NewRifle()
	w.Fire(Vec3{}, Vec3{X: 1}, 0)
	w.StartReload(1)

	if w.UpdateReload(1 + RifleReloadTime/2) {
		t.Fatalf("reload finished early")
	}
	if !w.UpdateReload(1 + RifleReloadTime) {
		t.Fatalf("reload never finished")
	}
	if w.Ammo != RifleMagazine {
		t.Fatalf("ammo after reload = %d, want %d", w.Ammo, RifleMagazine)
	}
	if w.Reloading {
		t.Fatalf("still reloading after refill")
	}
}

func TestProjectileExpiresAtMaxRange(t *testing.T) {
	p := NewProjectile(Vec3{}, Vec3{X: 1}, RifleProjectileSpeed, RifleDamage)
	dt := 1.0 / 60
	alive := 0
	for p.Update(dt) {
		alive++
		if alive > 100000 {
			t.Fatalf("projectile never expired")
		}
	}
	if p.Traveled < ProjectileMaxRange {
		t.Fatalf("expired after %f units, want >= %v", p.Traveled, ProjectileMaxRange)
	}
	if p.Active {
		t.Fatalf("expired projectile still active")
	}
}

func TestReloadProgress(t *testing.T) {
	w := NewRifle()
	if w.ReloadProgress(0) != 1 {
		t.Fatalf("progress while idle = %f, want 1", w.ReloadProgress(0))
	}
	w.Fire(Vec3{}, Vec3{X: 1}, 0)
	w.StartReload(0)
	if got := w.ReloadProgress(RifleReloadTime / 2); got < 0.49 || got > 0.51 {
		t.Fatalf("mid-reload progress = %f, want 0.5", got)
	}
}

func TestProjectileDirectionNormalized(t *testing.T) {
	p := NewProjectile(Vec3{}, Vec3{X: 3, Y: 4}, 100, 25)
	if l := p.Dir.Len(); l < 0.999 || l > 1.001 {
		t.Fatalf("direction length = %f, want 1", l)
	}
}
