package game

import (
	"math"
	"testing"
)

func flatTerrain() *Terrain {
	return NewTerrain(20, 20, 1, 2, 7)
}

func TestPitchClamped(t *testing.T) {
	p := NewPlayer()
	p.Look(0, -100000)
	limit := 89 * math.Pi / 180
	if p.Pitch > limit+1e-9 {
		t.Fatalf("pitch = %f, want <= %f", p.Pitch, limit)
	}
	p.Look(0, 100000)
	if p.Pitch < -limit-1e-9 {
		t.Fatalf("pitch = %f, want >= %f", p.Pitch, -limit)
	}
}

func TestSprintDrainsAndRecoversStamina(t *testing.T) {
	tr := flatTerrain()
	p := NewPlayer()
	in := PlayerInput{Forward: 1, Sprint: true}

	dt := 1.0 / 60
	for i := 0; i < 120; i++ {
		p.Update(dt, in, tr)
	}
	if p.Stamina >= 100 {
		t.Fatalf("stamina did not drain while sprinting: %f", p.Stamina)
	}
	drained := p.Stamina

	for i := 0; i < 120; i++ {
		p.Update(dt, PlayerInput{}, tr)
	}
	if p.Stamina <= drained {
		t.Fatalf("stamina did not recover at rest: %f", p.Stamina)
	}
}

func TestSprintMovesFaster(t *testing.T) {
	tr := flatTerrain()
	dt := 1.0 / 60

	walk := NewPlayer()
	walk.Pos = Vec3{X: -8}
	for i := 0; i < 30; i++ {
		walk.Update(dt, PlayerInput{Forward: 1}, tr)
	}
	sprint := NewPlayer()
	sprint.Pos = Vec3{X: -8}
	for i := 0; i < 30; i++ {
		sprint.Update(dt, PlayerInput{Forward: 1, Sprint: true}, tr)
	}
	if sprint.Pos.X-(-8) <= walk.Pos.X-(-8) {
		t.Fatalf("sprint distance %f not greater than walk %f", sprint.Pos.X+8, walk.Pos.X+8)
	}
}

func TestMovementClampedToTerrain(t *testing.T) {
	tr := flatTerrain()
	p := NewPlayer()
	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		p.Update(dt, PlayerInput{Forward: 1}, tr)
	}
	if p.Pos.X > tr.HalfExtentX()+1e-9 {
		t.Fatalf("player escaped the terrain: x = %f", p.Pos.X)
	}
	if p.Pos.Z != tr.HeightAt(p.Pos.X, p.Pos.Y) {
		t.Fatalf("player not glued to the terrain surface")
	}
}

func TestStarvationDamagesHealth(t *testing.T) {
	tr := flatTerrain()
	p := NewPlayer()
	p.Hunger = 0.001
	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		p.Update(dt, PlayerInput{}, tr)
	}
	if p.Hunger != 0 {
		t.Fatalf("hunger did not bottom out: %f", p.Hunger)
	}
	if p.HP.Current >= 100 {
		t.Fatalf("starvation dealt no damage: hp = %f", p.HP.Current)
	}
}

func TestEatDrinkRestoreMeters(t *testing.T) {
	p := NewPlayer()
	p.Hunger = 10
	p.Thirst = 10
	p.Eat(30)
	p.Drink(30)
	if p.Hunger != 40 || p.Thirst != 40 {
		t.Fatalf("meters after eat/drink = %f/%f, want 40/40", p.Hunger, p.Thirst)
	}
	p.Eat(1000)
	if p.Hunger != 100 {
		t.Fatalf("hunger overshot the cap: %f", p.Hunger)
	}
}

func TestEatDrinkMendHealth(t *testing.T) {
	p := NewPlayer()
	p.HP.Current = 50
	p.Eat(30)
	if math.Abs(p.HP.Current-53) > 1e-9 {
		t.Fatalf("hp after eating = %f, want 53", p.HP.Current)
	}
	p.Drink(30)
	if math.Abs(p.HP.Current-54.5) > 1e-9 {
		t.Fatalf("hp after drinking = %f, want 54.5", p.HP.Current)
	}
	p.HP.Current = 99.9
	p.Eat(100)
	if p.HP.Current != 100 {
		t.Fatalf("healing overshot max hp: %f", p.HP.Current)
	}
}

func TestShootAddsProjectileAlongView(t *testing.T) {
	p := NewPlayer()
	p.Yaw = math.Pi / 2
	if !p.Shoot(1) {
		t.Fatalf("shot refused with a full magazine")
	}
	if len(p.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(p.Projectiles))
	}
	pr := p.Projectiles[0]
	if math.Abs(pr.Dir.Y-1) > 1e-9 || math.Abs(pr.Dir.X) > 1e-9 {
		t.Fatalf("projectile direction = %v, want +Y", pr.Dir)
	}
	if pr.Pos.Z != PlayerEyeHeight {
		t.Fatalf("projectile origin z = %f, want eye height %v", pr.Pos.Z, PlayerEyeHeight)
	}
}
