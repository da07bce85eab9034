package game

import (
	"math"
	"testing"
)

func stepAnimal(a *Animal, playerPos Vec3, r *Rand, seconds float64) {
	dt := 1.0 / 60
	for t := 0.0; t < seconds; t += dt {
		a.Update(dt, playerPos, 0, r)
	}
}

func TestDeerFleesWhenPlayerClose(t *testing.T) {
	r := NewRand(7)
	a := NewDeer(Vec3{X: 0, Y: 0})
	player := Vec3{X: DeerFleeRange - 1, Y: 0}

	a.Update(1.0/60, player, 0, r)
	if a.State != StateFleeing {
		t.Fatalf("state with player at %.0f units = %v, want fleeing", DeerFleeRange-1, a.State)
	}

	stepAnimal(&a, player, r, 1.0)
	if a.Pos.DistXY(player) <= DeerFleeRange-1 {
		t.Fatalf("deer did not gain distance while fleeing: %f", a.Pos.DistXY(player))
	}
}

func TestFleeSpeedBoost(t *testing.T) {
	r := NewRand(3)
	a := NewDeer(Vec3{})
	a.Update(1.0/60, Vec3{X: 5}, 0, r)
	if a.State != StateFleeing {
		t.Fatalf("state = %v, want fleeing", a.State)
	}
	speed := a.Vel.Len()
	want := DeerSpeed * FleeSpeedMult
	if math.Abs(speed-want) > 0.01 {
		t.Fatalf("flee speed = %f, want %f", speed, want)
	}
}

func TestAlertedFreezesAndFacesPlayer(t *testing.T) {
	r := NewRand(11)
	a := NewDeer(Vec3{})
	player := Vec3{X: DeerDetectRange - 5, Y: 0}

	a.Update(1.0/60, player, 0, r)
	if a.State != StateAlerted {
		t.Fatalf("state inside detect range = %v, want alerted", a.State)
	}
	if a.Vel.Len() != 0 {
		t.Fatalf("alerted animal moved: vel = %v", a.Vel)
	}
	if math.Abs(a.Heading) > 0.01 {
		t.Fatalf("alerted heading = %f, want 0 (facing +X player)", a.Heading)
	}
}

func TestAnimalRoamsWhileWatchedAtDistance(t *testing.T) {
	r := NewRand(29)
	a := NewDeer(Vec3{})
	// Parked between flee range and detection range: the deer should startle
	// once, then go back to roaming instead of freezing forever.
	player := Vec3{X: (DeerDetectRange + DeerFleeRange) / 2}

	dt := 1.0 / 60
	path := 0.0
	calm := 0
	for i := 0; i < 3600; i++ {
		prev := a.Pos
		a.Update(dt, player, 0, r)
		path += a.Pos.DistXY(prev)
		if a.State == StateIdle || a.State == StateForaging {
			calm++
		}
	}
	if path < 5 {
		t.Fatalf("watched deer barely moved: %.2f units over a minute", path)
	}
	if calm < 1000 {
		t.Fatalf("calm on %d/3600 frames, want far more than the alert delay", calm)
	}
}

func TestForageTargetRange(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 200; i++ {
		a := NewRabbit(Vec3{})
		a.pickCalmState(r)
		if a.State != StateForaging {
			continue
		}
		d := math.Hypot(a.target.X, a.target.Y)
		if d < ForageRangeMin-0.01 || d > ForageRangeMax+0.01 {
			t.Fatalf("forage target distance = %f, want %v..%v", d, ForageRangeMin, ForageRangeMax)
		}
	}
}

func TestCalmDwellBounds(t *testing.T) {
	r := NewRand(17)
	a := NewDeer(Vec3{})
	for i := 0; i < 100; i++ {
		a.pickCalmState(r)
		if a.stateDuration < AnimalStateMin || a.stateDuration > AnimalStateMax {
			t.Fatalf("dwell = %f, want %v..%v", a.stateDuration, AnimalStateMin, AnimalStateMax)
		}
	}
}

func TestLethalDamageIsTerminal(t *testing.T) {
	r := NewRand(1)
	a := NewRabbit(Vec3{})
	for i := 0; i < 4; i++ {
		a.TakeDamage(RifleDamage)
	}
	if a.State != StateDead {
		t.Fatalf("state after 100 damage = %v, want dead", a.State)
	}

	// Dead is terminal: nothing moves it again, even a nearby player.
	stepAnimal(&a, Vec3{X: 1}, r, 1.0)
	if a.State != StateDead {
		t.Fatalf("dead animal changed state to %v", a.State)
	}
	if a.Vel.Len() != 0 {
		t.Fatalf("dead animal moved: vel = %v", a.Vel)
	}
	if a.FallPitch <= 0 {
		t.Fatalf("dead animal never started falling over")
	}

	// Further damage is a no-op.
	a.TakeDamage(RifleDamage)
	if a.HP.Current < 0 {
		t.Fatalf("hp went below zero: %f", a.HP.Current)
	}
}

func TestWoundedAnimalBolts(t *testing.T) {
	a := NewDeer(Vec3{})
	a.TakeDamage(RifleDamage)
	if a.State != StateFleeing {
		t.Fatalf("state after non-lethal hit = %v, want fleeing", a.State)
	}
}

func TestTracksLeftWhileMoving(t *testing.T) {
	r := NewRand(23)
	a := NewDeer(Vec3{})
	stepAnimal(&a, Vec3{X: 5}, r, 3.0) // fleeing the whole time
	if len(a.Tracks) == 0 {
		t.Fatalf("fleeing deer left no tracks")
	}
	if len(a.Tracks) > MaxTracks {
		t.Fatalf("track count = %d, want <= %d", len(a.Tracks), MaxTracks)
	}
}

func TestSpawnClearanceAndCounts(t *testing.T) {
	as := NewAnimalSystem(99)
	as.SpawnInitial(nil)
	if len(as.Animals) != DeerCount+RabbitCount {
		t.Fatalf("spawned %d animals, want %d", len(as.Animals), DeerCount+RabbitCount)
	}
	for i := range as.Animals {
		a := &as.Animals[i]
		if math.Hypot(a.Pos.X, a.Pos.Y) > SpawnRadius*math.Sqrt2+0.001 {
			t.Fatalf("animal spawned outside radius: %v", a.Pos)
		}
	}
}

func TestRespawnAfterRemoval(t *testing.T) {
	as := NewAnimalSystem(42)
	as.SpawnInitial(nil)
	total := len(as.Animals)

	as.Animals[0].TakeDamage(1000)
	as.Animals[0].deadFor = CorpseLinger
	removed := as.RemoveDead()
	if len(removed) != 1 {
		t.Fatalf("removed %d animals, want 1", len(removed))
	}
	if len(as.Animals) != total-1 {
		t.Fatalf("herd size after removal = %d, want %d", len(as.Animals), total-1)
	}

	// The replacement arrives only after the delay elapses.
	as.Update(RespawnDelay/2, Vec3{X: 500, Y: 500}, nil)
	if len(as.Animals) != total-1 {
		t.Fatalf("respawned too early")
	}
	as.Update(RespawnDelay, Vec3{X: 500, Y: 500}, nil)
	if len(as.Animals) != total {
		t.Fatalf("herd size after respawn = %d, want %d", len(as.Animals), total)
	}
}

func TestDetectsPlayerBoundary(t *testing.T) {
	a := NewRabbit(Vec3{})
	if !a.DetectsPlayer(Vec3{X: RabbitFleeRange - 0.1}) {
		t.Fatalf("player just inside flee range not detected")
	}
	if a.DetectsPlayer(Vec3{X: RabbitFleeRange + 0.1}) {
		t.Fatalf("player outside flee range detected")
	}
}

func TestAliveCount(t *testing.T) {
	as := NewAnimalSystem(4)
	as.SpawnInitial(nil)
	total := len(as.Animals)
	as.Animals[0].TakeDamage(1000)
	if as.AliveCount() != total-1 {
		t.Fatalf("alive count = %d, want %d", as.AliveCount(), total-1)
	}
}

func TestCarcassLingers(t *testing.T) {
	as := NewAnimalSystem(8)
	as.SpawnInitial(nil)
	as.Animals[0].TakeDamage(1000)

	if removed := as.RemoveDead(); len(removed) != 0 {
		t.Fatalf("fresh carcass removed immediately")
	}
	as.Update(CorpseLinger+1, Vec3{X: 500, Y: 500}, nil)
	if removed := as.RemoveDead(); len(removed) != 1 {
		t.Fatalf("aged carcass not removed, got %d", len(removed))
	}
}
