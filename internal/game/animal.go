package game

import "math"

// AnimalState is the 5-state reactive behavior machine.
type AnimalState int

const (
	StateIdle AnimalState = iota
	StateForaging
	StateFleeing
	StateAlerted
	StateDead // terminal
)

func (s AnimalState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateForaging:
		return "foraging"
	case StateFleeing:
		return "fleeing"
	case StateAlerted:
		return "alerted"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

type Species int

const (
	SpeciesDeer Species = iota
	SpeciesRabbit
)

func (s Species) String() string {
	if s == SpeciesDeer {
		return "deer"
	}
	return "rabbit"
}

// Track is a footprint decal left behind a moving animal.
type Track struct {
	X, Y, Z float64
	Heading float64
	Age     float64
}

type Animal struct {
	ID      uint32
	Species Species

	Pos     Vec3
	Vel     Vec3
	Heading float64

	State         AnimalState
	HP            Health
	Speed         float64
	DetectRange   float64
	FleeRange     float64
	Score         int
	HitRadius     float64
	FallPitch     float64 // death visual: rolls the model onto its side

	stateTimer    float64
	stateDuration float64
	target        Vec3
	hasTarget     bool
	seenPlayer    bool
	deadFor       float64

	Tracks         []Track
	distSinceTrack float64
}

func NewDeer(pos Vec3) Animal {
	return Animal{
		Species:       SpeciesDeer,
		Pos:           pos,
		State:         StateIdle,
		HP:            NewHealth(100),
		Speed:         DeerSpeed,
		DetectRange:   DeerDetectRange,
		FleeRange:     DeerFleeRange,
		Score:         DeerScore,
		HitRadius:     AnimalHitRadius * 1.4,
		stateDuration: 3.0,
	}
}

func NewRabbit(pos Vec3) Animal {
	return Animal{
		Species:       SpeciesRabbit,
		Pos:           pos,
		State:         StateIdle,
		HP:            NewHealth(100),
		Speed:         RabbitSpeed,
		DetectRange:   RabbitDetectRange,
		FleeRange:     RabbitFleeRange,
		Score:         RabbitScore,
		HitRadius:     AnimalHitRadius * 0.8,
		stateDuration: 3.0,
	}
}

func (a *Animal) IsDead() bool { return a.State == StateDead }

// DetectsPlayer reports whether the player is inside the flee threshold.
func (a *Animal) DetectsPlayer(playerPos Vec3) bool {
	return a.Pos.DistXY(playerPos) <= a.FleeRange
}

// Update advances the behavior machine one frame. A dead animal only
// finishes its fall and ages out as a carcass.
func (a *Animal) Update(dt float64, playerPos Vec3, terrainHeight float64, r *Rand) {
	if a.State == StateDead {
		a.deadFor += dt
		a.FallPitch = approach(a.FallPitch, math.Pi/2, dt*3)
		return
	}

	a.stateTimer += dt
	dist := a.Pos.DistXY(playerPos)

	switch {
	case a.DetectsPlayer(playerPos):
		// Flee preempts everything except death, from any range check.
		if a.State != StateFleeing {
			a.State = StateFleeing
			a.stateTimer = 0
		}
	case a.State == StateFleeing:
		// Keep running until out of detection range and the dwell expires.
		if dist > a.DetectRange && a.stateTimer >= a.stateDuration {
			a.pickCalmState(r)
		}
	case dist <= a.DetectRange:
		// Crossing into the detection band startles the animal once; after
		// the alert delay it resumes roaming, still watched but not fleeing.
		if !a.seenPlayer && a.State != StateAlerted {
			a.State = StateAlerted
			a.stateTimer = 0
			a.hasTarget = false
		} else if a.State == StateAlerted {
			if a.stateTimer >= AlertDelay {
				a.pickCalmState(r)
			}
		} else if a.stateTimer >= a.stateDuration {
			a.pickCalmState(r)
		}
	case a.stateTimer >= a.stateDuration:
		a.pickCalmState(r)
	}
	a.seenPlayer = dist <= a.DetectRange

	a.updateMovement(dt, playerPos, r)

	// Follow the terrain surface.
	a.Pos.Z = terrainHeight

	// Footprints every TrackSpacing units of travel.
	a.distSinceTrack += a.Vel.Len() * dt
	if a.distSinceTrack >= TrackSpacing && a.Vel.LenSq() > 1e-4 {
		a.distSinceTrack = 0
		a.leaveTrack()
	}
	for i := range a.Tracks {
		a.Tracks[i].Age += dt
	}
}

// pickCalmState re-rolls between idle and foraging with a fresh 2-5s dwell.
func (a *Animal) pickCalmState(r *Rand) {
	if a.State == StateDead {
		return
	}
	a.stateTimer = 0
	a.stateDuration = r.RangeF(AnimalStateMin, AnimalStateMax)

	if r.Intn(2) == 0 {
		a.State = StateIdle
		a.hasTarget = false
		return
	}
	a.State = StateForaging
	angle := r.Angle()
	distance := r.RangeF(ForageRangeMin, ForageRangeMax)
	a.target = Vec3{
		X: a.Pos.X + math.Cos(angle)*distance,
		Y: a.Pos.Y + math.Sin(angle)*distance,
		Z: a.Pos.Z,
	}
	a.hasTarget = true
}

func (a *Animal) updateMovement(dt float64, playerPos Vec3, r *Rand) {
	switch a.State {
	case StateDead:
		a.Vel = Vec3{}
		return

	case StateFleeing:
		speed := a.Speed * FleeSpeedMult
		away := Vec3{X: a.Pos.X - playerPos.X, Y: a.Pos.Y - playerPos.Y}
		if away.LenSq() > 1e-6 {
			dir := away.Normalize()
			// Jitter keeps the escape path from being a straight line.
			dir.X += r.RangeF(-0.5, 0.5)
			dir.Y += r.RangeF(-0.5, 0.5)
			a.Vel = dir.Normalize().Scale(speed)
		} else {
			angle := r.Angle()
			a.Vel = Vec3{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed)
		}

	case StateForaging:
		if !a.hasTarget {
			a.Vel = Vec3{}
			break
		}
		toTarget := Vec3{X: a.target.X - a.Pos.X, Y: a.target.Y - a.Pos.Y}
		if toTarget.Len() < ForageArrive {
			a.Vel = Vec3{}
			a.hasTarget = false
		} else {
			a.Vel = toTarget.Normalize().Scale(a.Speed)
		}

	case StateAlerted:
		// Frozen, head turned toward the threat.
		a.Vel = Vec3{}
		a.Heading = math.Atan2(playerPos.Y-a.Pos.Y, playerPos.X-a.Pos.X)

	case StateIdle:
		a.Vel = Vec3{}
	}

	if a.Vel.LenSq() > 1e-6 {
		want := math.Atan2(a.Vel.Y, a.Vel.X)
		a.Heading += clampF(angDiff(a.Heading, want), -9*dt, 9*dt)
	}
	a.Pos.X += a.Vel.X * dt
	a.Pos.Y += a.Vel.Y * dt
}

// TakeDamage applies projectile damage. Lethal damage is terminal; a wounded
// survivor bolts immediately.
func (a *Animal) TakeDamage(damage float64) {
	if a.State == StateDead {
		return
	}
	a.HP.Damage(damage)
	if a.HP.IsDead() {
		a.State = StateDead
		a.Vel = Vec3{}
		return
	}
	if a.State != StateFleeing {
		a.State = StateFleeing
		a.stateTimer = 0
	}
}

func (a *Animal) leaveTrack() {
	a.Tracks = append(a.Tracks, Track{
		X: a.Pos.X, Y: a.Pos.Y, Z: a.Pos.Z,
		Heading: a.Heading,
	})
	if len(a.Tracks) > MaxTracks {
		a.Tracks = a.Tracks[1:]
	}
}

// pendingSpawn is a queued respawn after a kill keeps the map populated.
type pendingSpawn struct {
	species Species
	timer   float64
}

// AnimalSystem owns all live animals: spawning, per-frame updates, and
// dead-animal cleanup.
type AnimalSystem struct {
	Animals []Animal

	seed     uint64
	rng      *Rand
	nextID   uint32
	respawns []pendingSpawn
}

func NewAnimalSystem(seed uint64) *AnimalSystem {
	if seed == 0 {
		seed = 1
	}
	return &AnimalSystem{
		seed:   seed,
		rng:    NewRand(seed),
		nextID: 1,
	}
}

// Reset clears the herd and reseeds spawn randomness for a fresh session.
func (as *AnimalSystem) Reset() {
	as.Animals = as.Animals[:0]
	as.respawns = as.respawns[:0]
	as.rng = NewRand(as.seed)
	as.nextID = 1
}

// SpawnInitial places the configured deer and rabbit herds on the terrain.
func (as *AnimalSystem) SpawnInitial(terrain *Terrain) {
	for i := 0; i < DeerCount; i++ {
		as.spawnOne(SpeciesDeer, terrain)
	}
	for i := 0; i < RabbitCount; i++ {
		as.spawnOne(SpeciesRabbit, terrain)
	}
}

// spawnOne rejection-samples a spot inside the spawn radius but clear of the
// player start at the map center.
func (as *AnimalSystem) spawnOne(species Species, terrain *Terrain) {
	var x, y float64
	for attempts := 0; attempts < 20; attempts++ {
		x = as.rng.RangeF(-SpawnRadius, SpawnRadius)
		y = as.rng.RangeF(-SpawnRadius, SpawnRadius)
		if math.Hypot(x, y) >= SpawnClearance {
			break
		}
	}
	z := 0.0
	if terrain != nil {
		z = terrain.HeightAt(x, y)
	}

	var a Animal
	if species == SpeciesDeer {
		a = NewDeer(Vec3{X: x, Y: y, Z: z})
	} else {
		a = NewRabbit(Vec3{X: x, Y: y, Z: z})
	}
	a.ID = as.nextID
	as.nextID++
	a.Heading = as.rng.Angle()
	as.Animals = append(as.Animals, a)
}

// Update advances every live animal and services respawn timers.
func (as *AnimalSystem) Update(dt float64, playerPos Vec3, terrain *Terrain) {
	for i := range as.Animals {
		a := &as.Animals[i]
		th := 0.0
		if terrain != nil {
			th = terrain.HeightAt(a.Pos.X, a.Pos.Y)
		}
		a.Update(dt, playerPos, th, as.rng)
		if terrain != nil {
			a.Pos.X = clampF(a.Pos.X, -terrain.HalfExtentX(), terrain.HalfExtentX())
			a.Pos.Y = clampF(a.Pos.Y, -terrain.HalfExtentY(), terrain.HalfExtentY())
		}
	}

	kept := as.respawns[:0]
	for _, p := range as.respawns {
		p.timer -= dt
		if p.timer <= 0 {
			as.spawnOne(p.species, terrain)
			continue
		}
		kept = append(kept, p)
	}
	as.respawns = kept
}

// AliveCount returns the number of animals not yet dead.
func (as *AnimalSystem) AliveCount() int {
	n := 0
	for i := range as.Animals {
		if !as.Animals[i].IsDead() {
			n++
		}
	}
	return n
}

// RemoveDead compacts carcasses that have lingered long enough and queues
// their replacements, returning the animals removed this frame.
func (as *AnimalSystem) RemoveDead() []Animal {
	var removed []Animal
	kept := as.Animals[:0]
	for i := range as.Animals {
		a := as.Animals[i]
		if a.IsDead() && a.deadFor >= CorpseLinger {
			removed = append(removed, a)
			as.respawns = append(as.respawns, pendingSpawn{species: a.Species, timer: RespawnDelay})
			continue
		}
		kept = append(kept, a)
	}
	as.Animals = kept
	return removed
}
