package game

import "testing"

func testBounds() RectF {
	return RectF{X0: -100, Y0: -100, X1: 100, Y1: 100}
}

func TestQuadtreeQueryFindsInserted(t *testing.T) {
	tree := NewQuadNode(testBounds(), 0)
	for i := 0; i < 50; i++ {
		x := float64(i*3 - 75)
		tree.Insert(i, RectF{X0: x, Y0: x, X1: x + 2, Y1: x + 2})
	}

	var hits []int
	tree.Query(RectF{X0: -10, Y0: -10, X1: 10, Y1: 10}, &hits)
	if len(hits) == 0 {
		t.Fatalf("query over populated region returned nothing")
	}
	for _, idx := range hits {
		x := float64(idx*3 - 75)
		r := RectF{X0: x, Y0: x, X1: x + 2, Y1: x + 2}
		if !r.Intersects(RectF{X0: -10, Y0: -10, X1: 10, Y1: 10}) {
			t.Fatalf("query returned non-intersecting item %d", idx)
		}
	}
}

func TestProjectileHitsAnimalOnce(t *testing.T) {
	animals := []Animal{NewDeer(Vec3{X: 10, Y: 0, Z: 0})}
	cm := NewCollisionManager()
	hitCount := 0
	cm.AddHitCallback(func(p *Projectile, a *Animal) { hitCount++ })

	// One frame of travel carries the round straight through the deer.
	p := NewProjectile(Vec3{X: 0, Y: 0, Z: animals[0].HitRadius}, Vec3{X: 1}, 0, RifleDamage)
	dt := 1.0 / 60
	p.Speed = 20 / dt // 20 units this frame
	p.Update(dt)

	projectiles := []Projectile{p}
	cm.Resolve(projectiles, animals, testBounds(), dt)

	if hitCount != 1 {
		t.Fatalf("hit callbacks = %d, want 1", hitCount)
	}
	if projectiles[0].Active {
		t.Fatalf("projectile still active after hit")
	}
	if animals[0].HP.Current != 100-RifleDamage {
		t.Fatalf("hp after hit = %f, want %f", animals[0].HP.Current, 100-RifleDamage)
	}

	// Same projectile resolved again must not damage twice.
	cm.Resolve(projectiles, animals, testBounds(), dt)
	if hitCount != 1 {
		t.Fatalf("inactive projectile hit again")
	}
}

func TestProjectileMissesWideShot(t *testing.T) {
	animals := []Animal{NewDeer(Vec3{X: 10, Y: 10, Z: 0})}
	cm := NewCollisionManager()
	hit := false
	cm.AddHitCallback(func(p *Projectile, a *Animal) { hit = true })

	p := NewProjectile(Vec3{X: 0, Y: 0, Z: 1}, Vec3{X: 1}, 0, RifleDamage)
	dt := 1.0 / 60
	p.Speed = 30 / dt
	p.Update(dt)

	cm.Resolve([]Projectile{p}, animals, testBounds(), dt)
	if hit {
		t.Fatalf("shot along +X hit a deer at (10,10)")
	}
}

func TestDeadAnimalsIgnored(t *testing.T) {
	a := NewDeer(Vec3{X: 10, Y: 0, Z: 0})
	a.TakeDamage(1000)
	animals := []Animal{a}

	cm := NewCollisionManager()
	hit := false
	cm.AddHitCallback(func(p *Projectile, a *Animal) { hit = true })

	p := NewProjectile(Vec3{X: 0, Y: 0, Z: a.HitRadius}, Vec3{X: 1}, 0, RifleDamage)
	dt := 1.0 / 60
	p.Speed = 20 / dt
	p.Update(dt)

	cm.Resolve([]Projectile{p}, animals, testBounds(), dt)
	if hit {
		t.Fatalf("carcass absorbed a projectile")
	}
}

func TestHitEventReachesSubscribers(t *testing.T) {
	animals := []Animal{NewRabbit(Vec3{X: 8, Y: 0, Z: 0})}
	bus := NewEventBus()
	cm := NewCollisionManager()
	cm.AddHitCallback(func(p *Projectile, a *Animal) {
		bus.Publish(Event{Type: EventAnimalHit, Species: a.Species})
	})

	var got []Species
	bus.Subscribe(EventAnimalHit, func(e Event) { got = append(got, e.Species) })

	p := NewProjectile(Vec3{X: 0, Y: 0, Z: animals[0].HitRadius}, Vec3{X: 1}, 0, RifleDamage)
	dt := 1.0 / 60
	p.Speed = 20 / dt
	p.Update(dt)

	cm.Resolve([]Projectile{p}, animals, testBounds(), dt)
	if len(got) != 1 || got[0] != SpeciesRabbit {
		t.Fatalf("hit events = %v, want one rabbit hit", got)
	}
}

func TestSegmentSphere(t *testing.T) {
	if _, hit := segmentSphere(Vec3{X: -5}, Vec3{X: 5}, Vec3{}, 1); !hit {
		t.Fatalf("segment through sphere center missed")
	}
	if _, hit := segmentSphere(Vec3{X: -5, Y: 3}, Vec3{X: 5, Y: 3}, Vec3{}, 1); hit {
		t.Fatalf("segment 3 units off hit a unit sphere")
	}
	// Segment starting inside counts as a hit.
	if _, hit := segmentSphere(Vec3{X: 0.2}, Vec3{X: 5}, Vec3{}, 1); !hit {
		t.Fatalf("segment starting inside the sphere missed")
	}
}
