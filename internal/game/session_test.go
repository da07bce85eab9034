package game

import "testing"

func TestSessionTransitions(t *testing.T) {
	s := NewSession()
	if s.State != StateMenu {
		t.Fatalf("initial state = %v, want menu", s.State)
	}

	s.StartGame()
	if s.State != StatePlaying {
		t.Fatalf("state after start = %v, want playing", s.State)
	}

	s.Pause()
	if s.State != StatePaused {
		t.Fatalf("state after pause = %v, want paused", s.State)
	}
	// Pause is only reachable from playing.
	s.State = StateGameOver
	s.Pause()
	if s.State != StateGameOver {
		t.Fatalf("pause from game over changed state to %v", s.State)
	}

	s.State = StatePaused
	s.Resume()
	if s.State != StatePlaying {
		t.Fatalf("state after resume = %v, want playing", s.State)
	}

	s.GameOver(true)
	if s.State != StateGameOver || !s.Won {
		t.Fatalf("game over state = %v won = %v", s.State, s.Won)
	}
}

func TestCountersResetOnRestart(t *testing.T) {
	s := NewSession()
	s.StartGame()
	s.RecordShot()
	s.RecordShot()
	s.RecordHit()
	s.RecordKill(DeerScore)
	s.PlayTime = 99
	s.GameOver(false)

	s.StartGame()
	if s.Score != 0 || s.Kills != 0 || s.ShotsFired != 0 || s.ShotsHit != 0 || s.PlayTime != 0 {
		t.Fatalf("counters survived restart: %+v", s)
	}
	if s.Won {
		t.Fatalf("won flag survived restart")
	}
}

func TestAccuracy(t *testing.T) {
	s := NewSession()
	if s.Accuracy() != 0 {
		t.Fatalf("accuracy with no shots = %f, want 0", s.Accuracy())
	}
	s.RecordShot()
	s.RecordShot()
	s.RecordShot()
	s.RecordShot()
	s.RecordHit()
	if s.Accuracy() != 0.25 {
		t.Fatalf("accuracy = %f, want 0.25", s.Accuracy())
	}
}

func TestObjective(t *testing.T) {
	s := NewSession()
	s.StartGame()
	for i := 0; i < ObjectiveKills-1; i++ {
		s.RecordKill(RabbitScore)
	}
	if s.ObjectiveMet() {
		t.Fatalf("objective met one kill early")
	}
	s.RecordKill(DeerScore)
	if !s.ObjectiveMet() {
		t.Fatalf("objective not met at %d kills", s.Kills)
	}
	if s.Score != (ObjectiveKills-1)*RabbitScore+DeerScore {
		t.Fatalf("score = %d", s.Score)
	}
}

func TestClockString(t *testing.T) {
	s := NewSession()
	s.PlayTime = 125
	if got := s.ClockString(); got != "2:05" {
		t.Fatalf("clock = %q, want 2:05", got)
	}
}

func TestEventBusOrderAndIsolation(t *testing.T) {
	bus := NewEventBus()
	var got []int
	bus.Subscribe(EventAnimalKilled, func(Event) { got = append(got, 1) })
	bus.Subscribe(EventAnimalKilled, func(Event) { got = append(got, 2) })
	bus.Subscribe(EventShotFired, func(Event) { got = append(got, 3) })

	bus.Publish(Event{Type: EventAnimalKilled})
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("handlers ran as %v, want [1 2]", got)
	}
}
