package game

import "fmt"

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Session tracks one hunt: score, kill and shot counters and the elapsed
// play clock. The objective is a fixed number of kills.
type Session struct {
	State GameState

	Score      int
	Kills      int
	ShotsFired int
	ShotsHit   int
	PlayTime   float64

	Objective int
	Won       bool
}

func NewSession() *Session {
	return &Session{State: StateMenu, Objective: ObjectiveKills}
}

func (s *Session) StartGame() {
	s.Score = 0
	s.Kills = 0
	s.ShotsFired = 0
	s.ShotsHit = 0
	s.PlayTime = 0
	s.Won = false
	s.State = StatePlaying
}

func (s *Session) Pause() {
	if s.State == StatePlaying {
		s.State = StatePaused
	}
}

func (s *Session) Resume() {
	if s.State == StatePaused {
		s.State = StatePlaying
	}
}

func (s *Session) GameOver(won bool) {
	s.Won = won
	s.State = StateGameOver
}

func (s *Session) RecordShot() {
	s.ShotsFired++
}

func (s *Session) RecordHit() {
	s.ShotsHit++
}

func (s *Session) RecordKill(score int) {
	s.Kills++
	s.Score += score
}

// Accuracy is hits over shots, 0 when nothing has been fired.
func (s *Session) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired)
}

func (s *Session) ObjectiveMet() bool {
	return s.Kills >= s.Objective
}

// ClockString formats the play time as M:SS.
func (s *Session) ClockString() string {
	t := int(s.PlayTime)
	return fmt.Sprintf("%d:%02d", t/60, t%60)
}
