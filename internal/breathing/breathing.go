// ABOUTME: Breathing exercise phase machine as pure transition functions.
// ABOUTME: A scheduler calls Next once per second; the machine has no side effects.
package breathing

import "fmt"

// Phase is a step of the breathing cycle.
type Phase int

const (
	Idle Phase = iota
	Inhale
	Hold
	Exhale
	Rest
)

// String returns the instruction shown for the phase.
func (p Phase) String() string {
	switch p {
	case Inhale:
		return "Inhale"
	case Hold:
		return "Hold"
	case Exhale:
		return "Exhale"
	case Rest:
		return "Rest"
	default:
		return "Get ready"
	}
}

// Pattern holds per-phase durations in seconds. Hold1 follows the inhale,
// Hold2 (the rest) follows the exhale; zero skips that phase.
type Pattern struct {
	Name   string `json:"name"`
	Inhale int    `json:"inhale"`
	Hold1  int    `json:"hold1"`
	Exhale int    `json:"exhale"`
	Hold2  int    `json:"hold2"`
}

// Patterns are the built-in choices, the first being the default.
var Patterns = []Pattern{
	{Name: "4-7-8 Breathing", Inhale: 4, Hold1: 7, Exhale: 8, Hold2: 0},
	{Name: "Box Breathing", Inhale: 4, Hold1: 4, Exhale: 4, Hold2: 4},
	{Name: "Calm Breathing", Inhale: 5, Hold1: 2, Exhale: 5, Hold2: 0},
}

// DefaultPattern is 4-7-8 breathing.
var DefaultPattern = Patterns[0]

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, error) {
	for _, p := range Patterns {
		if p.Name == name {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("unknown breathing pattern: %q", name)
}

// CycleSeconds is the length of one full cycle.
func (p Pattern) CycleSeconds() int {
	return p.Inhale + p.Hold1 + p.Exhale + p.Hold2
}

// Duration returns how long phase lasts under p.
func (p Pattern) Duration(phase Phase) int {
	switch phase {
	case Inhale:
		return p.Inhale
	case Hold:
		return p.Hold1
	case Exhale:
		return p.Exhale
	case Rest:
		return p.Hold2
	default:
		return 0
	}
}

// State is the machine state between ticks.
type State struct {
	Phase     Phase
	Countdown int
	Cycles    int
}

// Start enters Inhale with a full countdown. Completed cycles carry over.
func Start(s State, p Pattern) State {
	return State{Phase: Inhale, Countdown: p.Inhale, Cycles: s.Cycles}
}

// Stop returns to Idle with no countdown. Completed cycles carry over.
func Stop(s State) State {
	return State{Phase: Idle, Cycles: s.Cycles}
}

// Next advances the machine by one second. When the countdown runs out the
// phase moves on and the countdown reloads with the new phase's duration.
// A cycle completes each time the machine returns to Inhale.
func Next(s State, p Pattern) State {
	if s.Phase == Idle {
		return s
	}
	if s.Countdown > 1 {
		s.Countdown--
		return s
	}

	switch s.Phase {
	case Inhale:
		if p.Hold1 > 0 {
			s.Phase = Hold
		} else {
			s.Phase = Exhale
		}
	case Hold:
		s.Phase = Exhale
	case Exhale:
		if p.Hold2 > 0 {
			s.Phase = Rest
		} else {
			s.Phase = Inhale
			s.Cycles++
		}
	case Rest:
		s.Phase = Inhale
		s.Cycles++
	}
	s.Countdown = p.Duration(s.Phase)
	return s
}
