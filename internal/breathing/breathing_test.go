// ABOUTME: Tests for the breathing phase machine and Session.
// ABOUTME: Simulates seconds by calling Next directly.
package breathing

import "testing"

func run(s State, p Pattern, ticks int) (State, []Phase) {
	var seen []Phase
	for i := 0; i < ticks; i++ {
		s = Next(s, p)
		seen = append(seen, s.Phase)
	}
	return s, seen
}

func TestFourSevenEightCycle(t *testing.T) {
	p := Pattern{Inhale: 4, Hold1: 7, Exhale: 8, Hold2: 0}

	s := Start(State{}, p)
	if s.Phase != Inhale || s.Countdown != 4 {
		t.Fatalf("Start = %+v, want Inhale/4", s)
	}

	s, seen := run(s, p, 19)
	if s.Phase != Inhale || s.Countdown != 4 || s.Cycles != 1 {
		t.Errorf("after 19 ticks = %+v, want Inhale/4 with 1 cycle", s)
	}

	checkpoints := map[int]Phase{3: Hold, 10: Exhale, 18: Inhale}
	for i, want := range checkpoints {
		if seen[i] != want {
			t.Errorf("tick %d phase = %s, want %s", i+1, seen[i], want)
		}
	}
	if seen[2] != Inhale || seen[9] != Hold || seen[17] != Exhale {
		t.Errorf("phase boundaries off: %v", seen)
	}
}

func TestNoRestWhenHold2IsZero(t *testing.T) {
	p := Pattern{Inhale: 5, Hold1: 2, Exhale: 5, Hold2: 0}
	s, seen := run(Start(State{}, p), p, p.CycleSeconds()*3)

	for i, ph := range seen {
		if ph == Rest {
			t.Fatalf("entered Rest at tick %d", i+1)
		}
	}
	if s.Cycles != 3 {
		t.Errorf("Cycles = %d, want 3", s.Cycles)
	}
}

func TestBoxBreathingVisitsRest(t *testing.T) {
	p := Pattern{Inhale: 4, Hold1: 4, Exhale: 4, Hold2: 4}
	s, seen := run(Start(State{}, p), p, 16)

	if seen[11] != Rest {
		t.Errorf("tick 12 phase = %s, want Rest", seen[11])
	}
	if seen[10] != Exhale {
		t.Errorf("tick 11 phase = %s, want Exhale", seen[10])
	}
	if s.Phase != Inhale || s.Cycles != 1 {
		t.Errorf("after 16 ticks = %+v, want Inhale with 1 cycle", s)
	}
}

func TestSkipHoldWhenHold1IsZero(t *testing.T) {
	p := Pattern{Inhale: 2, Hold1: 0, Exhale: 3, Hold2: 0}
	s, _ := run(Start(State{}, p), p, 2)
	if s.Phase != Exhale || s.Countdown != 3 {
		t.Errorf("after inhale = %+v, want Exhale/3", s)
	}
}

func TestIdleDoesNotAdvance(t *testing.T) {
	p := DefaultPattern
	s, _ := run(State{}, p, 50)
	if s != (State{}) {
		t.Errorf("idle state changed: %+v", s)
	}
}

func TestStopKeepsCycles(t *testing.T) {
	s := Stop(State{Phase: Exhale, Countdown: 3, Cycles: 2})
	if s.Phase != Idle || s.Countdown != 0 || s.Cycles != 2 {
		t.Errorf("Stop = %+v", s)
	}
}

func TestPatternByName(t *testing.T) {
	p, err := PatternByName("Box Breathing")
	if err != nil || p.Hold2 != 4 {
		t.Errorf("PatternByName = %+v, %v", p, err)
	}
	if _, err := PatternByName("nope"); err == nil {
		t.Error("expected error for unknown pattern")
	}
	if DefaultPattern.CycleSeconds() != 19 {
		t.Errorf("default cycle = %d, want 19", DefaultPattern.CycleSeconds())
	}
}

func TestPhaseString(t *testing.T) {
	if Idle.String() != "Get ready" || Rest.String() != "Rest" {
		t.Errorf("unexpected phase names %q %q", Idle, Rest)
	}
}

func TestSession(t *testing.T) {
	s := NewSession(DefaultPattern)

	if s.Tick() {
		t.Error("stopped session should not tick")
	}

	s.Toggle()
	if !s.Running() || s.State().Phase != Inhale {
		t.Fatalf("after Toggle: running=%v state=%+v", s.Running(), s.State())
	}

	for i := 0; i < 3; i++ {
		if s.Tick() {
			t.Fatalf("phase changed early at tick %d", i+1)
		}
	}
	if !s.Tick() || s.State().Phase != Hold {
		t.Fatalf("expected Hold after 4 ticks, got %+v", s.State())
	}

	box, _ := PatternByName("Box Breathing")
	s.SetPattern(box)
	if st := s.State(); st.Phase != Inhale || st.Countdown != 4 {
		t.Errorf("SetPattern while running = %+v, want Inhale/4", st)
	}

	s.Toggle()
	if s.Running() || s.State().Phase != Idle {
		t.Errorf("after second Toggle: running=%v state=%+v", s.Running(), s.State())
	}

	calm, _ := PatternByName("Calm Breathing")
	s.SetPattern(calm)
	if s.State().Phase != Idle {
		t.Error("SetPattern while stopped should stay idle")
	}
	if s.Pattern().Name != "Calm Breathing" {
		t.Errorf("Pattern = %s", s.Pattern().Name)
	}

	s.Start()
	for i := 0; i < calm.CycleSeconds(); i++ {
		s.Tick()
	}
	if s.State().Cycles != 1 {
		t.Errorf("Cycles = %d, want 1", s.State().Cycles)
	}
	s.Reset()
	if s.State() != (State{}) || s.Running() {
		t.Errorf("Reset left %+v running=%v", s.State(), s.Running())
	}
}
