// ABOUTME: Session couples breathing State with its Pattern and run flag.
// ABOUTME: Headless commands drive a Session; their ticker calls Tick.
package breathing

// Session is one breathing exercise run outside the dashboard.
type Session struct {
	pattern Pattern
	state   State
	running bool
}

// NewSession creates an idle session for p.
func NewSession(p Pattern) *Session {
	return &Session{pattern: p}
}

// Pattern returns the selected pattern.
func (s *Session) Pattern() Pattern { return s.pattern }

// State returns the current machine state.
func (s *Session) State() State { return s.state }

// Running reports whether ticks advance the machine.
func (s *Session) Running() bool { return s.running }

// Start begins from Inhale.
func (s *Session) Start() {
	s.state = Start(s.state, s.pattern)
	s.running = true
}

// Stop halts and returns to Idle, keeping the cycle count.
func (s *Session) Stop() {
	s.state = Stop(s.state)
	s.running = false
}

// Toggle starts a stopped session or stops a running one.
func (s *Session) Toggle() {
	if s.running {
		s.Stop()
		return
	}
	s.Start()
}

// Reset stops and clears the cycle count.
func (s *Session) Reset() {
	s.running = false
	s.state = State{}
}

// SetPattern switches pattern. A running session restarts from Inhale
// with the new pattern's duration.
func (s *Session) SetPattern(p Pattern) {
	s.pattern = p
	if s.running {
		s.state = Start(s.state, p)
	}
}

// Tick advances one second and reports whether the phase changed.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	prev := s.state.Phase
	s.state = Next(s.state, s.pattern)
	return s.state.Phase != prev
}
