package quiz

// Session holds one interactive session's quiz state: the current
// problem and attempt counters. Each session owns its state outright,
// so concurrent sessions never share a problem.
type Session struct {
	gen     *Generator
	current *Problem

	Attempts int
	Correct  int
}

func NewSession(seed int64) *Session {
	return &Session{gen: NewGenerator(seed)}
}

// Problem returns the current problem, generating the first one on
// demand.
func (s *Session) Problem() Problem {
	if s.current == nil {
		p := s.gen.NewProblem()
		s.current = &p
	}
	return *s.current
}

// Renew replaces the current problem atomically: the new problem is
// built in full before the single pointer swap, so no caller can
// observe a half-updated problem.
func (s *Session) Renew() Problem {
	p := s.gen.NewProblem()
	s.current = &p
	return p
}

// Submit judges an answer against the current problem and updates the
// session tally.
func (s *Session) Submit(userRa, userRb float64) Verdict {
	v := Check(s.Problem(), userRa, userRb)
	s.Attempts++
	if v.Correct() {
		s.Correct++
	}
	return v
}
