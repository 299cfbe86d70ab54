package frame

// Session is the mutable state shared by every stage built from one base frame.
type Session struct {
	flip *bool
}

// Flip returns the flag and whether it has been set.
func (s *Session) Flip() (bool, bool) {
	if s.flip == nil {
		return false, false
	}
	return *s.flip, true
}

// SetFlip sets the flag. It is independent of the capability chain.
func (s *Session) SetFlip(v bool) {
	s.flip = &v
}

// ClearFlip makes the flag absent again.
func (s *Session) ClearFlip() {
	s.flip = nil
}
