package entities

// Session stores the identifier of the currently authenticated user, if any
type Session struct {
	user string
}

// User returns the current user and whether there is one
func (s *Session) User() (string, bool) {
	return s.user, s.user != ""
}

// IsAuthenticated reports whether a user is logged in
func (s *Session) IsAuthenticated() bool {
	return s.user != ""
}

// SetUser sets the current user. An empty user clears the session.
func (s *Session) SetUser(user string) {
	s.user = user
}

// Clear logs the current user out
func (s *Session) Clear() {
	s.user = ""
}
