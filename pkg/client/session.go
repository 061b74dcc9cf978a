package client

import "sync"

// Session is the client-side session state: the in-memory access token and
// the identity fields the UI needs. It is explicitly initialized, injected
// into the request pipeline, and reset as a whole — never ambient globals.
// The refresh token never appears here; it lives only in the cookie jar.
type Session struct {
	mu          sync.RWMutex
	accessToken string
	userID      string
	userEmail   string
	preferences []string
}

// NewSession creates an empty, logged-out session.
func NewSession() *Session {
	return &Session{}
}

// AccessToken returns the currently held access token, or "" when logged out.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken replaces the held access token.
func (s *Session) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

// SetIdentity records the logged-in user's identity fields.
func (s *Session) SetIdentity(userID, userEmail string, preferences []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	s.userEmail = userEmail
	s.preferences = append([]string(nil), preferences...)
}

// UserID returns the logged-in user's id, or "" when logged out.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// UserEmail returns the logged-in user's email, or "" when logged out.
func (s *Session) UserEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userEmail
}

// Preferences returns a copy of the stored preference set.
func (s *Session) Preferences() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.preferences...)
}

// Reset clears all session state, returning the client to logged-out.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.userID = ""
	s.userEmail = ""
	s.preferences = nil
}
