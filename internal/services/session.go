package services

import (
	"bankist/internal/models"
)

// Session tracks the single current account and the presentation-only
// sort flag. At most one account is logged in at a time; the zero value
// is the logged-out state.
type Session struct {
	current *models.Account
	sorted  bool
}

// NewSession creates a logged-out session.
func NewSession() *Session {
	return &Session{}
}

// Set logs an account in. The sort flag resets on every login, matching
// the fresh screen a new user sees.
func (s *Session) Set(account *models.Account) {
	s.current = account
	s.sorted = false
}

// Clear logs the current account out.
func (s *Session) Clear() {
	s.current = nil
	s.sorted = false
}

// Account returns the logged-in account, or nil when logged out.
func (s *Session) Account() *models.Account {
	return s.current
}

// IsActive reports whether an account is logged in.
func (s *Session) IsActive() bool {
	return s.current != nil
}

// ToggleSort flips the sort flag and returns the new state.
func (s *Session) ToggleSort() bool {
	s.sorted = !s.sorted
	return s.sorted
}

// Sorted reports the current sort flag.
func (s *Session) Sorted() bool {
	return s.sorted
}
