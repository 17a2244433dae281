package model

import (
	"time"
)

// Session. Authorization
type Session struct {
	// Bearer credential ; absent ⇒ unauthenticated
	Token string `json:"token,omitempty"`
	// Cached profile ; MAY be absent even when Token is present
	User *UserProfile `json:"user,omitempty"`
	// When the token was stored
	Date time.Time `json:"date,omitempty"`
}

// Authenticated reports whether the session carries a bearer token.
// Token presence is authoritative ; a stale [User] does not affect it.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
