package models

import "time"

// Session is the boundary value type for an authenticated guest. It is built
// from whatever the external session provider returns so nothing else in the
// codebase depends on the provider's own shapes.
type Session struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session token is past its lifetime.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
