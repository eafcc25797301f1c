package types

import "time"

// Session records the signed-in mail account on this device.
type Session struct {
	Email     UserID `json:"email"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return now.Unix() > s.ExpiresAt
}

// ExpiresAtTime returns the expiry as a time.Time.
func (s Session) ExpiresAtTime() time.Time { return time.Unix(s.ExpiresAt, 0) }
