package models

import (
	"time"
)

// RefreshToken lives in Redis (keyed by token string, TTL = remaining
// lifetime), not in Postgres.
type RefreshToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
