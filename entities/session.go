package entities

import "time"

// Session backs the SQL session store. Redis-backed deployments never touch this table.
type Session struct {
	SessionID string    `gorm:"primaryKey;size:36" json:"session_id"`
	Username  string    `json:"username"`
	Admin     bool      `json:"admin"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
