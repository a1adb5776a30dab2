package repository

import "context"

// Data is what a session remembers about its holder.
type Data struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// SessionStore keeps sessions keyed by an opaque id.
type SessionStore interface {
	Create(ctx context.Context, d Data) (string, error)
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*Data, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
