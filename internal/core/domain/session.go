package domain

import "time"

// Session is a server-side login session. The client holds only the opaque
// token; the identity snapshot lives in the session table.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
