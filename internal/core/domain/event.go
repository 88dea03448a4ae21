package domain

import "time"

// Topics for authentication state changes, published on the user events exchange.
const (
	TopicUserRegistered = "user.registered"
	TopicUserLoggedIn   = "user.loggedin"
)

// AuthEventKind discriminates the authentication state change an event carries.
type AuthEventKind string

const (
	EventRegistered AuthEventKind = "registered"
	EventLoggedIn   AuthEventKind = "loggedin"
)

// AuthEvent is the transient notification emitted after a registration or
// login commits. It is handed to the publisher and never stored here.
type AuthEvent struct {
	Kind     AuthEventKind
	UserID   string
	Email    string
	Username string // empty for login events
	Time     time.Time
}

// Topic returns the routing topic for the event kind.
func (e AuthEvent) Topic() string {
	if e.Kind == EventRegistered {
		return TopicUserRegistered
	}
	return TopicUserLoggedIn
}

// Payload renders the wire payload. Login events omit the username field.
func (e AuthEvent) Payload() map[string]string {
	p := map[string]string{
		"id":    e.UserID,
		"email": e.Email,
		"time":  e.Time.UTC().Format(time.RFC3339),
	}
	if e.Kind == EventRegistered {
		p["username"] = e.Username
	}
	return p
}
