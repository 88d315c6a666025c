package entities

import "time"

type Session struct {
	ID        string
	AccountID string
	Role      AccountRole
	Token     string
	ExpiresAt time.Time
}

// Caller - личность вызывающего, восстановленная из токена сессии.
type Caller struct {
	AccountID string
	Role      AccountRole
	SessionID string
}

type Authenticated struct {
	Account Account
	Session Session
}
