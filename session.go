package rojo

import "github.com/google/uuid"

// SessionID identifies one serve session. Clients compare it across
// requests to detect that the server restarted and their instance refs are
// stale.
type SessionID uuid.UUID

func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

func (s SessionID) String() string {
	return uuid.UUID(s).String()
}

func (s SessionID) MarshalText() ([]byte, error) {
	return uuid.UUID(s).MarshalText()
}

func (s *SessionID) UnmarshalText(text []byte) error {
	return (*uuid.UUID)(s).UnmarshalText(text)
}
