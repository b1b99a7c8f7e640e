package wireauth

import "github.com/google/uuid"

// ID returns the Session's correlation handle, minted once at
// construction. It is never fed into the Noise state or the wire format;
// it exists purely so callers can tie log lines and test assertions back
// to a specific Session.
func (s *Session) ID() uuid.UUID {
	return s.id
}
