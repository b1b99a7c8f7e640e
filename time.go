package wireauth

import "time"

// currentUnixTime returns seconds since the Unix epoch, truncated to 32
// bits. See SPEC_FULL.md's "Timestamp semantics" section: this is the
// wire field's clear semantic meaning, not the near-always-zero duration
// the reference implementation computes. The core never validates this
// value on read; that is the Authenticator's responsibility.
func currentUnixTime() uint32 {
	return uint32(time.Now().Unix())
}
