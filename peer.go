package wireauth

// PeerCredentials is the pair of remote additional data and remote static
// public key produced once per successful handshake half and passed to
// the Authenticator.
type PeerCredentials struct {
	AdditionalData []byte
	PublicKey      [KeySize]byte
}

// Authenticator is the caller-supplied peer-validation capability. It is
// invoked exactly once per Session, on the side that has just learned the
// remote peer's credentials, and must be deterministic for the duration
// of the handshake.
type Authenticator interface {
	IsPeerValid(creds PeerCredentials) bool
}

// AuthenticatorFunc adapts a plain function to the Authenticator
// interface, the way aznet.Option adapts a function to a functional
// option.
type AuthenticatorFunc func(creds PeerCredentials) bool

// IsPeerValid calls f(creds).
func (f AuthenticatorFunc) IsPeerValid(creds PeerCredentials) bool {
	return f(creds)
}

// PermitAll is an Authenticator that accepts every peer. Useful for
// tests and for deployments where peer identity is gated elsewhere.
var PermitAll Authenticator = AuthenticatorFunc(func(PeerCredentials) bool { return true })
