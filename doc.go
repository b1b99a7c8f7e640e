// Package wireauth implements the authenticated Noise_XX handshake and
// length-framed transport used to establish a mutually authenticated,
// confidential streaming session between two endpoints — typically a
// mix-network client and its provider.
//
// The package owns three things: the AuthenticateMessage codec embedded in
// the second handshake message, the Session state machine that drives the
// three Noise handshake messages and the transition into transport mode,
// and the two-ciphertext record framing used once transport mode is
// reached. Peer policy (the Authenticator), static key management, and the
// transport connection itself are supplied by the caller.
package wireauth
