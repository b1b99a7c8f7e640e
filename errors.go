package wireauth

import "errors"

var (
	// ErrNoPeerKey is returned when a Session is constructed as an
	// initiator without a peer public key.
	ErrNoPeerKey = errors.New("wireauth: initiator requires a peer public key")
	// ErrInvalidNoiseSpec is returned when the Noise parameter string
	// cannot be parsed by the underlying Noise engine.
	ErrInvalidNoiseSpec = errors.New("wireauth: invalid noise protocol spec")
	// ErrSessionCreateError is returned when the Noise handshake state
	// cannot be built.
	ErrSessionCreateError = errors.New("wireauth: failed to create noise session")
)

var (
	// ErrClientHandshakeNoise1Error is returned when the initiator fails
	// to produce the first handshake message.
	ErrClientHandshakeNoise1Error = errors.New("wireauth: client failed to prepare handshake message 1")
	// ErrClientHandshakeNoise2Error is returned when the initiator fails
	// to process the second handshake message.
	ErrClientHandshakeNoise2Error = errors.New("wireauth: client failed to read handshake message 2")
	// ErrClientHandshakeNoise3Error is returned when the initiator fails
	// to produce the third handshake message.
	ErrClientHandshakeNoise3Error = errors.New("wireauth: client failed to prepare handshake message 3")
	// ErrClientAuthenticationError is returned when the initiator's
	// authenticator rejects the responder's credentials.
	ErrClientAuthenticationError = errors.New("wireauth: client failed to authenticate peer")
)

var (
	// ErrServerPrologueMismatch is returned when the responder receives a
	// handshake message 1 whose trailing byte is not the expected
	// prologue.
	ErrServerPrologueMismatch = errors.New("wireauth: server received wrong prologue from client")
	// ErrServerHandshakeNoise1Error is returned when the responder fails
	// to process the first handshake message.
	ErrServerHandshakeNoise1Error = errors.New("wireauth: server failed to read handshake message 1")
	// ErrServerHandshakeNoise2Error is returned when the responder fails
	// to produce the second handshake message.
	ErrServerHandshakeNoise2Error = errors.New("wireauth: server failed to prepare handshake message 2")
	// ErrServerHandshakeNoise3Error is returned when the responder fails
	// to process the third handshake message.
	ErrServerHandshakeNoise3Error = errors.New("wireauth: server failed to read handshake message 3")
	// ErrServerAuthenticationError is returned when the responder's
	// authenticator rejects the initiator's credentials.
	ErrServerAuthenticationError = errors.New("wireauth: server failed to authenticate peer")
)

// ErrDataTransferFail is returned when the Noise engine cannot transition
// into transport mode.
var ErrDataTransferFail = errors.New("wireauth: failed to switch to data transfer mode")

var (
	// ErrInvalidMessageSize is returned by EncryptMessage when the
	// ciphertext would exceed RecordMax.
	ErrInvalidMessageSize = errors.New("wireauth: invalid message size")
	// ErrEncryptFail is returned when a record cannot be encrypted.
	ErrEncryptFail = errors.New("wireauth: failed to encrypt record")
	// ErrDecryptFail is returned when a record cannot be decrypted or
	// authenticated.
	ErrDecryptFail = errors.New("wireauth: failed to decrypt record")
)

// ErrInvalidState is returned by any entry point invoked outside of its
// legal phase (each Session method's documentation names it). Once
// returned, the Session is permanently Invalid and every subsequent call
// returns ErrInvalidState.
var ErrInvalidState = errors.New("wireauth: invalid session state")

// ErrInvalidAuthPayload is returned by SerializeAuthenticateMessage when additional data
// exceeds MaxAdditionalData, and by ParseAuthenticateMessage when the
// input is not exactly AuthMessageSize bytes.
var ErrInvalidAuthPayload = errors.New("wireauth: invalid authenticate message")
