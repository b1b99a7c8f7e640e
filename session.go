package wireauth

import (
	"crypto/subtle"
	"fmt"

	"github.com/flynn/noise"
	"github.com/google/uuid"
	"golang.org/x/crypto/curve25519"
)

// defaultCipherSuite is the Noise cipher suite this package speaks:
// Noise_XX_25519_ChaChaPoly_BLAKE2b. Cached at package level since it is
// immutable and reusable across every Session.
var defaultCipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashBLAKE2b)

// phase is the explicit state-machine position of a Session. The
// reference implementation relies on the Noise engine alone to reject
// illegal call orders; this type makes that rejection deterministic and
// gives callers a distinct InvalidState error instead of a confusing
// Noise-layer failure.
type phase int

const (
	phaseInit phase = iota
	phaseHS1Sent
	phaseHS1Received
	phaseHS2Sent
	phaseHS2Received
	phaseTransport
	phaseInvalid
)

// Session is the state machine driving one Noise_XX handshake and the
// transport-mode record framing that follows it. A Session is a
// single-owner mutable object: it must not be used concurrently from
// multiple goroutines without external synchronization (see §5 of the
// package's design notes).
type Session struct {
	id          uuid.UUID
	isInitiator bool
	phase       phase

	hs *noise.HandshakeState

	// send/recv are populated by DataTransfer and used exclusively once
	// phase is phaseTransport.
	send *noise.CipherState
	recv *noise.CipherState

	additionalData []byte
	authenticator  Authenticator
}

// NewSession constructs a Session in the Init phase for the given role.
// An initiator Session requires cfg.PeerPublicKey; its absence is
// ErrNoPeerKey.
func NewSession(cfg SessionConfig, isInitiator bool) (*Session, error) {
	if isInitiator && cfg.PeerPublicKey == nil {
		return nil, ErrNoPeerKey
	}

	var pub [KeySize]byte
	curve25519.ScalarBaseMult(&pub, &cfg.AuthenticationKey)

	noiseCfg := noise.Config{
		CipherSuite: defaultCipherSuite,
		Pattern:     noise.HandshakeXX,
		Initiator:   isInitiator,
		Prologue:    Prologue[:],
		StaticKeypair: noise.DHKey{
			Private: cfg.AuthenticationKey[:],
			Public:  pub[:],
		},
	}
	if isInitiator {
		noiseCfg.PeerStatic = cfg.PeerPublicKey[:]
	}

	hs, err := noise.NewHandshakeState(noiseCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreateError, err)
	}

	return &Session{
		id:             uuid.New(),
		isInitiator:    isInitiator,
		phase:          phaseInit,
		hs:             hs,
		additionalData: cfg.AdditionalData,
		authenticator:  cfg.Authenticator,
	}, nil
}

func (s *Session) fail() {
	s.phase = phaseInvalid
}

func (s *Session) require(role bool, want phase) error {
	if s.isInitiator != role || s.phase != want {
		s.fail()
		return ErrInvalidState
	}
	return nil
}

// ClientHandshake1 emits the first handshake message (I1): the raw Noise
// 'e' public key with the prologue byte appended. Legal only for an
// initiator Session in phase Init.
func (s *Session) ClientHandshake1() ([]byte, error) {
	if err := s.require(true, phaseInit); err != nil {
		return nil, err
	}

	msg, _, _, err := s.hs.WriteMessage(nil, nil)
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrClientHandshakeNoise1Error, err)
	}
	if len(msg) != HS1Size-prologueSize {
		s.fail()
		panic("wireauth: noise engine produced an unexpected handshake message 1 length")
	}

	out := make([]byte, HS1Size)
	copy(out, msg)
	copy(out[len(msg):], Prologue[:])

	s.phase = phaseHS1Sent
	return out, nil
}

// ClientReadHandshake1 consumes the second handshake message (I2): it
// decrypts the embedded AuthenticateMessage, extracts the responder's
// static public key, and invokes the Authenticator exactly once. Legal
// only for an initiator Session in phase HS1Sent.
func (s *Session) ClientReadHandshake1(hs2 []byte) error {
	if err := s.require(true, phaseHS1Sent); err != nil {
		return err
	}

	payload, _, _, err := s.hs.ReadMessage(nil, hs2)
	if err != nil {
		s.fail()
		return fmt.Errorf("%w: %v", ErrClientHandshakeNoise2Error, err)
	}

	ad, _, err := ParseAuthenticateMessage(payload)
	if err != nil {
		s.fail()
		return fmt.Errorf("%w: %v", ErrClientHandshakeNoise2Error, err)
	}

	var creds PeerCredentials
	creds.AdditionalData = ad
	copy(creds.PublicKey[:], s.hs.PeerStatic())

	if !s.authenticator.IsPeerValid(creds) {
		s.fail()
		return ErrClientAuthenticationError
	}

	s.phase = phaseHS2Received
	return nil
}

// ClientHandshake2 emits the third handshake message (I3). The initiator
// embeds no AuthenticateMessage in this variant of the protocol. Legal
// only for an initiator Session in phase HS2Received.
func (s *Session) ClientHandshake2() ([]byte, error) {
	if err := s.require(true, phaseHS2Received); err != nil {
		return nil, err
	}

	msg, cs1, cs2, err := s.hs.WriteMessage(nil, nil)
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrClientHandshakeNoise3Error, err)
	}
	if len(msg) != HS3Size {
		s.fail()
		panic("wireauth: noise engine produced an unexpected handshake message 3 length")
	}
	s.send, s.recv = cs1, cs2

	s.phase = phaseHS2Sent
	return msg, nil
}

// ServerReadHandshake1 consumes the first handshake message (R1). The
// trailing prologue byte is checked in constant time before the Noise
// message is touched. Legal only for a responder Session in phase Init.
func (s *Session) ServerReadHandshake1(hs1 []byte) error {
	if err := s.require(false, phaseInit); err != nil {
		return err
	}
	if len(hs1) != HS1Size {
		s.fail()
		return ErrServerHandshakeNoise1Error
	}

	got := hs1[HS1Size-prologueSize:]
	if subtle.ConstantTimeCompare(got, Prologue[:]) != 1 {
		s.fail()
		return ErrServerPrologueMismatch
	}

	_, _, _, err := s.hs.ReadMessage(nil, hs1[:HS1Size-prologueSize])
	if err != nil {
		s.fail()
		return fmt.Errorf("%w: %v", ErrServerHandshakeNoise1Error, err)
	}

	s.phase = phaseHS1Received
	return nil
}

// ServerHandshake1 emits the second handshake message (R2): it embeds an
// AuthenticateMessage carrying the Session's configured additional data
// and the current Unix timestamp. Legal only for a responder Session in
// phase HS1Received.
func (s *Session) ServerHandshake1() ([]byte, error) {
	if err := s.require(false, phaseHS1Received); err != nil {
		return nil, err
	}

	auth, err := SerializeAuthenticateMessage(s.additionalData, currentUnixTime())
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrServerHandshakeNoise2Error, err)
	}

	msg, _, _, err := s.hs.WriteMessage(nil, auth)
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrServerHandshakeNoise2Error, err)
	}
	if len(msg) != HS2Size {
		s.fail()
		panic("wireauth: noise engine produced an unexpected handshake message 2 length")
	}

	s.phase = phaseHS1Sent
	return msg, nil
}

// ServerReadHandshake2 consumes the third handshake message (R3),
// authenticates the initiator's static public key, and invokes the
// Authenticator exactly once. Legal only for a responder Session in
// phase HS1Sent.
func (s *Session) ServerReadHandshake2(hs3 []byte) error {
	if err := s.require(false, phaseHS1Sent); err != nil {
		return err
	}

	_, cs1, cs2, err := s.hs.ReadMessage(nil, hs3)
	if err != nil {
		s.fail()
		return fmt.Errorf("%w: %v", ErrServerHandshakeNoise3Error, err)
	}

	var creds PeerCredentials
	copy(creds.PublicKey[:], s.hs.PeerStatic())

	if !s.authenticator.IsPeerValid(creds) {
		s.fail()
		return ErrServerAuthenticationError
	}
	s.send, s.recv = cs2, cs1

	s.phase = phaseHS2Received
	return nil
}

// DataTransfer transitions the Session into transport mode. Afterward
// only EncryptMessage/DecryptMessageHeader/DecryptMessage are legal. Legal
// only once the handshake's final step has completed for the Session's
// role: HS2Sent for an initiator, HS2Received for a responder.
func (s *Session) DataTransfer() error {
	wantPhase := phaseHS2Received
	if s.isInitiator {
		wantPhase = phaseHS2Sent
	}
	if s.phase != wantPhase {
		s.fail()
		return ErrInvalidState
	}
	if s.send == nil || s.recv == nil {
		s.fail()
		return ErrDataTransferFail
	}

	s.hs = nil
	s.phase = phaseTransport
	return nil
}
