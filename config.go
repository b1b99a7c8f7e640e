package wireauth

// NoiseParams is the exact Noise protocol string this package speaks.
// Any substitution breaks wire compatibility with peers built against
// this spec.
const NoiseParams = "Noise_XX_25519_ChaChaPoly_BLAKE2b"

// KeySize is the size in bytes of an X25519 public or private key.
const KeySize = 32

// MacSize is the size in bytes of the ChaChaPoly authentication tag.
const MacSize = 16

// MaxAdditionalData is the maximum length of the additional-data field
// carried inside an AuthenticateMessage.
const MaxAdditionalData = 255

// AuthMessageSize is the fixed on-wire size of a serialized
// AuthenticateMessage: 1-byte length, up to MaxAdditionalData bytes of
// additional data, zero padding out to MaxAdditionalData, and a 4-byte
// big-endian timestamp.
const AuthMessageSize = 1 + MaxAdditionalData + 4

// prologueSize is the size in bytes of the single-byte prologue appended
// to the wire form of the first handshake message.
const prologueSize = 1

// HS1Size is the wire size of the first (initiator→responder) handshake
// message: the raw Noise 'e' public key plus the appended prologue byte.
const HS1Size = prologueSize + KeySize // 33

// HS2Size is the wire size of the second (responder→initiator) handshake
// message: 'e' (plain) || encrypted 's' || encrypted AuthenticateMessage.
// See SPEC_FULL.md for why this is 356 and not the inconsistent literal
// 101 that appears in the reference implementation.
const HS2Size = KeySize + (KeySize + MacSize) + (AuthMessageSize + MacSize) // 356

// HS3Size is the wire size of the third (initiator→responder) handshake
// message: encrypted 's' || encrypted empty payload (the initiator embeds
// no AuthenticateMessage).
const HS3Size = (KeySize + MacSize) + (0 + MacSize) // 64

// RecordHeaderSize is the wire size of an encrypted record length header.
const RecordHeaderSize = MacSize + 4 // 20

// RecordMax is the inclusive maximum value of MacSize+len(payload) for a
// single transport record.
const RecordMax = 65535

// Prologue is the single byte mixed into the Noise handshake hash and
// appended to the wire form of the first handshake message.
var Prologue = [prologueSize]byte{0x00}

// SessionConfig is the input to NewSession.
type SessionConfig struct {
	// Authenticator validates the remote peer's credentials once per
	// session, on the side that has just learned them.
	Authenticator Authenticator
	// AuthenticationKey is the local static X25519 private key.
	AuthenticationKey [KeySize]byte
	// PeerPublicKey is the remote static X25519 public key. Required iff
	// the Session is constructed as an initiator.
	PeerPublicKey *[KeySize]byte
	// AdditionalData is the local auth payload surfaced to the remote
	// peer's Authenticator. Must be at most MaxAdditionalData bytes.
	AdditionalData []byte
}
