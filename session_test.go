package wireauth

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func genPrivateKey(t *testing.T) [KeySize]byte {
	t.Helper()
	var k [KeySize]byte
	_, err := io.ReadFull(rand.Reader, k[:])
	require.NoError(t, err)
	return k
}

func derivePublicKey(priv [KeySize]byte) [KeySize]byte {
	var pub [KeySize]byte
	curve25519.ScalarBaseMult(&pub, &priv)
	return pub
}

// sessionPair builds a not-yet-shaken-hands client/server pair with the
// given authenticators and additional data.
func sessionPair(t *testing.T, clientAuth, serverAuth Authenticator, clientAD, serverAD []byte) (client, server *Session) {
	t.Helper()

	serverKey := genPrivateKey(t)
	serverPub := derivePublicKey(serverKey)
	clientKey := genPrivateKey(t)

	server, err := NewSession(SessionConfig{
		Authenticator:     serverAuth,
		AuthenticationKey: serverKey,
		AdditionalData:    serverAD,
	}, false)
	require.NoError(t, err)

	client, err = NewSession(SessionConfig{
		Authenticator:     clientAuth,
		AuthenticationKey: clientKey,
		PeerPublicKey:     &serverPub,
		AdditionalData:    clientAD,
	}, true)
	require.NoError(t, err)

	return client, server
}

// runHandshake drives the full eight-call handshake sequence to completion,
// failing the test on the first unexpected error.
func runHandshake(t *testing.T, client, server *Session) {
	t.Helper()

	hs1, err := client.ClientHandshake1()
	require.NoError(t, err)
	require.NoError(t, server.ServerReadHandshake1(hs1))

	hs2, err := server.ServerHandshake1()
	require.NoError(t, err)
	require.NoError(t, client.ClientReadHandshake1(hs2))

	hs3, err := client.ClientHandshake2()
	require.NoError(t, err)
	require.NoError(t, server.ServerReadHandshake2(hs3))

	require.NoError(t, client.DataTransfer())
	require.NoError(t, server.DataTransfer())
}

func TestHandshakeAndRecordRoundTrip(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, []byte("client-0"), []byte("provider-0"))
	runHandshake(t, client, server)

	frame, err := server.EncryptMessage([]byte("hello provider"))
	require.NoError(t, err)

	l, err := client.DecryptMessageHeader(frame[:RecordHeaderSize])
	require.NoError(t, err)

	plain, err := client.DecryptMessage(frame[RecordHeaderSize : RecordHeaderSize+int(l)])
	require.NoError(t, err)
	require.Equal(t, "hello provider", string(plain))

	reply, err := client.EncryptMessage([]byte("ack"))
	require.NoError(t, err)

	l2, err := server.DecryptMessageHeader(reply[:RecordHeaderSize])
	require.NoError(t, err)
	plain2, err := server.DecryptMessage(reply[RecordHeaderSize : RecordHeaderSize+int(l2)])
	require.NoError(t, err)
	require.Equal(t, "ack", string(plain2))
}

func TestClientRejectsPeerCredentials(t *testing.T) {
	reject := AuthenticatorFunc(func(PeerCredentials) bool { return false })
	client, server := sessionPair(t, reject, PermitAll, nil, []byte("provider-0"))

	hs1, err := client.ClientHandshake1()
	require.NoError(t, err)
	require.NoError(t, server.ServerReadHandshake1(hs1))

	hs2, err := server.ServerHandshake1()
	require.NoError(t, err)

	err = client.ClientReadHandshake1(hs2)
	require.ErrorIs(t, err, ErrClientAuthenticationError)

	// The session is now permanently invalid.
	_, err = client.ClientHandshake2()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestServerRejectsPeerCredentials(t *testing.T) {
	reject := AuthenticatorFunc(func(PeerCredentials) bool { return false })
	client, server := sessionPair(t, PermitAll, reject, nil, nil)

	hs1, err := client.ClientHandshake1()
	require.NoError(t, err)
	require.NoError(t, server.ServerReadHandshake1(hs1))

	hs2, err := server.ServerHandshake1()
	require.NoError(t, err)
	require.NoError(t, client.ClientReadHandshake1(hs2))

	hs3, err := client.ClientHandshake2()
	require.NoError(t, err)

	err = server.ServerReadHandshake2(hs3)
	require.ErrorIs(t, err, ErrServerAuthenticationError)

	err = server.DataTransfer()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestServerRejectsWrongPrologue(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, nil, nil)

	hs1, err := client.ClientHandshake1()
	require.NoError(t, err)
	hs1[len(hs1)-1] ^= 0xFF

	err = server.ServerReadHandshake1(hs1)
	require.ErrorIs(t, err, ErrServerPrologueMismatch)
}

func TestServerRejectsTruncatedHandshake1(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, nil, nil)

	hs1, err := client.ClientHandshake1()
	require.NoError(t, err)

	err = server.ServerReadHandshake1(hs1[:len(hs1)-1])
	require.ErrorIs(t, err, ErrServerHandshakeNoise1Error)
}

func TestCallsOutOfOrderAreInvalidState(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, nil, nil)

	// Server cannot emit HS2 before it has read HS1.
	_, err := server.ServerHandshake1()
	require.ErrorIs(t, err, ErrInvalidState)

	// Client cannot read HS2 before sending HS1.
	err = client.ClientReadHandshake1(make([]byte, HS2Size))
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestDataTransferBeforeHandshakeCompletes(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, nil, nil)

	err := client.DataTransfer()
	require.ErrorIs(t, err, ErrInvalidState)

	err = server.DataTransfer()
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestNewSessionInitiatorRequiresPeerKey(t *testing.T) {
	key := genPrivateKey(t)
	_, err := NewSession(SessionConfig{
		Authenticator:     PermitAll,
		AuthenticationKey: key,
	}, true)
	require.ErrorIs(t, err, ErrNoPeerKey)
}

func TestSessionIDIsStableAndUnique(t *testing.T) {
	client, server := sessionPair(t, PermitAll, PermitAll, nil, nil)
	require.NotEqual(t, client.ID(), server.ID())
	require.Equal(t, client.ID(), client.ID())
}
