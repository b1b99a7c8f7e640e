// Command sessiondemo drives one full initiator/responder handshake and a
// single record round trip by passing messages directly between two
// in-process Sessions, logging session construction, handshake completion
// and the decrypted record. It exists to exercise the
// wireauth package the way Atsika-aznet's examples/echo exercises aznet,
// not as a production tool.
package main

import (
	"crypto/rand"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/curve25519"

	"github.com/nynex/wireauth"
)

func must(log zerolog.Logger, err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

func genKey() [wireauth.KeySize]byte {
	var k [wireauth.KeySize]byte
	if _, err := io.ReadFull(rand.Reader, k[:]); err != nil {
		panic(err)
	}
	return k
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	serverKey := genKey()
	clientKey := genKey()
	var serverPub [wireauth.KeySize]byte
	curve25519.ScalarBaseMult(&serverPub, &serverKey)

	server, err := wireauth.NewSession(wireauth.SessionConfig{
		Authenticator:     wireauth.PermitAll,
		AuthenticationKey: serverKey,
		AdditionalData:    []byte("provider-0"),
	}, false)
	must(log, err, "construct responder session")
	log.Info().Str("session", server.ID().String()).Msg("responder session constructed")

	client, err := wireauth.NewSession(wireauth.SessionConfig{
		Authenticator:     wireauth.PermitAll,
		AuthenticationKey: clientKey,
		PeerPublicKey:     &serverPub,
		AdditionalData:    []byte("client-0"),
	}, true)
	must(log, err, "construct initiator session")
	log.Info().Str("session", client.ID().String()).Msg("initiator session constructed")

	hs1, err := client.ClientHandshake1()
	must(log, err, "client handshake 1")
	must(log, server.ServerReadHandshake1(hs1), "server read handshake 1")

	hs2, err := server.ServerHandshake1()
	must(log, err, "server handshake 1")
	must(log, client.ClientReadHandshake1(hs2), "client read handshake 1")

	hs3, err := client.ClientHandshake2()
	must(log, err, "client handshake 2")
	must(log, server.ServerReadHandshake2(hs3), "server read handshake 2")

	must(log, client.DataTransfer(), "client data transfer")
	must(log, server.DataTransfer(), "server data transfer")
	log.Info().Msg("handshake complete, transport mode engaged")

	frame, err := server.EncryptMessage([]byte("hello"))
	must(log, err, "encrypt message")

	l, err := client.DecryptMessageHeader(frame[:wireauth.RecordHeaderSize])
	must(log, err, "decrypt message header")

	plain, err := client.DecryptMessage(frame[wireauth.RecordHeaderSize : wireauth.RecordHeaderSize+int(l)])
	must(log, err, "decrypt message")
	log.Info().Str("plaintext", string(plain)).Msg("record round trip complete")
}
