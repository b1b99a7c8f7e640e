package wireauth

import (
	"encoding/binary"
	"fmt"
)

// EncryptMessage encrypts one transport-mode record. It emits two
// back-to-back AEAD ciphertexts — an encrypted 4-byte big-endian length
// header (RecordHeaderSize bytes) followed by the encrypted payload — each
// consuming one nonce increment on the sending CipherState. Legal only in
// phaseTransport.
func (s *Session) EncryptMessage(payload []byte) ([]byte, error) {
	if s.phase != phaseTransport {
		s.fail()
		return nil, ErrInvalidState
	}

	l := MacSize + len(payload)
	if l > RecordMax {
		s.fail()
		return nil, ErrInvalidMessageSize
	}

	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(l))

	header, err := s.send.Encrypt(nil, nil, lenBuf[:])
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrEncryptFail, err)
	}

	body, err := s.send.Encrypt(nil, nil, payload)
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrEncryptFail, err)
	}

	out := make([]byte, 0, len(header)+len(body))
	out = append(out, header...)
	out = append(out, body...)
	return out, nil
}

// DecryptMessageHeader decrypts a record's RecordHeaderSize-byte header
// and returns L, the number of ciphertext bytes (payload + MacSize) the
// caller must read next and pass to DecryptMessage. Legal only in
// phaseTransport.
func (s *Session) DecryptMessageHeader(header []byte) (uint32, error) {
	if s.phase != phaseTransport {
		s.fail()
		return 0, ErrInvalidState
	}
	if len(header) != RecordHeaderSize {
		s.fail()
		return 0, ErrDecryptFail
	}

	plain, err := s.recv.Decrypt(nil, nil, header)
	if err != nil {
		s.fail()
		return 0, fmt.Errorf("%w: %v", ErrDecryptFail, err)
	}

	return binary.BigEndian.Uint32(plain), nil
}

// DecryptMessage decrypts the payload ciphertext named by the L returned
// from the immediately preceding DecryptMessageHeader call. Legal only in
// phaseTransport.
func (s *Session) DecryptMessage(payloadCiphertext []byte) ([]byte, error) {
	if s.phase != phaseTransport {
		s.fail()
		return nil, ErrInvalidState
	}

	plain, err := s.recv.Decrypt(nil, nil, payloadCiphertext)
	if err != nil {
		s.fail()
		return nil, fmt.Errorf("%w: %v", ErrDecryptFail, err)
	}
	return plain, nil
}
