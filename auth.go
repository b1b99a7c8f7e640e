package wireauth

import "encoding/binary"

// SerializeAuthenticateMessage encodes ad and t into the fixed
// AuthMessageSize-byte wire form: a 1-byte length, the additional-data
// bytes, zero padding out to MaxAdditionalData, and a 4-byte big-endian
// timestamp.
func SerializeAuthenticateMessage(ad []byte, t uint32) ([]byte, error) {
	if len(ad) > MaxAdditionalData {
		return nil, ErrInvalidAuthPayload
	}

	out := make([]byte, AuthMessageSize)
	out[0] = byte(len(ad))
	copy(out[1:], ad)
	binary.BigEndian.PutUint32(out[1+MaxAdditionalData:], t)
	return out, nil
}

// ParseAuthenticateMessage decodes a AuthMessageSize-byte wire record
// produced by SerializeAuthenticateMessage, ignoring the padding bytes.
func ParseAuthenticateMessage(buf []byte) (ad []byte, t uint32, err error) {
	if len(buf) != AuthMessageSize {
		return nil, 0, ErrInvalidAuthPayload
	}

	l := int(buf[0])
	ad = make([]byte, l)
	copy(ad, buf[1:1+l])
	t = binary.BigEndian.Uint32(buf[1+MaxAdditionalData:])
	return ad, t, nil
}
