package fieldpack

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnexpectedEOF is returned when a decode operation needs more bytes
// than remain in the cursor.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// InvalidUTF8Error is returned by ReadString when a string field's
// payload is not valid UTF-8. Offset is the position of the first
// invalid byte within the payload.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid utf8 sequence at payload byte %d", e.Offset)
}

// nextByte consumes and returns the first byte of the cursor.
func nextByte(data *[]byte) (byte, error) {
	if len(*data) == 0 {
		return 0, ErrUnexpectedEOF
	}
	b := (*data)[0]
	*data = (*data)[1:]
	return b, nil
}

// parseVLQ decodes a variable-length quantity from the cursor. The low 7
// bits of each byte carry payload, the high bit marks continuation. If
// bits 5-6 of the first byte are both set the value is sign-extended
// once, before any continuation bytes are folded in.
func parseVLQ(data *[]byte) (uint32, error) {
	c, err := nextByte(data)
	if err != nil {
		return 0, err
	}
	v := uint32(c) & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	for c&0x80 != 0 {
		c, err = nextByte(data)
		if err != nil {
			return 0, err
		}
		v = v<<7 | uint32(c)&0x7F
	}
	return v, nil
}

// skipVLQ consumes a variable-length quantity without keeping its value.
func skipVLQ(data *[]byte) error {
	_, err := parseVLQ(data)
	return err
}

// ReadUint32 decodes a uint32 field and advances the cursor.
func ReadUint32(data *[]byte) (uint32, error) {
	return parseVLQ(data)
}

// ReadInt32 decodes an int32 field and advances the cursor.
func ReadInt32(data *[]byte) (int32, error) {
	v, err := parseVLQ(data)
	return int32(v), err
}

// ReadUint16 decodes a uint16 field and advances the cursor. The wire
// value is truncated to 16 bits; a well-formed stream only carries
// in-range values for this field type.
func ReadUint16(data *[]byte) (uint16, error) {
	v, err := parseVLQ(data)
	return uint16(v), err
}

// ReadInt16 decodes an int16 field and advances the cursor.
func ReadInt16(data *[]byte) (int16, error) {
	v, err := parseVLQ(data)
	return int16(v), err
}

// ReadUint8 decodes a uint8 field and advances the cursor.
func ReadUint8(data *[]byte) (uint8, error) {
	v, err := parseVLQ(data)
	return uint8(v), err
}

// ReadBool decodes a boolean field and advances the cursor. Any nonzero
// wire value decodes as true.
func ReadBool(data *[]byte) (bool, error) {
	v, err := parseVLQ(data)
	return v != 0, err
}

// SkipUint32 consumes a uint32 field without decoding it.
func SkipUint32(data *[]byte) error { return skipVLQ(data) }

// SkipInt32 consumes an int32 field without decoding it.
func SkipInt32(data *[]byte) error { return skipVLQ(data) }

// SkipUint16 consumes a uint16 field without decoding it.
func SkipUint16(data *[]byte) error { return skipVLQ(data) }

// SkipInt16 consumes an int16 field without decoding it.
func SkipInt16(data *[]byte) error { return skipVLQ(data) }

// SkipUint8 consumes a uint8 field without decoding it.
func SkipUint8(data *[]byte) error { return skipVLQ(data) }

// SkipBool consumes a boolean field without decoding it.
func SkipBool(data *[]byte) error { return skipVLQ(data) }

// ReadBytes decodes a byte array field and advances the cursor. The
// returned slice is a view into the input buffer, valid only as long as
// the buffer is; use CloneBytes to detach it.
func ReadBytes(data *[]byte) ([]byte, error) {
	n, err := parseVLQ(data)
	if err != nil {
		return nil, err
	}
	if uint64(len(*data)) < uint64(n) {
		return nil, ErrUnexpectedEOF
	}
	b := (*data)[:n]
	*data = (*data)[n:]
	return b, nil
}

// ReadString decodes a string field and advances the cursor. The payload
// must be valid UTF-8; on failure the cursor position is undefined.
func ReadString(data *[]byte) (string, error) {
	b, err := ReadBytes(data)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &InvalidUTF8Error{Offset: invalidUTF8Offset(b)}
	}
	return string(b), nil
}

// SkipBytes consumes a byte array field without decoding it.
func SkipBytes(data *[]byte) error {
	n, err := parseVLQ(data)
	if err != nil {
		return err
	}
	if uint64(len(*data)) < uint64(n) {
		return ErrUnexpectedEOF
	}
	*data = (*data)[n:]
	return nil
}

// SkipString consumes a string field without decoding it. The payload is
// not inspected, so invalid UTF-8 is not detected here.
func SkipString(data *[]byte) error { return SkipBytes(data) }

// CloneBytes copies a decoded byte view, detaching it from the input
// buffer's lifetime.
func CloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

// invalidUTF8Offset returns the index of the first invalid byte in b.
// Only called on payloads that already failed utf8.Valid.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
