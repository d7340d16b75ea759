package fieldpack

// appendVLQ encodes sv's two's-complement bits as a variable-length
// quantity. A chunk is emitted only when the value does not already fit
// in the signed-plus-one-extra-bit range of the chunks below it, so each
// value takes the minimal 1-5 bytes. The least significant byte is
// always emitted, with the continuation bit clear.
func appendVLQ(dst []byte, v uint32) []byte {
	sv := int32(v)
	if sv < -(1<<26) || sv >= 3<<26 {
		dst = append(dst, byte(sv>>28)&0x7F|0x80)
	}
	if sv < -(1<<19) || sv >= 3<<19 {
		dst = append(dst, byte(sv>>21)&0x7F|0x80)
	}
	if sv < -(1<<12) || sv >= 3<<12 {
		dst = append(dst, byte(sv>>14)&0x7F|0x80)
	}
	if sv < -(1<<5) || sv >= 3<<5 {
		dst = append(dst, byte(sv>>7)&0x7F|0x80)
	}
	return append(dst, byte(sv)&0x7F)
}

// AppendUint32 appends the encoding of v to dst and returns the
// extended buffer.
func AppendUint32(dst []byte, v uint32) []byte {
	return appendVLQ(dst, v)
}

// AppendInt32 appends the encoding of v to dst and returns the extended
// buffer.
func AppendInt32(dst []byte, v int32) []byte {
	return appendVLQ(dst, uint32(v))
}

// AppendUint16 appends the encoding of v to dst and returns the
// extended buffer.
func AppendUint16(dst []byte, v uint16) []byte {
	return appendVLQ(dst, uint32(v))
}

// AppendInt16 appends the encoding of v to dst and returns the extended
// buffer. The value is sign-extended so that negative values keep their
// compact small-magnitude encoding.
func AppendInt16(dst []byte, v int16) []byte {
	return appendVLQ(dst, uint32(int32(v)))
}

// AppendUint8 appends the encoding of v to dst and returns the extended
// buffer.
func AppendUint8(dst []byte, v uint8) []byte {
	return appendVLQ(dst, uint32(v))
}

// AppendBool appends the encoding of v to dst and returns the extended
// buffer. True encodes as 1, false as 0, through the uint8 wire path.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return appendVLQ(dst, 1)
	}
	return appendVLQ(dst, 0)
}

// AppendBytes appends the length-prefixed encoding of b to dst and
// returns the extended buffer.
func AppendBytes(dst []byte, b []byte) []byte {
	dst = appendVLQ(dst, uint32(len(b)))
	return append(dst, b...)
}

// AppendString appends the length-prefixed UTF-8 encoding of s to dst
// and returns the extended buffer.
func AppendString(dst []byte, s string) []byte {
	dst = appendVLQ(dst, uint32(len(s)))
	return append(dst, s...)
}
