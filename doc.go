// Package fieldpack implements a compact binary wire format for typed
// fields: variable-length integers of several widths, booleans, and
// length-prefixed byte arrays and UTF-8 strings.
//
// Integers are encoded as a sign-extending VLQ: 1-5 bytes of 7 payload
// bits each, high bit as continuation flag, with bits 5-6 of the first
// byte doubling as a sign hint. Byte arrays and strings are a VLQ length
// followed by the raw payload.
//
// Decoding operates on a shrinking byte slice passed by pointer; every
// read consumes a prefix and leaves *data pointing at the next field.
// ReadBytes returns a view into the input without copying; CloneBytes
// detaches such a view from the input buffer. FieldType provides
// runtime-tag dispatch for callers that learn a field's type from a
// schema: Read materializes an owned Value, Skip advances past the field
// without one.
//
// After any decode error the cursor position is undefined; callers must
// discard the cursor rather than resume from it.
//
// Encoding never fails. Writers follow the strconv.Append convention,
// appending to a caller-supplied buffer and returning the extended slice.
// The package does no framing: combining fields into messages, and
// deciding which FieldType a given field has, belong to the caller.
package fieldpack
