package fieldpack

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzInt32RoundTrip(f *testing.F) {
	seeds := []int32{0, 1, -1, 63, -64, 95, 96, 8192, -8193, 1048576, 2147483647, -2147483648}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, v int32) {
		enc := AppendInt32(nil, v)
		if len(enc) < 1 || len(enc) > 5 {
			t.Fatalf("encoding of %d has %d bytes", v, len(enc))
		}

		cur := enc
		got, err := ReadInt32(&cur)
		if err != nil {
			t.Fatalf("decoding %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %d yielded %d (wire %x)", v, got, enc)
		}
		if len(cur) != 0 {
			t.Errorf("decoding %d left %d bytes", v, len(cur))
		}
	})
}

func FuzzFieldDispatch(f *testing.F) {
	f.Add([]byte{0x00}, uint8(0))
	f.Add([]byte{0x80, 0x60}, uint8(1))
	f.Add([]byte{0x02, 0xFF, 0xFE}, uint8(6))
	f.Add(AppendString(nil, "héllo"), uint8(5))

	f.Fuzz(func(t *testing.T, data []byte, tag uint8) {
		ft := FieldType(tag % 7)

		readCur := data
		v, readErr := ft.Read(&readCur)

		skipCur := data
		skipErr := ft.Skip(&skipCur)

		// Skip must succeed whenever read does, stopping at the same
		// position. The reverse holds except for strings, where read
		// additionally validates UTF-8.
		if readErr == nil {
			if skipErr != nil {
				t.Fatalf("%s: read succeeded but skip failed: %v", ft, skipErr)
			}
			if len(readCur) != len(skipCur) {
				t.Fatalf("%s: read left %d bytes, skip left %d", ft, len(readCur), len(skipCur))
			}

			// Re-encoding the decoded value and decoding again must be
			// stable even when the original encoding was non-minimal.
			wire := v.Append(nil)
			cur := wire
			again, err := ft.Read(&cur)
			if err != nil {
				t.Fatalf("%s: re-decoding %x: %v", ft, wire, err)
			}
			if !bytes.Equal(again.Append(nil), wire) {
				t.Errorf("%s: re-encoding is not a fixed point", ft)
			}
			return
		}

		var utf8Err *InvalidUTF8Error
		if !errors.Is(readErr, ErrUnexpectedEOF) && !errors.As(readErr, &utf8Err) {
			t.Fatalf("%s: unexpected error kind: %v", ft, readErr)
		}
		if skipErr == nil && !errors.As(readErr, &utf8Err) {
			t.Fatalf("%s: skip succeeded but read failed: %v", ft, readErr)
		}
	})
}
