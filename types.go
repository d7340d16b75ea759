package fieldpack

import "fmt"

// FieldType identifies the wire representation of a field whose type is
// only known at runtime, e.g. from a schema byte in the stream. The set
// of tags is closed; booleans share TypeUint8 since they use the same
// wire path.
type FieldType uint8

const (
	TypeUint32 FieldType = iota
	TypeInt32
	TypeUint16
	TypeInt16
	TypeUint8
	TypeString
	TypeByteArray
)

func (t FieldType) String() string {
	switch t {
	case TypeUint32:
		return "uint32"
	case TypeInt32:
		return "int32"
	case TypeUint16:
		return "uint16"
	case TypeInt16:
		return "int16"
	case TypeUint8:
		return "uint8"
	case TypeString:
		return "string"
	case TypeByteArray:
		return "bytes"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(t))
	}
}

// Skip consumes one field of type t without materializing a value. It
// advances the cursor past exactly the bytes Read would consume.
func (t FieldType) Skip(data *[]byte) error {
	switch t {
	case TypeUint32:
		return SkipUint32(data)
	case TypeInt32:
		return SkipInt32(data)
	case TypeUint16:
		return SkipUint16(data)
	case TypeInt16:
		return SkipInt16(data)
	case TypeUint8:
		return SkipUint8(data)
	case TypeString:
		return SkipString(data)
	case TypeByteArray:
		return SkipBytes(data)
	default:
		return fmt.Errorf("cannot skip unknown field type %s", t)
	}
}

// Read decodes one field of type t into an owned Value. String and byte
// array contents are copied out of the input buffer, so the Value stays
// valid after the buffer is gone.
func (t FieldType) Read(data *[]byte) (Value, error) {
	switch t {
	case TypeUint32:
		v, err := ReadUint32(data)
		if err != nil {
			return nil, err
		}
		return Uint32Value{Value: v}, nil
	case TypeInt32:
		v, err := ReadInt32(data)
		if err != nil {
			return nil, err
		}
		return Int32Value{Value: v}, nil
	case TypeUint16:
		v, err := ReadUint16(data)
		if err != nil {
			return nil, err
		}
		return Uint16Value{Value: v}, nil
	case TypeInt16:
		v, err := ReadInt16(data)
		if err != nil {
			return nil, err
		}
		return Int16Value{Value: v}, nil
	case TypeUint8:
		v, err := ReadUint8(data)
		if err != nil {
			return nil, err
		}
		return Uint8Value{Value: v}, nil
	case TypeString:
		v, err := ReadString(data)
		if err != nil {
			return nil, err
		}
		return StringValue{Value: v}, nil
	case TypeByteArray:
		v, err := ReadBytes(data)
		if err != nil {
			return nil, err
		}
		return BytesValue{Value: CloneBytes(v)}, nil
	default:
		return nil, fmt.Errorf("cannot read unknown field type %s", t)
	}
}

// Value holds one decoded, owned field value. Exactly one concrete
// variant exists per FieldType.
type Value interface {
	// FieldType returns the tag that produced this value.
	FieldType() FieldType

	// Append re-encodes the value, appending to dst and returning the
	// extended buffer.
	Append(dst []byte) []byte
}

type Uint32Value struct {
	Value uint32
}

type Int32Value struct {
	Value int32
}

type Uint16Value struct {
	Value uint16
}

type Int16Value struct {
	Value int16
}

type Uint8Value struct {
	Value uint8
}

type StringValue struct {
	Value string
}

type BytesValue struct {
	Value []byte
}

func (v Uint32Value) FieldType() FieldType { return TypeUint32 }
func (v Int32Value) FieldType() FieldType  { return TypeInt32 }
func (v Uint16Value) FieldType() FieldType { return TypeUint16 }
func (v Int16Value) FieldType() FieldType  { return TypeInt16 }
func (v Uint8Value) FieldType() FieldType  { return TypeUint8 }
func (v StringValue) FieldType() FieldType { return TypeString }
func (v BytesValue) FieldType() FieldType  { return TypeByteArray }

func (v Uint32Value) Append(dst []byte) []byte { return AppendUint32(dst, v.Value) }
func (v Int32Value) Append(dst []byte) []byte  { return AppendInt32(dst, v.Value) }
func (v Uint16Value) Append(dst []byte) []byte { return AppendUint16(dst, v.Value) }
func (v Int16Value) Append(dst []byte) []byte  { return AppendInt16(dst, v.Value) }
func (v Uint8Value) Append(dst []byte) []byte  { return AppendUint8(dst, v.Value) }
func (v StringValue) Append(dst []byte) []byte { return AppendString(dst, v.Value) }
func (v BytesValue) Append(dst []byte) []byte  { return AppendBytes(dst, v.Value) }
