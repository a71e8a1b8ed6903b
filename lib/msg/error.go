package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Error is the body of a message that reports a failed request as a whole.
type Error struct {
	ErrCode   uint32
	ErrMsg    string
	ParamErrs []*ParamError
}

// Size returns the encoded length of m.
func (m *Error) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg) +
		wire.SizeRepeated(3, m.ParamErrs)
}

// AppendTo appends the wire encoding of m to b.
func (m *Error) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	b = wire.AppendRepeated(b, 3, m.ParamErrs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Error) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Error) UnmarshalBinary(data []byte) error {
	*m = Error{}
	return wire.Decode(data, "usp.Error", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Fixed32(typ, &m.ErrCode)
		case 2:
			err = d.String(typ, &m.ErrMsg)
		case 3:
			m.ParamErrs, err = wire.ReadRepeated[ParamError](d, typ, m.ParamErrs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// ParamError is a per-parameter failure inside an Error.
type ParamError struct {
	ParamPath string
	ErrCode   uint32
	ErrMsg    string
}

// Size returns the encoded length of m.
func (m *ParamError) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ParamPath) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *ParamError) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ParamPath)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *ParamError) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *ParamError) UnmarshalBinary(data []byte) error {
	*m = ParamError{}
	return wire.Decode(data, "usp.Error.ParamError", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ParamPath)
		case 2:
			err = d.Fixed32(typ, &m.ErrCode)
		case 3:
			err = d.String(typ, &m.ErrMsg)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
