package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Operate invokes a data model command. CommandKey is echoed back in the
// OperationComplete notification of asynchronous commands.
type Operate struct {
	Command    string
	CommandKey string
	SendResp   bool
	InputArgs  map[string]string
}

// Size returns the encoded length of m.
func (m *Operate) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Command) +
		wire.SizeString(2, m.CommandKey) +
		wire.SizeBool(3, m.SendResp) +
		wire.SizeStringMap(4, m.InputArgs)
}

// AppendTo appends the wire encoding of m to b.
func (m *Operate) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Command)
	b = wire.AppendString(b, 2, m.CommandKey)
	b = wire.AppendBool(b, 3, m.SendResp)
	b = wire.AppendStringMap(b, 4, m.InputArgs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Operate) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Operate) UnmarshalBinary(data []byte) error {
	*m = Operate{}
	return wire.Decode(data, "usp.Operate", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Command)
		case 2:
			err = d.String(typ, &m.CommandKey)
		case 3:
			err = d.Bool(typ, &m.SendResp)
		case 4:
			m.InputArgs, err = d.StringMap(typ, m.InputArgs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type OperateResp struct {
	OperationResults []*OperateRespOperationResult
}

// Size returns the encoded length of m.
func (m *OperateResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.OperationResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *OperateResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.OperationResults)
}

// MarshalBinary encodes m. It never fails.
func (m *OperateResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *OperateResp) UnmarshalBinary(data []byte) error {
	*m = OperateResp{}
	return wire.Decode(data, "usp.OperateResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.OperationResults, err = wire.ReadRepeated[OperateRespOperationResult](d, typ, m.OperationResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type OperateRespOperationResult struct {
	ExecutedCommand string
	OperationResp   OperateRespOperationResp
}

// Size returns the encoded length of m.
func (m *OperateRespOperationResult) Size() int {
	if m == nil {
		return 0
	}
	n := wire.SizeString(1, m.ExecutedCommand)
	if m.OperationResp != nil {
		n += wire.SizeMessage(operateRespTag(m.OperationResp), m.OperationResp)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *OperateRespOperationResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ExecutedCommand)
	if m.OperationResp != nil {
		b = wire.AppendMessage(b, operateRespTag(m.OperationResp), m.OperationResp)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *OperateRespOperationResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *OperateRespOperationResult) UnmarshalBinary(data []byte) error {
	*m = OperateRespOperationResult{}
	return wire.Decode(data, "usp.OperateResp.OperationResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ExecutedCommand)
		case 2:
			if typ != protowire.BytesType {
				err = d.Skip(num, typ)
				break
			}
			var s string
			if err = d.String(typ, &s); err == nil {
				m.OperationResp = OperateRespReqObjPath(s)
			}
		case 3:
			var v *OperateRespOutputArgs
			if v, err = wire.ReadMessage[OperateRespOutputArgs](d, typ); v != nil {
				m.OperationResp = v
			}
		case 4:
			var v *OperateRespCommandFailure
			if v, err = wire.ReadMessage[OperateRespCommandFailure](d, typ); v != nil {
				m.OperationResp = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// OperateRespOperationResp is OperateRespReqObjPath, *OperateRespOutputArgs or
// *OperateRespCommandFailure.
type OperateRespOperationResp interface {
	wire.Message
	isOperateRespOperationResp()
}

func (OperateRespReqObjPath) isOperateRespOperationResp()      {}
func (*OperateRespOutputArgs) isOperateRespOperationResp()     {}
func (*OperateRespCommandFailure) isOperateRespOperationResp() {}

func operateRespTag(v OperateRespOperationResp) protowire.Number {
	switch v.(type) {
	case OperateRespReqObjPath:
		return 2
	case *OperateRespOutputArgs:
		return 3
	case *OperateRespCommandFailure:
		return 4
	}
	return 0
}

// OperateRespReqObjPath is the path of the Request object created for an
// asynchronous command. It is emitted even when empty.
type OperateRespReqObjPath string

// Size returns the encoded length of p.
func (p OperateRespReqObjPath) Size() int { return len(p) }

// AppendTo appends the wire encoding of p to b.
func (p OperateRespReqObjPath) AppendTo(b []byte) []byte { return append(b, p...) }

type OperateRespOutputArgs struct {
	OutputArgs map[string]string
}

// Size returns the encoded length of m.
func (m *OperateRespOutputArgs) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeStringMap(1, m.OutputArgs)
}

// AppendTo appends the wire encoding of m to b.
func (m *OperateRespOutputArgs) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendStringMap(b, 1, m.OutputArgs)
}

// MarshalBinary encodes m. It never fails.
func (m *OperateRespOutputArgs) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *OperateRespOutputArgs) UnmarshalBinary(data []byte) error {
	*m = OperateRespOutputArgs{}
	return wire.Decode(data, "usp.OperateResp.OperationResult.OutputArgs", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.OutputArgs, err = d.StringMap(typ, m.OutputArgs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type OperateRespCommandFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *OperateRespCommandFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *OperateRespCommandFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *OperateRespCommandFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *OperateRespCommandFailure) UnmarshalBinary(data []byte) error {
	*m = OperateRespCommandFailure{}
	return wire.Decode(data, "usp.OperateResp.OperationResult.CommandFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Fixed32(typ, &m.ErrCode)
		case 2:
			err = d.String(typ, &m.ErrMsg)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
