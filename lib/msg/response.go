package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// RespType is one of the eleven response operations.
type RespType interface {
	wire.Message
	isRespType()
}

func (*GetResp) isRespType()                  {}
func (*GetSupportedDMResp) isRespType()       {}
func (*GetInstancesResp) isRespType()         {}
func (*SetResp) isRespType()                  {}
func (*AddResp) isRespType()                  {}
func (*DeleteResp) isRespType()               {}
func (*OperateResp) isRespType()              {}
func (*NotifyResp) isRespType()               {}
func (*GetSupportedProtocolResp) isRespType() {}
func (*RegisterResp) isRespType()             {}
func (*DeregisterResp) isRespType()           {}

// Response holds exactly one response operation, or nothing.
type Response struct {
	RespType RespType
}

func respTag(v RespType) protowire.Number {
	switch v.(type) {
	case *GetResp:
		return 1
	case *GetSupportedDMResp:
		return 2
	case *GetInstancesResp:
		return 3
	case *SetResp:
		return 4
	case *AddResp:
		return 5
	case *DeleteResp:
		return 6
	case *OperateResp:
		return 7
	case *NotifyResp:
		return 8
	case *GetSupportedProtocolResp:
		return 9
	case *RegisterResp:
		return 10
	case *DeregisterResp:
		return 11
	}
	return 0
}

// Size returns the encoded length of m.
func (m *Response) Size() int {
	if m == nil || m.RespType == nil {
		return 0
	}
	return wire.SizeMessage(respTag(m.RespType), m.RespType)
}

// AppendTo appends the wire encoding of m to b.
func (m *Response) AppendTo(b []byte) []byte {
	if m == nil || m.RespType == nil {
		return b
	}
	return wire.AppendMessage(b, respTag(m.RespType), m.RespType)
}

// MarshalBinary encodes m. It never fails.
func (m *Response) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Response) UnmarshalBinary(data []byte) error {
	*m = Response{}
	return wire.Decode(data, "usp.Response", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		var (
			v   RespType
			err error
		)
		// Every alternative is a nested message.
		if typ != protowire.BytesType {
			return d.Skip(num, typ)
		}
		switch num {
		case 1:
			v, err = wire.ReadMessage[GetResp](d, typ)
		case 2:
			v, err = wire.ReadMessage[GetSupportedDMResp](d, typ)
		case 3:
			v, err = wire.ReadMessage[GetInstancesResp](d, typ)
		case 4:
			v, err = wire.ReadMessage[SetResp](d, typ)
		case 5:
			v, err = wire.ReadMessage[AddResp](d, typ)
		case 6:
			v, err = wire.ReadMessage[DeleteResp](d, typ)
		case 7:
			v, err = wire.ReadMessage[OperateResp](d, typ)
		case 8:
			v, err = wire.ReadMessage[NotifyResp](d, typ)
		case 9:
			v, err = wire.ReadMessage[GetSupportedProtocolResp](d, typ)
		case 10:
			v, err = wire.ReadMessage[RegisterResp](d, typ)
		case 11:
			v, err = wire.ReadMessage[DeregisterResp](d, typ)
		default:
			return d.Skip(num, typ)
		}
		if err != nil {
			return err
		}
		m.RespType = v
		return nil
	})
}
