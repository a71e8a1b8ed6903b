package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// ReqType is one of the eleven request operations.
type ReqType interface {
	wire.Message
	isReqType()
}

func (*Get) isReqType()                  {}
func (*GetSupportedDM) isReqType()       {}
func (*GetInstances) isReqType()         {}
func (*Set) isReqType()                  {}
func (*Add) isReqType()                  {}
func (*Delete) isReqType()               {}
func (*Operate) isReqType()              {}
func (*Notify) isReqType()               {}
func (*GetSupportedProtocol) isReqType() {}
func (*Register) isReqType()             {}
func (*Deregister) isReqType()           {}

// Request holds exactly one request operation, or nothing.
type Request struct {
	ReqType ReqType
}

func reqTag(v ReqType) protowire.Number {
	switch v.(type) {
	case *Get:
		return 1
	case *GetSupportedDM:
		return 2
	case *GetInstances:
		return 3
	case *Set:
		return 4
	case *Add:
		return 5
	case *Delete:
		return 6
	case *Operate:
		return 7
	case *Notify:
		return 8
	case *GetSupportedProtocol:
		return 9
	case *Register:
		return 10
	case *Deregister:
		return 11
	}
	return 0
}

// Size returns the encoded length of m.
func (m *Request) Size() int {
	if m == nil || m.ReqType == nil {
		return 0
	}
	return wire.SizeMessage(reqTag(m.ReqType), m.ReqType)
}

// AppendTo appends the wire encoding of m to b.
func (m *Request) AppendTo(b []byte) []byte {
	if m == nil || m.ReqType == nil {
		return b
	}
	return wire.AppendMessage(b, reqTag(m.ReqType), m.ReqType)
}

// MarshalBinary encodes m. It never fails.
func (m *Request) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Request) UnmarshalBinary(data []byte) error {
	*m = Request{}
	return wire.Decode(data, "usp.Request", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		var (
			v   ReqType
			err error
		)
		// Every alternative is a nested message.
		if typ != protowire.BytesType {
			return d.Skip(num, typ)
		}
		switch num {
		case 1:
			v, err = wire.ReadMessage[Get](d, typ)
		case 2:
			v, err = wire.ReadMessage[GetSupportedDM](d, typ)
		case 3:
			v, err = wire.ReadMessage[GetInstances](d, typ)
		case 4:
			v, err = wire.ReadMessage[Set](d, typ)
		case 5:
			v, err = wire.ReadMessage[Add](d, typ)
		case 6:
			v, err = wire.ReadMessage[Delete](d, typ)
		case 7:
			v, err = wire.ReadMessage[Operate](d, typ)
		case 8:
			v, err = wire.ReadMessage[Notify](d, typ)
		case 9:
			v, err = wire.ReadMessage[GetSupportedProtocol](d, typ)
		case 10:
			v, err = wire.ReadMessage[Register](d, typ)
		case 11:
			v, err = wire.ReadMessage[Deregister](d, typ)
		default:
			return d.Skip(num, typ)
		}
		if err != nil {
			return err
		}
		m.ReqType = v
		return nil
	})
}
