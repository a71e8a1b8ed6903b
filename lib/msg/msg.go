package msg

import (
	"io"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/wire"
	"github.com/samber/oops"
	"google.golang.org/protobuf/encoding/protowire"
)

var log = logger.GetGoI2PLogger()

// Msg is a complete USP message. A Msg with neither Header nor Body decodes
// successfully but carries no meaning.
type Msg struct {
	Header *Header
	Body   *Body
}

// Decode parses an encoded Msg.
func Decode(data []byte) (*Msg, error) {
	m := &Msg{}
	if err := m.UnmarshalBinary(data); err != nil {
		log.WithFields(logger.Fields{
			"at":     "msg.Decode",
			"length": len(data),
			"error":  err.Error(),
		}).Debug("failed to decode USP message")
		return nil, err
	}
	return m, nil
}

// Size returns the exact encoded size of m.
func (m *Msg) Size() int {
	if m == nil {
		return 0
	}
	n := 0
	if m.Header != nil {
		n += wire.SizeMessage(1, m.Header)
	}
	if m.Body != nil {
		n += wire.SizeMessage(2, m.Body)
	}
	return n
}

// AppendTo appends the encoding of m to b.
func (m *Msg) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	if m.Header != nil {
		b = wire.AppendMessage(b, 1, m.Header)
	}
	if m.Body != nil {
		b = wire.AppendMessage(b, 2, m.Body)
	}
	return b
}

// MarshalBinary encodes m.
func (m *Msg) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// WriteTo encodes m and writes it to w. The only possible failure is the writer's.
func (m *Msg) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(wire.Marshal(m))
	if err != nil {
		return int64(n), oops.Wrapf(err, "failed to write USP message")
	}
	return int64(n), nil
}

// UnmarshalBinary replaces m with the decoded contents of data.
func (m *Msg) UnmarshalBinary(data []byte) error {
	*m = Msg{}
	return wire.Decode(data, "usp.Msg", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			var v *Header
			if v, err = wire.ReadMessage[Header](d, typ); v != nil {
				m.Header = v
			}
		case 2:
			var v *Body
			if v, err = wire.ReadMessage[Body](d, typ); v != nil {
				m.Body = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// MsgID returns the header's message id, or "" when there is no header.
func (m *Msg) MsgID() string {
	if m == nil || m.Header == nil {
		return ""
	}
	return m.Header.MsgID
}

// Header carries the correlation id and the message type. MsgType is not checked
// against the Body variant by the codec.
type Header struct {
	MsgID   string
	MsgType MsgType
}

// Size returns the encoded length of m.
func (m *Header) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.MsgID) +
		wire.SizeEnum(2, int32(m.MsgType))
}

// AppendTo appends the wire encoding of m to b.
func (m *Header) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.MsgID)
	b = wire.AppendEnum(b, 2, int32(m.MsgType))
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Header) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Header) UnmarshalBinary(data []byte) error {
	*m = Header{}
	return wire.Decode(data, "usp.Header", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.MsgID)
		case 2:
			err = wire.Enum(d, typ, &m.MsgType)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// MsgBody is one of *Request, *Response or *Error.
type MsgBody interface {
	wire.Message
	isMsgBody()
}

func (*Request) isMsgBody()  {}
func (*Response) isMsgBody() {}
func (*Error) isMsgBody()    {}

// Body holds exactly one of Request, Response or Error, or nothing.
type Body struct {
	MsgBody MsgBody
}

// GetRequest returns the request branch or nil.
func (m *Body) GetRequest() *Request {
	if m == nil {
		return nil
	}
	v, _ := m.MsgBody.(*Request)
	return v
}

// GetResponse returns the response branch or nil.
func (m *Body) GetResponse() *Response {
	if m == nil {
		return nil
	}
	v, _ := m.MsgBody.(*Response)
	return v
}

// GetError returns the error branch or nil.
func (m *Body) GetError() *Error {
	if m == nil {
		return nil
	}
	v, _ := m.MsgBody.(*Error)
	return v
}

func bodyTag(v MsgBody) protowire.Number {
	switch v.(type) {
	case *Request:
		return 1
	case *Response:
		return 2
	case *Error:
		return 3
	}
	return 0
}

// Size returns the encoded length of m.
func (m *Body) Size() int {
	if m == nil || m.MsgBody == nil {
		return 0
	}
	return wire.SizeMessage(bodyTag(m.MsgBody), m.MsgBody)
}

// AppendTo appends the wire encoding of m to b.
func (m *Body) AppendTo(b []byte) []byte {
	if m == nil || m.MsgBody == nil {
		return b
	}
	return wire.AppendMessage(b, bodyTag(m.MsgBody), m.MsgBody)
}

// MarshalBinary encodes m. It never fails.
func (m *Body) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Body) UnmarshalBinary(data []byte) error {
	*m = Body{}
	return wire.Decode(data, "usp.Body", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		var (
			v   MsgBody
			err error
		)
		// Every alternative is a nested message.
		if typ != protowire.BytesType {
			return d.Skip(num, typ)
		}
		switch num {
		case 1:
			v, err = wire.ReadMessage[Request](d, typ)
		case 2:
			v, err = wire.ReadMessage[Response](d, typ)
		case 3:
			v, err = wire.ReadMessage[Error](d, typ)
		default:
			return d.Skip(num, typ)
		}
		if err != nil {
			return err
		}
		m.MsgBody = v
		return nil
	})
}
