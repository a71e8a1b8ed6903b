package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// GetSupportedProtocol carries the comma separated USP versions a controller speaks.
type GetSupportedProtocol struct {
	ControllerSupportedProtocolVersions string
}

// Size returns the encoded length of m.
func (m *GetSupportedProtocol) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ControllerSupportedProtocolVersions)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedProtocol) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.ControllerSupportedProtocolVersions)
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedProtocol) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedProtocol) UnmarshalBinary(data []byte) error {
	*m = GetSupportedProtocol{}
	return wire.Decode(data, "usp.GetSupportedProtocol", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ControllerSupportedProtocolVersions)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// GetSupportedProtocolResp carries the comma separated USP versions an agent speaks.
type GetSupportedProtocolResp struct {
	AgentSupportedProtocolVersions string
}

// Size returns the encoded length of m.
func (m *GetSupportedProtocolResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.AgentSupportedProtocolVersions)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedProtocolResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.AgentSupportedProtocolVersions)
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedProtocolResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedProtocolResp) UnmarshalBinary(data []byte) error {
	*m = GetSupportedProtocolResp{}
	return wire.Decode(data, "usp.GetSupportedProtocolResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.AgentSupportedProtocolVersions)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
