package record

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// NoSessionContextRecord carries one whole encoded Msg.
type NoSessionContextRecord struct {
	Payload []byte
}

// Size returns the encoded length of m.
func (m *NoSessionContextRecord) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeBytes(2, m.Payload)
}

// AppendTo appends the wire encoding of m to b.
func (m *NoSessionContextRecord) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendBytes(b, 2, m.Payload)
}

// MarshalBinary encodes m. It never fails.
func (m *NoSessionContextRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NoSessionContextRecord) UnmarshalBinary(data []byte) error {
	*m = NoSessionContextRecord{}
	return wire.Decode(data, "usp_record.NoSessionContextRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 2:
			err = d.Bytes(typ, &m.Payload)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// SessionContextRecord carries one or more fragments of an encoded Msg within an
// End to End Session Context. The identifiers are assigned by the session layer.
type SessionContextRecord struct {
	SessionID          uint64
	SequenceID         uint64
	ExpectedID         uint64
	RetransmitID       uint64
	PayloadSARState    SARState
	PayloadrecSARState SARState
	Payload            [][]byte
}

// Size returns the encoded length of m.
func (m *SessionContextRecord) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeUint64(1, m.SessionID) +
		wire.SizeUint64(2, m.SequenceID) +
		wire.SizeUint64(3, m.ExpectedID) +
		wire.SizeUint64(4, m.RetransmitID) +
		wire.SizeEnum(5, int32(m.PayloadSARState)) +
		wire.SizeEnum(6, int32(m.PayloadrecSARState)) +
		wire.SizeRepeatedBytes(7, m.Payload)
}

// AppendTo appends the wire encoding of m to b.
func (m *SessionContextRecord) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendUint64(b, 1, m.SessionID)
	b = wire.AppendUint64(b, 2, m.SequenceID)
	b = wire.AppendUint64(b, 3, m.ExpectedID)
	b = wire.AppendUint64(b, 4, m.RetransmitID)
	b = wire.AppendEnum(b, 5, int32(m.PayloadSARState))
	b = wire.AppendEnum(b, 6, int32(m.PayloadrecSARState))
	b = wire.AppendRepeatedBytes(b, 7, m.Payload)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SessionContextRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SessionContextRecord) UnmarshalBinary(data []byte) error {
	*m = SessionContextRecord{}
	return wire.Decode(data, "usp_record.SessionContextRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Uint64(typ, &m.SessionID)
		case 2:
			err = d.Uint64(typ, &m.SequenceID)
		case 3:
			err = d.Uint64(typ, &m.ExpectedID)
		case 4:
			err = d.Uint64(typ, &m.RetransmitID)
		case 5:
			err = wire.Enum(d, typ, &m.PayloadSARState)
		case 6:
			err = wire.Enum(d, typ, &m.PayloadrecSARState)
		case 7:
			m.Payload, err = d.AppendBytes(typ, m.Payload)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// WebSocketConnectRecord and UDSConnectRecord announce a new connection and carry
// no fields.
type WebSocketConnectRecord struct{}

func (*WebSocketConnectRecord) Size() int { return 0 }

func (*WebSocketConnectRecord) AppendTo(b []byte) []byte { return b }

// MarshalBinary encodes m. It never fails.
func (m *WebSocketConnectRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *WebSocketConnectRecord) UnmarshalBinary(data []byte) error {
	*m = WebSocketConnectRecord{}
	return wire.Decode(data, "usp_record.WebSocketConnectRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		return d.Skip(num, typ)
	})
}

type MQTTConnectRecord struct {
	Version         MQTTVersion
	SubscribedTopic string
}

// Size returns the encoded length of m.
func (m *MQTTConnectRecord) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeEnum(1, int32(m.Version)) +
		wire.SizeString(2, m.SubscribedTopic)
}

// AppendTo appends the wire encoding of m to b.
func (m *MQTTConnectRecord) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendEnum(b, 1, int32(m.Version))
	b = wire.AppendString(b, 2, m.SubscribedTopic)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *MQTTConnectRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *MQTTConnectRecord) UnmarshalBinary(data []byte) error {
	*m = MQTTConnectRecord{}
	return wire.Decode(data, "usp_record.MQTTConnectRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = wire.Enum(d, typ, &m.Version)
		case 2:
			err = d.String(typ, &m.SubscribedTopic)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type STOMPConnectRecord struct {
	Version               STOMPVersion
	SubscribedDestination string
}

// Size returns the encoded length of m.
func (m *STOMPConnectRecord) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeEnum(1, int32(m.Version)) +
		wire.SizeString(2, m.SubscribedDestination)
}

// AppendTo appends the wire encoding of m to b.
func (m *STOMPConnectRecord) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendEnum(b, 1, int32(m.Version))
	b = wire.AppendString(b, 2, m.SubscribedDestination)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *STOMPConnectRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *STOMPConnectRecord) UnmarshalBinary(data []byte) error {
	*m = STOMPConnectRecord{}
	return wire.Decode(data, "usp_record.STOMPConnectRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = wire.Enum(d, typ, &m.Version)
		case 2:
			err = d.String(typ, &m.SubscribedDestination)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// DisconnectRecord tells the peer the connection is about to close. ReasonCode is
// one of the 71xx record error codes.
type DisconnectRecord struct {
	Reason     string
	ReasonCode uint32
}

// Size returns the encoded length of m.
func (m *DisconnectRecord) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Reason) +
		wire.SizeFixed32(2, m.ReasonCode)
}

// AppendTo appends the wire encoding of m to b.
func (m *DisconnectRecord) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Reason)
	b = wire.AppendFixed32(b, 2, m.ReasonCode)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DisconnectRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DisconnectRecord) UnmarshalBinary(data []byte) error {
	*m = DisconnectRecord{}
	return wire.Decode(data, "usp_record.DisconnectRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Reason)
		case 2:
			err = d.Fixed32(typ, &m.ReasonCode)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type UDSConnectRecord struct{}

func (*UDSConnectRecord) Size() int { return 0 }

func (*UDSConnectRecord) AppendTo(b []byte) []byte { return b }

// MarshalBinary encodes m. It never fails.
func (m *UDSConnectRecord) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *UDSConnectRecord) UnmarshalBinary(data []byte) error {
	*m = UDSConnectRecord{}
	return wire.Decode(data, "usp_record.UDSConnectRecord", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		return d.Skip(num, typ)
	})
}
