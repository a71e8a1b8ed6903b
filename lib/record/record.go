package record

import (
	"bytes"
	"io"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/wire"
	"github.com/samber/oops"
	"google.golang.org/protobuf/encoding/protowire"
)

var log = logger.GetGoI2PLogger()

// Record is the transport envelope around an encoded Msg. MacSignature and
// SenderCert are carried opaquely; no signature checking happens here.
type Record struct {
	Version         string
	ToID            string
	FromID          string
	PayloadSecurity PayloadSecurity
	MacSignature    []byte
	SenderCert      []byte
	RecordType      RecordType
}

// Size returns the encoded length of m.
func (m *Record) Size() int {
	if m == nil {
		return 0
	}
	n := wire.SizeString(1, m.Version) +
		wire.SizeString(2, m.ToID) +
		wire.SizeString(3, m.FromID) +
		wire.SizeEnum(4, int32(m.PayloadSecurity)) +
		wire.SizeBytes(5, m.MacSignature) +
		wire.SizeBytes(6, m.SenderCert)
	if m.RecordType != nil {
		n += wire.SizeMessage(recordTypeTag(m.RecordType), m.RecordType)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *Record) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Version)
	b = wire.AppendString(b, 2, m.ToID)
	b = wire.AppendString(b, 3, m.FromID)
	b = wire.AppendEnum(b, 4, int32(m.PayloadSecurity))
	b = wire.AppendBytes(b, 5, m.MacSignature)
	b = wire.AppendBytes(b, 6, m.SenderCert)
	if m.RecordType != nil {
		b = wire.AppendMessage(b, recordTypeTag(m.RecordType), m.RecordType)
	}
	return b
}

// Decode parses an encoded Record.
func Decode(data []byte) (*Record, error) {
	r := &Record{}
	if err := r.UnmarshalBinary(data); err != nil {
		log.WithFields(logger.Fields{
			"at":     "record.Decode",
			"length": len(data),
			"error":  err.Error(),
		}).Debug("failed to decode USP record")
		return nil, err
	}
	return r, nil
}

// WriteTo encodes r and writes it to w.
func (m *Record) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(wire.Marshal(m))
	if err != nil {
		return int64(n), oops.Wrapf(err, "failed to write USP record")
	}
	return int64(n), nil
}

// GetNoSessionContext returns the NoSessionContextRecord branch or nil.
func (m *Record) GetNoSessionContext() *NoSessionContextRecord {
	if m == nil {
		return nil
	}
	v, _ := m.RecordType.(*NoSessionContextRecord)
	return v
}

// GetSessionContext returns the SessionContextRecord branch or nil.
func (m *Record) GetSessionContext() *SessionContextRecord {
	if m == nil {
		return nil
	}
	v, _ := m.RecordType.(*SessionContextRecord)
	return v
}

// NewNoSessionContext wraps a whole encoded Msg.
func NewNoSessionContext(payload []byte) *NoSessionContextRecord {
	return &NoSessionContextRecord{Payload: payload}
}

// NewUnfragmented returns a SessionContextRecord carrying payload as a single
// fragment, with both SAR states set to NONE.
func NewUnfragmented(sessionID, sequenceID, expectedID uint64, payload []byte) *SessionContextRecord {
	return &SessionContextRecord{
		SessionID:  sessionID,
		SequenceID: sequenceID,
		ExpectedID: expectedID,
		Payload:    [][]byte{payload},
	}
}

// Concat joins the payload fragments in order.
func (m *SessionContextRecord) Concat() []byte {
	if m == nil {
		return nil
	}
	return bytes.Join(m.Payload, nil)
}

// Complete reports whether the record closes a payload, either because it was sent
// whole (NONE) or because it is the last segment (COMPLETE).
func (m *SessionContextRecord) Complete() bool {
	if m == nil {
		return false
	}
	return m.PayloadSARState == SARNone || m.PayloadSARState == SARComplete
}

// MarshalBinary encodes m. It never fails.
func (m *Record) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Record) UnmarshalBinary(data []byte) error {
	*m = Record{}
	return wire.Decode(data, "usp_record.Record", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Version)
		case 2:
			err = d.String(typ, &m.ToID)
		case 3:
			err = d.String(typ, &m.FromID)
		case 4:
			err = wire.Enum(d, typ, &m.PayloadSecurity)
		case 5:
			err = d.Bytes(typ, &m.MacSignature)
		case 6:
			err = d.Bytes(typ, &m.SenderCert)
		case 7:
			var v *NoSessionContextRecord
			if v, err = wire.ReadMessage[NoSessionContextRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 8:
			var v *SessionContextRecord
			if v, err = wire.ReadMessage[SessionContextRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 9:
			var v *WebSocketConnectRecord
			if v, err = wire.ReadMessage[WebSocketConnectRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 10:
			var v *MQTTConnectRecord
			if v, err = wire.ReadMessage[MQTTConnectRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 11:
			var v *STOMPConnectRecord
			if v, err = wire.ReadMessage[STOMPConnectRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 12:
			var v *DisconnectRecord
			if v, err = wire.ReadMessage[DisconnectRecord](d, typ); v != nil {
				m.RecordType = v
			}
		case 13:
			var v *UDSConnectRecord
			if v, err = wire.ReadMessage[UDSConnectRecord](d, typ); v != nil {
				m.RecordType = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// RecordType is one of the seven *Record connection or session kinds.
type RecordType interface {
	wire.Message
	isRecordType()
}

func (*NoSessionContextRecord) isRecordType() {}
func (*SessionContextRecord) isRecordType()   {}
func (*WebSocketConnectRecord) isRecordType() {}
func (*MQTTConnectRecord) isRecordType()      {}
func (*STOMPConnectRecord) isRecordType()     {}
func (*DisconnectRecord) isRecordType()       {}
func (*UDSConnectRecord) isRecordType()       {}

func recordTypeTag(v RecordType) protowire.Number {
	switch v.(type) {
	case *NoSessionContextRecord:
		return 7
	case *SessionContextRecord:
		return 8
	case *WebSocketConnectRecord:
		return 9
	case *MQTTConnectRecord:
		return 10
	case *STOMPConnectRecord:
		return 11
	case *DisconnectRecord:
		return 12
	case *UDSConnectRecord:
		return 13
	}
	return 0
}
