package builder

import (
	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/errcodes"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/samber/oops"
)

// RecordBuilder assembles a record.Record. Version and payload security start
// from the configuration.
type RecordBuilder struct {
	rec record.Record
	err error
}

// NewRecordBuilder returns a builder seeded from config.DefaultCodecConfig.
func NewRecordBuilder() *RecordBuilder {
	return NewRecordBuilderFromConfig(config.DefaultCodecConfig())
}

func NewRecordBuilderFromConfig(cfg *config.CodecConfig) *RecordBuilder {
	b := &RecordBuilder{rec: record.Record{Version: cfg.Record.Version}}
	b.rec.PayloadSecurity, b.err = record.ParsePayloadSecurity(cfg.Record.PayloadSecurity)
	return b
}

func (b *RecordBuilder) WithVersion(v string) *RecordBuilder {
	b.rec.Version = v
	return b
}

func (b *RecordBuilder) WithToID(id string) *RecordBuilder {
	b.rec.ToID = id
	return b
}

func (b *RecordBuilder) WithFromID(id string) *RecordBuilder {
	b.rec.FromID = id
	return b
}

func (b *RecordBuilder) WithPayloadSecurity(s record.PayloadSecurity) *RecordBuilder {
	b.rec.PayloadSecurity = s
	b.err = nil
	return b
}

func (b *RecordBuilder) WithMacSignature(sig []byte) *RecordBuilder {
	b.rec.MacSignature = sig
	return b
}

func (b *RecordBuilder) WithSenderCert(cert []byte) *RecordBuilder {
	b.rec.SenderCert = cert
	return b
}

func (b *RecordBuilder) WithNoSessionContext(payload []byte) *RecordBuilder {
	b.rec.RecordType = record.NewNoSessionContext(payload)
	return b
}

func (b *RecordBuilder) WithSessionContext(sc *record.SessionContextRecord) *RecordBuilder {
	b.rec.RecordType = sc
	return b
}

func (b *RecordBuilder) WithWebSocketConnect() *RecordBuilder {
	b.rec.RecordType = &record.WebSocketConnectRecord{}
	return b
}

func (b *RecordBuilder) WithMQTTConnect(v record.MQTTVersion, topic string) *RecordBuilder {
	b.rec.RecordType = &record.MQTTConnectRecord{Version: v, SubscribedTopic: topic}
	return b
}

func (b *RecordBuilder) WithSTOMPConnect(v record.STOMPVersion, destination string) *RecordBuilder {
	b.rec.RecordType = &record.STOMPConnectRecord{Version: v, SubscribedDestination: destination}
	return b
}

// WithDisconnect selects a DisconnectRecord. A zero code is sent as is; any other
// code must be a USP error code.
func (b *RecordBuilder) WithDisconnect(reason string, code uint32) *RecordBuilder {
	b.rec.RecordType = &record.DisconnectRecord{Reason: reason, ReasonCode: code}
	return b
}

func (b *RecordBuilder) WithUDSConnect() *RecordBuilder {
	b.rec.RecordType = &record.UDSConnectRecord{}
	return b
}

func (b *RecordBuilder) Build() (*record.Record, error) {
	if b.err != nil {
		return nil, oops.Wrapf(b.err, "invalid record defaults")
	}
	if b.rec.ToID == "" {
		return nil, missingField("Record", "to_id")
	}
	if b.rec.FromID == "" {
		return nil, missingField("Record", "from_id")
	}
	if b.rec.Version == "" {
		return nil, missingField("Record", "version")
	}
	switch rt := b.rec.RecordType.(type) {
	case nil:
		return nil, missingVariant("Record", "record_type")
	case *record.SessionContextRecord:
		if rt == nil {
			return nil, missingVariant("Record", "record_type")
		}
	case *record.DisconnectRecord:
		if rt.ReasonCode != 0 && !errcodes.IsValid(rt.ReasonCode) {
			return nil, oops.Errorf("%w: %d", ErrInvalidErrCode, rt.ReasonCode)
		}
		if rt.Reason == "" && rt.ReasonCode != 0 {
			rt.Reason = errcodes.Message(rt.ReasonCode)
		}
	}
	r := b.rec
	return &r, nil
}
