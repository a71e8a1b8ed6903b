package usp

import (
	"context"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/builder"
	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/go-usp/go-usp/lib/sar"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Codec encodes and decodes USP Msgs and Records under one configuration.
type Codec struct {
	cfg   *config.CodecConfig
	reasm *sar.Reassembler
}

// NewCodec validates cfg and returns a Codec with a Reassembler over the store it
// selects.
func NewCodec(cfg *config.CodecConfig) (*Codec, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	reasm, err := sar.NewReassemblerFromConfig(cfg.SAR)
	if err != nil {
		return nil, err
	}
	log.WithFields(logger.Fields{
		"at":        "usp.NewCodec",
		"version":   cfg.Record.Version,
		"sar_store": cfg.SAR.Store,
	}).Debug("created codec")
	return &Codec{cfg: cfg, reasm: reasm}, nil
}

// NewCodecFromViper is NewCodec over config.NewCodecConfigFromViper.
func NewCodecFromViper() (*Codec, error) {
	return NewCodec(config.NewCodecConfigFromViper())
}

// Config returns the configuration the codec was built with.
func (c *Codec) Config() *config.CodecConfig {
	return c.cfg
}

// Reassembler returns the reassembler used by Receive, or nil for the default codec.
func (c *Codec) Reassembler() *sar.Reassembler {
	return c.reasm
}

// Close releases the reassembly store.
func (c *Codec) Close() error {
	if c.reasm == nil {
		return nil
	}
	return c.reasm.Close()
}

func (c *Codec) DecodeMsg(data []byte) (*msg.Msg, error) {
	m, err := msg.Decode(data)
	if err != nil {
		return nil, err
	}
	log.WithFields(logger.Fields{
		"at":       "usp.DecodeMsg",
		"msg_id":   m.MsgID(),
		"msg_type": msgType(m),
		"bytes":    len(data),
	}).Debug("decoded msg")
	return m, nil
}

// DecodeRecord decodes a Record, refusing input above the configured maximum
// record size.
func (c *Codec) DecodeRecord(data []byte) (*record.Record, error) {
	if err := c.checkRecordSize(len(data)); err != nil {
		return nil, err
	}
	return record.Decode(data)
}

func (c *Codec) EncodeMsg(m *msg.Msg) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMsg
	}
	data, err := m.MarshalBinary()
	if err != nil {
		return nil, oops.Wrapf(err, "encode msg %s", m.MsgID())
	}
	return data, nil
}

func (c *Codec) EncodeRecord(rec *record.Record) ([]byte, error) {
	data, err := rec.MarshalBinary()
	if err != nil {
		return nil, oops.Wrapf(err, "encode record")
	}
	if err := c.checkRecordSize(len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Codec) checkRecordSize(n int) error {
	if c.cfg.MaxRecordSize > 0 && n > c.cfg.MaxRecordSize {
		return oops.Errorf("%w: %d bytes, limit %d", ErrRecordTooLarge, n, c.cfg.MaxRecordSize)
	}
	return nil
}

// recordBuilder starts a RecordBuilder from the configured defaults and copies the
// envelope fields of tmpl over them. Empty version and PLAINTEXT security in tmpl
// keep the configured values.
func (c *Codec) recordBuilder(tmpl *record.Record) *builder.RecordBuilder {
	b := builder.NewRecordBuilderFromConfig(c.cfg)
	if tmpl == nil {
		return b
	}
	b.WithToID(tmpl.ToID).
		WithFromID(tmpl.FromID).
		WithMacSignature(tmpl.MacSignature).
		WithSenderCert(tmpl.SenderCert)
	if tmpl.Version != "" {
		b.WithVersion(tmpl.Version)
	}
	if tmpl.PayloadSecurity != record.PlainText {
		b.WithPayloadSecurity(tmpl.PayloadSecurity)
	}
	return b
}

// WrapMsg encodes m into a NoSessionContextRecord addressed like tmpl. The record
// type of tmpl is ignored.
func (c *Codec) WrapMsg(tmpl *record.Record, m *msg.Msg) (*record.Record, error) {
	payload, err := c.EncodeMsg(m)
	if err != nil {
		return nil, err
	}
	return c.recordBuilder(tmpl).WithNoSessionContext(payload).Build()
}

// WrapSession encodes m and segments it into SessionContextRecords addressed like
// tmpl. A zero opts.MaxFragmentSize uses the configured fragment size.
func (c *Codec) WrapSession(tmpl *record.Record, m *msg.Msg, opts sar.SegmentOptions) ([]*record.Record, error) {
	payload, err := c.EncodeMsg(m)
	if err != nil {
		return nil, err
	}
	if opts.MaxFragmentSize == 0 {
		opts.MaxFragmentSize = c.cfg.SAR.MaxFragmentSize
	}
	segments, err := sar.Segment(payload, opts)
	if err != nil {
		return nil, err
	}
	out := make([]*record.Record, 0, len(segments))
	for _, s := range segments {
		rec, err := c.recordBuilder(tmpl).WithSessionContext(s).Build()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// ExtractMsg decodes the Msg carried by rec. Only NoSessionContextRecords and
// SessionContextRecords in state NONE carry a whole Msg. A COMPLETE record holds
// just the last segment; feed segmented payloads to a sar.Reassembler or use
// Receive.
func (c *Codec) ExtractMsg(rec *record.Record) (*msg.Msg, error) {
	if rec == nil {
		return nil, ErrNoPayload
	}
	switch rt := rec.RecordType.(type) {
	case *record.NoSessionContextRecord:
		return c.DecodeMsg(rt.Payload)
	case *record.SessionContextRecord:
		if rt.PayloadSARState != record.SARNone {
			return nil, oops.Errorf("%w: session %d sequence %d in state %s",
				ErrIncompletePayload, rt.SessionID, rt.SequenceID, rt.PayloadSARState)
		}
		return c.DecodeMsg(rt.Concat())
	}
	return nil, ErrNoPayload
}

// Receive decodes one Record off the wire and returns it with the Msg it completes.
// SessionContextRecords go through the reassembler, so the Msg is nil until the
// last segment arrives. Records that carry no Msg are returned with a nil Msg.
func (c *Codec) Receive(ctx context.Context, data []byte) (*record.Record, *msg.Msg, error) {
	rec, err := c.DecodeRecord(data)
	if err != nil {
		return nil, nil, err
	}
	switch rt := rec.RecordType.(type) {
	case *record.NoSessionContextRecord:
		m, err := c.ExtractMsg(rec)
		return rec, m, err
	case *record.SessionContextRecord:
		if c.reasm == nil {
			m, err := c.ExtractMsg(rec)
			return rec, m, err
		}
		m, err := c.reasm.PushMsg(ctx, rt)
		return rec, m, err
	}
	log.WithFields(logger.Fields{
		"at":      "usp.Receive",
		"from_id": rec.FromID,
		"kind":    recordKind(rec),
	}).Debug("received record without payload")
	return rec, nil, nil
}

func msgType(m *msg.Msg) string {
	if m.Header == nil {
		return ""
	}
	return m.Header.MsgType.String()
}

func recordKind(rec *record.Record) string {
	switch rec.RecordType.(type) {
	case *record.WebSocketConnectRecord:
		return "websocket_connect"
	case *record.MQTTConnectRecord:
		return "mqtt_connect"
	case *record.STOMPConnectRecord:
		return "stomp_connect"
	case *record.UDSConnectRecord:
		return "uds_connect"
	case *record.DisconnectRecord:
		return "disconnect"
	}
	return "none"
}
