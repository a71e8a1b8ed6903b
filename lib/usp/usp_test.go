package usp

import (
	"context"
	"testing"

	"github.com/go-usp/go-usp/lib/builder"
	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/go-usp/go-usp/lib/sar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getMsg(t *testing.T) *msg.Msg {
	t.Helper()
	get, err := builder.NewGetBuilder().AddParamPath("Device.", "Device.DeviceInfo.").WithMaxDepth(1).Build()
	require.NoError(t, err)
	m, err := builder.NewMsgBuilder().WithMsgID("get").WithRequest(get).Build()
	require.NoError(t, err)
	return m
}

func envelope() *record.Record {
	return &record.Record{ToID: "proto::agent", FromID: "proto::controller"}
}

func TestGetScenario(t *testing.T) {
	data, err := EncodeMsg(getMsg(t))
	require.NoError(t, err)

	m, err := DecodeMsg(data)
	require.NoError(t, err)
	assert.Equal(t, "get", m.MsgID())
	assert.Equal(t, msg.MsgTypeGet, m.Header.MsgType)
	get, ok := m.Body.GetRequest().ReqType.(*msg.Get)
	require.True(t, ok)
	assert.Equal(t, []string{"Device.", "Device.DeviceInfo."}, get.ParamPaths)
	assert.Equal(t, uint32(1), get.MaxDepth)
}

func TestWrapAndExtract(t *testing.T) {
	m := getMsg(t)
	rec, err := WrapMsg(envelope(), m)
	require.NoError(t, err)
	assert.Equal(t, "1.3", rec.Version)
	assert.Equal(t, record.PlainText, rec.PayloadSecurity)
	require.NotNil(t, rec.GetNoSessionContext())

	data, err := EncodeRecord(rec)
	require.NoError(t, err)
	decoded, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, rec, decoded)

	got, err := ExtractMsg(decoded)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestWrapMsgTemplate(t *testing.T) {
	tmpl := envelope()
	tmpl.Version = "1.2"
	tmpl.PayloadSecurity = record.TLS12
	tmpl.MacSignature = []byte{1, 2}
	tmpl.RecordType = &record.WebSocketConnectRecord{}

	rec, err := WrapMsg(tmpl, getMsg(t))
	require.NoError(t, err)
	assert.Equal(t, "1.2", rec.Version)
	assert.Equal(t, record.TLS12, rec.PayloadSecurity)
	assert.Equal(t, []byte{1, 2}, rec.MacSignature)
	assert.IsType(t, &record.NoSessionContextRecord{}, rec.RecordType)

	_, err = WrapMsg(nil, getMsg(t))
	assert.ErrorIs(t, err, builder.ErrMissingField)
	_, err = WrapMsg(envelope(), nil)
	assert.ErrorIs(t, err, ErrNilMsg)
}

func TestExtractMsg(t *testing.T) {
	payload, err := EncodeMsg(getMsg(t))
	require.NoError(t, err)

	tests := []struct {
		name    string
		rec     *record.Record
		wantErr error
	}{
		{"Nil", nil, ErrNoPayload},
		{"Unset", &record.Record{}, ErrNoPayload},
		{"Connect", &record.Record{RecordType: &record.MQTTConnectRecord{}}, ErrNoPayload},
		{"Disconnect", &record.Record{RecordType: &record.DisconnectRecord{Reason: "bye"}}, ErrNoPayload},
		{"Begin", &record.Record{RecordType: &record.SessionContextRecord{
			PayloadSARState: record.SARBegin,
			Payload:         [][]byte{payload[:4]},
		}}, ErrIncompletePayload},
		{"InProcess", &record.Record{RecordType: &record.SessionContextRecord{
			PayloadSARState: record.SARInProcess,
		}}, ErrIncompletePayload},
		{"Unfragmented", &record.Record{RecordType: record.NewUnfragmented(1, 1, 0, payload)}, nil},
		{"Complete", &record.Record{RecordType: &record.SessionContextRecord{
			PayloadSARState: record.SARComplete,
			Payload:         [][]byte{payload[3:]},
		}}, ErrIncompletePayload},
		{"NoneMultiplePayloads", &record.Record{RecordType: &record.SessionContextRecord{
			PayloadSARState: record.SARNone,
			Payload:         [][]byte{payload[:3], payload[3:]},
		}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ExtractMsg(tt.rec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "get", m.MsgID())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeMsg([]byte{0x0a, 0x10})
	assert.Error(t, err)
	_, err = DecodeRecord([]byte{0xff})
	assert.Error(t, err)
}

func TestNewCodec(t *testing.T) {
	cfg := config.DefaultCodecConfig()
	cfg.Record.Version = ""
	_, err := NewCodec(cfg)
	assert.Error(t, err)

	c, err := NewCodec(nil)
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = NewCodec(config.DefaultCodecConfig())
	require.NoError(t, err)
	assert.NotNil(t, c.Reassembler())
	assert.Equal(t, "1.3", c.Config().Record.Version)
	assert.NoError(t, c.Close())
	assert.NoError(t, std.Close())
}

func TestRecordSizeLimit(t *testing.T) {
	cfg := config.DefaultCodecConfig()
	cfg.MaxRecordSize = 64
	cfg.SAR.MaxFragmentSize = 16
	c, err := NewCodec(cfg)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.DecodeRecord(make([]byte, 65))
	assert.ErrorIs(t, err, ErrRecordTooLarge)

	rec, err := c.WrapMsg(envelope(), getMsg(t))
	require.NoError(t, err)
	rec.RecordType = record.NewNoSessionContext(make([]byte, 100))
	_, err = c.EncodeRecord(rec)
	assert.ErrorIs(t, err, ErrRecordTooLarge)
}

func TestWrapSessionAndReceive(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultCodecConfig()
	cfg.Record.PayloadSecurity = "TLS12"
	cfg.SAR.MaxFragmentSize = 8
	c, err := NewCodec(cfg)
	require.NoError(t, err)
	defer c.Close()

	m := getMsg(t)
	recs, err := c.WrapSession(envelope(), m, sar.SegmentOptions{SessionID: 3, FirstSequenceID: 1})
	require.NoError(t, err)
	require.Greater(t, len(recs), 2)

	var got *msg.Msg
	for i, rec := range recs {
		assert.Equal(t, record.TLS12, rec.PayloadSecurity)
		data, err := c.EncodeRecord(rec)
		require.NoError(t, err)

		var decoded *record.Record
		decoded, got, err = c.Receive(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, uint64(1+i), decoded.GetSessionContext().SequenceID)
		if i < len(recs)-1 {
			assert.Nil(t, got)
		}
	}
	assert.Equal(t, m, got)

	_, err = c.WrapSession(envelope(), m, sar.SegmentOptions{MaxFragmentSize: -1})
	assert.ErrorIs(t, err, sar.ErrInvalidFragmentSize)
}

func TestReceive(t *testing.T) {
	ctx := context.Background()
	c, err := NewCodec(config.DefaultCodecConfig())
	require.NoError(t, err)
	defer c.Close()

	rec, err := builder.NewRecordBuilder().WithToID("a").WithFromID("b").
		WithSTOMPConnect(record.STOMPv12, "/queue/agent").Build()
	require.NoError(t, err)
	data, err := EncodeRecord(rec)
	require.NoError(t, err)

	decoded, m, err := c.Receive(ctx, data)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.Equal(t, rec, decoded)

	wrapped, err := WrapMsg(envelope(), getMsg(t))
	require.NoError(t, err)
	data, err = EncodeRecord(wrapped)
	require.NoError(t, err)
	_, m, err = c.Receive(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "get", m.MsgID())

	_, _, err = c.Receive(ctx, []byte{0x0a})
	assert.Error(t, err)

	// Without a reassembler only whole payloads are accepted.
	segment := &record.Record{Version: "1.3", ToID: "a", FromID: "b",
		RecordType: &record.SessionContextRecord{PayloadSARState: record.SARBegin}}
	data, err = EncodeRecord(segment)
	require.NoError(t, err)
	_, _, err = std.Receive(ctx, data)
	assert.ErrorIs(t, err, ErrIncompletePayload)
}
