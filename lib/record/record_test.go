package record

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-usp/go-usp/lib/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleRecords() map[string]*Record {
	base := func(rt RecordType) *Record {
		return &Record{
			Version:    "1.3",
			ToID:       "proto::agent",
			FromID:     "proto::controller",
			RecordType: rt,
		}
	}
	signed := base(NewNoSessionContext([]byte{0x0a, 0x00}))
	signed.PayloadSecurity = TLS12
	signed.MacSignature = []byte{0xde, 0xad}
	signed.SenderCert = []byte("-----BEGIN CERTIFICATE-----")

	return map[string]*Record{
		"NoSessionContext": base(NewNoSessionContext([]byte{1, 2, 3})),
		"Signed":           signed,
		"SessionContext": base(&SessionContextRecord{
			SessionID:          7,
			SequenceID:         1 << 40,
			ExpectedID:         3,
			RetransmitID:       2,
			PayloadSARState:    SARInProcess,
			PayloadrecSARState: SARBegin,
			Payload:            [][]byte{{1}, {2, 3}},
		}),
		"WebSocketConnect": base(&WebSocketConnectRecord{}),
		"MQTTConnect":      base(&MQTTConnectRecord{Version: MQTTv5, SubscribedTopic: "usp/agent"}),
		"STOMPConnect":     base(&STOMPConnectRecord{SubscribedDestination: "/queue/agent"}),
		"Disconnect":       base(&DisconnectRecord{Reason: "shutting down", ReasonCode: 7105}),
		"UDSConnect":       base(&UDSConnectRecord{}),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, r := range sampleRecords() {
		t.Run(name, func(t *testing.T) {
			data, err := r.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, len(data), r.Size())

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, r, decoded)
		})
	}
}

func TestNoSessionContextEncoding(t *testing.T) {
	r := &Record{ToID: "a", FromID: "b", RecordType: NewNoSessionContext([]byte{0x0a, 0x00})}
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x12, 0x01, 'a',
		0x1a, 0x01, 'b',
		0x3a, 0x04, 0x12, 0x02, 0x0a, 0x00,
	}, data)
}

func TestEmptyConnectRecordIsEmitted(t *testing.T) {
	r := &Record{RecordType: &WebSocketConnectRecord{}}
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x4a, 0x00}, data)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.IsType(t, &WebSocketConnectRecord{}, decoded.RecordType)
}

func TestUnfragmented(t *testing.T) {
	payload := []byte("encoded msg")
	sc := NewUnfragmented(5, 9, 10, payload)
	assert.Equal(t, SARNone, sc.PayloadSARState)
	assert.Equal(t, SARNone, sc.PayloadrecSARState)
	assert.True(t, sc.Complete())
	assert.Equal(t, payload, sc.Concat())

	r := &Record{ToID: "a", FromID: "b", RecordType: sc}
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	got := decoded.GetSessionContext()
	require.NotNil(t, got)
	assert.Equal(t, uint64(5), got.SessionID)
	assert.Equal(t, uint64(9), got.SequenceID)
	assert.Equal(t, uint64(10), got.ExpectedID)
	assert.Equal(t, payload, got.Concat())
	assert.Nil(t, decoded.GetNoSessionContext())
}

func TestConcat(t *testing.T) {
	sc := &SessionContextRecord{Payload: [][]byte{[]byte("ab"), []byte("cd"), []byte("e")}}
	assert.Equal(t, []byte("abcde"), sc.Concat())
	assert.Empty(t, (&SessionContextRecord{}).Concat())

	sc.PayloadSARState = SARInProcess
	assert.False(t, sc.Complete())
	sc.PayloadSARState = SARComplete
	assert.True(t, sc.Complete())
}

func TestRecordTypeLastTagWins(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 7, protowire.BytesType)
	data = protowire.AppendBytes(data, NewNoSessionContext([]byte{1}).AppendTo(nil))
	data = protowire.AppendTag(data, 12, protowire.BytesType)
	data = protowire.AppendBytes(data, (&DisconnectRecord{Reason: "bye"}).AppendTo(nil))

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, &DisconnectRecord{Reason: "bye"}, decoded.RecordType)
}

func TestUnknownFieldsSkipped(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 100, protowire.BytesType)
	data = protowire.AppendString(data, "future")
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "1.4")
	data = protowire.AppendTag(data, 101, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, &Record{Version: "1.4"}, decoded)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{0x3a, 0x05, 0x12})
	assert.ErrorIs(t, err, wire.ErrTruncated)

	_, err = Decode([]byte{0x20, 0x01, 0x0a, 0x01, 0xc0})
	assert.ErrorIs(t, err, wire.ErrInvalidUTF8)
}

func TestWireTypeMismatchIsSkipped(t *testing.T) {
	// session_id sent as a length-delimited field
	decoded, err := Decode([]byte{0x42, 0x03, 0x0a, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, &Record{RecordType: &SessionContextRecord{}}, decoded)

	// a later mismatched copy of version leaves the decoded value in place
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "1.4")
	data = protowire.AppendTag(data, 1, protowire.Fixed32Type)
	data = protowire.AppendFixed32(data, 3)
	data = protowire.AppendTag(data, 8, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	decoded, err = Decode(data)
	require.NoError(t, err)
	assert.Equal(t, &Record{Version: "1.4"}, decoded)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteTo(t *testing.T) {
	r := sampleRecords()["MQTTConnect"]
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(r.Size()), n)

	_, err = r.WriteTo(brokenWriter{})
	assert.ErrorContains(t, err, "connection reset")
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "TLS12", TLS12.String())
	assert.Equal(t, "INPROCESS", SARInProcess.String())
	assert.Equal(t, "V3_1_1", MQTTv311.String())
	assert.Equal(t, "V1_2", STOMPv12.String())
	assert.Equal(t, "9", SARState(9).String())
}
