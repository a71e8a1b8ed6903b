package msg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-usp/go-usp/lib/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func getMsg() *Msg {
	return &Msg{
		Header: &Header{MsgID: "get", MsgType: MsgTypeGet},
		Body: &Body{MsgBody: &Request{ReqType: &Get{
			ParamPaths: []string{"Device.", "Device.DeviceInfo."},
			MaxDepth:   1,
		}}},
	}
}

// TestGetEncoding pins the exact bytes of a simple Get request.
func TestGetEncoding(t *testing.T) {
	want := []byte{
		0x0a, 0x07, // header
		0x0a, 0x03, 'g', 'e', 't',
		0x10, 0x01,
		0x12, 0x26, // body
		0x0a, 0x24, // request
		0x0a, 0x22, // get
		0x0a, 0x07, 'D', 'e', 'v', 'i', 'c', 'e', '.',
		0x0a, 0x12, 'D', 'e', 'v', 'i', 'c', 'e', '.', 'D', 'e', 'v', 'i', 'c', 'e', 'I', 'n', 'f', 'o', '.',
		0x15, 0x01, 0x00, 0x00, 0x00,
	}

	m := getMsg()
	got, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), m.Size())

	decoded, err := Decode(got)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
	assert.Equal(t, "get", decoded.MsgID())
	get, ok := decoded.Body.GetRequest().ReqType.(*Get)
	require.True(t, ok)
	assert.Equal(t, uint32(1), get.MaxDepth)
}

func TestAddRespSuccessPath(t *testing.T) {
	m := &Msg{
		Header: &Header{MsgID: "add-1", MsgType: MsgTypeAddResp},
		Body: &Body{MsgBody: &Response{RespType: &AddResp{
			CreatedObjResults: []*AddRespCreatedObjectResult{{
				RequestedPath: "Device.Foo.",
				OperStatus: &AddRespOperationStatus{OperStatus: &AddRespOperationSuccess{
					InstantiatedPath: "Device.Foo.1.",
				}},
			}},
		}}},
	}

	data, err := m.MarshalBinary()
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)

	resp, ok := decoded.Body.GetResponse().RespType.(*AddResp)
	require.True(t, ok)
	require.Len(t, resp.CreatedObjResults, 1)
	success, ok := resp.CreatedObjResults[0].OperStatus.OperStatus.(*AddRespOperationSuccess)
	require.True(t, ok)
	assert.Equal(t, "Device.Foo.1.", success.InstantiatedPath)
	assert.Nil(t, success.ParamErrs)
	assert.Nil(t, success.UniqueKeys)
}

// TestRequestRoundTrip encodes and decodes every request operation inside a full Msg.
func TestRequestRoundTrip(t *testing.T) {
	for name, req := range requestSamples() {
		t.Run(name, func(t *testing.T) {
			body := &Body{MsgBody: &Request{ReqType: req}}
			mt, ok := MsgTypeOf(body)
			require.True(t, ok)
			m := &Msg{Header: &Header{MsgID: "id-" + name, MsgType: mt}, Body: body}

			data, err := m.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, len(data), m.Size())

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	for name, resp := range responseSamples() {
		t.Run(name, func(t *testing.T) {
			body := &Body{MsgBody: &Response{RespType: resp}}
			mt, ok := MsgTypeOf(body)
			require.True(t, ok)
			m := &Msg{Header: &Header{MsgID: "id-" + name, MsgType: mt}, Body: body}

			data, err := m.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, len(data), m.Size())

			decoded, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, m, decoded)
		})
	}
}

func TestNotificationRoundTrip(t *testing.T) {
	for name, n := range notificationSamples() {
		t.Run(name, func(t *testing.T) {
			in := &Notify{SubscriptionID: "sub-" + name, SendResp: true, Notification: n}
			data, err := in.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, len(data), in.Size())

			out := &Notify{}
			require.NoError(t, out.UnmarshalBinary(data))
			assert.Equal(t, in, out)
		})
	}
}

func TestErrorRoundTrip(t *testing.T) {
	m := &Msg{
		Header: &Header{MsgID: "err-1", MsgType: MsgTypeError},
		Body: &Body{MsgBody: &Error{
			ErrCode: 7004,
			ErrMsg:  "Invalid arguments",
			ParamErrs: []*ParamError{
				{ParamPath: "Device.Foo", ErrCode: 7010, ErrMsg: "Unsupported parameter"},
				{ParamPath: "Device.Bar"},
			},
		}},
	}
	data, err := m.MarshalBinary()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
	assert.Equal(t, uint32(7004), decoded.Body.GetError().ErrCode)
	assert.Nil(t, decoded.Body.GetRequest())
	assert.Nil(t, decoded.Body.GetResponse())
}

func TestEmptyMsg(t *testing.T) {
	m := &Msg{}
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Empty(t, data)

	decoded, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded.Header)
	assert.Nil(t, decoded.Body)
	assert.Equal(t, "", decoded.MsgID())
}

func TestEmptyNestedMessagesAreEmitted(t *testing.T) {
	m := &Msg{Header: &Header{}, Body: &Body{MsgBody: &Request{ReqType: &Get{}}}}
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x00, 0x12, 0x04, 0x0a, 0x02, 0x0a, 0x00}, data)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}

func TestEmptyReqObjPathIsEmitted(t *testing.T) {
	r := &OperateRespOperationResult{OperationResp: OperateRespReqObjPath("")}
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x00}, data)

	out := &OperateRespOperationResult{}
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, OperateRespReqObjPath(""), out.OperationResp)
}

// TestUnknownFieldsInterleaved inserts fields of every wire type between known ones.
func TestUnknownFieldsInterleaved(t *testing.T) {
	var get []byte
	get = protowire.AppendTag(get, 40, protowire.VarintType)
	get = protowire.AppendVarint(get, 300)
	get = protowire.AppendTag(get, 1, protowire.BytesType)
	get = protowire.AppendString(get, "Device.")
	get = protowire.AppendTag(get, 41, protowire.BytesType)
	get = protowire.AppendBytes(get, []byte{1, 2, 3})
	get = protowire.AppendTag(get, 42, protowire.Fixed64Type)
	get = protowire.AppendFixed64(get, 7)
	get = protowire.AppendTag(get, 2, protowire.Fixed32Type)
	get = protowire.AppendFixed32(get, 3)
	get = protowire.AppendTag(get, 43, protowire.Fixed32Type)
	get = protowire.AppendFixed32(get, 9)

	var req []byte
	req = protowire.AppendTag(req, 1, protowire.BytesType)
	req = protowire.AppendBytes(req, get)
	var body []byte
	body = protowire.AppendTag(body, 1, protowire.BytesType)
	body = protowire.AppendBytes(body, req)
	var data []byte
	data = protowire.AppendTag(data, 99, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)
	data = protowire.AppendTag(data, 2, protowire.BytesType)
	data = protowire.AppendBytes(data, body)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Nil(t, decoded.Header)
	assert.Equal(t, &Get{ParamPaths: []string{"Device."}, MaxDepth: 3}, decoded.Body.GetRequest().ReqType)
}

func TestOneofLastTagWins(t *testing.T) {
	req := (&Request{ReqType: &Get{ParamPaths: []string{"Device."}}}).AppendTo(nil)
	errBody := (&Error{ErrCode: 7000}).AppendTo(nil)

	var body []byte
	body = protowire.AppendTag(body, 1, protowire.BytesType)
	body = protowire.AppendBytes(body, req)
	body = protowire.AppendTag(body, 3, protowire.BytesType)
	body = protowire.AppendBytes(body, errBody)

	out := &Body{}
	require.NoError(t, out.UnmarshalBinary(body))
	assert.Equal(t, &Error{ErrCode: 7000}, out.MsgBody)
}

func TestRepeatedSingularMessageIsReplaced(t *testing.T) {
	first := (&Header{MsgID: "first", MsgType: MsgTypeGet}).AppendTo(nil)
	second := (&Header{MsgID: "second"}).AppendTo(nil)

	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendBytes(data, first)
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendBytes(data, second)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, &Header{MsgID: "second"}, decoded.Header)
}

func TestDecodeMalformed(t *testing.T) {
	good, err := getMsg().MarshalBinary()
	require.NoError(t, err)

	t.Run("Truncated", func(t *testing.T) {
		for i := 1; i < len(good); i++ {
			_, err := Decode(good[:i])
			if err == nil {
				// a prefix ending on a field boundary of the outer message is valid
				continue
			}
			assert.True(t, errors.Is(err, wire.ErrTruncated) || errors.Is(err, wire.ErrMalformed), "prefix %d: %v", i, err)
		}
		_, err := Decode(good[:len(good)-1])
		assert.ErrorIs(t, err, wire.ErrTruncated)
	})

	t.Run("InvalidUTF8InMsgID", func(t *testing.T) {
		_, err := Decode([]byte{0x0a, 0x03, 0x0a, 0x01, 0xff})
		assert.ErrorIs(t, err, wire.ErrInvalidUTF8)
	})
}

func TestWireTypeMismatchIsSkipped(t *testing.T) {
	t.Run("HeaderMsgType", func(t *testing.T) {
		// msg_type arrives length-delimited instead of as a varint
		header := []byte{0x0a, 0x03, 'g', 'e', 't', 0x12, 0x06, 'f', 'u', 't', 'u', 'r', 'e'}
		var data []byte
		data = protowire.AppendTag(data, 1, protowire.BytesType)
		data = protowire.AppendBytes(data, header)

		decoded, err := Decode(data)
		require.NoError(t, err)

		without, err := Decode(wire.Marshal(&Msg{Header: &Header{MsgID: "get"}}))
		require.NoError(t, err)
		assert.Equal(t, without, decoded)
	})

	t.Run("HeaderAsVarint", func(t *testing.T) {
		decoded, err := Decode([]byte{0x08, 0x01})
		require.NoError(t, err)
		assert.Equal(t, &Msg{}, decoded)
	})

	t.Run("BodyAlternativeAsVarint", func(t *testing.T) {
		good, err := getMsg().MarshalBinary()
		require.NoError(t, err)

		// a Body followed by a varint on the request alternative keeps the request
		body := wire.Marshal(getMsg().Body)
		body = protowire.AppendTag(body, 1, protowire.VarintType)
		body = protowire.AppendVarint(body, 7)
		data := wire.AppendMessage(nil, 1, getMsg().Header)
		data = protowire.AppendTag(data, 2, protowire.BytesType)
		data = protowire.AppendBytes(data, body)

		decoded, err := Decode(data)
		require.NoError(t, err)
		want, err := Decode(good)
		require.NoError(t, err)
		assert.Equal(t, want, decoded)
	})

	t.Run("ReqObjPathAsVarint", func(t *testing.T) {
		var data []byte
		data = protowire.AppendTag(data, 1, protowire.BytesType)
		data = protowire.AppendString(data, "Device.Reboot()")
		data = protowire.AppendTag(data, 2, protowire.VarintType)
		data = protowire.AppendVarint(data, 1)

		out := &OperateRespOperationResult{}
		require.NoError(t, out.UnmarshalBinary(data))
		assert.Equal(t, &OperateRespOperationResult{ExecutedCommand: "Device.Reboot()"}, out)
	})
}

func TestMarshalIsDeterministic(t *testing.T) {
	m := &Msg{
		Header: &Header{MsgID: "op", MsgType: MsgTypeOperate},
		Body: &Body{MsgBody: &Request{ReqType: &Operate{
			Command:   "Device.X()",
			InputArgs: map[string]string{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"},
		}}},
	}
	first, err := m.MarshalBinary()
	require.NoError(t, err)
	for range 20 {
		again, err := m.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo(t *testing.T) {
	m := getMsg()

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(m.Size()), n)
	want, _ := m.MarshalBinary()
	assert.Equal(t, want, buf.Bytes())

	_, err = m.WriteTo(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestMsgTypeOf(t *testing.T) {
	want := map[string]MsgType{
		"Get":                      MsgTypeGet,
		"GetSupportedDM":           MsgTypeGetSupportedDM,
		"GetInstances":             MsgTypeGetInstances,
		"Set":                      MsgTypeSet,
		"Add":                      MsgTypeAdd,
		"Delete":                   MsgTypeDelete,
		"Operate":                  MsgTypeOperate,
		"Notify":                   MsgTypeNotify,
		"GetSupportedProtocol":     MsgTypeGetSupportedProto,
		"Register":                 MsgTypeRegister,
		"Deregister":               MsgTypeDeregister,
		"GetResp":                  MsgTypeGetResp,
		"GetSupportedDMResp":       MsgTypeGetSupportedDMResp,
		"GetInstancesResp":         MsgTypeGetInstancesResp,
		"SetResp":                  MsgTypeSetResp,
		"AddResp":                  MsgTypeAddResp,
		"DeleteResp":               MsgTypeDeleteResp,
		"OperateResp":              MsgTypeOperateResp,
		"NotifyResp":               MsgTypeNotifyResp,
		"GetSupportedProtocolResp": MsgTypeGetSupportedProtoResp,
		"RegisterResp":             MsgTypeRegisterResp,
		"DeregisterResp":           MsgTypeDeregisterResp,
	}
	for name, req := range requestSamples() {
		got, ok := MsgTypeOf(&Body{MsgBody: &Request{ReqType: req}})
		assert.True(t, ok, name)
		assert.Equal(t, want[name], got, name)
	}
	for name, resp := range responseSamples() {
		got, ok := MsgTypeOf(&Body{MsgBody: &Response{RespType: resp}})
		assert.True(t, ok, name)
		assert.Equal(t, want[name], got, name)
	}

	got, ok := MsgTypeOf(&Body{MsgBody: &Error{}})
	assert.True(t, ok)
	assert.Equal(t, MsgTypeError, got)

	for _, body := range []*Body{nil, {}, {MsgBody: &Request{}}, {MsgBody: &Response{}}} {
		_, ok := MsgTypeOf(body)
		assert.False(t, ok)
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "GET_RESP", MsgTypeGetResp.String())
	assert.Equal(t, "GET_SUPPORTED_PROTO", MsgTypeGetSupportedProto.String())
	assert.Equal(t, "99", MsgType(99).String())
	assert.Equal(t, "PARAM_STRING", ParamString.String())
}
