package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Get requests the values of the parameters below each path. MaxDepth limits how many
// levels of the sub-tree are returned; zero means no limit.
type Get struct {
	ParamPaths []string
	MaxDepth   uint32
}

// Size returns the encoded length of m.
func (m *Get) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.ParamPaths) +
		wire.SizeFixed32(2, m.MaxDepth)
}

// AppendTo appends the wire encoding of m to b.
func (m *Get) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendRepeatedString(b, 1, m.ParamPaths)
	b = wire.AppendFixed32(b, 2, m.MaxDepth)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Get) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Get) UnmarshalBinary(data []byte) error {
	*m = Get{}
	return wire.Decode(data, "usp.Get", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ParamPaths, err = d.AppendString(typ, m.ParamPaths)
		case 2:
			err = d.Fixed32(typ, &m.MaxDepth)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// GetResp answers a Get with one result per requested path.
type GetResp struct {
	ReqPathResults []*GetRespRequestedPathResult
}

// Size returns the encoded length of m.
func (m *GetResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.ReqPathResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.ReqPathResults)
}

// MarshalBinary encodes m. It never fails.
func (m *GetResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetResp) UnmarshalBinary(data []byte) error {
	*m = GetResp{}
	return wire.Decode(data, "usp.GetResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ReqPathResults, err = wire.ReadRepeated[GetRespRequestedPathResult](d, typ, m.ReqPathResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// GetRespRequestedPathResult is the outcome for one requested path. A non-zero ErrCode
// means the path failed and ResolvedPathResults is empty.
type GetRespRequestedPathResult struct {
	RequestedPath       string
	ErrCode             uint32
	ErrMsg              string
	ResolvedPathResults []*GetRespResolvedPathResult
}

// Size returns the encoded length of m.
func (m *GetRespRequestedPathResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.RequestedPath) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg) +
		wire.SizeRepeated(4, m.ResolvedPathResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetRespRequestedPathResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.RequestedPath)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	b = wire.AppendRepeated(b, 4, m.ResolvedPathResults)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetRespRequestedPathResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetRespRequestedPathResult) UnmarshalBinary(data []byte) error {
	*m = GetRespRequestedPathResult{}
	return wire.Decode(data, "usp.GetResp.RequestedPathResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			err = d.Fixed32(typ, &m.ErrCode)
		case 3:
			err = d.String(typ, &m.ErrMsg)
		case 4:
			m.ResolvedPathResults, err = wire.ReadRepeated[GetRespResolvedPathResult](d, typ, m.ResolvedPathResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// GetRespResolvedPathResult holds the parameters of one resolved object. Keys of
// ResultParams are relative to ResolvedPath.
type GetRespResolvedPathResult struct {
	ResolvedPath string
	ResultParams map[string]string
}

// Size returns the encoded length of m.
func (m *GetRespResolvedPathResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ResolvedPath) +
		wire.SizeStringMap(2, m.ResultParams)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetRespResolvedPathResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ResolvedPath)
	b = wire.AppendStringMap(b, 2, m.ResultParams)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetRespResolvedPathResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetRespResolvedPathResult) UnmarshalBinary(data []byte) error {
	*m = GetRespResolvedPathResult{}
	return wire.Decode(data, "usp.GetResp.ResolvedPathResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ResolvedPath)
		case 2:
			m.ResultParams, err = d.StringMap(typ, m.ResultParams)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
