package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// GetInstances asks for the instances (and their unique keys) of multi-instance objects.
type GetInstances struct {
	ObjPaths       []string
	FirstLevelOnly bool
}

// Size returns the encoded length of m.
func (m *GetInstances) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.ObjPaths) +
		wire.SizeBool(2, m.FirstLevelOnly)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetInstances) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendRepeatedString(b, 1, m.ObjPaths)
	b = wire.AppendBool(b, 2, m.FirstLevelOnly)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetInstances) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetInstances) UnmarshalBinary(data []byte) error {
	*m = GetInstances{}
	return wire.Decode(data, "usp.GetInstances", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ObjPaths, err = d.AppendString(typ, m.ObjPaths)
		case 2:
			err = d.Bool(typ, &m.FirstLevelOnly)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetInstancesResp struct {
	ReqPathResults []*GetInstancesRespRequestedPathResult
}

// Size returns the encoded length of m.
func (m *GetInstancesResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.ReqPathResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetInstancesResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.ReqPathResults)
}

// MarshalBinary encodes m. It never fails.
func (m *GetInstancesResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetInstancesResp) UnmarshalBinary(data []byte) error {
	*m = GetInstancesResp{}
	return wire.Decode(data, "usp.GetInstancesResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ReqPathResults, err = wire.ReadRepeated[GetInstancesRespRequestedPathResult](d, typ, m.ReqPathResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetInstancesRespRequestedPathResult struct {
	RequestedPath string
	ErrCode       uint32
	ErrMsg        string
	CurrInsts     []*GetInstancesRespCurrInstance
}

// Size returns the encoded length of m.
func (m *GetInstancesRespRequestedPathResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.RequestedPath) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg) +
		wire.SizeRepeated(4, m.CurrInsts)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetInstancesRespRequestedPathResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.RequestedPath)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	b = wire.AppendRepeated(b, 4, m.CurrInsts)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetInstancesRespRequestedPathResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetInstancesRespRequestedPathResult) UnmarshalBinary(data []byte) error {
	*m = GetInstancesRespRequestedPathResult{}
	return wire.Decode(data, "usp.GetInstancesResp.RequestedPathResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			err = d.Fixed32(typ, &m.ErrCode)
		case 3:
			err = d.String(typ, &m.ErrMsg)
		case 4:
			m.CurrInsts, err = wire.ReadRepeated[GetInstancesRespCurrInstance](d, typ, m.CurrInsts)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetInstancesRespCurrInstance struct {
	InstantiatedObjPath string
	UniqueKeys          map[string]string
}

// Size returns the encoded length of m.
func (m *GetInstancesRespCurrInstance) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.InstantiatedObjPath) +
		wire.SizeStringMap(2, m.UniqueKeys)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetInstancesRespCurrInstance) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.InstantiatedObjPath)
	b = wire.AppendStringMap(b, 2, m.UniqueKeys)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetInstancesRespCurrInstance) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetInstancesRespCurrInstance) UnmarshalBinary(data []byte) error {
	*m = GetInstancesRespCurrInstance{}
	return wire.Decode(data, "usp.GetInstancesResp.CurrInstance", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.InstantiatedObjPath)
		case 2:
			m.UniqueKeys, err = d.StringMap(typ, m.UniqueKeys)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
