package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// GetSupportedDM asks an agent which parts of the data model it supports.
type GetSupportedDM struct {
	ObjPaths            []string
	FirstLevelOnly      bool
	ReturnCommands      bool
	ReturnEvents        bool
	ReturnParams        bool
	ReturnUniqueKeySets bool
}

// Size returns the encoded length of m.
func (m *GetSupportedDM) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.ObjPaths) +
		wire.SizeBool(2, m.FirstLevelOnly) +
		wire.SizeBool(3, m.ReturnCommands) +
		wire.SizeBool(4, m.ReturnEvents) +
		wire.SizeBool(5, m.ReturnParams) +
		wire.SizeBool(6, m.ReturnUniqueKeySets)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDM) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendRepeatedString(b, 1, m.ObjPaths)
	b = wire.AppendBool(b, 2, m.FirstLevelOnly)
	b = wire.AppendBool(b, 3, m.ReturnCommands)
	b = wire.AppendBool(b, 4, m.ReturnEvents)
	b = wire.AppendBool(b, 5, m.ReturnParams)
	b = wire.AppendBool(b, 6, m.ReturnUniqueKeySets)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDM) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDM) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDM{}
	return wire.Decode(data, "usp.GetSupportedDM", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ObjPaths, err = d.AppendString(typ, m.ObjPaths)
		case 2:
			err = d.Bool(typ, &m.FirstLevelOnly)
		case 3:
			err = d.Bool(typ, &m.ReturnCommands)
		case 4:
			err = d.Bool(typ, &m.ReturnEvents)
		case 5:
			err = d.Bool(typ, &m.ReturnParams)
		case 6:
			err = d.Bool(typ, &m.ReturnUniqueKeySets)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// GetSupportedDMResp lists the supported objects below each requested path.
type GetSupportedDMResp struct {
	ReqObjResults []*GetSupportedDMRespRequestedObjectResult
}

// Size returns the encoded length of m.
func (m *GetSupportedDMResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.ReqObjResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.ReqObjResults)
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMResp) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMResp{}
	return wire.Decode(data, "usp.GetSupportedDMResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.ReqObjResults, err = wire.ReadRepeated[GetSupportedDMRespRequestedObjectResult](d, typ, m.ReqObjResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespRequestedObjectResult struct {
	ReqObjPath       string
	ErrCode          uint32
	ErrMsg           string
	DataModelInstURI string
	SupportedObjs    []*GetSupportedDMRespSupportedObjectResult
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespRequestedObjectResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ReqObjPath) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg) +
		wire.SizeString(4, m.DataModelInstURI) +
		wire.SizeRepeated(5, m.SupportedObjs)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespRequestedObjectResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ReqObjPath)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	b = wire.AppendString(b, 4, m.DataModelInstURI)
	b = wire.AppendRepeated(b, 5, m.SupportedObjs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespRequestedObjectResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespRequestedObjectResult) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespRequestedObjectResult{}
	return wire.Decode(data, "usp.GetSupportedDMResp.RequestedObjectResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ReqObjPath)
		case 2:
			err = d.Fixed32(typ, &m.ErrCode)
		case 3:
			err = d.String(typ, &m.ErrMsg)
		case 4:
			err = d.String(typ, &m.DataModelInstURI)
		case 5:
			m.SupportedObjs, err = wire.ReadRepeated[GetSupportedDMRespSupportedObjectResult](d, typ, m.SupportedObjs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespSupportedObjectResult struct {
	SupportedObjPath  string
	Access            ObjAccessType
	IsMultiInstance   bool
	SupportedCommands []*GetSupportedDMRespSupportedCommandResult
	SupportedEvents   []*GetSupportedDMRespSupportedEventResult
	SupportedParams   []*GetSupportedDMRespSupportedParamResult
	DivergentPaths    []string
	UniqueKeySets     []*GetSupportedDMRespSupportedUniqueKeySet
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespSupportedObjectResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.SupportedObjPath) +
		wire.SizeEnum(2, int32(m.Access)) +
		wire.SizeBool(3, m.IsMultiInstance) +
		wire.SizeRepeated(4, m.SupportedCommands) +
		wire.SizeRepeated(5, m.SupportedEvents) +
		wire.SizeRepeated(6, m.SupportedParams) +
		wire.SizeRepeatedString(7, m.DivergentPaths) +
		wire.SizeRepeated(8, m.UniqueKeySets)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespSupportedObjectResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.SupportedObjPath)
	b = wire.AppendEnum(b, 2, int32(m.Access))
	b = wire.AppendBool(b, 3, m.IsMultiInstance)
	b = wire.AppendRepeated(b, 4, m.SupportedCommands)
	b = wire.AppendRepeated(b, 5, m.SupportedEvents)
	b = wire.AppendRepeated(b, 6, m.SupportedParams)
	b = wire.AppendRepeatedString(b, 7, m.DivergentPaths)
	b = wire.AppendRepeated(b, 8, m.UniqueKeySets)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespSupportedObjectResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespSupportedObjectResult) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespSupportedObjectResult{}
	return wire.Decode(data, "usp.GetSupportedDMResp.SupportedObjectResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.SupportedObjPath)
		case 2:
			err = wire.Enum(d, typ, &m.Access)
		case 3:
			err = d.Bool(typ, &m.IsMultiInstance)
		case 4:
			m.SupportedCommands, err = wire.ReadRepeated[GetSupportedDMRespSupportedCommandResult](d, typ, m.SupportedCommands)
		case 5:
			m.SupportedEvents, err = wire.ReadRepeated[GetSupportedDMRespSupportedEventResult](d, typ, m.SupportedEvents)
		case 6:
			m.SupportedParams, err = wire.ReadRepeated[GetSupportedDMRespSupportedParamResult](d, typ, m.SupportedParams)
		case 7:
			m.DivergentPaths, err = d.AppendString(typ, m.DivergentPaths)
		case 8:
			m.UniqueKeySets, err = wire.ReadRepeated[GetSupportedDMRespSupportedUniqueKeySet](d, typ, m.UniqueKeySets)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespSupportedParamResult struct {
	ParamName   string
	Access      ParamAccessType
	ValueType   ParamValueType
	ValueChange ValueChangeType
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespSupportedParamResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ParamName) +
		wire.SizeEnum(2, int32(m.Access)) +
		wire.SizeEnum(3, int32(m.ValueType)) +
		wire.SizeEnum(4, int32(m.ValueChange))
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespSupportedParamResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ParamName)
	b = wire.AppendEnum(b, 2, int32(m.Access))
	b = wire.AppendEnum(b, 3, int32(m.ValueType))
	b = wire.AppendEnum(b, 4, int32(m.ValueChange))
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespSupportedParamResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespSupportedParamResult) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespSupportedParamResult{}
	return wire.Decode(data, "usp.GetSupportedDMResp.SupportedParamResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ParamName)
		case 2:
			err = wire.Enum(d, typ, &m.Access)
		case 3:
			err = wire.Enum(d, typ, &m.ValueType)
		case 4:
			err = wire.Enum(d, typ, &m.ValueChange)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespSupportedCommandResult struct {
	CommandName    string
	InputArgNames  []string
	OutputArgNames []string
	CommandType    CmdType
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespSupportedCommandResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.CommandName) +
		wire.SizeRepeatedString(2, m.InputArgNames) +
		wire.SizeRepeatedString(3, m.OutputArgNames) +
		wire.SizeEnum(4, int32(m.CommandType))
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespSupportedCommandResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.CommandName)
	b = wire.AppendRepeatedString(b, 2, m.InputArgNames)
	b = wire.AppendRepeatedString(b, 3, m.OutputArgNames)
	b = wire.AppendEnum(b, 4, int32(m.CommandType))
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespSupportedCommandResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespSupportedCommandResult) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespSupportedCommandResult{}
	return wire.Decode(data, "usp.GetSupportedDMResp.SupportedCommandResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.CommandName)
		case 2:
			m.InputArgNames, err = d.AppendString(typ, m.InputArgNames)
		case 3:
			m.OutputArgNames, err = d.AppendString(typ, m.OutputArgNames)
		case 4:
			err = wire.Enum(d, typ, &m.CommandType)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespSupportedEventResult struct {
	EventName string
	ArgNames  []string
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespSupportedEventResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.EventName) +
		wire.SizeRepeatedString(2, m.ArgNames)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespSupportedEventResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.EventName)
	b = wire.AppendRepeatedString(b, 2, m.ArgNames)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespSupportedEventResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespSupportedEventResult) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespSupportedEventResult{}
	return wire.Decode(data, "usp.GetSupportedDMResp.SupportedEventResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.EventName)
		case 2:
			m.ArgNames, err = d.AppendString(typ, m.ArgNames)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type GetSupportedDMRespSupportedUniqueKeySet struct {
	KeyNames []string
}

// Size returns the encoded length of m.
func (m *GetSupportedDMRespSupportedUniqueKeySet) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.KeyNames)
}

// AppendTo appends the wire encoding of m to b.
func (m *GetSupportedDMRespSupportedUniqueKeySet) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeatedString(b, 1, m.KeyNames)
}

// MarshalBinary encodes m. It never fails.
func (m *GetSupportedDMRespSupportedUniqueKeySet) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *GetSupportedDMRespSupportedUniqueKeySet) UnmarshalBinary(data []byte) error {
	*m = GetSupportedDMRespSupportedUniqueKeySet{}
	return wire.Decode(data, "usp.GetSupportedDMResp.SupportedUniqueKeySet", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.KeyNames, err = d.AppendString(typ, m.KeyNames)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
