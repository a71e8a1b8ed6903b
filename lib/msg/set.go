package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Set updates parameters of existing object instances.
type Set struct {
	AllowPartial bool
	UpdateObjs   []*SetUpdateObject
}

// Size returns the encoded length of m.
func (m *Set) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeBool(1, m.AllowPartial) +
		wire.SizeRepeated(2, m.UpdateObjs)
}

// AppendTo appends the wire encoding of m to b.
func (m *Set) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendBool(b, 1, m.AllowPartial)
	b = wire.AppendRepeated(b, 2, m.UpdateObjs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Set) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Set) UnmarshalBinary(data []byte) error {
	*m = Set{}
	return wire.Decode(data, "usp.Set", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Bool(typ, &m.AllowPartial)
		case 2:
			m.UpdateObjs, err = wire.ReadRepeated[SetUpdateObject](d, typ, m.UpdateObjs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetUpdateObject struct {
	ObjPath       string
	ParamSettings []*SetUpdateParamSetting
}

// Size returns the encoded length of m.
func (m *SetUpdateObject) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ObjPath) +
		wire.SizeRepeated(2, m.ParamSettings)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetUpdateObject) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ObjPath)
	b = wire.AppendRepeated(b, 2, m.ParamSettings)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetUpdateObject) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetUpdateObject) UnmarshalBinary(data []byte) error {
	*m = SetUpdateObject{}
	return wire.Decode(data, "usp.Set.UpdateObject", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		case 2:
			m.ParamSettings, err = wire.ReadRepeated[SetUpdateParamSetting](d, typ, m.ParamSettings)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetUpdateParamSetting struct {
	Param    string
	Value    string
	Required bool
}

// Size returns the encoded length of m.
func (m *SetUpdateParamSetting) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Param) +
		wire.SizeString(2, m.Value) +
		wire.SizeBool(3, m.Required)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetUpdateParamSetting) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Param)
	b = wire.AppendString(b, 2, m.Value)
	b = wire.AppendBool(b, 3, m.Required)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetUpdateParamSetting) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetUpdateParamSetting) UnmarshalBinary(data []byte) error {
	*m = SetUpdateParamSetting{}
	return wire.Decode(data, "usp.Set.UpdateParamSetting", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Param)
		case 2:
			err = d.String(typ, &m.Value)
		case 3:
			err = d.Bool(typ, &m.Required)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetResp struct {
	UpdatedObjResults []*SetRespUpdatedObjectResult
}

// Size returns the encoded length of m.
func (m *SetResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.UpdatedObjResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.UpdatedObjResults)
}

// MarshalBinary encodes m. It never fails.
func (m *SetResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetResp) UnmarshalBinary(data []byte) error {
	*m = SetResp{}
	return wire.Decode(data, "usp.SetResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.UpdatedObjResults, err = wire.ReadRepeated[SetRespUpdatedObjectResult](d, typ, m.UpdatedObjResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespUpdatedObjectResult struct {
	RequestedPath string
	OperStatus    *SetRespOperationStatus
}

// Size returns the encoded length of m.
func (m *SetRespUpdatedObjectResult) Size() int {
	if m == nil {
		return 0
	}
	n := wire.SizeString(1, m.RequestedPath)
	if m.OperStatus != nil {
		n += wire.SizeMessage(2, m.OperStatus)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespUpdatedObjectResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.RequestedPath)
	if m.OperStatus != nil {
		b = wire.AppendMessage(b, 2, m.OperStatus)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespUpdatedObjectResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespUpdatedObjectResult) UnmarshalBinary(data []byte) error {
	*m = SetRespUpdatedObjectResult{}
	return wire.Decode(data, "usp.SetResp.UpdatedObjectResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			var v *SetRespOperationStatus
			if v, err = wire.ReadMessage[SetRespOperationStatus](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespOperationStatus struct {
	OperStatus SetRespOperStatus
}

// Size returns the encoded length of m.
func (m *SetRespOperationStatus) Size() int {
	if m == nil {
		return 0
	}
	n := 0
	if m.OperStatus != nil {
		n += wire.SizeMessage(setRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespOperationStatus) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	if m.OperStatus != nil {
		b = wire.AppendMessage(b, setRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespOperationStatus) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespOperationStatus) UnmarshalBinary(data []byte) error {
	*m = SetRespOperationStatus{}
	return wire.Decode(data, "usp.SetResp.OperationStatus", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			var v *SetRespOperationFailure
			if v, err = wire.ReadMessage[SetRespOperationFailure](d, typ); v != nil {
				m.OperStatus = v
			}
		case 2:
			var v *SetRespOperationSuccess
			if v, err = wire.ReadMessage[SetRespOperationSuccess](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// SetRespOperStatus is *SetRespOperationFailure or *SetRespOperationSuccess.
type SetRespOperStatus interface {
	wire.Message
	isSetRespOperStatus()
}

func (*SetRespOperationFailure) isSetRespOperStatus() {}
func (*SetRespOperationSuccess) isSetRespOperStatus() {}

func setRespOperStatusTag(v SetRespOperStatus) protowire.Number {
	switch v.(type) {
	case *SetRespOperationFailure:
		return 1
	case *SetRespOperationSuccess:
		return 2
	}
	return 0
}

type SetRespOperationFailure struct {
	ErrCode             uint32
	ErrMsg              string
	UpdatedInstFailures []*SetRespUpdatedInstanceFailure
}

// Size returns the encoded length of m.
func (m *SetRespOperationFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg) +
		wire.SizeRepeated(3, m.UpdatedInstFailures)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespOperationFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	b = wire.AppendRepeated(b, 3, m.UpdatedInstFailures)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespOperationFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespOperationFailure) UnmarshalBinary(data []byte) error {
	*m = SetRespOperationFailure{}
	return wire.Decode(data, "usp.SetResp.OperationFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Fixed32(typ, &m.ErrCode)
		case 2:
			err = d.String(typ, &m.ErrMsg)
		case 3:
			m.UpdatedInstFailures, err = wire.ReadRepeated[SetRespUpdatedInstanceFailure](d, typ, m.UpdatedInstFailures)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespOperationSuccess struct {
	UpdatedInstResults []*SetRespUpdatedInstanceResult
}

// Size returns the encoded length of m.
func (m *SetRespOperationSuccess) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.UpdatedInstResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespOperationSuccess) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.UpdatedInstResults)
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespOperationSuccess) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespOperationSuccess) UnmarshalBinary(data []byte) error {
	*m = SetRespOperationSuccess{}
	return wire.Decode(data, "usp.SetResp.OperationSuccess", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.UpdatedInstResults, err = wire.ReadRepeated[SetRespUpdatedInstanceResult](d, typ, m.UpdatedInstResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespUpdatedInstanceFailure struct {
	AffectedPath string
	ParamErrs    []*SetRespParameterError
}

// Size returns the encoded length of m.
func (m *SetRespUpdatedInstanceFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.AffectedPath) +
		wire.SizeRepeated(2, m.ParamErrs)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespUpdatedInstanceFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.AffectedPath)
	b = wire.AppendRepeated(b, 2, m.ParamErrs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespUpdatedInstanceFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespUpdatedInstanceFailure) UnmarshalBinary(data []byte) error {
	*m = SetRespUpdatedInstanceFailure{}
	return wire.Decode(data, "usp.SetResp.UpdatedInstanceFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.AffectedPath)
		case 2:
			m.ParamErrs, err = wire.ReadRepeated[SetRespParameterError](d, typ, m.ParamErrs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespUpdatedInstanceResult struct {
	AffectedPath  string
	ParamErrs     []*SetRespParameterError
	UpdatedParams map[string]string
}

// Size returns the encoded length of m.
func (m *SetRespUpdatedInstanceResult) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.AffectedPath) +
		wire.SizeRepeated(2, m.ParamErrs) +
		wire.SizeStringMap(3, m.UpdatedParams)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespUpdatedInstanceResult) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.AffectedPath)
	b = wire.AppendRepeated(b, 2, m.ParamErrs)
	b = wire.AppendStringMap(b, 3, m.UpdatedParams)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespUpdatedInstanceResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespUpdatedInstanceResult) UnmarshalBinary(data []byte) error {
	*m = SetRespUpdatedInstanceResult{}
	return wire.Decode(data, "usp.SetResp.UpdatedInstanceResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.AffectedPath)
		case 2:
			m.ParamErrs, err = wire.ReadRepeated[SetRespParameterError](d, typ, m.ParamErrs)
		case 3:
			m.UpdatedParams, err = d.StringMap(typ, m.UpdatedParams)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type SetRespParameterError struct {
	Param   string
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *SetRespParameterError) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Param) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *SetRespParameterError) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Param)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *SetRespParameterError) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *SetRespParameterError) UnmarshalBinary(data []byte) error {
	*m = SetRespParameterError{}
	return wire.Decode(data, "usp.SetResp.ParameterError", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Param)
		case 2:
			err = d.Fixed32(typ, &m.ErrCode)
		case 3:
			err = d.String(typ, &m.ErrMsg)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
