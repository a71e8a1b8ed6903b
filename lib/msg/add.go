package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Add creates new instances of multi-instance objects. With AllowPartial set, a
// failure of one object does not roll back the others.
type Add struct {
	AllowPartial bool
	CreateObjs   []*AddCreateObject
}

// Size returns the encoded length of m.
func (m *Add) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeBool(1, m.AllowPartial) +
		wire.SizeRepeated(2, m.CreateObjs)
}

// AppendTo appends the wire encoding of m to b.
func (m *Add) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendBool(b, 1, m.AllowPartial)
	b = wire.AppendRepeated(b, 2, m.CreateObjs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Add) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Add) UnmarshalBinary(data []byte) error {
	*m = Add{}
	return wire.Decode(data, "usp.Add", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Bool(typ, &m.AllowPartial)
		case 2:
			m.CreateObjs, err = wire.ReadRepeated[AddCreateObject](d, typ, m.CreateObjs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type AddCreateObject struct {
	ObjPath       string
	ParamSettings []*AddCreateParamSetting
}

// Size returns the encoded length of m.
func (m *AddCreateObject) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ObjPath) +
		wire.SizeRepeated(2, m.ParamSettings)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddCreateObject) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ObjPath)
	b = wire.AppendRepeated(b, 2, m.ParamSettings)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *AddCreateObject) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddCreateObject) UnmarshalBinary(data []byte) error {
	*m = AddCreateObject{}
	return wire.Decode(data, "usp.Add.CreateObject", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		case 2:
			m.ParamSettings, err = wire.ReadRepeated[AddCreateParamSetting](d, typ, m.ParamSettings)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type AddCreateParamSetting struct {
	Param    string
	Value    string
	Required bool
}

// Size returns the encoded length of m.
func (m *AddCreateParamSetting) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Param) +
		wire.SizeString(2, m.Value) +
		wire.SizeBool(3, m.Required)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddCreateParamSetting) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Param)
	b = wire.AppendString(b, 2, m.Value)
	b = wire.AppendBool(b, 3, m.Required)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *AddCreateParamSetting) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddCreateParamSetting) UnmarshalBinary(data []byte) error {
	*m = AddCreateParamSetting{}
	return wire.Decode(data, "usp.Add.CreateParamSetting", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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

type AddResp struct {
	CreatedObjResults []*AddRespCreatedObjectResult
}

// Size returns the encoded length of m.
func (m *AddResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.CreatedObjResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.CreatedObjResults)
}

// MarshalBinary encodes m. It never fails.
func (m *AddResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddResp) UnmarshalBinary(data []byte) error {
	*m = AddResp{}
	return wire.Decode(data, "usp.AddResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.CreatedObjResults, err = wire.ReadRepeated[AddRespCreatedObjectResult](d, typ, m.CreatedObjResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type AddRespCreatedObjectResult struct {
	RequestedPath string
	OperStatus    *AddRespOperationStatus
}

// Size returns the encoded length of m.
func (m *AddRespCreatedObjectResult) Size() int {
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
func (m *AddRespCreatedObjectResult) AppendTo(b []byte) []byte {
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
func (m *AddRespCreatedObjectResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddRespCreatedObjectResult) UnmarshalBinary(data []byte) error {
	*m = AddRespCreatedObjectResult{}
	return wire.Decode(data, "usp.AddResp.CreatedObjectResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			var v *AddRespOperationStatus
			if v, err = wire.ReadMessage[AddRespOperationStatus](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// AddRespOperStatus is *AddRespOperationFailure or *AddRespOperationSuccess.
type AddRespOperStatus interface {
	wire.Message
	isAddRespOperStatus()
}

func (*AddRespOperationFailure) isAddRespOperStatus() {}
func (*AddRespOperationSuccess) isAddRespOperStatus() {}

type AddRespOperationStatus struct {
	OperStatus AddRespOperStatus
}

func addOperStatusTag(v AddRespOperStatus) protowire.Number {
	switch v.(type) {
	case *AddRespOperationFailure:
		return 1
	case *AddRespOperationSuccess:
		return 2
	}
	return 0
}

// Size returns the encoded length of m.
func (m *AddRespOperationStatus) Size() int {
	if m == nil || m.OperStatus == nil {
		return 0
	}
	return wire.SizeMessage(addOperStatusTag(m.OperStatus), m.OperStatus)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddRespOperationStatus) AppendTo(b []byte) []byte {
	if m == nil || m.OperStatus == nil {
		return b
	}
	return wire.AppendMessage(b, addOperStatusTag(m.OperStatus), m.OperStatus)
}

// MarshalBinary encodes m. It never fails.
func (m *AddRespOperationStatus) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddRespOperationStatus) UnmarshalBinary(data []byte) error {
	*m = AddRespOperationStatus{}
	return wire.Decode(data, "usp.AddResp.OperationStatus", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		var (
			v   AddRespOperStatus
			err error
		)
		// Every alternative is a nested message.
		if typ != protowire.BytesType {
			return d.Skip(num, typ)
		}
		switch num {
		case 1:
			v, err = wire.ReadMessage[AddRespOperationFailure](d, typ)
		case 2:
			v, err = wire.ReadMessage[AddRespOperationSuccess](d, typ)
		default:
			return d.Skip(num, typ)
		}
		if err != nil {
			return err
		}
		m.OperStatus = v
		return nil
	})
}

type AddRespOperationFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *AddRespOperationFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddRespOperationFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *AddRespOperationFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddRespOperationFailure) UnmarshalBinary(data []byte) error {
	*m = AddRespOperationFailure{}
	return wire.Decode(data, "usp.AddResp.OperationFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Fixed32(typ, &m.ErrCode)
		case 2:
			err = d.String(typ, &m.ErrMsg)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type AddRespOperationSuccess struct {
	InstantiatedPath string
	ParamErrs        []*AddRespParameterError
	UniqueKeys       map[string]string
}

// Size returns the encoded length of m.
func (m *AddRespOperationSuccess) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.InstantiatedPath) +
		wire.SizeRepeated(2, m.ParamErrs) +
		wire.SizeStringMap(3, m.UniqueKeys)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddRespOperationSuccess) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.InstantiatedPath)
	b = wire.AppendRepeated(b, 2, m.ParamErrs)
	b = wire.AppendStringMap(b, 3, m.UniqueKeys)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *AddRespOperationSuccess) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddRespOperationSuccess) UnmarshalBinary(data []byte) error {
	*m = AddRespOperationSuccess{}
	return wire.Decode(data, "usp.AddResp.OperationSuccess", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.InstantiatedPath)
		case 2:
			m.ParamErrs, err = wire.ReadRepeated[AddRespParameterError](d, typ, m.ParamErrs)
		case 3:
			m.UniqueKeys, err = d.StringMap(typ, m.UniqueKeys)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type AddRespParameterError struct {
	Param   string
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *AddRespParameterError) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Param) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *AddRespParameterError) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.Param)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *AddRespParameterError) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *AddRespParameterError) UnmarshalBinary(data []byte) error {
	*m = AddRespParameterError{}
	return wire.Decode(data, "usp.AddResp.ParameterError", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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
