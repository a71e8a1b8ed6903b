package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Register is sent by an Agent to announce the data model paths it serves to a
// USP Broker.
type Register struct {
	AllowPartial bool
	RegPaths     []*RegisterRegistrationPath
}

// Size returns the encoded length of m.
func (m *Register) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeBool(1, m.AllowPartial) +
		wire.SizeRepeated(2, m.RegPaths)
}

// AppendTo appends the wire encoding of m to b.
func (m *Register) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendBool(b, 1, m.AllowPartial)
	b = wire.AppendRepeated(b, 2, m.RegPaths)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Register) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Register) UnmarshalBinary(data []byte) error {
	*m = Register{}
	return wire.Decode(data, "usp.Register", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Bool(typ, &m.AllowPartial)
		case 2:
			m.RegPaths, err = wire.ReadRepeated[RegisterRegistrationPath](d, typ, m.RegPaths)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type RegisterRegistrationPath struct {
	Path string
}

// Size returns the encoded length of m.
func (m *RegisterRegistrationPath) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.Path)
}

// AppendTo appends the wire encoding of m to b.
func (m *RegisterRegistrationPath) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.Path)
}

// MarshalBinary encodes m. It never fails.
func (m *RegisterRegistrationPath) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterRegistrationPath) UnmarshalBinary(data []byte) error {
	*m = RegisterRegistrationPath{}
	return wire.Decode(data, "usp.Register.RegistrationPath", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.Path)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type RegisterResp struct {
	RegisteredPathResults []*RegisterRespRegisteredPathResult
}

// Size returns the encoded length of m.
func (m *RegisterResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.RegisteredPathResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *RegisterResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.RegisteredPathResults)
}

// MarshalBinary encodes m. It never fails.
func (m *RegisterResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterResp) UnmarshalBinary(data []byte) error {
	*m = RegisterResp{}
	return wire.Decode(data, "usp.RegisterResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.RegisteredPathResults, err = wire.ReadRepeated[RegisterRespRegisteredPathResult](d, typ, m.RegisteredPathResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type RegisterRespRegisteredPathResult struct {
	RequestedPath string
	OperStatus    *RegisterRespOperationStatus
}

// Size returns the encoded length of m.
func (m *RegisterRespRegisteredPathResult) Size() int {
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
func (m *RegisterRespRegisteredPathResult) AppendTo(b []byte) []byte {
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
func (m *RegisterRespRegisteredPathResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterRespRegisteredPathResult) UnmarshalBinary(data []byte) error {
	*m = RegisterRespRegisteredPathResult{}
	return wire.Decode(data, "usp.RegisterResp.RegisteredPathResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			var v *RegisterRespOperationStatus
			if v, err = wire.ReadMessage[RegisterRespOperationStatus](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type RegisterRespOperationStatus struct {
	OperStatus RegisterRespOperStatus
}

// Size returns the encoded length of m.
func (m *RegisterRespOperationStatus) Size() int {
	if m == nil {
		return 0
	}
	n := 0
	if m.OperStatus != nil {
		n += wire.SizeMessage(registerRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *RegisterRespOperationStatus) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	if m.OperStatus != nil {
		b = wire.AppendMessage(b, registerRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *RegisterRespOperationStatus) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterRespOperationStatus) UnmarshalBinary(data []byte) error {
	*m = RegisterRespOperationStatus{}
	return wire.Decode(data, "usp.RegisterResp.OperationStatus", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			var v *RegisterRespOperationFailure
			if v, err = wire.ReadMessage[RegisterRespOperationFailure](d, typ); v != nil {
				m.OperStatus = v
			}
		case 2:
			var v *RegisterRespOperationSuccess
			if v, err = wire.ReadMessage[RegisterRespOperationSuccess](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// RegisterRespOperStatus is *RegisterRespOperationFailure or *RegisterRespOperationSuccess.
type RegisterRespOperStatus interface {
	wire.Message
	isRegisterRespOperStatus()
}

func (*RegisterRespOperationFailure) isRegisterRespOperStatus() {}
func (*RegisterRespOperationSuccess) isRegisterRespOperStatus() {}

func registerRespOperStatusTag(v RegisterRespOperStatus) protowire.Number {
	switch v.(type) {
	case *RegisterRespOperationFailure:
		return 1
	case *RegisterRespOperationSuccess:
		return 2
	}
	return 0
}

type RegisterRespOperationFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *RegisterRespOperationFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *RegisterRespOperationFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *RegisterRespOperationFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterRespOperationFailure) UnmarshalBinary(data []byte) error {
	*m = RegisterRespOperationFailure{}
	return wire.Decode(data, "usp.RegisterResp.OperationFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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

type RegisterRespOperationSuccess struct {
	RegisteredPath string
}

// Size returns the encoded length of m.
func (m *RegisterRespOperationSuccess) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.RegisteredPath)
}

// AppendTo appends the wire encoding of m to b.
func (m *RegisterRespOperationSuccess) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.RegisteredPath)
}

// MarshalBinary encodes m. It never fails.
func (m *RegisterRespOperationSuccess) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *RegisterRespOperationSuccess) UnmarshalBinary(data []byte) error {
	*m = RegisterRespOperationSuccess{}
	return wire.Decode(data, "usp.RegisterResp.OperationSuccess", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RegisteredPath)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// Deregister withdraws paths previously registered. An empty string path
// deregisters everything the sender owns.
type Deregister struct {
	Paths []string
}

// Size returns the encoded length of m.
func (m *Deregister) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.Paths)
}

// AppendTo appends the wire encoding of m to b.
func (m *Deregister) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeatedString(b, 1, m.Paths)
}

// MarshalBinary encodes m. It never fails.
func (m *Deregister) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Deregister) UnmarshalBinary(data []byte) error {
	*m = Deregister{}
	return wire.Decode(data, "usp.Deregister", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.Paths, err = d.AppendString(typ, m.Paths)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeregisterResp struct {
	DeregisteredPathResults []*DeregisterRespDeregisteredPathResult
}

// Size returns the encoded length of m.
func (m *DeregisterResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.DeregisteredPathResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeregisterResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.DeregisteredPathResults)
}

// MarshalBinary encodes m. It never fails.
func (m *DeregisterResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeregisterResp) UnmarshalBinary(data []byte) error {
	*m = DeregisterResp{}
	return wire.Decode(data, "usp.DeregisterResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.DeregisteredPathResults, err = wire.ReadRepeated[DeregisterRespDeregisteredPathResult](d, typ, m.DeregisteredPathResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeregisterRespDeregisteredPathResult struct {
	RequestedPath string
	OperStatus    *DeregisterRespOperationStatus
}

// Size returns the encoded length of m.
func (m *DeregisterRespDeregisteredPathResult) Size() int {
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
func (m *DeregisterRespDeregisteredPathResult) AppendTo(b []byte) []byte {
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
func (m *DeregisterRespDeregisteredPathResult) MarshalBinary() ([]byte, error) {
	return wire.Marshal(m), nil
}

// UnmarshalBinary resets m and decodes data into it.
func (m *DeregisterRespDeregisteredPathResult) UnmarshalBinary(data []byte) error {
	*m = DeregisterRespDeregisteredPathResult{}
	return wire.Decode(data, "usp.DeregisterResp.DeregisteredPathResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			var v *DeregisterRespOperationStatus
			if v, err = wire.ReadMessage[DeregisterRespOperationStatus](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeregisterRespOperationStatus struct {
	OperStatus DeregisterRespOperStatus
}

// Size returns the encoded length of m.
func (m *DeregisterRespOperationStatus) Size() int {
	if m == nil {
		return 0
	}
	n := 0
	if m.OperStatus != nil {
		n += wire.SizeMessage(deregisterRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *DeregisterRespOperationStatus) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	if m.OperStatus != nil {
		b = wire.AppendMessage(b, deregisterRespOperStatusTag(m.OperStatus), m.OperStatus)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DeregisterRespOperationStatus) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeregisterRespOperationStatus) UnmarshalBinary(data []byte) error {
	*m = DeregisterRespOperationStatus{}
	return wire.Decode(data, "usp.DeregisterResp.OperationStatus", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			var v *DeregisterRespOperationFailure
			if v, err = wire.ReadMessage[DeregisterRespOperationFailure](d, typ); v != nil {
				m.OperStatus = v
			}
		case 2:
			var v *DeregisterRespOperationSuccess
			if v, err = wire.ReadMessage[DeregisterRespOperationSuccess](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// DeregisterRespOperStatus is *DeregisterRespOperationFailure or
// *DeregisterRespOperationSuccess.
type DeregisterRespOperStatus interface {
	wire.Message
	isDeregisterRespOperStatus()
}

func (*DeregisterRespOperationFailure) isDeregisterRespOperStatus() {}
func (*DeregisterRespOperationSuccess) isDeregisterRespOperStatus() {}

func deregisterRespOperStatusTag(v DeregisterRespOperStatus) protowire.Number {
	switch v.(type) {
	case *DeregisterRespOperationFailure:
		return 1
	case *DeregisterRespOperationSuccess:
		return 2
	}
	return 0
}

type DeregisterRespOperationFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *DeregisterRespOperationFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeregisterRespOperationFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DeregisterRespOperationFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeregisterRespOperationFailure) UnmarshalBinary(data []byte) error {
	*m = DeregisterRespOperationFailure{}
	return wire.Decode(data, "usp.DeregisterResp.OperationFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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

type DeregisterRespOperationSuccess struct {
	DeregisteredPath []string
}

// Size returns the encoded length of m.
func (m *DeregisterRespOperationSuccess) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.DeregisteredPath)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeregisterRespOperationSuccess) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeatedString(b, 1, m.DeregisteredPath)
}

// MarshalBinary encodes m. It never fails.
func (m *DeregisterRespOperationSuccess) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeregisterRespOperationSuccess) UnmarshalBinary(data []byte) error {
	*m = DeregisterRespOperationSuccess{}
	return wire.Decode(data, "usp.DeregisterResp.OperationSuccess", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.DeregisteredPath, err = d.AppendString(typ, m.DeregisteredPath)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
