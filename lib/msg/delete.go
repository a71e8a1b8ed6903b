package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Delete removes object instances.
type Delete struct {
	AllowPartial bool
	ObjPaths     []string
}

// Size returns the encoded length of m.
func (m *Delete) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeBool(1, m.AllowPartial) +
		wire.SizeRepeatedString(2, m.ObjPaths)
}

// AppendTo appends the wire encoding of m to b.
func (m *Delete) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendBool(b, 1, m.AllowPartial)
	b = wire.AppendRepeatedString(b, 2, m.ObjPaths)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Delete) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Delete) UnmarshalBinary(data []byte) error {
	*m = Delete{}
	return wire.Decode(data, "usp.Delete", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.Bool(typ, &m.AllowPartial)
		case 2:
			m.ObjPaths, err = d.AppendString(typ, m.ObjPaths)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeleteResp struct {
	DeletedObjResults []*DeleteRespDeletedObjectResult
}

// Size returns the encoded length of m.
func (m *DeleteResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeated(1, m.DeletedObjResults)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeleteResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendRepeated(b, 1, m.DeletedObjResults)
}

// MarshalBinary encodes m. It never fails.
func (m *DeleteResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteResp) UnmarshalBinary(data []byte) error {
	*m = DeleteResp{}
	return wire.Decode(data, "usp.DeleteResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.DeletedObjResults, err = wire.ReadRepeated[DeleteRespDeletedObjectResult](d, typ, m.DeletedObjResults)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeleteRespDeletedObjectResult struct {
	RequestedPath string
	OperStatus    *DeleteRespOperationStatus
}

// Size returns the encoded length of m.
func (m *DeleteRespDeletedObjectResult) Size() int {
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
func (m *DeleteRespDeletedObjectResult) AppendTo(b []byte) []byte {
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
func (m *DeleteRespDeletedObjectResult) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteRespDeletedObjectResult) UnmarshalBinary(data []byte) error {
	*m = DeleteRespDeletedObjectResult{}
	return wire.Decode(data, "usp.DeleteResp.DeletedObjectResult", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.RequestedPath)
		case 2:
			var v *DeleteRespOperationStatus
			if v, err = wire.ReadMessage[DeleteRespOperationStatus](d, typ); v != nil {
				m.OperStatus = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// DeleteRespOperStatus is *DeleteRespOperationFailure or *DeleteRespOperationSuccess.
type DeleteRespOperStatus interface {
	wire.Message
	isDeleteRespOperStatus()
}

func (*DeleteRespOperationFailure) isDeleteRespOperStatus() {}
func (*DeleteRespOperationSuccess) isDeleteRespOperStatus() {}

type DeleteRespOperationStatus struct {
	OperStatus DeleteRespOperStatus
}

func deleteOperStatusTag(v DeleteRespOperStatus) protowire.Number {
	switch v.(type) {
	case *DeleteRespOperationFailure:
		return 1
	case *DeleteRespOperationSuccess:
		return 2
	}
	return 0
}

// Size returns the encoded length of m.
func (m *DeleteRespOperationStatus) Size() int {
	if m == nil || m.OperStatus == nil {
		return 0
	}
	return wire.SizeMessage(deleteOperStatusTag(m.OperStatus), m.OperStatus)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeleteRespOperationStatus) AppendTo(b []byte) []byte {
	if m == nil || m.OperStatus == nil {
		return b
	}
	return wire.AppendMessage(b, deleteOperStatusTag(m.OperStatus), m.OperStatus)
}

// MarshalBinary encodes m. It never fails.
func (m *DeleteRespOperationStatus) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteRespOperationStatus) UnmarshalBinary(data []byte) error {
	*m = DeleteRespOperationStatus{}
	return wire.Decode(data, "usp.DeleteResp.OperationStatus", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) error {
		var (
			v   DeleteRespOperStatus
			err error
		)
		// Every alternative is a nested message.
		if typ != protowire.BytesType {
			return d.Skip(num, typ)
		}
		switch num {
		case 1:
			v, err = wire.ReadMessage[DeleteRespOperationFailure](d, typ)
		case 2:
			v, err = wire.ReadMessage[DeleteRespOperationSuccess](d, typ)
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

type DeleteRespOperationFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *DeleteRespOperationFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeleteRespOperationFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DeleteRespOperationFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteRespOperationFailure) UnmarshalBinary(data []byte) error {
	*m = DeleteRespOperationFailure{}
	return wire.Decode(data, "usp.DeleteResp.OperationFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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

type DeleteRespOperationSuccess struct {
	AffectedPaths      []string
	UnaffectedPathErrs []*DeleteRespUnaffectedPathError
}

// Size returns the encoded length of m.
func (m *DeleteRespOperationSuccess) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeRepeatedString(1, m.AffectedPaths) +
		wire.SizeRepeated(2, m.UnaffectedPathErrs)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeleteRespOperationSuccess) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendRepeatedString(b, 1, m.AffectedPaths)
	b = wire.AppendRepeated(b, 2, m.UnaffectedPathErrs)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DeleteRespOperationSuccess) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteRespOperationSuccess) UnmarshalBinary(data []byte) error {
	*m = DeleteRespOperationSuccess{}
	return wire.Decode(data, "usp.DeleteResp.OperationSuccess", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.AffectedPaths, err = d.AppendString(typ, m.AffectedPaths)
		case 2:
			m.UnaffectedPathErrs, err = wire.ReadRepeated[DeleteRespUnaffectedPathError](d, typ, m.UnaffectedPathErrs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type DeleteRespUnaffectedPathError struct {
	UnaffectedPath string
	ErrCode        uint32
	ErrMsg         string
}

// Size returns the encoded length of m.
func (m *DeleteRespUnaffectedPathError) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.UnaffectedPath) +
		wire.SizeFixed32(2, m.ErrCode) +
		wire.SizeString(3, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *DeleteRespUnaffectedPathError) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.UnaffectedPath)
	b = wire.AppendFixed32(b, 2, m.ErrCode)
	b = wire.AppendString(b, 3, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *DeleteRespUnaffectedPathError) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *DeleteRespUnaffectedPathError) UnmarshalBinary(data []byte) error {
	*m = DeleteRespUnaffectedPathError{}
	return wire.Decode(data, "usp.DeleteResp.UnaffectedPathError", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.UnaffectedPath)
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
