package msg

import (
	"github.com/go-usp/go-usp/lib/wire"
	"google.golang.org/protobuf/encoding/protowire"
)

// Notify is sent by an Agent when a subscribed event fires. With SendResp set the
// Controller must answer with a NotifyResp carrying the same SubscriptionID.
type Notify struct {
	SubscriptionID string
	SendResp       bool
	Notification   NotifyNotification
}

// Size returns the encoded length of m.
func (m *Notify) Size() int {
	if m == nil {
		return 0
	}
	n := wire.SizeString(1, m.SubscriptionID) +
		wire.SizeBool(2, m.SendResp)
	if m.Notification != nil {
		n += wire.SizeMessage(notificationTag(m.Notification), m.Notification)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *Notify) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.SubscriptionID)
	b = wire.AppendBool(b, 2, m.SendResp)
	if m.Notification != nil {
		b = wire.AppendMessage(b, notificationTag(m.Notification), m.Notification)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *Notify) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *Notify) UnmarshalBinary(data []byte) error {
	*m = Notify{}
	return wire.Decode(data, "usp.Notify", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.SubscriptionID)
		case 2:
			err = d.Bool(typ, &m.SendResp)
		case 3:
			var v *NotifyEvent
			if v, err = wire.ReadMessage[NotifyEvent](d, typ); v != nil {
				m.Notification = v
			}
		case 4:
			var v *NotifyValueChange
			if v, err = wire.ReadMessage[NotifyValueChange](d, typ); v != nil {
				m.Notification = v
			}
		case 5:
			var v *NotifyObjectCreation
			if v, err = wire.ReadMessage[NotifyObjectCreation](d, typ); v != nil {
				m.Notification = v
			}
		case 6:
			var v *NotifyObjectDeletion
			if v, err = wire.ReadMessage[NotifyObjectDeletion](d, typ); v != nil {
				m.Notification = v
			}
		case 7:
			var v *NotifyOperationComplete
			if v, err = wire.ReadMessage[NotifyOperationComplete](d, typ); v != nil {
				m.Notification = v
			}
		case 8:
			var v *NotifyOnBoardRequest
			if v, err = wire.ReadMessage[NotifyOnBoardRequest](d, typ); v != nil {
				m.Notification = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// NotifyNotification is one of the Notify* notification payloads.
type NotifyNotification interface {
	wire.Message
	isNotifyNotification()
}

func (*NotifyEvent) isNotifyNotification()             {}
func (*NotifyValueChange) isNotifyNotification()       {}
func (*NotifyObjectCreation) isNotifyNotification()    {}
func (*NotifyObjectDeletion) isNotifyNotification()    {}
func (*NotifyOperationComplete) isNotifyNotification() {}
func (*NotifyOnBoardRequest) isNotifyNotification()    {}

func notificationTag(v NotifyNotification) protowire.Number {
	switch v.(type) {
	case *NotifyEvent:
		return 3
	case *NotifyValueChange:
		return 4
	case *NotifyObjectCreation:
		return 5
	case *NotifyObjectDeletion:
		return 6
	case *NotifyOperationComplete:
		return 7
	case *NotifyOnBoardRequest:
		return 8
	}
	return 0
}

type NotifyEvent struct {
	ObjPath   string
	EventName string
	Params    map[string]string
}

// Size returns the encoded length of m.
func (m *NotifyEvent) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ObjPath) +
		wire.SizeString(2, m.EventName) +
		wire.SizeStringMap(3, m.Params)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyEvent) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ObjPath)
	b = wire.AppendString(b, 2, m.EventName)
	b = wire.AppendStringMap(b, 3, m.Params)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyEvent) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyEvent) UnmarshalBinary(data []byte) error {
	*m = NotifyEvent{}
	return wire.Decode(data, "usp.Notify.Event", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		case 2:
			err = d.String(typ, &m.EventName)
		case 3:
			m.Params, err = d.StringMap(typ, m.Params)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyValueChange struct {
	ParamPath  string
	ParamValue string
}

// Size returns the encoded length of m.
func (m *NotifyValueChange) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ParamPath) +
		wire.SizeString(2, m.ParamValue)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyValueChange) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ParamPath)
	b = wire.AppendString(b, 2, m.ParamValue)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyValueChange) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyValueChange) UnmarshalBinary(data []byte) error {
	*m = NotifyValueChange{}
	return wire.Decode(data, "usp.Notify.ValueChange", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ParamPath)
		case 2:
			err = d.String(typ, &m.ParamValue)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyObjectCreation struct {
	ObjPath    string
	UniqueKeys map[string]string
}

// Size returns the encoded length of m.
func (m *NotifyObjectCreation) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ObjPath) +
		wire.SizeStringMap(2, m.UniqueKeys)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyObjectCreation) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ObjPath)
	b = wire.AppendStringMap(b, 2, m.UniqueKeys)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyObjectCreation) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyObjectCreation) UnmarshalBinary(data []byte) error {
	*m = NotifyObjectCreation{}
	return wire.Decode(data, "usp.Notify.ObjectCreation", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		case 2:
			m.UniqueKeys, err = d.StringMap(typ, m.UniqueKeys)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyObjectDeletion struct {
	ObjPath string
}

// Size returns the encoded length of m.
func (m *NotifyObjectDeletion) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.ObjPath)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyObjectDeletion) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.ObjPath)
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyObjectDeletion) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyObjectDeletion) UnmarshalBinary(data []byte) error {
	*m = NotifyObjectDeletion{}
	return wire.Decode(data, "usp.Notify.ObjectDeletion", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyOperationComplete struct {
	ObjPath       string
	CommandName   string
	CommandKey    string
	OperationResp NotifyOperationCompleteResp
}

// Size returns the encoded length of m.
func (m *NotifyOperationComplete) Size() int {
	if m == nil {
		return 0
	}
	n := wire.SizeString(1, m.ObjPath) +
		wire.SizeString(2, m.CommandName) +
		wire.SizeString(3, m.CommandKey)
	if m.OperationResp != nil {
		n += wire.SizeMessage(operationCompleteTag(m.OperationResp), m.OperationResp)
	}
	return n
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyOperationComplete) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.ObjPath)
	b = wire.AppendString(b, 2, m.CommandName)
	b = wire.AppendString(b, 3, m.CommandKey)
	if m.OperationResp != nil {
		b = wire.AppendMessage(b, operationCompleteTag(m.OperationResp), m.OperationResp)
	}
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyOperationComplete) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyOperationComplete) UnmarshalBinary(data []byte) error {
	*m = NotifyOperationComplete{}
	return wire.Decode(data, "usp.Notify.OperationComplete", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.ObjPath)
		case 2:
			err = d.String(typ, &m.CommandName)
		case 3:
			err = d.String(typ, &m.CommandKey)
		case 4:
			var v *NotifyOutputArgs
			if v, err = wire.ReadMessage[NotifyOutputArgs](d, typ); v != nil {
				m.OperationResp = v
			}
		case 5:
			var v *NotifyCommandFailure
			if v, err = wire.ReadMessage[NotifyCommandFailure](d, typ); v != nil {
				m.OperationResp = v
			}
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

// NotifyOperationCompleteResp is *NotifyOutputArgs or *NotifyCommandFailure.
type NotifyOperationCompleteResp interface {
	wire.Message
	isNotifyOperationCompleteResp()
}

func (*NotifyOutputArgs) isNotifyOperationCompleteResp()     {}
func (*NotifyCommandFailure) isNotifyOperationCompleteResp() {}

func operationCompleteTag(v NotifyOperationCompleteResp) protowire.Number {
	switch v.(type) {
	case *NotifyOutputArgs:
		return 4
	case *NotifyCommandFailure:
		return 5
	}
	return 0
}

type NotifyOutputArgs struct {
	OutputArgs map[string]string
}

// Size returns the encoded length of m.
func (m *NotifyOutputArgs) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeStringMap(1, m.OutputArgs)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyOutputArgs) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendStringMap(b, 1, m.OutputArgs)
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyOutputArgs) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyOutputArgs) UnmarshalBinary(data []byte) error {
	*m = NotifyOutputArgs{}
	return wire.Decode(data, "usp.Notify.OperationComplete.OutputArgs", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			m.OutputArgs, err = d.StringMap(typ, m.OutputArgs)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyCommandFailure struct {
	ErrCode uint32
	ErrMsg  string
}

// Size returns the encoded length of m.
func (m *NotifyCommandFailure) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeFixed32(1, m.ErrCode) +
		wire.SizeString(2, m.ErrMsg)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyCommandFailure) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendFixed32(b, 1, m.ErrCode)
	b = wire.AppendString(b, 2, m.ErrMsg)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyCommandFailure) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyCommandFailure) UnmarshalBinary(data []byte) error {
	*m = NotifyCommandFailure{}
	return wire.Decode(data, "usp.Notify.OperationComplete.CommandFailure", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
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

type NotifyOnBoardRequest struct {
	OUI                            string
	ProductClass                   string
	SerialNumber                   string
	AgentSupportedProtocolVersions string
}

// Size returns the encoded length of m.
func (m *NotifyOnBoardRequest) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.OUI) +
		wire.SizeString(2, m.ProductClass) +
		wire.SizeString(3, m.SerialNumber) +
		wire.SizeString(4, m.AgentSupportedProtocolVersions)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyOnBoardRequest) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	b = wire.AppendString(b, 1, m.OUI)
	b = wire.AppendString(b, 2, m.ProductClass)
	b = wire.AppendString(b, 3, m.SerialNumber)
	b = wire.AppendString(b, 4, m.AgentSupportedProtocolVersions)
	return b
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyOnBoardRequest) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyOnBoardRequest) UnmarshalBinary(data []byte) error {
	*m = NotifyOnBoardRequest{}
	return wire.Decode(data, "usp.Notify.OnBoardRequest", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.OUI)
		case 2:
			err = d.String(typ, &m.ProductClass)
		case 3:
			err = d.String(typ, &m.SerialNumber)
		case 4:
			err = d.String(typ, &m.AgentSupportedProtocolVersions)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

type NotifyResp struct {
	SubscriptionID string
}

// Size returns the encoded length of m.
func (m *NotifyResp) Size() int {
	if m == nil {
		return 0
	}
	return wire.SizeString(1, m.SubscriptionID)
}

// AppendTo appends the wire encoding of m to b.
func (m *NotifyResp) AppendTo(b []byte) []byte {
	if m == nil {
		return b
	}
	return wire.AppendString(b, 1, m.SubscriptionID)
}

// MarshalBinary encodes m. It never fails.
func (m *NotifyResp) MarshalBinary() ([]byte, error) { return wire.Marshal(m), nil }

// UnmarshalBinary resets m and decodes data into it.
func (m *NotifyResp) UnmarshalBinary(data []byte) error {
	*m = NotifyResp{}
	return wire.Decode(data, "usp.NotifyResp", func(d *wire.Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &m.SubscriptionID)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}
