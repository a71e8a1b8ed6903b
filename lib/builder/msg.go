package builder

import (
	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/google/uuid"
)

var log = logger.GetGoI2PLogger()

// MsgBuilder assembles a msg.Msg. The header message type is derived from the body
// unless WithMsgType was called.
type MsgBuilder struct {
	msgID   string
	msgType *msg.MsgType
	body    *msg.Body
}

func NewMsgBuilder() *MsgBuilder {
	return &MsgBuilder{}
}

func (b *MsgBuilder) WithMsgID(id string) *MsgBuilder {
	b.msgID = id
	return b
}

// WithRandomMsgID sets the message id to a random UUID.
func (b *MsgBuilder) WithRandomMsgID() *MsgBuilder {
	b.msgID = uuid.NewString()
	return b
}

// WithMsgType overrides the derived message type.
func (b *MsgBuilder) WithMsgType(t msg.MsgType) *MsgBuilder {
	b.msgType = &t
	return b
}

func (b *MsgBuilder) WithRequest(req msg.ReqType) *MsgBuilder {
	b.body = &msg.Body{MsgBody: &msg.Request{ReqType: req}}
	return b
}

func (b *MsgBuilder) WithResponse(resp msg.RespType) *MsgBuilder {
	b.body = &msg.Body{MsgBody: &msg.Response{RespType: resp}}
	return b
}

func (b *MsgBuilder) WithError(e *msg.Error) *MsgBuilder {
	b.body = &msg.Body{MsgBody: e}
	return b
}

func (b *MsgBuilder) Build() (*msg.Msg, error) {
	if b.msgID == "" {
		return nil, missingField("Header", "msg_id")
	}
	derived, ok := msg.MsgTypeOf(b.body)
	if !ok {
		return nil, missingVariant("Msg", "body")
	}
	mt := derived
	if b.msgType != nil {
		mt = *b.msgType
		if mt != derived {
			log.WithFields(logger.Fields{
				"at":       "MsgBuilder.Build",
				"msg_id":   b.msgID,
				"explicit": mt.String(),
				"derived":  derived.String(),
			}).Warn("explicit message type does not match body")
		}
	}
	return &msg.Msg{
		Header: &msg.Header{MsgID: b.msgID, MsgType: mt},
		Body:   b.body,
	}, nil
}
