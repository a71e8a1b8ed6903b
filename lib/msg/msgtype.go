package msg

// MsgTypeOf derives the header message type matching the variant held by body. The
// second result is false when body, or the union it holds, is unset.
func MsgTypeOf(body *Body) (MsgType, bool) {
	if body == nil {
		return MsgTypeError, false
	}
	switch v := body.MsgBody.(type) {
	case *Error:
		return MsgTypeError, true
	case *Request:
		if v == nil {
			return MsgTypeError, false
		}
		return requestMsgType(v.ReqType)
	case *Response:
		if v == nil {
			return MsgTypeError, false
		}
		return responseMsgType(v.RespType)
	}
	return MsgTypeError, false
}

func requestMsgType(v ReqType) (MsgType, bool) {
	switch v.(type) {
	case *Get:
		return MsgTypeGet, true
	case *GetSupportedDM:
		return MsgTypeGetSupportedDM, true
	case *GetInstances:
		return MsgTypeGetInstances, true
	case *Set:
		return MsgTypeSet, true
	case *Add:
		return MsgTypeAdd, true
	case *Delete:
		return MsgTypeDelete, true
	case *Operate:
		return MsgTypeOperate, true
	case *Notify:
		return MsgTypeNotify, true
	case *GetSupportedProtocol:
		return MsgTypeGetSupportedProto, true
	case *Register:
		return MsgTypeRegister, true
	case *Deregister:
		return MsgTypeDeregister, true
	}
	return MsgTypeError, false
}

func responseMsgType(v RespType) (MsgType, bool) {
	switch v.(type) {
	case *GetResp:
		return MsgTypeGetResp, true
	case *GetSupportedDMResp:
		return MsgTypeGetSupportedDMResp, true
	case *GetInstancesResp:
		return MsgTypeGetInstancesResp, true
	case *SetResp:
		return MsgTypeSetResp, true
	case *AddResp:
		return MsgTypeAddResp, true
	case *DeleteResp:
		return MsgTypeDeleteResp, true
	case *OperateResp:
		return MsgTypeOperateResp, true
	case *NotifyResp:
		return MsgTypeNotifyResp, true
	case *GetSupportedProtocolResp:
		return MsgTypeGetSupportedProtoResp, true
	case *RegisterResp:
		return MsgTypeRegisterResp, true
	case *DeregisterResp:
		return MsgTypeDeregisterResp, true
	}
	return MsgTypeError, false
}
