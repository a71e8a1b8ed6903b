package msg

import "strconv"

// MsgType mirrors the Body variant of a Msg.
type MsgType int32

const (
	MsgTypeError                 MsgType = 0
	MsgTypeGet                   MsgType = 1
	MsgTypeGetResp               MsgType = 2
	MsgTypeNotify                MsgType = 3
	MsgTypeSet                   MsgType = 4
	MsgTypeSetResp               MsgType = 5
	MsgTypeOperate               MsgType = 6
	MsgTypeOperateResp           MsgType = 7
	MsgTypeAdd                   MsgType = 8
	MsgTypeAddResp               MsgType = 9
	MsgTypeDelete                MsgType = 10
	MsgTypeDeleteResp            MsgType = 11
	MsgTypeGetSupportedDM        MsgType = 12
	MsgTypeGetSupportedDMResp    MsgType = 13
	MsgTypeGetInstances          MsgType = 14
	MsgTypeGetInstancesResp      MsgType = 15
	MsgTypeNotifyResp            MsgType = 16
	MsgTypeGetSupportedProto     MsgType = 17
	MsgTypeGetSupportedProtoResp MsgType = 18
	MsgTypeRegister              MsgType = 19
	MsgTypeRegisterResp          MsgType = 20
	MsgTypeDeregister            MsgType = 21
	MsgTypeDeregisterResp        MsgType = 22
)

var msgTypeNames = map[MsgType]string{
	MsgTypeError:                 "ERROR",
	MsgTypeGet:                   "GET",
	MsgTypeGetResp:               "GET_RESP",
	MsgTypeNotify:                "NOTIFY",
	MsgTypeSet:                   "SET",
	MsgTypeSetResp:               "SET_RESP",
	MsgTypeOperate:               "OPERATE",
	MsgTypeOperateResp:           "OPERATE_RESP",
	MsgTypeAdd:                   "ADD",
	MsgTypeAddResp:               "ADD_RESP",
	MsgTypeDelete:                "DELETE",
	MsgTypeDeleteResp:            "DELETE_RESP",
	MsgTypeGetSupportedDM:        "GET_SUPPORTED_DM",
	MsgTypeGetSupportedDMResp:    "GET_SUPPORTED_DM_RESP",
	MsgTypeGetInstances:          "GET_INSTANCES",
	MsgTypeGetInstancesResp:      "GET_INSTANCES_RESP",
	MsgTypeNotifyResp:            "NOTIFY_RESP",
	MsgTypeGetSupportedProto:     "GET_SUPPORTED_PROTO",
	MsgTypeGetSupportedProtoResp: "GET_SUPPORTED_PROTO_RESP",
	MsgTypeRegister:              "REGISTER",
	MsgTypeRegisterResp:          "REGISTER_RESP",
	MsgTypeDeregister:            "DEREGISTER",
	MsgTypeDeregisterResp:        "DEREGISTER_RESP",
}

func (t MsgType) String() string {
	return enumName(msgTypeNames, t)
}

func enumName[E ~int32](names map[E]string, v E) string {
	if s, ok := names[v]; ok {
		return s
	}
	return strconv.Itoa(int(v))
}

// ObjAccessType describes which instance operations an object supports.
type ObjAccessType int32

const (
	ObjReadOnly   ObjAccessType = 0
	ObjAddDelete  ObjAccessType = 1
	ObjAddOnly    ObjAccessType = 2
	ObjDeleteOnly ObjAccessType = 3
)

var objAccessNames = map[ObjAccessType]string{
	ObjReadOnly:   "OBJ_READ_ONLY",
	ObjAddDelete:  "OBJ_ADD_DELETE",
	ObjAddOnly:    "OBJ_ADD_ONLY",
	ObjDeleteOnly: "OBJ_DELETE_ONLY",
}

func (t ObjAccessType) String() string { return enumName(objAccessNames, t) }

// ParamAccessType describes how a parameter may be accessed.
type ParamAccessType int32

const (
	ParamReadOnly  ParamAccessType = 0
	ParamReadWrite ParamAccessType = 1
	ParamWriteOnly ParamAccessType = 2
)

var paramAccessNames = map[ParamAccessType]string{
	ParamReadOnly:  "PARAM_READ_ONLY",
	ParamReadWrite: "PARAM_READ_WRITE",
	ParamWriteOnly: "PARAM_WRITE_ONLY",
}

func (t ParamAccessType) String() string { return enumName(paramAccessNames, t) }

// ParamValueType is the data type of a supported parameter.
type ParamValueType int32

const (
	ParamUnknown      ParamValueType = 0
	ParamBase64       ParamValueType = 1
	ParamBoolean      ParamValueType = 2
	ParamDateTime     ParamValueType = 3
	ParamDecimal      ParamValueType = 4
	ParamHexBinary    ParamValueType = 5
	ParamInt          ParamValueType = 6
	ParamLong         ParamValueType = 7
	ParamString       ParamValueType = 8
	ParamUnsignedInt  ParamValueType = 9
	ParamUnsignedLong ParamValueType = 10
)

var paramValueNames = map[ParamValueType]string{
	ParamUnknown:      "PARAM_UNKNOWN",
	ParamBase64:       "PARAM_BASE_64",
	ParamBoolean:      "PARAM_BOOLEAN",
	ParamDateTime:     "PARAM_DATE_TIME",
	ParamDecimal:      "PARAM_DECIMAL",
	ParamHexBinary:    "PARAM_HEX_BINARY",
	ParamInt:          "PARAM_INT",
	ParamLong:         "PARAM_LONG",
	ParamString:       "PARAM_STRING",
	ParamUnsignedInt:  "PARAM_UNSIGNED_INT",
	ParamUnsignedLong: "PARAM_UNSIGNED_LONG",
}

func (t ParamValueType) String() string { return enumName(paramValueNames, t) }

// ValueChangeType tells whether value change notifications are honoured.
type ValueChangeType int32

const (
	ValueChangeUnknown    ValueChangeType = 0
	ValueChangeAllowed    ValueChangeType = 1
	ValueChangeWillIgnore ValueChangeType = 2
)

var valueChangeNames = map[ValueChangeType]string{
	ValueChangeUnknown:    "VALUE_CHANGE_UNKNOWN",
	ValueChangeAllowed:    "VALUE_CHANGE_ALLOWED",
	ValueChangeWillIgnore: "VALUE_CHANGE_WILL_IGNORE",
}

func (t ValueChangeType) String() string { return enumName(valueChangeNames, t) }

// CmdType tells whether a command runs synchronously.
type CmdType int32

const (
	CmdUnknown CmdType = 0
	CmdSync    CmdType = 1
	CmdAsync   CmdType = 2
)

var cmdTypeNames = map[CmdType]string{
	CmdUnknown: "CMD_UNKNOWN",
	CmdSync:    "CMD_SYNC",
	CmdAsync:   "CMD_ASYNC",
}

func (t CmdType) String() string { return enumName(cmdTypeNames, t) }
