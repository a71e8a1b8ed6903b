package builder

import (
	"strings"

	"github.com/go-usp/go-usp/lib/msg"
)

// GetBuilder assembles a msg.Get. At least one parameter path is required.
type GetBuilder struct {
	get msg.Get
}

func NewGetBuilder() *GetBuilder {
	return &GetBuilder{}
}

func (b *GetBuilder) AddParamPath(paths ...string) *GetBuilder {
	b.get.ParamPaths = append(b.get.ParamPaths, paths...)
	return b
}

// WithMaxDepth limits the depth of partial path results; 0 means no limit.
func (b *GetBuilder) WithMaxDepth(depth uint32) *GetBuilder {
	b.get.MaxDepth = depth
	return b
}

func (b *GetBuilder) Build() (*msg.Get, error) {
	if len(b.get.ParamPaths) == 0 {
		return nil, missingField("Get", "param_paths")
	}
	g := b.get
	return &g, nil
}

// GetSupportedDMBuilder assembles a msg.GetSupportedDM.
type GetSupportedDMBuilder struct {
	req msg.GetSupportedDM
}

func NewGetSupportedDMBuilder() *GetSupportedDMBuilder {
	return &GetSupportedDMBuilder{}
}

func (b *GetSupportedDMBuilder) AddObjPath(paths ...string) *GetSupportedDMBuilder {
	b.req.ObjPaths = append(b.req.ObjPaths, paths...)
	return b
}

func (b *GetSupportedDMBuilder) WithFirstLevelOnly(v bool) *GetSupportedDMBuilder {
	b.req.FirstLevelOnly = v
	return b
}

func (b *GetSupportedDMBuilder) WithReturnCommands(v bool) *GetSupportedDMBuilder {
	b.req.ReturnCommands = v
	return b
}

func (b *GetSupportedDMBuilder) WithReturnEvents(v bool) *GetSupportedDMBuilder {
	b.req.ReturnEvents = v
	return b
}

func (b *GetSupportedDMBuilder) WithReturnParams(v bool) *GetSupportedDMBuilder {
	b.req.ReturnParams = v
	return b
}

func (b *GetSupportedDMBuilder) WithReturnUniqueKeySets(v bool) *GetSupportedDMBuilder {
	b.req.ReturnUniqueKeySets = v
	return b
}

// WithReturnAll asks for commands, events, parameters and unique key sets.
func (b *GetSupportedDMBuilder) WithReturnAll() *GetSupportedDMBuilder {
	return b.WithReturnCommands(true).WithReturnEvents(true).WithReturnParams(true).WithReturnUniqueKeySets(true)
}

func (b *GetSupportedDMBuilder) Build() (*msg.GetSupportedDM, error) {
	if len(b.req.ObjPaths) == 0 {
		return nil, missingField("GetSupportedDM", "obj_paths")
	}
	r := b.req
	return &r, nil
}

// GetInstancesBuilder assembles a msg.GetInstances.
type GetInstancesBuilder struct {
	req msg.GetInstances
}

func NewGetInstancesBuilder() *GetInstancesBuilder {
	return &GetInstancesBuilder{}
}

func (b *GetInstancesBuilder) AddObjPath(paths ...string) *GetInstancesBuilder {
	b.req.ObjPaths = append(b.req.ObjPaths, paths...)
	return b
}

func (b *GetInstancesBuilder) WithFirstLevelOnly(v bool) *GetInstancesBuilder {
	b.req.FirstLevelOnly = v
	return b
}

func (b *GetInstancesBuilder) Build() (*msg.GetInstances, error) {
	if len(b.req.ObjPaths) == 0 {
		return nil, missingField("GetInstances", "obj_paths")
	}
	r := b.req
	return &r, nil
}

// GetSupportedProtocolBuilder assembles a msg.GetSupportedProtocol. Versions are
// sent as one comma separated list.
type GetSupportedProtocolBuilder struct {
	versions []string
}

func NewGetSupportedProtocolBuilder() *GetSupportedProtocolBuilder {
	return &GetSupportedProtocolBuilder{}
}

func (b *GetSupportedProtocolBuilder) AddVersion(versions ...string) *GetSupportedProtocolBuilder {
	b.versions = append(b.versions, versions...)
	return b
}

func (b *GetSupportedProtocolBuilder) Build() (*msg.GetSupportedProtocol, error) {
	if len(b.versions) == 0 {
		return nil, missingField("GetSupportedProtocol", "controller_supported_protocol_versions")
	}
	return &msg.GetSupportedProtocol{ControllerSupportedProtocolVersions: strings.Join(b.versions, ",")}, nil
}

// SetBuilder assembles a msg.Set. Every object needs a path and at least one
// parameter setting.
type SetBuilder struct {
	req msg.Set
}

func NewSetBuilder() *SetBuilder {
	return &SetBuilder{}
}

func (b *SetBuilder) WithAllowPartial(v bool) *SetBuilder {
	b.req.AllowPartial = v
	return b
}

func (b *SetBuilder) UpdateObject(objPath string, settings ...*msg.SetUpdateParamSetting) *SetBuilder {
	b.req.UpdateObjs = append(b.req.UpdateObjs, &msg.SetUpdateObject{ObjPath: objPath, ParamSettings: settings})
	return b
}

// SetParam is a shorthand for a msg.SetUpdateParamSetting.
func SetParam(param, value string, required bool) *msg.SetUpdateParamSetting {
	return &msg.SetUpdateParamSetting{Param: param, Value: value, Required: required}
}

func (b *SetBuilder) Build() (*msg.Set, error) {
	if len(b.req.UpdateObjs) == 0 {
		return nil, missingField("Set", "update_objs")
	}
	for _, o := range b.req.UpdateObjs {
		if o.ObjPath == "" {
			return nil, missingField("Set.UpdateObject", "obj_path")
		}
		if len(o.ParamSettings) == 0 {
			return nil, missingField("Set.UpdateObject", "param_settings")
		}
		for _, p := range o.ParamSettings {
			if p.Param == "" {
				return nil, missingField("Set.UpdateParamSetting", "param")
			}
		}
	}
	r := b.req
	return &r, nil
}

// AddBuilder assembles a msg.Add.
type AddBuilder struct {
	req msg.Add
}

func NewAddBuilder() *AddBuilder {
	return &AddBuilder{}
}

func (b *AddBuilder) WithAllowPartial(v bool) *AddBuilder {
	b.req.AllowPartial = v
	return b
}

func (b *AddBuilder) CreateObject(objPath string, settings ...*msg.AddCreateParamSetting) *AddBuilder {
	b.req.CreateObjs = append(b.req.CreateObjs, &msg.AddCreateObject{ObjPath: objPath, ParamSettings: settings})
	return b
}

// AddParam is a shorthand for a msg.AddCreateParamSetting.
func AddParam(param, value string, required bool) *msg.AddCreateParamSetting {
	return &msg.AddCreateParamSetting{Param: param, Value: value, Required: required}
}

func (b *AddBuilder) Build() (*msg.Add, error) {
	if len(b.req.CreateObjs) == 0 {
		return nil, missingField("Add", "create_objs")
	}
	for _, o := range b.req.CreateObjs {
		if o.ObjPath == "" {
			return nil, missingField("Add.CreateObject", "obj_path")
		}
		for _, p := range o.ParamSettings {
			if p.Param == "" {
				return nil, missingField("Add.CreateParamSetting", "param")
			}
		}
	}
	r := b.req
	return &r, nil
}

// DeleteBuilder assembles a msg.Delete.
type DeleteBuilder struct {
	req msg.Delete
}

func NewDeleteBuilder() *DeleteBuilder {
	return &DeleteBuilder{}
}

func (b *DeleteBuilder) WithAllowPartial(v bool) *DeleteBuilder {
	b.req.AllowPartial = v
	return b
}

func (b *DeleteBuilder) AddObjPath(paths ...string) *DeleteBuilder {
	b.req.ObjPaths = append(b.req.ObjPaths, paths...)
	return b
}

func (b *DeleteBuilder) Build() (*msg.Delete, error) {
	if len(b.req.ObjPaths) == 0 {
		return nil, missingField("Delete", "obj_paths")
	}
	r := b.req
	return &r, nil
}

// OperateBuilder assembles a msg.Operate.
type OperateBuilder struct {
	req msg.Operate
}

func NewOperateBuilder(command string) *OperateBuilder {
	return &OperateBuilder{req: msg.Operate{Command: command}}
}

func (b *OperateBuilder) WithCommandKey(key string) *OperateBuilder {
	b.req.CommandKey = key
	return b
}

func (b *OperateBuilder) WithSendResp(v bool) *OperateBuilder {
	b.req.SendResp = v
	return b
}

func (b *OperateBuilder) WithInputArg(name, value string) *OperateBuilder {
	if b.req.InputArgs == nil {
		b.req.InputArgs = make(map[string]string)
	}
	b.req.InputArgs[name] = value
	return b
}

func (b *OperateBuilder) Build() (*msg.Operate, error) {
	if b.req.Command == "" {
		return nil, missingField("Operate", "command")
	}
	r := b.req
	return &r, nil
}

// NotifyBuilder assembles a msg.Notify. Exactly one notification must be selected;
// the last selection wins. The subscription id may only be empty for
// OnBoardRequest.
type NotifyBuilder struct {
	req msg.Notify
	err error
}

func NewNotifyBuilder(subscriptionID string) *NotifyBuilder {
	return &NotifyBuilder{req: msg.Notify{SubscriptionID: subscriptionID}}
}

func (b *NotifyBuilder) WithSendResp(v bool) *NotifyBuilder {
	b.req.SendResp = v
	return b
}

func (b *NotifyBuilder) set(n msg.NotifyNotification, err error) *NotifyBuilder {
	b.req.Notification = n
	b.err = err
	return b
}

func (b *NotifyBuilder) Event(objPath, eventName string, params map[string]string) *NotifyBuilder {
	return b.set(&msg.NotifyEvent{ObjPath: objPath, EventName: eventName, Params: params}, nil)
}

func (b *NotifyBuilder) ValueChange(paramPath, paramValue string) *NotifyBuilder {
	return b.set(&msg.NotifyValueChange{ParamPath: paramPath, ParamValue: paramValue}, nil)
}

func (b *NotifyBuilder) ObjectCreation(objPath string, uniqueKeys map[string]string) *NotifyBuilder {
	return b.set(&msg.NotifyObjectCreation{ObjPath: objPath, UniqueKeys: uniqueKeys}, nil)
}

func (b *NotifyBuilder) ObjectDeletion(objPath string) *NotifyBuilder {
	return b.set(&msg.NotifyObjectDeletion{ObjPath: objPath}, nil)
}

// OperationComplete reports a finished asynchronous command with its output.
func (b *NotifyBuilder) OperationComplete(objPath, commandName, commandKey string, outputArgs map[string]string) *NotifyBuilder {
	return b.set(&msg.NotifyOperationComplete{
		ObjPath:       objPath,
		CommandName:   commandName,
		CommandKey:    commandKey,
		OperationResp: &msg.NotifyOutputArgs{OutputArgs: outputArgs},
	}, nil)
}

// OperationFailed reports a failed asynchronous command. An empty errMsg is filled
// from the error code table.
func (b *NotifyBuilder) OperationFailed(objPath, commandName, commandKey string, code uint32, errMsg string) *NotifyBuilder {
	text, err := errText(code, errMsg)
	return b.set(&msg.NotifyOperationComplete{
		ObjPath:       objPath,
		CommandName:   commandName,
		CommandKey:    commandKey,
		OperationResp: &msg.NotifyCommandFailure{ErrCode: code, ErrMsg: text},
	}, err)
}

func (b *NotifyBuilder) OnBoardRequest(oui, productClass, serialNumber string, versions ...string) *NotifyBuilder {
	return b.set(&msg.NotifyOnBoardRequest{
		OUI:                            oui,
		ProductClass:                   productClass,
		SerialNumber:                   serialNumber,
		AgentSupportedProtocolVersions: strings.Join(versions, ","),
	}, nil)
}

func (b *NotifyBuilder) Build() (*msg.Notify, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.req.Notification == nil {
		return nil, missingVariant("Notify", "notification")
	}
	if _, onBoard := b.req.Notification.(*msg.NotifyOnBoardRequest); !onBoard && b.req.SubscriptionID == "" {
		return nil, missingField("Notify", "subscription_id")
	}
	r := b.req
	return &r, nil
}

// RegisterBuilder assembles a msg.Register.
type RegisterBuilder struct {
	req msg.Register
}

func NewRegisterBuilder() *RegisterBuilder {
	return &RegisterBuilder{}
}

func (b *RegisterBuilder) WithAllowPartial(v bool) *RegisterBuilder {
	b.req.AllowPartial = v
	return b
}

func (b *RegisterBuilder) AddPath(paths ...string) *RegisterBuilder {
	for _, p := range paths {
		b.req.RegPaths = append(b.req.RegPaths, &msg.RegisterRegistrationPath{Path: p})
	}
	return b
}

func (b *RegisterBuilder) Build() (*msg.Register, error) {
	if len(b.req.RegPaths) == 0 {
		return nil, missingField("Register", "reg_paths")
	}
	for _, p := range b.req.RegPaths {
		if p.Path == "" {
			return nil, missingField("Register.RegistrationPath", "path")
		}
	}
	r := b.req
	return &r, nil
}

// DeregisterBuilder assembles a msg.Deregister. The empty path deregisters every
// path owned by the sender.
type DeregisterBuilder struct {
	req msg.Deregister
}

func NewDeregisterBuilder() *DeregisterBuilder {
	return &DeregisterBuilder{}
}

func (b *DeregisterBuilder) AddPath(paths ...string) *DeregisterBuilder {
	b.req.Paths = append(b.req.Paths, paths...)
	return b
}

// All deregisters everything.
func (b *DeregisterBuilder) All() *DeregisterBuilder {
	return b.AddPath("")
}

func (b *DeregisterBuilder) Build() (*msg.Deregister, error) {
	if len(b.req.Paths) == 0 {
		return nil, missingField("Deregister", "paths")
	}
	r := b.req
	return &r, nil
}
