package msg

// requestSamples holds one fully populated instance of every request operation.
func requestSamples() map[string]ReqType {
	return map[string]ReqType{
		"Get": &Get{ParamPaths: []string{"Device.", "Device.DeviceInfo."}, MaxDepth: 1},
		"GetSupportedDM": &GetSupportedDM{
			ObjPaths:            []string{"Device.WiFi."},
			FirstLevelOnly:      true,
			ReturnCommands:      true,
			ReturnEvents:        true,
			ReturnParams:        true,
			ReturnUniqueKeySets: true,
		},
		"GetInstances": &GetInstances{ObjPaths: []string{"Device.IP.Interface."}, FirstLevelOnly: true},
		"Set": &Set{
			AllowPartial: true,
			UpdateObjs: []*SetUpdateObject{{
				ObjPath: "Device.LocalAgent.",
				ParamSettings: []*SetUpdateParamSetting{
					{Param: "Enable", Value: "true", Required: true},
					{Param: "Alias", Value: ""},
				},
			}},
		},
		"Add": &Add{
			CreateObjs: []*AddCreateObject{{
				ObjPath:       "Device.LocalAgent.Subscription.",
				ParamSettings: []*AddCreateParamSetting{{Param: "ID", Value: "sub-1", Required: true}},
			}},
		},
		"Delete":  &Delete{AllowPartial: true, ObjPaths: []string{"Device.LocalAgent.Subscription.3."}},
		"Operate": &Operate{Command: "Device.Reboot()", CommandKey: "reboot-1", SendResp: true, InputArgs: map[string]string{"Cause": "LocalReboot"}},
		"Notify": &Notify{
			SubscriptionID: "sub-1",
			SendResp:       true,
			Notification:   &NotifyValueChange{ParamPath: "Device.DeviceInfo.UpTime", ParamValue: "42"},
		},
		"GetSupportedProtocol": &GetSupportedProtocol{ControllerSupportedProtocolVersions: "1.0,1.3"},
		"Register": &Register{
			AllowPartial: true,
			RegPaths:     []*RegisterRegistrationPath{{Path: "Device.Services.VoiceService."}},
		},
		"Deregister": &Deregister{Paths: []string{"Device.Services.VoiceService.", ""}},
	}
}

// responseSamples holds one fully populated instance of every response operation.
func responseSamples() map[string]RespType {
	return map[string]RespType{
		"GetResp": &GetResp{ReqPathResults: []*GetRespRequestedPathResult{{
			RequestedPath: "Device.DeviceInfo.",
			ResolvedPathResults: []*GetRespResolvedPathResult{{
				ResolvedPath: "Device.DeviceInfo.",
				ResultParams: map[string]string{"Manufacturer": "ACME", "SerialNumber": "0001"},
			}},
		}, {
			RequestedPath: "Device.Nope.",
			ErrCode:       7026,
			ErrMsg:        "Invalid path",
		}}},
		"GetSupportedDMResp": &GetSupportedDMResp{ReqObjResults: []*GetSupportedDMRespRequestedObjectResult{{
			ReqObjPath:       "Device.",
			DataModelInstURI: "urn:broadband-forum-org:tr-181-2-16-0-usp",
			SupportedObjs: []*GetSupportedDMRespSupportedObjectResult{{
				SupportedObjPath: "Device.IP.Interface.{i}.",
				Access:           ObjAddDelete,
				IsMultiInstance:  true,
				SupportedCommands: []*GetSupportedDMRespSupportedCommandResult{{
					CommandName:    "Reset()",
					InputArgNames:  []string{"Force"},
					OutputArgNames: []string{"Status"},
					CommandType:    CmdAsync,
				}},
				SupportedEvents: []*GetSupportedDMRespSupportedEventResult{{EventName: "Boot!", ArgNames: []string{"Cause"}}},
				SupportedParams: []*GetSupportedDMRespSupportedParamResult{{
					ParamName:   "Enable",
					Access:      ParamReadWrite,
					ValueType:   ParamBoolean,
					ValueChange: ValueChangeAllowed,
				}},
				DivergentPaths: []string{"Device.IP.Interface.1."},
				UniqueKeySets:  []*GetSupportedDMRespSupportedUniqueKeySet{{KeyNames: []string{"Alias"}}},
			}},
		}}},
		"GetInstancesResp": &GetInstancesResp{ReqPathResults: []*GetInstancesRespRequestedPathResult{{
			RequestedPath: "Device.IP.Interface.",
			CurrInsts: []*GetInstancesRespCurrInstance{
				{InstantiatedObjPath: "Device.IP.Interface.1.", UniqueKeys: map[string]string{"Alias": "cpe-1"}},
				{InstantiatedObjPath: "Device.IP.Interface.2."},
			},
		}}},
		"SetResp": &SetResp{UpdatedObjResults: []*SetRespUpdatedObjectResult{{
			RequestedPath: "Device.LocalAgent.",
			OperStatus: &SetRespOperationStatus{OperStatus: &SetRespOperationSuccess{
				UpdatedInstResults: []*SetRespUpdatedInstanceResult{{
					AffectedPath:  "Device.LocalAgent.",
					ParamErrs:     []*SetRespParameterError{{Param: "Alias", ErrCode: 7012, ErrMsg: "Invalid value"}},
					UpdatedParams: map[string]string{"Enable": "true"},
				}},
			}},
		}, {
			RequestedPath: "Device.Foo.",
			OperStatus: &SetRespOperationStatus{OperStatus: &SetRespOperationFailure{
				ErrCode: 7021,
				ErrMsg:  "Required parameter failed",
				UpdatedInstFailures: []*SetRespUpdatedInstanceFailure{{
					AffectedPath: "Device.Foo.1.",
					ParamErrs:    []*SetRespParameterError{{Param: "Bar", ErrCode: 7010}},
				}},
			}},
		}}},
		"AddResp": &AddResp{CreatedObjResults: []*AddRespCreatedObjectResult{{
			RequestedPath: "Device.Foo.",
			OperStatus: &AddRespOperationStatus{OperStatus: &AddRespOperationSuccess{
				InstantiatedPath: "Device.Foo.1.",
				ParamErrs:        []*AddRespParameterError{{Param: "Name", ErrCode: 7012, ErrMsg: "Invalid value"}},
				UniqueKeys:       map[string]string{"Alias": "foo-1"},
			}},
		}, {
			RequestedPath: "Device.Bar.",
			OperStatus:    &AddRespOperationStatus{OperStatus: &AddRespOperationFailure{ErrCode: 7017, ErrMsg: "Object could not be created"}},
		}}},
		"DeleteResp": &DeleteResp{DeletedObjResults: []*DeleteRespDeletedObjectResult{{
			RequestedPath: "Device.Foo.*.",
			OperStatus: &DeleteRespOperationStatus{OperStatus: &DeleteRespOperationSuccess{
				AffectedPaths: []string{"Device.Foo.1.", "Device.Foo.2."},
				UnaffectedPathErrs: []*DeleteRespUnaffectedPathError{{
					UnaffectedPath: "Device.Foo.3.",
					ErrCode:        7024,
					ErrMsg:         "Delete failure",
				}},
			}},
		}, {
			RequestedPath: "Device.Bar.1.",
			OperStatus:    &DeleteRespOperationStatus{OperStatus: &DeleteRespOperationFailure{ErrCode: 7016}},
		}}},
		"OperateResp": &OperateResp{OperationResults: []*OperateRespOperationResult{
			{ExecutedCommand: "Device.SelfTest()", OperationResp: OperateRespReqObjPath("Device.LocalAgent.Request.1.")},
			{ExecutedCommand: "Device.Ping()", OperationResp: &OperateRespOutputArgs{OutputArgs: map[string]string{"Result": "ok"}}},
			{ExecutedCommand: "Device.Boom()", OperationResp: &OperateRespCommandFailure{ErrCode: 7022, ErrMsg: "Command failure"}},
		}},
		"NotifyResp":               &NotifyResp{SubscriptionID: "sub-1"},
		"GetSupportedProtocolResp": &GetSupportedProtocolResp{AgentSupportedProtocolVersions: "1.3"},
		"RegisterResp": &RegisterResp{RegisteredPathResults: []*RegisterRespRegisteredPathResult{
			{RequestedPath: "Device.A.", OperStatus: &RegisterRespOperationStatus{OperStatus: &RegisterRespOperationSuccess{RegisteredPath: "Device.A."}}},
			{RequestedPath: "Device.B.", OperStatus: &RegisterRespOperationStatus{OperStatus: &RegisterRespOperationFailure{ErrCode: 7031, ErrMsg: "Path already registered"}}},
		}},
		"DeregisterResp": &DeregisterResp{DeregisteredPathResults: []*DeregisterRespDeregisteredPathResult{
			{RequestedPath: "", OperStatus: &DeregisterRespOperationStatus{OperStatus: &DeregisterRespOperationSuccess{DeregisteredPath: []string{"Device.A.", "Device.B."}}}},
			{RequestedPath: "Device.C.", OperStatus: &DeregisterRespOperationStatus{OperStatus: &DeregisterRespOperationFailure{ErrCode: 7030}}},
		}},
	}
}

// notificationSamples covers every Notify variant.
func notificationSamples() map[string]NotifyNotification {
	return map[string]NotifyNotification{
		"Event":       &NotifyEvent{ObjPath: "Device.", EventName: "Boot!", Params: map[string]string{"Cause": "LocalReboot", "FirmwareUpdated": "false"}},
		"ValueChange": &NotifyValueChange{ParamPath: "Device.DeviceInfo.UpTime", ParamValue: "42"},
		"ObjectCreation": &NotifyObjectCreation{
			ObjPath:    "Device.IP.Interface.3.",
			UniqueKeys: map[string]string{"Alias": "cpe-3"},
		},
		"ObjectDeletion": &NotifyObjectDeletion{ObjPath: "Device.IP.Interface.3."},
		"OperationCompleteOutput": &NotifyOperationComplete{
			ObjPath:       "Device.",
			CommandName:   "SelfTest()",
			CommandKey:    "st-1",
			OperationResp: &NotifyOutputArgs{OutputArgs: map[string]string{"Status": "Complete"}},
		},
		"OperationCompleteFailure": &NotifyOperationComplete{
			ObjPath:       "Device.",
			CommandName:   "SelfTest()",
			OperationResp: &NotifyCommandFailure{ErrCode: 7023, ErrMsg: "Command canceled"},
		},
		"OnBoardRequest": &NotifyOnBoardRequest{
			OUI:                            "00D09E",
			ProductClass:                   "Gateway",
			SerialNumber:                   "ABC123",
			AgentSupportedProtocolVersions: "1.0,1.1,1.2,1.3",
		},
	}
}
