package builder

import (
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/samber/oops"
)

// The result builders below describe the outcome for one requested path. Each
// needs exactly one of Success or Failure; the last call wins.

// AddResultBuilder assembles one msg.AddRespCreatedObjectResult.
type AddResultBuilder struct {
	requestedPath string
	status        msg.AddRespOperStatus
}

func NewAddResult(requestedPath string) *AddResultBuilder {
	return &AddResultBuilder{requestedPath: requestedPath}
}

func (b *AddResultBuilder) Success(instantiatedPath string, uniqueKeys map[string]string, paramErrs ...*msg.AddRespParameterError) *AddResultBuilder {
	b.status = &msg.AddRespOperationSuccess{InstantiatedPath: instantiatedPath, UniqueKeys: uniqueKeys, ParamErrs: paramErrs}
	return b
}

func (b *AddResultBuilder) Failure(code uint32, errMsg string) *AddResultBuilder {
	b.status = &msg.AddRespOperationFailure{ErrCode: code, ErrMsg: errMsg}
	return b
}

func (b *AddResultBuilder) Build() (*msg.AddRespCreatedObjectResult, error) {
	switch s := b.status.(type) {
	case nil:
		return nil, missingVariant("AddResp.OperationStatus", "oper_status")
	case *msg.AddRespOperationFailure:
		text, err := errText(s.ErrCode, s.ErrMsg)
		if err != nil {
			return nil, err
		}
		s.ErrMsg = text
	case *msg.AddRespOperationSuccess:
		if s.InstantiatedPath == "" {
			return nil, missingField("AddResp.OperationSuccess", "instantiated_path")
		}
		for _, pe := range s.ParamErrs {
			text, err := errText(pe.ErrCode, pe.ErrMsg)
			if err != nil {
				return nil, oops.Wrapf(err, "parameter %s", pe.Param)
			}
			pe.ErrMsg = text
		}
	}
	return &msg.AddRespCreatedObjectResult{
		RequestedPath: b.requestedPath,
		OperStatus:    &msg.AddRespOperationStatus{OperStatus: b.status},
	}, nil
}

// SetResultBuilder assembles one msg.SetRespUpdatedObjectResult.
type SetResultBuilder struct {
	requestedPath string
	status        msg.SetRespOperStatus
}

func NewSetResult(requestedPath string) *SetResultBuilder {
	return &SetResultBuilder{requestedPath: requestedPath}
}

func (b *SetResultBuilder) Success(results ...*msg.SetRespUpdatedInstanceResult) *SetResultBuilder {
	b.status = &msg.SetRespOperationSuccess{UpdatedInstResults: results}
	return b
}

func (b *SetResultBuilder) Failure(code uint32, errMsg string, failures ...*msg.SetRespUpdatedInstanceFailure) *SetResultBuilder {
	b.status = &msg.SetRespOperationFailure{ErrCode: code, ErrMsg: errMsg, UpdatedInstFailures: failures}
	return b
}

func fillSetParamErrs(errs []*msg.SetRespParameterError) error {
	for _, pe := range errs {
		text, err := errText(pe.ErrCode, pe.ErrMsg)
		if err != nil {
			return oops.Wrapf(err, "parameter %s", pe.Param)
		}
		pe.ErrMsg = text
	}
	return nil
}

func (b *SetResultBuilder) Build() (*msg.SetRespUpdatedObjectResult, error) {
	switch s := b.status.(type) {
	case nil:
		return nil, missingVariant("SetResp.OperationStatus", "oper_status")
	case *msg.SetRespOperationFailure:
		text, err := errText(s.ErrCode, s.ErrMsg)
		if err != nil {
			return nil, err
		}
		s.ErrMsg = text
		for _, f := range s.UpdatedInstFailures {
			if err := fillSetParamErrs(f.ParamErrs); err != nil {
				return nil, err
			}
		}
	case *msg.SetRespOperationSuccess:
		for _, r := range s.UpdatedInstResults {
			if err := fillSetParamErrs(r.ParamErrs); err != nil {
				return nil, err
			}
		}
	}
	return &msg.SetRespUpdatedObjectResult{
		RequestedPath: b.requestedPath,
		OperStatus:    &msg.SetRespOperationStatus{OperStatus: b.status},
	}, nil
}

// DeleteResultBuilder assembles one msg.DeleteRespDeletedObjectResult.
type DeleteResultBuilder struct {
	requestedPath string
	status        msg.DeleteRespOperStatus
}

func NewDeleteResult(requestedPath string) *DeleteResultBuilder {
	return &DeleteResultBuilder{requestedPath: requestedPath}
}

func (b *DeleteResultBuilder) Success(affectedPaths []string, unaffected ...*msg.DeleteRespUnaffectedPathError) *DeleteResultBuilder {
	b.status = &msg.DeleteRespOperationSuccess{AffectedPaths: affectedPaths, UnaffectedPathErrs: unaffected}
	return b
}

func (b *DeleteResultBuilder) Failure(code uint32, errMsg string) *DeleteResultBuilder {
	b.status = &msg.DeleteRespOperationFailure{ErrCode: code, ErrMsg: errMsg}
	return b
}

func (b *DeleteResultBuilder) Build() (*msg.DeleteRespDeletedObjectResult, error) {
	switch s := b.status.(type) {
	case nil:
		return nil, missingVariant("DeleteResp.OperationStatus", "oper_status")
	case *msg.DeleteRespOperationFailure:
		text, err := errText(s.ErrCode, s.ErrMsg)
		if err != nil {
			return nil, err
		}
		s.ErrMsg = text
	case *msg.DeleteRespOperationSuccess:
		for _, u := range s.UnaffectedPathErrs {
			text, err := errText(u.ErrCode, u.ErrMsg)
			if err != nil {
				return nil, oops.Wrapf(err, "path %s", u.UnaffectedPath)
			}
			u.ErrMsg = text
		}
	}
	return &msg.DeleteRespDeletedObjectResult{
		RequestedPath: b.requestedPath,
		OperStatus:    &msg.DeleteRespOperationStatus{OperStatus: b.status},
	}, nil
}

// OperateResultBuilder assembles one msg.OperateRespOperationResult. The three
// outcomes are a Request object path for asynchronous commands, output arguments
// or a failure.
type OperateResultBuilder struct {
	executedCommand string
	resp            msg.OperateRespOperationResp
}

func NewOperateResult(executedCommand string) *OperateResultBuilder {
	return &OperateResultBuilder{executedCommand: executedCommand}
}

func (b *OperateResultBuilder) ReqObjPath(path string) *OperateResultBuilder {
	b.resp = msg.OperateRespReqObjPath(path)
	return b
}

func (b *OperateResultBuilder) OutputArgs(args map[string]string) *OperateResultBuilder {
	b.resp = &msg.OperateRespOutputArgs{OutputArgs: args}
	return b
}

func (b *OperateResultBuilder) Failure(code uint32, errMsg string) *OperateResultBuilder {
	b.resp = &msg.OperateRespCommandFailure{ErrCode: code, ErrMsg: errMsg}
	return b
}

func (b *OperateResultBuilder) Build() (*msg.OperateRespOperationResult, error) {
	if b.executedCommand == "" {
		return nil, missingField("OperateResp.OperationResult", "executed_command")
	}
	switch r := b.resp.(type) {
	case nil:
		return nil, missingVariant("OperateResp.OperationResult", "operation_resp")
	case *msg.OperateRespCommandFailure:
		text, err := errText(r.ErrCode, r.ErrMsg)
		if err != nil {
			return nil, err
		}
		r.ErrMsg = text
	}
	return &msg.OperateRespOperationResult{ExecutedCommand: b.executedCommand, OperationResp: b.resp}, nil
}

// RegisterResultBuilder assembles one msg.RegisterRespRegisteredPathResult.
type RegisterResultBuilder struct {
	requestedPath string
	status        msg.RegisterRespOperStatus
}

func NewRegisterResult(requestedPath string) *RegisterResultBuilder {
	return &RegisterResultBuilder{requestedPath: requestedPath}
}

func (b *RegisterResultBuilder) Success(registeredPath string) *RegisterResultBuilder {
	b.status = &msg.RegisterRespOperationSuccess{RegisteredPath: registeredPath}
	return b
}

func (b *RegisterResultBuilder) Failure(code uint32, errMsg string) *RegisterResultBuilder {
	b.status = &msg.RegisterRespOperationFailure{ErrCode: code, ErrMsg: errMsg}
	return b
}

func (b *RegisterResultBuilder) Build() (*msg.RegisterRespRegisteredPathResult, error) {
	switch s := b.status.(type) {
	case nil:
		return nil, missingVariant("RegisterResp.OperationStatus", "oper_status")
	case *msg.RegisterRespOperationFailure:
		text, err := errText(s.ErrCode, s.ErrMsg)
		if err != nil {
			return nil, err
		}
		s.ErrMsg = text
	}
	return &msg.RegisterRespRegisteredPathResult{
		RequestedPath: b.requestedPath,
		OperStatus:    &msg.RegisterRespOperationStatus{OperStatus: b.status},
	}, nil
}

// DeregisterResultBuilder assembles one msg.DeregisterRespDeregisteredPathResult.
type DeregisterResultBuilder struct {
	requestedPath string
	status        msg.DeregisterRespOperStatus
}

func NewDeregisterResult(requestedPath string) *DeregisterResultBuilder {
	return &DeregisterResultBuilder{requestedPath: requestedPath}
}

func (b *DeregisterResultBuilder) Success(deregisteredPaths ...string) *DeregisterResultBuilder {
	b.status = &msg.DeregisterRespOperationSuccess{DeregisteredPath: deregisteredPaths}
	return b
}

func (b *DeregisterResultBuilder) Failure(code uint32, errMsg string) *DeregisterResultBuilder {
	b.status = &msg.DeregisterRespOperationFailure{ErrCode: code, ErrMsg: errMsg}
	return b
}

func (b *DeregisterResultBuilder) Build() (*msg.DeregisterRespDeregisteredPathResult, error) {
	switch s := b.status.(type) {
	case nil:
		return nil, missingVariant("DeregisterResp.OperationStatus", "oper_status")
	case *msg.DeregisterRespOperationFailure:
		text, err := errText(s.ErrCode, s.ErrMsg)
		if err != nil {
			return nil, err
		}
		s.ErrMsg = text
	}
	return &msg.DeregisterRespDeregisteredPathResult{
		RequestedPath: b.requestedPath,
		OperStatus:    &msg.DeregisterRespOperationStatus{OperStatus: b.status},
	}, nil
}
