package builder

import (
	"slices"
	"strings"

	"github.com/go-usp/go-usp/lib/msg"
	"github.com/samber/oops"
)

// GetRespBuilder assembles a msg.GetResp. Results are grouped by requested path
// in the order the paths were first seen.
type GetRespBuilder struct {
	results []*msg.GetRespRequestedPathResult
}

func NewGetRespBuilder() *GetRespBuilder {
	return &GetRespBuilder{}
}

func (b *GetRespBuilder) pathResult(requestedPath string) *msg.GetRespRequestedPathResult {
	i := slices.IndexFunc(b.results, func(r *msg.GetRespRequestedPathResult) bool {
		return r.RequestedPath == requestedPath
	})
	if i >= 0 {
		return b.results[i]
	}
	r := &msg.GetRespRequestedPathResult{RequestedPath: requestedPath}
	b.results = append(b.results, r)
	return r
}

// Resolved adds the parameters of one resolved object to requestedPath.
func (b *GetRespBuilder) Resolved(requestedPath, resolvedPath string, params map[string]string) *GetRespBuilder {
	r := b.pathResult(requestedPath)
	r.ResolvedPathResults = append(r.ResolvedPathResults, &msg.GetRespResolvedPathResult{
		ResolvedPath: resolvedPath,
		ResultParams: params,
	})
	return b
}

// PathError marks requestedPath as failed.
func (b *GetRespBuilder) PathError(requestedPath string, code uint32, errMsg string) *GetRespBuilder {
	r := b.pathResult(requestedPath)
	r.ErrCode, r.ErrMsg = code, errMsg
	return b
}

func (b *GetRespBuilder) Build() (*msg.GetResp, error) {
	for _, r := range b.results {
		text, err := optErrText(r.ErrCode, r.ErrMsg)
		if err != nil {
			return nil, oops.Wrapf(err, "GetResp %s", r.RequestedPath)
		}
		r.ErrMsg = text
	}
	return &msg.GetResp{ReqPathResults: b.results}, nil
}

// GetSupportedDMRespBuilder assembles a msg.GetSupportedDMResp.
type GetSupportedDMRespBuilder struct {
	results []*msg.GetSupportedDMRespRequestedObjectResult
}

func NewGetSupportedDMRespBuilder() *GetSupportedDMRespBuilder {
	return &GetSupportedDMRespBuilder{}
}

func (b *GetSupportedDMRespBuilder) Object(reqObjPath, dataModelInstURI string, objs ...*msg.GetSupportedDMRespSupportedObjectResult) *GetSupportedDMRespBuilder {
	b.results = append(b.results, &msg.GetSupportedDMRespRequestedObjectResult{
		ReqObjPath:       reqObjPath,
		DataModelInstURI: dataModelInstURI,
		SupportedObjs:    objs,
	})
	return b
}

func (b *GetSupportedDMRespBuilder) ObjectError(reqObjPath string, code uint32, errMsg string) *GetSupportedDMRespBuilder {
	b.results = append(b.results, &msg.GetSupportedDMRespRequestedObjectResult{
		ReqObjPath: reqObjPath,
		ErrCode:    code,
		ErrMsg:     errMsg,
	})
	return b
}

func (b *GetSupportedDMRespBuilder) Build() (*msg.GetSupportedDMResp, error) {
	for _, r := range b.results {
		text, err := optErrText(r.ErrCode, r.ErrMsg)
		if err != nil {
			return nil, oops.Wrapf(err, "GetSupportedDMResp %s", r.ReqObjPath)
		}
		r.ErrMsg = text
	}
	return &msg.GetSupportedDMResp{ReqObjResults: b.results}, nil
}

// GetInstancesRespBuilder assembles a msg.GetInstancesResp.
type GetInstancesRespBuilder struct {
	results []*msg.GetInstancesRespRequestedPathResult
}

func NewGetInstancesRespBuilder() *GetInstancesRespBuilder {
	return &GetInstancesRespBuilder{}
}

// Instance is a shorthand for a msg.GetInstancesRespCurrInstance.
func Instance(path string, uniqueKeys map[string]string) *msg.GetInstancesRespCurrInstance {
	return &msg.GetInstancesRespCurrInstance{InstantiatedObjPath: path, UniqueKeys: uniqueKeys}
}

func (b *GetInstancesRespBuilder) Instances(requestedPath string, insts ...*msg.GetInstancesRespCurrInstance) *GetInstancesRespBuilder {
	b.results = append(b.results, &msg.GetInstancesRespRequestedPathResult{
		RequestedPath: requestedPath,
		CurrInsts:     insts,
	})
	return b
}

func (b *GetInstancesRespBuilder) PathError(requestedPath string, code uint32, errMsg string) *GetInstancesRespBuilder {
	b.results = append(b.results, &msg.GetInstancesRespRequestedPathResult{
		RequestedPath: requestedPath,
		ErrCode:       code,
		ErrMsg:        errMsg,
	})
	return b
}

func (b *GetInstancesRespBuilder) Build() (*msg.GetInstancesResp, error) {
	for _, r := range b.results {
		text, err := optErrText(r.ErrCode, r.ErrMsg)
		if err != nil {
			return nil, oops.Wrapf(err, "GetInstancesResp %s", r.RequestedPath)
		}
		r.ErrMsg = text
	}
	return &msg.GetInstancesResp{ReqPathResults: b.results}, nil
}

// GetSupportedProtocolRespBuilder assembles a msg.GetSupportedProtocolResp.
type GetSupportedProtocolRespBuilder struct {
	versions []string
}

func NewGetSupportedProtocolRespBuilder() *GetSupportedProtocolRespBuilder {
	return &GetSupportedProtocolRespBuilder{}
}

func (b *GetSupportedProtocolRespBuilder) AddVersion(versions ...string) *GetSupportedProtocolRespBuilder {
	b.versions = append(b.versions, versions...)
	return b
}

func (b *GetSupportedProtocolRespBuilder) Build() (*msg.GetSupportedProtocolResp, error) {
	if len(b.versions) == 0 {
		return nil, missingField("GetSupportedProtocolResp", "agent_supported_protocol_versions")
	}
	return &msg.GetSupportedProtocolResp{AgentSupportedProtocolVersions: strings.Join(b.versions, ",")}, nil
}

// NotifyRespBuilder assembles a msg.NotifyResp.
type NotifyRespBuilder struct {
	subscriptionID string
}

func NewNotifyRespBuilder(subscriptionID string) *NotifyRespBuilder {
	return &NotifyRespBuilder{subscriptionID: subscriptionID}
}

func (b *NotifyRespBuilder) Build() (*msg.NotifyResp, error) {
	if b.subscriptionID == "" {
		return nil, missingField("NotifyResp", "subscription_id")
	}
	return &msg.NotifyResp{SubscriptionID: b.subscriptionID}, nil
}
