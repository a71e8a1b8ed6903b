package builder

import (
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/samber/oops"
)

type resultBuilder[T any] interface {
	Build() (T, error)
}

func buildAll[T any, B resultBuilder[T]](typ string, bs []B) ([]T, error) {
	if len(bs) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(bs))
	for i, b := range bs {
		v, err := b.Build()
		if err != nil {
			return nil, oops.Wrapf(err, "%s result %d", typ, i)
		}
		out = append(out, v)
	}
	return out, nil
}

// AddRespBuilder assembles a msg.AddResp from per-object results.
type AddRespBuilder struct {
	results []*AddResultBuilder
}

func NewAddRespBuilder() *AddRespBuilder {
	return &AddRespBuilder{}
}

func (b *AddRespBuilder) AddResult(results ...*AddResultBuilder) *AddRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *AddRespBuilder) Build() (*msg.AddResp, error) {
	rs, err := buildAll[*msg.AddRespCreatedObjectResult]("AddResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.AddResp{CreatedObjResults: rs}, nil
}

// SetRespBuilder assembles a msg.SetResp from per-object results.
type SetRespBuilder struct {
	results []*SetResultBuilder
}

func NewSetRespBuilder() *SetRespBuilder {
	return &SetRespBuilder{}
}

func (b *SetRespBuilder) AddResult(results ...*SetResultBuilder) *SetRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *SetRespBuilder) Build() (*msg.SetResp, error) {
	rs, err := buildAll[*msg.SetRespUpdatedObjectResult]("SetResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.SetResp{UpdatedObjResults: rs}, nil
}

// DeleteRespBuilder assembles a msg.DeleteResp from per-object results.
type DeleteRespBuilder struct {
	results []*DeleteResultBuilder
}

func NewDeleteRespBuilder() *DeleteRespBuilder {
	return &DeleteRespBuilder{}
}

func (b *DeleteRespBuilder) AddResult(results ...*DeleteResultBuilder) *DeleteRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *DeleteRespBuilder) Build() (*msg.DeleteResp, error) {
	rs, err := buildAll[*msg.DeleteRespDeletedObjectResult]("DeleteResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.DeleteResp{DeletedObjResults: rs}, nil
}

// OperateRespBuilder assembles a msg.OperateResp from per-command results.
type OperateRespBuilder struct {
	results []*OperateResultBuilder
}

func NewOperateRespBuilder() *OperateRespBuilder {
	return &OperateRespBuilder{}
}

func (b *OperateRespBuilder) AddResult(results ...*OperateResultBuilder) *OperateRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *OperateRespBuilder) Build() (*msg.OperateResp, error) {
	rs, err := buildAll[*msg.OperateRespOperationResult]("OperateResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.OperateResp{OperationResults: rs}, nil
}

// RegisterRespBuilder assembles a msg.RegisterResp from per-path results.
type RegisterRespBuilder struct {
	results []*RegisterResultBuilder
}

func NewRegisterRespBuilder() *RegisterRespBuilder {
	return &RegisterRespBuilder{}
}

func (b *RegisterRespBuilder) AddResult(results ...*RegisterResultBuilder) *RegisterRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *RegisterRespBuilder) Build() (*msg.RegisterResp, error) {
	rs, err := buildAll[*msg.RegisterRespRegisteredPathResult]("RegisterResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.RegisterResp{RegisteredPathResults: rs}, nil
}

// DeregisterRespBuilder assembles a msg.DeregisterResp from per-path results.
type DeregisterRespBuilder struct {
	results []*DeregisterResultBuilder
}

func NewDeregisterRespBuilder() *DeregisterRespBuilder {
	return &DeregisterRespBuilder{}
}

func (b *DeregisterRespBuilder) AddResult(results ...*DeregisterResultBuilder) *DeregisterRespBuilder {
	b.results = append(b.results, results...)
	return b
}

func (b *DeregisterRespBuilder) Build() (*msg.DeregisterResp, error) {
	rs, err := buildAll[*msg.DeregisterRespDeregisteredPathResult]("DeregisterResp", b.results)
	if err != nil {
		return nil, err
	}
	return &msg.DeregisterResp{DeregisteredPathResults: rs}, nil
}
