package builder

import (
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/samber/oops"
)

// ErrorBuilder assembles a msg.Error. Empty messages, on the error itself and on
// each parameter error, are filled from the error code table.
type ErrorBuilder struct {
	e msg.Error
}

func NewErrorBuilder(code uint32) *ErrorBuilder {
	return &ErrorBuilder{e: msg.Error{ErrCode: code}}
}

func (b *ErrorBuilder) WithMessage(text string) *ErrorBuilder {
	b.e.ErrMsg = text
	return b
}

func (b *ErrorBuilder) AddParamError(paramPath string, code uint32, text string) *ErrorBuilder {
	b.e.ParamErrs = append(b.e.ParamErrs, &msg.ParamError{ParamPath: paramPath, ErrCode: code, ErrMsg: text})
	return b
}

func (b *ErrorBuilder) Build() (*msg.Error, error) {
	if b.e.ErrCode == 0 {
		return nil, missingField("Error", "err_code")
	}
	text, err := errText(b.e.ErrCode, b.e.ErrMsg)
	if err != nil {
		return nil, err
	}
	e := b.e
	e.ErrMsg = text
	e.ParamErrs = make([]*msg.ParamError, 0, len(b.e.ParamErrs))
	for _, pe := range b.e.ParamErrs {
		if pe.ParamPath == "" {
			return nil, missingField("Error.ParamError", "param_path")
		}
		text, err := errText(pe.ErrCode, pe.ErrMsg)
		if err != nil {
			return nil, oops.Wrapf(err, "param %s", pe.ParamPath)
		}
		e.ParamErrs = append(e.ParamErrs, &msg.ParamError{ParamPath: pe.ParamPath, ErrCode: pe.ErrCode, ErrMsg: text})
	}
	if len(e.ParamErrs) == 0 {
		e.ParamErrs = nil
	}
	return &e, nil
}
