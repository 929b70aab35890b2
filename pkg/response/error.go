package response

import (
	"fmt"
	"net/http"
)

// Kind 错误分类, 在 HTTP 边界映射为状态码
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUpstream
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if k == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// BizError carries the message shown to the caller. Err is the underlying
// cause; it is logged and never serialized.
type BizError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *BizError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.Err
}

func Validation(msg string) *BizError {
	return &BizError{Kind: KindValidation, Msg: msg}
}

func Upstream(msg string, err error) *BizError {
	return &BizError{Kind: KindUpstream, Msg: msg, Err: err}
}

func Internal(msg string, err error) *BizError {
	return &BizError{Kind: KindInternal, Msg: msg, Err: err}
}
