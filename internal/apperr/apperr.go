package apperr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// Kind classifies a failure so the HTTP boundary can map it onto a
// status code without string matching.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindConflict
)

type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NotFound(format string, args ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) error {
	return &Error{kind: KindInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

// Internal wraps a storage or serialization failure, keeping the
// underlying diagnostic reachable through Unwrap.
func Internal(cause error, format string, args ...any) error {
	return &Error{kind: KindInternal, msg: fmt.Sprintf(format, args...), cause: cause}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

// StatusCode maps an error onto the HTTP status the API responds with.
// Unclassified errors count as internal.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fasthttp.StatusNotFound
	case KindInvalidArgument:
		return fasthttp.StatusBadRequest
	case KindConflict:
		return fasthttp.StatusConflict
	default:
		return fasthttp.StatusInternalServerError
	}
}
