package errorx

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure independently of the transport.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindReferentialIntegrity
	KindAuthFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindConflict:
		return "conflict"
	case KindReferentialIntegrity:
		return "referential_integrity"
	case KindAuthFailed:
		return "auth_failed"
	default:
		return "internal"
	}
}

// Error is a classified failure. MessageID and Data drive translation at the
// boundary; Message is the English fallback.
type Error struct {
	Kind      Kind
	MessageID string
	Message   string
	Data      map[string]any
	cause     error
}

func New(kind Kind, messageID, message string) *Error {
	return &Error{Kind: kind, MessageID: messageID, Message: message}
}

// With returns a copy carrying an extra template parameter.
func (e *Error) With(key string, value any) *Error {
	cp := *e
	cp.Data = make(map[string]any, len(e.Data)+1)
	for k, v := range e.Data {
		cp.Data[k] = v
	}
	cp.Data[key] = value
	return &cp
}

// Wrap returns a copy with cause attached.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

// Text renders Message with its template parameters substituted.
func (e *Error) Text() string {
	msg := e.Message
	for k, v := range e.Data {
		msg = strings.ReplaceAll(msg, "{{."+k+"}}", fmt.Sprint(v))
	}
	return msg
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Text() + ": " + e.cause.Error()
	}
	return e.Text()
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches on Kind and MessageID so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.MessageID == e.MessageID
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
