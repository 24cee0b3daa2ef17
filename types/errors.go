package types

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// ErrorKind classifies every failure surfaced by the client
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindValidation     ErrorKind = "validation"
	KindServer         ErrorKind = "server"
	KindTimeout        ErrorKind = "timeout"
	KindConnection     ErrorKind = "connection"
	// KindResponse marks a 2xx body that does not match the declared shape.
	KindResponse ErrorKind = "response"
	// KindAPI marks a non-2xx status outside 400, 401 and 5xx.
	KindAPI     ErrorKind = "api"
	KindGeneric ErrorKind = "generic"
)

// Text codes attached to go-errors envelopes.
const (
	TextCodeUnauthorized    = "SHEGERPAY_UNAUTHORIZED"
	TextCodeBadInput        = "SHEGERPAY_BAD_INPUT"
	TextCodeServerError     = "SHEGERPAY_SERVER_ERROR"
	TextCodeTimeout         = "SHEGERPAY_TIMEOUT"
	TextCodeConnection      = "SHEGERPAY_CONNECTION_FAILED"
	TextCodeInvalidResponse = "SHEGERPAY_INVALID_RESPONSE"
	TextCodeRequestFailed   = "SHEGERPAY_REQUEST_FAILED"
	TextCodeInternal        = "SHEGERPAY_INTERNAL_ERROR"
)

// Sentinels for errors.Is; matching is by Kind only.
var (
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrServer         = &Error{Kind: KindServer}
	ErrTimeout        = &Error{Kind: KindTimeout}
	ErrConnection     = &Error{Kind: KindConnection}
	ErrResponse       = &Error{Kind: KindResponse}
	ErrAPI            = &Error{Kind: KindAPI}
	ErrGeneric        = &Error{Kind: KindGeneric}
)

// Error is the single error type returned by the client
type Error struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	Err        error     `json:"-"`
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an error of the given kind caused by err.
func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("shegerpay: %s error: %s", e.Kind, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// ToServiceError maps the error onto a go-errors envelope for hosts that
// report errors through it.
func (e *Error) ToServiceError() *goerrors.Error {
	category, textCode, code := e.envelope()

	var out *goerrors.Error
	if e.Err != nil {
		out = goerrors.Wrap(e.Err, category, e.Message)
	} else {
		out = goerrors.New(e.Message, category)
	}
	out = out.WithCode(code).WithTextCode(textCode)

	metadata := map[string]any{"kind": string(e.Kind)}
	if e.StatusCode != 0 {
		metadata["status_code"] = e.StatusCode
	}
	out = out.WithMetadata(metadata)
	if e.RequestID != "" {
		out = out.WithRequestID(e.RequestID)
	}
	return out
}

func (e *Error) envelope() (goerrors.Category, string, int) {
	code := e.StatusCode
	pick := func(fallback int) int {
		if code != 0 {
			return code
		}
		return fallback
	}

	switch e.Kind {
	case KindAuthentication:
		return goerrors.CategoryAuth, TextCodeUnauthorized, pick(http.StatusUnauthorized)
	case KindValidation:
		return goerrors.CategoryValidation, TextCodeBadInput, pick(http.StatusBadRequest)
	case KindServer:
		return goerrors.CategoryExternal, TextCodeServerError, pick(http.StatusBadGateway)
	case KindTimeout:
		return goerrors.CategoryExternal, TextCodeTimeout, pick(http.StatusGatewayTimeout)
	case KindConnection:
		return goerrors.CategoryExternal, TextCodeConnection, pick(http.StatusBadGateway)
	case KindResponse:
		return goerrors.CategoryExternal, TextCodeInvalidResponse, pick(http.StatusBadGateway)
	case KindAPI:
		return goerrors.CategoryOperation, TextCodeRequestFailed, pick(http.StatusBadGateway)
	default:
		return goerrors.CategoryInternal, TextCodeInternal, pick(http.StatusInternalServerError)
	}
}

// KindOf returns the kind of a client error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var e *Error
	if goerrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsAuthentication(err error) bool { return KindOf(err) == KindAuthentication }
func IsValidation(err error) bool     { return KindOf(err) == KindValidation }
func IsServer(err error) bool         { return KindOf(err) == KindServer }
func IsTimeout(err error) bool        { return KindOf(err) == KindTimeout }
func IsConnection(err error) bool     { return KindOf(err) == KindConnection }
