package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/shegerpay/shegerpay-go/types"
)

const (
	msgInvalidAPIKey   = "Invalid API key"
	msgValidation      = "Validation error"
	msgServer          = "Server error"
	msgTimeout         = "Request timed out"
	msgConnection      = "Connection error"
	msgRequestCanceled = "Request canceled"
)

// classifyStatus maps a status code to an error, or nil for 2xx.
func classifyStatus(status int, body []byte) *types.Error {
	var e *types.Error
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		e = types.NewError(types.KindAuthentication, msgInvalidAPIKey)
	case status == http.StatusBadRequest:
		e = types.NewError(types.KindValidation, bodyMessage(body, msgValidation))
	case status >= 500:
		e = types.NewError(types.KindServer, bodyMessage(body, msgServer))
	default:
		fallback := http.StatusText(status)
		if fallback == "" {
			fallback = "Request failed"
		}
		e = types.NewError(types.KindAPI, bodyMessage(body, fallback))
	}
	e.StatusCode = status
	return e
}

// bodyMessage extracts a human readable message from an error body. A
// non-string detail is reported as its JSON text.
func bodyMessage(body []byte, fallback string) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}

	if raw, ok := payload["detail"]; ok && !isJSONNull(raw) {
		var detail string
		if err := json.Unmarshal(raw, &detail); err == nil {
			if detail = strings.TrimSpace(detail); detail != "" {
				return detail
			}
		} else {
			return string(raw)
		}
	}

	for _, key := range []string{"message", "error"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && strings.TrimSpace(msg) != "" {
			return strings.TrimSpace(msg)
		}
	}
	return fallback
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func classifyTransportError(err error) *types.Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return types.WrapError(types.KindTimeout, msgTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return types.WrapError(types.KindTimeout, msgTimeout, err)
	case errors.Is(err, context.Canceled):
		return types.WrapError(types.KindGeneric, msgRequestCanceled, err)
	default:
		return types.WrapError(types.KindConnection, msgConnection, err)
	}
}
