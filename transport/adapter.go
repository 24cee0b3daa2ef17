// Package transport performs authenticated HTTP round trips against the API
// and classifies every failure into a types.Error.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shegerpay/shegerpay-go/logger"
	"github.com/shegerpay/shegerpay-go/metrics"
	"github.com/shegerpay/shegerpay-go/types"
)

const (
	DefaultTimeout                  = 30 * time.Second
	defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

	HeaderRequestID = "X-Request-ID"
)

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is one logical API call.
type Request struct {
	// Operation names the call in logs and metrics, e.g. "paypal.create_order".
	Operation string
	Method    string
	// Path is appended to the base URL; ids must already be escaped.
	Path     string
	Query    url.Values
	Encoding Encoding
	// Form is the body of form encoded requests.
	Form url.Values
	// JSON is the body of JSON encoded requests.
	JSON any
}

type Config struct {
	BaseURL string
	// Headers are sent on every request. They are copied at construction.
	Headers map[string]string
	// Timeout bounds each call; zero means DefaultTimeout.
	Timeout      time.Duration
	Client       HTTPDoer
	Logger       logger.Logger
	Metrics      metrics.Recorder
	NewRequestID func() string
}

// Adapter is safe for concurrent use: all of its fields are read-only after
// NewAdapter, and per-call state lives on the outgoing *http.Request.
type Adapter struct {
	client               HTTPDoer
	baseURL              string
	headers              map[string]string
	timeout              time.Duration
	maxResponseBodyBytes int64
	logger               logger.Logger
	metrics              metrics.Recorder
	newRequestID         func() string
}

func NewAdapter(cfg Config) *Adapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	newRequestID := cfg.NewRequestID
	if newRequestID == nil {
		newRequestID = uuid.NewString
	}

	headers := make(map[string]string, len(cfg.Headers))
	for key, value := range cfg.Headers {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}

	return &Adapter{
		client:               client,
		baseURL:              strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		headers:              headers,
		timeout:              timeout,
		maxResponseBodyBytes: defaultResponseBodyLimit,
		logger:               logger.OrNoop(cfg.Logger),
		metrics:              metrics.OrNoop(cfg.Metrics),
		newRequestID:         newRequestID,
	}
}

func (a *Adapter) BaseURL() string {
	return a.baseURL
}

func (a *Adapter) Timeout() time.Duration {
	return a.timeout
}

// Do executes req and returns the raw 2xx body. Any other outcome is a
// *types.Error.
func (a *Adapter) Do(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	requestID := a.newRequestID()

	fields := map[string]any{
		"operation":  req.Operation,
		"method":     method,
		"path":       req.Path,
		"encoding":   req.Encoding.String(),
		"request_id": requestID,
	}

	target, err := a.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, a.fail(req, fields, time.Time{}, withRequestID(
			types.WrapError(types.KindGeneric, "invalid request url", err), requestID))
	}

	body, err := encodeBody(req)
	if err != nil {
		return nil, a.fail(req, fields, time.Time{}, withRequestID(
			types.WrapError(types.KindGeneric, "encode request body", err), requestID))
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, method, target, body)
	if err != nil {
		return nil, a.fail(req, fields, time.Time{}, withRequestID(
			types.WrapError(types.KindGeneric, "create http request", err), requestID))
	}
	for key, value := range a.headers {
		httpReq.Header.Set(key, value)
	}
	httpReq.Header.Set("Content-Type", req.Encoding.ContentType())
	httpReq.Header.Set(HeaderRequestID, requestID)

	startedAt := time.Now()
	httpRes, err := a.client.Do(httpReq)
	if err != nil {
		return nil, a.fail(req, fields, startedAt, withRequestID(classifyTransportError(err), requestID))
	}
	defer httpRes.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpRes.Body, a.maxResponseBodyBytes+1))
	if err != nil {
		return nil, a.fail(req, fields, startedAt, withRequestID(classifyTransportError(err), requestID))
	}
	if int64(len(raw)) > a.maxResponseBodyBytes {
		e := types.NewError(types.KindResponse,
			fmt.Sprintf("response body exceeds limit of %d bytes", a.maxResponseBodyBytes))
		e.StatusCode = httpRes.StatusCode
		return nil, a.fail(req, fields, startedAt, withRequestID(e, requestID))
	}

	fields["status"] = httpRes.StatusCode
	if classified := classifyStatus(httpRes.StatusCode, raw); classified != nil {
		return nil, a.fail(req, fields, startedAt, withRequestID(classified, requestID))
	}

	elapsed := time.Since(startedAt)
	fields["duration_ms"] = elapsed.Milliseconds()
	a.logger.Debug("shegerpay request completed", fields)
	a.record(req.Operation, strconv.Itoa(httpRes.StatusCode), elapsed)
	return raw, nil
}

func (a *Adapter) resolveURL(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	parsed, err := url.Parse(a.baseURL + path)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		merged := parsed.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}
		parsed.RawQuery = merged.Encode()
	}
	return parsed.String(), nil
}

func encodeBody(req Request) (io.Reader, error) {
	switch req.Encoding {
	case EncodingJSON:
		if req.JSON == nil {
			return http.NoBody, nil
		}
		raw, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(raw), nil
	default:
		if len(req.Form) == 0 {
			return http.NoBody, nil
		}
		return strings.NewReader(req.Form.Encode()), nil
	}
}

func (a *Adapter) fail(req Request, fields map[string]any, startedAt time.Time, err *types.Error) error {
	var elapsed time.Duration
	if !startedAt.IsZero() {
		elapsed = time.Since(startedAt)
		fields["duration_ms"] = elapsed.Milliseconds()
	}
	fields["error_kind"] = string(err.Kind)
	fields["error"] = err.Message
	a.logger.Warn("shegerpay request failed", fields)

	outcome := string(err.Kind)
	if err.StatusCode != 0 {
		outcome = strconv.Itoa(err.StatusCode)
	}
	a.record(req.Operation, outcome, elapsed)
	return err
}

func (a *Adapter) record(operation, outcome string, elapsed time.Duration) {
	a.metrics.IncCounter(metrics.RequestsTotal, map[string]string{
		metrics.LabelOperation: operation,
		metrics.LabelOutcome:   outcome,
	})
	if elapsed > 0 {
		a.metrics.ObserveLatency(metrics.RequestLatency, elapsed, map[string]string{
			metrics.LabelOperation: operation,
		})
	}
}

func withRequestID(err *types.Error, requestID string) *types.Error {
	err.RequestID = requestID
	return err
}
