package shegerpay

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKey = "sk_test_4f9a2c"

type recordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Auth        string
	UserAgent   string
	RequestID   string
	Body        string
}

// recordingServer answers every request with a fixed status and body and
// keeps what it received.
type recordingServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{status: http.StatusOK, body: `{}`}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rs.mu.Lock()
		rs.requests = append(rs.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Auth:        r.Header.Get("Authorization"),
			UserAgent:   r.Header.Get("User-Agent"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        string(raw),
		})
		status, body := rs.status, rs.body
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) respond(status int, body string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.status, rs.body = status, body
}

func (rs *recordingServer) last(t *testing.T) recordedRequest {
	t.Helper()
	rs.mu.Lock()
	defer rs.mu.Unlock()
	require.NotEmpty(t, rs.requests, "no request reached the server")
	return rs.requests[len(rs.requests)-1]
}

func (rs *recordingServer) count() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.requests)
}

func newTestClient(t *testing.T, rs *recordingServer, opts ...Option) *Client {
	t.Helper()
	all := append([]Option{WithBaseURL(rs.URL), WithHTTPClient(rs.Client())}, opts...)
	c, err := New(testKey, all...)
	require.NoError(t, err)
	return c
}

// countingDoer fails every request and counts attempts.
type countingDoer struct {
	calls atomic.Int32
}

func (d *countingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls.Add(1)
	return nil, io.ErrUnexpectedEOF
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type memoryLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *memoryLogger) add(level, msg string, fields map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *memoryLogger) Debug(msg string, fields map[string]any) { m.add("debug", msg, fields) }
func (m *memoryLogger) Info(msg string, fields map[string]any)  { m.add("info", msg, fields) }
func (m *memoryLogger) Warn(msg string, fields map[string]any)  { m.add("warn", msg, fields) }
func (m *memoryLogger) Error(msg string, fields map[string]any) { m.add("error", msg, fields) }
