// Package shegerpay is a client for the ShegerPay and Kyne payment
// verification API: CBE and Telebirr receipt verification plus crypto,
// PayPal, payment links, webhooks, wallets, refunds, disputes, payouts and
// account security endpoints.
package shegerpay

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shegerpay/shegerpay-go/logger"
	"github.com/shegerpay/shegerpay-go/metrics"
	"github.com/shegerpay/shegerpay-go/transport"
	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

const Version = "2.1.0"

// Client is the main struct that provides all API operations. It is
// immutable after New and safe for concurrent use.
type Client struct {
	apiKey     string
	mode       types.Mode
	brand      Brand
	baseURL    string
	timeout    time.Duration
	httpClient transport.HTTPDoer
	logger     logger.Logger
	metrics    metrics.Recorder
	transport  *transport.Adapter
}

// New creates a client for apiKey. The key must carry the sk_test_ or
// sk_live_ prefix; anything else fails with an authentication error before
// any network activity. The key is used exactly as given; surrounding
// whitespace makes it malformed.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, types.NewError(types.KindAuthentication, "API key is required")
	}
	mode, ok := types.ModeFromKey(apiKey)
	if !ok {
		return nil, types.NewError(types.KindAuthentication,
			"Invalid API key format. Must start with "+types.TestKeyPrefix+" or "+types.LiveKeyPrefix)
	}

	c := &Client{
		apiKey:  apiKey,
		mode:    mode,
		brand:   BrandShegerPay,
		timeout: transport.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.brand.IsValid() {
		return nil, types.NewError(types.KindValidation, "unknown brand: "+string(c.brand))
	}
	c.baseURL = strings.TrimRight(strings.TrimSpace(c.baseURL), "/")
	if c.baseURL == "" {
		c.baseURL = c.brand.BaseURL()
	}
	c.logger = logger.OrNoop(c.logger)
	c.metrics = metrics.OrNoop(c.metrics)

	c.transport = transport.NewAdapter(transport.Config{
		BaseURL: c.baseURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + apiKey,
			"User-Agent":    c.brand.UserAgent(),
			"Accept":        transport.ContentTypeJSON,
		},
		Timeout: c.timeout,
		Client:  c.httpClient,
		Logger:  c.logger,
		Metrics: c.metrics,
	})

	c.logger.Debug("shegerpay client initialized", map[string]any{
		"brand":    c.brand.String(),
		"mode":     c.mode.String(),
		"base_url": c.baseURL,
	})
	return c, nil
}

// Verify verifies one payment without keeping a client around.
func Verify(ctx context.Context, apiKey string, params types.VerifyParams, opts ...Option) (*types.VerificationResult, error) {
	c, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return c.Verify(ctx, params)
}

// Mode reports whether the client uses a test or live key.
func (c *Client) Mode() types.Mode {
	return c.mode
}

func (c *Client) Brand() Brand {
	return c.brand
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

func (c *Client) getObject(ctx context.Context, operation, path string, query url.Values) (types.Object, error) {
	return c.object(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
}

// getValue returns the decoded body untouched. An empty body is nil.
func (c *Client) getValue(ctx context.Context, operation, path string, query url.Values) (any, error) {
	body, err := c.transport.Do(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return utils.ParseValue(body)
}

func (c *Client) getList(ctx context.Context, operation, path string, query url.Values, key string) ([]types.Object, error) {
	body, err := c.transport.Do(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodGet,
		Path:      path,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}
	return utils.ParseObjectList(body, key)
}

func (c *Client) postJSON(ctx context.Context, operation, path string, payload map[string]any) (types.Object, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	return c.object(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      path,
		Encoding:  transport.EncodingJSON,
		JSON:      payload,
	})
}

func (c *Client) postForm(ctx context.Context, operation, path string, query, form url.Values) (types.Object, error) {
	return c.object(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      path,
		Query:     query,
		Form:      form,
	})
}

func (c *Client) delete(ctx context.Context, operation, path string) (types.Object, error) {
	return c.object(ctx, transport.Request{
		Operation: operation,
		Method:    http.MethodDelete,
		Path:      path,
	})
}

func (c *Client) object(ctx context.Context, req transport.Request) (types.Object, error) {
	body, err := c.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	// 204 and other empty acknowledgements
	if len(bytes.TrimSpace(body)) == 0 {
		return types.Object{}, nil
	}
	return utils.ParseObject(body)
}

// pathID escapes a caller supplied identifier as one URL path segment.
func pathID(name, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", types.NewError(types.KindValidation, name+" is required")
	}
	return url.PathEscape(id), nil
}

func limitQuery(limit, fallback int) url.Values {
	if limit <= 0 {
		limit = fallback
	}
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}
