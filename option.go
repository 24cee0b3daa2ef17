package shegerpay

import (
	"time"

	"github.com/shegerpay/shegerpay-go/logger"
	"github.com/shegerpay/shegerpay-go/metrics"
	"github.com/shegerpay/shegerpay-go/transport"
)

type Option func(*Client)

// WithBaseURL overrides the brand host. It wins over WithBrand regardless of
// option order.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout bounds every call. Non-positive values keep the default.
func WithTimeout(t time.Duration) Option {
	return func(c *Client) {
		if t > 0 {
			c.timeout = t
		}
	}
}

func WithBrand(b Brand) Option {
	return func(c *Client) {
		c.brand = b
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = r
	}
}

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(doer transport.HTTPDoer) Option {
	return func(c *Client) {
		c.httpClient = doer
	}
}
