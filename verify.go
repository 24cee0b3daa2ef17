package shegerpay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shegerpay/shegerpay-go/transport"
	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/verification"
)

// Verify verifies a payment transaction. With no provider, CBE is assumed
// for ids starting with FT and Telebirr otherwise; with no merchant name the
// brand default is sent.
func (c *Client) Verify(ctx context.Context, params types.VerifyParams) (*types.VerificationResult, error) {
	body, err := c.transport.Do(ctx, transport.Request{
		Operation: "verify",
		Method:    http.MethodPost,
		Path:      pathVerify,
		Form:      verification.VerifyForm(params, c.brand.DefaultMerchantName()),
	})
	if err != nil {
		return nil, err
	}
	return verification.MapResult(body)
}

// QuickVerify verifies with the provider detected by the remote service.
func (c *Client) QuickVerify(ctx context.Context, transactionID string, amount decimal.Decimal) (*types.VerificationResult, error) {
	body, err := c.transport.Do(ctx, transport.Request{
		Operation: "quick_verify",
		Method:    http.MethodPost,
		Path:      pathQuickVerify,
		Form:      verification.QuickVerifyForm(transactionID, amount),
	})
	if err != nil {
		return nil, err
	}
	return verification.MapResult(body)
}

// GetHistory returns verified transactions. A positive limit is passed to
// the service; zero leaves the page size to it.
func (c *Client) GetHistory(ctx context.Context, limit int) ([]types.Transaction, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	body, err := c.transport.Do(ctx, transport.Request{
		Operation: "history",
		Method:    http.MethodGet,
		Path:      pathHistory,
		Query:     query,
	})
	if err != nil {
		return nil, err
	}
	return verification.MapHistory(body)
}
