package shegerpay

import (
	"context"
	"net/url"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// RequestPayout requests a settlement to the merchant. Method defaults to
// bank transfer. Extra carries method specific fields such as account
// details; it cannot override amount, currency or method.
func (c *Client) RequestPayout(ctx context.Context, params types.PayoutParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	method := params.Method
	if method == "" {
		method = types.PayoutBankTransfer
	}

	payload := make(map[string]any, len(params.Extra)+3)
	for key, value := range params.Extra {
		payload[key] = value
	}
	payload["amount"] = utils.DecimalNumber(params.Amount)
	payload["currency"] = params.Currency.String()
	payload["method"] = string(method)
	return c.postJSON(ctx, "payouts.request", pathPayouts, payload)
}

func (c *Client) ListPayouts(ctx context.Context, status string) (any, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	return c.getValue(ctx, "payouts.list", pathPayouts, query)
}
