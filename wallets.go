package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// GetWalletBalance returns balances of the multi-currency wallet.
func (c *Client) GetWalletBalance(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "wallets.balances", pathWalletBalances, nil)
}

func (c *Client) ConvertCurrency(ctx context.Context, params types.ConvertParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}
	return c.postJSON(ctx, "wallets.convert", pathWalletConvert, map[string]any{
		"from_currency": params.From.String(),
		"to_currency":   params.To.String(),
		"amount":        utils.DecimalNumber(params.Amount),
	})
}
