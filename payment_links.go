package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

const defaultLinkExpiryHours = 24

// CreatePaymentLink creates a shareable link with a QR code. Currency
// defaults to ETB; CBE and Telebirr are on and crypto off unless changed.
func (c *Client) CreatePaymentLink(ctx context.Context, params types.PaymentLinkParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	currency := params.Currency
	if currency == "" {
		currency = types.CurrencyETB
	}
	expires := params.ExpiresInHours
	if expires == 0 {
		expires = defaultLinkExpiryHours
	}

	payload := map[string]any{
		"title":            params.Title,
		"amount":           utils.DecimalNumber(params.Amount),
		"currency":         currency.String(),
		"enable_cbe":       !params.DisableCBE,
		"enable_telebirr":  !params.DisableTelebirr,
		"enable_crypto":    params.EnableCrypto,
		"expires_in_hours": expires,
	}
	if params.Description != "" {
		payload["description"] = params.Description
	}
	return c.postJSON(ctx, "payment_links.create", pathPaymentLinks, payload)
}

// ListPaymentLinks returns the links of a {"links": [...]} body; a body
// without the key is an empty list. A bare list is accepted too.
func (c *Client) ListPaymentLinks(ctx context.Context) ([]types.Object, error) {
	return c.getList(ctx, "payment_links.list", pathPaymentLinks, nil, "links")
}

func (c *Client) DeletePaymentLink(ctx context.Context, linkID string) (types.Object, error) {
	id, err := pathID("link id", linkID)
	if err != nil {
		return nil, err
	}
	return c.delete(ctx, "payment_links.delete", pathPaymentLinks+id)
}
