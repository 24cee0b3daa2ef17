package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// AddWiseAccount links a Wise account for international receipts.
func (c *Client) AddWiseAccount(ctx context.Context, params types.InternationalAccountParams) (types.Object, error) {
	return c.addInternationalAccount(ctx, types.InternationalWise, params)
}

// AddPayoneerAccount links a Payoneer account for international receipts.
func (c *Client) AddPayoneerAccount(ctx context.Context, params types.InternationalAccountParams) (types.Object, error) {
	return c.addInternationalAccount(ctx, types.InternationalPayoneer, params)
}

func (c *Client) addInternationalAccount(ctx context.Context, provider types.InternationalProvider, params types.InternationalAccountParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"provider": string(provider),
		"email":    params.Email,
	}
	if params.Label != "" {
		payload["label"] = params.Label
	}
	return c.postJSON(ctx, "international."+string(provider), pathInternationalAccounts, payload)
}

// GetGmailStatus reports whether the Gmail inbox used to detect incoming
// international transfers is connected.
func (c *Client) GetGmailStatus(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "international.gmail_status", pathGmailStatus, nil)
}
