package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

const defaultTransactionLimit = 50

// ListTransactions returns a page of the merchant ledger, 50 entries unless a
// limit is given.
func (c *Client) ListTransactions(ctx context.Context, params types.TransactionListParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	query := limitQuery(params.Limit, defaultTransactionLimit)
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Provider != "" {
		query.Set("provider", params.Provider.String())
	}
	return c.getObject(ctx, "transactions.list", pathTransactions, query)
}

// GetSubscription returns the current plan.
func (c *Client) GetSubscription(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "subscriptions.current", pathSubscriptionCurrent, nil)
}

func (c *Client) GetUsage(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "subscriptions.usage", pathSubscriptionUsage, nil)
}

func (c *Client) GetAPIUsage(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "analytics.api_usage", pathAnalyticsAPIUsage, nil)
}
