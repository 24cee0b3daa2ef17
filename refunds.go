package shegerpay

import (
	"context"
	"net/url"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

const defaultListLimit = 20

// CreateRefund requests a refund, in full unless Amount is set.
func (c *Client) CreateRefund(ctx context.Context, params types.RefundParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{"transaction_id": params.TransactionID}
	if !params.Amount.IsZero() {
		payload["amount"] = utils.DecimalNumber(params.Amount)
	}
	if params.Reason != "" {
		payload["reason"] = params.Reason
	}
	return c.postJSON(ctx, "refunds.create", pathRefunds, payload)
}

// ListRefunds lists refunds, 20 at a time unless a limit is given. The
// decoded body is returned as is, pagination fields included.
func (c *Client) ListRefunds(ctx context.Context, params types.ListParams) (any, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}
	return c.getValue(ctx, "refunds.list", pathRefunds, listQuery(params))
}

func (c *Client) ApproveRefund(ctx context.Context, refundID string) (types.Object, error) {
	id, err := pathID("refund id", refundID)
	if err != nil {
		return nil, err
	}
	return c.postForm(ctx, "refunds.approve", pathRefunds+"/"+id+"/approve", nil, nil)
}

func listQuery(params types.ListParams) url.Values {
	q := limitQuery(params.Limit, defaultListLimit)
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	return q
}
