package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// ListDisputes lists disputes, 20 at a time unless a limit is given. The
// decoded body is returned as is.
func (c *Client) ListDisputes(ctx context.Context, params types.ListParams) (any, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}
	return c.getValue(ctx, "disputes.list", pathDisputes, listQuery(params))
}

// RespondToDispute answers a dispute, optionally with evidence links.
func (c *Client) RespondToDispute(ctx context.Context, disputeID string, params types.DisputeResponseParams) (types.Object, error) {
	id, err := pathID("dispute id", disputeID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{"message": params.Message}
	if len(params.EvidenceURLs) > 0 {
		payload["evidence_urls"] = params.EvidenceURLs
	}
	return c.postJSON(ctx, "disputes.respond", pathDisputes+"/"+id+"/respond", payload)
}
