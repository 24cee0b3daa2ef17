package shegerpay

import (
	"context"
	"net/url"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// AllEvents subscribes a webhook to every event type.
const AllEvents = "*"

// CreateWebhook registers an endpoint. No events means all events.
func (c *Client) CreateWebhook(ctx context.Context, params types.WebhookParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	events := params.Events
	if len(events) == 0 {
		events = []string{AllEvents}
	}
	return c.postJSON(ctx, "webhooks.create", pathWebhooks, map[string]any{
		"url":    params.URL,
		"events": events,
	})
}

func (c *Client) ListWebhooks(ctx context.Context) (any, error) {
	return c.getValue(ctx, "webhooks.list", pathWebhooks, nil)
}

// TestWebhook asks the service to send a test event to the webhook.
func (c *Client) TestWebhook(ctx context.Context, webhookID string) (types.Object, error) {
	if _, err := pathID("webhook id", webhookID); err != nil {
		return nil, err
	}
	return c.postForm(ctx, "webhooks.test", pathWebhookTest, url.Values{"webhook_id": []string{webhookID}}, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (types.Object, error) {
	id, err := pathID("webhook id", webhookID)
	if err != nil {
		return nil, err
	}
	return c.delete(ctx, "webhooks.delete", pathWebhooks+id)
}
