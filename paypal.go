package shegerpay

import (
	"context"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

const defaultCancelReason = "Customer requested"

func currencyOrUSD(c types.Currency) string {
	if c == "" {
		return types.CurrencyUSD.String()
	}
	return c.String()
}

// PayPalCreateOrder creates a card or PayPal order. Currency defaults to USD.
func (c *Client) PayPalCreateOrder(ctx context.Context, params types.PayPalOrderParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"amount":   utils.DecimalNumber(params.Amount),
		"currency": currencyOrUSD(params.Currency),
	}
	if params.Description != "" {
		payload["description"] = params.Description
	}
	if params.VaultOnApproval {
		payload["vault_on_approval"] = true
	}
	return c.postJSON(ctx, "paypal.create_order", pathPayPalCreateOrder, payload)
}

// PayPalCaptureOrder captures an approved order.
func (c *Client) PayPalCaptureOrder(ctx context.Context, orderID string) (types.Object, error) {
	if _, err := pathID("order id", orderID); err != nil {
		return nil, err
	}
	return c.postJSON(ctx, "paypal.capture_order", pathPayPalCaptureOrder, map[string]any{
		"order_id": orderID,
	})
}

func (c *Client) PayPalGetOrder(ctx context.Context, orderID string) (types.Object, error) {
	id, err := pathID("order id", orderID)
	if err != nil {
		return nil, err
	}
	return c.getObject(ctx, "paypal.get_order", pathPayPalOrder+id, nil)
}

// PayPalCreateSetupToken starts vaulting a card without charging it.
func (c *Client) PayPalCreateSetupToken(ctx context.Context) (types.Object, error) {
	return c.postJSON(ctx, "paypal.setup_token", pathPayPalSetupToken, nil)
}

func (c *Client) PayPalListSavedCards(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "paypal.list_saved_cards", pathPayPalPaymentTokens, nil)
}

// PayPalChargeSavedCard charges a vaulted card in one click.
func (c *Client) PayPalChargeSavedCard(ctx context.Context, params types.PayPalChargeParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"payment_token_id": params.PaymentTokenID,
		"amount":           utils.DecimalNumber(params.Amount),
		"currency":         currencyOrUSD(params.Currency),
	}
	if params.Description != "" {
		payload["description"] = params.Description
	}
	return c.postJSON(ctx, "paypal.charge_saved_card", pathPayPalVaultCharge, payload)
}

func (c *Client) PayPalDeleteSavedCard(ctx context.Context, tokenID string) (types.Object, error) {
	id, err := pathID("payment token id", tokenID)
	if err != nil {
		return nil, err
	}
	return c.delete(ctx, "paypal.delete_saved_card", pathPayPalPaymentToken+id)
}

func (c *Client) PayPalCreateSubscription(ctx context.Context, params types.PayPalSubscriptionParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{"plan_id": params.PlanID}
	if params.SubscriberEmail != "" {
		payload["subscriber_email"] = params.SubscriberEmail
	}
	if params.SubscriberName != "" {
		payload["subscriber_name"] = params.SubscriberName
	}
	if params.CustomID != "" {
		payload["custom_id"] = params.CustomID
	}
	return c.postJSON(ctx, "paypal.create_subscription", pathPayPalSubscriptions, payload)
}

func (c *Client) PayPalGetSubscription(ctx context.Context, subscriptionID string) (types.Object, error) {
	id, err := pathID("subscription id", subscriptionID)
	if err != nil {
		return nil, err
	}
	return c.getObject(ctx, "paypal.get_subscription", pathPayPalSubscriptions+"/"+id, nil)
}

// PayPalCancelSubscription cancels a subscription. An empty reason is sent
// as "Customer requested".
func (c *Client) PayPalCancelSubscription(ctx context.Context, subscriptionID, reason string) (types.Object, error) {
	id, err := pathID("subscription id", subscriptionID)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = defaultCancelReason
	}
	return c.postJSON(ctx, "paypal.cancel_subscription", pathPayPalSubscriptions+"/"+id+"/cancel", map[string]any{
		"reason": reason,
	})
}

// PayPalRefund refunds a capture in full, or partially when Amount is set.
func (c *Client) PayPalRefund(ctx context.Context, params types.PayPalRefundParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"capture_id": params.CaptureID,
		"currency":   currencyOrUSD(params.Currency),
	}
	if params.Amount != nil && !params.Amount.IsZero() {
		payload["amount"] = utils.DecimalNumber(*params.Amount)
	}
	if params.Note != "" {
		payload["note"] = params.Note
	}
	return c.postJSON(ctx, "paypal.refund", pathPayPalRefund, payload)
}

// PayPalStatus returns PayPal availability and whether it runs in sandbox.
func (c *Client) PayPalStatus(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "paypal.status", pathPayPalStatus, nil)
}
