package shegerpay

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shegerpay/shegerpay-go/transport"
	"github.com/shegerpay/shegerpay-go/types"
)

const (
	formType = transport.ContentTypeForm
	jsonType = transport.ContentTypeJSON
)

func TestEndpoints(t *testing.T) {
	ctx := context.Background()
	refundAmount := decimal.RequireFromString("12.50")

	cases := []struct {
		name        string
		response    string
		call        func(c *Client) error
		method      string
		path        string
		query       string
		contentType string
		// wantJSON is compared with JSONEq; wantForm byte for byte.
		wantJSON string
		wantForm string
	}{
		{
			name: "verify",
			call: func(c *Client) error {
				_, err := c.Verify(ctx, types.VerifyParams{TransactionID: "FT24352648751234", Amount: decimal.NewFromInt(100)})
				return err
			},
			method: http.MethodPost, path: "/api/v1/verify", contentType: formType,
			wantForm: "amount=100&merchant_name=ShegerPay+Verification&provider=cbe&transaction_id=FT24352648751234",
		},
		{
			name: "quick verify",
			call: func(c *Client) error {
				_, err := c.QuickVerify(ctx, "8A12BC", decimal.RequireFromString("50.25"))
				return err
			},
			method: http.MethodPost, path: "/api/v1/quick-verify", contentType: formType,
			wantForm: "amount=50.25&transaction_id=8A12BC",
		},
		{
			name:     "history",
			response: `[]`,
			call: func(c *Client) error {
				_, err := c.GetHistory(ctx, 10)
				return err
			},
			method: http.MethodGet, path: "/api/v1/history", query: "limit=10", contentType: formType,
		},
		{
			name: "crypto rates",
			call: func(c *Client) error {
				_, err := c.GetCryptoRates(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/crypto/rates", contentType: formType,
		},
		{
			name: "crypto rate",
			call: func(c *Client) error {
				_, err := c.GetCryptoRate(ctx, "btc")
				return err
			},
			method: http.MethodGet, path: "/api/v1/crypto/rate/BTC", contentType: formType,
		},
		{
			name: "crypto intent",
			call: func(c *Client) error {
				_, err := c.CreateCryptoPayment(ctx, types.CryptoPaymentParams{
					AmountUSD:     decimal.NewFromInt(50),
					Currency:      "usdt",
					WalletAddress: "TJCnKsPa7y5okkXvQAidZBzqx3QyQ6sxMW",
				})
				return err
			},
			method: http.MethodPost, path: "/api/v1/crypto/generate-intent", contentType: jsonType,
			wantJSON: `{"amount_usd":50,"currency":"USDT","wallet_address":"TJCnKsPa7y5okkXvQAidZBzqx3QyQ6sxMW","chain":"TRON"}`,
		},
		{
			name: "crypto intent evm",
			call: func(c *Client) error {
				_, err := c.CreateCryptoPayment(ctx, types.CryptoPaymentParams{
					AmountUSD:     decimal.RequireFromString("19.99"),
					Currency:      types.CryptoUSDC,
					WalletAddress: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
					Chain:         "eth",
				})
				return err
			},
			method: http.MethodPost, path: "/api/v1/crypto/generate-intent", contentType: jsonType,
			wantJSON: `{"amount_usd":19.99,"currency":"USDC","wallet_address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","chain":"ETH"}`,
		},
		{
			name: "crypto verify reference",
			call: func(c *Client) error {
				_, err := c.VerifyCryptoPayment(ctx, types.CryptoVerifyParams{ReferenceID: "SHGR-TRO-ABC123"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/crypto/verify-reference", contentType: jsonType,
			wantJSON: `{"reference_id":"SHGR-TRO-ABC123"}`,
		},
		{
			name: "crypto status",
			call: func(c *Client) error {
				_, err := c.GetCryptoStatus(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/crypto/status", contentType: formType,
		},
		{
			name: "paypal create order",
			call: func(c *Client) error {
				_, err := c.PayPalCreateOrder(ctx, types.PayPalOrderParams{Amount: decimal.NewFromInt(100), Description: "Order #123"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/create-order", contentType: jsonType,
			wantJSON: `{"amount":100,"currency":"USD","description":"Order #123"}`,
		},
		{
			name: "paypal capture order",
			call: func(c *Client) error {
				_, err := c.PayPalCaptureOrder(ctx, "5O190127TN364715T")
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/capture-order", contentType: jsonType,
			wantJSON: `{"order_id":"5O190127TN364715T"}`,
		},
		{
			name: "paypal get order escapes id",
			call: func(c *Client) error {
				_, err := c.PayPalGetOrder(ctx, "ORDER 1/2")
				return err
			},
			method: http.MethodGet, path: "/api/v1/paypal/order/ORDER%201%2F2", contentType: formType,
		},
		{
			name: "paypal setup token",
			call: func(c *Client) error {
				_, err := c.PayPalCreateSetupToken(ctx)
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/vault/setup-token", contentType: jsonType,
			wantJSON: `{}`,
		},
		{
			name: "paypal saved cards",
			call: func(c *Client) error {
				_, err := c.PayPalListSavedCards(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/paypal/vault/payment-tokens", contentType: formType,
		},
		{
			name: "paypal charge saved card",
			call: func(c *Client) error {
				_, err := c.PayPalChargeSavedCard(ctx, types.PayPalChargeParams{PaymentTokenID: "tok_1", Amount: decimal.NewFromInt(50), Currency: types.CurrencyEUR})
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/vault/charge", contentType: jsonType,
			wantJSON: `{"payment_token_id":"tok_1","amount":50,"currency":"EUR"}`,
		},
		{
			name: "paypal delete saved card",
			call: func(c *Client) error {
				_, err := c.PayPalDeleteSavedCard(ctx, "tok_1")
				return err
			},
			method: http.MethodDelete, path: "/api/v1/paypal/vault/payment-token/tok_1", contentType: formType,
		},
		{
			name: "paypal create subscription",
			call: func(c *Client) error {
				_, err := c.PayPalCreateSubscription(ctx, types.PayPalSubscriptionParams{PlanID: "P-PLAN123", SubscriberEmail: "user@example.com"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/subscriptions", contentType: jsonType,
			wantJSON: `{"plan_id":"P-PLAN123","subscriber_email":"user@example.com"}`,
		},
		{
			name: "paypal get subscription",
			call: func(c *Client) error {
				_, err := c.PayPalGetSubscription(ctx, "I-SUB1")
				return err
			},
			method: http.MethodGet, path: "/api/v1/paypal/subscriptions/I-SUB1", contentType: formType,
		},
		{
			name: "paypal cancel subscription",
			call: func(c *Client) error {
				_, err := c.PayPalCancelSubscription(ctx, "I-SUB1", "")
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/subscriptions/I-SUB1/cancel", contentType: jsonType,
			wantJSON: `{"reason":"Customer requested"}`,
		},
		{
			name: "paypal full refund",
			call: func(c *Client) error {
				_, err := c.PayPalRefund(ctx, types.PayPalRefundParams{CaptureID: "CAP-1"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/refund", contentType: jsonType,
			wantJSON: `{"capture_id":"CAP-1","currency":"USD"}`,
		},
		{
			name: "paypal partial refund",
			call: func(c *Client) error {
				_, err := c.PayPalRefund(ctx, types.PayPalRefundParams{CaptureID: "CAP-1", Amount: &refundAmount, Note: "sorry"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/paypal/refund", contentType: jsonType,
			wantJSON: `{"capture_id":"CAP-1","currency":"USD","amount":12.5,"note":"sorry"}`,
		},
		{
			name: "paypal status",
			call: func(c *Client) error {
				_, err := c.PayPalStatus(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/paypal/status", contentType: formType,
		},
		{
			name: "create payment link",
			call: func(c *Client) error {
				_, err := c.CreatePaymentLink(ctx, types.PaymentLinkParams{Title: "Coffee", Amount: decimal.NewFromInt(150)})
				return err
			},
			method: http.MethodPost, path: "/api/v1/payment-links/", contentType: jsonType,
			wantJSON: `{"title":"Coffee","amount":150,"currency":"ETB","enable_cbe":true,"enable_telebirr":true,"enable_crypto":false,"expires_in_hours":24}`,
		},
		{
			name:     "list payment links",
			response: `{"links":[{"id":"lnk_1"}]}`,
			call: func(c *Client) error {
				links, err := c.ListPaymentLinks(ctx)
				if err == nil && len(links) != 1 {
					t.Errorf("expected 1 link, got %d", len(links))
				}
				return err
			},
			method: http.MethodGet, path: "/api/v1/payment-links/", contentType: formType,
		},
		{
			name: "delete payment link",
			call: func(c *Client) error {
				_, err := c.DeletePaymentLink(ctx, "lnk_1")
				return err
			},
			method: http.MethodDelete, path: "/api/v1/payment-links/lnk_1", contentType: formType,
		},
		{
			name: "create webhook",
			call: func(c *Client) error {
				_, err := c.CreateWebhook(ctx, types.WebhookParams{URL: "https://shop.example/hooks"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/webhooks/", contentType: jsonType,
			wantJSON: `{"url":"https://shop.example/hooks","events":["*"]}`,
		},
		{
			name:     "list webhooks",
			response: `[]`,
			call: func(c *Client) error {
				_, err := c.ListWebhooks(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/webhooks/", contentType: formType,
		},
		{
			name: "test webhook",
			call: func(c *Client) error {
				_, err := c.TestWebhook(ctx, "wh_1")
				return err
			},
			method: http.MethodPost, path: "/api/v1/webhooks/test", query: "webhook_id=wh_1", contentType: formType,
		},
		{
			name: "delete webhook",
			call: func(c *Client) error {
				_, err := c.DeleteWebhook(ctx, "wh_1")
				return err
			},
			method: http.MethodDelete, path: "/api/v1/webhooks/wh_1", contentType: formType,
		},
		{
			name: "wallet balances",
			call: func(c *Client) error {
				_, err := c.GetWalletBalance(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/wallets/balances", contentType: formType,
		},
		{
			name: "convert currency",
			call: func(c *Client) error {
				_, err := c.ConvertCurrency(ctx, types.ConvertParams{From: types.CurrencyETB, To: types.CurrencyUSD, Amount: decimal.NewFromInt(1000)})
				return err
			},
			method: http.MethodPost, path: "/api/v1/wallets/convert", contentType: jsonType,
			wantJSON: `{"from_currency":"ETB","to_currency":"USD","amount":1000}`,
		},
		{
			name: "create refund",
			call: func(c *Client) error {
				_, err := c.CreateRefund(ctx, types.RefundParams{TransactionID: "tx_1", Amount: decimal.RequireFromString("25.5"), Reason: "duplicate"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/refunds", contentType: jsonType,
			wantJSON: `{"transaction_id":"tx_1","amount":25.5,"reason":"duplicate"}`,
		},
		{
			name:     "list refunds",
			response: `[]`,
			call: func(c *Client) error {
				_, err := c.ListRefunds(ctx, types.ListParams{})
				return err
			},
			method: http.MethodGet, path: "/api/v1/refunds", query: "limit=20", contentType: formType,
		},
		{
			name: "approve refund",
			call: func(c *Client) error {
				_, err := c.ApproveRefund(ctx, "rf_1")
				return err
			},
			method: http.MethodPost, path: "/api/v1/refunds/rf_1/approve", contentType: formType,
		},
		{
			name:     "list disputes",
			response: `{"disputes":[]}`,
			call: func(c *Client) error {
				_, err := c.ListDisputes(ctx, types.ListParams{Status: "open", Limit: 5})
				return err
			},
			method: http.MethodGet, path: "/api/v1/disputes", query: "limit=5&status=open", contentType: formType,
		},
		{
			name: "respond to dispute",
			call: func(c *Client) error {
				_, err := c.RespondToDispute(ctx, "dp_1", types.DisputeResponseParams{
					Message:      "Delivered on time",
					EvidenceURLs: []string{"https://cdn.example/receipt.png"},
				})
				return err
			},
			method: http.MethodPost, path: "/api/v1/disputes/dp_1/respond", contentType: jsonType,
			wantJSON: `{"message":"Delivered on time","evidence_urls":["https://cdn.example/receipt.png"]}`,
		},
		{
			name: "request payout",
			call: func(c *Client) error {
				_, err := c.RequestPayout(ctx, types.PayoutParams{
					Amount:   decimal.NewFromInt(500),
					Currency: types.CurrencyETB,
					Extra:    map[string]any{"account_number": "1000123456789", "amount": 1},
				})
				return err
			},
			method: http.MethodPost, path: "/api/v1/payouts", contentType: jsonType,
			wantJSON: `{"account_number":"1000123456789","amount":500,"currency":"ETB","method":"bank_transfer"}`,
		},
		{
			name:     "list payouts",
			response: `[]`,
			call: func(c *Client) error {
				_, err := c.ListPayouts(ctx, "pending")
				return err
			},
			method: http.MethodGet, path: "/api/v1/payouts", query: "status=pending", contentType: formType,
		},
		{
			name: "list transactions",
			call: func(c *Client) error {
				_, err := c.ListTransactions(ctx, types.TransactionListParams{Provider: types.ProviderCBE})
				return err
			},
			method: http.MethodGet, path: "/api/v1/transactions/history", query: "limit=50&provider=cbe", contentType: formType,
		},
		{
			name: "current subscription",
			call: func(c *Client) error {
				_, err := c.GetSubscription(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/subscriptions/current", contentType: formType,
		},
		{
			name: "subscription usage",
			call: func(c *Client) error {
				_, err := c.GetUsage(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/subscriptions/usage", contentType: formType,
		},
		{
			name: "api usage",
			call: func(c *Client) error {
				_, err := c.GetAPIUsage(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/analytics/api-usage", contentType: formType,
		},
		{
			name: "2fa setup",
			call: func(c *Client) error {
				_, err := c.Setup2FA(ctx)
				return err
			},
			method: http.MethodPost, path: "/api/v1/two-factor/setup", contentType: jsonType,
			wantJSON: `{}`,
		},
		{
			name: "2fa verify",
			call: func(c *Client) error {
				_, err := c.Verify2FA(ctx, "123456")
				return err
			},
			method: http.MethodPost, path: "/api/v1/two-factor/verify", contentType: jsonType,
			wantJSON: `{"code":"123456"}`,
		},
		{
			name: "2fa status",
			call: func(c *Client) error {
				_, err := c.Get2FAStatus(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/two-factor/status", contentType: formType,
		},
		{
			name: "2fa disable",
			call: func(c *Client) error {
				_, err := c.Disable2FA(ctx, "654321")
				return err
			},
			method: http.MethodPost, path: "/api/v1/two-factor/disable", contentType: jsonType,
			wantJSON: `{"code":"654321"}`,
		},
		{
			name:     "list passkeys",
			response: `[]`,
			call: func(c *Client) error {
				_, err := c.ListPasskeys(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/passkeys", contentType: formType,
		},
		{
			name: "delete passkey",
			call: func(c *Client) error {
				_, err := c.DeletePasskey(ctx, "pk_1")
				return err
			},
			method: http.MethodDelete, path: "/api/v1/passkeys/pk_1", contentType: formType,
		},
		{
			name: "wise account",
			call: func(c *Client) error {
				_, err := c.AddWiseAccount(ctx, types.InternationalAccountParams{Email: "merchant@shop.et"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/international/wallet-accounts", contentType: jsonType,
			wantJSON: `{"provider":"wise","email":"merchant@shop.et"}`,
		},
		{
			name: "payoneer account",
			call: func(c *Client) error {
				_, err := c.AddPayoneerAccount(ctx, types.InternationalAccountParams{Email: "merchant@shop.et", Label: "Main"})
				return err
			},
			method: http.MethodPost, path: "/api/v1/international/wallet-accounts", contentType: jsonType,
			wantJSON: `{"provider":"payoneer","email":"merchant@shop.et","label":"Main"}`,
		},
		{
			name: "gmail status",
			call: func(c *Client) error {
				_, err := c.GetGmailStatus(ctx)
				return err
			},
			method: http.MethodGet, path: "/api/v1/international/gmail/status", contentType: formType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs := newRecordingServer(t)
			if tc.response != "" {
				rs.respond(http.StatusOK, tc.response)
			}
			c := newTestClient(t, rs)

			require.NoError(t, tc.call(c))
			got := rs.last(t)

			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.path, got.Path)
			assert.Equal(t, tc.query, got.RawQuery)
			assert.Equal(t, tc.contentType, got.ContentType)
			assert.Equal(t, "Bearer "+testKey, got.Auth)
			assert.NotEmpty(t, got.RequestID)

			switch {
			case tc.wantJSON != "":
				assert.JSONEq(t, tc.wantJSON, got.Body)
			case tc.wantForm != "":
				assert.Equal(t, tc.wantForm, got.Body)
			default:
				assert.Empty(t, got.Body)
			}
		})
	}
}
