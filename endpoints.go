package shegerpay

// API routes, relative to the base URL. Path parameters are appended by the
// operations after escaping.
const (
	pathVerify      = "/api/v1/verify"
	pathQuickVerify = "/api/v1/quick-verify"
	pathHistory     = "/api/v1/history"

	pathCryptoRates         = "/api/v1/crypto/rates"
	pathCryptoRate          = "/api/v1/crypto/rate/"
	pathCryptoGenerate      = "/api/v1/crypto/generate-intent"
	pathCryptoVerifyRef     = "/api/v1/crypto/verify-reference"
	pathCryptoStatus        = "/api/v1/crypto/status"
	pathPayPalCreateOrder   = "/api/v1/paypal/create-order"
	pathPayPalCaptureOrder  = "/api/v1/paypal/capture-order"
	pathPayPalOrder         = "/api/v1/paypal/order/"
	pathPayPalSetupToken    = "/api/v1/paypal/vault/setup-token"
	pathPayPalPaymentTokens = "/api/v1/paypal/vault/payment-tokens"
	pathPayPalPaymentToken  = "/api/v1/paypal/vault/payment-token/"
	pathPayPalVaultCharge   = "/api/v1/paypal/vault/charge"
	pathPayPalSubscriptions = "/api/v1/paypal/subscriptions"
	pathPayPalRefund        = "/api/v1/paypal/refund"
	pathPayPalStatus        = "/api/v1/paypal/status"

	pathPaymentLinks = "/api/v1/payment-links/"
	pathWebhooks     = "/api/v1/webhooks/"
	pathWebhookTest  = "/api/v1/webhooks/test"

	pathWalletBalances = "/api/v1/wallets/balances"
	pathWalletConvert  = "/api/v1/wallets/convert"

	pathRefunds  = "/api/v1/refunds"
	pathDisputes = "/api/v1/disputes"
	pathPayouts  = "/api/v1/payouts"

	pathTransactions        = "/api/v1/transactions/history"
	pathSubscriptionCurrent = "/api/v1/subscriptions/current"
	pathSubscriptionUsage   = "/api/v1/subscriptions/usage"
	pathAnalyticsAPIUsage   = "/api/v1/analytics/api-usage"

	pathTwoFactorSetup   = "/api/v1/two-factor/setup"
	pathTwoFactorVerify  = "/api/v1/two-factor/verify"
	pathTwoFactorStatus  = "/api/v1/two-factor/status"
	pathTwoFactorDisable = "/api/v1/two-factor/disable"
	pathPasskeys         = "/api/v1/passkeys"

	pathInternationalAccounts = "/api/v1/international/wallet-accounts"
	pathGmailStatus           = "/api/v1/international/gmail/status"
)
