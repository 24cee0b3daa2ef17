package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Mode is the operating context of an API key
type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

// API key prefixes, one per mode.
const (
	TestKeyPrefix = "sk_test_"
	LiveKeyPrefix = "sk_live_"
)

// ModeFromKey derives the mode from an API key prefix.
func ModeFromKey(apiKey string) (Mode, bool) {
	switch {
	case strings.HasPrefix(apiKey, TestKeyPrefix):
		return ModeTest, true
	case strings.HasPrefix(apiKey, LiveKeyPrefix):
		return ModeLive, true
	}
	return "", false
}

func (m Mode) String() string {
	return string(m)
}

// Provider represents the payment rail a transaction was made on
type Provider string

const (
	ProviderCBE          Provider = "cbe"
	ProviderTelebirr     Provider = "telebirr"
	ProviderBankTransfer Provider = "bank_transfer"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderCBE, ProviderTelebirr, ProviderBankTransfer:
		return true
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}

// InternationalProvider represents a wallet service for international receipts
type InternationalProvider string

const (
	InternationalWise     InternationalProvider = "wise"
	InternationalPayoneer InternationalProvider = "payoneer"
)

func (p InternationalProvider) IsValid() bool {
	return p == InternationalWise || p == InternationalPayoneer
}

// Currency is an ISO 4217 fiat currency code
type Currency string

const (
	CurrencyETB Currency = "ETB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

func (c Currency) String() string {
	return string(c)
}

// PayoutMethod is the rail used to settle a payout
type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
)

// Object is an opaque decoded JSON object returned by catalog-style endpoints.
type Object map[string]any

// VerificationResult contains the result of a payment verification
type VerificationResult struct {
	Valid         bool             `json:"valid"`
	Status        string           `json:"status"`
	Provider      Provider         `json:"provider,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Reason        string           `json:"reason,omitempty"`
	Mode          Mode             `json:"mode,omitempty"`
	Payer         string           `json:"payer,omitempty"`
}

// StatusUnknown is reported when a verification response carries no status.
const StatusUnknown = "unknown"

// Transaction is one verified entry of the remote ledger
type Transaction struct {
	ID         string          `json:"id"`
	Provider   Provider        `json:"provider"`
	ExternalID string          `json:"external_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	Mode       Mode            `json:"mode"`
}

// VerifyParams contains parameters for a payment verification.
// Provider is auto-detected from TransactionID when empty.
type VerifyParams struct {
	TransactionID string
	Amount        decimal.Decimal
	Provider      Provider
	MerchantName  string
	SubProvider   string
}

// CryptoPaymentParams describes a crypto payment intent
type CryptoPaymentParams struct {
	AmountUSD     decimal.Decimal `validate:"gte=0"`
	Currency      CryptoCurrency  `validate:"required,crypto_currency"`
	WalletAddress string          `validate:"required"`
	// Chain defaults to DefaultChain.
	Chain Chain `validate:"omitempty,chain"`
}

// CryptoVerifyParams identifies a crypto payment to verify
type CryptoVerifyParams struct {
	ReferenceID     string `validate:"required"`
	TransactionHash string
}

// PayPalOrderParams describes a PayPal order
type PayPalOrderParams struct {
	Amount          decimal.Decimal `validate:"gte=0"`
	Currency        Currency        `validate:"omitempty,iso4217"`
	Description     string
	VaultOnApproval bool
}

// PayPalChargeParams describes a one-click charge against a vaulted card
type PayPalChargeParams struct {
	PaymentTokenID string          `validate:"required"`
	Amount         decimal.Decimal `validate:"gte=0"`
	Currency       Currency        `validate:"omitempty,iso4217"`
	Description    string
}

// PayPalSubscriptionParams describes a PayPal subscription
type PayPalSubscriptionParams struct {
	PlanID          string `validate:"required"`
	SubscriberEmail string `validate:"omitempty,email"`
	SubscriberName  string
	CustomID        string
}

// PayPalRefundParams describes a refund of a captured payment.
// A nil Amount refunds the full capture.
type PayPalRefundParams struct {
	CaptureID string           `validate:"required"`
	Amount    *decimal.Decimal `validate:"omitempty,gte=0"`
	Currency  Currency         `validate:"omitempty,iso4217"`
	Note      string
}

// PaymentLinkParams describes a shareable payment link.
// CBE and Telebirr are enabled unless disabled; ExpiresInHours defaults to 24.
type PaymentLinkParams struct {
	Title           string          `validate:"required"`
	Amount          decimal.Decimal `validate:"gte=0"`
	Currency        Currency        `validate:"omitempty,iso4217"`
	Description     string
	DisableCBE      bool
	DisableTelebirr bool
	EnableCrypto    bool
	ExpiresInHours  int `validate:"gte=0"`
}

// WebhookParams describes a webhook endpoint. Empty Events subscribes to all.
type WebhookParams struct {
	URL    string `validate:"required,url"`
	Events []string
}

// ConvertParams describes a wallet currency conversion
type ConvertParams struct {
	From   Currency        `validate:"required,iso4217"`
	To     Currency        `validate:"required,iso4217"`
	Amount decimal.Decimal `validate:"gte=0"`
}

// RefundParams describes a refund request. A zero Amount refunds in full.
type RefundParams struct {
	TransactionID string          `validate:"required"`
	Amount        decimal.Decimal `validate:"gte=0"`
	Reason        string
}

// ListParams filters list endpoints
type ListParams struct {
	Status string
	Limit  int `validate:"gte=0"`
}

// DisputeResponseParams is a merchant response to a dispute
type DisputeResponseParams struct {
	Message      string   `validate:"required"`
	EvidenceURLs []string `validate:"dive,url"`
}

// PayoutParams describes a payout request. Extra fields are sent verbatim.
type PayoutParams struct {
	Amount   decimal.Decimal `validate:"gte=0"`
	Currency Currency        `validate:"required,iso4217"`
	Method   PayoutMethod
	Extra    map[string]any
}

// TransactionListParams filters the transaction listing
type TransactionListParams struct {
	Status   string
	Provider Provider
	Limit    int `validate:"gte=0"`
}

// InternationalAccountParams describes a Wise or Payoneer wallet account
type InternationalAccountParams struct {
	Email string `validate:"required,email"`
	Label string
}
