package shegerpay

import (
	"context"
	"strings"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// GetCryptoRates returns live prices for every supported token.
func (c *Client) GetCryptoRates(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "crypto.rates", pathCryptoRates, nil)
}

// GetCryptoRate returns the live price of one token. The symbol is
// upper-cased.
func (c *Client) GetCryptoRate(ctx context.Context, symbol string) (types.Object, error) {
	id, err := pathID("symbol", strings.ToUpper(symbol))
	if err != nil {
		return nil, err
	}
	return c.getObject(ctx, "crypto.rate", pathCryptoRate+id, nil)
}

// CreateCryptoPayment creates a payment intent with a unique amount and
// reference id. The wallet address is checked against the chain and EVM
// addresses are sent in checksum form.
func (c *Client) CreateCryptoPayment(ctx context.Context, params types.CryptoPaymentParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	chain := types.DefaultChain
	if params.Chain != "" {
		chain, _ = types.ParseChain(params.Chain.String())
	}
	currency, _ := types.ParseCryptoCurrency(params.Currency.String())

	address, err := utils.ValidateWalletAddress(chain, params.WalletAddress)
	if err != nil {
		return nil, types.WrapError(types.KindValidation, "invalid wallet address", err)
	}

	return c.postJSON(ctx, "crypto.generate_intent", pathCryptoGenerate, map[string]any{
		"amount_usd":     utils.DecimalNumber(params.AmountUSD),
		"currency":       currency.String(),
		"wallet_address": address,
		"chain":          chain.String(),
	})
}

// VerifyCryptoPayment checks a crypto payment by the reference id returned
// from CreateCryptoPayment.
func (c *Client) VerifyCryptoPayment(ctx context.Context, params types.CryptoVerifyParams) (types.Object, error) {
	if err := utils.ValidateParams(params); err != nil {
		return nil, err
	}

	payload := map[string]any{"reference_id": params.ReferenceID}
	if params.TransactionHash != "" {
		payload["transaction_hash"] = params.TransactionHash
	}
	return c.postJSON(ctx, "crypto.verify_reference", pathCryptoVerifyRef, payload)
}

// GetCryptoStatus returns service status with supported chains and tokens.
func (c *Client) GetCryptoStatus(ctx context.Context) (types.Object, error) {
	return c.getObject(ctx, "crypto.status", pathCryptoStatus, nil)
}
