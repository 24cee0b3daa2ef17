package verification

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shegerpay/shegerpay-go/types"
)

func TestDetectProvider(t *testing.T) {
	for _, id := range []string{"FT24352648751234", "ft123", "Ft9", "fT", "FT"} {
		assert.Equal(t, types.ProviderCBE, DetectProvider(id), id)
	}
	for _, id := range []string{"", "F", "TF123", "CHQ1234", " FT123", "8A12BC", "ＦＴ1"} {
		assert.Equal(t, types.ProviderTelebirr, DetectProvider(id), id)
	}
}

func TestVerifyForm_Defaults(t *testing.T) {
	form := VerifyForm(types.VerifyParams{
		TransactionID: "FT24352648751234",
		Amount:        decimal.RequireFromString("100.50"),
	}, "ShegerPay Verification")

	assert.Equal(t, "cbe", form.Get("provider"))
	assert.Equal(t, "FT24352648751234", form.Get("transaction_id"))
	assert.Equal(t, "100.5", form.Get("amount"))
	assert.Equal(t, "ShegerPay Verification", form.Get("merchant_name"))
	assert.False(t, form.Has("sub_provider"))
}

func TestVerifyForm_ExplicitValues(t *testing.T) {
	form := VerifyForm(types.VerifyParams{
		TransactionID: "FT1",
		Amount:        decimal.NewFromInt(250),
		Provider:      types.ProviderBankTransfer,
		MerchantName:  "My Shop",
		SubProvider:   "Payoneer",
	}, "Kyne Verification")

	assert.Equal(t, "bank_transfer", form.Get("provider"))
	assert.Equal(t, "250", form.Get("amount"))
	assert.Equal(t, "My Shop", form.Get("merchant_name"))
	assert.Equal(t, "Payoneer", form.Get("sub_provider"))
}

func TestVerifyForm_EmptyIDStillDetects(t *testing.T) {
	form := VerifyForm(types.VerifyParams{}, "ShegerPay Verification")
	assert.Equal(t, "telebirr", form.Get("provider"))
	assert.True(t, form.Has("transaction_id"))
}

func TestQuickVerifyForm(t *testing.T) {
	form := QuickVerifyForm("8A12BC", decimal.NewFromInt(75))
	assert.Equal(t, "8A12BC", form.Get("transaction_id"))
	assert.Equal(t, "75", form.Get("amount"))
	assert.Len(t, form, 2)
}

func TestMapResult_RoundTrip(t *testing.T) {
	result, err := MapResult([]byte(`{"valid": true, "status": "verified", "provider": "cbe", "amount": 100}`))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, "verified", result.Status)
	assert.Equal(t, types.ProviderCBE, result.Provider)
	require.NotNil(t, result.Amount)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, result.Reason)
	assert.Empty(t, result.Mode)
	assert.Empty(t, result.Payer)
	assert.Empty(t, result.TransactionID)
}

func TestMapResult_Defaults(t *testing.T) {
	result, err := MapResult([]byte(`{}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, types.StatusUnknown, result.Status)
	assert.Nil(t, result.Amount)

	result, err = MapResult([]byte(`{"valid": null, "status": null, "amount": null}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, types.StatusUnknown, result.Status)
	assert.Nil(t, result.Amount)
}

func TestMapResult_EmptyStatusIsKept(t *testing.T) {
	result, err := MapResult([]byte(`{"valid": true, "status": ""}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "", result.Status)
}

func TestMapResult_AllFields(t *testing.T) {
	result, err := MapResult([]byte(`{
		"valid": false,
		"status": "failed",
		"provider": "telebirr",
		"transaction_id": "8A12BC",
		"amount": "99.99",
		"reason": "Amount mismatch",
		"mode": "test",
		"payer": {"name": "Abebe"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "failed", result.Status)
	assert.Equal(t, "8A12BC", result.TransactionID)
	assert.Equal(t, "99.99", result.Amount.String())
	assert.Equal(t, "Amount mismatch", result.Reason)
	assert.Equal(t, types.ModeTest, result.Mode)
	assert.JSONEq(t, `{"name": "Abebe"}`, result.Payer)
}

func TestMapResult_Malformed(t *testing.T) {
	for _, body := range []string{``, `[]`, `"ok"`, `{"valid": "yes"}`, `{"amount": "abc"}`} {
		_, err := MapResult([]byte(body))
		assert.Equal(t, types.KindResponse, types.KindOf(err), body)
	}
}

func TestMapHistory(t *testing.T) {
	body := []byte(`[
		{"id": "tx_1", "provider": "cbe", "external_id": "FT1", "amount": 100.5, "status": "verified", "created_at": "2024-01-01T00:00:00Z", "mode": "test"},
		{"id": 42, "provider": "telebirr", "external_id": "8A12", "amount": "20", "status": "failed", "created_at": "2024-01-02T00:00:00Z", "mode": "live"}
	]`)

	txs, err := MapHistory(body)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, types.Transaction{
		ID:         "tx_1",
		Provider:   types.ProviderCBE,
		ExternalID: "FT1",
		Amount:     decimal.RequireFromString("100.5"),
		Status:     "verified",
		CreatedAt:  "2024-01-01T00:00:00Z",
		Mode:       types.ModeTest,
	}, txs[0])
	assert.Equal(t, "42", txs[1].ID)
	assert.Equal(t, types.ModeLive, txs[1].Mode)
	assert.True(t, txs[1].Amount.Equal(decimal.NewFromInt(20)))
}

func TestMapHistory_ZeroAmount(t *testing.T) {
	txs, err := MapHistory([]byte(`[{"id": "tx_0", "provider": "cbe", "external_id": "FT0", "amount": 0, "status": "failed", "created_at": "now", "mode": "test"}]`))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.IsZero())
}

func TestMapHistory_EmptyStringID(t *testing.T) {
	txs, err := MapHistory([]byte(`[{"id": "", "provider": "cbe", "external_id": "FT9", "amount": 5, "status": "verified", "created_at": "now", "mode": "test"}]`))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "", txs[0].ID)
	assert.Equal(t, "FT9", txs[0].ExternalID)
}

func TestMapHistory_Empty(t *testing.T) {
	txs, err := MapHistory([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestMapHistory_MissingFieldIsResponseError(t *testing.T) {
	cases := map[string]string{
		"missing mode": `[{"id": "tx_1", "provider": "cbe", "external_id": "FT1", "amount": 1, "status": "ok", "created_at": "now"}]`,
		"null amount":  `[{"id": "tx_1", "provider": "cbe", "external_id": "FT1", "amount": null, "status": "ok", "created_at": "now", "mode": "test"}]`,
		"missing id":   `[{"provider": "cbe", "external_id": "FT1", "amount": 1, "status": "ok", "created_at": "now", "mode": "test"}]`,
		"null id":      `[{"id": null, "provider": "cbe", "external_id": "FT1", "amount": 1, "status": "ok", "created_at": "now", "mode": "test"}]`,
		"not an array": `{"transactions": []}`,
		"wrong type":   `[{"id": "tx_1", "provider": 5, "external_id": "FT1", "amount": 1, "status": "ok", "created_at": "now", "mode": "test"}]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := MapHistory([]byte(body))
			require.Error(t, err)
			assert.Equal(t, types.KindResponse, types.KindOf(err))
		})
	}
}
