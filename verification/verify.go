// Package verification shapes verification requests and maps verification
// and history responses into typed records.
package verification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shegerpay/shegerpay-go/types"
	"github.com/shegerpay/shegerpay-go/utils"
)

// cbePrefix marks CBE references; it is matched case-insensitively.
const cbePrefix = "FT"

// DetectProvider picks the provider for a transaction id. It never fails:
// anything without the CBE prefix, including "", is telebirr.
func DetectProvider(transactionID string) types.Provider {
	if len(transactionID) >= len(cbePrefix) && strings.EqualFold(transactionID[:len(cbePrefix)], cbePrefix) {
		return types.ProviderCBE
	}
	return types.ProviderTelebirr
}

// VerifyForm builds the form body of a verify call. An empty provider is
// detected from the transaction id and an empty merchant name falls back to
// defaultMerchant.
func VerifyForm(params types.VerifyParams, defaultMerchant string) url.Values {
	provider := params.Provider
	if provider == "" {
		provider = DetectProvider(params.TransactionID)
	}
	merchant := params.MerchantName
	if merchant == "" {
		merchant = defaultMerchant
	}

	form := url.Values{}
	form.Set("provider", string(provider))
	form.Set("transaction_id", params.TransactionID)
	form.Set("amount", params.Amount.String())
	form.Set("merchant_name", merchant)
	if params.SubProvider != "" {
		form.Set("sub_provider", params.SubProvider)
	}
	return form
}

// QuickVerifyForm builds the form body of a quick-verify call. The provider
// is left to the remote service.
func QuickVerifyForm(transactionID string, amount decimal.Decimal) url.Values {
	form := url.Values{}
	form.Set("transaction_id", transactionID)
	form.Set("amount", amount.String())
	return form
}

type resultPayload struct {
	Valid         *bool            `json:"valid"`
	Status        *string          `json:"status"`
	Provider      json.RawMessage  `json:"provider"`
	TransactionID json.RawMessage  `json:"transaction_id"`
	Amount        *decimal.Decimal `json:"amount"`
	Reason        json.RawMessage  `json:"reason"`
	Mode          json.RawMessage  `json:"mode"`
	Payer         json.RawMessage  `json:"payer"`
}

// MapResult decodes a verification response. Absent valid and status take
// their defaults; other fields are copied only when present.
func MapResult(body []byte) (*types.VerificationResult, error) {
	if !isJSONObject(body) {
		return nil, types.NewError(types.KindResponse, "verification response is not a JSON object")
	}

	var payload resultPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, types.WrapError(types.KindResponse, "failed to parse verification response", err)
	}

	result := &types.VerificationResult{
		Status:        types.StatusUnknown,
		Provider:      types.Provider(utils.FlexString(payload.Provider)),
		TransactionID: utils.FlexString(payload.TransactionID),
		Amount:        payload.Amount,
		Reason:        utils.FlexString(payload.Reason),
		Mode:          types.Mode(utils.FlexString(payload.Mode)),
		Payer:         utils.FlexString(payload.Payer),
	}
	if payload.Valid != nil {
		result.Valid = *payload.Valid
	}
	if payload.Status != nil {
		result.Status = *payload.Status
	}
	return result, nil
}

type transactionRecord struct {
	ID         json.RawMessage  `json:"id" validate:"required"`
	Provider   *string          `json:"provider" validate:"required"`
	ExternalID *string          `json:"external_id" validate:"required"`
	Amount     *decimal.Decimal `json:"amount"`
	Status     *string          `json:"status" validate:"required"`
	CreatedAt  *string          `json:"created_at" validate:"required"`
	Mode       *string          `json:"mode" validate:"required"`
}

// MapHistory decodes a history response into transactions. Every record must
// carry all seven fields; a missing one is a response error naming the
// record index.
func MapHistory(body []byte) ([]types.Transaction, error) {
	var records []transactionRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, types.WrapError(types.KindResponse, "failed to parse history response", err)
	}

	transactions := make([]types.Transaction, 0, len(records))
	for i, rec := range records {
		id := utils.FlexString(rec.ID)
		err := utils.ValidateStruct(rec)
		switch {
		case err != nil:
		case bytes.Equal(bytes.TrimSpace(rec.ID), []byte("null")):
			err = fmt.Errorf("id is null")
		case rec.Amount == nil:
			// Amount is checked here: a zero decimal fails `required`.
			err = fmt.Errorf("amount is null")
		}
		if err != nil {
			return nil, types.WrapError(types.KindResponse,
				fmt.Sprintf("history record %d is missing required fields", i), err)
		}

		transactions = append(transactions, types.Transaction{
			ID:         id,
			Provider:   types.Provider(*rec.Provider),
			ExternalID: *rec.ExternalID,
			Amount:     *rec.Amount,
			Status:     *rec.Status,
			CreatedAt:  *rec.CreatedAt,
			Mode:       types.Mode(*rec.Mode),
		})
	}
	return transactions, nil
}

func isJSONObject(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
