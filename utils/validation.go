package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/shegerpay/shegerpay-go/types"
)

const tronAddrLength = 34

var (
	base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
	bech32Pattern = regexp.MustCompile(`^[a-z0-9]+$`)
)

// ValidateAmount checks if an amount string is a valid non-negative decimal
func ValidateAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}

	return dec, nil
}

// ValidateWalletAddress checks a receiving address against the address
// format of chain and returns it normalized. EVM addresses come back in
// EIP-55 checksum form.
func ValidateWalletAddress(chain types.Chain, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", fmt.Errorf("wallet address cannot be empty")
	}

	switch chain.Family() {
	case types.ChainFamilyEVM:
		if !common.IsHexAddress(address) {
			return "", fmt.Errorf("%s address must be 0x-prefixed 20-byte hex", chain)
		}
		return common.HexToAddress(address).Hex(), nil

	case types.ChainFamilyTron:
		if len(address) != tronAddrLength || !strings.HasPrefix(address, "T") {
			return "", fmt.Errorf("TRON address must be %d characters starting with T", tronAddrLength)
		}
		if !isBase58String(address) {
			return "", fmt.Errorf("TRON address must be valid base58")
		}
		return address, nil

	case types.ChainFamilyUTXO:
		lower := strings.ToLower(address)
		for _, hrp := range []string{"bc1", "tb1", "ltc1", "tltc1"} {
			if strings.HasPrefix(lower, hrp) {
				if len(address) < 14 || len(address) > 74 || !bech32Pattern.MatchString(lower) {
					return "", fmt.Errorf("%s bech32 address is malformed", chain)
				}
				return lower, nil
			}
		}
		if len(address) < 26 || len(address) > 35 || !isBase58String(address) {
			return "", fmt.Errorf("%s address must be valid base58 or bech32", chain)
		}
		return address, nil

	default:
		return "", fmt.Errorf("unsupported chain: %s", chain)
	}
}

// Helper function to check if a string is valid base58
func isBase58String(s string) bool {
	return base58Pattern.MatchString(s)
}
