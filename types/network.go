package types

import "strings"

// ChainFamily classifies a blockchain into an address family.
type ChainFamily string

const (
	ChainFamilyEVM  ChainFamily = "evm"
	ChainFamilyTron ChainFamily = "tron"
	ChainFamilyUTXO ChainFamily = "utxo"
)

// Chain represents a blockchain accepted for crypto payment intents
type Chain string

const (
	ChainTron     Chain = "TRON"
	ChainEthereum Chain = "ETH"
	ChainBSC      Chain = "BSC"
	ChainBitcoin  Chain = "BTC"
	ChainLitecoin Chain = "LTC"
)

// DefaultChain is used when a crypto payment does not name a chain.
const DefaultChain = ChainTron

// ParseChain normalizes a chain name and reports whether it is supported.
func ParseChain(s string) (Chain, bool) {
	c := Chain(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

func (c Chain) IsValid() bool {
	switch c {
	case ChainTron, ChainEthereum, ChainBSC, ChainBitcoin, ChainLitecoin:
		return true
	}
	return false
}

// Family returns the address family of the chain, or "" if unknown.
func (c Chain) Family() ChainFamily {
	switch c {
	case ChainEthereum, ChainBSC:
		return ChainFamilyEVM
	case ChainTron:
		return ChainFamilyTron
	case ChainBitcoin, ChainLitecoin:
		return ChainFamilyUTXO
	}
	return ""
}

func (c Chain) IsEVM() bool {
	return c.Family() == ChainFamilyEVM
}

func (c Chain) String() string {
	return string(c)
}

// CryptoCurrency represents a token accepted for crypto payment intents
type CryptoCurrency string

const (
	CryptoUSDT CryptoCurrency = "USDT"
	CryptoUSDC CryptoCurrency = "USDC"
	CryptoBTC  CryptoCurrency = "BTC"
	CryptoETH  CryptoCurrency = "ETH"
	CryptoBNB  CryptoCurrency = "BNB"
	CryptoTRX  CryptoCurrency = "TRX"
	CryptoLTC  CryptoCurrency = "LTC"
)

// ParseCryptoCurrency normalizes a symbol and reports whether it is supported.
func ParseCryptoCurrency(s string) (CryptoCurrency, bool) {
	c := CryptoCurrency(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

func (c CryptoCurrency) IsValid() bool {
	switch c {
	case CryptoUSDT, CryptoUSDC, CryptoBTC, CryptoETH, CryptoBNB, CryptoTRX, CryptoLTC:
		return true
	}
	return false
}

func (c CryptoCurrency) String() string {
	return string(c)
}
