package shegerpay

import "strings"

// Brand selects the white-label deployment a client talks to. Both brands
// share one API; they differ only in host, default merchant name and user
// agent.
type Brand string

const (
	BrandShegerPay Brand = "shegerpay"
	BrandKyne      Brand = "kyne"
)

const (
	DefaultBaseURL     = "https://api.shegerpay.com"
	DefaultKyneBaseURL = "https://api.kyne.com"
)

// ParseBrand normalizes a brand name and reports whether it is supported.
// An empty name is ShegerPay.
func ParseBrand(s string) (Brand, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BrandShegerPay, true
	}
	b := Brand(s)
	return b, b.IsValid()
}

func (b Brand) IsValid() bool {
	return b == BrandShegerPay || b == BrandKyne
}

func (b Brand) DisplayName() string {
	if b == BrandKyne {
		return "Kyne"
	}
	return "ShegerPay"
}

func (b Brand) BaseURL() string {
	if b == BrandKyne {
		return DefaultKyneBaseURL
	}
	return DefaultBaseURL
}

// DefaultMerchantName is sent by Verify when the caller gives none.
func (b Brand) DefaultMerchantName() string {
	return b.DisplayName() + " Verification"
}

func (b Brand) UserAgent() string {
	return b.DisplayName() + "-Go-SDK/" + Version
}

func (b Brand) String() string {
	return string(b)
}
