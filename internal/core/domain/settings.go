package domain

import "strings"

// ShopSettings is what the core reads from the settings collaborator.
// TaxRate is kept raw; the checkout engine owns the parse-or-fallback policy.
type ShopSettings struct {
	Shop           ShopIdentity
	TaxRate        string
	PaymentMethods []string
}

// AcceptsPaymentMethod matches method case-insensitively against the configured
// list and returns the canonical spelling. An empty list accepts any non-blank method.
func (s ShopSettings) AcceptsPaymentMethod(method string) (string, bool) {
	method = strings.TrimSpace(method)
	if method == "" {
		return "", false
	}
	if len(s.PaymentMethods) == 0 {
		return strings.ToUpper(method), true
	}
	for _, allowed := range s.PaymentMethods {
		if strings.EqualFold(allowed, method) {
			return allowed, true
		}
	}
	return "", false
}
