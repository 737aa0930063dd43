package app

import (
	"errors"

	"github.com/stripe/stripe-go/v82"
)

// providerMessage returns the human readable message of a Stripe API error.
func providerMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}

// isKnownProductType reports whether t names one of the purchasable products.
func isKnownProductType(t string) bool {
	switch ProductType(t) {
	case ProductTypeMonthly, ProductTypeLifetime:
		return true
	}
	return false
}
