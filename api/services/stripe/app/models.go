package app

import (
	stripe "github.com/stripe/stripe-go/v82"
	fivemgw "github.com/tbeaudouin05/stripe-fivem-relay/api/services/fivem/gateway"
)

// ProductType is the purchasable product selected by the client.
type ProductType string

const (
	ProductTypeMonthly  ProductType = "monthly"
	ProductTypeLifetime ProductType = "lifetime"
)

// Metadata keys attached to the checkout session and echoed back on completion.
const (
	MetadataCode = "code"
	MetadataType = "type"
)

// plan is the static billing mapping for a product type.
type plan struct {
	priceID string
	mode    stripe.CheckoutSessionMode
}

// Options carries the static checkout configuration.
type Options struct {
	PriceMonthly  string
	PriceLifetime string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSessionResponse is the domain response returned by the app layer
// HTTP layer will translate this into JSON
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ActionFor maps the product type echoed in session metadata to the downstream action.
// Anything other than exactly "lifetime", including an empty value, activates a subscription.
func ActionFor(productType string) fivemgw.Action {
	if ProductType(productType) == ProductTypeLifetime {
		return fivemgw.ActionActivateLifetime
	}
	return fivemgw.ActionActivateSub
}
