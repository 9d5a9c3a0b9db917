package client

import (
	"context"
	"net/http"

	"github.com/metrifox/metrifox-go/internal/constants"
	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/internal/payload"
	"github.com/metrifox/metrifox-go/internal/response"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

var generateCheckoutURLEndpoint = endpoint{
	method: http.MethodGet, path: constants.PathGenerateCheckoutURL, context: constants.ContextGenerateCheckoutURL,
}

// CheckoutClient implements metrifox.CheckoutClient.
type CheckoutClient struct {
	dispatcher *dispatcher
}

// newCheckoutClient creates a new checkout client.
func newCheckoutClient(d *dispatcher) *CheckoutClient {
	return &CheckoutClient{
		dispatcher: d,
	}
}

// URL implements metrifox.CheckoutClient.URL.
func (c *CheckoutClient) URL(ctx context.Context, config interface{}) (string, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return "", err
	}

	offeringKey, err := requireOfferingKey(config)
	if err != nil {
		return "", err
	}

	query := payload.NewQuery().
		Add("offering_key", offeringKey).
		AddFrom(config, "billing_interval", "customer_key")

	object, err := c.dispatcher.do(ctx, settings, call{endpoint: generateCheckoutURLEndpoint, query: query.Encode()})
	if err != nil {
		return "", err
	}

	checkoutURL := response.ProjectString(object, "data", "checkout_url")
	if checkoutURL == "" {
		return "", checkoutURLMissing()
	}

	return checkoutURL, nil
}

// ComposeURL implements metrifox.CheckoutClient.ComposeURL.
func (c *CheckoutClient) ComposeURL(ctx context.Context, config interface{}) (string, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return "", err
	}

	offeringKey, err := requireOfferingKey(config)
	if err != nil {
		return "", err
	}

	object, err := c.dispatcher.do(ctx, settings, call{endpoint: checkoutKeyEndpoint})
	if err != nil {
		return "", err
	}

	username := response.ProjectString(object, "data", "checkout_username")
	if username == "" {
		return "", checkoutURLMissing()
	}

	billingInterval, _ := payload.ReadString(config, "billing_interval")
	customerKey, _ := payload.ReadString(config, "customer_key")

	query := payload.NewQuery().
		Add("billing_period", billingInterval).
		Add("customer", customerKey)

	checkoutURL := settings.WebAppBaseURL + "/" + mfhttp.EscapeSegment(username) +
		"/checkout/" + mfhttp.EscapeSegment(offeringKey)

	if query.Len() > 0 {
		checkoutURL += "?" + query.Encode()
	}

	return checkoutURL, nil
}

func requireOfferingKey(config interface{}) (string, error) {
	offeringKey, ok := payload.ReadString(config, "offering_key")
	if !ok {
		return "", &metrifox.ArgumentError{
			Message: "offering_key is required",
			Err:     metrifox.ErrOfferingKeyRequired,
		}
	}

	return offeringKey, nil
}

func checkoutURLMissing() error {
	return &metrifox.APIError{
		Context: constants.ContextGenerateCheckoutURL,
		Message: "Checkout URL could not be generated",
		Err:     metrifox.ErrCheckoutURLMissing,
	}
}
