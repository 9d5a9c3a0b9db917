package client

import (
	"context"

	"github.com/metrifox/metrifox-go/internal/auth"
	"github.com/metrifox/metrifox-go/internal/constants"
	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/internal/response"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// service selects the root URL an endpoint is resolved against.
type service int

const (
	serviceAPI service = iota
	serviceMeter
)

// endpoint binds an operation to its HTTP method, root, path and error context.
type endpoint struct {
	method  string
	service service
	path    string
	context string
}

// call is one dispatch of an endpoint.
type call struct {
	endpoint    endpoint
	segments    []string
	query       string
	body        []byte
	contentType string
}

// dispatcher turns a call into exactly one HTTP round trip and maps the reply.
type dispatcher struct {
	store     *auth.Store
	transport *mfhttp.Client
}

// credentials returns the current settings or a ConfigurationError when no
// API key is set. Every operation calls it before anything else.
func (d *dispatcher) credentials() (metrifox.Settings, error) {
	return d.store.Credentials()
}

func (d *dispatcher) do(ctx context.Context, settings metrifox.Settings, c call) (metrifox.Object, error) {
	base := settings.BaseURL
	if c.endpoint.service == serviceMeter {
		base = auth.MeterBaseURL(settings)
	}

	path := c.endpoint.path
	for _, segment := range c.segments {
		path += "/" + mfhttp.EscapeSegment(segment)
	}

	target, err := mfhttp.JoinURL(base, path, c.query)
	if err != nil {
		return nil, &metrifox.ConfigurationError{
			Message: err.Error(),
			Err:     err,
		}
	}

	contentType := c.contentType
	if contentType == "" {
		contentType = constants.ContentTypeJSON
	}

	resp, err := d.transport.Do(ctx, &mfhttp.Request{
		Method: c.endpoint.method,
		URL:    target,
		Headers: map[string]string{
			constants.HeaderAPIKey:      settings.APIKey,
			constants.HeaderContentType: contentType,
		},
		Body: c.body,
	})
	if err != nil {
		return nil, err
	}

	return response.Parse(resp, c.endpoint.context)
}

func requireCustomerKey(customerKey string) error {
	if customerKey == "" {
		return &metrifox.ArgumentError{
			Message: "customer_key is required",
			Err:     metrifox.ErrCustomerKeyRequired,
		}
	}

	return nil
}
