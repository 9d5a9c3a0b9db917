package client

import (
	"context"
	"net/http"

	"github.com/metrifox/metrifox-go/internal/constants"
	"github.com/metrifox/metrifox-go/internal/payload"
	"github.com/metrifox/metrifox-go/internal/response"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

var (
	checkAccessEndpoint = endpoint{
		method: http.MethodGet, service: serviceMeter, path: constants.PathUsageAccess, context: constants.ContextCheckAccess,
	}
	recordUsageEndpoint = endpoint{
		method: http.MethodPost, service: serviceMeter, path: constants.PathUsageEvents, context: constants.ContextRecordUsage,
	}
	tenantIDEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathTenantID, context: constants.ContextGetTenantID,
	}
	checkoutKeyEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathCheckoutUsername, context: constants.ContextGetCheckoutKey,
	}
)

// UsagesClient implements metrifox.UsagesClient.
type UsagesClient struct {
	dispatcher *dispatcher
}

// newUsagesClient creates a new usages client.
func newUsagesClient(d *dispatcher) *UsagesClient {
	return &UsagesClient{
		dispatcher: d,
	}
}

// CheckAccess implements metrifox.UsagesClient.CheckAccess.
func (c *UsagesClient) CheckAccess(ctx context.Context, request interface{}) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	if request != nil && !payload.IsMapLike(request) {
		return nil, &metrifox.ArgumentError{
			Message: "invalid request format: access check needs feature_key and customer_key",
			Err:     metrifox.ErrInvalidPayload,
		}
	}

	query := payload.NewQuery().AddFrom(request, "feature_key", "customer_key")

	return c.dispatcher.do(ctx, settings, call{endpoint: checkAccessEndpoint, query: query.Encode()})
}

// RecordUsage implements metrifox.UsagesClient.RecordUsage.
func (c *UsagesClient) RecordUsage(ctx context.Context, request interface{}) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	fields, err := payload.UsageBody(request)
	if err != nil {
		return nil, err
	}

	body, err := payload.Encode(fields)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.do(ctx, settings, call{endpoint: recordUsageEndpoint, body: body})
}

// GetTenantID implements metrifox.UsagesClient.GetTenantID.
func (c *UsagesClient) GetTenantID(ctx context.Context) (string, error) {
	return c.project(ctx, tenantIDEndpoint, "tenant_id")
}

// GetCheckoutKey implements metrifox.UsagesClient.GetCheckoutKey.
func (c *UsagesClient) GetCheckoutKey(ctx context.Context) (string, error) {
	return c.project(ctx, checkoutKeyEndpoint, "checkout_username")
}

func (c *UsagesClient) project(ctx context.Context, ep endpoint, field string) (string, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return "", err
	}

	object, err := c.dispatcher.do(ctx, settings, call{endpoint: ep})
	if err != nil {
		return "", err
	}

	return response.ProjectString(object, "data", field), nil
}
