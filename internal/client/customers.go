package client

import (
	"context"
	"net/http"

	"github.com/metrifox/metrifox-go/internal/constants"
	"github.com/metrifox/metrifox-go/internal/multipart"
	"github.com/metrifox/metrifox-go/internal/payload"
	"github.com/metrifox/metrifox-go/internal/response"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

var (
	createCustomerEndpoint = endpoint{
		method: http.MethodPost, path: constants.PathCustomerNew, context: constants.ContextCreateCustomer,
	}
	updateCustomerEndpoint = endpoint{
		method: http.MethodPatch, path: constants.PathCustomers, context: constants.ContextUpdateCustomer,
	}
	getCustomerEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathCustomers, context: constants.ContextGetCustomer,
	}
	getCustomerDetailsEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathCustomers, context: constants.ContextGetCustomerDetails,
	}
	checkActiveSubscriptionEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathCustomers, context: constants.ContextCheckActiveSubscription,
	}
	deleteCustomerEndpoint = endpoint{
		method: http.MethodDelete, path: constants.PathCustomers, context: constants.ContextDeleteCustomer,
	}
	listCustomersEndpoint = endpoint{
		method: http.MethodGet, path: constants.PathCustomers, context: constants.ContextListCustomers,
	}
	uploadCustomersCSVEndpoint = endpoint{
		method: http.MethodPost, path: constants.PathCustomerCSVUpload, context: constants.ContextUploadCSV,
	}
)

// CustomersClient implements metrifox.CustomersClient.
type CustomersClient struct {
	dispatcher *dispatcher
}

// newCustomersClient creates a new customers client.
func newCustomersClient(d *dispatcher) *CustomersClient {
	return &CustomersClient{
		dispatcher: d,
	}
}

// Create implements metrifox.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request interface{}) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	body, err := customerBody(request)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.do(ctx, settings, call{endpoint: createCustomerEndpoint, body: body})
}

// Update implements metrifox.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, customerKey string, request interface{}) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	err = requireCustomerKey(customerKey)
	if err != nil {
		return nil, err
	}

	body, err := customerBody(request)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.do(ctx, settings, call{
		endpoint: updateCustomerEndpoint,
		segments: []string{customerKey},
		body:     body,
	})
}

// Get implements metrifox.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.byKey(ctx, getCustomerEndpoint, customerKey)
}

// GetDetails implements metrifox.CustomersClient.GetDetails.
func (c *CustomersClient) GetDetails(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.byKey(ctx, getCustomerDetailsEndpoint, customerKey, constants.PathCustomerDetails)
}

// HasActiveSubscription implements metrifox.CustomersClient.HasActiveSubscription.
func (c *CustomersClient) HasActiveSubscription(ctx context.Context, customerKey string) (bool, error) {
	object, err := c.byKey(ctx, checkActiveSubscriptionEndpoint, customerKey, constants.PathCustomerSubscription)
	if err != nil {
		return false, err
	}

	return response.ProjectBool(object, "data", "has_active_subscription"), nil
}

// Delete implements metrifox.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.byKey(ctx, deleteCustomerEndpoint, customerKey)
}

// List implements metrifox.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params interface{}) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	query := payload.NewQuery().AddFrom(params, payload.ListParamKeys...)

	return c.dispatcher.do(ctx, settings, call{endpoint: listCustomersEndpoint, query: query.Encode()})
}

// UploadCSV implements metrifox.CustomersClient.UploadCSV.
func (c *CustomersClient) UploadCSV(ctx context.Context, filePath string) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	body, err := multipart.Build(filePath)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.do(ctx, settings, call{
		endpoint:    uploadCustomersCSVEndpoint,
		body:        body.Bytes,
		contentType: body.ContentType,
	})
}

// byKey dispatches a body-less call against customers/{customerKey}[/suffix].
func (c *CustomersClient) byKey(ctx context.Context, ep endpoint, customerKey string, suffix ...string) (metrifox.Object, error) {
	settings, err := c.dispatcher.credentials()
	if err != nil {
		return nil, err
	}

	err = requireCustomerKey(customerKey)
	if err != nil {
		return nil, err
	}

	return c.dispatcher.do(ctx, settings, call{
		endpoint: ep,
		segments: append([]string{customerKey}, suffix...),
	})
}

func customerBody(request interface{}) ([]byte, error) {
	fields, err := payload.CustomerBody(request)
	if err != nil {
		return nil, err
	}

	return payload.Encode(fields)
}
