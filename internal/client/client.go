package client

import (
	"context"
	"sync"

	"github.com/metrifox/metrifox-go/internal/auth"
	"github.com/metrifox/metrifox-go/internal/config"
	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// Client implements the metrifox.Client interface.
type Client struct {
	store      *auth.Store
	dispatcher *dispatcher

	// Resource clients, created on first use
	customersOnce sync.Once
	customers     *CustomersClient
	usagesOnce    sync.Once
	usages        *UsagesClient
	checkoutOnce  sync.Once
	checkout      *CheckoutClient
}

var _ metrifox.Client = (*Client)(nil)

// New creates a client from a resolved configuration. URLs must already be
// normalised; see config.Resolve.
func New(cfg *metrifox.Config) *Client {
	transport := mfhttp.NewClient(
		mfhttp.WithLogger(cfg.Logger),
		mfhttp.WithDebug(cfg.Debug),
		mfhttp.WithUserAgent(cfg.UserAgent),
		mfhttp.WithTimeout(cfg.HTTPTimeout),
		mfhttp.WithHTTPClient(cfg.HTTPClient),
		mfhttp.WithInterceptors(cfg.RequestInterceptors, cfg.ResponseInterceptors),
	)

	store := auth.NewStore(config.Settings(cfg))

	return &Client{
		store: store,
		dispatcher: &dispatcher{
			store:     store,
			transport: transport,
		},
	}
}

// Customers implements metrifox.Client.Customers.
func (c *Client) Customers() metrifox.CustomersClient {
	c.customersOnce.Do(func() {
		c.customers = newCustomersClient(c.dispatcher)
	})

	return c.customers
}

// Usages implements metrifox.Client.Usages.
func (c *Client) Usages() metrifox.UsagesClient {
	c.usagesOnce.Do(func() {
		c.usages = newUsagesClient(c.dispatcher)
	})

	return c.usages
}

// Checkout implements metrifox.Client.Checkout.
func (c *Client) Checkout() metrifox.CheckoutClient {
	c.checkoutOnce.Do(func() {
		c.checkout = newCheckoutClient(c.dispatcher)
	})

	return c.checkout
}

// SetAPIKey implements metrifox.Client.SetAPIKey.
func (c *Client) SetAPIKey(apiKey string) {
	c.store.SetAPIKey(apiKey)
}

// SetBaseURL implements metrifox.Client.SetBaseURL.
func (c *Client) SetBaseURL(baseURL string) error {
	return c.store.SetBaseURL(baseURL)
}

// Settings implements metrifox.Client.Settings.
func (c *Client) Settings() metrifox.Settings {
	return c.store.Snapshot()
}

// CheckAccess is a shortcut for Usages().CheckAccess.
func (c *Client) CheckAccess(ctx context.Context, request interface{}) (metrifox.Object, error) {
	return c.Usages().CheckAccess(ctx, request)
}

// RecordUsage is a shortcut for Usages().RecordUsage.
func (c *Client) RecordUsage(ctx context.Context, request interface{}) (metrifox.Object, error) {
	return c.Usages().RecordUsage(ctx, request)
}

// GetTenantID is a shortcut for Usages().GetTenantID.
func (c *Client) GetTenantID(ctx context.Context) (string, error) {
	return c.Usages().GetTenantID(ctx)
}

// GetCheckoutKey is a shortcut for Usages().GetCheckoutKey.
func (c *Client) GetCheckoutKey(ctx context.Context) (string, error) {
	return c.Usages().GetCheckoutKey(ctx)
}

// CreateCustomer is a shortcut for Customers().Create.
func (c *Client) CreateCustomer(ctx context.Context, request interface{}) (metrifox.Object, error) {
	return c.Customers().Create(ctx, request)
}

// UpdateCustomer is a shortcut for Customers().Update.
func (c *Client) UpdateCustomer(ctx context.Context, customerKey string, request interface{}) (metrifox.Object, error) {
	return c.Customers().Update(ctx, customerKey, request)
}

// GetCustomer is a shortcut for Customers().Get.
func (c *Client) GetCustomer(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.Customers().Get(ctx, customerKey)
}

// GetCustomerDetails is a shortcut for Customers().GetDetails.
func (c *Client) GetCustomerDetails(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.Customers().GetDetails(ctx, customerKey)
}

// DeleteCustomer is a shortcut for Customers().Delete.
func (c *Client) DeleteCustomer(ctx context.Context, customerKey string) (metrifox.Object, error) {
	return c.Customers().Delete(ctx, customerKey)
}

// ListCustomers is a shortcut for Customers().List.
func (c *Client) ListCustomers(ctx context.Context, params interface{}) (metrifox.Object, error) {
	return c.Customers().List(ctx, params)
}

// UploadCustomersCSV is a shortcut for Customers().UploadCSV.
func (c *Client) UploadCustomersCSV(ctx context.Context, filePath string) (metrifox.Object, error) {
	return c.Customers().UploadCSV(ctx, filePath)
}
