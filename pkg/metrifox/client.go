package metrifox

import (
	"context"
	"net/http"
	"time"
)

// Object is a decoded JSON object, returned verbatim from the backend.
type Object = map[string]interface{}

// CustomersClient manages customer records.
type CustomersClient interface {
	// Create posts a new customer. payload is a map, a struct such as
	// CustomerRequest, or a FieldReader.
	Create(ctx context.Context, payload interface{}) (Object, error)
	// Update patches the customer identified by customerKey.
	Update(ctx context.Context, customerKey string, payload interface{}) (Object, error)
	Get(ctx context.Context, customerKey string) (Object, error)
	GetDetails(ctx context.Context, customerKey string) (Object, error)
	// HasActiveSubscription returns data.has_active_subscription, false when absent.
	HasActiveSubscription(ctx context.Context, customerKey string) (bool, error)
	Delete(ctx context.Context, customerKey string) (Object, error)
	// List forwards page, per_page, search_term, customer_type and
	// date_created from params; other keys are dropped. params may be nil.
	List(ctx context.Context, params interface{}) (Object, error)
	// UploadCSV sends the file at filePath as a multipart upload.
	UploadCSV(ctx context.Context, filePath string) (Object, error)
}

// UsagesClient checks entitlements and records metered usage.
type UsagesClient interface {
	// CheckAccess reads feature_key and customer_key from payload. The
	// response is returned as-is; can_access is not interpreted.
	CheckAccess(ctx context.Context, payload interface{}) (Object, error)
	// RecordUsage posts a usage event built from payload.
	RecordUsage(ctx context.Context, payload interface{}) (Object, error)
	// GetTenantID returns data.tenant_id, "" when absent.
	GetTenantID(ctx context.Context) (string, error)
	// GetCheckoutKey returns data.checkout_username, "" when absent.
	GetCheckoutKey(ctx context.Context) (string, error)
}

// CheckoutClient builds hosted-checkout URLs.
type CheckoutClient interface {
	// URL asks the backend to generate a checkout URL for the offering_key,
	// billing_interval and customer_key found in config.
	URL(ctx context.Context, config interface{}) (string, error)
	// ComposeURL builds the URL locally from the tenant checkout username and
	// WebAppBaseURL.
	ComposeURL(ctx context.Context, config interface{}) (string, error)
}

// ResourceClients provides access to the resource modules. Each accessor
// returns the same instance for the lifetime of the client.
type ResourceClients interface {
	Customers() CustomersClient
	Usages() UsagesClient
	Checkout() CheckoutClient
}

// Shortcuts mirror the most common module operations on the client itself.
type Shortcuts interface {
	CheckAccess(ctx context.Context, payload interface{}) (Object, error)
	RecordUsage(ctx context.Context, payload interface{}) (Object, error)
	GetTenantID(ctx context.Context) (string, error)
	GetCheckoutKey(ctx context.Context) (string, error)
	CreateCustomer(ctx context.Context, payload interface{}) (Object, error)
	UpdateCustomer(ctx context.Context, customerKey string, payload interface{}) (Object, error)
	GetCustomer(ctx context.Context, customerKey string) (Object, error)
	GetCustomerDetails(ctx context.Context, customerKey string) (Object, error)
	DeleteCustomer(ctx context.Context, customerKey string) (Object, error)
	ListCustomers(ctx context.Context, params interface{}) (Object, error)
	UploadCustomersCSV(ctx context.Context, filePath string) (Object, error)
}

// Client is the Metrifox API client. It is safe for concurrent use.
type Client interface {
	ResourceClients
	Shortcuts

	// SetAPIKey replaces the API key used by subsequent calls.
	SetAPIKey(apiKey string)
	// SetBaseURL replaces the primary API root. An invalid URL is an ArgumentError.
	SetBaseURL(baseURL string) error
	// Settings returns a snapshot of the credentials and URLs in use.
	Settings() Settings
}

// Settings is a point-in-time view of the client's credentials and URLs.
type Settings struct {
	APIKey              string
	BaseURL             string
	WebAppBaseURL       string
	MeterServiceBaseURL string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a metrifox.Client.
//
// # Resolution
//
// mfclient.New fills unset fields in this order: the process environment
// (METRIFOX_API_KEY, METRIFOX_BASE_URL, METRIFOX_WEB_APP_BASE_URL,
// METRIFOX_METER_SERVICE_BASE_URL, METRIFOX_HTTP_TIMEOUT), optionally seeded
// once per process from .env.local or .env, then built-in defaults.
//
// # Base URLs
//
// BaseURL and MeterServiceBaseURL are roots for relative path joining and are
// normalised to end with "/". WebAppBaseURL is normalised to have no trailing
// slash. When MeterServiceBaseURL is empty, metering endpoints use BaseURL.
//
// # Timeouts and retries
//
// Every call takes a context; its deadline applies to the single HTTP round
// trip. HTTPTimeout bounds each request as well. The client never retries.
type Config struct {
	// APIKey is sent as the x-api-key header.
	APIKey string `mapstructure:"api_key"`
	// BaseURL is the primary API root.
	BaseURL string `mapstructure:"base_url"`
	// WebAppBaseURL is the hosted checkout origin used by ComposeURL.
	WebAppBaseURL string `mapstructure:"web_app_base_url"`
	// MeterServiceBaseURL hosts usage/access and usage/events when set.
	MeterServiceBaseURL string `mapstructure:"meter_service_base_url"`

	// HTTPTimeout is the per-request timeout. Zero selects the default (30s).
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	// HTTPClient replaces the underlying HTTP client. HTTPTimeout is ignored when set.
	HTTPClient *http.Client `mapstructure:"-"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
	// Debug enables request/response logging through Logger.
	Debug bool `mapstructure:"debug"`
	// Logger receives transport logs. Nil disables logging.
	Logger Logger `mapstructure:"-"`

	// RequestInterceptors run, in order, before each request is sent.
	RequestInterceptors []RequestInterceptor `mapstructure:"-"`
	// ResponseInterceptors run, in order, after each response is read.
	ResponseInterceptors []ResponseInterceptor `mapstructure:"-"`
}
