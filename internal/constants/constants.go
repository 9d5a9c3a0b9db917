package constants

import "time"

// Default service locations.
const (
	// DefaultBaseURL is the primary API root. It always ends with a slash.
	DefaultBaseURL = "https://api.metrifox.com/api/v1/"

	// DefaultWebAppBaseURL is the hosted checkout origin. It never ends with a slash.
	DefaultWebAppBaseURL = "https://app.metrifox.com"
)

// Environment variables consulted when an option is not set explicitly.
const (
	// EnvAPIKey supplies the API key.
	EnvAPIKey = "METRIFOX_API_KEY"

	// EnvBaseURL overrides the primary API root.
	EnvBaseURL = "METRIFOX_BASE_URL"

	// EnvWebAppBaseURL overrides the hosted checkout origin.
	EnvWebAppBaseURL = "METRIFOX_WEB_APP_BASE_URL"

	// EnvMeterServiceBaseURL points metering endpoints at a separate service.
	EnvMeterServiceBaseURL = "METRIFOX_METER_SERVICE_BASE_URL"

	// EnvHTTPTimeout overrides the per-request timeout (Go duration syntax).
	EnvHTTPTimeout = "METRIFOX_HTTP_TIMEOUT"

	// EnvDebug enables transport debug logging.
	EnvDebug = "METRIFOX_DEBUG"

	// EnvPrefix is the viper prefix for the variables above.
	EnvPrefix = "METRIFOX"
)

// DotenvFiles are probed in order; only the first one found is read.
var DotenvFiles = []string{".env.local", ".env"}

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// TLSHandshakeTimeout bounds the TLS handshake on HTTPS endpoints.
	TLSHandshakeTimeout = 10 * time.Second
)

// Header names and values.
const (
	HeaderAPIKey      = "x-api-key"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"

	ContentTypeJSON = "application/json"

	// DefaultUserAgent is sent unless the caller configures one.
	DefaultUserAgent = "metrifox-go"

	// MaskedSecret replaces credentials in log output.
	MaskedSecret = "***"
)

// Multipart upload.
const (
	// BoundaryPrefix precedes the random part of every multipart boundary.
	BoundaryPrefix = "----WebKitFormBoundary"

	// BoundaryEntropyBytes is the number of random bytes (hex-encoded) in a boundary.
	BoundaryEntropyBytes = 16

	// CSVFieldName is the form field carrying the uploaded file.
	CSVFieldName = "csv"

	// DefaultCSVContentType is used when the file extension maps to no known type.
	DefaultCSVContentType = "text/csv"
)

// Endpoint paths, relative to the selected base URL.
const (
	PathUsageAccess          = "usage/access"
	PathUsageEvents          = "usage/events"
	PathTenantID             = "auth/get-tenant-id"
	PathCheckoutUsername     = "auth/checkout-username"
	PathGenerateCheckoutURL  = "products/offerings/generate-checkout-url"
	PathCustomerNew          = "customers/new"
	PathCustomers            = "customers"
	PathCustomerCSVUpload    = "customers/csv-upload"
	PathCustomerDetails      = "details"
	PathCustomerSubscription = "check-active-subscription"
)

// Error contexts prepended to API error messages.
const (
	ContextCreateCustomer          = "Failed to Create Customer"
	ContextUpdateCustomer          = "Failed to UPDATE Customer"
	ContextDeleteCustomer          = "Failed to DELETE Customer"
	ContextGetCustomer             = "Failed to Fetch Customer"
	ContextGetCustomerDetails      = "Failed to Fetch Customer Details"
	ContextCheckActiveSubscription = "Failed to Check Active Subscription"
	ContextListCustomers           = "Failed to Fetch Customers"
	ContextUploadCSV               = "Failed to upload CSV"
	ContextCheckAccess             = "Failed to check access"
	ContextRecordUsage             = "Failed to record usage"
	ContextGetTenantID             = "Failed to get tenant id"
	ContextGetCheckoutKey          = "Failed to get tenant checkout settings"
	ContextGenerateCheckoutURL     = "Failed to generate checkout URL"
)

// Usage defaults.
const (
	// DefaultUsageAmount is recorded when the caller supplies no amount.
	DefaultUsageAmount = 1
)
