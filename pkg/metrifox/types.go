package metrifox

import (
	"time"
)

// FieldReader lets any value act as a request payload. Field returns the value
// stored under a snake_case key such as "customer_key" and whether it is present.
type FieldReader interface {
	Field(key string) (interface{}, bool)
}

// AccessRequest is the payload for UsagesClient.CheckAccess.
type AccessRequest struct {
	FeatureKey  string `json:"feature_key"`
	CustomerKey string `json:"customer_key"`
}

// UsageEventRequest is the payload for UsagesClient.RecordUsage.
//
// Amount defaults to 1 when zero. Empty strings and nil pointers are not sent.
// Metadata is always sent, as {} when nil.
type UsageEventRequest struct {
	CustomerKey string                 `json:"customer_key"`
	EventName   string                 `json:"event_name,omitempty"`
	FeatureKey  string                 `json:"feature_key,omitempty"`
	Amount      int                    `json:"amount,omitempty"`
	CreditUsed  *float64               `json:"credit_used,omitempty"`
	EventID     string                 `json:"event_id,omitempty"`
	Timestamp   *time.Time             `json:"timestamp,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// CheckoutConfig is the payload for CheckoutClient.URL and ComposeURL.
type CheckoutConfig struct {
	OfferingKey     string `json:"offering_key"`
	BillingInterval string `json:"billing_interval,omitempty"`
	CustomerKey     string `json:"customer_key,omitempty"`
}

// CustomerListParams filters and paginates CustomersClient.List.
type CustomerListParams struct {
	Page         int    `json:"page,omitempty"`
	PerPage      int    `json:"per_page,omitempty"`
	SearchTerm   string `json:"search_term,omitempty"`
	CustomerType string `json:"customer_type,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
}

// Customer types accepted by the backend.
const (
	CustomerTypeBusiness   = "BUSINESS"
	CustomerTypeIndividual = "INDIVIDUAL"
)

// CustomerRequest is the payload for CustomersClient.Create and Update.
//
// Every field is optional; nil fields are omitted and set fields are sent as
// given, including empty strings, false and empty (non-nil) collections. The
// server owns validation.
type CustomerRequest struct {
	// Core identity
	CustomerKey  *string `json:"customer_key,omitempty"`
	CustomerType *string `json:"customer_type,omitempty"`
	PrimaryEmail *string `json:"primary_email,omitempty"`
	PrimaryPhone *string `json:"primary_phone,omitempty"`

	// Business attributes
	LegalName               *string `json:"legal_name,omitempty"`
	DisplayName             *string `json:"display_name,omitempty"`
	LegalNumber             *string `json:"legal_number,omitempty"`
	TaxIdentificationNumber *string `json:"tax_identification_number,omitempty"`
	LogoURL                 *string `json:"logo_url,omitempty"`
	WebsiteURL              *string `json:"website_url,omitempty"`
	AccountManager          *string `json:"account_manager,omitempty"`

	// Individual attributes
	FirstName    *string `json:"first_name,omitempty"`
	MiddleName   *string `json:"middle_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	DateOfBirth  *string `json:"date_of_birth,omitempty"`
	BillingEmail *string `json:"billing_email,omitempty"`

	// Preferences
	Timezone  *string `json:"timezone,omitempty"`
	Language  *string `json:"language,omitempty"`
	Currency  *string `json:"currency,omitempty"`
	TaxStatus *string `json:"tax_status,omitempty"`

	// Primary address
	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	Country      *string `json:"country,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`

	// Shipping address
	ShippingAddressLine1 *string `json:"shipping_address_line1,omitempty"`
	ShippingAddressLine2 *string `json:"shipping_address_line2,omitempty"`
	ShippingCity         *string `json:"shipping_city,omitempty"`
	ShippingState        *string `json:"shipping_state,omitempty"`
	ShippingCountry      *string `json:"shipping_country,omitempty"`
	ShippingZipCode      *string `json:"shipping_zip_code,omitempty"`

	// Nested collections
	BillingConfiguration *BillingConfiguration  `json:"billing_configuration,omitempty"`
	TaxIdentifications   []TaxIdentification    `json:"tax_identifications"`
	ContactPeople        []ContactPerson        `json:"contact_people"`
	PaymentTerms         []PaymentTerm          `json:"payment_terms"`
	EmailAddresses       []EmailAddress         `json:"email_addresses"`
	PhoneNumbers         []PhoneNumber          `json:"phone_numbers"`
	Metadata             map[string]interface{} `json:"metadata"`
}

// BillingConfiguration holds a customer's billing preferences.
type BillingConfiguration struct {
	PreferredPaymentGateway *string `json:"preferred_payment_gateway,omitempty"`
	PreferredPaymentMethod  *string `json:"preferred_payment_method,omitempty"`
	BillingEmail            *string `json:"billing_email,omitempty"`
	BillingAddress          *string `json:"billing_address,omitempty"`
	PaymentReminderDays     *int    `json:"payment_reminder_days"`
}

// TaxIdentification is one tax registration of a customer.
type TaxIdentification struct {
	Type    string `json:"type"`
	Number  string `json:"number"`
	Country string `json:"country,omitempty"`
}

// ContactPerson is a named contact at a business customer.
type ContactPerson struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	Designation  string `json:"designation,omitempty"`
	Department   string `json:"department,omitempty"`
	IsPrimary    bool   `json:"is_primary"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// PaymentTerm describes when invoices fall due.
type PaymentTerm struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EmailAddress is an additional customer email.
type EmailAddress struct {
	Email     string `json:"email"`
	IsPrimary bool   `json:"is_primary"`
}

// PhoneNumber is an additional customer phone number.
type PhoneNumber struct {
	PhoneNumber string `json:"phone_number"`
	CountryCode string `json:"country_code,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// Float64 returns a pointer to f.
func Float64(f float64) *float64 {
	return &f
}

// Time returns a pointer to t.
func Time(t time.Time) *time.Time {
	return &t
}
