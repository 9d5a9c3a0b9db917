package client_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metrifox/metrifox-go/pkg/metrifox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCustomersClient_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		call        func(ctx context.Context, c metrifox.CustomersClient) error
		method      string
		escapedPath string
	}{
		{
			name: "create",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.Create(ctx, map[string]interface{}{"customer_key": "cust-1"})

				return err
			},
			method:      "POST",
			escapedPath: "/api/v1/customers/new",
		},
		{
			name: "update",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.Update(ctx, "cust-1", map[string]interface{}{"display_name": "Acme"})

				return err
			},
			method:      "PATCH",
			escapedPath: "/api/v1/customers/cust-1",
		},
		{
			name: "get",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.Get(ctx, "cust-1")

				return err
			},
			method:      "GET",
			escapedPath: "/api/v1/customers/cust-1",
		},
		{
			name: "get details",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.GetDetails(ctx, "cust-1")

				return err
			},
			method:      "GET",
			escapedPath: "/api/v1/customers/cust-1/details",
		},
		{
			name: "has active subscription",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.HasActiveSubscription(ctx, "cust-1")

				return err
			},
			method:      "GET",
			escapedPath: "/api/v1/customers/cust-1/check-active-subscription",
		},
		{
			name: "delete",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.Delete(ctx, "cust-1")

				return err
			},
			method:      "DELETE",
			escapedPath: "/api/v1/customers/cust-1",
		},
		{
			name: "list",
			call: func(ctx context.Context, c metrifox.CustomersClient) error {
				_, err := c.List(ctx, nil)

				return err
			},
			method:      "GET",
			escapedPath: "/api/v1/customers",
		},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend(t, http.StatusOK, `{"data":{}}`)
			cli := newTestClient(backend, testAPIKey)

			err := testCase.call(context.Background(), cli.Customers())
			require.NoError(t, err)

			got := backend.last()
			assert.Equal(t, testCase.method, got.Method)
			assert.Equal(t, testCase.escapedPath, got.RawPath)
			assert.Equal(t, testAPIKey, got.APIKey)
			assert.Equal(t, "application/json", got.ContentType)
		})
	}
}

func TestCustomersClient_Create(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusCreated, `{"data":{"customer_key":"cust-1"},"message":"Customer created"}`)
	cli := newTestClient(backend, testAPIKey)

	result, err := cli.Customers().Create(context.Background(), &metrifox.CustomerRequest{
		CustomerKey:  metrifox.String("cust-1"),
		CustomerType: metrifox.String(metrifox.CustomerTypeBusiness),
		PrimaryEmail: metrifox.String("billing@acme.test"),
		LegalName:    metrifox.String("Acme Inc"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Customer created", result["message"])

	assert.JSONEq(t, `{
		"customer_key": "cust-1",
		"customer_type": "BUSINESS",
		"primary_email": "billing@acme.test",
		"legal_name": "Acme Inc"
	}`, string(backend.last().Body))
}

func TestCustomersClient_CreateError(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusBadRequest, `{"errors":{"primary_email":["is invalid"]}}`)
	cli := newTestClient(backend, testAPIKey)

	_, err := cli.CreateCustomer(context.Background(), map[string]interface{}{"customer_key": "c"})
	require.Error(t, err)
	assert.Equal(t, "Failed to Create Customer: 400 Bad Request", err.Error())

	apiErr := &metrifox.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Bad Request", apiErr.Reason)
	assert.Contains(t, string(apiErr.Body), "is invalid")
}

func TestCustomersClient_ErrorContexts(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusNotFound, `{"message":"not found"}`)
	cli := newTestClient(backend, testAPIKey)
	ctx := context.Background()

	_, err := cli.Customers().Update(ctx, "c", map[string]interface{}{})
	assert.EqualError(t, err, "Failed to UPDATE Customer: 404 Not Found")

	_, err = cli.Customers().Get(ctx, "c")
	assert.EqualError(t, err, "Failed to Fetch Customer: 404 Not Found")
	assert.True(t, metrifox.IsNotFound(err))

	_, err = cli.Customers().GetDetails(ctx, "c")
	assert.EqualError(t, err, "Failed to Fetch Customer Details: 404 Not Found")

	_, err = cli.Customers().HasActiveSubscription(ctx, "c")
	assert.EqualError(t, err, "Failed to Check Active Subscription: 404 Not Found")

	_, err = cli.Customers().Delete(ctx, "c")
	assert.EqualError(t, err, "Failed to DELETE Customer: 404 Not Found")

	_, err = cli.Customers().List(ctx, nil)
	assert.EqualError(t, err, "Failed to Fetch Customers: 404 Not Found")
}

func TestCustomersClient_KeyEscaping(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a/b c":          "/api/v1/customers/a%2Fb%20c",
		"..":             "/api/v1/customers/%2E%2E",
		"user@acme.test": "/api/v1/customers/user@acme.test",
		"q?x#y":          "/api/v1/customers/q%3Fx%23y",
		"café":           "/api/v1/customers/caf%C3%A9",
	}

	for key, expected := range tests {
		key, expected := key, expected

		t.Run(key, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend(t, http.StatusOK, `{}`)
			cli := newTestClient(backend, testAPIKey)

			_, err := cli.GetCustomer(context.Background(), key)
			require.NoError(t, err)
			assert.Equal(t, expected, backend.last().RawPath)
		})
	}
}

func TestCustomersClient_EmptyKey(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, testAPIKey)

	_, err := cli.Customers().Get(context.Background(), "")
	require.Error(t, err)
	assert.True(t, metrifox.IsArgumentError(err))
	assert.ErrorIs(t, err, metrifox.ErrCustomerKeyRequired)
	assert.Equal(t, 0, backend.hits())
}

func TestCustomersClient_HasActiveSubscription(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{"data":{"has_active_subscription":true}}`)
	cli := newTestClient(backend, testAPIKey)

	active, err := cli.Customers().HasActiveSubscription(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.True(t, active)

	backend.respond(http.StatusOK, `{"data":{}}`)

	active, err = cli.Customers().HasActiveSubscription(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestCustomersClient_List(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{"data":[],"meta":{"page":2}}`)
	cli := newTestClient(backend, testAPIKey)

	result, err := cli.ListCustomers(context.Background(), map[string]interface{}{
		"page":          2,
		"per_page":      50,
		"search_term":   "acme corp",
		"customer_type": "BUSINESS",
		"date_created":  "2025-01-01",
		"sort":          "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"page": float64(2)}, result["meta"])
	assert.Equal(t,
		"page=2&per_page=50&search_term=acme+corp&customer_type=BUSINESS&date_created=2025-01-01",
		backend.last().RawQuery)

	_, err = cli.ListCustomers(context.Background(), map[string]interface{}{"sort": "desc"})
	require.NoError(t, err)
	assert.Empty(t, backend.last().RawQuery)

	_, err = cli.ListCustomers(context.Background(), metrifox.CustomerListParams{Page: 1, SearchTerm: "x"})
	require.NoError(t, err)
	assert.Equal(t, "page=1&search_term=x", backend.last().RawQuery)
}

func TestCustomersClient_UploadCSV(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{"data":{"total":1}}`)
	cli := newTestClient(backend, testAPIKey)

	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte("customer_key\ncust-1\n"), 0o600))

	result, err := cli.UploadCustomersCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"total": float64(1)}, result["data"])

	got := backend.last()
	assert.Equal(t, "POST", got.Method)
	assert.Equal(t, "/api/v1/customers/csv-upload", got.Path)
	assert.True(t, strings.HasPrefix(got.ContentType, "multipart/form-data; boundary=----WebKitFormBoundary"))
	assert.Contains(t, string(got.Body), `name="csv"; filename="customers.csv"`)
	assert.Contains(t, string(got.Body), "cust-1")
}

func TestCustomersClient_UploadCSVMissingFile(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, testAPIKey)

	_, err := cli.Customers().UploadCSV(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, metrifox.IsArgumentError(err))
	assert.ErrorIs(t, err, metrifox.ErrFileNotFound)
	assert.Equal(t, 0, backend.hits())
}

func TestCustomersClient_InvalidPayload(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, testAPIKey)

	_, err := cli.Customers().Create(context.Background(), "not a map")
	require.Error(t, err)
	assert.True(t, metrifox.IsArgumentError(err))
	assert.Equal(t, 0, backend.hits())
}
