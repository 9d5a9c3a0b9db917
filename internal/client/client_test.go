package client_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/metrifox/metrifox-go/pkg/metrifox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{"data":{}}`)
	cli := newTestClient(backend, "")
	ctx := context.Background()

	operations := map[string]func() error{
		"check access": func() error {
			_, err := cli.CheckAccess(ctx, metrifox.AccessRequest{FeatureKey: "f", CustomerKey: "c"})

			return err
		},
		"record usage": func() error {
			_, err := cli.RecordUsage(ctx, metrifox.UsageEventRequest{CustomerKey: "c"})

			return err
		},
		"tenant id": func() error {
			_, err := cli.GetTenantID(ctx)

			return err
		},
		"checkout key": func() error {
			_, err := cli.GetCheckoutKey(ctx)

			return err
		},
		"create customer": func() error {
			_, err := cli.CreateCustomer(ctx, map[string]interface{}{})

			return err
		},
		"update customer": func() error {
			_, err := cli.UpdateCustomer(ctx, "", nil)

			return err
		},
		"get customer": func() error {
			_, err := cli.GetCustomer(ctx, "c")

			return err
		},
		"customer details": func() error {
			_, err := cli.GetCustomerDetails(ctx, "c")

			return err
		},
		"active subscription": func() error {
			_, err := cli.Customers().HasActiveSubscription(ctx, "c")

			return err
		},
		"delete customer": func() error {
			_, err := cli.DeleteCustomer(ctx, "c")

			return err
		},
		"list customers": func() error {
			_, err := cli.ListCustomers(ctx, nil)

			return err
		},
		"upload csv": func() error {
			_, err := cli.UploadCustomersCSV(ctx, "/does/not/exist.csv")

			return err
		},
		"checkout url": func() error {
			_, err := cli.Checkout().URL(ctx, nil)

			return err
		},
		"compose checkout url": func() error {
			_, err := cli.Checkout().ComposeURL(ctx, nil)

			return err
		},
	}

	for name, operation := range operations {
		err := operation()
		require.Error(t, err, name)
		assert.True(t, metrifox.IsConfigurationError(err), name)
		assert.ErrorIs(t, err, metrifox.ErrAPIKeyRequired, name)
	}

	assert.Equal(t, 0, backend.hits())
}

func TestClient_LazyModules(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, testAPIKey)

	assert.Same(t, cli.Customers(), cli.Customers())
	assert.Same(t, cli.Usages(), cli.Usages())
	assert.Same(t, cli.Checkout(), cli.Checkout())
	assert.Equal(t, 0, backend.hits())
}

func TestClient_SetAPIKey(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, "")

	_, err := cli.GetCustomer(context.Background(), "c")
	require.Error(t, err)

	cli.SetAPIKey("rotated-key")
	assert.Equal(t, "rotated-key", cli.Settings().APIKey)

	_, err = cli.GetCustomer(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "rotated-key", backend.last().APIKey)
}

func TestClient_SetBaseURL(t *testing.T) {
	t.Parallel()

	first := newFakeBackend(t, http.StatusOK, `{}`)
	second := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(first, testAPIKey)

	require.NoError(t, cli.SetBaseURL(second.server.URL+"/v2"))
	assert.Equal(t, second.server.URL+"/v2/", cli.Settings().BaseURL)

	_, err := cli.GetCustomer(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, 0, first.hits())
	assert.Equal(t, "/v2/customers/c", second.last().Path)

	err = cli.SetBaseURL("ftp://example.com")
	require.Error(t, err)
	assert.True(t, metrifox.IsArgumentError(err))
	assert.ErrorIs(t, err, metrifox.ErrInvalidBaseURL)
	assert.Equal(t, second.server.URL+"/v2/", cli.Settings().BaseURL)
}

func TestClient_Settings(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{}`)
	cli := newTestClient(backend, testAPIKey)

	settings := cli.Settings()
	assert.Equal(t, testAPIKey, settings.APIKey)
	assert.Equal(t, backend.baseURL(), settings.BaseURL)
	assert.Equal(t, "https://app.metrifox.test", settings.WebAppBaseURL)
	assert.Empty(t, settings.MeterServiceBaseURL)
}

func TestClient_InvalidJSON(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `<html>maintenance</html>`)
	cli := newTestClient(backend, testAPIKey)

	_, err := cli.GetCustomer(context.Background(), "c")
	require.Error(t, err)
	assert.True(t, metrifox.IsAPIError(err))
	assert.Contains(t, err.Error(), "Invalid JSON response: ")
}

func TestClient_Concurrency(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend(t, http.StatusOK, `{"data":{"can_access":true}}`)
	cli := newTestClient(backend, testAPIKey)

	const workers = 16

	var wg sync.WaitGroup

	errs := make(chan error, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			_, err := cli.CheckAccess(context.Background(), metrifox.AccessRequest{FeatureKey: "f", CustomerKey: "c"})
			errs <- err
		}()

		go func() {
			defer wg.Done()

			cli.SetAPIKey(testAPIKey)
			_ = cli.Settings()
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, workers, backend.hits())
}
