// Package metrifox provides types, interfaces, and helpers for working with the
// Metrifox metering and billing API.
//
// # Overview
//
// The metrifox package defines the client interfaces (CustomersClient,
// UsagesClient, CheckoutClient), the request payload types, the Config used to
// build a client, and the error types returned by every operation. A concrete
// implementation is provided by the mfclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/metrifox/metrifox-go/pkg/metrifox"
//	  "github.com/metrifox/metrifox-go/pkg/mfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := mfclient.New(ctx, &metrifox.Config{APIKey: "mfx_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  access, err := cli.CheckAccess(ctx, metrifox.AccessRequest{
//	    FeatureKey:  "premium_feature",
//	    CustomerKey: "cust-1",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = access["data"]
//	}
//
// # Payloads
//
// Operations that take a payload accept a map with string keys, a struct
// (fields are matched by json tag, then by field name), a pointer to either,
// or any value implementing FieldReader. Responses are returned as Object, the
// decoded JSON object, without reshaping.
//
// # Errors
//
// Failures are reported as *ConfigurationError (missing API key),
// *ArgumentError (invalid input, detected before any request is sent),
// *TransportError (network failure) or *APIError (non-2xx status or an
// undecodable body). Helpers such as IsNotFound and IsUnauthorized branch on
// common statuses.
//
// # Interceptors
//
// Config.RequestInterceptors and Config.ResponseInterceptors observe every
// request. LoggingInterceptor, HeaderInterceptor, RequestIDInterceptor and
// MetricsCollector cover the usual cases.
package metrifox
