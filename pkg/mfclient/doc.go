// Package mfclient is the entry point for constructing a Metrifox API client
// that implements the metrifox.Client interface.
//
// It layers configuration resolution (explicit values, environment, .env
// files, config files), the HTTP transport and the shared credential store on
// top of the interfaces and types defined in the metrifox package.
//
// Quick start
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
//
//	  // Everything from METRIFOX_* environment variables:
//	  cli, err := mfclient.NewFromEnv(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or explicitly:
//	  cli, err = mfclient.New(ctx, &metrifox.Config{
//	    APIKey:              "mfx_...",
//	    MeterServiceBaseURL: "https://meter.example.com/",
//	    Debug:               true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.RecordUsage(ctx, metrifox.UsageEventRequest{
//	    CustomerKey: "cust-1",
//	    EventName:   "api_call",
//	  })
//	  if err != nil { log.Fatal(err) }
//	}
//
// # Environment
//
// METRIFOX_API_KEY, METRIFOX_BASE_URL, METRIFOX_WEB_APP_BASE_URL,
// METRIFOX_METER_SERVICE_BASE_URL, METRIFOX_HTTP_TIMEOUT and METRIFOX_DEBUG are
// read when the matching Config field is empty. The first of .env.local or
// .env found in the working directory is loaded once per process, without
// overriding variables that are already set.
//
// # Helpers
//
// NewWithAPIKey, NewFromEnv and NewFromFile wrap New with the appropriate
// configuration.
package mfclient
