//go:build integration

package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey      string
	FeatureKey  string
	OfferingKey string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:      os.Getenv("METRIFOX_API_KEY"),
		FeatureKey:  os.Getenv("METRIFOX_TEST_FEATURE_KEY"),
		OfferingKey: os.Getenv("METRIFOX_TEST_OFFERING_KEY"),
		Verbose:     os.Getenv("METRIFOX_DEBUG") == "true",
	}
}

// SkipIfNotConfigured skips the test when no live backend is configured
func (c *TestConfig) SkipIfNotConfigured(t *testing.T) {
	t.Helper()

	if c.APIKey == "" {
		t.Skip("METRIFOX_API_KEY not set, skipping integration tests")
	}
}

// GenerateTestName generates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// WriteCustomersCSV writes a one-row customers CSV under dir and returns its path
func WriteCustomersCSV(t *testing.T, dir, customerKey string) string {
	t.Helper()

	path := filepath.Join(dir, "customers.csv")
	content := "customer_key,customer_type,primary_email\n" +
		customerKey + ",INDIVIDUAL," + customerKey + "@example.com\n"

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("writing CSV fixture: %v", err)
	}

	return path
}
