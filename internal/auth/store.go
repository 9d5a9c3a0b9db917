// Package auth holds the API key and service URLs shared by every request.
package auth

import (
	"sync"

	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// Store is the mutable credential and URL state of a client. Readers take a
// snapshot, so a setter never changes a request already being dispatched.
type Store struct {
	mutex    sync.RWMutex
	settings metrifox.Settings
}

// NewStore creates a store from already normalised settings.
func NewStore(settings metrifox.Settings) *Store {
	return &Store{settings: settings}
}

// Snapshot returns the current settings.
func (s *Store) Snapshot() metrifox.Settings {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.settings
}

// Credentials returns the current settings, or a ConfigurationError when no
// API key is set.
func (s *Store) Credentials() (metrifox.Settings, error) {
	settings := s.Snapshot()
	if settings.APIKey == "" {
		return settings, &metrifox.ConfigurationError{
			Message: metrifox.ErrAPIKeyRequired.Error(),
			Err:     metrifox.ErrAPIKeyRequired,
		}
	}

	return settings, nil
}

// SetAPIKey replaces the API key.
func (s *Store) SetAPIKey(apiKey string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.settings.APIKey = apiKey
}

// SetBaseURL validates and replaces the primary API root.
func (s *Store) SetBaseURL(baseURL string) error {
	normalized, err := mfhttp.NormalizeBaseURL(baseURL)
	if err != nil {
		return &metrifox.ArgumentError{
			Message: err.Error(),
			Err:     err,
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.settings.BaseURL = normalized

	return nil
}

// MeterBaseURL returns the metering root of settings, falling back to the
// primary API root.
func MeterBaseURL(settings metrifox.Settings) string {
	if settings.MeterServiceBaseURL != "" {
		return settings.MeterServiceBaseURL
	}

	return settings.BaseURL
}
