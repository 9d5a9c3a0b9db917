package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/metrifox/metrifox-go/internal/constants"
	mfhttp "github.com/metrifox/metrifox-go/internal/http"
	"github.com/metrifox/metrifox-go/pkg/metrifox"
)

// Option keys, shared by config files and the environment bindings.
const (
	KeyAPIKey              = "api_key"
	KeyBaseURL             = "base_url"
	KeyWebAppBaseURL       = "web_app_base_url"
	KeyMeterServiceBaseURL = "meter_service_base_url"
	KeyHTTPTimeout         = "http_timeout"
	KeyUserAgent           = "user_agent"
	KeyDebug               = "debug"
)

// Resolve fills the options cfg leaves unset from the environment, the config
// file at path (when path is non-empty) and the defaults, in that order of
// precedence, and normalises the URLs. cfg itself is not modified.
func Resolve(cfg *metrifox.Config, path string) (*metrifox.Config, error) {
	if cfg == nil {
		cfg = &metrifox.Config{}
	}

	v := viper.New()

	v.SetDefault(KeyBaseURL, constants.DefaultBaseURL)
	v.SetDefault(KeyWebAppBaseURL, constants.DefaultWebAppBaseURL)
	v.SetDefault(KeyHTTPTimeout, constants.DefaultHTTPTimeout)
	v.SetDefault(KeyUserAgent, constants.DefaultUserAgent)

	bindings := map[string]string{
		KeyAPIKey:              constants.EnvAPIKey,
		KeyBaseURL:             constants.EnvBaseURL,
		KeyWebAppBaseURL:       constants.EnvWebAppBaseURL,
		KeyMeterServiceBaseURL: constants.EnvMeterServiceBaseURL,
		KeyHTTPTimeout:         constants.EnvHTTPTimeout,
		KeyDebug:               constants.EnvDebug,
	}

	for key, env := range bindings {
		err := v.BindEnv(key, env)
		if err != nil {
			return nil, &metrifox.ConfigurationError{
				Message: fmt.Sprintf("binding %s: %v", env, err),
				Err:     err,
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, &metrifox.ConfigurationError{
				Message: fmt.Sprintf("reading config file %s: %v", path, err),
				Err:     err,
			}
		}
	}

	applyExplicit(v, cfg)

	resolved := &metrifox.Config{}

	err := v.Unmarshal(resolved)
	if err != nil {
		return nil, &metrifox.ConfigurationError{
			Message: fmt.Sprintf("decoding configuration: %v", err),
			Err:     err,
		}
	}

	err = normalizeURLs(resolved)
	if err != nil {
		return nil, err
	}

	if resolved.HTTPTimeout <= 0 {
		resolved.HTTPTimeout = constants.DefaultHTTPTimeout
	}

	resolved.HTTPClient = cfg.HTTPClient
	resolved.Logger = cfg.Logger
	resolved.RequestInterceptors = cfg.RequestInterceptors
	resolved.ResponseInterceptors = cfg.ResponseInterceptors

	return resolved, nil
}

// Settings extracts the credential and URL part of a resolved config.
func Settings(cfg *metrifox.Config) metrifox.Settings {
	return metrifox.Settings{
		APIKey:              cfg.APIKey,
		BaseURL:             cfg.BaseURL,
		WebAppBaseURL:       cfg.WebAppBaseURL,
		MeterServiceBaseURL: cfg.MeterServiceBaseURL,
	}
}

func applyExplicit(v *viper.Viper, cfg *metrifox.Config) {
	explicit := map[string]string{
		KeyAPIKey:              cfg.APIKey,
		KeyBaseURL:             cfg.BaseURL,
		KeyWebAppBaseURL:       cfg.WebAppBaseURL,
		KeyMeterServiceBaseURL: cfg.MeterServiceBaseURL,
		KeyUserAgent:           cfg.UserAgent,
	}

	for key, value := range explicit {
		if value != "" {
			v.Set(key, value)
		}
	}

	if cfg.HTTPTimeout > 0 {
		v.Set(KeyHTTPTimeout, cfg.HTTPTimeout)
	}

	if cfg.Debug {
		v.Set(KeyDebug, true)
	}
}

func normalizeURLs(cfg *metrifox.Config) error {
	baseURL, err := mfhttp.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return invalidURL(KeyBaseURL, err)
	}

	cfg.BaseURL = baseURL

	webAppBaseURL, err := mfhttp.NormalizeOrigin(cfg.WebAppBaseURL)
	if err != nil {
		return invalidURL(KeyWebAppBaseURL, err)
	}

	cfg.WebAppBaseURL = webAppBaseURL

	if cfg.MeterServiceBaseURL != "" {
		meterBaseURL, err := mfhttp.NormalizeBaseURL(cfg.MeterServiceBaseURL)
		if err != nil {
			return invalidURL(KeyMeterServiceBaseURL, err)
		}

		cfg.MeterServiceBaseURL = meterBaseURL
	}

	return nil
}

func invalidURL(key string, err error) error {
	return &metrifox.ConfigurationError{
		Message: fmt.Sprintf("%s: %v", key, err),
		Err:     err,
	}
}
