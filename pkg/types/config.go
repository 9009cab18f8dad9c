package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBaseURL is the exchangerate-api v4 endpoint. The base currency
	// code is appended to it verbatim.
	DefaultBaseURL = "https://api.exchangerate-api.com/v4/latest/"

	// DefaultAPIKey is the placeholder used when no key is configured.
	DefaultAPIKey = "YOUR_API_KEY_HERE"

	// DefaultLocale is the BCP 47 tag used to format amounts.
	DefaultLocale = "en-US"

	DefaultUserAgent = "fx-convert/0.1"
)

// HTTPConfig holds settings for the exchange-rate HTTP client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero waits for the transport
	// indefinitely.
	Timeout time.Duration `json:"timeout" yaml:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with rate requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Config is the immutable configuration handed to the converter at
// construction time.
type Config struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the rate endpoint prefix; requests go to BaseURL + code.
	BaseURL string `json:"base_url" yaml:"base_url" validate:"required,url"`

	// APIKey is stored for the exchange-rate account but is not sent with
	// requests: the v4 endpoint takes none.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Locale selects number grouping and currency symbols in results.
	Locale string `json:"locale" yaml:"locale" validate:"required,bcp47_language_tag"`

	// CurrencyDisplay is "code" (EUR 9.20) or "symbol" (€ 9.20).
	CurrencyDisplay string `json:"currency_display" yaml:"currency_display" validate:"oneof=code symbol"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HTTPConfig: HTTPConfig{
			UserAgent: DefaultUserAgent,
		},
		BaseURL:         DefaultBaseURL,
		APIKey:          DefaultAPIKey,
		Locale:          DefaultLocale,
		CurrencyDisplay: "code",
	}
}

var validate = validator.New()

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
