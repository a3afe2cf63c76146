// ABOUTME: Configuration for the Inoreader client loaded from env or HCL files
// ABOUTME: Validates credential presence before a client can be constructed

package inoreader

import (
	"fmt"
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/lexlapax/go-llms/pkg/errors"
)

// Config holds the Inoreader session credentials and operational limits.
// Credentials are immutable for the lifetime of the process.
type Config struct {
	// BaseURL is the root of the reader API.
	BaseURL string `hcl:"base_url" env:"BASE_URL" default:"https://www.inoreader.com/reader/api/0"`

	// AuthURL is the ClientLogin endpoint. It lives outside the reader API
	// root, so it is configured separately from BaseURL.
	AuthURL string `hcl:"auth_url" env:"AUTH_URL" default:"https://www.inoreader.com/accounts/ClientLogin"`

	AppID    string `hcl:"app_id" env:"APP_ID"`
	AppKey   string `hcl:"app_key" env:"APP_KEY"`
	Username string `hcl:"username" env:"USERNAME"`
	Password string `hcl:"password" env:"PASSWORD"`

	// CacheTTL bounds how long a fetched subscription list is reused.
	CacheTTL time.Duration `hcl:"cache_ttl" env:"CACHE_TTL" default:"5m"`

	// RequestTimeout is the overall per-request deadline.
	RequestTimeout time.Duration `hcl:"request_timeout" env:"REQUEST_TIMEOUT" default:"30s"`

	// MaxArticles caps the item count requested from stream endpoints.
	MaxArticles int `hcl:"max_articles" env:"MAX_ARTICLES" default:"100"`
}

// LoadConfig reads configuration from the environment (prefix INOREADER_)
// and optional config.hcl / config.local.hcl files, then validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "INOREADER",
		SkipFlags: true,
		Files:     []string{"./config.hcl", "./config.local.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "failed to load inoreader configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing required settings. Credentials must be present
// before a client is constructible; their absence is a startup failure, not
// a per-call error.
func (c Config) Validate() error {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, "base_url")
	}
	if c.AuthURL == "" {
		missing = append(missing, "auth_url")
	}
	if c.AppID == "" {
		missing = append(missing, "app_id")
	}
	if c.AppKey == "" {
		missing = append(missing, "app_key")
	}
	if c.Username == "" {
		missing = append(missing, "username")
	}
	if c.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return errors.NewErrorWithCode("inoreader_invalid_config",
			fmt.Sprintf("missing required configuration: %s", strings.Join(missing, ", "))).SetFatal(true)
	}
	return nil
}
