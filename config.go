package bistro

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bistroconsulting/bistro/content"
)

// SiteConfig holds all configuration for a bistro site.
type SiteConfig struct {
	Name        string `mapstructure:"name" validate:"required"`             // Site name (default "Bistro")
	URL         string `mapstructure:"url" validate:"required,url"`          // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"`                          // Meta description fallback
	Addr        string `mapstructure:"addr" validate:"required"`             // Listen address (default ":3000")
	StaticDir   string `mapstructure:"static_dir"`                           // User static assets served under /public (default "public")
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,level"` // zerolog level (default "info")

	DatabasePath     string `mapstructure:"database_path" validate:"required"` // SQLite path (default "data/bistro.db")
	AnalyticsEnabled bool   `mapstructure:"analytics_enabled"`                 // Record page views (default true)

	// Admin is enabled when AdminPassword is set; SessionSecret is then
	// required as well.
	AdminPassword string `mapstructure:"admin_password"`
	SessionSecret string `mapstructure:"session_secret" validate:"required_with=AdminPassword,omitempty,min=16"`
	CookieSecure  bool   `mapstructure:"cookie_secure"` // Set true for HTTPS

	PageCacheTTL time.Duration `mapstructure:"page_cache_ttl"` // Rendered page TTL (default 5min, negative disables)

	ContentFile     string `mapstructure:"content_file"`      // Content override; empty uses the embedded content
	ContactWidgetID string `mapstructure:"contact_widget_id"` // Form widget id; empty renders the native form
}

// defaults are shared by setDefaults and the viper loader.
var defaults = map[string]any{
	"name":              "Bistro",
	"url":               "http://localhost:3000",
	"description":       "Restaurant growth consulting: marketing, operations and technology for independent restaurants.",
	"addr":              ":3000",
	"static_dir":        "public",
	"log_level":         "info",
	"database_path":     "data/bistro.db",
	"analytics_enabled": true,
	"admin_password":    "",
	"session_secret":    "",
	"cookie_secure":     false,
	"page_cache_ttl":    5 * time.Minute,
	"content_file":      "",
	"contact_widget_id": "",
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = defaults["name"].(string)
	}
	if c.URL == "" {
		c.URL = defaults["url"].(string)
	}
	if c.Addr == "" {
		c.Addr = defaults["addr"].(string)
	}
	if c.StaticDir == "" {
		c.StaticDir = defaults["static_dir"].(string)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults["log_level"].(string)
	}
	if c.DatabasePath == "" {
		c.DatabasePath = defaults["database_path"].(string)
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = defaults["page_cache_ttl"].(time.Duration)
	}
}

// AdminEnabled reports whether the /admin/ routes are mounted.
func (c SiteConfig) AdminEnabled() bool {
	return c.AdminPassword != ""
}

// ConfigError reports a missing or invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bistro: config %s: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("mapstructure"); name != "" {
				return name
			}
			return strings.ToLower(f.Name)
		})
		_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks c and returns a *ConfigError for the first bad field.
func (c SiteConfig) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ConfigError{Field: "config", Message: err.Error(), Err: err}
	}
	fe := ves[0]
	return &ConfigError{Field: fe.Field(), Message: describe(fe), Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return "is required when admin_password is set"
	case "url":
		return "must be an absolute URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "level":
		return fmt.Sprintf("unknown log level %q", fe.Value())
	}
	return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
}

// LoadConfig reads configuration from an optional YAML file and BISTRO_*
// environment variables. An empty path looks for ./bistro.yaml and
// tolerates its absence.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("bistro")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BISTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return SiteConfig{}, fmt.Errorf("bistro: read config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("bistro: decode config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the logger built from Config.LogLevel.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) {
		a.Log = l
		a.customLogger = true
	}
}

// WithLogOutput keeps the configured level but writes to w.
func WithLogOutput(w io.Writer) Option {
	return func(a *App) {
		a.logOutput = w
	}
}

// WithSite uses s instead of loading Config.ContentFile or the embedded
// content.
func WithSite(s *content.Site) Option {
	return func(a *App) {
		a.site.Store(s)
	}
}
