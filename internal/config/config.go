// Package config loads the YAML configuration shared by the preview server
// and the CLI. Values can be overridden with ELEMENTS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/elements"
	"github.com/goliatone/go-elements/pkg/urls"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ELEMENTS_"

type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Server    ServerConfig    `yaml:"server"`
	Admin     AdminConfig     `yaml:"admin"`
	Ads       AdsConfig       `yaml:"ads"`
	Polling   PollingConfig   `yaml:"polling"`
	Locale    LocaleConfig    `yaml:"locale"`
	Templates TemplatesConfig `yaml:"templates"`
	Theme     ThemeConfig     `yaml:"theme"`
	Log       LogConfig       `yaml:"log"`
}

type SiteConfig struct {
	Name         string `yaml:"name"`
	Base         string `yaml:"base"`
	AssetBase    string `yaml:"asset_base"`
	SmallLogo    string `yaml:"small_logo"`
	MediumLogo   string `yaml:"medium_logo"`
	Registration bool   `yaml:"registration"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	DataDir      string        `yaml:"data_dir"`
	AssetsDir    string        `yaml:"assets_dir"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type AdminConfig struct {
	// Secret keys anti-forgery tokens; 16 to 64 bytes.
	Secret     string        `yaml:"secret"`
	TokenParam string        `yaml:"token_param"`
	TokenTTL   time.Duration `yaml:"token_ttl"`
}

type AdsConfig struct {
	Location string `yaml:"location"`
}

type PollingConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type LocaleConfig struct {
	Default string `yaml:"default"`
	// Dir holds extra <locale>.yaml catalogs merged over the built-in ones.
	Dir string `yaml:"dir"`
}

type TemplatesConfig struct {
	// Dir overrides individual embedded templates.
	Dir string `yaml:"dir"`
	// Watch flushes the template cache when files in Dir change.
	Watch bool `yaml:"watch"`
}

type ThemeConfig struct {
	Name    string            `yaml:"name"`
	Variant string            `yaml:"variant"`
	CSSVars map[string]string `yaml:"css_vars"`
	// Assets maps asset names to URLs, e.g. themed logos.
	Assets map[string]string `yaml:"assets"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	settings := elements.DefaultSettings()
	return Config{
		Site: SiteConfig{
			Name:         "Elements",
			Base:         "/",
			AssetBase:    "/assets",
			SmallLogo:    settings.SmallLogo,
			MediumLogo:   settings.MediumLogo,
			Registration: settings.Registration,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			DataDir:      "fixtures",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Admin: AdminConfig{
			TokenParam: urls.DefaultTokenParam,
			TokenTTL:   time.Hour,
		},
		Ads:     AdsConfig{Location: string(elements.AdsNone)},
		Polling: PollingConfig{Interval: settings.PollInterval, Timeout: settings.PollTimeout},
		Locale:  LocaleConfig{Default: "en-US"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path yields the defaults plus overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		if v, ok := lookup(EnvPrefix + name); ok {
			parsed, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err)
			}
			*dst = parsed
		}
		return nil
	}
	duration := func(name string, dst *time.Duration) error {
		if v, ok := lookup(EnvPrefix + name); ok {
			parsed, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, name, err)
			}
			*dst = parsed
		}
		return nil
	}

	str("SITE_NAME", &c.Site.Name)
	str("SITE_BASE", &c.Site.Base)
	str("ASSET_BASE", &c.Site.AssetBase)
	str("ADDR", &c.Server.Addr)
	str("DATA_DIR", &c.Server.DataDir)
	str("ASSETS_DIR", &c.Server.AssetsDir)
	str("ADMIN_SECRET", &c.Admin.Secret)
	str("ADS_LOCATION", &c.Ads.Location)
	str("LOCALE", &c.Locale.Default)
	str("LOCALE_DIR", &c.Locale.Dir)
	str("TEMPLATES_DIR", &c.Templates.Dir)
	str("LOG_LEVEL", &c.Log.Level)

	return errors.Join(
		boolean("REGISTRATION", &c.Site.Registration),
		boolean("TEMPLATES_WATCH", &c.Templates.Watch),
		boolean("LOG_JSON", &c.Log.JSON),
		duration("POLL_INTERVAL", &c.Polling.Interval),
		duration("POLL_TIMEOUT", &c.Polling.Timeout),
		duration("TOKEN_TTL", &c.Admin.TokenTTL),
	)
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	switch elements.AdLocation(strings.ToLower(strings.TrimSpace(c.Ads.Location))) {
	case elements.AdsNone, elements.AdsTop, elements.AdsSide, elements.AdsBoth, "":
	default:
		errs = append(errs, fmt.Errorf("config: ads.location %q must be none, top, side or both", c.Ads.Location))
	}
	if c.Polling.Interval < 0 || c.Polling.Timeout < 0 {
		errs = append(errs, errors.New("config: polling durations must not be negative"))
	}
	if c.Polling.Interval > 0 && c.Polling.Timeout > 0 && c.Polling.Timeout < c.Polling.Interval {
		errs = append(errs, errors.New("config: polling.timeout must be at least polling.interval"))
	}
	if secret := c.Admin.Secret; secret != "" && (len(secret) < 16 || len(secret) > 64) {
		errs = append(errs, errors.New("config: admin.secret must be 16 to 64 bytes"))
	}
	if c.Admin.TokenTTL < 0 {
		errs = append(errs, errors.New("config: admin.token_ttl must not be negative"))
	}
	if c.Templates.Watch && strings.TrimSpace(c.Templates.Dir) == "" {
		errs = append(errs, errors.New("config: templates.watch requires templates.dir"))
	}
	return errors.Join(errs...)
}

// Settings converts the configuration into element settings.
func (c Config) Settings() elements.Settings {
	settings := elements.DefaultSettings()
	if c.Site.SmallLogo != "" {
		settings.SmallLogo = c.Site.SmallLogo
	}
	if c.Site.MediumLogo != "" {
		settings.MediumLogo = c.Site.MediumLogo
	}
	settings.Registration = c.Site.Registration
	if c.Polling.Interval > 0 {
		settings.PollInterval = c.Polling.Interval
	}
	if c.Polling.Timeout > 0 {
		settings.PollTimeout = c.Polling.Timeout
	}
	if location := strings.ToLower(strings.TrimSpace(c.Ads.Location)); location != "" {
		settings.AdLocation = elements.AdLocation(location)
	}
	return settings
}

// URLOptions returns the URL builder options for the site.
func (c Config) URLOptions() []urls.Option {
	return []urls.Option{
		urls.WithBase(c.Site.Base),
		urls.WithAssetBase(c.Site.AssetBase),
		urls.WithTokenParam(c.Admin.TokenParam),
	}
}

// RendererTheme returns the go-theme renderer config, or nil when no theme is
// configured.
func (c Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if t.Name == "" && len(t.CSSVars) == 0 && len(t.Assets) == 0 {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		CSSVars: make(map[string]string, len(t.CSSVars)),
	}
	for name, value := range t.CSSVars {
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		cfg.CSSVars[name] = value
	}
	if len(t.Assets) > 0 {
		assets := make(map[string]string, len(t.Assets))
		for name, target := range t.Assets {
			assets[name] = target
		}
		cfg.AssetURL = func(name string) string { return assets[name] }
	}
	return cfg
}
