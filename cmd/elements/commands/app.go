package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-elements/internal/config"
	"github.com/goliatone/go-elements/internal/logging"
	"github.com/goliatone/go-elements/pkg/csrf"
	"github.com/goliatone/go-elements/pkg/i18n"
	"github.com/goliatone/go-elements/pkg/view"
)

// app holds the collaborators shared by every subcommand.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *i18n.Catalog
	view    *view.View
	tokens  *csrf.Manager
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return nil, err
	}

	catalog, err := i18n.Default(i18n.WithFallback(cfg.Locale.Default))
	if err != nil {
		return nil, err
	}
	if dir := strings.TrimSpace(cfg.Locale.Dir); dir != "" {
		if err := mergeLocaleDir(catalog, dir); err != nil {
			return nil, err
		}
	}

	viewOpts := []view.Option{
		view.WithTranslator(catalog),
		view.WithURLOptions(cfg.URLOptions()...),
		view.WithSettings(cfg.Settings()),
		view.WithLogger(logger),
	}
	if themeCfg := cfg.RendererTheme(); themeCfg != nil {
		viewOpts = append(viewOpts, view.WithTheme(themeCfg))
	}
	if dir := strings.TrimSpace(cfg.Templates.Dir); dir != "" {
		viewOpts = append(viewOpts, view.WithTemplateDir(dir))
	}
	v, err := view.New(viewOpts...)
	if err != nil {
		return nil, err
	}

	tokens, err := tokenManager(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, catalog: catalog, view: v, tokens: tokens}, nil
}

// tokenManager keys tokens with the configured secret, or a random one that
// lives as long as the process.
func tokenManager(cfg config.Config, logger *zap.Logger) (*csrf.Manager, error) {
	secret := []byte(cfg.Admin.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate token secret: %w", err)
		}
		logger.Debug("no admin.secret configured, using an ephemeral one")
	}
	var opts []csrf.Option
	if cfg.Admin.TokenTTL > 0 {
		opts = append(opts, csrf.WithMaxAge(cfg.Admin.TokenTTL))
	}
	return csrf.NewManager(secret, opts...)
}

// mergeLocaleDir adds every <locale>.yaml in dir over the built-in catalogs.
func mergeLocaleDir(catalog *i18n.Catalog, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read locale dir: %w", err)
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}
		if err := catalog.AddYAML(strings.TrimSuffix(entry.Name(), ext), raw); err != nil {
			return err
		}
	}
	return nil
}
