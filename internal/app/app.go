package app

import (
	"context"
	"fmt"

	"github.com/vendoura/vendoura/internal/catalog"
	"github.com/vendoura/vendoura/internal/config"
	"github.com/vendoura/vendoura/internal/prefs"
	"github.com/vendoura/vendoura/internal/pricing"
	"github.com/vendoura/vendoura/internal/session"
	"github.com/vendoura/vendoura/internal/ui"
)

// Options configure the Vendoura application.
type Options struct {
	ConfigPath  string // empty uses ~/.config/vendoura/config.toml
	PrefsPath   string // empty uses ~/.config/vendoura/prefs.toml
	CatalogPath string // overrides the config's catalog_path
}

// Run boots the storefront TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	catalogPath := cfg.CatalogPath
	if opts.CatalogPath != "" {
		catalogPath = opts.CatalogPath
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	rates := pricing.Rates{
		ShippingFee: cfg.ShippingFee,
		TaxPermille: cfg.TaxPermille,
	}
	sess := session.New(cat, rates)

	uiOpts := ui.Options{
		Context:   ctx,
		Session:   sess,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
