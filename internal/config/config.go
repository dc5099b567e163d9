package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields Vendoura reads from its config file.
type Config struct {
	CatalogPath string // empty uses the embedded default catalog
	ShippingFee int    // flat checkout shipping in whole Naira
	TaxPermille int    // VAT rate in permille (75 = 7.5%)
}

const (
	defaultConfigPath  = "~/.config/vendoura/config.toml"
	defaultShippingFee = 2000
	defaultTaxPermille = 75
)

// Load locates and parses the config, falling back to defaults when the
// file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{ShippingFee: defaultShippingFee, TaxPermille: defaultTaxPermille}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogPath string `toml:"catalog_path"`
		ShippingFee *int   `toml:"shipping_fee"`
		TaxPermille *int   `toml:"tax_permille"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.CatalogPath = strings.TrimSpace(raw.CatalogPath)
	if cfg.CatalogPath != "" {
		cfg.CatalogPath = mustExpand(cfg.CatalogPath)
	}

	if raw.ShippingFee != nil {
		if *raw.ShippingFee < 0 {
			return Config{}, fmt.Errorf("shipping_fee %d is negative", *raw.ShippingFee)
		}
		cfg.ShippingFee = *raw.ShippingFee
	}

	if raw.TaxPermille != nil {
		if *raw.TaxPermille < 0 || *raw.TaxPermille > 1000 {
			return Config{}, fmt.Errorf("tax_permille %d outside [0, 1000]", *raw.TaxPermille)
		}
		cfg.TaxPermille = *raw.TaxPermille
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
