// Package config loads Vendoura's TOML configuration.
//
// The config file is optional: a missing file yields the defaults
// (embedded catalog, 2000 Naira flat shipping, 7.5% VAT). Rates are
// validated on load so the pricing layer never sees a negative fee or
// an impossible tax rate.
package config
