// Package catalog holds the immutable product listing for a shopper
// session and the filter/sort/search pipeline that shapes it for
// display.
//
// The catalog is loaded once at startup, either from the embedded
// default data set or from a TOML file named in the config, and is
// never mutated at runtime. Reads flow one way: Catalog -> Filter ->
// ordered slice -> render. Every accessor returns a defensive copy so
// the UI can never corrupt the index.
//
// Filtering composes three independent narrowing steps:
//
//   - category: exact match, with CategoryAll as a pass-through sentinel
//   - search: case-insensitive substring over name, vendor, or category
//   - sort: one of five total orders, stable among equal keys
//
// Stability matters: two products with the same review count must keep
// their catalog order under the trending sort, so paging and selection
// stay put while the shopper types a query.
package catalog
