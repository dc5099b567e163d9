// Package ui provides the Bubble Tea terminal front end for the
// Vendoura storefront.
//
// The UI is a thin rendering layer over the shopper session: every
// mutation goes through the session's public API in response to a key
// event, and every frame re-derives what it paints from session state.
// The package owns only presentational state: viewport scroll
// offsets, the listing selection, the search box, toasts, and the
// active theme.
//
// Rejected session operations (empty-cart checkout, out-of-range
// gallery seeks) surface as toasts; the session guarantees it is left
// untouched, so the UI simply keeps painting the prior view.
package ui
