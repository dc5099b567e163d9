// Package session is the shopper session controller: the single
// in-memory object that tracks what the shopper is looking at, what is
// in their cart and wishlist, and how checkout totals are derived.
//
// # Architecture
//
// The session composes the leaf components and owns the navigation
// state machine that sequences them:
//
//	catalog.Catalog  (immutable, read-only)
//	       │
//	       ▼
//	session.Session ── View (Home | ProductDetail | VendorShop |
//	       │                 Category | Workshops | Checkout)
//	       ├── cart.Ledger      (merge-on-add, derived totals)
//	       ├── wishlist.Set     (toggle membership)
//	       ├── gallery.Cursor   (circular image index)
//	       └── pricing.Rates    (checkout rate constants)
//
// All mutation happens synchronously inside one UI event turn; there
// is no background work and no locking. One Session exists per
// shopper sitting and is handed to the UI by the caller; there is no
// package-level instance.
//
// # Navigation
//
// The current page is a single tagged View value rather than a page
// name plus separately tracked "selected product/vendor" fields, so a
// detail page without a subject cannot be represented. Transitions are
// methods on Session; the only guarded one is GoToCheckout, which
// refuses on an empty cart and leaves the machine in its prior state.
// The guard reads the ledger, it never mutates it.
//
// Rejected transitions leave the session untouched: the caller gets a
// sentinel error (ErrEmptyCart, ErrNotAtCheckout) to surface as a
// toast and keeps rendering the prior view.
//
// # Rendering side effects
//
// Every successful transition obliges the render layer to reset its
// scroll position. The session does not model scrolling; the UI resets
// its viewports whenever a navigation call returns nil.
package session
