package session

import (
	"errors"

	"github.com/vendoura/vendoura/internal/cart"
	"github.com/vendoura/vendoura/internal/catalog"
	"github.com/vendoura/vendoura/internal/gallery"
	"github.com/vendoura/vendoura/internal/pricing"
	"github.com/vendoura/vendoura/internal/wishlist"
)

var (
	// ErrEmptyCart rejects a guarded transition that needs cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotAtCheckout rejects order placement from any other page.
	ErrNotAtCheckout = errors.New("not at checkout")
)

// Session owns all mutable shopper state for one sitting: the cart
// ledger, the wishlist, the current view, and the detail-page gallery
// cursor. The caller constructs one per shopper and passes it to the
// UI; there is no package-level instance.
type Session struct {
	catalog  *catalog.Catalog
	cart     *cart.Ledger
	wishlist *wishlist.Set
	rates    pricing.Rates

	view    View
	gallery gallery.Cursor

	cartOpen    bool
	profileOpen bool
}

// New starts a session on the Home view with an empty cart and
// wishlist.
func New(cat *catalog.Catalog, rates pricing.Rates) *Session {
	return &Session{
		catalog:  cat,
		cart:     cart.New(),
		wishlist: wishlist.New(),
		rates:    rates,
		view:     homeView(),
	}
}

// Catalog returns the immutable product index.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Cart returns the session's cart ledger.
func (s *Session) Cart() *cart.Ledger {
	return s.cart
}

// Wishlist returns the session's wishlist.
func (s *Session) Wishlist() *wishlist.Set {
	return s.wishlist
}

// View returns the current page and its subject.
func (s *Session) View() View {
	return s.view
}

// Gallery returns the image cursor for the current product detail
// page. GoToProduct resets it to the first variant.
func (s *Session) Gallery() *gallery.Cursor {
	return &s.gallery
}

// Rates returns the checkout rates in effect for this session.
func (s *Session) Rates() pricing.Rates {
	return s.rates
}

// Totals recomputes the checkout breakdown from the current cart. It
// is derived from scratch on every call; nothing is cached.
func (s *Session) Totals() pricing.Totals {
	return pricing.Compute(s.cart.Lines(), s.rates)
}

// GoHome returns to the Home view and drops any detail subject.
func (s *Session) GoHome() {
	s.view = homeView()
}

// GoToProduct opens the product detail view and rewinds the gallery.
func (s *Session) GoToProduct(p catalog.Product) {
	s.view = View{kind: ViewProductDetail, product: p}
	s.gallery.Reset()
}

// GoToVendor opens the vendor's shop page.
func (s *Session) GoToVendor(v catalog.Vendor) {
	s.view = View{kind: ViewVendorShop, vendor: v}
}

// GoToCategory opens the category listing.
func (s *Session) GoToCategory(name string) {
	s.view = View{kind: ViewCategory, category: name}
}

// GoToWorkshops opens the workshops and events page.
func (s *Session) GoToWorkshops() {
	s.view = View{kind: ViewWorkshops}
}

// GoToCheckout moves to checkout, guarded on a non-empty cart. On an
// empty cart the session stays exactly where it is and ErrEmptyCart is
// returned for the UI to surface. The guard only reads cart state.
func (s *Session) GoToCheckout() error {
	if s.cart.LineCount() == 0 {
		return ErrEmptyCart
	}
	s.view = View{kind: ViewCheckout}
	s.cartOpen = false
	return nil
}

// PlaceOrder completes checkout: the ledger is cleared and navigation
// returns to Home. Backend submission is the caller's concern. Legal
// only from the checkout view with lines still in the cart.
func (s *Session) PlaceOrder() (pricing.Totals, error) {
	if s.view.kind != ViewCheckout {
		return pricing.Totals{}, ErrNotAtCheckout
	}
	if s.cart.LineCount() == 0 {
		return pricing.Totals{}, ErrEmptyCart
	}
	receipt := s.Totals()
	s.cart.Clear()
	s.view = homeView()
	return receipt, nil
}

// ToggleCartDrawer flips the cart drawer overlay.
func (s *Session) ToggleCartDrawer() {
	s.cartOpen = !s.cartOpen
}

// CloseCartDrawer hides the cart drawer.
func (s *Session) CloseCartDrawer() {
	s.cartOpen = false
}

// CartOpen reports whether the cart drawer overlay is showing.
func (s *Session) CartOpen() bool {
	return s.cartOpen
}

// ToggleProfileMenu flips the profile menu overlay.
func (s *Session) ToggleProfileMenu() {
	s.profileOpen = !s.profileOpen
}

// ProfileOpen reports whether the profile menu overlay is showing.
func (s *Session) ProfileOpen() bool {
	return s.profileOpen
}
