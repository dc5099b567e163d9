package session

import "github.com/vendoura/vendoura/internal/catalog"

// ViewKind identifies which page the shopper is on.
type ViewKind int

const (
	ViewHome ViewKind = iota
	ViewProductDetail
	ViewVendorShop
	ViewCategory
	ViewWorkshops
	ViewCheckout
)

// String returns the display label for the view kind.
func (k ViewKind) String() string {
	switch k {
	case ViewProductDetail:
		return "Product"
	case ViewVendorShop:
		return "Vendor Shop"
	case ViewCategory:
		return "Category"
	case ViewWorkshops:
		return "Workshops"
	case ViewCheckout:
		return "Checkout"
	default:
		return "Home"
	}
}

// View is the current page plus its subject, as one tagged value.
// Detail views always carry their subject; leaving them drops it, so a
// stale product or vendor can never leak into an unrelated page. Only
// the session constructs views, which keeps illegal combinations (a
// product page with no product) unrepresentable from the outside.
type View struct {
	kind     ViewKind
	product  catalog.Product
	vendor   catalog.Vendor
	category string
}

// Kind returns which page this view shows.
func (v View) Kind() ViewKind {
	return v.kind
}

// Product returns the subject of a product detail view.
func (v View) Product() (catalog.Product, bool) {
	if v.kind != ViewProductDetail {
		return catalog.Product{}, false
	}
	return v.product, true
}

// Vendor returns the subject of a vendor shop view.
func (v View) Vendor() (catalog.Vendor, bool) {
	if v.kind != ViewVendorShop {
		return catalog.Vendor{}, false
	}
	return v.vendor, true
}

// Category returns the subject of a category view.
func (v View) Category() (string, bool) {
	if v.kind != ViewCategory {
		return "", false
	}
	return v.category, true
}

func homeView() View {
	return View{kind: ViewHome}
}
