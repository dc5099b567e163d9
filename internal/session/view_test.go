package session

import (
	"testing"

	"github.com/vendoura/vendoura/internal/catalog"
)

func TestView_SubjectAccessorsMatchKind(t *testing.T) {
	s := testSession(t)

	s.GoToVendor(catalog.Vendor{Name: "Clay & Fire", Rating: 4.8})
	v := s.View()
	if vend, ok := v.Vendor(); !ok || vend.Name != "Clay & Fire" {
		t.Fatalf("Vendor() = %v/%v, want Clay & Fire", vend, ok)
	}
	if _, ok := v.Product(); ok {
		t.Fatalf("vendor view reports a product subject")
	}
	if _, ok := v.Category(); ok {
		t.Fatalf("vendor view reports a category subject")
	}

	s.GoToCategory("Home")
	if name, ok := s.View().Category(); !ok || name != "Home" {
		t.Fatalf("Category() = %q/%v, want Home", name, ok)
	}
	if _, ok := s.View().Vendor(); ok {
		t.Fatalf("category view retained a vendor subject")
	}
}

func TestViewKind_Labels(t *testing.T) {
	cases := []struct {
		kind ViewKind
		want string
	}{
		{ViewHome, "Home"},
		{ViewProductDetail, "Product"},
		{ViewVendorShop, "Vendor Shop"},
		{ViewCategory, "Category"},
		{ViewWorkshops, "Workshops"},
		{ViewCheckout, "Checkout"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("ViewKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
