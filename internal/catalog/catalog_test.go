package catalog

import "testing"

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "A", Price: 100},
		{ID: 1, Name: "B", Price: 200},
	}
	if _, err := New(products, nil, nil, nil); err == nil {
		t.Fatalf("expected error for duplicate product id")
	}
}

func TestNew_RejectsNonPositiveIDs(t *testing.T) {
	if _, err := New([]Product{{ID: 0, Name: "A"}}, nil, nil, nil); err == nil {
		t.Fatalf("expected error for id 0")
	}
	if _, err := New([]Product{{ID: -3, Name: "A"}}, nil, nil, nil); err == nil {
		t.Fatalf("expected error for negative id")
	}
}

func TestNew_RejectsNegativePrice(t *testing.T) {
	if _, err := New([]Product{{ID: 1, Name: "A", Price: -1}}, nil, nil, nil); err == nil {
		t.Fatalf("expected error for negative price")
	}
}

func TestByVendor(t *testing.T) {
	c := testCatalog(t)

	got := c.ByVendor("Clay & Fire")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("ByVendor returned %v, want product 2", got)
	}
	if got := c.ByVendor("Nobody"); got != nil {
		t.Fatalf("ByVendor for unknown vendor = %v, want nil", got)
	}
}

func TestVendorByName_StubsUnknownVendors(t *testing.T) {
	c := testCatalog(t)

	v := c.VendorByName("Lagos Crafts")
	if v.Name != "Lagos Crafts" {
		t.Fatalf("VendorByName = %q, want Lagos Crafts", v.Name)
	}
	if v.Followers != 0 {
		t.Fatalf("stub vendor followers = %d, want 0", v.Followers)
	}
}

func TestProducts_ReturnsCopy(t *testing.T) {
	c := testCatalog(t)

	first := c.Products()
	first[0].Price = 1
	again := c.Products()
	if again[0].Price == 1 {
		t.Fatalf("Products() exposes catalog storage")
	}
}
