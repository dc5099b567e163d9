package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() != 18 {
		t.Fatalf("default catalog has %d products, want 18", c.Len())
	}
	if got := len(c.Vendors()); got != 4 {
		t.Fatalf("default catalog has %d vendors, want 4", got)
	}
	if got := len(c.Workshops()); got != 6 {
		t.Fatalf("default catalog has %d workshops, want 6", got)
	}
	if got := len(c.Categories()); got != 7 {
		t.Fatalf("default catalog has %d categories, want 7", got)
	}

	p, ok := c.ByID(1)
	if !ok {
		t.Fatalf("product 1 missing from default catalog")
	}
	if p.Name != "Handwoven Raffia Bag" || p.Price != 15000 {
		t.Fatalf("product 1 = %q/%d, want Handwoven Raffia Bag/15000", p.Name, p.Price)
	}
}

func TestLoad_ExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	if err := os.WriteFile(path, []byte(`
[[products]]
id = 7
name = "  Kente Throw  "
category = "Home"
price = 9000
rating = 4.4
reviews = 12
vendor = "Accra Looms"
image = "https://example.test/kente"
in_stock = true
description = "Woven throw blanket"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	p, ok := c.ByID(7)
	if !ok {
		t.Fatalf("product 7 missing")
	}
	if p.Name != "Kente Throw" {
		t.Fatalf("name = %q, want trimmed Kente Throw", p.Name)
	}
	// Category list omitted in the file; derived from products.
	cats := c.Categories()
	if len(cats) != 1 || cats[0] != "Home" {
		t.Fatalf("derived categories = %v, want [Home]", cats)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}

func TestParse_RejectsEmptyCatalog(t *testing.T) {
	if _, err := parse([]byte("categories = []")); err == nil {
		t.Fatalf("expected error for catalog without products")
	}
}
