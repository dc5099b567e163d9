package catalog

import "fmt"

// Catalog is the immutable product index for one session. All accessors
// return copies so callers can never mutate the backing data.
type Catalog struct {
	products   []Product
	byID       map[int]Product
	vendors    []Vendor
	byVendor   map[string]Vendor
	workshops  []Workshop
	categories []string
}

// New builds a catalog from loaded data. Product IDs must be unique and
// positive; vendor names must be unique.
func New(products []Product, vendors []Vendor, workshops []Workshop, categories []string) (*Catalog, error) {
	c := &Catalog{
		products:   cloneProducts(products),
		byID:       make(map[int]Product, len(products)),
		vendors:    append([]Vendor(nil), vendors...),
		byVendor:   make(map[string]Vendor, len(vendors)),
		workshops:  append([]Workshop(nil), workshops...),
		categories: append([]string(nil), categories...),
	}

	for _, p := range c.products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %q: id %d is not positive", p.Name, p.ID)
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d: negative price %d", p.ID, p.Price)
		}
		c.byID[p.ID] = p
	}

	for _, v := range c.vendors {
		if _, exists := c.byVendor[v.Name]; exists {
			return nil, fmt.Errorf("duplicate vendor %q", v.Name)
		}
		c.byVendor[v.Name] = v
	}

	return c, nil
}

// Products returns a copy of the full listing in catalog order.
func (c *Catalog) Products() []Product {
	return cloneProducts(c.products)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByID looks up a product by its identifier.
func (c *Catalog) ByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByVendor returns the vendor's products in catalog order.
func (c *Catalog) ByVendor(name string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.VendorName == name {
			out = append(out, p)
		}
	}
	return out
}

// Vendors returns the vendor directory.
func (c *Catalog) Vendors() []Vendor {
	return append([]Vendor(nil), c.vendors...)
}

// VendorByName looks up a vendor profile. Products can reference vendors
// that have no profile entry; those get a zero-valued stub so vendor
// shop pages still work.
func (c *Catalog) VendorByName(name string) Vendor {
	if v, ok := c.byVendor[name]; ok {
		return v
	}
	return Vendor{Name: name}
}

// Workshops returns the upcoming workshop listing.
func (c *Catalog) Workshops() []Workshop {
	return append([]Workshop(nil), c.workshops...)
}

// Categories returns the closed category set, without the "All" sentinel.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

func cloneProducts(items []Product) []Product {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Product, len(items))
	copy(dup, items)
	return dup
}
