package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed data/catalog.toml
var defaultCatalogTOML []byte

type rawProduct struct {
	ID          int     `toml:"id"`
	Name        string  `toml:"name"`
	Category    string  `toml:"category"`
	Price       int     `toml:"price"`
	Rating      float64 `toml:"rating"`
	Reviews     int     `toml:"reviews"`
	Vendor      string  `toml:"vendor"`
	Image       string  `toml:"image"`
	InStock     bool    `toml:"in_stock"`
	Description string  `toml:"description"`
}

type rawVendor struct {
	Name      string  `toml:"name"`
	Category  string  `toml:"category"`
	Rating    float64 `toml:"rating"`
	Followers int     `toml:"followers"`
}

type rawWorkshop struct {
	Title      string `toml:"title"`
	Date       string `toml:"date"`
	Time       string `toml:"time"`
	Instructor string `toml:"instructor"`
	Attendees  int    `toml:"attendees"`
	Price      int    `toml:"price"`
}

type rawCatalog struct {
	Categories []string      `toml:"categories"`
	Products   []rawProduct  `toml:"products"`
	Vendors    []rawVendor   `toml:"vendors"`
	Workshops  []rawWorkshop `toml:"workshops"`
}

// Load builds the catalog from the TOML file at path. An empty path
// uses the embedded default data set.
func Load(path string) (*Catalog, error) {
	data := defaultCatalogTOML
	if strings.TrimSpace(path) != "" {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = bytes
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(raw.Products) == 0 {
		return nil, fmt.Errorf("catalog has no products")
	}

	products := make([]Product, 0, len(raw.Products))
	for _, p := range raw.Products {
		products = append(products, Product{
			ID:           p.ID,
			Name:         strings.TrimSpace(p.Name),
			Category:     strings.TrimSpace(p.Category),
			Price:        p.Price,
			Rating:       p.Rating,
			ReviewCount:  p.Reviews,
			VendorName:   strings.TrimSpace(p.Vendor),
			ImageBaseURL: strings.TrimSpace(p.Image),
			InStock:      p.InStock,
			Description:  strings.TrimSpace(p.Description),
		})
	}

	vendors := make([]Vendor, 0, len(raw.Vendors))
	for _, v := range raw.Vendors {
		vendors = append(vendors, Vendor{
			Name:      strings.TrimSpace(v.Name),
			Category:  strings.TrimSpace(v.Category),
			Rating:    v.Rating,
			Followers: v.Followers,
		})
	}

	workshops := make([]Workshop, 0, len(raw.Workshops))
	for _, w := range raw.Workshops {
		workshops = append(workshops, Workshop{
			Title:      strings.TrimSpace(w.Title),
			Date:       strings.TrimSpace(w.Date),
			Time:       strings.TrimSpace(w.Time),
			Instructor: strings.TrimSpace(w.Instructor),
			Attendees:  w.Attendees,
			Price:      w.Price,
		})
	}

	categories := raw.Categories
	if len(categories) == 0 {
		categories = deriveCategories(products)
	}

	return New(products, vendors, workshops, categories)
}

// deriveCategories collects distinct product categories in first-seen
// order, for catalog files that omit the explicit list.
func deriveCategories(products []Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
