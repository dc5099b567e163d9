package catalog

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category selector that matches everything.
const CategoryAll = "All"

// Sort selects the display ordering for a filtered listing.
type Sort int

const (
	SortTrending Sort = iota // descending review count
	SortPriceLow             // ascending price
	SortPriceHigh            // descending price
	SortRating               // descending rating
	SortNewest               // descending id
)

// Label returns the display label for a sort key.
func (s Sort) Label() string {
	switch s {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortRating:
		return "Top Rated"
	case SortNewest:
		return "Newest"
	default:
		return "Trending"
	}
}

// Next cycles to the following sort key.
func (s Sort) Next() Sort {
	switch s {
	case SortTrending:
		return SortPriceLow
	case SortPriceLow:
		return SortPriceHigh
	case SortPriceHigh:
		return SortRating
	case SortRating:
		return SortNewest
	default:
		return SortTrending
	}
}

// Query describes how the listing should be narrowed and ordered.
type Query struct {
	Category string // exact match, CategoryAll passes everything
	Search   string // case-insensitive substring over name/vendor/category
	Sort     Sort
}

// Filter returns the products matching the query, ordered by the sort
// key. Equal keys keep their original catalog order; the result never
// shares backing storage with the catalog.
func (c *Catalog) Filter(q Query) []Product {
	// The raw query matches literally; surrounding whitespace is part
	// of the needle.
	needle := strings.ToLower(q.Search)

	items := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		items = append(items, p)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch q.Sort {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		case SortNewest:
			return a.ID > b.ID
		default:
			return a.ReviewCount > b.ReviewCount
		}
	})

	return items
}

func matchesSearch(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.VendorName), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
