// Package gallery provides the circular image cursor used on product
// detail pages and the derivation of image-variant URLs.
package gallery

import (
	"errors"
	"fmt"
	"strings"
)

// VariantCount is the fixed number of image variants per product. The
// thumbnail strip always has exactly this many entries.
const VariantCount = 4

// ErrIndexOutOfRange is returned when Seek is given an index outside
// [0, VariantCount).
var ErrIndexOutOfRange = errors.New("gallery index out of range")

// Cursor is a circular index over a product's image variants. The zero
// value starts at the first variant.
type Cursor struct {
	index int
}

// Index returns the current variant index.
func (c *Cursor) Index() int {
	return c.index
}

// Next advances to the following variant, wrapping from last to first.
func (c *Cursor) Next() {
	c.index = (c.index + 1) % VariantCount
}

// Prev steps back to the preceding variant, wrapping from first to last.
func (c *Cursor) Prev() {
	c.index = (c.index + VariantCount - 1) % VariantCount
}

// Seek jumps to an explicit variant index. Out-of-range targets are
// rejected rather than clamped; the cursor keeps its position.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= VariantCount {
		return fmt.Errorf("seek %d: %w", i, ErrIndexOutOfRange)
	}
	c.index = i
	return nil
}

// Reset returns the cursor to the first variant.
func (c *Cursor) Reset() {
	c.index = 0
}

// Variants derives the image-variant URLs for a product's base image.
// Any query string on the base URL is dropped first.
func Variants(baseURL string) [VariantCount]string {
	base := baseURL
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return [VariantCount]string{
		base + "?w=600&h=600&fit=crop",
		base + "?w=600&h=600&fit=crop&auto=format",
		base + "?w=600&h=600&fit=crop&auto=format&q=80",
		base + "?w=600&h=600&fit=crop&auto=format&brightness=10",
	}
}
