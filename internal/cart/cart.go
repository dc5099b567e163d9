// Package cart implements the shopper's cart ledger: a mapping from
// product to quantity with merge-on-add semantics and derived totals.
package cart

import (
	"errors"

	"github.com/vendoura/vendoura/internal/catalog"
)

// ErrInvalidQuantity is returned when a negative quantity is requested.
var ErrInvalidQuantity = errors.New("quantity must not be negative")

// Line is one ledger entry. There is at most one line per product id.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Total returns the line's price contribution in whole Naira.
func (l Line) Total() int {
	return l.Product.Price * l.Quantity
}

// AddOutcome reports how an Add call changed the ledger, so the UI can
// toast "added to cart" vs "increased quantity".
type AddOutcome int

const (
	OutcomeAdded     AddOutcome = iota // new line inserted
	OutcomeIncreased                   // existing line incremented
)

// Ledger holds the cart lines in insertion order.
type Ledger struct {
	lines []Line
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add records one unit of the product. An existing line is incremented,
// otherwise a new line with quantity 1 is appended.
func (g *Ledger) Add(p catalog.Product) AddOutcome {
	for i := range g.lines {
		if g.lines[i].Product.ID == p.ID {
			g.lines[i].Quantity++
			return OutcomeIncreased
		}
	}
	g.lines = append(g.lines, Line{Product: p, Quantity: 1})
	return OutcomeAdded
}

// Remove deletes the line for the product id. Removing an absent id is
// a no-op.
func (g *Ledger) Remove(productID int) {
	for i := range g.lines {
		if g.lines[i].Product.ID == productID {
			g.lines = append(g.lines[:i], g.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. Zero removes the line,
// negative quantities are rejected with ErrInvalidQuantity, and ids not
// in the ledger are ignored.
func (g *Ledger) SetQuantity(productID, qty int) error {
	if qty < 0 {
		return ErrInvalidQuantity
	}
	if qty == 0 {
		g.Remove(productID)
		return nil
	}
	for i := range g.lines {
		if g.lines[i].Product.ID == productID {
			g.lines[i].Quantity = qty
			return nil
		}
	}
	return nil
}

// QuantityOf returns the quantity for the product id, zero if absent.
func (g *Ledger) QuantityOf(productID int) int {
	for _, l := range g.lines {
		if l.Product.ID == productID {
			return l.Quantity
		}
	}
	return 0
}

// LineCount returns the number of distinct lines. The cart badge shows
// this, not the total item count.
func (g *Ledger) LineCount() int {
	return len(g.lines)
}

// ItemCount returns the total number of units across all lines.
func (g *Ledger) ItemCount() int {
	total := 0
	for _, l := range g.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal sums price*quantity over all lines in exact integer
// arithmetic.
func (g *Ledger) Subtotal() int {
	total := 0
	for _, l := range g.lines {
		total += l.Total()
	}
	return total
}

// Lines returns a copy of the ledger in insertion order.
func (g *Ledger) Lines() []Line {
	if len(g.lines) == 0 {
		return nil
	}
	dup := make([]Line, len(g.lines))
	copy(dup, g.lines)
	return dup
}

// Clear empties the ledger. Order placement calls this.
func (g *Ledger) Clear() {
	g.lines = nil
}
