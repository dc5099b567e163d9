// Package wishlist tracks the set of products a shopper has saved.
package wishlist

import "sort"

// Set holds saved product ids. Membership toggles; duplicates are
// impossible by construction.
type Set struct {
	ids map[int]struct{}
}

// New returns an empty wishlist.
func New() *Set {
	return &Set{ids: make(map[int]struct{})}
}

// Toggle flips membership for the product id and reports whether the
// product is now saved.
func (s *Set) Toggle(productID int) bool {
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

// Contains reports whether the product id is saved.
func (s *Set) Contains(productID int) bool {
	_, ok := s.ids[productID]
	return ok
}

// Len returns the number of saved products.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the saved product ids in ascending order.
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
