package cart

import (
	"errors"
	"testing"

	"github.com/vendoura/vendoura/internal/catalog"
)

var (
	bag = catalog.Product{ID: 1, Name: "Raffia Bag", Price: 15000}
	pot = catalog.Product{ID: 2, Name: "Clay Pot", Price: 8500}
)

func TestAdd_MergesOnProductID(t *testing.T) {
	g := New()

	if got := g.Add(bag); got != OutcomeAdded {
		t.Fatalf("first Add = %v, want OutcomeAdded", got)
	}
	for i := 0; i < 4; i++ {
		if got := g.Add(bag); got != OutcomeIncreased {
			t.Fatalf("repeat Add = %v, want OutcomeIncreased", got)
		}
	}

	if g.LineCount() != 1 {
		t.Fatalf("LineCount = %d, want 1", g.LineCount())
	}
	if got := g.QuantityOf(bag.ID); got != 5 {
		t.Fatalf("QuantityOf = %d, want 5", got)
	}
}

func TestAdd_DistinctProductsGetDistinctLines(t *testing.T) {
	g := New()
	g.Add(bag)
	g.Add(pot)

	if g.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", g.LineCount())
	}
	if got := g.Subtotal(); got != 23500 {
		t.Fatalf("Subtotal = %d, want 23500", got)
	}
}

func TestRemove_IsIdempotent(t *testing.T) {
	g := New()
	g.Add(bag)
	g.Add(pot)

	g.Remove(bag.ID)
	after := g.Lines()

	g.Remove(bag.ID)
	again := g.Lines()

	if len(after) != len(again) || len(again) != 1 || again[0].Product.ID != pot.ID {
		t.Fatalf("double remove changed state: %v vs %v", after, again)
	}
}

func TestRemove_AbsentIDIsNoOp(t *testing.T) {
	g := New()
	g.Add(bag)
	g.Remove(999)
	if g.LineCount() != 1 {
		t.Fatalf("LineCount = %d, want 1", g.LineCount())
	}
}

func TestSetQuantity(t *testing.T) {
	t.Run("replaces_quantity", func(t *testing.T) {
		g := New()
		g.Add(bag)
		if err := g.SetQuantity(bag.ID, 3); err != nil {
			t.Fatalf("SetQuantity returned error: %v", err)
		}
		if got := g.QuantityOf(bag.ID); got != 3 {
			t.Fatalf("QuantityOf = %d, want 3", got)
		}
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		g := New()
		g.Add(bag)
		g.Add(pot)
		if err := g.SetQuantity(bag.ID, 0); err != nil {
			t.Fatalf("SetQuantity returned error: %v", err)
		}
		if g.LineCount() != 1 {
			t.Fatalf("LineCount = %d, want 1", g.LineCount())
		}
		if g.QuantityOf(bag.ID) != 0 {
			t.Fatalf("line for id 1 not removed")
		}
	})

	t.Run("negative_rejected", func(t *testing.T) {
		g := New()
		g.Add(bag)
		err := g.SetQuantity(bag.ID, -1)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("SetQuantity(-1) error = %v, want ErrInvalidQuantity", err)
		}
		if got := g.QuantityOf(bag.ID); got != 1 {
			t.Fatalf("rejected call mutated quantity to %d", got)
		}
	})
}

func TestSubtotal_ExactIntegerArithmetic(t *testing.T) {
	g := New()
	g.Add(bag)
	g.Add(bag)
	g.Add(pot)

	if got := g.Subtotal(); got != 38500 {
		t.Fatalf("Subtotal = %d, want 38500", got)
	}
	if got := g.ItemCount(); got != 3 {
		t.Fatalf("ItemCount = %d, want 3", got)
	}
}

func TestLines_ReturnsCopy(t *testing.T) {
	g := New()
	g.Add(bag)

	lines := g.Lines()
	lines[0].Quantity = 99
	if got := g.QuantityOf(bag.ID); got != 1 {
		t.Fatalf("Lines() exposes ledger storage, quantity = %d", got)
	}
}

func TestClear(t *testing.T) {
	g := New()
	g.Add(bag)
	g.Add(pot)
	g.Clear()

	if g.LineCount() != 0 || g.Subtotal() != 0 {
		t.Fatalf("Clear left lines=%d subtotal=%d", g.LineCount(), g.Subtotal())
	}
}
