package wishlist

import "testing"

func TestToggle_IsAnInvolution(t *testing.T) {
	s := New()

	if !s.Toggle(5) {
		t.Fatalf("first toggle should save the product")
	}
	if !s.Contains(5) {
		t.Fatalf("product 5 should be saved")
	}
	if s.Toggle(5) {
		t.Fatalf("second toggle should remove the product")
	}
	if s.Contains(5) {
		t.Fatalf("double toggle did not restore original state")
	}
}

func TestToggle_NoDuplicates(t *testing.T) {
	s := New()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)
	s.Toggle(1)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestIDs_SortedAscending(t *testing.T) {
	s := New()
	for _, id := range []int{9, 3, 7} {
		s.Toggle(id)
	}

	got := s.IDs()
	want := []int{3, 7, 9}
	if len(got) != len(want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", got, want)
		}
	}
}
