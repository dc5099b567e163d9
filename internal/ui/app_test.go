package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vendoura/vendoura/internal/catalog"
	"github.com/vendoura/vendoura/internal/pricing"
	"github.com/vendoura/vendoura/internal/session"
)

func scrollTestModel(t *testing.T) Model {
	t.Helper()

	long := strings.Repeat("Handwoven from locally sourced raffia by Lagos artisans. ", 40)
	p := catalog.Product{
		ID: 1, Name: "Raffia Bag", Category: "Fashion", Price: 15000,
		Rating: 4.8, ReviewCount: 124, VendorName: "Lagos Crafts",
		InStock: true, Description: long,
	}
	cat, err := catalog.New([]catalog.Product{p}, nil, nil, []string{"Fashion"})
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}

	sess := session.New(cat, pricing.DefaultRates())
	sess.GoToProduct(p)

	m := New(Options{Session: sess})
	return updateModel(t, m, tea.WindowSizeMsg{Width: 60, Height: 10})
}

func updateModel(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDetailPageScrollsWithKeys(t *testing.T) {
	m := scrollTestModel(t)

	for i := 0; i < 5; i++ {
		m = updateModel(t, m, keyMsg("j"))
	}
	if m.content.YOffset == 0 {
		t.Fatalf("pressing j did not scroll the detail page")
	}

	before := m.content.YOffset
	m = updateModel(t, m, keyMsg("k"))
	if m.content.YOffset != before-1 {
		t.Fatalf("k scrolled to %d, want %d", m.content.YOffset, before-1)
	}
}

func TestScrollResetsOnNavigation(t *testing.T) {
	m := scrollTestModel(t)

	for i := 0; i < 5; i++ {
		m = updateModel(t, m, keyMsg("j"))
	}
	if m.content.YOffset == 0 {
		t.Fatalf("pressing j did not scroll the detail page")
	}

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.sess.View().Kind(); got != session.ViewHome {
		t.Fatalf("esc left view at %v, want Home", got)
	}
	if m.content.YOffset != 0 {
		t.Fatalf("navigation kept scroll offset %d, want 0", m.content.YOffset)
	}
}
