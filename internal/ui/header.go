package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vendoura/vendoura/internal/session"
)

// renderHeader renders the top bar: logo, current page, search box,
// wishlist and cart badges.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("vendoura"),
		styles.FaintText.Render("marketplace"),
		styles.AccentText.Render(m.sess.View().Kind().String()),
	}

	if m.searching || m.query.Search != "" {
		parts = append(parts, styles.Text.Render("/"+m.searchInput.View()))
	}

	left := strings.Join(parts, "  ")

	badges := []string{
		styles.MutedText.Render(fmt.Sprintf("♥ %d", m.sess.Wishlist().Len())),
		m.cartBadge(styles),
	}
	right := strings.Join(badges, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// cartBadge shows the distinct line count, not the total unit count.
func (m Model) cartBadge(styles Styles) string {
	count := m.sess.Cart().LineCount()
	if count == 0 {
		return styles.MutedText.Render("cart 0")
	}
	return styles.WarningText.Render(fmt.Sprintf("cart %d", count))
}

// renderCommandBar renders the key hints for the current view, or the
// active toast while one is showing.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	if t := m.renderToast(); t != "" {
		return styles.Footer.Width(m.width).Render(t)
	}

	var hints string
	switch {
	case m.searching:
		hints = "enter apply · esc cancel"
	case m.sess.CartOpen():
		hints = "j/k select · +/- quantity · x remove · enter checkout · esc close"
	default:
		switch m.sess.View().Kind() {
		case session.ViewProductDetail:
			hints = "←/→ gallery · 1-4 image · +/- qty · a add · b buy now · w wishlist · v vendor · esc back"
		case session.ViewVendorShop:
			hints = "esc back · c cart · ? help"
		case session.ViewWorkshops:
			hints = "esc back · c cart · ? help"
		case session.ViewCheckout:
			hints = "enter place order · esc back · c cart"
		default:
			hints = "j/k move · enter view · a add · w wishlist · f category · s sort · / search · c cart · C checkout · ? help"
		}
	}

	return styles.Footer.Width(m.width).Render(styles.FaintText.Render(hints))
}
