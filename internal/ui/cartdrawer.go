package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCartDrawer renders the cart overlay: one row per ledger line
// with the running totals underneath.
func (m Model) renderCartDrawer() string {
	styles := m.theme.Styles()
	lines := m.sess.Cart().Lines()
	totals := m.sess.Totals()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("Your Cart (%d)", len(lines))))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(styles.MutedText.Render("Your cart is empty"))
		b.WriteString("\n")
	}

	for i, l := range lines {
		row := padRight(truncate(l.Product.Name, 26), 28) +
			padRight(fmt.Sprintf("x%d", l.Quantity), 5) +
			formatNaira(l.Total())
		if i == m.drawerRow {
			b.WriteString(styles.Selected.Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString("\n")
	}

	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(m.totalsBlock(styles, totals.Subtotal, totals.Shipping, totals.Tax, totals.Total))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("+/- quantity · x remove · enter checkout · esc close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(52).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
