package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCheckout renders the order summary with the full totals
// breakdown. Totals are recomputed from the ledger on every render.
func (m Model) renderCheckout() string {
	styles := m.theme.Styles()
	lines := m.sess.Cart().Lines()
	totals := m.sess.Totals()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Order Summary"))
	b.WriteString("\n\n")

	for _, l := range lines {
		row := "  " +
			padRight(truncate(l.Product.Name, 30), 32) +
			padRight(fmt.Sprintf("Qty: %d", l.Quantity), 10) +
			formatNaira(l.Total())
		b.WriteString(styles.Text.Render(row))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.totalsBlock(styles, totals.Subtotal, totals.Shipping, totals.Tax, totals.Total))
	b.WriteString("\n\n")
	b.WriteString(styles.SuccessText.Render("enter") + styles.MutedText.Render(" to place order"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Secure checkout · shipping across Nigeria"))

	return lipgloss.NewStyle().Padding(0, 2).Width(m.width).Render(b.String())
}

func (m Model) totalsBlock(styles Styles, subtotal, shipping, tax, total int) string {
	var b strings.Builder
	b.WriteString(styles.MutedText.Render("  "+padRight("Subtotal", 12)) + styles.Text.Render(formatNaira(subtotal)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  "+padRight("Shipping", 12)) + styles.Text.Render(formatNaira(shipping)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  "+padRight("Tax", 12)) + styles.Text.Render(formatNaira(tax)))
	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("  "+padRight("Total", 12)) + styles.AccentText.Bold(true).Render(formatNaira(total)))
	return b.String()
}
