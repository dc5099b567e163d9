package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderVendorShop renders a vendor's shop page: profile header plus
// their products from the catalog.
func (m Model) renderVendorShop() string {
	v, ok := m.sess.View().Vendor()
	if !ok {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(v.Name))
	b.WriteString("\n")
	if v.Category != "" {
		b.WriteString(styles.MutedText.Render(v.Category))
		b.WriteString("\n")
	}

	stats := []string{styles.WarningText.Render(stars(v.Rating))}
	if v.Followers > 0 {
		stats = append(stats, styles.MutedText.Render(fmt.Sprintf("%d followers", v.Followers)))
	}
	products := m.sess.Catalog().ByVendor(v.Name)
	stats = append(stats, styles.MutedText.Render(fmt.Sprintf("%d products", len(products))))
	b.WriteString(strings.Join(stats, "  ·  "))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Render(fmt.Sprintf("Products from %s", v.Name)))
	b.WriteString("\n\n")

	if len(products) == 0 {
		b.WriteString(styles.MutedText.Render("No products listed yet"))
	} else {
		for _, p := range products {
			line := "  " +
				padRight(truncate(p.Name, colName-2), colName) +
				padRight(formatNaira(p.Price), colPrice) +
				padRight(stars(p.Rating), colRating-4) +
				ternary(p.InStock, "", "out of stock")
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(m.width).Render(b.String())
}

// renderProfileMenu renders the profile dropdown as a modal overlay.
func (m Model) renderProfileMenu() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Guest User"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Not signed in"))
	b.WriteString("\n\n")
	for _, item := range []string{"Profile", "Dashboard", "Settings", "Timeline"} {
		b.WriteString(styles.FaintText.Render(item + " (coming soon)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(32).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
