package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vendoura/vendoura/internal/catalog"
)

// renderListing renders the Home and Category pages: category bar,
// sort indicator, and the product table.
func (m Model) renderListing() string {
	styles := m.theme.Styles()
	items := m.listing()

	var b strings.Builder

	b.WriteString(m.renderCategoryBar())
	b.WriteString("\n")

	q := m.listingQuery()
	info := fmt.Sprintf("%d products found · Sort: %s", len(items), q.Sort.Label())
	if q.Search != "" {
		info += fmt.Sprintf(" · Search: %q", q.Search)
	}
	b.WriteString(styles.MutedText.Render(info))
	b.WriteString("\n\n")

	if len(items) == 0 {
		empty := styles.MutedText.Render("No products match")
		b.WriteString(lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Center, empty))
		return b.String()
	}

	b.WriteString(m.renderProductTable(items))
	return b.String()
}

// renderCategoryBar shows the category chips with the active one
// highlighted. The Category page pins its subject.
func (m Model) renderCategoryBar() string {
	styles := m.theme.Styles()

	active := m.query.Category
	if name, ok := m.sess.View().Category(); ok {
		active = name
	}

	cats := append([]string{catalog.CategoryAll}, m.sess.Catalog().Categories()...)
	chips := make([]string, 0, len(cats))
	for _, c := range cats {
		if c == active {
			chips = append(chips, styles.Selected.Render(" "+c+" "))
			continue
		}
		chips = append(chips, styles.MutedText.Render(" "+c+" "))
	}
	return strings.Join(chips, "")
}

// Column widths for the product table.
const (
	colName   = 28
	colPrice  = 10
	colRating = 18
	colVendor = 20
	colStock  = 12
)

// renderProductTable renders the product rows with a sliding window
// that keeps the selection visible.
func (m Model) renderProductTable(items []catalog.Product) string {
	styles := m.theme.Styles()

	header := styles.FaintText.Render(
		"  " + padRight("PRODUCT", colName) +
			padRight("PRICE", colPrice) +
			padRight("RATING", colRating) +
			padRight("VENDOR", colVendor) +
			padRight("STOCK", colStock) +
			"CATEGORY")

	// Rows available after page chrome.
	visible := contentHeight(m.height) - 5
	if visible < 3 {
		visible = 3
	}

	start := 0
	if m.selectedRow >= visible {
		start = m.selectedRow - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, m.renderProductRow(items[i], i == m.selectedRow))
	}

	table := header + "\n" + strings.Join(rows, "\n")
	if end < len(items) {
		table += "\n" + styles.FaintText.Render(fmt.Sprintf("  … %d more", len(items)-end))
	}
	return table
}

func (m Model) renderProductRow(p catalog.Product, selected bool) string {
	styles := m.theme.Styles()

	marker := "  "
	if m.sess.Wishlist().Contains(p.ID) {
		marker = "♥ "
	}

	stock := ternary(p.InStock, "In Stock", "Out of Stock")

	row := marker +
		padRight(truncate(p.Name, colName-2), colName) +
		padRight(formatNaira(p.Price), colPrice) +
		padRight(fmt.Sprintf("%s (%d)", stars(p.Rating), p.ReviewCount), colRating) +
		padRight(truncate(p.VendorName, colVendor-2), colVendor) +
		padRight(stock, colStock)

	if selected {
		return styles.Selected.Render(row) + " " + styles.CategoryStyle(p.Category).Render(p.Category)
	}

	body := styles.Text.Render(row)
	if !p.InStock {
		body = styles.FaintText.Render(row)
	}
	return body + " " + styles.CategoryStyle(p.Category).Render(p.Category)
}
