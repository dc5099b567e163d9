package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vendoura/vendoura/internal/gallery"
)

// renderDetail renders the product detail page: gallery, price block,
// quantity picker, and description.
func (m Model) renderDetail() string {
	p, ok := m.sess.View().Product()
	if !ok {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(p.Name))
	b.WriteString("  ")
	b.WriteString(styles.CategoryStyle(p.Category).Render(p.Category))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("by %s", p.VendorName)))
	b.WriteString("\n\n")

	b.WriteString(m.renderGallery(p.ImageBaseURL))
	b.WriteString("\n\n")

	b.WriteString(styles.AccentText.Bold(true).Render(formatNaira(p.Price)))
	b.WriteString("   ")
	b.WriteString(styles.WarningText.Render(stars(p.Rating)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" (%d reviews)", p.ReviewCount)))
	b.WriteString("\n")

	if p.InStock {
		b.WriteString(styles.SuccessText.Render("In Stock"))
	} else {
		b.WriteString(styles.DangerText.Render("Out of Stock"))
	}
	if m.sess.Wishlist().Contains(p.ID) {
		b.WriteString("   " + styles.DangerText.Render("♥ saved"))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("Quantity: "))
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("%d", m.detailQty)))
	b.WriteString(styles.FaintText.Render("  (+/- to change, a to add)"))
	b.WriteString("\n\n")

	b.WriteString(styles.Text.Render(p.Description))
	b.WriteString("\n")

	content := lipgloss.NewStyle().
		Padding(0, 2).
		Width(m.width).
		Render(b.String())

	return content
}

// renderGallery shows the active image variant and the thumbnail strip
// markers. The strip has exactly gallery.VariantCount entries, so the
// seek keys 1-4 always name a valid target.
func (m Model) renderGallery(baseURL string) string {
	styles := m.theme.Styles()
	variants := gallery.Variants(baseURL)
	idx := m.sess.Gallery().Index()

	var strip []string
	for i := range variants {
		label := fmt.Sprintf(" %d ", i+1)
		if i == idx {
			strip = append(strip, styles.Selected.Render(label))
			continue
		}
		strip = append(strip, styles.FaintText.Render(label))
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Render(fmt.Sprintf("image %d/%d  %s", idx+1, gallery.VariantCount,
			truncate(variants[idx], 60)))

	return frame + "\n" + strings.Join(strip, " ")
}
