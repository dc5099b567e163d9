package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderWorkshops renders the workshops and events page.
func (m Model) renderWorkshops() string {
	styles := m.theme.Styles()
	workshops := m.sess.Catalog().Workshops()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Workshops & Events"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Learn new skills and grow your business"))
	b.WriteString("\n\n")

	if len(workshops) == 0 {
		b.WriteString(styles.MutedText.Render("No upcoming workshops"))
	}

	for _, w := range workshops {
		b.WriteString(styles.AccentText.Bold(true).Render(w.Title))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · %s · %s", w.Date, w.Time, w.Instructor)))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(formatNaira(w.Price)))
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  %d attending", w.Attendees)))
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().Padding(0, 2).Width(m.width).Render(b.String())
}
