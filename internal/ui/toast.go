package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastLevel selects the toast's styling.
type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

// toast is a transient notification shown in the command bar.
type toast struct {
	text  string
	level toastLevel
}

// toastExpiredMsg clears the toast whose sequence number it carries.
type toastExpiredMsg int

const toastDuration = 3 * time.Second

// notify replaces the current toast and schedules its expiry. The
// sequence number keeps an old expiry from clearing a newer toast.
func (m *Model) notify(level toastLevel, text string) tea.Cmd {
	m.toastSeq++
	m.toast = toast{text: text, level: level}
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg(seq)
	})
}

// renderToast returns the styled toast text, empty when none is active.
func (m Model) renderToast() string {
	if m.toast.text == "" {
		return ""
	}
	styles := m.theme.Styles()
	switch m.toast.level {
	case toastSuccess:
		return styles.SuccessText.Render(m.toast.text)
	case toastError:
		return styles.DangerText.Render(m.toast.text)
	default:
		return styles.InfoText.Render(m.toast.text)
	}
}
