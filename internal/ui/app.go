package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vendoura/vendoura/internal/catalog"
	"github.com/vendoura/vendoura/internal/session"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *session.Session
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	sess      *session.Session
	prefsPath string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Listing state
	query       catalog.Query
	selectedRow int

	// Detail state
	detailQty int
	content   viewport.Model

	// Cart drawer state
	drawerRow int

	// Search box
	searchInput textinput.Model
	searching   bool

	// Help overlay
	showHelp bool

	// Toast notification
	toast    toast
	toastSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	search := textinput.New()
	search.Placeholder = "Search vendors, products, categories..."
	search.CharLimit = 64
	search.Width = 36

	return Model{
		ctx:         ctx,
		sess:        opts.Session,
		prefsPath:   opts.PrefsPath,
		theme:       GetTheme(themeName),
		query:       catalog.Query{Category: catalog.CategoryAll},
		detailQty:   1,
		searchInput: search,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.content = viewport.New(msg.Width, contentHeight(msg.Height))
		} else {
			m.content.Width = msg.Width
			m.content.Height = contentHeight(msg.Height)
		}
		m.ready = true
		return m, nil

	case toastExpiredMsg:
		if int(msg) == m.toastSeq {
			m.toast = toast{}
		}
		return m, nil
	}

	return m, nil
}

// contentHeight is the rows left after the header and command bar.
func contentHeight(total int) int {
	h := total - 2
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.sess.CartOpen() {
		return m.renderCartDrawer()
	}
	if m.sess.ProfileOpen() {
		return m.renderProfileMenu()
	}

	return m.renderMain()
}

// renderMain renders header, command bar, and the active view.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the page for the session's current view. The
// long-form pages go through the shared viewport so j/k scrolling
// works; the listing manages its own sliding window.
func (m Model) renderContent() string {
	switch m.sess.View().Kind() {
	case session.ViewHome, session.ViewCategory:
		return m.renderListing()
	default:
		vp := m.content
		vp.SetContent(m.pageBody())
		return vp.View()
	}
}

// pageBody renders the body of the current long-form page.
func (m Model) pageBody() string {
	switch m.sess.View().Kind() {
	case session.ViewProductDetail:
		return m.renderDetail()
	case session.ViewVendorShop:
		return m.renderVendorShop()
	case session.ViewWorkshops:
		return m.renderWorkshops()
	case session.ViewCheckout:
		return m.renderCheckout()
	default:
		return ""
	}
}

// scrollContent scrolls the long-form page viewport. The current page
// body is loaded into the stored viewport first so the scroll bounds
// match what renderContent paints.
func (m *Model) scrollContent(delta int) {
	m.content.SetContent(m.pageBody())
	if delta >= 0 {
		m.content.LineDown(delta)
	} else {
		m.content.LineUp(-delta)
	}
}

// afterNav applies the render-side effects of a successful navigation:
// scroll reset and a fresh detail quantity.
func (m *Model) afterNav() {
	m.content.GotoTop()
	m.detailQty = 1
}

// listingQuery returns the filter query for the current listing page.
// The Category view pins its subject as the category selector.
func (m Model) listingQuery() catalog.Query {
	q := m.query
	if name, ok := m.sess.View().Category(); ok {
		q.Category = name
	}
	return q
}

// listing returns the products for the current listing page.
func (m Model) listing() []catalog.Product {
	return m.sess.Catalog().Filter(m.listingQuery())
}

// selectedProduct returns the highlighted listing row's product.
func (m Model) selectedProduct() (catalog.Product, bool) {
	items := m.listing()
	if len(items) == 0 || m.selectedRow < 0 || m.selectedRow >= len(items) {
		return catalog.Product{}, false
	}
	return items[m.selectedRow], true
}

// clampSelection keeps the listing selection in range after the
// filtered listing changes shape.
func (m *Model) clampSelection() {
	count := len(m.listing())
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
