package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vendoura/vendoura/internal/cart"
	"github.com/vendoura/vendoura/internal/catalog"
	"github.com/vendoura/vendoura/internal/prefs"
	"github.com/vendoura/vendoura/internal/session"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.sess.CartOpen() {
		return m.handleDrawerKey(msg)
	}
	if m.sess.ProfileOpen() {
		return m.handleProfileKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case "/":
		// Search lives on the listing pages.
		if !m.onListing() {
			m.sess.GoHome()
			m.afterNav()
		}
		m.searching = true
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "c":
		m.drawerRow = 0
		m.sess.ToggleCartDrawer()
		return m, nil

	case "u":
		m.sess.ToggleProfileMenu()
		return m, nil

	case "C":
		cmd := m.tryCheckout()
		return m, cmd

	case "W":
		m.sess.GoToWorkshops()
		m.afterNav()
		return m, nil

	case "esc":
		if m.sess.View().Kind() != session.ViewHome {
			m.sess.GoHome()
			m.afterNav()
		} else if m.query.Search != "" {
			m.query.Search = ""
			m.clampSelection()
		}
		return m, nil
	}

	// View-specific keys
	switch m.sess.View().Kind() {
	case session.ViewProductDetail:
		return m.handleDetailKey(msg)
	case session.ViewCheckout:
		return m.handleCheckoutKey(msg)
	case session.ViewVendorShop, session.ViewWorkshops:
		return m, nil
	default:
		return m.handleListingKey(msg)
	}
}

// onListing reports whether the current page shows the product listing.
func (m Model) onListing() bool {
	kind := m.sess.View().Kind()
	return kind == session.ViewHome || kind == session.ViewCategory
}

// handleListingKey processes input on the Home and Category pages.
func (m Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.listing()

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < len(items)-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if len(items) > 0 {
			m.selectedRow = len(items) - 1
		}

	case "enter":
		if p, ok := m.selectedProduct(); ok {
			m.sess.GoToProduct(p)
			m.afterNav()
		}

	case "a":
		if p, ok := m.selectedProduct(); ok {
			return m, m.addToCart(p)
		}

	case "w":
		if p, ok := m.selectedProduct(); ok {
			return m, m.toggleWishlist(p)
		}

	case "v":
		if p, ok := m.selectedProduct(); ok {
			m.sess.GoToVendor(m.sess.Catalog().VendorByName(p.VendorName))
			m.afterNav()
		}

	case "f":
		// Cycle category filter; the Category page pins its own.
		if m.sess.View().Kind() == session.ViewHome {
			m.query.Category = m.nextCategory()
			m.selectedRow = 0
		}

	case "s":
		m.query.Sort = m.query.Sort.Next()
		m.selectedRow = 0
	}

	return m, nil
}

// handleDetailKey processes input on the product detail page.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.sess.View().Product()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "right", "l":
		m.sess.Gallery().Next()
	case "left", "h":
		m.sess.Gallery().Prev()
	case "1", "2", "3", "4":
		// The thumbnail strip offers exactly the valid targets.
		target := int(msg.String()[0] - '1')
		if err := m.sess.Gallery().Seek(target); err != nil {
			return m, m.notify(toastError, "No such image")
		}

	case "+", "=":
		m.detailQty++
	case "-", "_":
		if m.detailQty > 1 {
			m.detailQty--
		}

	case "a":
		return m, m.addQuantity(p, m.detailQty)

	case "b":
		// Buy now: add the pending quantity, go straight to checkout.
		for i := 0; i < m.detailQty; i++ {
			m.sess.Cart().Add(p)
		}
		cmd := m.tryCheckout()
		return m, cmd

	case "w":
		return m, m.toggleWishlist(p)

	case "v":
		m.sess.GoToVendor(m.sess.Catalog().VendorByName(p.VendorName))
		m.afterNav()

	case "j", "down":
		m.scrollContent(1)
	case "k", "up":
		m.scrollContent(-1)
	}

	return m, nil
}

// handleCheckoutKey processes input on the checkout page.
func (m Model) handleCheckoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		receipt, err := m.sess.PlaceOrder()
		if err != nil {
			return m, m.notify(toastError, "Unable to place order")
		}
		m.afterNav()
		return m, m.notify(toastSuccess, fmt.Sprintf("Order placed successfully! %s", formatNaira(receipt.Total)))

	case "j", "down":
		m.scrollContent(1)
	case "k", "up":
		m.scrollContent(-1)
	}

	return m, nil
}

// handleDrawerKey processes input while the cart drawer is open.
func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.sess.Cart().Lines()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "c":
		m.sess.CloseCartDrawer()

	case "j", "down":
		if m.drawerRow < len(lines)-1 {
			m.drawerRow++
		}
	case "k", "up":
		if m.drawerRow > 0 {
			m.drawerRow--
		}

	case "+", "=":
		if line, ok := m.drawerLine(); ok {
			_ = m.sess.Cart().SetQuantity(line.Product.ID, line.Quantity+1)
		}

	case "-", "_":
		if line, ok := m.drawerLine(); ok {
			_ = m.sess.Cart().SetQuantity(line.Product.ID, line.Quantity-1)
			if line.Quantity == 1 {
				m.clampDrawerRow()
				return m, m.notify(toastInfo, fmt.Sprintf("%s removed from cart", line.Product.Name))
			}
		}

	case "x", "delete":
		if line, ok := m.drawerLine(); ok {
			m.sess.Cart().Remove(line.Product.ID)
			m.clampDrawerRow()
			return m, m.notify(toastInfo, fmt.Sprintf("%s removed from cart", line.Product.Name))
		}

	case "enter", "C":
		cmd := m.tryCheckout()
		return m, cmd
	}

	return m, nil
}

// handleProfileKey processes input while the profile menu is open.
func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "u", "enter":
		m.sess.ToggleProfileMenu()
	}
	return m, nil
}

// handleSearchKey routes keystrokes to the search box.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query.Search = m.searchInput.Value()
	m.clampSelection()
	return m, cmd
}

// tryCheckout attempts the guarded checkout transition; the rejection
// surfaces as a toast and the session stays where it was.
func (m *Model) tryCheckout() tea.Cmd {
	if err := m.sess.GoToCheckout(); err != nil {
		return m.notify(toastError, "Your cart is empty")
	}
	m.afterNav()
	return nil
}

// addToCart adds one unit and toasts the outcome.
func (m *Model) addToCart(p catalog.Product) tea.Cmd {
	switch m.sess.Cart().Add(p) {
	case cart.OutcomeIncreased:
		return m.notify(toastSuccess, fmt.Sprintf("Increased quantity of %s", p.Name))
	default:
		return m.notify(toastSuccess, fmt.Sprintf("%s added to cart!", p.Name))
	}
}

// addQuantity adds qty units of the product from the detail page.
func (m *Model) addQuantity(p catalog.Product, qty int) tea.Cmd {
	for i := 0; i < qty; i++ {
		m.sess.Cart().Add(p)
	}
	noun := "item"
	if qty > 1 {
		noun = "items"
	}
	return m.notify(toastSuccess, fmt.Sprintf("Added %d %s to cart", qty, noun))
}

// toggleWishlist flips wishlist membership and toasts the result.
func (m *Model) toggleWishlist(p catalog.Product) tea.Cmd {
	if m.sess.Wishlist().Toggle(p.ID) {
		return m.notify(toastSuccess, fmt.Sprintf("%s saved to wishlist", p.Name))
	}
	return m.notify(toastInfo, fmt.Sprintf("%s removed from wishlist", p.Name))
}

// drawerLine returns the cart line under the drawer cursor.
func (m Model) drawerLine() (cart.Line, bool) {
	lines := m.sess.Cart().Lines()
	if m.drawerRow < 0 || m.drawerRow >= len(lines) {
		return cart.Line{}, false
	}
	return lines[m.drawerRow], true
}

// clampDrawerRow keeps the drawer cursor in range after removals.
func (m *Model) clampDrawerRow() {
	count := m.sess.Cart().LineCount()
	if count == 0 {
		m.drawerRow = 0
		return
	}
	if m.drawerRow >= count {
		m.drawerRow = count - 1
	}
}

// nextCategory cycles All -> each category -> All.
func (m Model) nextCategory() string {
	cats := append([]string{catalog.CategoryAll}, m.sess.Catalog().Categories()...)
	for i, c := range cats {
		if c == m.query.Category {
			return cats[(i+1)%len(cats)]
		}
	}
	return catalog.CategoryAll
}
