package catalog

// Product is a single catalog listing. Products are loaded once at
// startup and never mutated afterwards; prices are whole Naira.
type Product struct {
	ID           int
	Name         string
	Category     string
	Price        int
	Rating       float64
	ReviewCount  int
	VendorName   string
	ImageBaseURL string
	InStock      bool
	Description  string
}

// Vendor is a storefront owner with products in the catalog.
type Vendor struct {
	Name      string
	Category  string
	Rating    float64
	Followers int
}

// Workshop is an upcoming event listed on the workshops page.
type Workshop struct {
	Title      string
	Date       string
	Time       string
	Instructor string
	Attendees  int
	Price      int
}
