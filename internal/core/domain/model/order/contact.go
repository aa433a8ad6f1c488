package order

// Contact holds the customer-supplied delivery details captured at checkout.
// All fields are free-form text; required-field validation happens upstream
// in the HTTP layer before an order reaches the domain.
//
// Email doubles as the correlation key for ownership reconciliation: orders
// placed anonymously are later linked to a registered user whose email
// matches exactly what was stored here.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// LineItem is a single position of an order: a product reference with a
// quantity and optional variant attributes. Line items are immutable after
// order creation.
type LineItem struct {
	ProductID string
	Quantity  int
	Color     string
	Size      string
}
