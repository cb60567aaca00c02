package models

// CartLine associates a product with a quantity. The product fields are a
// copy taken when the line was created, so later catalog edits do not
// change what is already in the cart.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
