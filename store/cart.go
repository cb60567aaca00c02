package store

import (
	"fmt"

	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
)

// AddToCart adds one unit of a catalog product to the cart. A product
// already in the cart gets its quantity bumped instead of a second line;
// a new line copies the product's fields as they are right now.
func (s *Store) AddToCart(productID int64) (models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.findProduct(productID)
	if index < 0 {
		return models.CartLine{}, &NotFoundError{Message: fmt.Sprintf("product %d not found", productID)}
	}

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			if err := s.persist(storage.KeyCart); err != nil {
				return models.CartLine{}, err
			}
			return s.cart[i], nil
		}
	}

	line := models.CartLine{Product: s.products[index], Quantity: 1}
	s.cart = append(s.cart, line)

	if err := s.persist(storage.KeyCart); err != nil {
		return models.CartLine{}, err
	}
	return line, nil
}

// RemoveFromCart drops the whole line regardless of quantity. Removing a
// product that is not in the cart is a silent no-op; the asymmetry with
// DeleteProduct is deliberate.
func (s *Store) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	s.cart = kept

	return s.persist(storage.KeyCart)
}

// CartLines returns a snapshot of the cart.
func (s *Store) CartLines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine{}, s.cart...)
}

// CartTotal sums price times quantity over all lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cart)
}

// CartItemCount sums quantities, for the cart badge.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

func cartTotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}
