package store

import (
	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
)

// Checkout turns the current cart into an immutable purchase record and
// empties the cart. The purchase items are a value snapshot, so later
// catalog edits never alter history. Both collections are mirrored in a
// single batch write.
func (s *Store) Checkout() (models.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Purchase{}, &PreconditionError{Message: "your cart is empty"}
	}

	items := append([]models.CartLine{}, s.cart...)
	purchase := models.Purchase{
		ID:    s.newID(),
		Date:  s.now(),
		Items: items,
		Total: cartTotal(items),
	}

	s.purchases = append(s.purchases, purchase)
	s.cart = []models.CartLine{}

	if err := s.persist(storage.KeyCart, storage.KeyPurchases); err != nil {
		return models.Purchase{}, err
	}
	return purchase, nil
}

// Purchases returns a snapshot of the purchase history, oldest first.
func (s *Store) Purchases() []models.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Purchase{}, s.purchases...)
}
