package store

import (
	"fmt"
	"iter"
	"strings"

	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
)

func validateListing(payload models.ProductPayload) error {
	if payload.Title == "" || payload.Description == "" || payload.Category == "" {
		return &ValidationError{Message: msgFillAllFields}
	}
	if !models.ValidCategory(payload.Category) {
		return &ValidationError{Message: fmt.Sprintf("unknown category %q", payload.Category)}
	}
	if payload.Price <= 0 {
		return &ValidationError{Message: "price must be a positive number"}
	}
	return nil
}

// AddProduct appends a listing for the active user. The seller name is
// copied from the user at creation time and never updated afterwards.
func (s *Store) AddProduct(payload models.ProductPayload) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.Product{}, &PreconditionError{Message: "no active session"}
	}
	if err := validateListing(payload); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          s.nextProductID,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		Price:       payload.Price,
		SellerID:    s.user.ID,
		SellerName:  s.user.Username,
	}
	s.nextProductID++
	s.products = append(s.products, product)

	if err := s.persist(storage.KeyProducts); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// EditProduct overwrites the editable fields of a listing in place,
// preserving its id and seller identity.
func (s *Store) EditProduct(id int64, payload models.ProductPayload) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.findProduct(id)
	if index < 0 {
		return models.Product{}, &NotFoundError{Message: fmt.Sprintf("product %d not found", id)}
	}
	if err := validateListing(payload); err != nil {
		return models.Product{}, err
	}

	product := &s.products[index]
	product.Title = payload.Title
	product.Description = payload.Description
	product.Category = payload.Category
	product.Price = payload.Price

	if err := s.persist(storage.KeyProducts); err != nil {
		return models.Product{}, err
	}
	return *product, nil
}

// DeleteProduct removes a listing. Deleting an id that is already gone
// is an error, unlike RemoveFromCart.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.findProduct(id)
	if index < 0 {
		return &NotFoundError{Message: fmt.Sprintf("product %d not found", id)}
	}
	s.products = append(s.products[:index], s.products[index+1:]...)

	return s.persist(storage.KeyProducts)
}

// GetProduct returns a listing by id.
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.findProduct(id)
	if index < 0 {
		return models.Product{}, &NotFoundError{Message: fmt.Sprintf("product %d not found", id)}
	}
	return s.products[index], nil
}

// Products returns a snapshot of the catalog in listing order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...)
}

// Search matches the term case-insensitively against titles and
// descriptions. The empty term matches everything. The sequence is lazy
// and can be ranged over more than once; each restart sees a fresh
// snapshot of the catalog.
func (s *Store) Search(term string) iter.Seq[models.Product] {
	needle := strings.ToLower(term)
	return func(yield func(models.Product) bool) {
		for _, product := range s.Products() {
			if needle != "" &&
				!strings.Contains(strings.ToLower(product.Title), needle) &&
				!strings.Contains(strings.ToLower(product.Description), needle) {
				continue
			}
			if !yield(product) {
				return
			}
		}
	}
}

// FilterByCategory yields listings with an exact category match.
// models.CategoryAll disables the filter.
func (s *Store) FilterByCategory(category string) iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, product := range s.Products() {
			if category != models.CategoryAll && product.Category != category {
				continue
			}
			if !yield(product) {
				return
			}
		}
	}
}

// ListBySeller yields the listings owned by a seller, catalog order
// preserved.
func (s *Store) ListBySeller(sellerID string) iter.Seq[models.Product] {
	return func(yield func(models.Product) bool) {
		for _, product := range s.Products() {
			if product.SellerID != sellerID {
				continue
			}
			if !yield(product) {
				return
			}
		}
	}
}

// findProduct is called with the lock held.
func (s *Store) findProduct(id int64) int {
	for i, product := range s.products {
		if product.ID == id {
			return i
		}
	}
	return -1
}
