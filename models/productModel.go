package models

import "slices"

// CategoryAll is the filter sentinel meaning "no category filter". It is
// never a storable product category.
const CategoryAll = "all"

// Categories a product can be listed under.
var Categories = []string{"electronics", "clothing", "furniture", "books", "sports"}

func ValidCategory(category string) bool {
	return slices.Contains(Categories, category)
}

type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	SellerID    string  `json:"sellerId"`
	SellerName  string  `json:"sellerName"`
}

// ProductPayload carries the seller-editable fields of a listing. The id
// and seller identity are always assigned by the store.
type ProductPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}
