package store

import "github.com/kamaucodes/sokomart-api/models"

// sampleCatalog is the demo inventory a fresh install starts with.
func sampleCatalog() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Title:       "Vintage Camera",
			Description: "Beautiful vintage camera in excellent condition. Perfect for photography enthusiasts.",
			Category:    "electronics",
			Price:       150.00,
			SellerID:    "user1",
			SellerName:  "John Doe",
		},
		{
			ID:          2,
			Title:       "Designer Jacket",
			Description: "Stylish designer jacket, barely worn. Great for fashion-conscious individuals.",
			Category:    "clothing",
			Price:       75.00,
			SellerID:    "user2",
			SellerName:  "Jane Smith",
		},
		{
			ID:          3,
			Title:       "Wooden Bookshelf",
			Description: "Solid wood bookshelf with 5 shelves. Perfect for organizing books and decorations.",
			Category:    "furniture",
			Price:       120.00,
			SellerID:    "user3",
			SellerName:  "Mike Johnson",
		},
		{
			ID:          4,
			Title:       "Programming Books",
			Description: "Collection of programming books including JavaScript, Python, and React guides.",
			Category:    "books",
			Price:       45.00,
			SellerID:    "user1",
			SellerName:  "John Doe",
		},
		{
			ID:          5,
			Title:       "Tennis Racket",
			Description: "Professional tennis racket, used but in good condition. Great for intermediate players.",
			Category:    "sports",
			Price:       85.00,
			SellerID:    "user2",
			SellerName:  "Jane Smith",
		},
	}
}
