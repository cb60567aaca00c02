package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/store"
)

func parseProductID(ctx *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return id, true
}

// CreateProduct lists a product for the active user.
func CreateProduct(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload models.ProductPayload
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		product, err := s.AddProduct(payload)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct edits a listing in place.
func UpdateProduct(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseProductID(ctx, "id")
		if !ok {
			return
		}

		var payload models.ProductPayload
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		product, err := s.EditProduct(id, payload)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes a listing.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseProductID(ctx, "id")
		if !ok {
			return
		}

		if err := s.DeleteProduct(id); err != nil {
			respondStoreError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// GetProducts returns the catalog feed, optionally narrowed by a search
// term and a category filter.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		search := ctx.Query("search")
		category := ctx.DefaultQuery("category", models.CategoryAll)

		products := make([]models.Product, 0)
		for product := range s.Search(search) {
			if category != models.CategoryAll && product.Category != category {
				continue
			}
			products = append(products, product)
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"products": products,
			"metadata": gin.H{"total": len(products)},
		})
	}
}

// GetProduct returns a single listing.
func GetProduct(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseProductID(ctx, "id")
		if !ok {
			return
		}

		product, err := s.GetProduct(id)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, product)
	}
}

// GetMyListings returns the active user's own listings.
func GetMyListings(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := s.CurrentUser()
		if !ok {
			sendErrorResponse(ctx, http.StatusConflict, "no active session")
			return
		}

		listings := make([]models.Product, 0)
		for product := range s.ListBySeller(user.ID) {
			listings = append(listings, product)
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"products": listings})
	}
}
