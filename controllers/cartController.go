package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/store"
)

// CreateCartItem adds one unit of a product to the cart.
func CreateCartItem(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body struct {
			ProductID int64 `json:"productId"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		line, err := s.AddToCart(body.ProductID)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":   line.Title + " added to cart",
			"line":      line,
			"cartCount": s.CartItemCount(),
		})
	}
}

// RemoveCartItem drops a cart line. Unknown product ids are a no-op, so
// this never 404s.
func RemoveCartItem(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseProductID(ctx, "productId")
		if !ok {
			return
		}

		if err := s.RemoveFromCart(id); err != nil {
			respondStoreError(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":   "Product removed from cart",
			"cartCount": s.CartItemCount(),
		})
	}
}

// GetCart returns the cart lines with the running total and badge count.
func GetCart(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"items":     s.CartLines(),
			"total":     s.CartTotal(),
			"cartCount": s.CartItemCount(),
		})
	}
}
