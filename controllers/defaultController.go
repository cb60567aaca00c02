package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Sokomart API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create a demo account
- POST "/auth/login" - Start a demo session
- POST "/auth/logout" - End the current session
- PUT "/auth/profile" - Update the active user's profile
- GET "/dashboard" - Profile plus listing and purchase counters

PRODUCT
- GET "/product" - Browse the catalog (query: search, category)
- GET "/product/{id}" - Get product by ID
- POST "/product" - List a new product
- PUT "/product/{id}" - Edit a listing
- DELETE "/product/{id}" - Remove a listing
- GET "/my-listings" - The active user's listings

CART
- GET "/cart" - Cart contents, total and badge count
- POST "/cart" - Add a product to the cart
- DELETE "/cart/{productId}" - Remove a cart line

CHECKOUT
- POST "/checkout" - Turn the cart into a purchase
- GET "/purchases" - Purchase history`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
