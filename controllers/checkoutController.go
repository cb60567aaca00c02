package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/store"
	"github.com/kamaucodes/sokomart-api/utils"
)

// Checkout converts the cart into a purchase record. The receipt email
// and the webhook notification are best-effort: a failure there is
// logged but never fails a purchase that has already been recorded.
func Checkout(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		purchase, err := s.Checkout()
		if err != nil {
			respondStoreError(ctx, err)
			return
		}

		if user, ok := s.CurrentUser(); ok {
			if err := utils.SendPurchaseReceipt(user, purchase); err != nil {
				log.Println("Error sending purchase receipt:", err)
			}
		}
		if err := utils.NotifyPurchase(purchase); err != nil {
			log.Println("Error notifying purchase webhook:", err)
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":  "Purchase completed successfully!",
			"purchase": purchase,
		})
	}
}

// GetPurchases returns the purchase history, oldest first.
func GetPurchases(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"purchases": s.Purchases()})
	}
}
