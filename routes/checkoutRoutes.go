package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/controllers"
	"github.com/kamaucodes/sokomart-api/middlewares"
	"github.com/kamaucodes/sokomart-api/store"
)

func CheckoutRoutes(server *gin.Engine, s *store.Store) {
	server.POST("/checkout", middlewares.RequireSession(), controllers.Checkout(s))
	server.GET("/purchases", middlewares.RequireSession(), controllers.GetPurchases(s))
}
