package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/controllers"
	"github.com/kamaucodes/sokomart-api/middlewares"
	"github.com/kamaucodes/sokomart-api/store"
)

func CartRoutes(server *gin.Engine, s *store.Store) {
	server.GET("/cart", middlewares.RequireSession(), controllers.GetCart(s))
	server.POST("/cart", middlewares.RequireSession(), controllers.CreateCartItem(s))
	server.DELETE("/cart/:productId", middlewares.RequireSession(), controllers.RemoveCartItem(s))
}
