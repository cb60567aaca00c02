package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/controllers"
	"github.com/kamaucodes/sokomart-api/middlewares"
	"github.com/kamaucodes/sokomart-api/store"
)

func ProductRoutes(server *gin.Engine, s *store.Store) {
	server.GET("/product", controllers.GetProducts(s))
	server.GET("/product/:id", controllers.GetProduct(s))
	server.POST("/product", middlewares.RequireSession(), controllers.CreateProduct(s))
	server.PUT("/product/:id", middlewares.RequireSession(), controllers.UpdateProduct(s))
	server.DELETE("/product/:id", middlewares.RequireSession(), controllers.DeleteProduct(s))
	server.GET("/my-listings", middlewares.RequireSession(), controllers.GetMyListings(s))
}
