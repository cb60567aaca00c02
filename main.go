package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/initializers"
	"github.com/kamaucodes/sokomart-api/routes"
	"github.com/kamaucodes/sokomart-api/storage"
	"github.com/kamaucodes/sokomart-api/store"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	marketStore := store.New(storage.NewGormKV(initializers.DB))
	marketStore.Load()

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.sokomart.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, marketStore)
	routes.ProductRoutes(server, marketStore)
	routes.CartRoutes(server, marketStore)
	routes.CheckoutRoutes(server, marketStore)
	server.Run()
}
