package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kamaucodes/sokomart-api/controllers"
	"github.com/kamaucodes/sokomart-api/middlewares"
	"github.com/kamaucodes/sokomart-api/store"
)

func AuthRoutes(server *gin.Engine, s *store.Store) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup(s))
		auth.POST("/login", controllers.Login(s))
		auth.POST("/logout", middlewares.RequireSession(), controllers.Logout(s))
		auth.PUT("/profile", middlewares.RequireSession(), controllers.UpdateProfile(s))
	}
	server.GET("/dashboard", middlewares.RequireSession(), controllers.GetDashboard(s))
}
