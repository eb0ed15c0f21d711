package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialpedia/backend/server/api"
	"github.com/socialpedia/backend/server/middlewares"
	"github.com/socialpedia/backend/server/token"
)

// RegisterRoutes wires the full HTTP surface onto the router. /auth is public,
// everything else sits behind the bearer token middleware unless bypassAuth is
// set for local debugging (the acting user is then read straight from the
// "sub" header).
func RegisterRoutes(router *gin.Engine, a *api.API, tokens *token.Service, bypassAuth bool) {
	// Health check route.
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	auth := router.Group("/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)

	protected := router.Group("/")
	if !bypassAuth {
		protected.Use(middlewares.Auth(tokens))
	}

	users := protected.Group("/users")
	users.GET("/:id", a.GetUser)
	users.GET("/:id/friends", a.GetFriends)
	users.PATCH("/:id/:friendId", a.ToggleFriend)

	posts := protected.Group("/posts")
	posts.POST("", a.CreatePost)
	posts.GET("", a.GetFeedPosts)
	posts.GET("/:userId/posts", a.GetUserPosts)
	posts.PATCH("/:id/like", a.LikePost)
	posts.POST("/:id/comment", a.CommentPost)
}
