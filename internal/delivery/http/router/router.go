// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	PostHandler *handler.PostHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	postHandler *handler.PostHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		postHandler: params.PostHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", r.postHandler.GetAllPosts)
		postGroup.GET("/:id", r.postHandler.GetPostByID)
		postGroup.GET("/user/:userId", r.postHandler.GetPostsByUserID)
		postGroup.GET("/username/:username", r.postHandler.GetPostsByUsername)
		postGroup.POST("", r.postHandler.CreatePost)
		postGroup.PUT("/:id", r.postHandler.UpdatePost)
		postGroup.DELETE("/:id", r.postHandler.DeletePost)
	}

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.GetAllUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.DELETE("", r.userHandler.DeleteUser)
		userGroup.PUT("/password", r.userHandler.ChangePassword)
	}
}
