// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	VoteHandler    *handler.VoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	voteHandler    *handler.VoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		voteHandler:    params.VoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/login", r.userHandler.Login)

	// User routes; registration and profile lookup are public
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Post routes; reads are public, writes require authentication
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.ListPosts)
		postGroup.GET("/:id", r.postHandler.GetPost)
		postGroup.POST("", r.postHandler.CreatePost, r.authMiddleware.Authenticate)
		postGroup.PUT("/:id", r.postHandler.UpdatePost, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.DeletePost, r.authMiddleware.Authenticate)
	}

	// Vote routes require authentication
	voteGroup := e.Group("/votes")
	voteGroup.Use(r.authMiddleware.Authenticate)
	{
		voteGroup.POST("", r.voteHandler.CastVote)
	}
}
