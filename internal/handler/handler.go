package handler

import (
	"github.com/TravelTales/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.authRegister)
			auth.POST("/login", h.authLogin)
			auth.POST("/logout", h.authMiddleware, h.authLogout)
		}

		users := v1.Group("/users")
		{
			users.GET("", h.authMiddleware, h.usersList)
			users.GET("/me", h.authMiddleware, h.usersGetMe)
			users.PATCH("/me", h.authMiddleware, h.usersUpdateMe)
			users.POST("/follow", h.authMiddleware, h.usersFollow)
			users.POST("/unfollow", h.authMiddleware, h.usersUnfollow)
			users.GET("/:userID/followers", h.usersGetFollowers)
			users.GET("/:userID/following", h.usersGetFollowing)
		}

		blogs := v1.Group("/blogs")
		{
			blogs.GET("/search", h.blogsSearch)
			blogs.GET("/feed", h.authMiddleware, h.blogsFeed)

			blogs.POST("", h.authMiddleware, h.blogsCreate)
			blogs.PUT("", h.authMiddleware, h.blogsEdit)
			blogs.DELETE("", h.authMiddleware, h.blogsDelete)

			blogs.POST("/like", h.authMiddleware, h.blogsLike)
			blogs.DELETE("/like", h.authMiddleware, h.blogsUnlike)
			blogs.POST("/comment", h.authMiddleware, h.blogsComment)
			blogs.DELETE("/comment", h.authMiddleware, h.blogsDeleteComment)

			post := blogs.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.blogsGetByID)
				post.GET("/likes", h.blogsGetLikes)
				post.GET("/comments", h.blogsGetComments)
			}
		}

		countries := v1.Group("/countries")
		{
			countries.GET("", h.countriesGetNames)
			countries.GET("/:name", h.countriesGet)
		}
	}

	return r
}

// getUserIDFromRequest returns the authenticated caller's id, or uuid.Nil
// when the request carries no valid identity.
func (h *Handler) getUserIDFromRequest(c *gin.Context) uuid.UUID {
	value, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}

	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return id
}
