package handler

import (
	"os"
	"strings"

	"github.com/TravelTales/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.Next()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.Next()
		return
	}

	if h.services.User.IsTokenRevoked(c.Request.Context(), accessToken) {
		c.Next()
		return
	}

	idString, _ := claims["id"].(string)
	id, err := uuid.Parse(idString)
	if err != nil {
		c.Next()
		return
	}

	c.Set(userIDKey, id)
	c.Set(tokenKey, accessToken)

	c.Next()
}
