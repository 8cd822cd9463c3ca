package handler

import (
	"net/http"
	"os"
	"strings"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userIDKey = "userID"
	tokenKey  = "token"
)

func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	accessToken := strings.Split(header, " ")[1]
	if accessToken == "" {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	if h.services.User.IsTokenRevoked(c.Request.Context(), accessToken) {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	idString, _ := claims["id"].(string)
	id, err := uuid.Parse(idString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		c.Abort()
		return
	}

	c.Set(userIDKey, id)
	c.Set(tokenKey, accessToken)

	c.Next()
}
