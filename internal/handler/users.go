package handler

import (
	"net/http"
	"strings"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) authRegister(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	user, err := h.services.User.Register(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *user)
}

func (h *Handler) authLogin(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	resp, err := h.services.User.Login(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *resp)
}

func (h *Handler) authLogout(c *gin.Context) {
	token, _ := c.Get(tokenKey)
	accessToken, ok := token.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized.Error()))
		return
	}

	if err := h.services.User.Logout(c.Request.Context(), accessToken); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) usersGetMe(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	user, err := h.services.User.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *user)
}

func (h *Handler) usersUpdateMe(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	user, err := h.services.User.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *user)
}

func (h *Handler) usersList(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	users, err := h.services.User.ListOthers(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) usersFollow(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.FollowRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.User.Follow(c.Request.Context(), userID, input.UserID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) usersUnfollow(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.FollowRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.User.Unfollow(c.Request.Context(), userID, input.UserID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) userIDParam(c *gin.Context) (uuid.UUID, bool) {
	userIDString := strings.TrimSpace(c.Param("userID"))
	userID, err := uuid.Parse(userIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidUserID.Error()))
		return uuid.Nil, false
	}
	return userID, true
}

func (h *Handler) usersGetFollowers(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	users, err := h.services.User.FindFollowers(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) usersGetFollowing(c *gin.Context) {
	userID, ok := h.userIDParam(c)
	if !ok {
		return
	}

	users, err := h.services.User.FindFollowing(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
