package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

// queryInt reads a numeric query param, falling back to def when the
// param is absent or not a number (matching lenient pagination handling).
func queryInt(c *gin.Context, name string, def int) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return value
}

func (h *Handler) postIDParam(c *gin.Context) (int64, bool) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidPostID.Error()))
		return 0, false
	}
	return postID, true
}

func (h *Handler) blogsCreate(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) blogsEdit(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	post, err := h.services.Post.Edit(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) blogsDelete(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.DeletePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.Post.Delete(c.Request.Context(), input.PostID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) blogsSearch(c *gin.Context) {
	params := service.SearchParams{
		Country:  c.Query("country"),
		Username: c.Query("username"),
		SortBy:   c.Query("sortBy"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 0),
	}

	posts, err := h.services.Post.Search(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) blogsFeed(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	posts, err := h.services.Post.Feed(c.Request.Context(), userID, page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) blogsGetByID(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) blogsLike(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.LikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.Post.SetReaction(c.Request.Context(), userID, input.PostID, *input.IsLike); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) blogsUnlike(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.UnlikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.Post.ClearReaction(c.Request.Context(), userID, input.PostID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) blogsGetLikes(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	reactions, err := h.services.Post.FindPostReactions(c.Request.Context(), postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reactions)
}
