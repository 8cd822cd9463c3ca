package handler

import (
	"net/http"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) blogsComment(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdComment)
}

func (h *Handler) blogsGetComments(c *gin.Context) {
	postID, ok := h.postIDParam(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), postID, page, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *Handler) blogsDeleteComment(c *gin.Context) {
	userID := h.getUserIDFromRequest(c)

	var input dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), input.CommentID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
