package handler

import (
	"errors"
	"net/http"

	"github.com/TravelTales/blog-service/internal/countryapi"
	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidUserID = errors.New("invalid user ID")
)

// respondError maps a domain error to an HTTP status. Unknown errors
// become a generic 500 so store internals never reach the client.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrCannotFollowSelf),
		errors.Is(err, countryapi.ErrCountryNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrPostNotFoundOrUnauthorized),
		errors.Is(err, service.ErrCommentNotFoundOrUnauthorized):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrAlreadyFollowing):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, countryapi.ErrLookupFailed):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(countryapi.ErrLookupFailed.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(service.ErrInternal.Error()))
	}
}
