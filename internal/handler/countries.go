package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) countriesGetNames(c *gin.Context) {
	names, err := h.services.Country.AllNames(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, names)
}

func (h *Handler) countriesGet(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	country, err := h.services.Country.Find(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, *country)
}
