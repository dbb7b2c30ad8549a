package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) about(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", nil)
}
