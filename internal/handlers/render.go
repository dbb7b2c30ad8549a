package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"techblog/internal/repository"
)

// render executes a page template with the identity and pending flashes
// every page needs.
func (h *Handler) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Identity"] = currentIdentity(c)
	data["Flashes"] = takeFlashes(c)
	// Form templates index .Errors; give them an empty map to index when the
	// handler had no field errors to report.
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	c.HTML(status, page, data)
}

// notFound renders the not-found page, for unmatched routes and missing
// entities alike.
func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", nil)
}

// internalError logs the failure and ends the request; nothing here is
// user-recoverable.
func (h *Handler) internalError(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "err", err)
	}
	c.AbortWithStatus(http.StatusInternalServerError)
}

// serveLookupError maps a failed entity read to the 404 page or a 500.
func (h *Handler) serveLookupError(c *gin.Context, logKey string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c)
		return
	}
	h.internalError(c, logKey, err)
}

// idParam parses the :id path segment. False means the 404 page was served.
func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.notFound(c)
		return 0, false
	}
	return id, true
}

// pageParam reads ?page=, defaulting to 1 and clamping to ≥1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
