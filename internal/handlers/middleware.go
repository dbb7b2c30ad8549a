package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techblog/internal/models"
)

const (
	sessionCookieName = "session_token"
	ctxIdentityKey    = "identity"
	ctxRequestIDKey   = "requestId"
)

// identityMiddleware resolves the session cookie into an identity for the
// request. Missing, tampered or expired tokens leave the request anonymous;
// expiry is only ever checked here, lazily.
func (h *Handler) identityMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err == nil && token != "" {
		if identity, perr := h.services.Sessions.Parse(token); perr == nil {
			c.Set(ctxIdentityKey, identity)
		}
	}
	c.Next()
}

// currentIdentity returns the identity stored by identityMiddleware, or the
// anonymous zero value.
func currentIdentity(c *gin.Context) models.Identity {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return models.Identity{}
	}
	identity, _ := v.(models.Identity)
	return identity
}

// requireAuth gates a route on a logged-in session. Anonymous visitors get
// a warning flash and land on the login page.
func (h *Handler) requireAuth(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentIdentity(c).Authenticated() {
			c.Next()
			return
		}
		setFlash(c, flashWarning, message)
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

// requestLogger logs one line per request with a generated request id.
func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.log == nil {
			c.Next()
			return
		}
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(ctxRequestIDKey, requestID)

		c.Next()

		h.log.Infow("http_request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
