package handlers

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// One-shot messages shown on the next rendered page, carried in a signed
// cookie between the redirect and the render.

const flashCookieName = "techblog_flash"

// Flash severities, matched by the templates for styling.
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashWarning = "warning"
	flashDanger  = "danger"
)

// User-facing messages.
const (
	msgLoginSuccess   = "Login successful!"
	msgInvalidCreds   = "Invalid credentials"
	msgUsernameTaken  = "Username already exists"
	msgRegistered     = "Registered successfully!"
	msgUnauthorized   = "Unauthorized access"
	msgBlogCreated    = "Blog created successfully!"
	msgBlogUpdated    = "Blog updated!"
	msgBlogDeleted    = "Blog deleted."
	msgCommentPosted  = "Comment posted!"
	msgLoginToComment = "Login to comment"
	msgLoginDashboard = "Please login to access the dashboard"
	msgLoginToCreate  = "Login required to create blog"
	msgLoginToManage  = "Login required to manage blogs"
	msgLoggedOut      = "Logged out successfully"
	msgUserNotFound   = "User not found"
)

// FlashMessage is one severity-tagged notice for the templates.
type FlashMessage struct {
	Severity string
	Text     string
}

// setFlash queues a one-shot message for the next rendered page.
func setFlash(c *gin.Context, severity, text string) {
	s := sessions.Default(c)
	s.AddFlash(severity + "|" + text)
	_ = s.Save()
}

// takeFlashes drains the queued messages, consuming them.
func takeFlashes(c *gin.Context) []FlashMessage {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save() // persist the drain

	out := make([]FlashMessage, 0, len(raw))
	for _, v := range raw {
		text, ok := v.(string)
		if !ok {
			continue
		}
		severity, message, found := strings.Cut(text, "|")
		if !found {
			severity, message = flashInfo, text
		}
		out = append(out, FlashMessage{Severity: severity, Text: message})
	}
	return out
}
