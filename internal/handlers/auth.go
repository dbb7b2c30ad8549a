package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"techblog/internal/service"
)

func (h *Handler) registerPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Form": registerForm{}})
}

func (h *Handler) register(c *gin.Context) {
	form := registerFormFrom(c)
	if errs := form.validate(); len(errs) > 0 {
		h.render(c, http.StatusOK, "register.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	_, err := h.services.Auth.Register(c.Request.Context(), form.Username, form.Password, form.Bio)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			setFlash(c, flashWarning, msgUsernameTaken)
			h.render(c, http.StatusOK, "register.html", gin.H{"Form": form})
			return
		}
		h.internalError(c, "register_failed", err)
		return
	}

	setFlash(c, flashSuccess, msgRegistered)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Form": loginForm{}})
}

func (h *Handler) login(c *gin.Context) {
	form := loginFormFrom(c)
	if errs := form.validate(); len(errs) > 0 {
		h.render(c, http.StatusOK, "login.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	user, err := h.services.Auth.Verify(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_failed", "username", form.Username)
			}
			setFlash(c, flashDanger, msgInvalidCreds)
			h.render(c, http.StatusOK, "login.html", gin.H{"Form": form})
			return
		}
		h.internalError(c, "login_failed", err)
		return
	}

	token, err := h.services.Sessions.Issue(user)
	if err != nil {
		h.internalError(c, "issue_session_failed", err)
		return
	}
	c.SetCookie(sessionCookieName, token, int(h.services.Sessions.TTL().Seconds()), "/", "", false, true)

	setFlash(c, flashSuccess, msgLoginSuccess)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	setFlash(c, flashInfo, msgLoggedOut)
	c.Redirect(http.StatusSeeOther, "/")
}
