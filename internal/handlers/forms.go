package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// One explicit struct per form, populated field by field and validated with
// a plain function returning field→message. No reflection-based binding.

type registerForm struct {
	Username string
	Password string
	Bio      string
}

func registerFormFrom(c *gin.Context) registerForm {
	return registerForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
		Bio:      strings.TrimSpace(c.PostForm("bio")),
	}
}

func (f registerForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Username == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type loginForm struct {
	Username string
	Password string
}

func loginFormFrom(c *gin.Context) loginForm {
	return loginForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
	}
}

func (f loginForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Username == "" {
		errs["username"] = "Username is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type blogForm struct {
	Title    string
	Content  string
	Category string
}

func blogFormFrom(c *gin.Context) blogForm {
	return blogForm{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Content:  strings.TrimSpace(c.PostForm("content")),
		Category: strings.TrimSpace(c.PostForm("category")),
	}
}

func (f blogForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Title == "" {
		errs["title"] = "Title is required"
	}
	if f.Content == "" {
		errs["content"] = "Content is required"
	}
	if f.Category == "" {
		errs["category"] = "Category is required"
	}
	return errs
}

type commentForm struct {
	Content string
}

func commentFormFrom(c *gin.Context) commentForm {
	return commentForm{
		Content: strings.TrimSpace(c.PostForm("content")),
	}
}

func (f commentForm) validate() map[string]string {
	errs := map[string]string{}
	if f.Content == "" {
		errs["content"] = "Comment is required"
	}
	return errs
}
