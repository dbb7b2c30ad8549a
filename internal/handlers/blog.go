package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"techblog/internal/service"
)

func (h *Handler) home(c *gin.Context) {
	query := c.Query("q")
	page, err := h.services.Blogs.List(c.Request.Context(), query, pageParam(c))
	if err != nil {
		h.internalError(c, "list_blogs_failed", err)
		return
	}
	h.render(c, http.StatusOK, "home.html", gin.H{"Blogs": page, "Query": query})
}

func (h *Handler) technicalBlogs(c *gin.Context) {
	page, err := h.services.Blogs.List(c.Request.Context(), "", pageParam(c))
	if err != nil {
		h.internalError(c, "list_blogs_failed", err)
		return
	}
	h.render(c, http.StatusOK, "technical_blogs.html", gin.H{"Blogs": page})
}

func (h *Handler) profile(c *gin.Context) {
	user, err := h.services.Users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.serveLookupError(c, "profile_lookup_failed", err)
		return
	}
	page, err := h.services.Blogs.ListByAuthor(c.Request.Context(), user.ID, pageParam(c))
	if err != nil {
		h.internalError(c, "list_blogs_failed", err)
		return
	}
	h.render(c, http.StatusOK, "profile.html", gin.H{"User": user, "Blogs": page})
}

func (h *Handler) dashboard(c *gin.Context) {
	identity := currentIdentity(c)
	user, err := h.services.Users.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		// A valid session for a vanished account: drop the session.
		setFlash(c, flashDanger, msgUserNotFound)
		c.Redirect(http.StatusSeeOther, "/logout")
		return
	}
	page, err := h.services.Blogs.ListByAuthor(c.Request.Context(), user.ID, pageParam(c))
	if err != nil {
		h.internalError(c, "list_blogs_failed", err)
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", gin.H{"User": user, "Blogs": page})
}

func (h *Handler) viewBlog(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if !currentIdentity(c).Authenticated() {
		setFlash(c, flashWarning, msgLoginToComment)
	}
	h.renderBlogView(c, id, commentForm{}, nil)
}

func (h *Handler) postComment(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	blogPath := fmt.Sprintf("/blog/%d", id)

	if !currentIdentity(c).Authenticated() {
		setFlash(c, flashWarning, msgLoginToComment)
		c.Redirect(http.StatusSeeOther, blogPath)
		return
	}

	form := commentFormFrom(c)
	if errs := form.validate(); len(errs) > 0 {
		h.renderBlogView(c, id, form, errs)
		return
	}

	_, err := h.services.Comments.Add(c.Request.Context(), currentIdentity(c), id, form.Content)
	if err != nil {
		h.serveLookupError(c, "post_comment_failed", err)
		return
	}
	setFlash(c, flashSuccess, msgCommentPosted)
	c.Redirect(http.StatusSeeOther, blogPath)
}

// renderBlogView shows a blog with its rendered content, comments and the
// comment form.
func (h *Handler) renderBlogView(c *gin.Context, id int64, form commentForm, formErrors map[string]string) {
	ctx := c.Request.Context()

	blog, err := h.services.Blogs.Get(ctx, id)
	if err != nil {
		h.serveLookupError(c, "blog_lookup_failed", err)
		return
	}
	comments, err := h.services.Comments.ListByBlog(ctx, id)
	if err != nil {
		h.internalError(c, "list_comments_failed", err)
		return
	}
	contentHTML, err := h.md.Render(blog.Content)
	if err != nil {
		if h.log != nil {
			h.log.Warnw("markdown_render_failed", "blog_id", id, "err", err)
		}
		contentHTML = template.HTML(template.HTMLEscapeString(blog.Content))
	}

	h.render(c, http.StatusOK, "blog_view.html", gin.H{
		"Blog":        blog,
		"ContentHTML": contentHTML,
		"Comments":    comments,
		"Form":        form,
		"Errors":      formErrors,
	})
}

func (h *Handler) createBlogPage(c *gin.Context) {
	h.render(c, http.StatusOK, "create_blog.html", gin.H{"Form": blogForm{}})
}

func (h *Handler) createBlog(c *gin.Context) {
	form := blogFormFrom(c)
	if errs := form.validate(); len(errs) > 0 {
		h.render(c, http.StatusOK, "create_blog.html", gin.H{"Form": form, "Errors": errs})
		return
	}

	_, err := h.services.Blogs.Create(c.Request.Context(), currentIdentity(c), service.BlogInput{
		Title:    form.Title,
		Content:  form.Content,
		Category: form.Category,
	})
	if err != nil {
		h.internalError(c, "create_blog_failed", err)
		return
	}
	setFlash(c, flashSuccess, msgBlogCreated)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) editBlogPage(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	blog, err := h.services.Blogs.Get(c.Request.Context(), id)
	if err != nil {
		h.serveLookupError(c, "blog_lookup_failed", err)
		return
	}
	if !service.CanModifyBlog(currentIdentity(c), blog) {
		setFlash(c, flashDanger, msgUnauthorized)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	form := blogForm{Title: blog.Title, Content: blog.Content, Category: blog.CategoryName}
	h.render(c, http.StatusOK, "edit_blog.html", gin.H{"Form": form, "BlogID": blog.ID})
}

func (h *Handler) editBlog(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	form := blogFormFrom(c)
	if errs := form.validate(); len(errs) > 0 {
		h.render(c, http.StatusOK, "edit_blog.html", gin.H{"Form": form, "BlogID": id, "Errors": errs})
		return
	}

	err := h.services.Blogs.Update(c.Request.Context(), currentIdentity(c), id, service.BlogInput{
		Title:    form.Title,
		Content:  form.Content,
		Category: form.Category,
	})
	if err != nil {
		h.serveMutationError(c, "edit_blog_failed", err)
		return
	}
	setFlash(c, flashSuccess, msgBlogUpdated)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) deleteBlog(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	err := h.services.Blogs.Delete(c.Request.Context(), currentIdentity(c), id)
	if err != nil {
		h.serveMutationError(c, "delete_blog_failed", err)
		return
	}
	setFlash(c, flashInfo, msgBlogDeleted)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// serveMutationError maps a failed blog mutation: non-owners bounce to the
// dashboard, missing blogs hit the 404 page.
func (h *Handler) serveMutationError(c *gin.Context, logKey string, err error) {
	if errors.Is(err, service.ErrNotOwner) {
		if h.log != nil {
			h.log.Infow("blog_ownership_denied", "user_id", currentIdentity(c).UserID, "path", c.Request.URL.Path)
		}
		setFlash(c, flashDanger, msgUnauthorized)
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.serveLookupError(c, logKey, err)
}
