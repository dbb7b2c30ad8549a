package service

import "techblog/internal/models"

// Authorization rules. Ownership is the only axis: there is no role
// hierarchy and no admin override.

// CanModifyBlog reports whether the identity may edit or delete the blog.
func CanModifyBlog(id models.Identity, blog *models.Blog) bool {
	return id.Authenticated() && blog != nil && id.UserID == blog.AuthorID
}

// CanCreateBlog reports whether the identity may author a new blog.
func CanCreateBlog(id models.Identity) bool {
	return id.Authenticated()
}

// CanComment reports whether the identity may comment on a blog.
func CanComment(id models.Identity) bool {
	return id.Authenticated()
}
