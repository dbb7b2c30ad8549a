package service

import (
	"context"

	"techblog/internal/models"
	"techblog/internal/repository"
)

// CommentService creates and lists comments. Any authenticated user may
// comment on any blog.
type CommentService struct {
	comments repository.Comments
	blogs    repository.Blogs
}

func NewCommentService(comments repository.Comments, blogs repository.Blogs) *CommentService {
	return &CommentService{comments: comments, blogs: blogs}
}

var _ Comments = (*CommentService)(nil)

// Add attaches a comment to an existing blog. Anonymous callers get
// ErrLoginRequired; a missing blog surfaces as repository.ErrNotFound.
func (s *CommentService) Add(ctx context.Context, identity models.Identity, blogID int64, content string) (int64, error) {
	if !CanComment(identity) {
		return 0, ErrLoginRequired
	}
	// The blog must exist at creation time.
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return 0, err
	}
	return s.comments.Create(ctx, &models.Comment{
		Content:  content,
		AuthorID: identity.UserID,
		BlogID:   blogID,
	})
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID int64) ([]models.Comment, error) {
	return s.comments.ListByBlog(ctx, blogID)
}
