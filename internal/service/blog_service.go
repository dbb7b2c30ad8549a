package service

import (
	"context"
	"fmt"
	"strings"

	"techblog/internal/models"
	"techblog/internal/repository"
)

// BlogService owns the post lifecycle: listings, creation with lazy category
// resolution, and ownership-gated edit/delete.
type BlogService struct {
	blogs      repository.Blogs
	categories repository.Categories
}

func NewBlogService(blogs repository.Blogs, categories repository.Categories) *BlogService {
	return &BlogService{blogs: blogs, categories: categories}
}

var _ Blogs = (*BlogService)(nil)

func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	return s.blogs.GetByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context, filter string, page int) (models.BlogPage, error) {
	return s.blogs.List(ctx, strings.TrimSpace(filter), page)
}

func (s *BlogService) ListByAuthor(ctx context.Context, authorID int64, page int) (models.BlogPage, error) {
	return s.blogs.ListByAuthor(ctx, authorID, page)
}

// Create resolves the category (creating it on first use) and inserts the
// blog under the identity's user. Anonymous callers get ErrLoginRequired.
func (s *BlogService) Create(ctx context.Context, identity models.Identity, in BlogInput) (int64, error) {
	if !CanCreateBlog(identity) {
		return 0, ErrLoginRequired
	}
	categoryID, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return 0, err
	}
	return s.blogs.Create(ctx, &models.Blog{
		Title:      in.Title,
		Content:    in.Content,
		AuthorID:   identity.UserID,
		CategoryID: categoryID,
	})
}

// Update rewrites title, content and category of an existing blog. Only the
// author may do this; the author itself never changes.
func (s *BlogService) Update(ctx context.Context, identity models.Identity, blogID int64, in BlogInput) error {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if !CanModifyBlog(identity, blog) {
		return ErrNotOwner
	}
	categoryID, err := s.resolveCategory(ctx, in.Category)
	if err != nil {
		return err
	}
	return s.blogs.Update(ctx, blogID, in.Title, in.Content, categoryID)
}

// Delete removes a blog after the ownership check. The blog's comments go
// with it.
func (s *BlogService) Delete(ctx context.Context, identity models.Identity, blogID int64) error {
	blog, err := s.blogs.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if !CanModifyBlog(identity, blog) {
		return ErrNotOwner
	}
	return s.blogs.Delete(ctx, blogID)
}

func (s *BlogService) resolveCategory(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}
	category, err := s.categories.GetOrCreate(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("resolve category %q: %w", name, err)
	}
	return category.ID, nil
}
