package service

import (
	"context"

	"techblog/internal/models"
	"techblog/internal/repository"
)

// Lightweight in-test mocks for the repository interfaces, in the style of
// func-field fakes: set only the functions a test needs.

type mockUserRepo struct {
	CreateFn        func(username, hash, bio string) (int64, error)
	GetByIDFn       func(id int64) (*models.User, error)
	GetByUsernameFn func(username string) (*models.User, error)

	createCalls []struct {
		username string
		hash     string
		bio      string
	}
	getByUsernameCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, username, hash, bio string) (int64, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		hash     string
		bio      string
	}{username, hash, bio})
	return m.CreateFn(username, hash, bio)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getByUsernameCalls = append(m.getByUsernameCalls, username)
	return m.GetByUsernameFn(username)
}

var _ repository.Users = (*mockUserRepo)(nil)

type mockCategoryRepo struct {
	GetOrCreateFn func(name string) (*models.Category, error)
	GetByIDFn     func(id int64) (*models.Category, error)

	getOrCreateCalls []string
}

func (m *mockCategoryRepo) GetOrCreate(_ context.Context, name string) (*models.Category, error) {
	m.getOrCreateCalls = append(m.getOrCreateCalls, name)
	return m.GetOrCreateFn(name)
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	return m.GetByIDFn(id)
}

var _ repository.Categories = (*mockCategoryRepo)(nil)

type mockBlogRepo struct {
	CreateFn       func(b *models.Blog) (int64, error)
	GetByIDFn      func(id int64) (*models.Blog, error)
	UpdateFn       func(id int64, title, content string, categoryID int64) error
	DeleteFn       func(id int64) error
	ListFn         func(filter string, page int) (models.BlogPage, error)
	ListByAuthorFn func(authorID int64, page int) (models.BlogPage, error)

	createCalls []models.Blog
	updateCalls int
	deleteCalls int
}

func (m *mockBlogRepo) Create(_ context.Context, b *models.Blog) (int64, error) {
	m.createCalls = append(m.createCalls, *b)
	return m.CreateFn(b)
}

func (m *mockBlogRepo) GetByID(_ context.Context, id int64) (*models.Blog, error) {
	return m.GetByIDFn(id)
}

func (m *mockBlogRepo) Update(_ context.Context, id int64, title, content string, categoryID int64) error {
	m.updateCalls++
	return m.UpdateFn(id, title, content, categoryID)
}

func (m *mockBlogRepo) Delete(_ context.Context, id int64) error {
	m.deleteCalls++
	return m.DeleteFn(id)
}

func (m *mockBlogRepo) List(_ context.Context, filter string, page int) (models.BlogPage, error) {
	return m.ListFn(filter, page)
}

func (m *mockBlogRepo) ListByAuthor(_ context.Context, authorID int64, page int) (models.BlogPage, error) {
	return m.ListByAuthorFn(authorID, page)
}

var _ repository.Blogs = (*mockBlogRepo)(nil)

type mockCommentRepo struct {
	CreateFn     func(c *models.Comment) (int64, error)
	ListByBlogFn func(blogID int64) ([]models.Comment, error)

	createCalls []models.Comment
}

func (m *mockCommentRepo) Create(_ context.Context, c *models.Comment) (int64, error) {
	m.createCalls = append(m.createCalls, *c)
	return m.CreateFn(c)
}

func (m *mockCommentRepo) ListByBlog(_ context.Context, blogID int64) ([]models.Comment, error) {
	return m.ListByBlogFn(blogID)
}

var _ repository.Comments = (*mockCommentRepo)(nil)
