package repository

import (
	"context"
	"database/sql"
	"errors"

	"techblog/internal/models"
)

// ErrNotFound is returned when a lookup by primary key or unique column
// misses. Callers translate it to a user-facing "not found" response.
var ErrNotFound = errors.New("not found")

type Users interface {
	Create(ctx context.Context, username, passwordHash, bio string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type Categories interface {
	// GetOrCreate is the only mutation path for categories.
	GetOrCreate(ctx context.Context, name string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
}

type Blogs interface {
	Create(ctx context.Context, b *models.Blog) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
	// Update never touches author_id.
	Update(ctx context.Context, id int64, title, content string, categoryID int64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter string, page int) (models.BlogPage, error)
	ListByAuthor(ctx context.Context, authorID int64, page int) (models.BlogPage, error)
}

type Comments interface {
	Create(ctx context.Context, c *models.Comment) (int64, error)
	ListByBlog(ctx context.Context, blogID int64) ([]models.Comment, error)
}

type Repository struct {
	Users      Users
	Categories Categories
	Blogs      Blogs
	Comments   Comments
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Blogs:      NewBlogRepository(db),
		Comments:   NewCommentRepository(db),
	}
}
