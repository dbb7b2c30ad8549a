package service

import (
	"context"
	"time"

	"techblog/internal/models"
	"techblog/internal/repository"
)

// Auth owns the credential store: registration and login verification.
type Auth interface {
	Register(ctx context.Context, username, password, bio string) (*models.User, error)
	Verify(ctx context.Context, username, password string) (*models.User, error)
}

// Sessions issues and parses the signed client-side session token.
type Sessions interface {
	Issue(user *models.User) (string, error)
	Parse(token string) (models.Identity, error)
	TTL() time.Duration
}

// Users exposes read-only account lookups for profile and dashboard pages.
type Users interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// BlogInput carries the validated fields of the blog form.
type BlogInput struct {
	Title    string
	Content  string
	Category string
}

// Blogs owns the post lifecycle and the paged listings.
type Blogs interface {
	Get(ctx context.Context, id int64) (*models.Blog, error)
	List(ctx context.Context, filter string, page int) (models.BlogPage, error)
	ListByAuthor(ctx context.Context, authorID int64, page int) (models.BlogPage, error)
	Create(ctx context.Context, identity models.Identity, in BlogInput) (int64, error)
	Update(ctx context.Context, identity models.Identity, blogID int64, in BlogInput) error
	Delete(ctx context.Context, identity models.Identity, blogID int64) error
}

// Comments owns comment creation and retrieval.
type Comments interface {
	Add(ctx context.Context, identity models.Identity, blogID int64, content string) (int64, error)
	ListByBlog(ctx context.Context, blogID int64) ([]models.Comment, error)
}

// SessionConfig carries the signing material and lifetime for session tokens.
type SessionConfig struct {
	SigningKey string
	TTL        time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Auth
	Sessions
	Users
	Blogs
	Comments
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sessCfg SessionConfig) *Service {
	return &Service{
		Auth:     NewAuthService(repos.Users),
		Sessions: NewSessionService(sessCfg),
		Users:    NewUserService(repos.Users),
		Blogs:    NewBlogService(repos.Blogs, repos.Categories),
		Comments: NewCommentService(repos.Comments, repos.Blogs),
	}
}
